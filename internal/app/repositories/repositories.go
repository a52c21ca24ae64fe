package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	SkillRepository        *SkillRepository
	JobRepository          *JobRepository
	CandidateRepository    *CandidateRepository
	DocumentRepository     *DocumentRepository
	InterviewRepository    *InterviewRepository
	NotificationRepository *NotificationRepository
	OfferRepository        *OfferRepository
	DashboardRepository    *DashboardRepository
	ReportRepository       *ReportRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		SkillRepository:        NewSkillRepository(db),
		JobRepository:          NewJobRepository(db),
		CandidateRepository:    NewCandidateRepository(db),
		DocumentRepository:     NewDocumentRepository(db),
		InterviewRepository:    NewInterviewRepository(db),
		NotificationRepository: NewNotificationRepository(db),
		OfferRepository:        NewOfferRepository(db),
		DashboardRepository:    NewDashboardRepository(db),
		ReportRepository:       NewReportRepository(db),
	}
}
