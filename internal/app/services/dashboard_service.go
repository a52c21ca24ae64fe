package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
)

const (
	dashboardListSize   = 10
	pendingTaskLimit    = 10
	candidateOfferSlots = 5
	interviewDueWindow  = 24 * time.Hour
	approvalGracePeriod = 7 * 24 * time.Hour
	taskTypeInterview   = "Interview"
	taskTypeApproval    = "Approval"
	taskPriorityHigh    = "High"
	taskPriorityMedium  = "Medium"
	assigneeInterviewer = "Interviewer"
	assigneeAdmin       = "Admin"
	assigneeCaller      = "You"
	selectedOfferStatus = "Selected"
)

// DashboardService assembles the role scoped dashboards. It never writes,
// except for lazily creating a candidate profile.
type DashboardService interface {
	Admin(ctx context.Context, p auth.Principal) (*dto.AdminDashboard, error)
	HR(ctx context.Context, p auth.Principal) (*dto.HRDashboard, error)
	Interviewer(ctx context.Context, p auth.Principal) (*dto.InterviewerDashboard, error)
	Reviewer(ctx context.Context, p auth.Principal) (*dto.ReviewerDashboard, error)
	Candidate(ctx context.Context, p auth.Principal) (*dto.CandidateDashboard, error)
	Others(ctx context.Context, p auth.Principal) (*dto.OtherDashboard, error)
}

type dashboardServiceImpl struct {
	dashboardRepo repositories.IDashboardRepository
	jobRepo       repositories.IJobRepository
	candidateRepo repositories.ICandidateRepository
	interviewRepo repositories.IInterviewRepository
	offerRepo     repositories.IOfferRepository
	userRepo      repositories.IUserRepository
	notifications NotificationService
	logger        zerolog.Logger
	now           func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	dashboardRepo repositories.IDashboardRepository,
	jobRepo repositories.IJobRepository,
	candidateRepo repositories.ICandidateRepository,
	interviewRepo repositories.IInterviewRepository,
	offerRepo repositories.IOfferRepository,
	userRepo repositories.IUserRepository,
	notifications NotificationService,
	logger zerolog.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		jobRepo:       jobRepo,
		candidateRepo: candidateRepo,
		interviewRepo: interviewRepo,
		offerRepo:     offerRepo,
		userRepo:      userRepo,
		notifications: notifications,
		logger:        logger,
		now:           time.Now,
	}
}

// Admin serves admins and recruiters
func (s *dashboardServiceImpl) Admin(ctx context.Context, p auth.Principal) (*dto.AdminDashboard, error) {
	hr, err := s.HR(ctx, p)
	if err != nil {
		return nil, err
	}
	jobs, err := s.recentJobs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.AdminDashboard{
		Stats:              hr.Stats,
		RecentJobs:         jobs,
		RecentCandidates:   hr.RecentCandidates,
		UpcomingInterviews: hr.UpcomingInterviews,
		PendingTasks:       hr.PendingTasks,
		Notifications:      hr.Notifications,
	}, nil
}

// HR serves HR users
func (s *dashboardServiceImpl) HR(ctx context.Context, p auth.Principal) (*dto.HRDashboard, error) {
	now := s.now()
	stats, err := s.dashboardRepo.Stats(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard stats: %w", err)
	}
	candidates, err := s.recentCandidates(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := s.upcomingInterviews(ctx, now, nil)
	if err != nil {
		return nil, err
	}
	tasks, err := s.pendingTasks(ctx, now, nil)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.ListForUser(ctx, p.UserID, dashboardListSize)
	if err != nil {
		return nil, err
	}
	return &dto.HRDashboard{
		Stats:              *stats,
		RecentCandidates:   candidates,
		UpcomingInterviews: upcoming,
		PendingTasks:       tasks,
		Notifications:      notifications,
	}, nil
}

// Interviewer shows only interviews the caller is assigned to
func (s *dashboardServiceImpl) Interviewer(ctx context.Context, p auth.Principal) (*dto.InterviewerDashboard, error) {
	now := s.now()
	stats, err := s.dashboardRepo.Stats(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard stats: %w", err)
	}
	upcoming, err := s.upcomingInterviews(ctx, now, &p.UserID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.pendingTasks(ctx, now, &p.UserID)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.ListForUser(ctx, p.UserID, dashboardListSize)
	if err != nil {
		return nil, err
	}
	return &dto.InterviewerDashboard{
		Stats:              *stats,
		UpcomingInterviews: upcoming,
		PendingTasks:       tasks,
		Notifications:      notifications,
	}, nil
}

// Reviewer serves reviewers
func (s *dashboardServiceImpl) Reviewer(ctx context.Context, p auth.Principal) (*dto.ReviewerDashboard, error) {
	now := s.now()
	stats, err := s.dashboardRepo.Stats(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard stats: %w", err)
	}
	candidates, err := s.recentCandidates(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.pendingTasks(ctx, now, &p.UserID)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notifications.ListForUser(ctx, p.UserID, dashboardListSize)
	if err != nil {
		return nil, err
	}
	return &dto.ReviewerDashboard{
		Stats:            *stats,
		RecentCandidates: candidates,
		PendingTasks:     tasks,
		Notifications:    notifications,
	}, nil
}

// Others is the HR view, plus recent jobs for recruiters
func (s *dashboardServiceImpl) Others(ctx context.Context, p auth.Principal) (*dto.OtherDashboard, error) {
	hr, err := s.HR(ctx, p)
	if err != nil {
		return nil, err
	}
	out := &dto.OtherDashboard{HRDashboard: *hr}
	if p.HasRole(models.RoleRecruiter) {
		if out.RecentJobs, err = s.recentJobs(ctx); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Candidate shows the caller's own pipeline. The profile is created on first visit.
func (s *dashboardServiceImpl) Candidate(ctx context.Context, p auth.Principal) (*dto.CandidateDashboard, error) {
	c, err := s.candidateRepo.EnsureForUser(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	applications, err := s.candidateRepo.ListApplications(ctx, c.ID, dashboardListSize)
	if err != nil {
		return nil, fmt.Errorf("error loading applications: %w", err)
	}

	selected := models.InterviewStatusSelected
	interviews, err := s.interviewRepo.List(ctx, repositories.InterviewFilter{
		CandidateID:   &c.ID,
		ExcludeStatus: &selected,
		Limit:         dashboardListSize,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading interviews: %w", err)
	}

	offers, err := s.offerRepo.ListForCandidate(ctx, c.ID, candidateOfferSlots)
	if err != nil {
		return nil, fmt.Errorf("error loading offers: %w", err)
	}
	selectedInterviews, err := s.interviewRepo.List(ctx, repositories.InterviewFilter{
		CandidateID: &c.ID,
		Status:      &selected,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading selected interviews: %w", err)
	}

	notifications, err := s.notifications.ListForUser(ctx, p.UserID, dashboardListSize)
	if err != nil {
		return nil, err
	}

	out := &dto.CandidateDashboard{
		Candidate: dto.CandidateDashboardProfile{
			ID:              c.ID,
			Status:          string(c.Status),
			ExperienceYears: c.ExperienceYears,
			CreatedAt:       c.CreatedAt,
			UpdatedAt:       c.UpdatedAt,
		},
		AppliedJobs:   make([]dto.AppliedJob, 0, len(applications)),
		Interviews:    make([]dto.CandidateInterview, 0, len(interviews)),
		Offers:        CandidateOffers(offers, selectedInterviews),
		Notifications: notifications,
	}
	if c.User != nil {
		out.Candidate.User = dto.CandidateDashboardUser{FullName: c.User.FullName, Email: c.User.Email}
	}

	for _, a := range applications {
		applied := dto.AppliedJob{ID: a.JobID, AppliedDate: a.AppliedDate, Status: string(c.Status)}
		if a.Job != nil {
			applied.Title = a.Job.Title
			applied.Department = a.Job.Department
			applied.Location = a.Job.Location
		}
		out.AppliedJobs = append(out.AppliedJobs, applied)
	}
	for _, i := range interviews {
		out.Interviews = append(out.Interviews, dto.CandidateInterview{
			ID:            i.ID,
			JobTitle:      i.JobTitle,
			InterviewType: i.InterviewType,
			RoundNo:       i.RoundNo,
			ScheduledDate: i.ScheduledDate,
			Status:        string(i.Status),
		})
	}
	return out, nil
}

// CandidateOffers lists real offers first, followed by up to five Selected
// interviews presented as offers, most recently completed first.
func CandidateOffers(offers []*models.Offer, selected []*models.Interview) []dto.CandidateOffer {
	out := make([]dto.CandidateOffer, 0, len(offers)+candidateOfferSlots)
	for _, o := range offers {
		out = append(out, dto.CandidateOffer{
			ID:          o.ID,
			JobTitle:    o.JobTitle,
			OfferDate:   o.OfferDate,
			JoiningDate: o.JoiningDate,
			Status:      string(o.Status),
		})
	}

	synthetic := make([]dto.CandidateOffer, 0, len(selected))
	for _, i := range selected {
		offerDate := i.ScheduledDate
		if i.CompletedAt != nil {
			offerDate = *i.CompletedAt
		}
		synthetic = append(synthetic, dto.CandidateOffer{
			ID:        i.ID,
			JobTitle:  i.JobTitle,
			OfferDate: offerDate,
			Status:    selectedOfferStatus,
		})
	}
	sort.SliceStable(synthetic, func(a, b int) bool {
		return synthetic[a].OfferDate.After(synthetic[b].OfferDate)
	})
	if len(synthetic) > candidateOfferSlots {
		synthetic = synthetic[:candidateOfferSlots]
	}
	return append(out, synthetic...)
}

func (s *dashboardServiceImpl) recentJobs(ctx context.Context) ([]dto.RecentJob, error) {
	jobs, err := s.jobRepo.ListRecent(ctx, dashboardListSize)
	if err != nil {
		return nil, fmt.Errorf("error loading recent jobs: %w", err)
	}
	out := make([]dto.RecentJob, 0, len(jobs))
	for _, j := range jobs {
		row := dto.RecentJob{
			ID:            j.ID,
			Title:         j.Title,
			Location:      j.Location,
			MinExperience: j.MinExperience,
			Status:        string(j.Status),
			CreatedAt:     j.CreatedAt,
			AppliedCount:  j.AppliedCount,
		}
		if j.CreatedByName != nil {
			row.CreatedBy = *j.CreatedByName
		}
		out = append(out, row)
	}
	return out, nil
}

func (s *dashboardServiceImpl) recentCandidates(ctx context.Context) ([]dto.CandidateSummaryResponse, error) {
	candidates, err := s.candidateRepo.ListRecent(ctx, dashboardListSize)
	if err != nil {
		return nil, fmt.Errorf("error loading recent candidates: %w", err)
	}
	out := make([]dto.CandidateSummaryResponse, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, dto.NewCandidateSummaryResponse(c))
	}
	return out, nil
}

// upcomingInterviews lists Scheduled interviews from now on, soonest first.
// A non-nil interviewerID narrows the list to that interviewer's assignments.
func (s *dashboardServiceImpl) upcomingInterviews(ctx context.Context, now time.Time, interviewerID *int64) ([]dto.UpcomingInterview, error) {
	scheduled := models.InterviewStatusScheduled
	items, err := s.interviewRepo.List(ctx, repositories.InterviewFilter{
		InterviewerID: interviewerID,
		Status:        &scheduled,
		ScheduledFrom: &now,
		Ascending:     true,
		Limit:         dashboardListSize,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading upcoming interviews: %w", err)
	}
	out := make([]dto.UpcomingInterview, 0, len(items))
	for _, i := range items {
		names := make([]string, 0, len(i.Interviewers))
		for _, a := range i.Interviewers {
			names = append(names, a.FullName)
		}
		out = append(out, dto.UpcomingInterview{
			ID:            i.ID,
			CandidateName: i.CandidateName,
			JobTitle:      i.JobTitle,
			InterviewType: i.InterviewType,
			RoundNo:       i.RoundNo,
			ScheduledDate: i.ScheduledDate,
			Interviewers:  names,
		})
	}
	return out, nil
}

// pendingTasks loads the inputs of BuildPendingTasks. With an interviewer id
// only that user's interviews count and approvals are left out.
func (s *dashboardServiceImpl) pendingTasks(ctx context.Context, now time.Time, interviewerID *int64) ([]dto.PendingTask, error) {
	scheduled := models.InterviewStatusScheduled
	until := now.Add(interviewDueWindow)
	interviews, err := s.interviewRepo.List(ctx, repositories.InterviewFilter{
		InterviewerID:  interviewerID,
		Status:         &scheduled,
		ScheduledUntil: &until,
		Ascending:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("error loading pending interviews: %w", err)
	}

	if interviewerID != nil {
		return BuildPendingTasks(interviews, nil, now, assigneeCaller), nil
	}

	pending := models.UserStatusPendingApproval
	users, err := s.userRepo.List(ctx, &pending)
	if err != nil {
		return nil, fmt.Errorf("error loading pending users: %w", err)
	}
	return BuildPendingTasks(interviews, users, now, assigneeInterviewer), nil
}

// BuildPendingTasks turns due interviews and users awaiting approval into
// reminders, ordered by due date and capped at ten.
func BuildPendingTasks(interviews []*models.Interview, pendingUsers []*models.User, now time.Time, interviewAssignee string) []dto.PendingTask {
	tasks := make([]dto.PendingTask, 0, len(interviews)+len(pendingUsers))
	for _, i := range interviews {
		priority := taskPriorityMedium
		if !i.ScheduledDate.After(now) {
			priority = taskPriorityHigh
		}
		tasks = append(tasks, dto.PendingTask{
			ID:          fmt.Sprintf("interview-%d", i.ID),
			Type:        taskTypeInterview,
			Title:       "Interview with " + i.CandidateName,
			Description: fmt.Sprintf("%s Round %d for %s", i.InterviewType, i.RoundNo, i.JobTitle),
			DueDate:     i.ScheduledDate,
			Priority:    priority,
			AssignedTo:  interviewAssignee,
		})
	}
	for _, u := range pendingUsers {
		tasks = append(tasks, dto.PendingTask{
			ID:          fmt.Sprintf("user-%d", u.ID),
			Type:        taskTypeApproval,
			Title:       "Approve user: " + u.FullName,
			Description: fmt.Sprintf("User %s is waiting for approval", u.FullName),
			DueDate:     u.CreatedAt.Add(approvalGracePeriod),
			Priority:    taskPriorityMedium,
			AssignedTo:  assigneeAdmin,
		})
	}

	sort.SliceStable(tasks, func(a, b int) bool {
		return tasks[a].DueDate.Before(tasks[b].DueDate)
	})
	if len(tasks) > pendingTaskLimit {
		tasks = tasks[:pendingTaskLimit]
	}
	return tasks
}
