package dto

import "time"

// DashboardStats holds the pipeline counters shown on every staff dashboard
type DashboardStats struct {
	TotalJobs  int64 `json:"totalJobs"`
	OpenJobs   int64 `json:"openJobs"`
	OnHoldJobs int64 `json:"onHoldJobs"`
	ClosedJobs int64 `json:"closedJobs"`

	TotalCandidates       int64 `json:"totalCandidates"`
	AppliedCandidates     int64 `json:"appliedCandidates"`
	ShortlistedCandidates int64 `json:"shortlistedCandidates"`
	InterviewCandidates   int64 `json:"interviewCandidates"`
	SelectedCandidates    int64 `json:"selectedCandidates"`
	RejectedCandidates    int64 `json:"rejectedCandidates"`
	OnHoldCandidates      int64 `json:"onHoldCandidates"`

	TotalInterviews     int64 `json:"totalInterviews"`
	ScheduledInterviews int64 `json:"scheduledInterviews"`
	CompletedInterviews int64 `json:"completedInterviews"`
	PendingInterviews   int64 `json:"pendingInterviews"`

	TotalOffers    int64 `json:"totalOffers"`
	PendingOffers  int64 `json:"pendingOffers"`
	AcceptedOffers int64 `json:"acceptedOffers"`
	RejectedOffers int64 `json:"rejectedOffers"`
}

// RecentJob is a job row on a dashboard
type RecentJob struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	MinExperience string    `json:"minExperience"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	AppliedCount  int       `json:"appliedCount"`
}

// UpcomingInterview is an interview row on a dashboard
type UpcomingInterview struct {
	ID            int64     `json:"id"`
	CandidateName string    `json:"candidateName"`
	JobTitle      string    `json:"jobTitle"`
	InterviewType string    `json:"interviewType"`
	RoundNo       int       `json:"roundNo"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Interviewers  []string  `json:"interviewers"`
}

// PendingTask is a reminder computed on read
type PendingTask struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Priority    string    `json:"priority"`
	AssignedTo  string    `json:"assignedTo"`
}

// AdminDashboard is returned to admins and recruiters
type AdminDashboard struct {
	Stats              DashboardStats             `json:"stats"`
	RecentJobs         []RecentJob                `json:"recentJobs"`
	RecentCandidates   []CandidateSummaryResponse `json:"recentCandidates"`
	UpcomingInterviews []UpcomingInterview        `json:"upcomingInterviews"`
	PendingTasks       []PendingTask              `json:"pendingTasks"`
	Notifications      []NotificationResponse     `json:"notifications"`
}

// HRDashboard is returned to HR users
type HRDashboard struct {
	Stats              DashboardStats             `json:"stats"`
	RecentCandidates   []CandidateSummaryResponse `json:"recentCandidates"`
	UpcomingInterviews []UpcomingInterview        `json:"upcomingInterviews"`
	PendingTasks       []PendingTask              `json:"pendingTasks"`
	Notifications      []NotificationResponse     `json:"notifications"`
}

// InterviewerDashboard is scoped to the calling interviewer
type InterviewerDashboard struct {
	Stats              DashboardStats         `json:"stats"`
	UpcomingInterviews []UpcomingInterview    `json:"upcomingInterviews"`
	PendingTasks       []PendingTask          `json:"pendingTasks"`
	Notifications      []NotificationResponse `json:"notifications"`
}

// ReviewerDashboard is returned to reviewers
type ReviewerDashboard struct {
	Stats            DashboardStats             `json:"stats"`
	RecentCandidates []CandidateSummaryResponse `json:"recentCandidates"`
	PendingTasks     []PendingTask              `json:"pendingTasks"`
	Notifications    []NotificationResponse     `json:"notifications"`
}

// OtherDashboard is the HR view plus recent jobs for callers holding the Recruiter role
type OtherDashboard struct {
	HRDashboard
	RecentJobs []RecentJob `json:"recentJobs,omitempty"`
}

// CandidateDashboardUser names the candidate
type CandidateDashboardUser struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// CandidateDashboardProfile is the candidate summary block
type CandidateDashboardProfile struct {
	ID              int64                  `json:"id"`
	Status          string                 `json:"status"`
	ExperienceYears int                    `json:"experienceYears"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
	User            CandidateDashboardUser `json:"user"`
}

// AppliedJob is one application on the candidate dashboard
type AppliedJob struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	AppliedDate time.Time `json:"appliedDate"`
	Status      string    `json:"status"`
}

// CandidateInterview is an interview on the candidate dashboard
type CandidateInterview struct {
	ID            int64     `json:"id"`
	JobTitle      string    `json:"jobTitle"`
	InterviewType string    `json:"interviewType"`
	RoundNo       int       `json:"roundNo"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Status        string    `json:"status"`
}

// CandidateOffer is an offer on the candidate dashboard; Selected interviews appear here too
type CandidateOffer struct {
	ID          int64      `json:"id"`
	JobTitle    string     `json:"jobTitle"`
	OfferDate   time.Time  `json:"offerDate"`
	JoiningDate *time.Time `json:"joiningDate"`
	Status      string     `json:"status"`
}

// CandidateDashboard is returned to candidates
type CandidateDashboard struct {
	Candidate     CandidateDashboardProfile `json:"candidate"`
	AppliedJobs   []AppliedJob              `json:"appliedJobs"`
	Interviews    []CandidateInterview      `json:"interviews"`
	Offers        []CandidateOffer          `json:"offers"`
	Notifications []NotificationResponse    `json:"notifications"`
}
