package models

import "time"

// Interview is one round of evaluation for a (candidate, job) pair.
type Interview struct {
	ID            int64           `json:"id" db:"id"`
	CandidateID   int64           `json:"candidateId" db:"candidate_id"`
	JobID         int64           `json:"jobId" db:"job_id"`
	ScheduledDate time.Time       `json:"scheduledDate" db:"scheduled_date"`
	InterviewType string          `json:"interviewType" db:"interview_type"`
	RoundNo       int             `json:"roundNo" db:"round_no"`
	Status        InterviewStatus `json:"status" db:"status"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty" db:"completed_at"`
	CreatedAt     time.Time       `json:"createdAt" db:"created_at"`

	// Joined read-side fields
	CandidateName   string                  `json:"candidateName"`
	CandidateUserID int64                   `json:"candidateUserId"`
	JobTitle        string                  `json:"jobTitle"`
	Interviewers    []InterviewerAssignment `json:"interviewers"`
	Feedbacks       []Feedback              `json:"feedbacks,omitempty"`
}

// InterviewerAssignment links a user to an interview they conduct.
type InterviewerAssignment struct {
	InterviewID int64  `json:"interviewId" db:"interview_id"`
	UserID      int64  `json:"userId" db:"user_id"`
	FullName    string `json:"fullName"`
}

// Feedback is an interviewer's rating of an interview.
type Feedback struct {
	ID              int64     `json:"id" db:"id"`
	InterviewID     int64     `json:"interviewId" db:"interview_id"`
	InterviewerID   int64     `json:"interviewerId" db:"interviewer_id"`
	InterviewerName string    `json:"interviewerName"`
	Rating          int       `json:"rating" db:"rating"`
	Comments        string    `json:"comments" db:"comments"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
