package models

import "time"

// Candidate is the applicant profile owned by a user.
type Candidate struct {
	ID              int64           `json:"id" db:"id"`
	UserID          int64           `json:"userId" db:"user_id"`
	ExperienceYears int             `json:"experienceYears" db:"experience_years"`
	Status          CandidateStatus `json:"status" db:"status"`
	UpdatedBy       *int64          `json:"updatedBy,omitempty" db:"updated_by"`
	UpdatedByName   *string         `json:"updatedByName,omitempty"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
	User            *User           `json:"user,omitempty"`
	Skills          []Skill         `json:"skills"`
}

// DefaultApplicationSource is recorded when an applicant does not say where they found the job.
const DefaultApplicationSource = "Company Website"

// CandidateJob is one application of a candidate to a job.
type CandidateJob struct {
	ID          int64     `json:"id" db:"id"`
	CandidateID int64     `json:"candidateId" db:"candidate_id"`
	JobID       int64     `json:"jobId" db:"job_id"`
	AppliedDate time.Time `json:"appliedDate" db:"applied_date"`
	Source      string    `json:"source" db:"source"`
	Job         *Job      `json:"job,omitempty"`
}

// Document is an uploaded file belonging to a candidate.
type Document struct {
	ID           int64      `json:"id" db:"id"`
	CandidateID  int64      `json:"candidateId" db:"candidate_id"`
	DocumentType string     `json:"documentType" db:"document_type"`
	FileName     string     `json:"fileName" db:"file_name"`
	FilePath     string     `json:"filePath" db:"file_path"`
	UploadedAt   time.Time  `json:"uploadedAt" db:"uploaded_at"`
	Verified     bool       `json:"verified" db:"verified"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty" db:"verified_at"`
	VerifiedBy   *int64     `json:"verifiedBy,omitempty" db:"verified_by"`
}

// Offer is a job offer extended to a candidate.
type Offer struct {
	ID              int64       `json:"id" db:"id"`
	CandidateID     int64       `json:"candidateId" db:"candidate_id"`
	JobID           int64       `json:"jobId" db:"job_id"`
	JobTitle        string      `json:"jobTitle"`
	OfferDate       time.Time   `json:"offerDate" db:"offer_date"`
	JoiningDate     *time.Time  `json:"joiningDate,omitempty" db:"joining_date"`
	Status          OfferStatus `json:"status" db:"status"`
	StatusUpdatedAt *time.Time  `json:"statusUpdatedAt,omitempty" db:"status_updated_at"`
}

// Notification is a message addressed to a single user.
type Notification struct {
	ID        int64      `json:"id" db:"id"`
	UserID    int64      `json:"userId" db:"user_id"`
	Message   string     `json:"message" db:"message"`
	IsRead    bool       `json:"isRead" db:"is_read"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
	ReadAt    *time.Time `json:"readAt,omitempty" db:"read_at"`
}
