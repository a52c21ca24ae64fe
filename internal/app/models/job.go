package models

import "time"

// Skill is a named competency shared by jobs and candidates.
type Skill struct {
	ID   int64  `json:"id" db:"id" example:"3"`
	Name string `json:"name" db:"name" example:"React"`
}

// Job defines the job model based on the 'jobs' table
type Job struct {
	ID                  int64     `json:"id" db:"id"`
	Title               string    `json:"title" db:"title"`
	Department          string    `json:"department" db:"department"`
	Description         string    `json:"description" db:"description"`
	MinExperience       string    `json:"minExperience" db:"min_experience"`
	Location            string    `json:"location" db:"location"`
	Status              JobStatus `json:"status" db:"status"`
	CreatedBy           *int64    `json:"createdBy,omitempty" db:"created_by"`
	CreatedByName       *string   `json:"createdByName,omitempty"`
	ClosedReason        *string   `json:"closedReason,omitempty" db:"closed_reason"`
	SelectedCandidateID *int64    `json:"selectedCandidateId,omitempty" db:"selected_candidate_id"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
	Skills              []Skill   `json:"skills"`
	AppliedCount        int       `json:"appliedCount"`
}

// SkillIDs returns the ids of the job's attached skills.
func (j *Job) SkillIDs() []int64 {
	ids := make([]int64, len(j.Skills))
	for i, s := range j.Skills {
		ids[i] = s.ID
	}
	return ids
}
