package dto

import (
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

// CreateJobRequest represents a new job posting
type CreateJobRequest struct {
	Title         string  `json:"title" binding:"required,max=200" example:"Backend Engineer"`
	Department    string  `json:"department" binding:"required,max=100" example:"Engineering"`
	Description   string  `json:"description" binding:"required" example:"Build and run our APIs"`
	MinExperience string  `json:"minExperience" binding:"required,max=50" example:"3 years"`
	Location      string  `json:"location" binding:"required,max=100" example:"Remote"`
	SkillIDs      []int64 `json:"skillIds"`
}

// UpdateJobRequest represents changes to an existing job
type UpdateJobRequest struct {
	Title               string  `json:"title" binding:"required,max=200"`
	Department          string  `json:"department" binding:"required,max=100"`
	Description         string  `json:"description" binding:"required"`
	MinExperience       string  `json:"minExperience" binding:"required,max=50"`
	Location            string  `json:"location" binding:"required,max=100"`
	Status              string  `json:"status" binding:"required,oneof=Open OnHold Closed" example:"Open"`
	ClosedReason        *string `json:"closedReason,omitempty"`
	SelectedCandidateID *int64  `json:"selectedCandidateId,omitempty"`
	SkillIDs            []int64 `json:"skillIds"`
}

// JobResponse represents a job with its skills
type JobResponse struct {
	ID                  int64           `json:"id"`
	Title               string          `json:"title"`
	Department          string          `json:"department"`
	Description         string          `json:"description"`
	MinExperience       string          `json:"minExperience"`
	Location            string          `json:"location"`
	Status              string          `json:"status"`
	CreatedBy           *int64          `json:"createdBy,omitempty"`
	CreatedByName       *string         `json:"createdByName,omitempty"`
	ClosedReason        *string         `json:"closedReason,omitempty"`
	SelectedCandidateID *int64          `json:"selectedCandidateId,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
	Skills              []SkillResponse `json:"skills"`
}

// SkillResponse represents a skill
type SkillResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Go"`
}

// CreateSkillRequest asks for a skill by name, creating it when missing
type CreateSkillRequest struct {
	Name string `json:"name" binding:"required,max=100" example:"Kubernetes"`
}

// JobFilter holds the open-jobs query parameters
type JobFilter struct {
	Page       int
	PageSize   int
	Location   string
	Experience *int
	Skills     []string
	Search     string
}

// NewSkillResponses converts skill models
func NewSkillResponses(skills []models.Skill) []SkillResponse {
	out := make([]SkillResponse, 0, len(skills))
	for _, s := range skills {
		out = append(out, SkillResponse{ID: s.ID, Name: s.Name})
	}
	return out
}

// NewJobResponse converts a job model to its response shape
func NewJobResponse(j *models.Job) JobResponse {
	return JobResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Department:          j.Department,
		Description:         j.Description,
		MinExperience:       j.MinExperience,
		Location:            j.Location,
		Status:              string(j.Status),
		CreatedBy:           j.CreatedBy,
		CreatedByName:       j.CreatedByName,
		ClosedReason:        j.ClosedReason,
		SelectedCandidateID: j.SelectedCandidateID,
		CreatedAt:           j.CreatedAt,
		UpdatedAt:           j.UpdatedAt,
		Skills:              NewSkillResponses(j.Skills),
	}
}

// NewJobResponses converts a slice of jobs
func NewJobResponses(jobs []*models.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
