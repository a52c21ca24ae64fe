package dto

import (
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

// CandidateProfileResponse is the candidate's own profile
type CandidateProfileResponse struct {
	ID              int64           `json:"id"`
	UserID          int64           `json:"userId"`
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	ExperienceYears int             `json:"experienceYears"`
	Status          string          `json:"status"`
	Skills          []SkillResponse `json:"skills"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// UpdateProfileRequest updates the candidate's own profile
type UpdateProfileRequest struct {
	ExperienceYears *int     `json:"experienceYears" binding:"omitempty,min=0,max=60" example:"4"`
	Skills          []string `json:"skills,omitempty" example:"Go,SQL"`
}

// CandidateSummaryResponse is a candidate row as staff see it
type CandidateSummaryResponse struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	ExperienceYears int       `json:"experienceYears"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	UpdatedBy       *string   `json:"updatedBy,omitempty"`
	Skills          []string  `json:"skills"`
}

// UpdateCandidateStatusRequest changes a candidate's pipeline status
type UpdateCandidateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Shortlisted"`
}

// ApplyRequest carries optional application metadata
type ApplyRequest struct {
	Source string `json:"source,omitempty" binding:"max=100" example:"LinkedIn"`
}

// DocumentResponse represents an uploaded document
type DocumentResponse struct {
	ID           int64      `json:"id"`
	CandidateID  int64      `json:"candidateId"`
	DocumentType string     `json:"documentType"`
	FileName     string     `json:"fileName"`
	FilePath     string     `json:"filePath"`
	FileURL      string     `json:"fileUrl"`
	UploadedAt   time.Time  `json:"uploadedAt"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty"`
	VerifiedBy   *int64     `json:"verifiedBy,omitempty"`
}

// NewCandidateProfileResponse converts a candidate with its user
func NewCandidateProfileResponse(c *models.Candidate) CandidateProfileResponse {
	resp := CandidateProfileResponse{
		ID:              c.ID,
		UserID:          c.UserID,
		ExperienceYears: c.ExperienceYears,
		Status:          string(c.Status),
		Skills:          NewSkillResponses(c.Skills),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.User != nil {
		resp.FullName = c.User.FullName
		resp.Email = c.User.Email
	}
	return resp
}

// NewCandidateSummaryResponse converts a candidate for staff listings
func NewCandidateSummaryResponse(c *models.Candidate) CandidateSummaryResponse {
	resp := CandidateSummaryResponse{
		ID:              c.ID,
		ExperienceYears: c.ExperienceYears,
		Status:          string(c.Status),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		UpdatedBy:       c.UpdatedByName,
		Skills:          make([]string, 0, len(c.Skills)),
	}
	if c.User != nil {
		resp.FullName = c.User.FullName
		resp.Email = c.User.Email
	}
	for _, s := range c.Skills {
		resp.Skills = append(resp.Skills, s.Name)
	}
	return resp
}

// NewDocumentResponse converts a document; baseURL prefixes the stored relative path
func NewDocumentResponse(d *models.Document, baseURL string) DocumentResponse {
	return DocumentResponse{
		ID:           d.ID,
		CandidateID:  d.CandidateID,
		DocumentType: d.DocumentType,
		FileName:     d.FileName,
		FilePath:     d.FilePath,
		FileURL:      baseURL + "/uploads/" + d.FilePath,
		UploadedAt:   d.UploadedAt,
		Verified:     d.Verified,
		VerifiedAt:   d.VerifiedAt,
		VerifiedBy:   d.VerifiedBy,
	}
}
