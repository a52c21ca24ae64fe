package dto

import (
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

// CreateOfferRequest extends an offer to a candidate
type CreateOfferRequest struct {
	CandidateID int64      `json:"candidateId" binding:"required,min=1"`
	JobID       int64      `json:"jobId" binding:"required,min=1"`
	JoiningDate *time.Time `json:"joiningDate,omitempty"`
}

// UpdateOfferStatusRequest changes an offer's status
type UpdateOfferStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Offered Accepted Rejected Joined" example:"Accepted"`
}

// RespondOfferRequest is a candidate's answer to an offer
type RespondOfferRequest struct {
	Accept bool `json:"accept"`
}

// OfferResponse represents an offer
type OfferResponse struct {
	ID              int64      `json:"id"`
	CandidateID     int64      `json:"candidateId"`
	JobID           int64      `json:"jobId"`
	JobTitle        string     `json:"jobTitle"`
	OfferDate       time.Time  `json:"offerDate"`
	JoiningDate     *time.Time `json:"joiningDate"`
	Status          string     `json:"status"`
	StatusUpdatedAt *time.Time `json:"statusUpdatedAt,omitempty"`
}

// NewOfferResponse converts an offer model
func NewOfferResponse(o *models.Offer) OfferResponse {
	return OfferResponse{
		ID:              o.ID,
		CandidateID:     o.CandidateID,
		JobID:           o.JobID,
		JobTitle:        o.JobTitle,
		OfferDate:       o.OfferDate,
		JoiningDate:     o.JoiningDate,
		Status:          string(o.Status),
		StatusUpdatedAt: o.StatusUpdatedAt,
	}
}

// NewOfferResponses converts a slice of offers
func NewOfferResponses(items []*models.Offer) []OfferResponse {
	out := make([]OfferResponse, 0, len(items))
	for _, o := range items {
		out = append(out, NewOfferResponse(o))
	}
	return out
}
