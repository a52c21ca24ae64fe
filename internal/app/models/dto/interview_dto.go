package dto

import (
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

// ScheduleInterviewRequest schedules a new interview round
type ScheduleInterviewRequest struct {
	CandidateID    int64     `json:"candidateId" binding:"required,min=1" example:"1"`
	JobID          int64     `json:"jobId" binding:"required,min=1" example:"2"`
	ScheduledDate  time.Time `json:"scheduledDate" binding:"required" example:"2025-06-01T10:00:00Z"`
	InterviewType  string    `json:"interviewType" binding:"required,max=50" example:"Technical"`
	RoundNo        int       `json:"roundNo" binding:"required,min=1" example:"1"`
	InterviewerIDs []int64   `json:"interviewerIds"`
}

// UpdateInterviewStatusRequest moves an interview to a new status
type UpdateInterviewStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Selected"`
}

// AddFeedbackRequest records an interviewer's rating
type AddFeedbackRequest struct {
	InterviewerID int64  `json:"interviewerId" binding:"required,min=1" example:"4"`
	Rating        int    `json:"rating" example:"4"`
	Comments      string `json:"comments" binding:"max=1000" example:"Strong system design answers"`
}

// InterviewResponse represents an interview with its assignments
type InterviewResponse struct {
	ID            int64                   `json:"id"`
	CandidateID   int64                   `json:"candidateId"`
	CandidateName string                  `json:"candidateName"`
	JobID         int64                   `json:"jobId"`
	JobTitle      string                  `json:"jobTitle"`
	ScheduledDate time.Time               `json:"scheduledDate"`
	InterviewType string                  `json:"interviewType"`
	RoundNo       int                     `json:"roundNo"`
	Status        string                  `json:"status"`
	CompletedAt   *time.Time              `json:"completedAt,omitempty"`
	Interviewers  []InterviewerAssignment `json:"interviewers"`
	Feedbacks     []FeedbackResponse      `json:"feedbacks,omitempty"`
}

// InterviewerAssignment names an assigned interviewer
type InterviewerAssignment struct {
	UserID   int64  `json:"userId"`
	FullName string `json:"fullName"`
}

// FeedbackResponse represents one feedback row
type FeedbackResponse struct {
	ID              int64     `json:"id"`
	InterviewID     int64     `json:"interviewId"`
	InterviewerID   int64     `json:"interviewerId"`
	InterviewerName string    `json:"interviewerName"`
	Rating          int       `json:"rating"`
	Comments        string    `json:"comments"`
	CreatedAt       time.Time `json:"createdAt"`
}

// NewFeedbackResponse converts a feedback model
func NewFeedbackResponse(f *models.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:              f.ID,
		InterviewID:     f.InterviewID,
		InterviewerID:   f.InterviewerID,
		InterviewerName: f.InterviewerName,
		Rating:          f.Rating,
		Comments:        f.Comments,
		CreatedAt:       f.CreatedAt,
	}
}

// NewInterviewResponse converts an interview model
func NewInterviewResponse(i *models.Interview) InterviewResponse {
	resp := InterviewResponse{
		ID:            i.ID,
		CandidateID:   i.CandidateID,
		CandidateName: i.CandidateName,
		JobID:         i.JobID,
		JobTitle:      i.JobTitle,
		ScheduledDate: i.ScheduledDate,
		InterviewType: i.InterviewType,
		RoundNo:       i.RoundNo,
		Status:        string(i.Status),
		CompletedAt:   i.CompletedAt,
		Interviewers:  make([]InterviewerAssignment, 0, len(i.Interviewers)),
	}
	for _, a := range i.Interviewers {
		resp.Interviewers = append(resp.Interviewers, InterviewerAssignment{UserID: a.UserID, FullName: a.FullName})
	}
	for k := range i.Feedbacks {
		resp.Feedbacks = append(resp.Feedbacks, NewFeedbackResponse(&i.Feedbacks[k]))
	}
	return resp
}

// NewInterviewResponses converts a slice of interviews
func NewInterviewResponses(items []*models.Interview) []InterviewResponse {
	out := make([]InterviewResponse, 0, len(items))
	for _, i := range items {
		out = append(out, NewInterviewResponse(i))
	}
	return out
}
