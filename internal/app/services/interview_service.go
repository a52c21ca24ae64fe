package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/events"
	"github.com/yigit/recruitment/internal/pkg/validation"
)

// unknownJobTitle stands in for a job that can no longer be resolved
const unknownJobTitle = "Unknown Job"

// maxFeedbackComments is the longest feedback comment accepted
const maxFeedbackComments = 1000

// InterviewService defines the interview lifecycle
type InterviewService interface {
	List(ctx context.Context) ([]dto.InterviewResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.InterviewResponse, error)
	ListByCandidate(ctx context.Context, p auth.Principal, candidateID int64) ([]dto.InterviewResponse, error)
	ListByJob(ctx context.Context, jobID int64) ([]dto.InterviewResponse, error)
	ListByInterviewer(ctx context.Context, interviewerID int64) ([]dto.InterviewResponse, error)
	ListFeedbacks(ctx context.Context, id int64) ([]dto.FeedbackResponse, error)
	Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error)
	UpdateStatus(ctx context.Context, p auth.Principal, id int64, status string) (*dto.InterviewResponse, error)
	AddFeedback(ctx context.Context, p auth.Principal, id int64, req *dto.AddFeedbackRequest) (*dto.FeedbackResponse, error)
	Delete(ctx context.Context, id int64) error
}

type interviewServiceImpl struct {
	interviewRepo repositories.IInterviewRepository
	candidateRepo repositories.ICandidateRepository
	jobRepo       repositories.IJobRepository
	userRepo      repositories.IUserRepository
	notifications NotificationService
	publisher     events.Publisher
	authz         *auth.AuthorizationService
	logger        zerolog.Logger
	now           func() time.Time
}

// NewInterviewService creates a new InterviewService
func NewInterviewService(
	interviewRepo repositories.IInterviewRepository,
	candidateRepo repositories.ICandidateRepository,
	jobRepo repositories.IJobRepository,
	userRepo repositories.IUserRepository,
	notifications NotificationService,
	publisher events.Publisher,
	authz *auth.AuthorizationService,
	logger zerolog.Logger,
) InterviewService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &interviewServiceImpl{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		userRepo:      userRepo,
		notifications: notifications,
		publisher:     publisher,
		authz:         authz,
		logger:        logger,
		now:           time.Now,
	}
}

// List returns all interviews, latest scheduled first
func (s *interviewServiceImpl) List(ctx context.Context) ([]dto.InterviewResponse, error) {
	return s.list(ctx, repositories.InterviewFilter{})
}

// GetByID returns an interview with interviewers and feedbacks
func (s *interviewServiceImpl) GetByID(ctx context.Context, id int64) (*dto.InterviewResponse, error) {
	interview, err := s.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewInterviewResponse(interview)
	return &resp, nil
}

// ListByCandidate returns a candidate's interviews; candidates only see their own
func (s *interviewServiceImpl) ListByCandidate(ctx context.Context, p auth.Principal, candidateID int64) ([]dto.InterviewResponse, error) {
	if err := s.authz.ValidateCandidateAccess(ctx, p, candidateID); err != nil {
		return nil, err
	}
	return s.list(ctx, repositories.InterviewFilter{CandidateID: &candidateID})
}

// ListByJob returns the interviews for a job
func (s *interviewServiceImpl) ListByJob(ctx context.Context, jobID int64) ([]dto.InterviewResponse, error) {
	return s.list(ctx, repositories.InterviewFilter{JobID: &jobID})
}

// ListByInterviewer returns the interviews a user is assigned to
func (s *interviewServiceImpl) ListByInterviewer(ctx context.Context, interviewerID int64) ([]dto.InterviewResponse, error) {
	return s.list(ctx, repositories.InterviewFilter{InterviewerID: &interviewerID})
}

func (s *interviewServiceImpl) list(ctx context.Context, f repositories.InterviewFilter) ([]dto.InterviewResponse, error) {
	items, err := s.interviewRepo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("error listing interviews: %w", err)
	}
	return dto.NewInterviewResponses(items), nil
}

// ListFeedbacks returns the feedback given on an interview
func (s *interviewServiceImpl) ListFeedbacks(ctx context.Context, id int64) ([]dto.FeedbackResponse, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	feedbacks, err := s.interviewRepo.ListFeedbacks(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error listing feedbacks: %w", err)
	}
	out := make([]dto.FeedbackResponse, 0, len(feedbacks))
	for i := range feedbacks {
		out = append(out, dto.NewFeedbackResponse(&feedbacks[i]))
	}
	return out, nil
}

// Schedule creates a Scheduled interview with its interviewers in one transaction
func (s *interviewServiceImpl) Schedule(ctx context.Context, req *dto.ScheduleInterviewRequest) (*dto.InterviewResponse, error) {
	interviewType := strings.TrimSpace(req.InterviewType)
	if interviewType == "" {
		return nil, apperrors.NewValidationError("interviewType", "interviewType is required")
	}
	if req.RoundNo < 1 {
		return nil, apperrors.NewValidationError("roundNo", "roundNo must be at least 1")
	}
	if req.ScheduledDate.IsZero() {
		return nil, apperrors.NewValidationError("scheduledDate", "scheduledDate is required")
	}

	exists, err := s.candidateRepo.Exists(ctx, req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("error checking candidate: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrCandidateNotFound
	}
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		return nil, err
	}

	interviewerIDs := uniqueIDs(req.InterviewerIDs)
	if len(interviewerIDs) > 0 {
		valid, err := s.userRepo.FilterActiveWithRole(ctx, interviewerIDs, models.RoleInterviewer)
		if err != nil {
			return nil, fmt.Errorf("error checking interviewers: %w", err)
		}
		if len(valid) != len(interviewerIDs) {
			return nil, apperrors.NewValidationError("interviewerIds", "every interviewer must be an active user with the Interviewer role")
		}
	}

	interview := &models.Interview{
		CandidateID:   req.CandidateID,
		JobID:         req.JobID,
		ScheduledDate: req.ScheduledDate,
		InterviewType: interviewType,
		RoundNo:       req.RoundNo,
		Status:        models.InterviewStatusScheduled,
	}
	if err := s.interviewRepo.Create(ctx, interview, interviewerIDs); err != nil {
		return nil, fmt.Errorf("error scheduling interview: %w", err)
	}

	s.logger.Info().
		Int64("interviewID", interview.ID).
		Int64("candidateID", interview.CandidateID).
		Int64("jobID", interview.JobID).
		Int("interviewers", len(interviewerIDs)).
		Msg("Interview scheduled")

	return s.GetByID(ctx, interview.ID)
}

// UpdateStatus commits the new status, then notifies the candidate.
// Any status may follow any other. The notification steps never undo the update.
func (s *interviewServiceImpl) UpdateStatus(ctx context.Context, p auth.Principal, id int64, status string) (*dto.InterviewResponse, error) {
	next := models.InterviewStatus(strings.TrimSpace(status))
	if !next.Valid() {
		return nil, apperrors.NewValidationError("status",
			"status must be one of Scheduled, Other Interview, Selected, Rejected, Cancelled")
	}

	if err := s.interviewRepo.UpdateStatus(ctx, id, next, s.now()); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("interviewID", id).
		Str("status", string(next)).
		Int64("changedBy", p.UserID).
		Msg("Interview status updated")

	// The change is committed; notify before anything else can fail the request.
	s.announceStatusChange(ctx, id, next)

	interview, err := s.interviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reloading interview: %w", err)
	}
	resp := dto.NewInterviewResponse(interview)
	return &resp, nil
}

// announceStatusChange runs the post-commit side effects. Each one logs and continues on failure.
func (s *interviewServiceImpl) announceStatusChange(ctx context.Context, id int64, status models.InterviewStatus) {
	sideCtx, cancel := detached(ctx)
	defer cancel()

	notice, err := s.interviewRepo.NoticeFor(sideCtx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("interviewID", id).Msg("Failed to load interview for status notification")
		return
	}

	jobTitle := unknownJobTitle
	if notice.JobTitle != nil && *notice.JobTitle != "" {
		jobTitle = *notice.JobTitle
	}

	if _, err := s.notifications.Notify(sideCtx, notice.CandidateUserID, StatusChangeMessage(jobTitle, status)); err != nil {
		s.logger.Error().Err(err).Int64("interviewID", id).Int64("userID", notice.CandidateUserID).Msg("Failed to create status notification")
	}

	event, err := events.NewEvent(events.TypeInterviewStatusChanged, events.InterviewStatusChanged{
		InterviewID:     id,
		CandidateUserID: notice.CandidateUserID,
		CandidateName:   notice.CandidateName,
		CandidateEmail:  notice.CandidateEmail,
		JobTitle:        jobTitle,
		Status:          string(status),
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("interviewID", id).Msg("Failed to build status event")
		return
	}
	if err := s.publisher.Publish(sideCtx, event); err != nil {
		s.logger.Warn().Err(err).Int64("interviewID", id).Msg("Failed to publish status event")
	}
}

// StatusChangeMessage is the notification text sent to a candidate
func StatusChangeMessage(jobTitle string, status models.InterviewStatus) string {
	return fmt.Sprintf("Your interview status for '%s' has been updated to '%s'.", jobTitle, status)
}

// AddFeedback records an interviewer's rating. Interviewers without another
// role may only file feedback under their own id.
func (s *interviewServiceImpl) AddFeedback(ctx context.Context, p auth.Principal, id int64, req *dto.AddFeedbackRequest) (*dto.FeedbackResponse, error) {
	if err := s.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	if !validation.ValidRating(req.Rating) {
		return nil, apperrors.NewValidationError("rating", "rating must be between 1 and 5")
	}
	comments := strings.TrimSpace(req.Comments)
	if len(comments) > maxFeedbackComments {
		return nil, apperrors.NewValidationError("comments", "comments must be at most 1000 characters")
	}
	if req.InterviewerID <= 0 {
		return nil, apperrors.NewValidationError("interviewerId", "interviewerId is required")
	}
	if p.IsOnly(models.RoleInterviewer) && req.InterviewerID != p.UserID {
		return nil, apperrors.NewForbiddenError("interviewers can only submit their own feedback")
	}

	feedback := &models.Feedback{
		InterviewID:   id,
		InterviewerID: req.InterviewerID,
		Rating:        req.Rating,
		Comments:      comments,
	}
	if err := s.interviewRepo.AddFeedback(ctx, feedback); err != nil {
		return nil, fmt.Errorf("error adding feedback: %w", err)
	}

	s.logger.Info().Int64("interviewID", id).Int64("interviewerID", req.InterviewerID).Int("rating", req.Rating).Msg("Feedback added")
	resp := dto.NewFeedbackResponse(feedback)
	return &resp, nil
}

// Delete removes an interview with its interviewers and feedback
func (s *interviewServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.interviewRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("interviewID", id).Msg("Interview deleted")
	return nil
}

func (s *interviewServiceImpl) ensureExists(ctx context.Context, id int64) error {
	exists, err := s.interviewRepo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("error checking interview: %w", err)
	}
	if !exists {
		return apperrors.ErrInterviewNotFound
	}
	return nil
}
