package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/events"
)

// UserService defines the admin operations on accounts
type UserService interface {
	ListPending(ctx context.Context) ([]dto.UserResponse, error)
	ListAll(ctx context.Context) ([]dto.UserResponse, error)
	Decide(ctx context.Context, userID int64, action string) (*dto.UserResponse, error)
	Delete(ctx context.Context, userID int64) error
	ListInterviewers(ctx context.Context) ([]dto.InterviewerResponse, error)
}

type userServiceImpl struct {
	userRepo  repositories.IUserRepository
	publisher events.Publisher
	logger    zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, publisher events.Publisher, logger zerolog.Logger) UserService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &userServiceImpl{
		userRepo:  userRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// ListPending returns accounts waiting for approval
func (s *userServiceImpl) ListPending(ctx context.Context) ([]dto.UserResponse, error) {
	status := models.UserStatusPendingApproval
	users, err := s.userRepo.List(ctx, &status)
	if err != nil {
		return nil, fmt.Errorf("error listing pending users: %w", err)
	}
	return dto.NewUserResponses(users), nil
}

// ListAll returns every account, newest first
func (s *userServiceImpl) ListAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.userRepo.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return dto.NewUserResponses(users), nil
}

// Decide approves or rejects a pending account
func (s *userServiceImpl) Decide(ctx context.Context, userID int64, action string) (*dto.UserResponse, error) {
	var status models.UserStatus
	switch strings.ToLower(strings.TrimSpace(action)) {
	case "approve":
		status = models.UserStatusActive
	case "reject":
		status = models.UserStatusRejected
	default:
		return nil, apperrors.NewValidationError("action", "action must be 'approve' or 'reject'")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Status != models.UserStatusPendingApproval {
		return nil, apperrors.NewBadRequestError("User is not pending approval")
	}

	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		return nil, fmt.Errorf("error updating user status: %w", err)
	}
	user.Status = status

	s.logger.Info().Int64("userID", userID).Str("status", string(status)).Msg("Account decision recorded")
	s.publishDecision(ctx, user)

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

func (s *userServiceImpl) publishDecision(ctx context.Context, user *models.User) {
	event, err := events.NewEvent(events.TypeAccountDecided, events.AccountDecided{
		UserID:   user.ID,
		FullName: user.FullName,
		Email:    user.Email,
		Approved: user.Status == models.UserStatusActive,
	})
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to build account decision event")
		return
	}

	pubCtx, cancel := detached(ctx)
	defer cancel()
	if err := s.publisher.Publish(pubCtx, event); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to publish account decision event")
	}
}

// Delete removes an account unless it holds the Admin role
func (s *userServiceImpl) Delete(ctx context.Context, userID int64) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.HasRole(models.RoleAdmin) {
		return apperrors.ErrAdminUndeletable
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	s.logger.Info().Int64("userID", userID).Msg("User deleted")
	return nil
}

// ListInterviewers returns Active users holding the Interviewer role
func (s *userServiceImpl) ListInterviewers(ctx context.Context) ([]dto.InterviewerResponse, error) {
	users, err := s.userRepo.ListActiveByRole(ctx, models.RoleInterviewer)
	if err != nil {
		return nil, fmt.Errorf("error listing interviewers: %w", err)
	}
	out := make([]dto.InterviewerResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.InterviewerResponse{ID: u.ID, FullName: u.FullName, Email: u.Email})
	}
	return out, nil
}
