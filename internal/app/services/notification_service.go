package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/websocket"
)

// DefaultNotificationLimit caps notification listings
const DefaultNotificationLimit = 10

// pushTimeout bounds how long Notify waits for the websocket hub to take a message
const pushTimeout = 2 * time.Second

// Pusher delivers live messages to a user's open connections
type Pusher interface {
	SendToUser(ctx context.Context, userID int64, messageType string, payload interface{}) error
}

// NotificationService defines notification operations
type NotificationService interface {
	Notify(ctx context.Context, userID int64, message string) (*models.Notification, error)
	ListForUser(ctx context.Context, userID int64, limit int) ([]dto.NotificationResponse, error)
	MarkAsRead(ctx context.Context, p auth.Principal, id int64) error
	MarkAllAsRead(ctx context.Context, p auth.Principal) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

type notificationServiceImpl struct {
	repo   repositories.INotificationRepository
	pusher Pusher
	logger zerolog.Logger
	now    func() time.Time
}

// NewNotificationService creates a new NotificationService. A nil pusher disables live delivery.
func NewNotificationService(repo repositories.INotificationRepository, pusher Pusher, logger zerolog.Logger) NotificationService {
	return &notificationServiceImpl{
		repo:   repo,
		pusher: pusher,
		logger: logger,
		now:    time.Now,
	}
}

// Notify stores a notification and pushes it to the user's open connections.
// Push failures are logged; only the insert can fail the call.
func (s *notificationServiceImpl) Notify(ctx context.Context, userID int64, message string) (*models.Notification, error) {
	n := &models.Notification{UserID: userID, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("error creating notification: %w", err)
	}

	s.push(ctx, userID, websocket.MessageTypeNotification, dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	})
	s.pushUnreadCount(ctx, userID)
	return n, nil
}

func (s *notificationServiceImpl) push(ctx context.Context, userID int64, messageType string, payload interface{}) {
	if s.pusher == nil {
		return
	}
	pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
	defer cancel()
	if err := s.pusher.SendToUser(pushCtx, userID, messageType, payload); err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Str("type", messageType).Msg("Failed to push websocket message")
	}
}

func (s *notificationServiceImpl) pushUnreadCount(ctx context.Context, userID int64) {
	if s.pusher == nil {
		return
	}
	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to count unread notifications")
		return
	}
	s.push(ctx, userID, websocket.MessageTypeUnreadCount, dto.UnreadCountResponse{Count: count})
}

// ListForUser returns the newest notifications of a user
func (s *notificationServiceImpl) ListForUser(ctx context.Context, userID int64, limit int) ([]dto.NotificationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultNotificationLimit
	}
	items, err := s.repo.ListForUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	return dto.NewNotificationResponses(items), nil
}

// MarkAsRead marks one of the caller's notifications read
func (s *notificationServiceImpl) MarkAsRead(ctx context.Context, p auth.Principal, id int64) error {
	if err := s.repo.MarkAsRead(ctx, id, p.UserID, s.now()); err != nil {
		return err
	}
	s.pushUnreadCount(ctx, p.UserID)
	return nil
}

// MarkAllAsRead marks every unread notification of the caller and returns how many changed
func (s *notificationServiceImpl) MarkAllAsRead(ctx context.Context, p auth.Principal) (int64, error) {
	n, err := s.repo.MarkAllAsRead(ctx, p.UserID, s.now())
	if err != nil {
		return 0, fmt.Errorf("error marking notifications read: %w", err)
	}
	if n > 0 {
		s.push(ctx, p.UserID, websocket.MessageTypeUnreadCount, dto.UnreadCountResponse{Count: 0})
	}
	return n, nil
}

// UnreadCount counts a user's unread notifications
func (s *notificationServiceImpl) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	return s.repo.UnreadCount(ctx, userID)
}
