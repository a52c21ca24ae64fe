package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// INotificationRepository defines notification persistence
type INotificationRepository interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID int64, limit int) ([]*models.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int64, at time.Time) error
	MarkAllAsRead(ctx context.Context, userID int64, at time.Time) (int64, error)
	UnreadCount(ctx context.Context, userID int64) (int64, error)
}

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new NotificationRepository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts an unread notification
func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, message) VALUES ($1, $2)
		RETURNING id, is_read, created_at`, n.UserID, n.Message).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", n.UserID).Msg("Error creating notification")
		return err
	}
	return nil
}

// ListForUser returns a user's notifications newest first
func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64, limit int) ([]*models.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, message, is_read, created_at, read_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, userID, limit)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error listing notifications")
		return nil, err
	}
	defer rows.Close()

	items := []*models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedAt, &n.ReadAt); err != nil {
			return nil, err
		}
		items = append(items, &n)
	}
	return items, rows.Err()
}

// MarkAsRead marks one of userID's notifications read. Other users' notifications are not found.
func (r *NotificationRepository) MarkAsRead(ctx context.Context, id, userID int64, at time.Time) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = COALESCE(read_at, $3)
		WHERE id = $1 AND user_id = $2`, id, userID, at)
	if err != nil {
		logger.Error().Err(err).Int64("notificationID", id).Msg("Error marking notification read")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}
	return nil
}

// MarkAllAsRead marks every unread notification of userID and returns how many changed
func (r *NotificationRepository) MarkAllAsRead(ctx context.Context, userID int64, at time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE notifications SET is_read = TRUE, read_at = $2
		WHERE user_id = $1 AND is_read = FALSE`, userID, at)
	if err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error marking notifications read")
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// UnreadCount counts userID's unread notifications
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int64) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`, userID).Scan(&n)
	return n, err
}
