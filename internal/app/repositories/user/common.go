package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/db"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/dberrors"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// Repository handles the users table
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new Repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		db: db,
	}
}

func selectUserQuery() squirrel.SelectBuilder {
	return squirrel.Select(
		"u.id", "u.full_name", "u.email", "u.username", "u.password_hash",
		"u.status", "u.created_at", "u.updated_at",
	).From("users u").
		PlaceholderFormat(squirrel.Dollar)
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.FullName, &u.Email, &u.Username, &u.PasswordHash,
		&u.Status, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// InsertUser inserts the users row through q and returns the new id.
// Unique violations are mapped to the username or email conflict errors.
func InsertUser(ctx context.Context, q db.Querier, u *models.User) (int64, error) {
	sql, args, err := squirrel.Insert("users").
		Columns("full_name", "email", "username", "password_hash", "status").
		Values(u.FullName, u.Email, u.Username, u.PasswordHash, u.Status).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create user SQL")
		return 0, err
	}

	if err := q.QueryRow(ctx, sql, args...).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt); err != nil {
		switch {
		case dberrors.IsDuplicateConstraintError(err, "users_username_key"):
			return 0, apperrors.ErrUsernameAlreadyExists
		case dberrors.IsDuplicateConstraintError(err, "users_email_key"):
			return 0, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create user query")
		return 0, fmt.Errorf("error creating user: %w", err)
	}
	return u.ID, nil
}

// GetUserByID retrieves a user by ID without roles
func (r *Repository) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	sql, args, err := selectUserQuery().Where(squirrel.Eq{"u.id": id}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by ID SQL")
		return nil, err
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// GetUserByUsername retrieves a user by username without roles
func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	sql, args, err := selectUserQuery().Where(squirrel.Eq{"u.username": username}).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get user by username SQL")
		return nil, err
	}
	return scanUser(r.db.QueryRow(ctx, sql, args...))
}

// ListUsers lists users newest first, optionally filtered by status and role
func (r *Repository) ListUsers(ctx context.Context, status *models.UserStatus, role *models.Role) ([]*models.User, error) {
	builder := selectUserQuery().OrderBy("u.created_at DESC", "u.id DESC")
	if status != nil {
		builder = builder.Where(squirrel.Eq{"u.status": *status})
	}
	if role != nil {
		builder = builder.Where("EXISTS (SELECT 1 FROM user_roles ur WHERE ur.user_id = u.id AND ur.role = ?)", *role)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list users SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list users query")
		return nil, err
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// exists checks whether a column already holds value
func (r *Repository) exists(ctx context.Context, column, value string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT EXISTS(SELECT 1 FROM users WHERE %s = $1)`, column), value).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking %s: %w", column, err)
	}
	return exists, nil
}

// UsernameExists checks if a username is taken
func (r *Repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username", username)
}

// EmailExists checks if an email already exists
func (r *Repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

// UpdateStatus sets a user's account status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error {
	sql, args, err := squirrel.Update("users").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update user status SQL")
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error updating user status")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user; role, candidate and notification rows cascade
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("userID", id).Msg("Error deleting user")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// FilterActiveWithRole returns the subset of ids belonging to Active users holding role
func (r *Repository) FilterActiveWithRole(ctx context.Context, ids []int64, role models.Role) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sql, args, err := squirrel.Select("u.id").
		From("users u").
		Join("user_roles ur ON ur.user_id = u.id").
		Where(squirrel.Eq{"u.id": ids, "u.status": models.UserStatusActive, "ur.role": role}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building filter users by role SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	found := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		found = append(found, id)
	}
	return found, rows.Err()
}
