package user

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/db"
	"github.com/yigit/recruitment/internal/pkg/logger"
)

// RoleRepository handles the user_roles table
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{db: db}
}

// InsertRoles writes a user's role set, keeping the given order
func InsertRoles(ctx context.Context, q db.Querier, userID int64, roles []models.Role) error {
	if len(roles) == 0 {
		return nil
	}
	builder := squirrel.Insert("user_roles").
		Columns("user_id", "role", "position").
		PlaceholderFormat(squirrel.Dollar)
	for i, role := range roles {
		builder = builder.Values(userID, role, i)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building insert roles SQL")
		return err
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error inserting user roles")
		return err
	}
	return nil
}

// RolesByUserIDs loads the role sets of several users at once
func (r *RoleRepository) RolesByUserIDs(ctx context.Context, userIDs []int64) (map[int64][]models.Role, error) {
	result := make(map[int64][]models.Role, len(userIDs))
	if len(userIDs) == 0 {
		return result, nil
	}

	sql, args, err := squirrel.Select("user_id", "role").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userIDs}).
		OrderBy("user_id", "position").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building roles by user SQL")
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing roles by user query")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var userID int64
		var role models.Role
		if err := rows.Scan(&userID, &role); err != nil {
			return nil, err
		}
		result[userID] = append(result[userID], role)
	}
	return result, rows.Err()
}
