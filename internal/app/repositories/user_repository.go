package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/repositories/user"
	"github.com/yigit/recruitment/internal/db"
)

// IUserRepository defines the interface for user-related database operations
type IUserRepository interface {
	// Create inserts the user with its roles. With withCandidate set, the
	// candidate profile is created in the same transaction.
	Create(ctx context.Context, u *models.User, withCandidate bool) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, status *models.UserStatus) ([]*models.User, error)
	ListActiveByRole(ctx context.Context, role models.Role) ([]*models.User, error)
	UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error
	Delete(ctx context.Context, id int64) error
	FilterActiveWithRole(ctx context.Context, ids []int64, role models.Role) ([]int64, error)
}

// UserRepository combines the users and user_roles repositories
type UserRepository struct {
	pool   *pgxpool.Pool
	common *user.Repository
	roles  *user.RoleRepository
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:   pool,
		common: user.NewRepository(pool),
		roles:  user.NewRoleRepository(pool),
	}
}

// Create inserts a user and its role rows in one transaction
func (r *UserRepository) Create(ctx context.Context, u *models.User, withCandidate bool) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := user.InsertUser(ctx, tx, u); err != nil {
			return err
		}
		if err := user.InsertRoles(ctx, tx, u.ID, u.Roles); err != nil {
			return err
		}
		if withCandidate {
			if _, err := insertCandidate(ctx, tx, u.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID retrieves a user with roles
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	u, err := r.common.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, r.attachRoles(ctx, u)
}

// GetByUsername retrieves a user with roles
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u, err := r.common.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return u, r.attachRoles(ctx, u)
}

// UsernameExists checks if a username is taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	return r.common.UsernameExists(ctx, username)
}

// EmailExists checks if an email already exists
func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.common.EmailExists(ctx, email)
}

// List returns users newest first; a nil status lists everyone
func (r *UserRepository) List(ctx context.Context, status *models.UserStatus) ([]*models.User, error) {
	users, err := r.common.ListUsers(ctx, status, nil)
	if err != nil {
		return nil, err
	}
	return users, r.attachRoles(ctx, users...)
}

// ListActiveByRole returns Active users holding role
func (r *UserRepository) ListActiveByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	active := models.UserStatusActive
	users, err := r.common.ListUsers(ctx, &active, &role)
	if err != nil {
		return nil, err
	}
	return users, r.attachRoles(ctx, users...)
}

// UpdateStatus sets a user's account status
func (r *UserRepository) UpdateStatus(ctx context.Context, id int64, status models.UserStatus) error {
	return r.common.UpdateStatus(ctx, id, status)
}

// Delete deletes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.common.DeleteUser(ctx, id)
}

// FilterActiveWithRole returns the ids that belong to Active users holding role
func (r *UserRepository) FilterActiveWithRole(ctx context.Context, ids []int64, role models.Role) ([]int64, error) {
	return r.common.FilterActiveWithRole(ctx, ids, role)
}

func (r *UserRepository) attachRoles(ctx context.Context, users ...*models.User) error {
	ids := make([]int64, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	roles, err := r.roles.RolesByUserIDs(ctx, ids)
	if err != nil {
		return err
	}
	for _, u := range users {
		u.Roles = roles[u.ID]
		if u.Roles == nil {
			u.Roles = []models.Role{}
		}
	}
	return nil
}
