package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/repositories"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	pkgauth "github.com/yigit/recruitment/internal/pkg/auth"
	"github.com/yigit/recruitment/internal/pkg/validation"
)

// TokenIssuer signs access tokens for authenticated users
type TokenIssuer interface {
	GenerateToken(user *models.User) (token string, expiresIn int, err error)
}

// AuthService handles authentication operations
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Me(ctx context.Context, p auth.Principal) (*dto.UserResponse, error)
}

type authServiceImpl struct {
	userRepo repositories.IUserRepository
	tokens   TokenIssuer
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, tokens TokenIssuer, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login checks credentials and issues a token for Active accounts
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Info().Str("username", username).Msg("Login attempt for unknown username")
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	if !pkgauth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Info().Int64("userID", user.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.Status != models.UserStatusActive {
		return nil, apperrors.NewCustomError(apperrors.ErrAccountDisabled,
			fmt.Sprintf("Account is not active (status: %s)", user.Status))
	}

	token, expiresIn, err := s.tokens.GenerateToken(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate access token")
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info().Int64("userID", user.ID).Strs("roles", user.RoleNames()).Msg("User logged in")

	return &dto.LoginResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int64(expiresIn),
		User:      dto.NewUserResponse(user),
	}, nil
}

// Register creates an account. Requesting any staff role parks the account in
// PendingApproval; candidate-only accounts are active at once and get their profile.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	username := strings.TrimSpace(req.Username)

	if !validation.ValidFullName(fullName) {
		return nil, apperrors.NewValidationError("fullName", "full name must be between 2 and 100 characters")
	}
	if !validation.ValidEmail(email) {
		return nil, apperrors.NewValidationError("email", "invalid email format")
	}
	if !validation.ValidUsername(username) {
		return nil, apperrors.NewValidationError("username", "username must be 3-50 letters, digits, dots, dashes or underscores")
	}
	if len(req.Password) < validation.PasswordMinLength {
		return nil, apperrors.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}

	roles, err := parseRequestedRoles(req.Roles)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.UsernameExists(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("error checking if username exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	exists, err = s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking if email exists: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := pkgauth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Roles:        roles,
		Status:       models.UserStatusActive,
	}
	if needsApproval(roles) {
		user.Status = models.UserStatusPendingApproval
	}

	withCandidate := user.Status == models.UserStatusActive && user.HasRole(models.RoleCandidate)
	if err := s.userRepo.Create(ctx, user, withCandidate); err != nil {
		return nil, err
	}

	message := "Registration successful"
	if user.Status == models.UserStatusPendingApproval {
		message = "Registration successful. Your account is pending admin approval"
	}

	s.logger.Info().
		Int64("userID", user.ID).
		Strs("roles", user.RoleNames()).
		Str("status", string(user.Status)).
		Msg("User registered")

	return &dto.RegisterResponse{
		Success: true,
		Message: message,
		User:    dto.NewUserResponse(user),
	}, nil
}

// Me returns the caller's own account
func (s *authServiceImpl) Me(ctx context.Context, p auth.Principal) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// parseRequestedRoles resolves role names, dropping duplicates. No roles means Candidate.
func parseRequestedRoles(names []string) ([]models.Role, error) {
	if len(names) == 0 {
		return []models.Role{models.RoleCandidate}, nil
	}

	seen := make(map[models.Role]bool, len(names))
	roles := make([]models.Role, 0, len(names))
	for _, name := range names {
		role, ok := models.ParseRole(name)
		if !ok {
			return nil, apperrors.NewValidationError("roles", fmt.Sprintf("unknown role %q", name))
		}
		if seen[role] {
			continue
		}
		seen[role] = true
		roles = append(roles, role)
	}
	return roles, nil
}

func needsApproval(roles []models.Role) bool {
	for _, r := range roles {
		if r != models.RoleCandidate {
			return true
		}
	}
	return false
}
