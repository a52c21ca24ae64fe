package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	pkgauth "github.com/yigit/recruitment/internal/pkg/auth"
)

func seededUserRepo(t *testing.T) *fakeUserRepo {
	t.Helper()
	hash, err := pkgauth.HashPassword("secret123")
	if err != nil {
		t.Fatal(err)
	}
	return newFakeUserRepo(
		&models.User{ID: 1, Username: "active", Email: "active@example.com", PasswordHash: hash,
			Roles: []models.Role{models.RoleHR}, Status: models.UserStatusActive},
		&models.User{ID: 2, Username: "waiting", Email: "waiting@example.com", PasswordHash: hash,
			Roles: []models.Role{models.RoleRecruiter}, Status: models.UserStatusPendingApproval},
	)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     error
	}{
		{name: "success", username: "active", password: "secret123"},
		{name: "unknown user", username: "ghost", password: "secret123", want: apperrors.ErrInvalidCredentials},
		{name: "wrong password", username: "active", password: "nope", want: apperrors.ErrInvalidCredentials},
		{name: "pending account", username: "waiting", password: "secret123", want: apperrors.ErrAccountDisabled},
		{name: "missing fields", username: "", password: "", want: apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAuthService(seededUserRepo(t), fakeTokens{}, zerolog.Nop())
			resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: tt.username, Password: tt.password})
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login returned error: %v", err)
			}
			if !resp.Success || resp.Token != "token-for-active" {
				t.Errorf("unexpected response %+v", resp)
			}
		})
	}
}

func TestLoginDisabledMessageNamesStatus(t *testing.T) {
	svc := NewAuthService(seededUserRepo(t), fakeTokens{}, zerolog.Nop())
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "waiting", Password: "secret123"})
	if err == nil || err.Error() != "Account is not active (status: PendingApproval)" {
		t.Fatalf("err = %v", err)
	}
}

func TestRegister(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.RegisterRequest
		want          error
		wantStatus    models.UserStatus
		withCandidate bool
	}{
		{
			name:          "candidate is active at once",
			req:           dto.RegisterRequest{FullName: "New Person", Email: "New@Example.com", Username: "newbie", Password: "secret123"},
			wantStatus:    models.UserStatusActive,
			withCandidate: true,
		},
		{
			name:       "staff role waits for approval",
			req:        dto.RegisterRequest{FullName: "New Staff", Email: "staff@example.com", Username: "staffer", Password: "secret123", Roles: []string{"Interviewer"}},
			wantStatus: models.UserStatusPendingApproval,
		},
		{
			name: "duplicate username",
			req:  dto.RegisterRequest{FullName: "Dup", Email: "dup@example.com", Username: "active", Password: "secret123"},
			want: apperrors.ErrUsernameAlreadyExists,
		},
		{
			name: "duplicate email",
			req:  dto.RegisterRequest{FullName: "Dup", Email: "active@example.com", Username: "fresh", Password: "secret123"},
			want: apperrors.ErrEmailAlreadyExists,
		},
		{
			name: "short password",
			req:  dto.RegisterRequest{FullName: "Short", Email: "short@example.com", Username: "shorty", Password: "123"},
			want: apperrors.ErrValidationFailed,
		},
		{
			name: "unknown role",
			req:  dto.RegisterRequest{FullName: "Odd", Email: "odd@example.com", Username: "oddone", Password: "secret123", Roles: []string{"Janitor"}},
			want: apperrors.ErrValidationFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seededUserRepo(t)
			svc := NewAuthService(repo, fakeTokens{}, zerolog.Nop())
			resp, err := svc.Register(context.Background(), &tt.req)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("Register returned error: %v", err)
			}
			created := repo.created[0]
			if created.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", created.Status, tt.wantStatus)
			}
			if repo.withCandidate != tt.withCandidate {
				t.Errorf("withCandidate = %v, want %v", repo.withCandidate, tt.withCandidate)
			}
			if created.PasswordHash == tt.req.Password {
				t.Error("password stored in clear text")
			}
			if !resp.Success {
				t.Error("expected success")
			}
		})
	}
}
