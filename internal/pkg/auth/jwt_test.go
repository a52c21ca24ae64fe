package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/yigit/recruitment/internal/app/models"
)

func testUser() *models.User {
	return &models.User{
		ID:       7,
		FullName: "Hannah Recruiter",
		Email:    "hannah@example.com",
		Username: "hannah",
		Roles:    []models.Role{models.RoleRecruiter, models.RoleInterviewer},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret", AccessTokenExp: 24 * time.Hour, TokenIssuer: "test"})

	token, expiresIn, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	if expiresIn != 86400 {
		t.Errorf("expiresIn = %d, want 86400", expiresIn)
	}

	claims, err := svc.ValidateAndExtractClaims(token)
	if err != nil {
		t.Fatalf("ValidateAndExtractClaims returned error: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "hannah" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != "Recruiter" || claims.Roles[1] != "Interviewer" {
		t.Errorf("Roles = %v, want [Recruiter Interviewer]", claims.Roles)
	}
}

func TestValidateTokenErrors(t *testing.T) {
	svc := NewJWTService(JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
	token, _, err := svc.GenerateToken(testUser())
	if err != nil {
		t.Fatal(err)
	}

	t.Run("expired", func(t *testing.T) {
		expired := NewJWTService(JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour})
		expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		if _, err := expired.ValidateToken(token); !errors.Is(err, ErrExpiredToken) {
			t.Errorf("err = %v, want ErrExpiredToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewJWTService(JWTConfig{SecretKey: "other", AccessTokenExp: time.Hour})
		if _, err := other.ValidateToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		if _, err := svc.ValidateToken("not-a-token"); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("err = %v, want ErrInvalidFormat", err)
		}
	})
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer a.b.c", want: "a.b.c"},
		{name: "raw jwt", header: "a.b.c", want: "a.b.c"},
		{name: "empty", header: "", wantErr: true},
		{name: "garbage", header: "Basic xyz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	if err != nil {
		t.Fatal(err)
	}
	if !CheckPassword(hash, "s3cret!") {
		t.Error("CheckPassword should accept the original password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword should reject a different password")
	}
}
