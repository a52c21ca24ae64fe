package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/events"
)

func TestDeleteUser(t *testing.T) {
	repo := newFakeUserRepo(
		&models.User{ID: 1, Roles: []models.Role{models.RoleAdmin, models.RoleHR}},
		&models.User{ID: 2, Roles: []models.Role{models.RoleReviewer}},
	)
	svc := NewUserService(repo, nil, zerolog.Nop())

	if err := svc.Delete(context.Background(), 1); !errors.Is(err, apperrors.ErrAdminUndeletable) {
		t.Fatalf("deleting an admin: err = %v", err)
	}
	if _, ok := repo.users[1]; !ok {
		t.Fatal("admin row should remain")
	}

	if err := svc.Delete(context.Background(), 2); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, ok := repo.users[2]; ok {
		t.Fatal("user row should be removed")
	}

	if err := svc.Delete(context.Background(), 3); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("missing user: err = %v", err)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		status     models.UserStatus
		action     string
		want       error
		wantStatus models.UserStatus
	}{
		{name: "approve", status: models.UserStatusPendingApproval, action: "approve", wantStatus: models.UserStatusActive},
		{name: "reject", status: models.UserStatusPendingApproval, action: "Reject", wantStatus: models.UserStatusRejected},
		{name: "not pending", status: models.UserStatusActive, action: "approve", want: apperrors.ErrBadRequest},
		{name: "bad action", status: models.UserStatusPendingApproval, action: "maybe", want: apperrors.ErrValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeUserRepo(&models.User{ID: 5, FullName: "Pat", Email: "pat@example.com", Status: tt.status})
			pub := &fakePublisher{}
			svc := NewUserService(repo, pub, zerolog.Nop())

			resp, err := svc.Decide(context.Background(), 5, tt.action)
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Fatalf("err = %v, want %v", err, tt.want)
				}
				if len(pub.published) != 0 {
					t.Error("no event expected on failure")
				}
				return
			}
			if err != nil {
				t.Fatalf("Decide returned error: %v", err)
			}
			if repo.users[5].Status != tt.wantStatus || resp.Status != string(tt.wantStatus) {
				t.Errorf("status = %s, want %s", repo.users[5].Status, tt.wantStatus)
			}
			if len(pub.published) != 1 || pub.published[0].Type != events.TypeAccountDecided {
				t.Fatalf("published = %+v", pub.published)
			}
			var payload events.AccountDecided
			if err := pub.published[0].Decode(&payload); err != nil {
				t.Fatal(err)
			}
			if payload.Approved != (tt.wantStatus == models.UserStatusActive) {
				t.Errorf("approved = %v", payload.Approved)
			}
		})
	}
}
