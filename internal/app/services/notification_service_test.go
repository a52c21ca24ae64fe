package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/auth"
	"github.com/yigit/recruitment/internal/pkg/apperrors"
	"github.com/yigit/recruitment/internal/pkg/websocket"
)

func TestNotifyPushesNotificationAndCount(t *testing.T) {
	repo := &fakeNotificationRepo{}
	pusher := &fakePusher{}
	svc := NewNotificationService(repo, pusher, zerolog.Nop())

	n, err := svc.Notify(context.Background(), 8, "hello")
	if err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
	if n.ID == 0 || n.UserID != 8 {
		t.Errorf("unexpected notification %+v", n)
	}
	if len(pusher.pushed) != 2 {
		t.Fatalf("pushes = %d, want 2", len(pusher.pushed))
	}
	if pusher.pushed[0].messageType != websocket.MessageTypeNotification || pusher.pushed[1].messageType != websocket.MessageTypeUnreadCount {
		t.Errorf("push order = %+v", pusher.pushed)
	}
}

func TestNotifyIgnoresPushFailure(t *testing.T) {
	repo := &fakeNotificationRepo{}
	svc := NewNotificationService(repo, &fakePusher{err: errors.New("offline")}, zerolog.Nop())
	if _, err := svc.Notify(context.Background(), 8, "hello"); err != nil {
		t.Fatalf("push failure should not fail Notify: %v", err)
	}
	if len(repo.created) != 1 {
		t.Error("notification should still be stored")
	}
}

func TestNotifyWithoutPusher(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepo{}, nil, zerolog.Nop())
	if _, err := svc.Notify(context.Background(), 1, "hi"); err != nil {
		t.Fatalf("Notify returned error: %v", err)
	}
}

func TestMarkAsReadIsOwnerScoped(t *testing.T) {
	repo := &fakeNotificationRepo{owners: map[int64]int64{5: 8}}
	svc := NewNotificationService(repo, nil, zerolog.Nop())

	if err := svc.MarkAsRead(context.Background(), auth.Principal{UserID: 8}, 5); err != nil {
		t.Fatalf("owner MarkAsRead returned error: %v", err)
	}
	if err := svc.MarkAsRead(context.Background(), auth.Principal{UserID: 9}, 5); !errors.Is(err, apperrors.ErrResourceNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
}
