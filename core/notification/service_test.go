package notification_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/shule/core/notification"
)

func createNotification(t *testing.T, repo notification.Repository, userID, title string) notification.Notification {
	t.Helper()

	n, err := repo.CreateNotification(notification.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Message:   "msg",
		Type:      notification.TypeSystem,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("CreateNotification() failed: %v", err)
	}
	return n
}

func TestService_ForUser(t *testing.T) {
	repo, _ := setup(t)
	svc := notification.NewService(repo)

	createNotification(t, repo, "u1", "first")
	createNotification(t, repo, "u1", "second")
	createNotification(t, repo, "u2", "other")

	notifs, err := svc.ForUser("u1")
	if err != nil {
		t.Fatalf("ForUser() failed: %v", err)
	}
	if len(notifs) != 2 {
		t.Fatalf("ForUser() returned %d notifications, want 2", len(notifs))
	}
	// newest first
	if notifs[0].Title != "second" || notifs[1].Title != "first" {
		t.Errorf("unexpected order: %s, %s", notifs[0].Title, notifs[1].Title)
	}

	if notifs, _ := svc.ForUser("nobody"); len(notifs) != 0 {
		t.Errorf("ForUser(nobody) returned %d notifications, want 0", len(notifs))
	}
}

func TestService_readTracking(t *testing.T) {
	repo, _ := setup(t)
	svc := notification.NewService(repo)

	n1 := createNotification(t, repo, "u1", "first")
	createNotification(t, repo, "u1", "second")
	createNotification(t, repo, "u1", "third")

	if got, _ := svc.UnreadCount("u1"); got != 3 {
		t.Fatalf("UnreadCount() = %d, want 3", got)
	}

	marked, err := svc.MarkRead(n1.ID)
	if err != nil {
		t.Fatalf("MarkRead() failed: %v", err)
	}
	if !marked.IsRead {
		t.Error("MarkRead() returned an unread notification")
	}
	if got, _ := svc.UnreadCount("u1"); got != 2 {
		t.Errorf("UnreadCount() = %d, want 2", got)
	}

	if err := svc.MarkAllRead("u1"); err != nil {
		t.Fatalf("MarkAllRead() failed: %v", err)
	}
	if got, _ := svc.UnreadCount("u1"); got != 0 {
		t.Errorf("UnreadCount() = %d, want 0", got)
	}

	if _, err := svc.MarkRead("nope"); !errors.Is(err, notification.ErrNotFound) {
		t.Errorf("MarkRead(nope) error = %v, want %v", err, notification.ErrNotFound)
	}
}

func TestService_Delete(t *testing.T) {
	repo, _ := setup(t)
	svc := notification.NewService(repo)

	n1 := createNotification(t, repo, "u1", "first")
	n2 := createNotification(t, repo, "u1", "second")

	if err := svc.Delete(n1.ID, n2.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if notifs, _ := svc.ForUser("u1"); len(notifs) != 0 {
		t.Errorf("ForUser() returned %d notifications after delete, want 0", len(notifs))
	}
}
