package app

import (
	"context"
	"testing"

	"internbridge/internal/common"
	"internbridge/internal/domain/notification"
	"internbridge/internal/observability"
)

func TestListForRecipientCountsUnread(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, observability.NewLogger("error"))
	userID := common.NewUUID()

	service.Notify(context.Background(), notification.Notification{
		UserID: userID, UserRole: notification.RoleStudent,
		Type: notification.TypeApplicationSubmitted, Title: "Application Submitted",
	})
	service.Notify(context.Background(), notification.Notification{
		UserID: userID, UserRole: notification.RoleStudent,
		Type: notification.TypeApplicationAccepted, Title: "Application Accepted",
	})
	// A different role sharing the id must not leak into the listing.
	service.Notify(context.Background(), notification.Notification{
		UserID: userID, UserRole: notification.RoleCompany,
		Type: notification.TypeNewApplication, Title: "New Application Received",
	})

	items, unread, err := service.ListForRecipient(context.Background(), userID, notification.RoleStudent)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 || unread != 2 {
		t.Fatalf("expected 2 student notifications all unread, got %d items, %d unread", len(items), unread)
	}

	if err := service.MarkRead(context.Background(), items[0].ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	_, unread, err = service.ListForRecipient(context.Background(), userID, notification.RoleStudent)
	if err != nil {
		t.Fatalf("list after mark read: %v", err)
	}
	if unread != 1 {
		t.Fatalf("expected 1 unread after mark read, got %d", unread)
	}
}

func TestMarkReadUnknownNotification(t *testing.T) {
	repo := newFakeNotificationRepo()
	service := NewNotificationService(repo, observability.NewLogger("error"))

	if err := service.MarkRead(context.Background(), common.NewUUID()); !common.Is(err, common.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
