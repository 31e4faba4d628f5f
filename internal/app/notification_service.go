package app

import (
	"context"
	"log/slog"

	"internbridge/internal/common"
	"internbridge/internal/domain/notification"
)

type NotificationService struct {
	repo   notification.Repository
	logger *slog.Logger
}

func NewNotificationService(repo notification.Repository, logger *slog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// Notify records a single notification on a best-effort basis. The
// triggering event has already committed by the time Notify runs, so a
// failed insert is logged and swallowed; it must never surface to the
// caller or undo the event. Each recipient of a fan-out gets its own
// Notify call with its own error boundary.
func (s *NotificationService) Notify(ctx context.Context, n notification.Notification) {
	if _, err := s.repo.Create(ctx, n); err != nil {
		s.logger.Warn("failed to record notification",
			slog.String("type", string(n.Type)),
			slog.String("user_id", n.UserID.String()),
			slog.String("user_role", string(n.UserRole)),
			slog.String("error", err.Error()))
	}
}

func (s *NotificationService) ListForRecipient(ctx context.Context, userID common.UUID, role notification.Role) ([]notification.Notification, int, error) {
	items, err := s.repo.ListByRecipient(ctx, userID, role, 50)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.repo.CountUnread(ctx, userID, role)
	if err != nil {
		return nil, 0, err
	}
	return items, unread, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id common.UUID) error {
	return s.repo.MarkRead(ctx, id)
}
