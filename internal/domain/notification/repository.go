package notification

import (
	"context"

	"internbridge/internal/common"
)

type Repository interface {
	Create(ctx context.Context, n Notification) (*Notification, error)
	ListByRecipient(ctx context.Context, userID common.UUID, role Role, limit int) ([]Notification, error)
	CountUnread(ctx context.Context, userID common.UUID, role Role) (int, error)
	MarkRead(ctx context.Context, id common.UUID) error
}
