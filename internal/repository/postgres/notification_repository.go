package postgres

import (
	"context"
	"database/sql"
	"time"

	"internbridge/internal/common"
	"internbridge/internal/domain/notification"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) (*notification.Notification, error) {
	n.ID = common.NewUUID()
	n.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO notifications (id, user_id, user_role, type, title, message, internship_id, application_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		n.ID, n.UserID, n.UserRole, n.Type, n.Title, n.Message, n.InternshipID, n.ApplicationID, n.IsRead, n.CreatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create notification", err)
	}
	return &n, nil
}

func (r *NotificationRepository) ListByRecipient(ctx context.Context, userID common.UUID, role notification.Role, limit int) ([]notification.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, user_id, user_role, type, title, message, internship_id, application_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1 AND user_role = $2
		ORDER BY created_at DESC
		LIMIT $3`, userID, role, limit)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list notifications", err)
	}
	defer rows.Close()
	var items []notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.UserRole, &n.Type, &n.Title, &n.Message, &n.InternshipID, &n.ApplicationID, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan notification", err)
		}
		items = append(items, n)
	}
	return items, nil
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID common.UUID, role notification.Role) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND user_role = $2 AND is_read = FALSE`, userID, role).Scan(&count)
	if err != nil {
		return 0, common.NewError(common.CodeInternal, "failed to count unread notifications", err)
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id common.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE notifications SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to mark notification read", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "notification not found", sql.ErrNoRows)
	}
	return nil
}
