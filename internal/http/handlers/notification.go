package handlers

import (
	"net/http"

	"internbridge/internal/app"
	"internbridge/internal/common"
	"internbridge/internal/domain/notification"
	"internbridge/internal/http/response"
)

type NotificationHandler struct {
	notifications *app.NotificationService
}

func NewNotificationHandler(notifications *app.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) ListStudent(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "student_id", notification.RoleStudent)
}

func (h *NotificationHandler) ListCompany(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "company_id", notification.RoleCompany)
}

func (h *NotificationHandler) list(w http.ResponseWriter, r *http.Request, key string, role notification.Role) {
	userID, err := queryUUID(r, key)
	if err != nil {
		response.Error(w, err)
		return
	}
	items, unread, err := h.notifications.ListForRecipient(r.Context(), userID, role)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"notifications": items, "unread_count": unread})
}

type markReadRequest struct {
	NotificationID string `json:"notification_id"`
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	var req markReadRequest
	if !decodeBody(w, r, &req) {
		return
	}
	id, err := common.ParseUUID(req.NotificationID)
	if err != nil {
		response.Error(w, common.NewValidationError("invalid notification_id", map[string]string{"notification_id": "invalid uuid"}))
		return
	}
	if err := h.notifications.MarkRead(r.Context(), id); err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]any{"success": true})
}
