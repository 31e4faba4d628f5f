package notification

import (
	"time"

	"internbridge/internal/common"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleCompany Role = "company"
)

type Type string

const (
	TypeNewApplication       Type = "new_application"
	TypeApplicationSubmitted Type = "application_submitted"
	TypeApplicationReviewed  Type = "application_reviewed"
	TypeInterviewScheduled   Type = "interview_scheduled"
	TypeApplicationAccepted  Type = "application_accepted"
	TypeApplicationRejected  Type = "application_rejected"
)

type Notification struct {
	ID            common.UUID  `json:"id"`
	UserID        common.UUID  `json:"user_id"`
	UserRole      Role         `json:"user_role"`
	Type          Type         `json:"type"`
	Title         string       `json:"title"`
	Message       string       `json:"message"`
	InternshipID  *common.UUID `json:"internship_id,omitempty"`
	ApplicationID *common.UUID `json:"application_id,omitempty"`
	IsRead        bool         `json:"is_read"`
	CreatedAt     time.Time    `json:"created_at"`
}
