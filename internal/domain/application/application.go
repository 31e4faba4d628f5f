package application

import (
	"time"

	"internbridge/internal/common"
	"internbridge/internal/domain/listfield"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusReviewed  Status = "reviewed"
	StatusInterview Status = "interview"
	StatusAccepted  Status = "accepted"
	StatusRejected  Status = "rejected"
)

// Application is the join record of one student's submission to one
// internship posting. The (StudentID, InternshipID) pair is unique.
type Application struct {
	ID           common.UUID `json:"id"`
	StudentID    common.UUID `json:"student_id"`
	InternshipID common.UUID `json:"internship_id"`
	Status       Status      `json:"status"`
	AppliedAt    time.Time   `json:"applied_at"`
}

// StudentView is an application as listed on a student's dashboard.
type StudentView struct {
	Application
	InternshipTitle string `json:"internship_title"`
	CompanyName     string `json:"company_name"`
}

// CompanyView is an application as listed for the posting company,
// carrying the applicant's profile with its list fields decoded.
type CompanyView struct {
	Application
	InternshipTitle string            `json:"internship_title"`
	StudentName     string            `json:"student_name"`
	StudentEmail    string            `json:"student_email"`
	University      string            `json:"university"`
	Skills          []listfield.Entry `json:"skills"`
	Languages       []listfield.Entry `json:"languages"`
}

func IsKnownStatus(status Status) bool {
	switch status {
	case StatusPending, StatusReviewed, StatusInterview, StatusAccepted, StatusRejected:
		return true
	default:
		return false
	}
}

func IsFinalStatus(status Status) bool {
	return status == StatusAccepted || status == StatusRejected
}

// IsAllowedTransition constrains status changes to the forward review
// flow: pending -> reviewed -> interview -> accepted/rejected, with
// skips forward permitted but never a step back.
func IsAllowedTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusReviewed || to == StatusInterview || to == StatusAccepted || to == StatusRejected
	case StatusReviewed:
		return to == StatusInterview || to == StatusAccepted || to == StatusRejected
	case StatusInterview:
		return to == StatusAccepted || to == StatusRejected
	default:
		return false
	}
}
