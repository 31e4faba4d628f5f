package internship

import (
	"time"

	"internbridge/internal/common"
	"internbridge/internal/domain/listfield"
)

type Internship struct {
	ID           common.UUID       `json:"id"`
	CompanyID    common.UUID       `json:"company_id"`
	Title        string            `json:"title"`
	Description  string            `json:"description"`
	WorkArea     string            `json:"work_area"`
	Schedule     string            `json:"schedule"`
	Salary       string            `json:"salary"`
	Duration     string            `json:"duration"`
	Requirements []string          `json:"requirements"`
	Benefits     []listfield.Entry `json:"benefits"`
	StartDate    *time.Time        `json:"start_date,omitempty"`
	EndDate      *time.Time        `json:"end_date,omitempty"`
	IsActive     bool              `json:"is_active"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// Filter narrows ListActive. Zero values mean "no constraint".
type Filter struct {
	Search   string
	WorkArea string
	Remote   *bool
}
