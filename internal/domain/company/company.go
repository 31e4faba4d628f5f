package company

import (
	"time"

	"internbridge/internal/common"
)

type Company struct {
	ID        common.UUID `json:"id"`
	Name      string      `json:"name"`
	Industry  string      `json:"industry"`
	Website   string      `json:"website"`
	LogoURL   string      `json:"logo_url"`
	Verified  bool        `json:"verified"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Location is one office of a company. The full set for a company is
// replaced atomically on every update; there is no partial patch.
type Location struct {
	ID        common.UUID `json:"id"`
	CompanyID common.UUID `json:"company_id"`
	Name      string      `json:"name"`
	Address   string      `json:"address"`
	IsRemote  bool        `json:"is_remote"`
	IsPrimary bool        `json:"is_primary"`
}
