package company

import (
	"context"

	"internbridge/internal/common"
)

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*Company, error)
	ListLocations(ctx context.Context, companyID common.UUID) ([]Location, error)
	// ReplaceLocations makes the persisted set for the company exactly
	// equal to the given list inside one transaction.
	ReplaceLocations(ctx context.Context, companyID common.UUID, locations []Location) error
	ListBenefits(ctx context.Context, companyID common.UUID) ([]string, error)
	ReplaceBenefits(ctx context.Context, companyID common.UUID, benefits []string) error
	// IsRepresentative reports whether the account acts on behalf of the
	// company. Unknown companies simply report false.
	IsRepresentative(ctx context.Context, companyID, accountID common.UUID) (bool, error)
}
