package internship

import (
	"context"

	"internbridge/internal/common"
)

type Repository interface {
	Create(ctx context.Context, i Internship) (*Internship, error)
	GetByID(ctx context.Context, id common.UUID) (*Internship, error)
	ListActive(ctx context.Context, filter Filter) ([]Internship, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]Internship, error)
}
