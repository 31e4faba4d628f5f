package app

import (
	"context"
	"strings"

	"internbridge/internal/common"
	"internbridge/internal/domain/company"
)

type CompanyService struct {
	repo company.Repository
}

func NewCompanyService(repo company.Repository) *CompanyService {
	return &CompanyService{repo: repo}
}

func (s *CompanyService) Get(ctx context.Context, id common.UUID) (*company.Company, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CompanyService) Locations(ctx context.Context, companyID common.UUID) ([]company.Location, error) {
	return s.repo.ListLocations(ctx, companyID)
}

// UpdateLocations replaces the company's full location set. Entries
// without a name or an address are silently dropped rather than failing
// the whole call; the survivors are persisted atomically, so a storage
// failure leaves the previous set untouched.
func (s *CompanyService) UpdateLocations(ctx context.Context, companyID common.UUID, locations []company.Location) error {
	if _, err := s.repo.GetByID(ctx, companyID); err != nil {
		return err
	}
	valid := make([]company.Location, 0, len(locations))
	for _, loc := range locations {
		loc.Name = strings.TrimSpace(loc.Name)
		loc.Address = strings.TrimSpace(loc.Address)
		if loc.Name == "" || loc.Address == "" {
			continue
		}
		valid = append(valid, loc)
	}
	return s.repo.ReplaceLocations(ctx, companyID, valid)
}

func (s *CompanyService) Benefits(ctx context.Context, companyID common.UUID) ([]string, error) {
	return s.repo.ListBenefits(ctx, companyID)
}

// UpdateBenefits mirrors UpdateLocations for the benefit labels:
// blank labels are skipped, the rest replace the set in one transaction.
func (s *CompanyService) UpdateBenefits(ctx context.Context, companyID common.UUID, benefits []string) error {
	if _, err := s.repo.GetByID(ctx, companyID); err != nil {
		return err
	}
	valid := make([]string, 0, len(benefits))
	for _, benefit := range benefits {
		if trimmed := strings.TrimSpace(benefit); trimmed != "" {
			valid = append(valid, trimmed)
		}
	}
	return s.repo.ReplaceBenefits(ctx, companyID, valid)
}
