package app

import (
	"context"

	"internbridge/internal/common"
	"internbridge/internal/domain/company"
	"internbridge/internal/domain/internship"
)

type InternshipService struct {
	repo      internship.Repository
	companies company.Repository
}

func NewInternshipService(repo internship.Repository, companies company.Repository) *InternshipService {
	return &InternshipService{repo: repo, companies: companies}
}

func (s *InternshipService) Create(ctx context.Context, i internship.Internship) (*internship.Internship, error) {
	if i.Title == "" {
		return nil, common.NewError(common.CodeValidation, "title is required", nil)
	}
	if i.WorkArea == "" {
		return nil, common.NewError(common.CodeValidation, "work area is required", nil)
	}
	if _, err := s.companies.GetByID(ctx, i.CompanyID); err != nil {
		return nil, err
	}
	i.IsActive = true
	return s.repo.Create(ctx, i)
}

func (s *InternshipService) Get(ctx context.Context, id common.UUID) (*internship.Internship, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *InternshipService) ListActive(ctx context.Context, filter internship.Filter) ([]internship.Internship, error) {
	return s.repo.ListActive(ctx, filter)
}

func (s *InternshipService) ListByCompany(ctx context.Context, companyID common.UUID) ([]internship.Internship, error) {
	return s.repo.ListByCompany(ctx, companyID)
}
