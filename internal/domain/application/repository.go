package application

import (
	"context"

	"internbridge/internal/common"
)

type Repository interface {
	Create(ctx context.Context, app Application) (*Application, error)
	GetByID(ctx context.Context, id common.UUID) (*Application, error)
	FindByStudentAndInternship(ctx context.Context, studentID, internshipID common.UUID) (*Application, error)
	ListByStudent(ctx context.Context, studentID common.UUID) ([]StudentView, error)
	ListByCompany(ctx context.Context, companyID common.UUID) ([]CompanyView, error)
	UpdateStatus(ctx context.Context, id common.UUID, status Status) (*Application, error)
}
