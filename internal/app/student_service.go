package app

import (
	"context"

	"internbridge/internal/common"
	"internbridge/internal/domain/listfield"
	"internbridge/internal/domain/student"
)

type StudentService struct {
	repo student.Repository
}

func NewStudentService(repo student.Repository) *StudentService {
	return &StudentService{repo: repo}
}

func (s *StudentService) Get(ctx context.Context, id common.UUID) (*student.Student, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProfile accepts skills and languages in any of the accepted
// shapes (list, serialized list, comma-separated text) and normalizes
// them before persisting.
func (s *StudentService) UpdateProfile(ctx context.Context, id common.UUID, update student.Student, skills, languages any) (*student.Student, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	update.ID = current.ID
	update.Email = current.Email
	update.Skills = listfield.Decode(skills)
	update.Languages = listfield.Decode(languages)
	return s.repo.UpdateProfile(ctx, update)
}
