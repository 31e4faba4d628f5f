package student

import (
	"context"
	"time"

	"internbridge/internal/common"
	"internbridge/internal/domain/listfield"
)

type Student struct {
	ID         common.UUID       `json:"id"`
	FullName   string            `json:"full_name"`
	Email      string            `json:"email"`
	University string            `json:"university"`
	Career     string            `json:"career"`
	Semester   int               `json:"semester"`
	GPA        float64           `json:"gpa"`
	Skills     []listfield.Entry `json:"skills"`
	Languages  []listfield.Entry `json:"languages"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

type Repository interface {
	GetByID(ctx context.Context, id common.UUID) (*Student, error)
	UpdateProfile(ctx context.Context, s Student) (*Student, error)
}
