package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"internbridge/internal/common"
	"internbridge/internal/domain/listfield"
	"internbridge/internal/domain/student"
)

type StudentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) GetByID(ctx context.Context, id common.UUID) (*student.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, full_name, email, university, career, semester, gpa, skills, languages, created_at, updated_at
		FROM students WHERE id = $1`, id)
	var s student.Student
	var skills, languages sql.NullString
	if err := row.Scan(&s.ID, &s.FullName, &s.Email, &s.University, &s.Career, &s.Semester, &s.GPA, &skills, &languages, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "student not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load student", err)
	}
	s.Skills = listfield.DecodeString(skills.String)
	s.Languages = listfield.DecodeString(languages.String)
	return &s, nil
}

// UpdateProfile writes the list fields back in the canonical JSON
// encoding regardless of which historical shape they were read in.
func (r *StudentRepository) UpdateProfile(ctx context.Context, s student.Student) (*student.Student, error) {
	s.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `UPDATE students SET full_name = $1, university = $2, career = $3, semester = $4, gpa = $5, skills = $6, languages = $7, updated_at = $8
		WHERE id = $9`,
		s.FullName, s.University, s.Career, s.Semester, s.GPA, listfield.Encode(s.Skills), listfield.Encode(s.Languages), s.UpdatedAt, s.ID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update student", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "student not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, s.ID)
}
