package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"internbridge/internal/common"
	"internbridge/internal/domain/application"
	"internbridge/internal/domain/listfield"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts the application. The applications table carries a
// unique constraint on (student_id, internship_id); its violation is the
// authoritative duplicate signal under concurrent submits and maps to
// CodeConflict.
func (r *ApplicationRepository) Create(ctx context.Context, app application.Application) (*application.Application, error) {
	app.ID = common.NewUUID()
	app.AppliedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `INSERT INTO applications (id, student_id, internship_id, status, applied_at)
		VALUES ($1, $2, $3, $4, $5)`,
		app.ID, app.StudentID, app.InternshipID, app.Status, app.AppliedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, common.NewError(common.CodeConflict, "already applied to this internship", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, internship_id, status, applied_at FROM applications WHERE id = $1`, id)
	return scanApplication(row)
}

func (r *ApplicationRepository) FindByStudentAndInternship(ctx context.Context, studentID, internshipID common.UUID) (*application.Application, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, student_id, internship_id, status, applied_at FROM applications
		WHERE student_id = $1 AND internship_id = $2`, studentID, internshipID)
	return scanApplication(row)
}

func (r *ApplicationRepository) ListByStudent(ctx context.Context, studentID common.UUID) ([]application.StudentView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.student_id, a.internship_id, a.status, a.applied_at, i.title, c.name
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN companies c ON c.id = i.company_id
		WHERE a.student_id = $1
		ORDER BY a.applied_at DESC`, studentID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list student applications", err)
	}
	defer rows.Close()
	var items []application.StudentView
	for rows.Next() {
		var view application.StudentView
		if err := rows.Scan(&view.ID, &view.StudentID, &view.InternshipID, &view.Status, &view.AppliedAt, &view.InternshipTitle, &view.CompanyName); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, view)
	}
	return items, nil
}

// ListByCompany returns the applications for a company's internships
// together with each applicant's profile. The skills and languages
// columns hold list fields in mixed historical encodings and go through
// the tolerant decoder.
func (r *ApplicationRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]application.CompanyView, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT a.id, a.student_id, a.internship_id, a.status, a.applied_at,
			i.title, s.full_name, s.email, s.university, s.skills, s.languages
		FROM applications a
		JOIN internships i ON i.id = a.internship_id
		JOIN students s ON s.id = a.student_id
		WHERE i.company_id = $1
		ORDER BY a.applied_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company applications", err)
	}
	defer rows.Close()
	var items []application.CompanyView
	for rows.Next() {
		var view application.CompanyView
		var skills, languages sql.NullString
		if err := rows.Scan(&view.ID, &view.StudentID, &view.InternshipID, &view.Status, &view.AppliedAt,
			&view.InternshipTitle, &view.StudentName, &view.StudentEmail, &view.University, &skills, &languages); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		view.Skills = listfield.DecodeString(skills.String)
		view.Languages = listfield.DecodeString(languages.String)
		items = append(items, view)
	}
	return items, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id common.UUID, status application.Status) (*application.Application, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE applications SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to update application", err)
	}
	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return nil, common.NewError(common.CodeNotFound, "application not found", sql.ErrNoRows)
	}
	return r.GetByID(ctx, id)
}

func scanApplication(row *sql.Row) (*application.Application, error) {
	var app application.Application
	if err := row.Scan(&app.ID, &app.StudentID, &app.InternshipID, &app.Status, &app.AppliedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "application not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load application", err)
	}
	return &app, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
