package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/lib/pq"

	"internbridge/internal/common"
	"internbridge/internal/domain/internship"
	"internbridge/internal/domain/listfield"
)

type InternshipRepository struct {
	db *sql.DB
}

func NewInternshipRepository(db *sql.DB) *InternshipRepository {
	return &InternshipRepository{db: db}
}

const internshipColumns = `id, company_id, title, description, work_area, schedule, salary, duration, requirements, benefits, start_date, end_date, is_active, created_at, updated_at`

func (r *InternshipRepository) Create(ctx context.Context, i internship.Internship) (*internship.Internship, error) {
	i.ID = common.NewUUID()
	now := time.Now().UTC()
	i.CreatedAt = now
	i.UpdatedAt = now
	_, err := r.db.ExecContext(ctx, `INSERT INTO internships (`+internshipColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		i.ID, i.CompanyID, i.Title, i.Description, i.WorkArea, i.Schedule, i.Salary, i.Duration,
		pq.Array(i.Requirements), listfield.Encode(i.Benefits), i.StartDate, i.EndDate, i.IsActive, i.CreatedAt, i.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create internship", err)
	}
	return &i, nil
}

func (r *InternshipRepository) GetByID(ctx context.Context, id common.UUID) (*internship.Internship, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+internshipColumns+` FROM internships WHERE id = $1`, id)
	i, err := scanInternship(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "internship not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load internship", err)
	}
	return i, nil
}

func (r *InternshipRepository) ListActive(ctx context.Context, filter internship.Filter) ([]internship.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE is_active = TRUE`
	args := []any{}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += ` AND (title ILIKE $1 OR description ILIKE $1)`
	}
	if filter.WorkArea != "" {
		args = append(args, filter.WorkArea)
		query += ` AND work_area = $` + strconv.Itoa(len(args))
	}
	if filter.Remote != nil {
		args = append(args, "%remote%")
		if *filter.Remote {
			query += ` AND schedule ILIKE $` + strconv.Itoa(len(args))
		} else {
			query += ` AND schedule NOT ILIKE $` + strconv.Itoa(len(args))
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list internships", err)
	}
	defer rows.Close()
	return collectInternships(rows)
}

func (r *InternshipRepository) ListByCompany(ctx context.Context, companyID common.UUID) ([]internship.Internship, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+internshipColumns+` FROM internships WHERE company_id = $1 ORDER BY created_at DESC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company internships", err)
	}
	defer rows.Close()
	return collectInternships(rows)
}

func collectInternships(rows *sql.Rows) ([]internship.Internship, error) {
	var items []internship.Internship
	for rows.Next() {
		i, err := scanInternship(rows.Scan)
		if err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan internship", err)
		}
		items = append(items, *i)
	}
	return items, nil
}

func scanInternship(scan func(dest ...any) error) (*internship.Internship, error) {
	var i internship.Internship
	var benefits sql.NullString
	if err := scan(&i.ID, &i.CompanyID, &i.Title, &i.Description, &i.WorkArea, &i.Schedule, &i.Salary, &i.Duration,
		pq.Array(&i.Requirements), &benefits, &i.StartDate, &i.EndDate, &i.IsActive, &i.CreatedAt, &i.UpdatedAt); err != nil {
		return nil, err
	}
	i.Benefits = listfield.DecodeString(benefits.String)
	return &i, nil
}
