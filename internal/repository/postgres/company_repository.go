package postgres

import (
	"context"
	"database/sql"
	"errors"

	"internbridge/internal/common"
	"internbridge/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) GetByID(ctx context.Context, id common.UUID) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, industry, website, logo_url, verified, created_at, updated_at FROM companies WHERE id = $1`, id)
	var c company.Company
	if err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.LogoURL, &c.Verified, &c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) IsRepresentative(ctx context.Context, companyID, accountID common.UUID) (bool, error) {
	row := r.db.QueryRowContext(ctx, `SELECT EXISTS (
		SELECT 1 FROM company_representatives WHERE company_id = $1 AND account_id = $2
	)`, companyID, accountID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, common.NewError(common.CodeInternal, "failed to check company representative", err)
	}
	return exists, nil
}

func (r *CompanyRepository) ListLocations(ctx context.Context, companyID common.UUID) ([]company.Location, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, company_id, name, address, is_remote, is_primary
		FROM company_locations
		WHERE company_id = $1
		ORDER BY is_primary DESC, position ASC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list locations", err)
	}
	defer rows.Close()
	var items []company.Location
	for rows.Next() {
		var loc company.Location
		if err := rows.Scan(&loc.ID, &loc.CompanyID, &loc.Name, &loc.Address, &loc.IsRemote, &loc.IsPrimary); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan location", err)
		}
		items = append(items, loc)
	}
	return items, nil
}

// ReplaceLocations deletes the company's current locations and inserts
// the given set in order, all inside one transaction. A failure at any
// point rolls the whole unit back, so concurrent readers either see the
// old set or the new one, never a partial mix.
func (r *CompanyRepository) ReplaceLocations(ctx context.Context, companyID common.UUID, locations []company.Location) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM company_locations WHERE company_id = $1`, companyID); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete locations", err)
	}
	for position, loc := range locations {
		if _, err := tx.ExecContext(ctx, `INSERT INTO company_locations (id, company_id, name, address, is_remote, is_primary, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			common.NewUUID(), companyID, loc.Name, loc.Address, loc.IsRemote, loc.IsPrimary, position); err != nil {
			return common.NewError(common.CodeInternal, "failed to insert location", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit locations", err)
	}
	return nil
}

func (r *CompanyRepository) ListBenefits(ctx context.Context, companyID common.UUID) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT benefit FROM company_benefits WHERE company_id = $1 ORDER BY position ASC`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list benefits", err)
	}
	defer rows.Close()
	var items []string
	for rows.Next() {
		var benefit string
		if err := rows.Scan(&benefit); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan benefit", err)
		}
		items = append(items, benefit)
	}
	return items, nil
}

func (r *CompanyRepository) ReplaceBenefits(ctx context.Context, companyID common.UUID, benefits []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to begin transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM company_benefits WHERE company_id = $1`, companyID); err != nil {
		return common.NewError(common.CodeInternal, "failed to delete benefits", err)
	}
	for position, benefit := range benefits {
		if _, err := tx.ExecContext(ctx, `INSERT INTO company_benefits (id, company_id, benefit, position)
			VALUES ($1, $2, $3, $4)`,
			common.NewUUID(), companyID, benefit, position); err != nil {
			return common.NewError(common.CodeInternal, "failed to insert benefit", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return common.NewError(common.CodeInternal, "failed to commit benefits", err)
	}
	return nil
}
