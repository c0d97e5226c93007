package postgres

import (
	"context"
	"database/sql"
	"errors"

	"risuwork/internal/common"
	"risuwork/internal/domain/company"
)

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	err := r.db.QueryRowContext(ctx, `INSERT INTO companies (name, industry_id)
		VALUES ($1, $2) RETURNING id, created_at`,
		c.Name, c.IndustryID).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, common.NewError(common.CodeValidation, "industry not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create company", err)
	}
	return &c, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT c.id, c.name, c.industry_id, ic.name, c.created_at
		FROM companies c JOIN industry_categories ic ON c.industry_id = ic.id
		WHERE c.id = $1`, id)
	return scanCompany(row)
}

func (r *CompanyRepository) GetByJobID(ctx context.Context, jobID int64) (*company.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT c.id, c.name, c.industry_id, ic.name, c.created_at
		FROM companies c JOIN industry_categories ic ON c.industry_id = ic.id
		WHERE c.id = (SELECT company_id FROM users WHERE id = (SELECT create_user_id FROM jobs WHERE id = $1))`, jobID)
	return scanCompany(row)
}

func scanCompany(row *sql.Row) (*company.Company, error) {
	var c company.Company
	if err := row.Scan(&c.ID, &c.Name, &c.IndustryID, &c.Industry, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load company", err)
	}
	return &c, nil
}
