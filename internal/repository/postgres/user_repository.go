package postgres

import (
	"context"
	"database/sql"
	"errors"

	"risuwork/internal/common"
	"risuwork/internal/domain/user"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (*user.User, error) {
	var companyID sql.NullInt64
	if u.CompanyID != 0 {
		companyID = sql.NullInt64{Int64: u.CompanyID, Valid: true}
	}
	err := r.db.QueryRowContext(ctx, `INSERT INTO users (email, name, user_type, company_id)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at`,
		u.Email, u.Name, u.Type, companyID).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		switch pgErrCode(err) {
		case pgUniqueViolation:
			return nil, common.NewError(common.CodeConflict, "email address is already used", err)
		case pgForeignKeyViolation:
			return nil, common.NewError(common.CodeValidation, "company not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create user", err)
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, name, user_type, COALESCE(company_id, 0), created_at
		FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, email, name, user_type, COALESCE(company_id, 0), created_at
		FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func scanUser(row *sql.Row) (*user.User, error) {
	var u user.User
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Type, &u.CompanyID, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "user not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load user", err)
	}
	return &u, nil
}
