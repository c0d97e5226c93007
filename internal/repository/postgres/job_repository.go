package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"risuwork/internal/common"
	"risuwork/internal/domain/job"
)

const jobColumns = "id, title, description, salary, tags, is_active, is_archived, create_user_id, created_at, updated_at"

type JobRepository struct {
	db *sql.DB
}

func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	err := r.db.QueryRowContext(ctx, `INSERT INTO jobs (title, description, salary, tags, is_active, create_user_id)
		VALUES ($1, $2, $3, $4, TRUE, $5) RETURNING id, is_active, is_archived, created_at, updated_at`,
		j.Title, j.Description, j.Salary, j.Tags, j.CreateUserID).
		Scan(&j.ID, &j.IsActive, &j.IsArchived, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to create job", err)
	}
	return &j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id int64) (*job.Job, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	var j job.Job
	if err := scanJob(row.Scan, &j); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load job", err)
	}
	return &j, nil
}

// UpdatePartial writes only the present patch fields and bumps updated_at.
// An empty patch is accepted without touching the row.
func (r *JobRepository) UpdatePartial(ctx context.Context, id int64, p job.Patch) error {
	if p.Empty() {
		return nil
	}
	sets := []string{}
	params := []interface{}{}
	add := func(column string, value interface{}) {
		params = append(params, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(params)))
	}
	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Description != nil {
		add("description", *p.Description)
	}
	if p.Salary != nil {
		add("salary", *p.Salary)
	}
	if p.Tags != nil {
		add("tags", *p.Tags)
	}
	if p.IsActive != nil {
		add("is_active", *p.IsActive)
	}
	sets = append(sets, "updated_at = now()")
	params = append(params, id)
	query := fmt.Sprintf("UPDATE jobs SET %s WHERE id = $%d", strings.Join(sets, ", "), len(params))
	result, err := r.db.ExecContext(ctx, query, params...)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to update job", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return common.NewError(common.CodeNotFound, "job not found", sql.ErrNoRows)
	}
	return nil
}

// Archive is a conditional single-statement write: the second archive of
// the same job matches no row and leaves the observable state unchanged.
func (r *JobRepository) Archive(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `UPDATE jobs SET is_archived = TRUE, updated_at = now()
		WHERE id = $1 AND NOT is_archived`, id)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to archive job", err)
	}
	return nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID int64) ([]job.Job, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+jobColumns+` FROM jobs
		WHERE NOT is_archived AND create_user_id IN (SELECT id FROM users WHERE company_id = $1)
		ORDER BY updated_at DESC, id`, companyID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list company jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func (r *JobRepository) SearchOpen(ctx context.Context, f job.SearchFilter) ([]job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE is_active AND NOT is_archived`
	params := []interface{}{}
	next := func(value interface{}) string {
		params = append(params, value)
		return fmt.Sprintf("$%d", len(params))
	}

	if f.Keyword != "" {
		p := next("%" + f.Keyword + "%")
		query += fmt.Sprintf(" AND (title LIKE %s OR description LIKE %s)", p, p)
	}
	if f.MinSalary > 0 {
		query += " AND salary >= " + next(f.MinSalary)
	}
	if f.MaxSalary > 0 {
		query += " AND salary <= " + next(f.MaxSalary)
	}
	// Tags live in one comma-joined column, so membership needs four
	// patterns: only tag, first, middle, last.
	if f.Tag != "" {
		query += fmt.Sprintf(" AND (tags = %s OR tags LIKE %s OR tags LIKE %s OR tags LIKE %s)",
			next(f.Tag), next(f.Tag+",%"), next("%,"+f.Tag+",%"), next("%,"+f.Tag))
	}

	query += " ORDER BY updated_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to search jobs", err)
	}
	defer rows.Close()
	return collectJobs(rows)
}

func scanJob(scan func(...interface{}) error, j *job.Job) error {
	return scan(&j.ID, &j.Title, &j.Description, &j.Salary, &j.Tags, &j.IsActive, &j.IsArchived, &j.CreateUserID, &j.CreatedAt, &j.UpdatedAt)
}

func collectJobs(rows *sql.Rows) ([]job.Job, error) {
	var items []job.Job
	for rows.Next() {
		var j job.Job
		if err := scanJob(rows.Scan, &j); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan job", err)
		}
		items = append(items, j)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read jobs", err)
	}
	return items, nil
}
