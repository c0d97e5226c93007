package postgres

import (
	"context"
	"database/sql"
	"errors"

	"risuwork/internal/common"
	"risuwork/internal/domain/application"
)

type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Submit performs the submission protocol in a single transaction. The job
// row is locked before its acceptance state is read, so a concurrent
// archive or deactivate cannot slip between the check and the insert, and
// two concurrent submissions for the same (job, user) pair serialize on
// the lock: the first commit wins, the second sees the row and conflicts.
func (r *ApplicationRepository) Submit(ctx context.Context, jobID, userID int64) (*application.Application, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to start transaction", err)
	}
	defer tx.Rollback()

	var open bool
	err = tx.QueryRowContext(ctx, `SELECT is_active AND NOT is_archived FROM jobs WHERE id = $1 FOR UPDATE`, jobID).Scan(&open)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewError(common.CodeNotFound, "job not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to lock job", err)
	}
	if !open {
		return nil, common.NewError(common.CodeUnprocessable, "job is not accepting applications", nil)
	}

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND user_id = $2)`, jobID, userID).Scan(&exists)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to check existing application", err)
	}
	if exists {
		return nil, common.NewError(common.CodeConflict, "already applied for the job", nil)
	}

	app := application.Application{JobID: jobID, UserID: userID}
	err = tx.QueryRowContext(ctx, `INSERT INTO applications (job_id, user_id) VALUES ($1, $2) RETURNING id, created_at`,
		jobID, userID).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		// Unique constraint backstop for the duplicate predicate.
		if pgErrCode(err) == pgUniqueViolation {
			return nil, common.NewError(common.CodeConflict, "already applied for the job", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create application", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to commit application", err)
	}
	return &app, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, job_id, user_id, created_at FROM applications
		WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByJob(ctx context.Context, jobID int64) ([]application.Application, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, job_id, user_id, created_at FROM applications
		WHERE job_id = $1 ORDER BY created_at, id`, jobID)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list job applications", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

func collectApplications(rows *sql.Rows) ([]application.Application, error) {
	var items []application.Application
	for rows.Next() {
		var app application.Application
		if err := rows.Scan(&app.ID, &app.JobID, &app.UserID, &app.CreatedAt); err != nil {
			return nil, common.NewError(common.CodeInternal, "failed to scan application", err)
		}
		items = append(items, app)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to read applications", err)
	}
	return items, nil
}
