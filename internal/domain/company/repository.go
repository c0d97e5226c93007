package company

import "context"

type Repository interface {
	Create(ctx context.Context, c Company) (*Company, error)
	GetByID(ctx context.Context, id int64) (*Company, error)
	// GetByJobID resolves the company that owns a job through the job's
	// creating user.
	GetByJobID(ctx context.Context, jobID int64) (*Company, error)
}
