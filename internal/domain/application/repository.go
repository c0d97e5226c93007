package application

import "context"

type Repository interface {
	// Submit runs the whole submission protocol in one transaction: it
	// takes an exclusive lock on the job row, re-checks that the job is
	// active and not archived under that lock, rejects duplicates for the
	// (job, user) pair, and inserts. Every failure rolls the transaction
	// back. Errors carry codes: not_found (no such job), unprocessable
	// (job not accepting applications), conflict (already applied).
	Submit(ctx context.Context, jobID, userID int64) (*Application, error)
	// ListByUser returns the user's applications, newest first.
	ListByUser(ctx context.Context, userID int64) ([]Application, error)
	// ListByJob returns a job's applications in submission order.
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
}
