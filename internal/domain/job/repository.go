package job

import "context"

type Repository interface {
	Create(ctx context.Context, j Job) (*Job, error)
	GetByID(ctx context.Context, id int64) (*Job, error)
	// UpdatePartial writes only the fields present in the patch. An empty
	// patch is a no-op and not an error.
	UpdatePartial(ctx context.Context, id int64, p Patch) error
	// Archive is idempotent and one-directional; there is no un-archive.
	Archive(ctx context.Context, id int64) error
	// ListByCompany returns all non-archived jobs created by any user of
	// the company, ordered updated_at DESC with ascending id as tiebreak.
	ListByCompany(ctx context.Context, companyID int64) ([]Job, error)
	// SearchOpen returns all active, non-archived jobs matching the
	// filter, ordered updated_at DESC, id DESC.
	SearchOpen(ctx context.Context, f SearchFilter) ([]Job, error)
}
