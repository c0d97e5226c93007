package app

import (
	"context"

	"risuwork/internal/common"
	"risuwork/internal/domain/application"
	"risuwork/internal/domain/job"
	"risuwork/internal/domain/user"
)

type ApplicationService struct {
	applications application.Repository
	users        user.Repository
	jobs         job.Repository
}

func NewApplicationService(applications application.Repository, users user.Repository, jobs job.Repository) *ApplicationService {
	return &ApplicationService{applications: applications, users: users, jobs: jobs}
}

// Apply submits an application on behalf of the principal. Only the role
// is checked here; any candidate may apply to any open job. The acceptance
// and duplicate predicates are both evaluated inside the store transaction
// (see application.Repository.Submit), never on a prior unlocked read.
func (s *ApplicationService) Apply(ctx context.Context, email string, jobID int64) (*application.Application, error) {
	if jobID <= 0 {
		return nil, common.NewValidationError("invalid request", map[string]string{"job_id": "job_id is required"})
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Type != user.TypeCandidate {
		return nil, common.NewError(common.CodeForbidden, "no permission", nil)
	}
	return s.applications.Submit(ctx, jobID, u.ID)
}

type ApplicationWithJob struct {
	application.Application
	Job job.Job `json:"job"`
}

type ApplicationPage struct {
	Applications []ApplicationWithJob `json:"applications"`
	Page         int                  `json:"page"`
	HasNextPage  bool                 `json:"has_next_page"`
}

// ListOwn returns the principal's applications with each referenced job
// joined in. Jobs are never deleted, so the join is expected to resolve;
// if it ever does not, the row is omitted rather than failing the list.
func (s *ApplicationService) ListOwn(ctx context.Context, email string, page int) (*ApplicationPage, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	joined := make([]ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		j, err := s.jobs.GetByID(ctx, app.JobID)
		if err != nil {
			if common.Is(err, common.CodeNotFound) {
				continue
			}
			return nil, err
		}
		joined = append(joined, ApplicationWithJob{Application: app, Job: *j})
	}
	items, hasNext := paginate(joined, page, ApplicationListPageSize)
	return &ApplicationPage{Applications: items, Page: page, HasNextPage: hasNext}, nil
}
