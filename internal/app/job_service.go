package app

import (
	"context"
	"strings"
	"time"

	"risuwork/internal/common"
	"risuwork/internal/domain/application"
	"risuwork/internal/domain/job"
	"risuwork/internal/domain/user"
)

type JobService struct {
	jobs         job.Repository
	users        user.Repository
	applications application.Repository
}

func NewJobService(jobs job.Repository, users user.Repository, applications application.Repository) *JobService {
	return &JobService{jobs: jobs, users: users, applications: applications}
}

type CreateJobInput struct {
	Title       string
	Description string
	Salary      int64
	Tags        string
}

func (s *JobService) Create(ctx context.Context, email string, input CreateJobInput) (*job.Job, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Type != user.TypeEmployer {
		return nil, common.NewError(common.CodeForbidden, "no permission", nil)
	}
	fields := map[string]string{}
	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "title is required"
	}
	if strings.TrimSpace(input.Description) == "" {
		fields["description"] = "description is required"
	}
	// The store does not enforce positivity; reject before insert.
	if input.Salary <= 0 {
		fields["salary"] = "salary must be a positive integer"
	}
	if strings.TrimSpace(input.Tags) == "" {
		fields["tags"] = "tags are required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	return s.jobs.Create(ctx, job.Job{
		Title:        input.Title,
		Description:  input.Description,
		Salary:       input.Salary,
		Tags:         input.Tags,
		CreateUserID: u.ID,
	})
}

// canAccessJob decides whether the principal may act on the job. Access is
// company-scoped: any CL user of the job creator's company qualifies, not
// just the creator. An archived job is not actionable unless
// includeArchived is set (the single-job read path), and that condition is
// kept distinct from both not-found and forbidden.
func (s *JobService) canAccessJob(ctx context.Context, jobID int64, email string, includeArchived bool) (*user.User, *job.Job, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if u.Type != user.TypeEmployer {
		return nil, nil, common.NewError(common.CodeForbidden, "no permission", nil)
	}
	j, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if !includeArchived && j.IsArchived {
		return nil, nil, common.NewError(common.CodeUnprocessable, "job archived", nil)
	}
	creator, err := s.users.GetByID(ctx, j.CreateUserID)
	if err != nil {
		return nil, nil, err
	}
	if creator.CompanyID != u.CompanyID {
		return nil, nil, common.NewError(common.CodeForbidden, "no permission", nil)
	}
	return u, j, nil
}

func (s *JobService) Update(ctx context.Context, email string, jobID int64, p job.Patch) error {
	if _, _, err := s.canAccessJob(ctx, jobID, email, false); err != nil {
		return err
	}
	if p.Salary != nil && *p.Salary <= 0 {
		return common.NewValidationError("invalid request", map[string]string{"salary": "salary must be a positive integer"})
	}
	return s.jobs.UpdatePartial(ctx, jobID, p)
}

func (s *JobService) Archive(ctx context.Context, email string, jobID int64) error {
	if _, _, err := s.canAccessJob(ctx, jobID, email, false); err != nil {
		return err
	}
	return s.jobs.Archive(ctx, jobID)
}

type JobApplicant struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type JobApplication struct {
	ID        int64        `json:"id"`
	JobID     int64        `json:"job_id"`
	CreatedAt time.Time    `json:"created_at"`
	Applicant JobApplicant `json:"applicant"`
}

type JobDetail struct {
	job.Job
	Applications []JobApplication `json:"applications"`
}

// Get returns one job with its applications, applicants joined in.
// Archived jobs stay inspectable by their owning company.
func (s *JobService) Get(ctx context.Context, email string, jobID int64) (*JobDetail, error) {
	_, j, err := s.canAccessJob(ctx, jobID, email, true)
	if err != nil {
		return nil, err
	}
	apps, err := s.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	detail := JobDetail{Job: *j, Applications: []JobApplication{}}
	for _, app := range apps {
		applicant, err := s.users.GetByID(ctx, app.UserID)
		if err != nil {
			return nil, err
		}
		detail.Applications = append(detail.Applications, JobApplication{
			ID:        app.ID,
			JobID:     app.JobID,
			CreatedAt: app.CreatedAt,
			Applicant: JobApplicant{ID: applicant.ID, Email: applicant.Email, Name: applicant.Name},
		})
	}
	return &detail, nil
}

type JobPage struct {
	Jobs        []job.Job `json:"jobs"`
	Page        int       `json:"page"`
	HasNextPage bool      `json:"has_next_page"`
}

func (s *JobService) ListByCompany(ctx context.Context, email string, page int) (*JobPage, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u.Type != user.TypeEmployer {
		return nil, common.NewError(common.CodeForbidden, "no permission", nil)
	}
	all, err := s.jobs.ListByCompany(ctx, u.CompanyID)
	if err != nil {
		return nil, err
	}
	items, hasNext := paginate(all, page, JobListPageSize)
	return &JobPage{Jobs: items, Page: page, HasNextPage: hasNext}, nil
}
