package app

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"risuwork/internal/common"
	"risuwork/internal/domain/application"
	"risuwork/internal/domain/company"
	"risuwork/internal/domain/job"
	"risuwork/internal/domain/user"
)

type fakeUserRepo struct {
	mu      sync.Mutex
	byEmail map[string]*user.User
	byID    map[int64]*user.User
	nextID  int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*user.User), byID: make(map[int64]*user.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, u user.User) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, common.NewError(common.CodeConflict, "email address is already used", nil)
	}
	r.nextID++
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	stored := u
	r.byEmail[u.Email] = &stored
	r.byID[u.ID] = &stored
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byEmail[email]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.byID[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "user not found", nil)
}

type fakeCompanyRepo struct {
	mu     sync.Mutex
	byID   map[int64]*company.Company
	nextID int64
	users  *fakeUserRepo
	jobs   *fakeJobRepo
}

func newFakeCompanyRepo(users *fakeUserRepo, jobs *fakeJobRepo) *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[int64]*company.Company), users: users, jobs: jobs}
}

func (r *fakeCompanyRepo) Create(ctx context.Context, c company.Company) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.ID = r.nextID
	c.CreatedAt = time.Now().UTC()
	stored := c
	r.byID[c.ID] = &stored
	return &c, nil
}

func (r *fakeCompanyRepo) GetByID(ctx context.Context, id int64) (*company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byID[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "company not found", nil)
}

func (r *fakeCompanyRepo) GetByJobID(ctx context.Context, jobID int64) (*company.Company, error) {
	j, err := r.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	creator, err := r.users.GetByID(ctx, j.CreateUserID)
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, creator.CompanyID)
}

type fakeJobRepo struct {
	mu     sync.Mutex
	byID   map[int64]*job.Job
	nextID int64
	users  *fakeUserRepo
}

func newFakeJobRepo(users *fakeUserRepo) *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[int64]*job.Job), users: users}
}

func (r *fakeJobRepo) Create(ctx context.Context, j job.Job) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	j.ID = r.nextID
	j.IsActive = true
	j.IsArchived = false
	now := time.Now().UTC()
	j.CreatedAt = now
	j.UpdatedAt = now
	stored := j
	r.byID[j.ID] = &stored
	return &j, nil
}

func (r *fakeJobRepo) GetByID(ctx context.Context, id int64) (*job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if j, ok := r.byID[id]; ok {
		copied := *j
		return &copied, nil
	}
	return nil, common.NewError(common.CodeNotFound, "job not found", nil)
}

func (r *fakeJobRepo) UpdatePartial(ctx context.Context, id int64, p job.Patch) error {
	if p.Empty() {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byID[id]
	if !ok {
		return common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if p.Title != nil {
		j.Title = *p.Title
	}
	if p.Description != nil {
		j.Description = *p.Description
	}
	if p.Salary != nil {
		j.Salary = *p.Salary
	}
	if p.Tags != nil {
		j.Tags = *p.Tags
	}
	if p.IsActive != nil {
		j.IsActive = *p.IsActive
	}
	j.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *fakeJobRepo) Archive(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byID[id]
	if !ok {
		return nil
	}
	if !j.IsArchived {
		j.IsArchived = true
		j.UpdatedAt = time.Now().UTC()
	}
	return nil
}

func (r *fakeJobRepo) ListByCompany(ctx context.Context, companyID int64) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.byID {
		if j.IsArchived {
			continue
		}
		creator, ok := r.users.byID[j.CreateUserID]
		if !ok || creator.CompanyID != companyID {
			continue
		}
		items = append(items, *j)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].UpdatedAt.Equal(items[b].UpdatedAt) {
			return items[a].UpdatedAt.After(items[b].UpdatedAt)
		}
		return items[a].ID < items[b].ID
	})
	return items, nil
}

func (r *fakeJobRepo) SearchOpen(ctx context.Context, f job.SearchFilter) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []job.Job
	for _, j := range r.byID {
		if !j.Open() {
			continue
		}
		if f.Keyword != "" && !strings.Contains(j.Title, f.Keyword) && !strings.Contains(j.Description, f.Keyword) {
			continue
		}
		if f.MinSalary > 0 && j.Salary < f.MinSalary {
			continue
		}
		if f.MaxSalary > 0 && j.Salary > f.MaxSalary {
			continue
		}
		if f.Tag != "" && !hasTag(j.Tags, f.Tag) {
			continue
		}
		items = append(items, *j)
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].UpdatedAt.Equal(items[b].UpdatedAt) {
			return items[a].UpdatedAt.After(items[b].UpdatedAt)
		}
		return items[a].ID > items[b].ID
	})
	return items, nil
}

func hasTag(tags, tag string) bool {
	for _, candidate := range strings.Split(tags, ",") {
		if candidate == tag {
			return true
		}
	}
	return false
}

// fakeApplicationRepo mirrors the store-side submission protocol: the job
// repo mutex stands in for the row lock, held across the acceptance check,
// the duplicate check, and the insert.
type fakeApplicationRepo struct {
	mu     sync.Mutex
	byID   map[int64]*application.Application
	taken  map[[2]int64]bool
	nextID int64
	jobs   *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[int64]*application.Application), taken: make(map[[2]int64]bool), jobs: jobs}
}

func (r *fakeApplicationRepo) Submit(ctx context.Context, jobID, userID int64) (*application.Application, error) {
	r.jobs.mu.Lock()
	defer r.jobs.mu.Unlock()

	j, ok := r.jobs.byID[jobID]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if !j.Open() {
		return nil, common.NewError(common.CodeUnprocessable, "job is not accepting applications", nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.taken[[2]int64{jobID, userID}] {
		return nil, common.NewError(common.CodeConflict, "already applied for the job", nil)
	}
	r.nextID++
	app := application.Application{ID: r.nextID, JobID: jobID, UserID: userID, CreatedAt: time.Now().UTC()}
	r.byID[app.ID] = &app
	r.taken[[2]int64{jobID, userID}] = true
	return &app, nil
}

func (r *fakeApplicationRepo) ListByUser(ctx context.Context, userID int64) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.byID {
		if app.UserID == userID {
			items = append(items, *app)
		}
	}
	sort.Slice(items, func(a, b int) bool {
		if !items[a].CreatedAt.Equal(items[b].CreatedAt) {
			return items[a].CreatedAt.After(items[b].CreatedAt)
		}
		return items[a].ID > items[b].ID
	})
	return items, nil
}

func (r *fakeApplicationRepo) ListByJob(ctx context.Context, jobID int64) ([]application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []application.Application
	for _, app := range r.byID {
		if app.JobID == jobID {
			items = append(items, *app)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID < items[b].ID })
	return items, nil
}

// deleteJob simulates a dangling application reference for join-tolerance
// tests; production jobs are never deleted.
func (r *fakeJobRepo) deleteJob(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

type fixture struct {
	users        *fakeUserRepo
	companies    *fakeCompanyRepo
	jobs         *fakeJobRepo
	applications *fakeApplicationRepo

	accounts     *AccountService
	jobService   *JobService
	appService   *ApplicationService
	search       *SearchService
}

func newFixture() *fixture {
	users := newFakeUserRepo()
	jobs := newFakeJobRepo(users)
	companies := newFakeCompanyRepo(users, jobs)
	applications := newFakeApplicationRepo(jobs)
	return &fixture{
		users:        users,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		accounts:     NewAccountService(users, companies),
		jobService:   NewJobService(jobs, users, applications),
		appService:   NewApplicationService(applications, users, jobs),
		search:       NewSearchService(jobs, companies),
	}
}

func (f *fixture) mustCompany(ctx context.Context, name string) *company.Company {
	c, err := f.companies.Create(ctx, company.Company{Name: name, IndustryID: "I01", Industry: "IT・通信"})
	if err != nil {
		panic(err)
	}
	return c
}

func (f *fixture) mustEmployer(ctx context.Context, email string, companyID int64) *user.User {
	u, err := f.users.Create(ctx, user.User{Email: email, Name: "employer", Type: user.TypeEmployer, CompanyID: companyID})
	if err != nil {
		panic(err)
	}
	return u
}

func (f *fixture) mustCandidate(ctx context.Context, email string) *user.User {
	u, err := f.users.Create(ctx, user.User{Email: email, Name: "candidate", Type: user.TypeCandidate})
	if err != nil {
		panic(err)
	}
	return u
}

func (f *fixture) mustJob(ctx context.Context, email string, title string) *job.Job {
	j, err := f.jobService.Create(ctx, email, CreateJobInput{
		Title:       title,
		Description: "description of " + title,
		Salary:      300000,
		Tags:        "リモート可,交通費支給",
	})
	if err != nil {
		panic(err)
	}
	return j
}
