package app

import (
	"context"

	"risuwork/internal/domain/company"
	"risuwork/internal/domain/job"
)

type SearchService struct {
	jobs      job.Repository
	companies company.Repository
}

func NewSearchService(jobs job.Repository, companies company.Repository) *SearchService {
	return &SearchService{jobs: jobs, companies: companies}
}

type SearchQuery struct {
	Keyword    string
	MinSalary  int64
	MaxSalary  int64
	Tag        string
	IndustryID string
	Page       int
}

type JobWithCompany struct {
	job.Job
	Company company.Company `json:"company"`
}

type SearchPage struct {
	Jobs        []JobWithCompany `json:"jobs"`
	Page        int              `json:"page"`
	HasNextPage bool             `json:"has_next_page"`
}

// Search builds the public projection: only open jobs, filters conjoined.
// The industry filter is applied after each job's owning company is
// fetched, not pushed into the primary query.
func (s *SearchService) Search(ctx context.Context, q SearchQuery) (*SearchPage, error) {
	found, err := s.jobs.SearchOpen(ctx, job.SearchFilter{
		Keyword:   q.Keyword,
		MinSalary: q.MinSalary,
		MaxSalary: q.MaxSalary,
		Tag:       q.Tag,
	})
	if err != nil {
		return nil, err
	}

	withCompany := make([]JobWithCompany, 0, len(found))
	for _, j := range found {
		c, err := s.companies.GetByJobID(ctx, j.ID)
		if err != nil {
			return nil, err
		}
		if q.IndustryID != "" && q.IndustryID != c.IndustryID {
			continue
		}
		withCompany = append(withCompany, JobWithCompany{Job: j, Company: *c})
	}

	items, hasNext := paginate(withCompany, q.Page, JobSearchPageSize)
	return &SearchPage{Jobs: items, Page: q.Page, HasNextPage: hasNext}, nil
}
