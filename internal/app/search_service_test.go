package app

import (
	"context"
	"fmt"
	"testing"

	"risuwork/internal/domain/company"
	"risuwork/internal/domain/job"
)

func seedSearch(t *testing.T) (*fixture, context.Context) {
	t.Helper()
	f := newFixture()
	ctx := context.Background()
	c := f.mustCompany(ctx, "ACME")
	f.mustEmployer(ctx, "cl@example.com", c.ID)
	return f, ctx
}

func createJob(t *testing.T, f *fixture, ctx context.Context, input CreateJobInput) *job.Job {
	t.Helper()
	j, err := f.jobService.Create(ctx, "cl@example.com", input)
	if err != nil {
		t.Fatal(err)
	}
	return j
}

func TestSearchTagSetMembership(t *testing.T) {
	f, ctx := seedSearch(t)

	match := []string{"remote", "remote,onsite", "onsite,remote", "onsite,remote,hybrid"}
	matchIDs := map[int64]bool{}
	for _, tags := range match {
		j := createJob(t, f, ctx, CreateJobInput{Title: "t", Description: "d", Salary: 1000, Tags: tags})
		matchIDs[j.ID] = true
	}
	// Substring of a longer tag must not match.
	createJob(t, f, ctx, CreateJobInput{Title: "t", Description: "d", Salary: 1000, Tags: "remotework"})
	createJob(t, f, ctx, CreateJobInput{Title: "t", Description: "d", Salary: 1000, Tags: "onsite"})

	page, err := f.search.Search(ctx, SearchQuery{Tag: "remote"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Jobs) != len(match) {
		t.Fatalf("matched %d jobs, want %d", len(page.Jobs), len(match))
	}
	for _, j := range page.Jobs {
		if !matchIDs[j.ID] {
			t.Fatalf("job %d (tags %q) must not match tag 'remote'", j.ID, j.Tags)
		}
	}
}

func TestSearchExcludesClosedJobs(t *testing.T) {
	f, ctx := seedSearch(t)

	open := createJob(t, f, ctx, CreateJobInput{Title: "open", Description: "d", Salary: 1000, Tags: "t"})
	paused := createJob(t, f, ctx, CreateJobInput{Title: "paused", Description: "d", Salary: 1000, Tags: "t"})
	archived := createJob(t, f, ctx, CreateJobInput{Title: "archived", Description: "d", Salary: 1000, Tags: "t"})

	active := false
	if err := f.jobs.UpdatePartial(ctx, paused.ID, job.Patch{IsActive: &active}); err != nil {
		t.Fatal(err)
	}
	if err := f.jobService.Archive(ctx, "cl@example.com", archived.ID); err != nil {
		t.Fatal(err)
	}

	page, err := f.search.Search(ctx, SearchQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Jobs) != 1 || page.Jobs[0].ID != open.ID {
		t.Fatalf("want only the open job, got %+v", page.Jobs)
	}
}

func TestSearchFiltersConjoined(t *testing.T) {
	f, ctx := seedSearch(t)

	hit := createJob(t, f, ctx, CreateJobInput{Title: "Go backend engineer", Description: "d", Salary: 400000, Tags: "remote"})
	createJob(t, f, ctx, CreateJobInput{Title: "Go backend engineer", Description: "d", Salary: 100000, Tags: "remote"})
	createJob(t, f, ctx, CreateJobInput{Title: "designer", Description: "d", Salary: 400000, Tags: "remote"})
	createJob(t, f, ctx, CreateJobInput{Title: "Go backend engineer", Description: "d", Salary: 400000, Tags: "onsite"})

	page, err := f.search.Search(ctx, SearchQuery{Keyword: "backend", MinSalary: 200000, MaxSalary: 500000, Tag: "remote"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Jobs) != 1 || page.Jobs[0].ID != hit.ID {
		t.Fatalf("want only job %d, got %+v", hit.ID, page.Jobs)
	}
}

func TestSearchKeywordMatchesDescription(t *testing.T) {
	f, ctx := seedSearch(t)

	hit := createJob(t, f, ctx, CreateJobInput{Title: "engineer", Description: "Kubernetes platform work", Salary: 1000, Tags: "t"})
	createJob(t, f, ctx, CreateJobInput{Title: "engineer", Description: "frontend work", Salary: 1000, Tags: "t"})

	page, err := f.search.Search(ctx, SearchQuery{Keyword: "Kubernetes"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Jobs) != 1 || page.Jobs[0].ID != hit.ID {
		t.Fatalf("want only job %d, got %+v", hit.ID, page.Jobs)
	}
}

func TestSearchIndustryFilter(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	it, err := f.companies.Create(ctx, company.Company{Name: "ACME", IndustryID: "I01", Industry: "IT・通信"})
	if err != nil {
		t.Fatal(err)
	}
	maker, err := f.companies.Create(ctx, company.Company{Name: "Globex", IndustryID: "I02", Industry: "メーカー"})
	if err != nil {
		t.Fatal(err)
	}
	f.mustEmployer(ctx, "cl@acme.example", it.ID)
	f.mustEmployer(ctx, "cl@globex.example", maker.ID)
	hit := f.mustJob(ctx, "cl@acme.example", "backend engineer")
	f.mustJob(ctx, "cl@globex.example", "line operator")

	page, err := f.search.Search(ctx, SearchQuery{IndustryID: "I01"})
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Jobs) != 1 || page.Jobs[0].ID != hit.ID {
		t.Fatalf("want only job %d, got %+v", hit.ID, page.Jobs)
	}
	if page.Jobs[0].Company.ID != it.ID {
		t.Fatalf("company = %d, want %d", page.Jobs[0].Company.ID, it.ID)
	}
}

func TestSearchPaginationExhaustive(t *testing.T) {
	f, ctx := seedSearch(t)

	const total = 120
	for i := 0; i < total; i++ {
		createJob(t, f, ctx, CreateJobInput{Title: fmt.Sprintf("job %03d", i), Description: "d", Salary: 1000, Tags: "t"})
	}

	seen := map[int64]bool{}
	wantNext := []bool{true, true, false}
	wantLen := []int{JobSearchPageSize, JobSearchPageSize, total - 2*JobSearchPageSize}
	for page := 0; page < 3; page++ {
		got, err := f.search.Search(ctx, SearchQuery{Page: page})
		if err != nil {
			t.Fatal(err)
		}
		if len(got.Jobs) != wantLen[page] || got.HasNextPage != wantNext[page] {
			t.Fatalf("page %d: got %d hasNext=%v, want %d/%v", page, len(got.Jobs), got.HasNextPage, wantLen[page], wantNext[page])
		}
		for _, j := range got.Jobs {
			if seen[j.ID] {
				t.Fatalf("job %d appeared on two pages", j.ID)
			}
			seen[j.ID] = true
		}
	}
	if len(seen) != total {
		t.Fatalf("pages cover %d jobs, want %d", len(seen), total)
	}
}
