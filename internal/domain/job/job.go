package job

import "time"

// Job is a posting owned by the company of its creating user. Two
// independent lifecycle flags: is_active toggles freely via patch while the
// job is not archived; is_archived is one-directional. A job is publicly
// visible and accepts applications only while IsActive && !IsArchived.
type Job struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Salary       int64     `json:"salary"`
	Tags         string    `json:"tags"`
	IsActive     bool      `json:"is_active"`
	IsArchived   bool      `json:"is_archived"`
	CreateUserID int64     `json:"create_user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (j Job) Open() bool {
	return j.IsActive && !j.IsArchived
}

// Patch is a sparse update: only non-nil fields are written, so "no change"
// stays distinct from "set to empty/zero".
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Salary      *int64  `json:"salary"`
	Tags        *string `json:"tags"`
	IsActive    *bool   `json:"is_active"`
}

func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Salary == nil && p.Tags == nil && p.IsActive == nil
}

// SearchFilter narrows the public search. Filters compose conjunctively;
// zero values mean "no constraint". Tag matches the comma-joined tags
// column as set membership, never as a substring.
type SearchFilter struct {
	Keyword   string
	MinSalary int64
	MaxSalary int64
	Tag       string
}
