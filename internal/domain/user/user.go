package user

import "time"

type Type string

const (
	TypeCandidate Type = "CS"
	TypeEmployer  Type = "CL"
)

// User is an authenticated principal. Email is unique and immutable.
// CompanyID is set for CL users at signup and never reassigned; it is 0
// for CS users.
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Type      Type      `json:"user_type"`
	CompanyID int64     `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
