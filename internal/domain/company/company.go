package company

import "time"

type Company struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	IndustryID string    `json:"industry_id,omitempty"`
	Industry   string    `json:"industry"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}
