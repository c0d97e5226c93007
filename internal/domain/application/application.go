package application

import "time"

// Application records one candidate applying to one job. Immutable once
// created; at most one may ever exist per (JobID, UserID).
type Application struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
