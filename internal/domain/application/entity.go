package application

import "time"

// AppliedJob records that a worker applied to a posting.
type AppliedJob struct {
	ID        string
	UserID    string
	JobID     string
	AppliedAt time.Time
}
