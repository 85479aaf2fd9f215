package matching

import "context"

type MatchResponse struct {
	JobID      string `json:"job_id"`
	Title      string `json:"title"`
	Workplace  string `json:"workplace"`
	Location   string `json:"location"`
	Category   string `json:"category"`
	HourlyRate int    `json:"hourly_rate"`
	// MatchRate is -1 when the worker picked no availability and the
	// full posting list is returned unranked.
	MatchRate int `json:"match_rate"`
}

type Service interface {
	// MatchJobs ranks open postings against the caller's saved
	// availability.
	MatchJobs(ctx context.Context) ([]MatchResponse, error)
	// InvalidateUser drops the caller's cached match results, used when
	// their availability changes.
	InvalidateUser(ctx context.Context, userID string) error
}
