package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
)

type PostingJobs struct {
	jobRepo job.Repository
}

func NewPostingJobs(jobRepo job.Repository) *PostingJobs {
	return &PostingJobs{jobRepo: jobRepo}
}

func (j *PostingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("close_expired_postings", 1*time.Hour, j.CloseExpiredPostings)
}

// CloseExpiredPostings marks postings whose application deadline has
// passed as closed so they stop showing up in match results.
func (j *PostingJobs) CloseExpiredPostings(ctx context.Context) error {
	closed, err := j.jobRepo.CloseExpired(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to close expired postings: %w", err)
	}
	if closed > 0 {
		slog.Info("Cron: Closed expired postings", "count", closed)
	}
	return nil
}
