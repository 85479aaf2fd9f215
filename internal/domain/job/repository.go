package job

import (
	"context"
	"time"
)

type Repository interface {
	// ListWithRequirements returns every open posting with its required
	// slot set attached, in stable retrieval order.
	ListWithRequirements(ctx context.Context) ([]Posting, error)
	GetByID(ctx context.Context, id string) (Posting, error)
	// CloseExpired marks postings whose deadline has passed as closed
	// and returns how many were affected.
	CloseExpired(ctx context.Context, now time.Time) (int64, error)
}
