package application

import "context"

type Repository interface {
	Create(ctx context.Context, applied AppliedJob) (AppliedJob, error)
	ListByUser(ctx context.Context, userID string) ([]AppliedJob, error)
	ExistsByUserAndJob(ctx context.Context, userID, jobID string) (bool, error)
}

type Service interface {
	Apply(ctx context.Context, req ApplyRequest) (AppliedJobResponse, error)
	ListMine(ctx context.Context) ([]AppliedJobResponse, error)
}
