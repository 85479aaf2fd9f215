package job

import (
	"context"
	"fmt"

	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
)

type jobServiceImpl struct {
	jobRepo job.Repository
}

func NewJobService(jobRepo job.Repository) job.Service {
	return &jobServiceImpl{
		jobRepo: jobRepo,
	}
}

// List implements job.Service.
func (s *jobServiceImpl) List(ctx context.Context) ([]job.PostingResponse, error) {
	postings, err := s.jobRepo.ListWithRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list job postings: %w", err)
	}

	results := make([]job.PostingResponse, 0, len(postings))
	for _, p := range postings {
		results = append(results, job.NewPostingResponse(p))
	}
	return results, nil
}

// Get implements job.Service.
func (s *jobServiceImpl) Get(ctx context.Context, id string) (job.PostingResponse, error) {
	posting, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return job.PostingResponse{}, err
	}
	return job.NewPostingResponse(posting), nil
}
