package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/timepick-app/timepick-backend-go/internal/domain/application"
	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
)

type applicationServiceImpl struct {
	appliedRepo application.Repository
	jobRepo     job.Repository
}

func NewApplicationService(
	appliedRepo application.Repository,
	jobRepo job.Repository,
) application.Service {
	return &applicationServiceImpl{
		appliedRepo: appliedRepo,
		jobRepo:     jobRepo,
	}
}

// Apply implements application.Service.
func (s *applicationServiceImpl) Apply(ctx context.Context, req application.ApplyRequest) (application.AppliedJobResponse, error) {
	if err := req.Validate(); err != nil {
		return application.AppliedJobResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return application.AppliedJobResponse{}, err
	}

	posting, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return application.AppliedJobResponse{}, err
	}

	exists, err := s.appliedRepo.ExistsByUserAndJob(ctx, userID, req.JobID)
	if err != nil {
		return application.AppliedJobResponse{}, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return application.AppliedJobResponse{}, application.ErrAlreadyApplied
	}

	applied, err := s.appliedRepo.Create(ctx, application.AppliedJob{
		UserID: userID,
		JobID:  req.JobID,
	})
	if err != nil {
		return application.AppliedJobResponse{}, err
	}

	return application.AppliedJobResponse{
		ID:        applied.ID,
		JobID:     applied.JobID,
		JobTitle:  posting.Title,
		Workplace: posting.Workplace,
		AppliedAt: applied.AppliedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

// ListMine implements application.Service.
func (s *applicationServiceImpl) ListMine(ctx context.Context) ([]application.AppliedJobResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	applications, err := s.appliedRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	responses := make([]application.AppliedJobResponse, 0, len(applications))
	for _, a := range applications {
		resp := application.AppliedJobResponse{
			ID:        a.ID,
			JobID:     a.JobID,
			AppliedAt: a.AppliedAt.Format("2006-01-02T15:04:05Z"),
		}
		// Posting details are best effort; a since-removed posting still
		// leaves the application visible.
		posting, err := s.jobRepo.GetByID(ctx, a.JobID)
		if err == nil {
			resp.JobTitle = posting.Title
			resp.Workplace = posting.Workplace
		} else if !errors.Is(err, job.ErrPostingNotFound) {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
