package availability

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/timepick-app/timepick-backend-go/internal/domain/availability"
	"github.com/timepick-app/timepick-backend-go/internal/domain/matching"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
)

type availabilityServiceImpl struct {
	availabilityRepo availability.Repository
	matchingService  matching.Service
}

func NewAvailabilityService(
	availabilityRepo availability.Repository,
	matchingService matching.Service,
) availability.Service {
	return &availabilityServiceImpl{
		availabilityRepo: availabilityRepo,
		matchingService:  matchingService,
	}
}

// Replace implements availability.Service. The saved set is replaced
// wholesale; there is no partial merge.
func (s *availabilityServiceImpl) Replace(ctx context.Context, req availability.ReplaceAvailabilityRequest) (availability.AvailabilityResponse, error) {
	if err := req.Validate(); err != nil {
		return availability.AvailabilityResponse{}, err
	}

	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return availability.AvailabilityResponse{}, err
	}

	if err := s.availabilityRepo.Replace(ctx, userID, req.Indices()); err != nil {
		return availability.AvailabilityResponse{}, fmt.Errorf("failed to replace availability: %w", err)
	}

	// Stale match results would rank against the old slot set.
	if err := s.matchingService.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("failed to invalidate match cache", "user_id", userID, "error", err)
	}

	return availability.AvailabilityResponse{UserID: userID, Slots: req.Slots}, nil
}

// Get implements availability.Service.
func (s *availabilityServiceImpl) Get(ctx context.Context) (availability.AvailabilityResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return availability.AvailabilityResponse{}, err
	}

	slots, err := s.availabilityRepo.GetByUser(ctx, userID)
	if err != nil {
		return availability.AvailabilityResponse{}, fmt.Errorf("failed to load availability: %w", err)
	}

	raw := make([]int, len(slots))
	for i, slot := range slots {
		raw[i] = int(slot)
	}
	return availability.AvailabilityResponse{UserID: userID, Slots: raw}, nil
}
