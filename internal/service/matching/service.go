package matching

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/timepick-app/timepick-backend-go/internal/domain/availability"
	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/domain/matching"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/cache"
	"github.com/timepick-app/timepick-backend-go/internal/pkg/jwt"
)

// Match results are ephemeral and cheap to recompute; the cache only
// smooths repeated list refreshes, so the TTL stays short.
const matchCacheTTL = 2 * time.Minute

type matchingServiceImpl struct {
	availabilityRepo availability.Repository
	jobRepo          job.Repository
	cache            *cache.Cache
}

func NewMatchingService(
	availabilityRepo availability.Repository,
	jobRepo job.Repository,
	cache *cache.Cache,
) matching.Service {
	return &matchingServiceImpl{
		availabilityRepo: availabilityRepo,
		jobRepo:          jobRepo,
		cache:            cache,
	}
}

// MatchJobs implements matching.Service.
func (s *matchingServiceImpl) MatchJobs(ctx context.Context) ([]matching.MatchResponse, error) {
	userID, err := jwt.UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key := matchCacheKey(userID)
	var cached []matching.MatchResponse
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err != nil {
		slog.Warn("match cache read failed", "user_id", userID, "error", err)
	} else if hit {
		return cached, nil
	}

	avail, err := s.availabilityRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}

	postings, err := s.jobRepo.ListWithRequirements(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list postings: %w", err)
	}

	results := matching.Rank(avail, postings)

	responses := make([]matching.MatchResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, matching.MatchResponse{
			JobID:      r.Posting.ID,
			Title:      r.Posting.Title,
			Workplace:  r.Posting.Workplace,
			Location:   r.Posting.Location,
			Category:   r.Posting.Category,
			HourlyRate: r.Posting.HourlyRate,
			MatchRate:  r.Rate,
		})
	}

	if err := s.cache.SetJSON(ctx, key, responses, matchCacheTTL); err != nil {
		slog.Warn("match cache write failed", "user_id", userID, "error", err)
	}
	return responses, nil
}

// InvalidateUser implements matching.Service.
func (s *matchingServiceImpl) InvalidateUser(ctx context.Context, userID string) error {
	return s.cache.Delete(ctx, matchCacheKey(userID))
}

func matchCacheKey(userID string) string {
	return "match:user:" + userID
}
