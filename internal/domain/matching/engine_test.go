package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

func slots(idxs ...int) []timeslot.Index {
	out := make([]timeslot.Index, len(idxs))
	for i, v := range idxs {
		out[i] = timeslot.Index(v)
	}
	return out
}

func posting(id string, req ...int) job.Posting {
	return job.Posting{ID: id, Requirement: slots(req...)}
}

func TestRankEmptyAvailabilityBrowsesEverything(t *testing.T) {
	postings := []job.Posting{
		posting("a", 1, 2),
		posting("b"), // empty requirement still listed in browse mode
		posting("c", 5),
	}

	results := Rank(nil, postings)

	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, postings[i].ID, r.Posting.ID, "input order preserved")
		assert.Equal(t, RateNotApplicable, r.Rate)
	}
}

func TestRankTruncatesBelowThreshold(t *testing.T) {
	// 3 of 4 required slots covered: floor(75) stays below the 80 cutoff.
	results := Rank(slots(1, 2, 3), []job.Posting{posting("a", 1, 2, 3, 4)})
	assert.Empty(t, results)
}

func TestRankOrdersByRateDescending(t *testing.T) {
	postings := []job.Posting{
		posting("partial", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20),
		posting("full", 1, 2, 3, 4),
	}
	// 17/20 = 85 for "partial", 4/4 = 100 for "full".
	avail := slots(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 30)

	results := Rank(avail, postings)

	require.Len(t, results, 2)
	assert.Equal(t, "full", results[0].Posting.ID)
	assert.Equal(t, 100, results[0].Rate)
	assert.Equal(t, "partial", results[1].Posting.ID)
	assert.Equal(t, 85, results[1].Rate)
}

func TestRankStableOnTies(t *testing.T) {
	postings := []job.Posting{
		posting("first", 1, 2),
		posting("second", 3, 4),
		posting("third", 5, 6),
	}
	results := Rank(slots(1, 2, 3, 4, 5, 6), postings)

	require.Len(t, results, 3)
	assert.Equal(t, "first", results[0].Posting.ID)
	assert.Equal(t, "second", results[1].Posting.ID)
	assert.Equal(t, "third", results[2].Posting.ID)
}

func TestRankExcludesEmptyRequirement(t *testing.T) {
	results := Rank(slots(1), []job.Posting{posting("empty"), posting("a", 1)})
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].Posting.ID)
}

func TestRankNoPostings(t *testing.T) {
	assert.Empty(t, Rank(slots(1, 2), nil))
	assert.Empty(t, Rank(nil, nil))
}

// Adding availability slots never decreases any posting's rate.
func TestRankMonotonicity(t *testing.T) {
	postings := []job.Posting{
		posting("a", 0, 7, 14, 21, 28),
		posting("b", 1, 2, 3),
		posting("c", 10, 20, 30, 40, 50, 60),
	}

	rateOf := func(avail []timeslot.Index, id string) int {
		for _, r := range Rank(avail, postings) {
			if r.Posting.ID == id {
				return r.Rate
			}
		}
		return -1 // filtered out or absent
	}

	avail := slots()
	for add := 0; add < 70; add += 3 {
		grown := append(append([]timeslot.Index{}, avail...), timeslot.Index(add))
		for _, id := range []string{"a", "b", "c"} {
			before := rateOf(avail, id)
			after := rateOf(grown, id)
			if before >= 0 {
				assert.GreaterOrEqual(t, after, before, "posting %s shrank adding slot %d", id, add)
			}
		}
		avail = grown
	}
}
