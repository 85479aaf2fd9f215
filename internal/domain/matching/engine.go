package matching

import (
	"sort"

	"github.com/timepick-app/timepick-backend-go/internal/domain/job"
	"github.com/timepick-app/timepick-backend-go/internal/domain/timeslot"
)

const (
	// MatchThreshold is the minimum match rate a posting must reach to
	// appear in a ranked result.
	MatchThreshold = 80
	// RateNotApplicable marks results returned when the worker selected
	// no availability at all (browse-everything mode).
	RateNotApplicable = -1
)

// Result pairs a posting with the percentage of its required slots
// covered by the worker's availability. Results are recomputed on
// demand and never persisted.
type Result struct {
	Posting job.Posting
	Rate    int
}

// Rank scores every posting against the worker's availability.
//
// With an empty availability set every posting is returned unranked in
// input order with RateNotApplicable. Otherwise postings with an empty
// requirement never match, the rate is the truncated integer percentage
// of required slots covered, only postings at or above MatchThreshold
// survive, and the survivors are stably sorted by rate descending so
// ties keep their retrieval order.
func Rank(avail []timeslot.Index, postings []job.Posting) []Result {
	if len(avail) == 0 {
		results := make([]Result, 0, len(postings))
		for _, p := range postings {
			results = append(results, Result{Posting: p, Rate: RateNotApplicable})
		}
		return results
	}

	availSet := make(map[timeslot.Index]bool, len(avail))
	for _, idx := range avail {
		availSet[idx] = true
	}

	results := make([]Result, 0, len(postings))
	for _, p := range postings {
		if len(p.Requirement) == 0 {
			continue
		}
		covered := 0
		for _, idx := range p.Requirement {
			if availSet[idx] {
				covered++
			}
		}
		// Integer division on purpose: the rate truncates toward zero.
		rate := covered * 100 / len(p.Requirement)
		if rate < MatchThreshold {
			continue
		}
		results = append(results, Result{Posting: p, Rate: rate})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rate > results[j].Rate
	})
	return results
}
