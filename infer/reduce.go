package infer

import (
	"sort"

	"github.com/fwojciec/sitemd"
)

// CandidateSet aggregates selector candidates across a corpus by keeping,
// for each distinct selector, the maximum score seen. Max-reduction rewards
// a selector that works very well on at least one page: one shared template
// should not be disqualified by an occasional low-content stub.
//
// Discovery order is preserved for deterministic tie-breaking at synthesis
// time. Adding is idempotent and commutative up to that ordering.
type CandidateSet struct {
	scores map[string]float64
	order  []string
}

// NewCandidateSet returns an empty CandidateSet.
func NewCandidateSet() *CandidateSet {
	return &CandidateSet{scores: make(map[string]float64)}
}

// Add folds one candidate into the set, keeping the maximum score per
// selector.
func (s *CandidateSet) Add(candidate sitemd.SelectorCandidate) {
	current, seen := s.scores[candidate.Selector]
	if !seen {
		s.order = append(s.order, candidate.Selector)
		s.scores[candidate.Selector] = candidate.Score
		return
	}
	if candidate.Score > current {
		s.scores[candidate.Selector] = candidate.Score
	}
}

// AddAll folds a page's candidates into the set in document order.
func (s *CandidateSet) AddAll(candidates []sitemd.SelectorCandidate) {
	for _, candidate := range candidates {
		s.Add(candidate)
	}
}

// Len returns the number of distinct selectors seen.
func (s *CandidateSet) Len() int {
	return len(s.scores)
}

// Score returns the aggregated score for a selector and whether it was seen.
func (s *CandidateSet) Score(selector string) (float64, bool) {
	score, ok := s.scores[selector]
	return score, ok
}

// Top returns the candidates with aggregated score strictly greater than
// threshold, sorted descending by score. Ties keep discovery order. At most
// n candidates are returned; n <= 0 means no limit.
func (s *CandidateSet) Top(threshold float64, n int) []sitemd.SelectorCandidate {
	survivors := make([]sitemd.SelectorCandidate, 0, len(s.order))
	for _, selector := range s.order {
		if score := s.scores[selector]; score > threshold {
			survivors = append(survivors, sitemd.SelectorCandidate{Selector: selector, Score: score})
		}
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Score > survivors[j].Score
	})

	if n > 0 && len(survivors) > n {
		survivors = survivors[:n]
	}
	return survivors
}
