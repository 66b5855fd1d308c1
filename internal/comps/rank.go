package comps

import "sort"

// DefaultLimit is the number of comparables returned when the caller
// does not ask for a specific count.
const DefaultLimit = 10

// Rank sorts scored candidates ascending by similarity and truncates to
// limit. The sort is stable: equal scores keep their input order, which
// is the only tie-break. A limit of zero or below falls back to
// DefaultLimit.
func Rank(scored []ScoredCandidate, limit int) []ScoredCandidate {
	if limit <= 0 {
		limit = DefaultLimit
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity < scored[j].Similarity
	})

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
