package comps

import (
	"math"

	"github.com/parcel-comps/internal/debug"
	"github.com/parcel-comps/internal/property"
)

// RelativeDiff returns |a-b| / max(a,b) for positive a and b. The result
// is symmetric, zero iff the values are equal, and always below 1, which
// the cutoff semantics rely on. This is not a signed percentage change.
func RelativeDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(a, b)
}

// Filter returns the order-preserving subsequence of candidates that are
// comparable to target under cutoffs: all four scoring attributes
// present and non-zero, area/market/land within their relative-difference
// cutoffs, and year built within the absolute year cutoff.
//
// A target missing any scoring attribute admits nothing, since no
// tolerance can be evaluated against an absent value.
func Filter(localDebug bool, target property.Record, candidates []property.Record, cutoffs Cutoffs) []property.Record {
	if !target.Comparable() {
		debug.Output(localDebug, "target %s missing scoring attributes, no candidates admitted", target.ID)
		return nil
	}

	var admitted []property.Record
	for _, cand := range candidates {
		if reason := rejectReason(target, cand, cutoffs); reason != "" {
			debug.Output(localDebug, "candidate %s rejected: %s", cand.ID, reason)
			continue
		}
		admitted = append(admitted, cand)
	}

	debug.Output(localDebug, "filter: %d -> %d candidates", len(candidates), len(admitted))
	return admitted
}

// rejectReason reports why a candidate fails the filter, or "" when it
// passes. Target is known comparable when this is called.
func rejectReason(target, cand property.Record, cutoffs Cutoffs) string {
	if !cand.Comparable() {
		return "missing scoring attributes"
	}
	if RelativeDiff(*cand.Area, *target.Area) > cutoffs.AreaPct {
		return "area outside tolerance"
	}
	if RelativeDiff(*cand.MarketValue, *target.MarketValue) > cutoffs.MarketPct {
		return "market value outside tolerance"
	}
	if RelativeDiff(*cand.LandValue, *target.LandValue) > cutoffs.LandPct {
		return "land value outside tolerance"
	}
	if absInt(*cand.YearBuilt-*target.YearBuilt) > cutoffs.YearDiff {
		return "year built outside tolerance"
	}
	return ""
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
