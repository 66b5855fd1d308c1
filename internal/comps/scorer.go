package comps

import (
	"math"

	"github.com/parcel-comps/internal/debug"
	"github.com/parcel-comps/internal/property"
)

// yearScale converts an absolute year gap into score units. The year
// term is deliberately not a relative difference: a fixed 100-year scale
// keeps a 10-year gap worth 0.1 regardless of the build era.
const yearScale = 100.0

// ScoredCandidate is a candidate record with its ranking scores. Lower
// similarity means more similar.
type ScoredCandidate struct {
	property.Record
	Similarity            float64 `json:"similarity"`
	BaseSimilarity        float64 `json:"baseSimilarity"`
	PriceBiasContribution float64 `json:"priceBiasContribution"`
}

// Scorer computes weighted dissimilarity scores for candidates that
// survived filtering. A scorer is built once per request: the
// availability factor depends on the raw candidate count before
// filtering, so bias strength tracks how liquid the subdivision is, not
// how many records passed the tolerances.
type Scorer struct {
	weights      Weights
	bias         PriceBias
	availability float64
}

// NewScorer builds a scorer from a resolved configuration and the
// pre-filter candidate count.
func NewScorer(cfg Config, rawCandidateCount int) *Scorer {
	var availability float64
	if cfg.PriceBias.FullBiasAt > 0 {
		availability = math.Min(1, float64(rawCandidateCount)/float64(cfg.PriceBias.FullBiasAt))
	}
	return &Scorer{
		weights:      cfg.Weights,
		bias:         cfg.PriceBias,
		availability: availability,
	}
}

// AvailabilityFactor reports the liquidity fraction used to scale the
// price-bias penalty: min(1, rawCandidateCount / fullBiasAt).
func (s *Scorer) AvailabilityFactor() float64 {
	return s.availability
}

// Score computes the dissimilarity of one filtered candidate against the
// target. Both records are known to carry all four scoring attributes.
//
// The price bias is a penalty, never a reward: candidates priced at or
// below the target contribute zero, pricier ones are pushed down the
// ranking in proportion to how far above the target they sit.
func (s *Scorer) Score(localDebug bool, target, cand property.Record) ScoredCandidate {
	base := s.weights.Area*RelativeDiff(*cand.Area, *target.Area) +
		s.weights.Market*RelativeDiff(*cand.MarketValue, *target.MarketValue) +
		s.weights.Land*RelativeDiff(*cand.LandValue, *target.LandValue) +
		s.weights.Year*(float64(absInt(*cand.YearBuilt-*target.YearBuilt))/yearScale)

	scored := ScoredCandidate{
		Record:         cand,
		Similarity:     base,
		BaseSimilarity: base,
	}

	if s.bias.Enabled {
		priceRatio := *cand.MarketValue / *target.MarketValue
		scored.PriceBiasContribution = math.Max(0, priceRatio-1)
		scored.Similarity = base + s.availability*s.bias.Weight*scored.PriceBiasContribution
	}

	debug.Output(localDebug, "candidate %s scored: base=%.4f bias=%.4f final=%.4f",
		cand.ID, scored.BaseSimilarity, scored.PriceBiasContribution, scored.Similarity)

	return scored
}
