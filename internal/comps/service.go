package comps

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/parcel-comps/internal/debug"
	"github.com/parcel-comps/internal/property"
)

// Provider supplies parcel records from the appraisal data source. The
// service issues exactly two provider calls per request, in sequence:
// the target lookup first, then the candidate set for its subdivision.
type Provider interface {
	// ByID returns the record for one parcel, or (nil, nil) when no
	// such parcel exists.
	ByID(id string) (*property.Record, error)

	// SubdivisionCandidates returns every record sharing the given
	// subdivision code, excluding the parcel with excludeID.
	SubdivisionCandidates(code, excludeID string) ([]property.Record, error)
}

var (
	// ErrMissingPropertyID is returned when a request names no parcel.
	ErrMissingPropertyID = errors.New("property id is required")

	// ErrTargetNotFound is returned when the data source has no record
	// for the requested parcel.
	ErrTargetNotFound = errors.New("target property not found")
)

// Request is the caller-facing request shape.
type Request struct {
	PropertyID      string          `json:"propertyId"`
	Limit           int             `json:"limit"`
	CustomAlgorithm json.RawMessage `json:"customAlgorithm,omitempty"`
}

// Result is the outcome of one comparison request.
type Result struct {
	Target          property.Record   `json:"target"`
	SubdivisionCode string            `json:"subdivisionCode"`
	TotalCandidates int               `json:"totalCandidates"`
	FilteredCount   int               `json:"filteredCount"`
	Comparables     []ScoredCandidate `json:"comparables"`
}

// Service runs the comparison pipeline: resolve configuration, fetch the
// target and its subdivision candidates, filter, score, rank. It holds
// no per-request state; every invocation is independent.
type Service struct {
	provider Provider
	base     Config
}

// NewService creates a service using the process-wide default
// configuration as its base.
func NewService(provider Provider) *Service {
	return NewServiceWithConfig(provider, DefaultConfig())
}

// NewServiceWithConfig creates a service with an explicit base
// configuration.
func NewServiceWithConfig(provider Provider, base Config) *Service {
	return &Service{provider: provider, base: base}
}

// Compare finds the comparables for one parcel. Parameter and lookup
// failures abort the request; configuration problems never do, they
// degrade to the base configuration.
func (s *Service) Compare(localDebug bool, req Request) (*Result, error) {
	defer debug.Timing(localDebug, "comparison")()

	if strings.TrimSpace(req.PropertyID) == "" {
		return nil, ErrMissingPropertyID
	}

	cfg := Resolve(s.base, req.CustomAlgorithm)

	target, err := s.provider.ByID(req.PropertyID)
	if err != nil {
		return nil, fmt.Errorf("target lookup failed: %w", err)
	}
	if target == nil {
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, req.PropertyID)
	}

	code := target.Subdivision()
	if code == "" {
		return nil, fmt.Errorf("parcel %s has no subdivision code", target.ID)
	}

	candidates, err := s.provider.SubdivisionCandidates(code, target.ID)
	if err != nil {
		return nil, fmt.Errorf("candidate lookup failed: %w", err)
	}
	debug.Output(localDebug, "subdivision %s: %d raw candidates", code, len(candidates))

	filtered := Filter(localDebug, *target, candidates, cfg.Cutoffs)

	// Availability is tied to the raw count: a thin subdivision keeps
	// the price bias weak even if every record passes the filter.
	scorer := NewScorer(cfg, len(candidates))
	debug.Output(localDebug, "availability factor: %.3f", scorer.AvailabilityFactor())

	scored := make([]ScoredCandidate, 0, len(filtered))
	for _, cand := range filtered {
		scored = append(scored, scorer.Score(localDebug, *target, cand))
	}

	return &Result{
		Target:          *target,
		SubdivisionCode: code,
		TotalCandidates: len(candidates),
		FilteredCount:   len(filtered),
		Comparables:     Rank(scored, req.Limit),
	}, nil
}
