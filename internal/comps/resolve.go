package comps

import (
	"encoding/json"
	"log"
)

// Override is a partial Config supplied by the caller. Every field is a
// pointer so "key absent" and "key set to zero" stay distinguishable
// during the merge.
type Override struct {
	Weights   *WeightsOverride   `json:"weights"`
	Cutoffs   *CutoffsOverride   `json:"cutoffs"`
	PriceBias *PriceBiasOverride `json:"priceBias"`
}

// WeightsOverride overrides individual weight keys.
type WeightsOverride struct {
	Area   *float64 `json:"area"`
	Market *float64 `json:"market"`
	Land   *float64 `json:"land"`
	Year   *float64 `json:"year"`
}

// CutoffsOverride overrides individual cutoff keys.
type CutoffsOverride struct {
	AreaPct   *float64 `json:"areaPct"`
	MarketPct *float64 `json:"marketPct"`
	LandPct   *float64 `json:"landPct"`
	YearDiff  *int     `json:"yearDiff"`
}

// PriceBiasOverride overrides individual price-bias keys.
type PriceBiasOverride struct {
	Enabled    *bool    `json:"enabled"`
	Weight     *float64 `json:"weight"`
	FullBiasAt *int     `json:"fullBiasAt"`
}

// Resolve merges a caller-supplied override onto base. The override may
// be a JSON object or a JSON-encoded string containing one; keys present
// in an override group win, keys absent keep their base values, and
// groups absent from the override are untouched. An override that fails
// to parse is dropped whole: the base configuration is returned
// unchanged and a warning is logged. Resolve never returns an error.
//
// No range validation happens here; out-of-range values flow downstream
// as supplied.
func Resolve(base Config, raw json.RawMessage) Config {
	if len(raw) == 0 {
		return base
	}

	data := []byte(raw)

	// Request surfaces sometimes double-encode the override as a string.
	var quoted string
	if err := json.Unmarshal(data, &quoted); err == nil {
		data = []byte(quoted)
	}

	var ov Override
	if err := json.Unmarshal(data, &ov); err != nil {
		log.Printf("comps: invalid algorithm override ignored, keeping base config: %v", err)
		return base
	}

	return merge(base, ov)
}

// merge applies a parsed override per group. Shallow per-group merge:
// each present key overwrites, nothing else moves.
func merge(base Config, ov Override) Config {
	resolved := base

	if w := ov.Weights; w != nil {
		if w.Area != nil {
			resolved.Weights.Area = *w.Area
		}
		if w.Market != nil {
			resolved.Weights.Market = *w.Market
		}
		if w.Land != nil {
			resolved.Weights.Land = *w.Land
		}
		if w.Year != nil {
			resolved.Weights.Year = *w.Year
		}
	}

	if c := ov.Cutoffs; c != nil {
		if c.AreaPct != nil {
			resolved.Cutoffs.AreaPct = *c.AreaPct
		}
		if c.MarketPct != nil {
			resolved.Cutoffs.MarketPct = *c.MarketPct
		}
		if c.LandPct != nil {
			resolved.Cutoffs.LandPct = *c.LandPct
		}
		if c.YearDiff != nil {
			resolved.Cutoffs.YearDiff = *c.YearDiff
		}
	}

	if p := ov.PriceBias; p != nil {
		if p.Enabled != nil {
			resolved.PriceBias.Enabled = *p.Enabled
		}
		if p.Weight != nil {
			resolved.PriceBias.Weight = *p.Weight
		}
		if p.FullBiasAt != nil {
			resolved.PriceBias.FullBiasAt = *p.FullBiasAt
		}
	}

	return resolved
}
