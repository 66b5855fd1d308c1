package comps

import (
	"encoding/json"
	"testing"
)

func TestResolveSingleKey(t *testing.T) {
	base := FallbackConfig()
	got := Resolve(base, json.RawMessage(`{"weights":{"area":0.9}}`))

	if got.Weights.Area != 0.9 {
		t.Errorf("Weights.Area = %v, want 0.9", got.Weights.Area)
	}
	if got.Weights.Market != base.Weights.Market ||
		got.Weights.Land != base.Weights.Land ||
		got.Weights.Year != base.Weights.Year {
		t.Errorf("untouched weight keys changed: %+v", got.Weights)
	}
	if got.Cutoffs != base.Cutoffs {
		t.Errorf("cutoffs group changed without an override: %+v", got.Cutoffs)
	}
	if got.PriceBias != base.PriceBias {
		t.Errorf("priceBias group changed without an override: %+v", got.PriceBias)
	}
}

func TestResolveMultipleGroups(t *testing.T) {
	base := FallbackConfig()
	got := Resolve(base, json.RawMessage(`{
		"cutoffs": {"areaPct": 0.25, "yearDiff": 5},
		"priceBias": {"enabled": false}
	}`))

	if got.Cutoffs.AreaPct != 0.25 || got.Cutoffs.YearDiff != 5 {
		t.Errorf("cutoff overrides not applied: %+v", got.Cutoffs)
	}
	if got.Cutoffs.MarketPct != base.Cutoffs.MarketPct || got.Cutoffs.LandPct != base.Cutoffs.LandPct {
		t.Errorf("untouched cutoff keys changed: %+v", got.Cutoffs)
	}
	if got.PriceBias.Enabled {
		t.Error("priceBias.enabled override not applied")
	}
	if got.PriceBias.Weight != base.PriceBias.Weight || got.PriceBias.FullBiasAt != base.PriceBias.FullBiasAt {
		t.Errorf("untouched priceBias keys changed: %+v", got.PriceBias)
	}
	if got.Weights != base.Weights {
		t.Errorf("weights group changed without an override: %+v", got.Weights)
	}
}

func TestResolveStringEncodedOverride(t *testing.T) {
	// Callers sometimes send the override as a JSON-encoded string.
	raw, err := json.Marshal(`{"weights":{"market":0.7}}`)
	if err != nil {
		t.Fatal(err)
	}

	got := Resolve(FallbackConfig(), raw)
	if got.Weights.Market != 0.7 {
		t.Errorf("Weights.Market = %v, want 0.7", got.Weights.Market)
	}
}

func TestResolveInvalidOverride(t *testing.T) {
	base := FallbackConfig()

	tests := []struct {
		name string
		raw  string
	}{
		{"malformed object", `{bad json`},
		{"string holding malformed object", `"{bad json"`},
		{"wrong type", `42`},
		{"array", `[1,2,3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The override is dropped whole; base comes back unchanged
			// and nothing panics or errors.
			if got := Resolve(base, json.RawMessage(tt.raw)); got != base {
				t.Errorf("Resolve(%q) = %+v, want base unchanged", tt.raw, got)
			}
		})
	}
}

func TestResolveEmptyOverride(t *testing.T) {
	base := FallbackConfig()

	if got := Resolve(base, nil); got != base {
		t.Errorf("nil override changed the config: %+v", got)
	}
	if got := Resolve(base, json.RawMessage(`{}`)); got != base {
		t.Errorf("empty object override changed the config: %+v", got)
	}
	if got := Resolve(base, json.RawMessage(`null`)); got != base {
		t.Errorf("null override changed the config: %+v", got)
	}
}

func TestResolveAcceptsOutOfRangeValues(t *testing.T) {
	// Range validation is deliberately not this layer's job; callers
	// own the sanity of their overrides.
	got := Resolve(FallbackConfig(), json.RawMessage(`{"weights":{"area":-3}}`))
	if got.Weights.Area != -3 {
		t.Errorf("Weights.Area = %v, want -3 passed through", got.Weights.Area)
	}
}
