package comps

import (
	"math"
	"testing"

	"github.com/parcel-comps/internal/property"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func sptr(v string) *string   { return &v }

// makeRecord builds a fully populated record for filter and scorer tests.
func makeRecord(id string, area, market, land float64, year int) property.Record {
	return property.Record{
		ID:              id,
		SubdivisionCode: sptr("OAKHURST"),
		Area:            fptr(area),
		MarketValue:     fptr(market),
		LandValue:       fptr(land),
		YearBuilt:       iptr(year),
	}
}

func TestRelativeDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		want float64
	}{
		{"equal values", 2000, 2000, 0},
		{"half", 50, 100, 0.5},
		{"area example", 2050, 2000, 50.0 / 2050},
		{"market example", 310000, 300000, 10000.0 / 310000},
		{"large gap stays below one", 1, 1000000, 999999.0 / 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDiff(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("RelativeDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}

			// Symmetry holds for every pair.
			if rev := RelativeDiff(tt.b, tt.a); rev != got {
				t.Errorf("RelativeDiff not symmetric: %v vs %v", got, rev)
			}

			if got < 0 || got >= 1 {
				t.Errorf("RelativeDiff(%v, %v) = %v outside [0,1)", tt.a, tt.b, got)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	target := makeRecord("TARGET", 2000, 300000, 50000, 2005)
	cutoffs := FallbackConfig().Cutoffs

	missingArea := makeRecord("NO-AREA", 0, 300000, 50000, 2005)
	missingArea.Area = nil
	zeroLand := makeRecord("ZERO-LAND", 2000, 300000, 0, 2005)

	candidates := []property.Record{
		makeRecord("PASS-1", 2050, 310000, 51000, 2006),
		missingArea,
		zeroLand,
		makeRecord("AREA-FAR", 2500, 300000, 50000, 2005),   // relDiff 0.2 > 0.1
		makeRecord("MARKET-FAR", 2000, 400000, 50000, 2005), // relDiff 0.25 > 0.2
		makeRecord("LAND-FAR", 2000, 300000, 90000, 2005),   // relDiff 0.44 > 0.3
		makeRecord("YEAR-FAR", 2000, 300000, 50000, 1990),   // gap 15 > 10
		makeRecord("PASS-2", 2000, 300000, 50000, 2005),
	}

	got := Filter(false, target, candidates, cutoffs)

	want := []string{"PASS-1", "PASS-2"}
	if len(got) != len(want) {
		t.Fatalf("Filter admitted %d candidates, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("admitted[%d] = %s, want %s (order must be preserved)", i, got[i].ID, id)
		}
	}
}

func TestFilterBoundary(t *testing.T) {
	// A candidate sitting exactly on a cutoff is admitted: the
	// predicate is <=, not <.
	target := makeRecord("TARGET", 2000, 300000, 50000, 2005)
	cutoffs := Cutoffs{AreaPct: 0.5, MarketPct: 0.5, LandPct: 0.5, YearDiff: 10}

	onYearEdge := makeRecord("EDGE", 2000, 300000, 50000, 2015)
	got := Filter(false, target, []property.Record{onYearEdge}, cutoffs)
	if len(got) != 1 {
		t.Errorf("candidate on the year cutoff should be admitted, got %d", len(got))
	}

	pastYearEdge := makeRecord("PAST", 2000, 300000, 50000, 2016)
	got = Filter(false, target, []property.Record{pastYearEdge}, cutoffs)
	if len(got) != 0 {
		t.Errorf("candidate past the year cutoff should be rejected, got %d", len(got))
	}
}

func TestFilterTargetMissingAttributes(t *testing.T) {
	target := makeRecord("TARGET", 2000, 300000, 50000, 2005)
	target.LandValue = nil

	candidates := []property.Record{
		makeRecord("CAND", 2000, 300000, 50000, 2005),
	}

	if got := Filter(false, target, candidates, FallbackConfig().Cutoffs); len(got) != 0 {
		t.Errorf("target without scoring attributes admitted %d candidates, want 0", len(got))
	}
}
