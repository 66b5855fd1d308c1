package comps

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Weights control the relative contribution of each attribute to the
// dissimilarity score.
type Weights struct {
	Area   float64 `json:"area"`
	Market float64 `json:"market"`
	Land   float64 `json:"land"`
	Year   float64 `json:"year"`
}

// Cutoffs are the per-attribute tolerances a candidate must stay within
// to be scored at all. The Pct cutoffs bound the relative difference
// (0..1); YearDiff bounds the absolute year gap.
type Cutoffs struct {
	AreaPct   float64 `json:"areaPct"`
	MarketPct float64 `json:"marketPct"`
	LandPct   float64 `json:"landPct"`
	YearDiff  int     `json:"yearDiff"`
}

// PriceBias configures the liquidity-scaled penalty applied to
// candidates priced above the target.
type PriceBias struct {
	Enabled    bool    `json:"enabled"`
	Weight     float64 `json:"weight"`
	FullBiasAt int     `json:"fullBiasAt"`
}

// Config is the full algorithm configuration: three independent
// parameter groups. Values are not range-checked anywhere; callers that
// supply negative weights get exactly what they asked for.
type Config struct {
	Weights   Weights   `json:"weights"`
	Cutoffs   Cutoffs   `json:"cutoffs"`
	PriceBias PriceBias `json:"priceBias"`
}

// FallbackConfig returns the built-in configuration used when no
// configuration file can be loaded.
func FallbackConfig() Config {
	return Config{
		Weights: Weights{
			Area:   0.4,
			Market: 0.2,
			Land:   0.1,
			Year:   0.3,
		},
		Cutoffs: Cutoffs{
			AreaPct:   0.1,
			MarketPct: 0.2,
			LandPct:   0.3,
			YearDiff:  10,
		},
		PriceBias: PriceBias{
			Enabled:    true,
			Weight:     0.15,
			FullBiasAt: 50,
		},
	}
}

// EnvConfigPath is the environment variable naming the algorithm
// configuration file.
const EnvConfigPath = "COMPS_CONFIG"

const defaultConfigFile = "comps.json"

var (
	defaultOnce sync.Once
	defaultCfg  Config
)

// DefaultConfig returns the process-wide base configuration. The file
// named by COMPS_CONFIG (comps.json when unset) is read exactly once;
// every later call reuses the cached result. Load failures fall back to
// FallbackConfig and are logged, never surfaced.
func DefaultConfig() Config {
	defaultOnce.Do(func() {
		path := os.Getenv(EnvConfigPath)
		if path == "" {
			path = defaultConfigFile
		}
		defaultCfg = loadConfigFile(path)
	})
	return defaultCfg
}

// loadConfigFile reads an algorithm configuration from a JSON file,
// substituting the built-in fallback on any failure.
func loadConfigFile(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("comps: config file %s unavailable, using built-in defaults: %v", path, err)
		return FallbackConfig()
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("comps: config file %s unreadable, using built-in defaults: %v", path, err)
		return FallbackConfig()
	}

	return cfg
}
