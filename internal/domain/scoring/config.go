package scoring

import (
	"fmt"
	"math"
	"strings"
)

// Signal category names used as weight keys.
const (
	SignalNameMatch  = "name_match"
	SignalRating     = "rating"
	SignalPopularity = "popularity"
	SignalFranchise  = "franchise"
	SignalRecency    = "recency"
	SignalPlatform   = "platform"
)

// weightSumTarget is the required sum of all weights; weightSumEpsilon is
// the tolerated float drift around it.
const (
	weightSumTarget  = 100.0
	weightSumEpsilon = 0.001
)

// Config is one named, versioned set of signal weights. The scorer is
// stateless with respect to configuration identity: a Config is passed by
// value into every Score call. The "active" pointer lives in the
// configuration store, not here.
type Config struct {
	Name    string             `koanf:"name" json:"name"`
	Version int                `koanf:"version" json:"version"`
	Weights map[string]float64 `koanf:"weights" json:"weights"`
}

// Validate rejects configurations whose weights are negative or do not sum
// to 100 within epsilon. Invalid configurations must never reach score time.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidConfig)
	}
	if len(c.Weights) == 0 {
		return fmt.Errorf("%w: %q has no weights", ErrInvalidConfig, c.Name)
	}
	sum := 0.0
	for signal, w := range c.Weights {
		if w < 0 {
			return fmt.Errorf("%w: %q has negative weight for %s", ErrInvalidConfig, c.Name, signal)
		}
		sum += w
	}
	if math.Abs(sum-weightSumTarget) > weightSumEpsilon {
		return fmt.Errorf("%w: %q weights sum to %.3f, want %.0f", ErrInvalidConfig, c.Name, sum, weightSumTarget)
	}
	return nil
}

// weight returns the configured weight for a signal, zero when unset.
func (c Config) weight(signal string) float64 {
	return c.Weights[signal]
}

// Clone returns a deep copy so stored configurations cannot be mutated
// through a handed-out value.
func (c Config) Clone() Config {
	out := c
	out.Weights = make(map[string]float64, len(c.Weights))
	for signal, w := range c.Weights {
		out.Weights[signal] = w
	}
	return out
}

// Default returns the hand-authored production weight set.
func Default() Config {
	return Config{
		Name:    "default",
		Version: 1,
		Weights: map[string]float64{
			SignalNameMatch:  30,
			SignalRating:     25,
			SignalPopularity: 20,
			SignalFranchise:  15,
			SignalRecency:    5,
			SignalPlatform:   5,
		},
	}
}
