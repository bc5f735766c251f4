package classify

import (
	"math/rand"
	"time"
)

// Option applies a configuration option to the Simulator.
type Option func(*Simulator)

// WithSeed reseeds the simulation RNG.
func WithSeed(seed int64) Option {
	return func(s *Simulator) {
		s.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // simulation, not crypto
	}
}

// WithKnownItems replaces the catalog the simulator draws false
// positives from.
func WithKnownItems(items []string) Option {
	return func(s *Simulator) {
		if len(items) > 0 {
			s.knownItems = items
		}
	}
}

// WithFalsePositiveRate sets the probability of injecting one
// low-confidence false positive per scene. Values outside [0,1] are
// ignored.
func WithFalsePositiveRate(rate float64) Option {
	return func(s *Simulator) {
		if rate >= 0 && rate <= 1 {
			s.falsePositiveRate = rate
		}
	}
}

// WithClock overrides the timestamp source for emitted scenes.
func WithClock(now func() time.Time) Option {
	return func(s *Simulator) {
		if now != nil {
			s.now = now
		}
	}
}
