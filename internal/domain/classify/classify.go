// Package classify provides the shelf image classifier used by the
// pipeline. The implementation simulates model output: a production
// deployment swaps in a real model behind the same Classifier contract,
// which only requires {scene_id, predictions:[{name, confidence}]}.
package classify

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/okian/shelfwatch/internal/domain/model"
)

// Default simulation parameters.
const (
	defaultMinTrueConfidence  = 0.75
	defaultMaxTrueConfidence  = 0.99
	defaultMinFalseConfidence = 0.40
	defaultMaxFalseConfidence = 0.70
	defaultFalsePositiveRate  = 0.3
	defaultRandomSeed         = 42
)

// KnownItems is the catalog the simulated model was "trained" on.
var KnownItems = []string{
	"Arduino Kit",
	"USB Cable",
	"Figma License",
	"Wireless Mouse",
	"Monitor Stand",
	"Keyboard",
	"Webcam",
}

// Classifier turns a labeled scene into item predictions.
type Classifier interface {
	// Predict produces confidence-scored predictions for one scene,
	// honoring ctx for cancellation.
	Predict(ctx context.Context, label Label) (model.Scene, error)
}

// Simulator implements Classifier with simulated model output. Items in
// the ground truth get high confidence with some noise; occasionally a
// low-confidence false positive from the known-items catalog is added
// so the threshold policy has something to reject.
type Simulator struct {
	knownItems        []string
	falsePositiveRate float64
	rng               *rand.Rand
	now               func() time.Time
}

var _ Classifier = (*Simulator)(nil)

// NewSimulator creates a simulator with configuration options. The RNG
// is seeded deterministically so runs are reproducible unless a caller
// overrides the seed.
func NewSimulator(opts ...Option) *Simulator {
	s := &Simulator{
		knownItems:        KnownItems,
		falsePositiveRate: defaultFalsePositiveRate,
		rng:               rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // deterministic seed for reproducible runs
		now:               time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Predict simulates one classification pass over a scene.
func (s *Simulator) Predict(ctx context.Context, label Label) (model.Scene, error) {
	if err := ctx.Err(); err != nil {
		return model.Scene{}, err
	}
	if err := label.Validate(); err != nil {
		return model.Scene{}, err
	}

	predictions := make([]model.Prediction, 0, len(label.ItemsPresent)+1)
	for _, item := range label.ItemsPresent {
		predictions = append(predictions, model.Prediction{
			Name:       item,
			Confidence: round2(s.uniform(defaultMinTrueConfidence, defaultMaxTrueConfidence)),
		})
	}

	if s.rng.Float64() < s.falsePositiveRate {
		if fp, ok := s.pickAbsent(label.ItemsPresent); ok {
			predictions = append(predictions, model.Prediction{
				Name:       fp,
				Confidence: round2(s.uniform(defaultMinFalseConfidence, defaultMaxFalseConfidence)),
			})
		}
	}

	return model.Scene{
		SceneID:     label.SceneID,
		Predictions: predictions,
		Timestamp:   s.now(),
	}, nil
}

// PredictAll runs Predict over every label, preserving label order.
func (s *Simulator) PredictAll(ctx context.Context, labels []Label) ([]model.Scene, error) {
	scenes := make([]model.Scene, 0, len(labels))
	for _, label := range labels {
		scene, err := s.Predict(ctx, label)
		if err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}
	return scenes, nil
}

// pickAbsent chooses a catalog item not present in the ground truth.
func (s *Simulator) pickAbsent(present []string) (string, bool) {
	onShelf := make(map[string]struct{}, len(present))
	for _, item := range present {
		onShelf[item] = struct{}{}
	}
	var absent []string
	for _, item := range s.knownItems {
		if _, ok := onShelf[item]; !ok {
			absent = append(absent, item)
		}
	}
	if len(absent) == 0 {
		return "", false
	}
	return absent[s.rng.Intn(len(absent))], true
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// round2 trims confidences to two decimals, matching the wire format
// consumed downstream.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
