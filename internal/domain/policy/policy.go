// Package policy implements the confidence threshold rule separating
// automatically trusted predictions from those requiring human review.
package policy

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

// DefaultThreshold is the confidence cutoff used when no override is
// configured.
const DefaultThreshold = 0.90

// Partition holds the threshold split. A scene appears in a bucket only
// if it kept at least one prediction there; empty partitions are
// omitted, not emitted as empty-prediction scenes. The partition is a
// derived intermediate artifact, recomputed each run.
type Partition struct {
	Accepted  []model.Scene
	Uncertain []model.Scene
}

// Policy applies a validated confidence cutoff to classifier output.
type Policy struct {
	threshold float64
	now       func() time.Time
}

// New creates a Policy. The threshold must be in [0,1]; construction
// fails with ErrInvalidThreshold otherwise.
func New(threshold float64, opts ...Option) (*Policy, error) {
	if threshold < 0 || threshold > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidThreshold, threshold)
	}
	p := &Policy{
		threshold: threshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Threshold reports the configured cutoff.
func (p *Policy) Threshold() float64 {
	return p.threshold
}

// Apply splits scenes into accepted and uncertain predictions and
// synthesizes one UNCERTAIN audit event per below-threshold prediction.
// Confidence exactly equal to the threshold is accepted; the boundary
// is inclusive on the accept side.
//
// Apply has no side effects. Persisting the partition and the audit
// events is the caller's responsibility.
func (p *Policy) Apply(ctx context.Context, scenes []model.Scene) (Partition, []model.AuditEvent, error) {
	_ = ctx // pure in-memory transform; ctx kept for interface symmetry

	var part Partition
	var events []model.AuditEvent

	for _, scene := range scenes {
		if err := scene.Validate(); err != nil {
			return Partition{}, nil, fmt.Errorf("%w: scene %q: %v", ErrMalformedScene, scene.SceneID, err)
		}

		var accepted, uncertain []model.Prediction
		for _, pred := range scene.Predictions {
			if pred.Confidence >= p.threshold {
				accepted = append(accepted, pred)
				continue
			}
			uncertain = append(uncertain, pred)
			events = append(events, model.AuditEvent{
				Timestamp:         p.now(),
				SceneID:           scene.SceneID,
				Item:              pred.Name,
				EventType:         types.DispositionUncertain,
				Confidence:        pred.Confidence,
				RecommendedAction: types.ActionManualReview,
				Reason:            fmt.Sprintf("confidence %.2f below threshold %.2f", pred.Confidence, p.threshold),
			})
		}

		if len(accepted) > 0 {
			part.Accepted = append(part.Accepted, model.Scene{SceneID: scene.SceneID, Predictions: accepted})
		}
		if len(uncertain) > 0 {
			part.Uncertain = append(part.Uncertain, model.Scene{SceneID: scene.SceneID, Predictions: uncertain})
		}
	}

	return part, events, nil
}
