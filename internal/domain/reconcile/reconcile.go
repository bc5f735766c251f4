// Package reconcile cross-references accepted and uncertain predictions
// against the current inventory record and assigns each observation one
// of four dispositions, emitting one audit event per decision.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

// Engine implements the disposition decision rule. The engine never
// mutates its inputs; results and audit events are freshly allocated.
type Engine struct {
	now              func() time.Time
	requireInventory bool
}

// New creates an Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Reconcile classifies every (scene, prediction) pair. Accepted
// predictions resolve by exact, case-sensitive name match:
//
//  1. no inventory record        -> MISSING_FROM_DB, ADD_TO_INVENTORY
//  2. record with quantity > 0   -> VERIFIED, no action
//  3. record with quantity == 0  -> DISCREPANCY, INVESTIGATE
//
// Uncertain predictions are always UNCERTAIN regardless of inventory
// state; their disposition was settled by the threshold policy. The DB
// quantity is still looked up for operator context where a record
// matches.
//
// An absent inventory record is a valid disposition, never an error.
// Buckets and events preserve encounter order: accepted scenes first,
// then uncertain, scene-major throughout.
func (e *Engine) Reconcile(ctx context.Context, accepted, uncertain []model.Scene, inventory []model.InventoryRecord) (model.Results, []model.AuditEvent, error) {
	_ = ctx // pure in-memory transform; ctx kept for interface symmetry

	if e.requireInventory && len(inventory) == 0 {
		return model.Results{}, nil, ErrEmptyInventory
	}

	lookup, err := buildLookup(inventory)
	if err != nil {
		return model.Results{}, nil, err
	}

	// Non-nil buckets so snapshot exports serialize as [] instead of null.
	results := model.Results{
		Verified:      []model.Finding{},
		Discrepancies: []model.Finding{},
		Uncertain:     []model.Finding{},
		MissingFromDB: []model.Finding{},
	}
	var events []model.AuditEvent

	for _, scene := range accepted {
		if err := scene.Validate(); err != nil {
			return model.Results{}, nil, fmt.Errorf("%w: scene %q: %v", ErrMalformedPrediction, scene.SceneID, err)
		}
		for _, pred := range scene.Predictions {
			finding, event := e.classify(scene.SceneID, pred, lookup)
			events = append(events, event)
			switch event.EventType {
			case types.DispositionVerified:
				results.Verified = append(results.Verified, finding)
			case types.DispositionDiscrepancy:
				results.Discrepancies = append(results.Discrepancies, finding)
			case types.DispositionMissingFromDB:
				results.MissingFromDB = append(results.MissingFromDB, finding)
			}
		}
	}

	for _, scene := range uncertain {
		if err := scene.Validate(); err != nil {
			return model.Results{}, nil, fmt.Errorf("%w: scene %q: %v", ErrMalformedPrediction, scene.SceneID, err)
		}
		for _, pred := range scene.Predictions {
			var dbQty *int
			if rec, ok := lookup[pred.Name]; ok {
				q := rec.Quantity
				dbQty = &q
			}
			results.Uncertain = append(results.Uncertain, model.Finding{
				SceneID:    scene.SceneID,
				Item:       pred.Name,
				Confidence: pred.Confidence,
			})
			events = append(events, model.AuditEvent{
				Timestamp:         e.now(),
				SceneID:           scene.SceneID,
				Item:              pred.Name,
				EventType:         types.DispositionUncertain,
				Confidence:        pred.Confidence,
				RecommendedAction: types.ActionManualReview,
				DBQuantity:        dbQty,
				Observed:          model.ObservedUncertain,
			})
		}
	}

	return results, events, nil
}

// classify applies the decision rule to one accepted prediction.
func (e *Engine) classify(sceneID string, pred model.Prediction, lookup map[string]model.InventoryRecord) (model.Finding, model.AuditEvent) {
	rec, ok := lookup[pred.Name]
	if !ok {
		return model.Finding{
				SceneID:    sceneID,
				Item:       pred.Name,
				Confidence: pred.Confidence,
			}, model.AuditEvent{
				Timestamp:         e.now(),
				SceneID:           sceneID,
				Item:              pred.Name,
				EventType:         types.DispositionMissingFromDB,
				Confidence:        pred.Confidence,
				RecommendedAction: types.ActionAddToInventory,
				Observed:          model.ObservedYes,
			}
	}

	qty := rec.Quantity
	if qty > 0 {
		return model.Finding{
				SceneID:    sceneID,
				Item:       pred.Name,
				Confidence: pred.Confidence,
				DBQuantity: &qty,
			}, model.AuditEvent{
				Timestamp:         e.now(),
				SceneID:           sceneID,
				Item:              pred.Name,
				EventType:         types.DispositionVerified,
				Confidence:        pred.Confidence,
				RecommendedAction: types.ActionNone,
				DBQuantity:        &qty,
				Observed:          model.ObservedYes,
			}
	}

	const issue = "observed but DB shows 0 quantity"
	return model.Finding{
			SceneID:    sceneID,
			Item:       pred.Name,
			Confidence: pred.Confidence,
			DBQuantity: &qty,
			Issue:      issue,
		}, model.AuditEvent{
			Timestamp:         e.now(),
			SceneID:           sceneID,
			Item:              pred.Name,
			EventType:         types.DispositionDiscrepancy,
			Confidence:        pred.Confidence,
			RecommendedAction: types.ActionInvestigate,
			DBQuantity:        &qty,
			Observed:          model.ObservedYes,
			Issue:             issue,
		}
}

// buildLookup indexes inventory by exact item name. Duplicate names are
// flagged as a data-quality error instead of letting a later record
// silently shadow an earlier one.
func buildLookup(inventory []model.InventoryRecord) (map[string]model.InventoryRecord, error) {
	lookup := make(map[string]model.InventoryRecord, len(inventory))
	for _, rec := range inventory {
		if _, exists := lookup[rec.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, rec.Name)
		}
		lookup[rec.Name] = rec
	}
	return lookup, nil
}
