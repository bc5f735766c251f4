package model

import (
	"errors"
	"strings"
	"time"
)

// Prediction is one classifier observation: an item name plus the model
// confidence in [0,1].
type Prediction struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Validate rejects predictions that lack a name or carry a confidence
// outside [0,1]. Malformed predictions fail fast at ingestion; silently
// skipping one would be a data-loss risk in an audit-driven system.
func (p Prediction) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("missing name")
	}
	if p.Confidence < 0 || p.Confidence > 1 {
		return errors.New("confidence outside [0,1]")
	}
	return nil
}

// Scene is one image-capture event covering a shelf. Predictions keep
// the order the classifier emitted them; the pipeline never reorders.
type Scene struct {
	SceneID     string       `json:"scene_id"`
	Predictions []Prediction `json:"predictions"`
	Timestamp   time.Time    `json:"timestamp,omitzero"`
}

// Validate checks the scene envelope. A nil predictions slice means the
// producer dropped the field; an empty one is a legitimate empty shelf.
func (s Scene) Validate() error {
	if strings.TrimSpace(s.SceneID) == "" {
		return errors.New("missing scene_id")
	}
	if s.Predictions == nil {
		return errors.New("missing predictions")
	}
	for _, p := range s.Predictions {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// PredictionCount sums predictions across scenes.
func PredictionCount(scenes []Scene) int {
	n := 0
	for _, s := range scenes {
		n += len(s.Predictions)
	}
	return n
}
