package model

import (
	"bytes"
	"fmt"
	"time"

	"github.com/okian/shelfwatch/internal/domain/types"
)

// ObservedState records whether an item was actually sighted on the
// shelf. Confirmed sightings marshal as JSON true; below-threshold ones
// marshal as the string "uncertain". The mixed encoding is the wire
// contract consumed by the audit dashboards.
type ObservedState string

const (
	ObservedYes       ObservedState = "true"
	ObservedUncertain ObservedState = "uncertain"
)

// MarshalJSON encodes ObservedYes as a bare boolean.
func (o ObservedState) MarshalJSON() ([]byte, error) {
	switch o {
	case ObservedYes:
		return []byte("true"), nil
	case ObservedUncertain:
		return []byte(`"uncertain"`), nil
	case "":
		return []byte("null"), nil
	}
	return nil, fmt.Errorf("unknown observed state %q", string(o))
}

// UnmarshalJSON accepts both the boolean and string encodings.
func (o *ObservedState) UnmarshalJSON(data []byte) error {
	switch {
	case bytes.Equal(data, []byte("true")):
		*o = ObservedYes
	case bytes.Equal(data, []byte(`"uncertain"`)):
		*o = ObservedUncertain
	case bytes.Equal(data, []byte("null")):
		*o = ""
	default:
		return fmt.Errorf("invalid observed state %s", data)
	}
	return nil
}

// AuditEvent is the immutable record of one disposition decision. Events
// are append-only: once written to the log they are never mutated or
// deleted, independent of the transient JSON snapshot exports.
//
// All fields are concrete types (no map[string]any) so json.Marshal
// yields a deterministic field order per line.
type AuditEvent struct {
	Timestamp         time.Time         `json:"timestamp"`
	RunID             string            `json:"run_id,omitempty"`
	SceneID           string            `json:"scene_id"`
	Item              string            `json:"item"`
	EventType         types.Disposition `json:"event_type"`
	Confidence        float64           `json:"confidence"`
	RecommendedAction types.Action      `json:"recommended_action"`
	DBQuantity        *int              `json:"db_quantity,omitempty"`
	Observed          ObservedState     `json:"observed,omitempty"`
	Issue             string            `json:"issue,omitempty"`
	Reason            string            `json:"reason,omitempty"`
}
