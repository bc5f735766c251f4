package reconcile

import "errors"

// Sentinel kinds for reconciliation errors.
var (
	ErrEmptyInventory      = errors.New("empty inventory")
	ErrMalformedPrediction = errors.New("malformed prediction")
	ErrDuplicateName       = errors.New("duplicate inventory name")
)
