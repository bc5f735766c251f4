// Package types contains common types used across the application
package types

// Disposition is the reconciliation outcome assigned to one observed
// item prediction. Exactly one disposition applies per (scene, item) pair.
type Disposition string

const (
	// DispositionVerified means the database and the observation agree:
	// the item was seen on the shelf and the DB holds positive stock.
	DispositionVerified Disposition = "VERIFIED"

	// DispositionDiscrepancy means the item was observed with high
	// confidence but the DB shows zero quantity.
	DispositionDiscrepancy Disposition = "DISCREPANCY"

	// DispositionUncertain means the prediction confidence fell below
	// the policy threshold and requires manual review.
	DispositionUncertain Disposition = "UNCERTAIN"

	// DispositionMissingFromDB means the predicted item has no record
	// in the inventory system at all.
	DispositionMissingFromDB Disposition = "MISSING_FROM_DB"
)

// Action is the operator follow-up recommended for a disposition.
type Action string

const (
	ActionNone           Action = "NONE"
	ActionInvestigate    Action = "INVESTIGATE"
	ActionManualReview   Action = "MANUAL_REVIEW"
	ActionAddToInventory Action = "ADD_TO_INVENTORY"
)

// ItemStatus mirrors the inventory system's availability flag.
type ItemStatus string

const (
	StatusAvailable   ItemStatus = "Available"
	StatusUnavailable ItemStatus = "Unavailable"
)
