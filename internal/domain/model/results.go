package model

import "time"

// Finding is one reconciled observation inside a disposition bucket.
// DBQuantity and Issue are populated only where the disposition calls
// for them.
type Finding struct {
	SceneID    string  `json:"scene_id"`
	Item       string  `json:"item"`
	Confidence float64 `json:"confidence"`
	DBQuantity *int    `json:"db_quantity,omitempty"`
	Issue      string  `json:"issue,omitempty"`
}

// Results buckets reconciled findings by disposition. Buckets preserve
// encounter order: scene-major, then prediction order within the scene.
type Results struct {
	Verified      []Finding `json:"verified"`
	Discrepancies []Finding `json:"discrepancies"`
	Uncertain     []Finding `json:"uncertain"`
	MissingFromDB []Finding `json:"missing_from_db"`
}

// Total counts findings across all four buckets.
func (r Results) Total() int {
	return len(r.Verified) + len(r.Discrepancies) + len(r.Uncertain) + len(r.MissingFromDB)
}

// Summary holds the per-disposition counts surfaced to operators after
// every run.
type Summary struct {
	VerifiedCount      int `json:"verified_count"`
	DiscrepancyCount   int `json:"discrepancy_count"`
	UncertainCount     int `json:"uncertain_count"`
	MissingFromDBCount int `json:"missing_from_db_count"`
}

// Summarize derives the count summary from the buckets.
func (r Results) Summarize() Summary {
	return Summary{
		VerifiedCount:      len(r.Verified),
		DiscrepancyCount:   len(r.Discrepancies),
		UncertainCount:     len(r.Uncertain),
		MissingFromDBCount: len(r.MissingFromDB),
	}
}

// Report is the reconciliation snapshot persisted for dashboards. The
// audit log, not this file, is the system of record.
type Report struct {
	GeneratedAt time.Time `json:"generated_at"`
	RunID       string    `json:"run_id,omitempty"`
	Degraded    bool      `json:"degraded,omitempty"` // inventory came from fallback data
	Summary     Summary   `json:"summary"`
	Details     Results   `json:"details"`
}
