// Package config defines pipeline configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import "context"

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the demo inventory API listen address.
	Addr string `koanf:"addr"`

	// APIURL is the inventory source endpoint the pipeline fetches from.
	APIURL string `koanf:"api_url"`

	// ConfidenceThreshold separates trusted predictions from those
	// requiring manual review. Must stay in [0,1].
	ConfidenceThreshold float64 `koanf:"confidence_threshold"`

	// LowStockThreshold flags items in the analysis report whose
	// quantity falls below it. Reporting only; the core never reads it.
	LowStockThreshold int `koanf:"low_stock_threshold"`

	// LabelsDir holds the scene ground-truth label files.
	LabelsDir string `koanf:"labels_dir"`

	// PredictionsDir receives per-stage prediction artifacts.
	PredictionsDir string `koanf:"predictions_dir"`

	// AuditLogPath is the append-only audit log location.
	AuditLogPath string `koanf:"audit_log_path"`

	// ResultsPath receives the reconciliation results snapshot.
	ResultsPath string `koanf:"results_path"`

	// SummaryPath receives the inventory analysis snapshot.
	SummaryPath string `koanf:"summary_path"`

	// ClassifierSeed seeds the simulated classifier RNG.
	ClassifierSeed int64 `koanf:"classifier_seed"`

	// FalsePositiveRate is the per-scene chance of a simulated
	// low-confidence false positive.
	FalsePositiveRate float64 `koanf:"false_positive_rate"`
}

// New creates a Config with defaults. Context is accepted first to
// satisfy the project-wide convention; it is reserved for future use
// and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":3000",
		APIURL:              "http://localhost:3000/api/inventory",
		ConfidenceThreshold: 0.90,
		LowStockThreshold:   10,
		LabelsDir:           "ml/shelf_dataset/labels",
		PredictionsDir:      "ml/predictions",
		AuditLogPath:        "ml/audit_log.jsonl",
		ResultsPath:         "ml/reconciliation_results.json",
		SummaryPath:         "ml/inventory_summary.json",
		ClassifierSeed:      42,
		FalsePositiveRate:   0.3,
	}
}
