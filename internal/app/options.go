package app

import (
	"github.com/okian/shelfwatch/internal/adapters/inventory"
	"github.com/okian/shelfwatch/internal/config"
	"github.com/okian/shelfwatch/internal/domain/classify"
	"github.com/okian/shelfwatch/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets the logger instance.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithThreshold sets the confidence threshold. Range validation happens
// at Start, where policy construction rejects values outside [0,1].
func WithThreshold(threshold float64) Option {
	return func(s *Service) {
		s.threshold = threshold
	}
}

// WithLowStockThreshold sets the low-stock cutoff used by reporting.
func WithLowStockThreshold(threshold int) Option {
	return func(s *Service) {
		if threshold >= 0 {
			s.lowStockThreshold = threshold
		}
	}
}

// WithAPIURL sets the inventory source endpoint.
func WithAPIURL(url string) Option {
	return func(s *Service) {
		if url != "" {
			s.apiURL = url
		}
	}
}

// WithLabelsDir sets the scene label directory.
func WithLabelsDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.labelsDir = dir
		}
	}
}

// WithPredictionsDir sets the prediction artifacts directory.
func WithPredictionsDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.predictionsDir = dir
		}
	}
}

// WithAuditLogPath sets the append-only audit log location.
func WithAuditLogPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.auditLogPath = path
		}
	}
}

// WithResultsPath sets the reconciliation snapshot location.
func WithResultsPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.resultsPath = path
		}
	}
}

// WithSummaryPath sets the analysis snapshot location.
func WithSummaryPath(path string) Option {
	return func(s *Service) {
		if path != "" {
			s.summaryPath = path
		}
	}
}

// WithClassifierSeed seeds the simulated classifier RNG.
func WithClassifierSeed(seed int64) Option {
	return func(s *Service) {
		s.classifierSeed = seed
	}
}

// WithFalsePositiveRate sets the simulated false positive probability.
func WithFalsePositiveRate(rate float64) Option {
	return func(s *Service) {
		if rate >= 0 && rate <= 1 {
			s.falsePositiveRate = rate
		}
	}
}

// WithSource injects an inventory source, primarily for tests.
func WithSource(src inventory.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithClassifier injects a classifier, primarily for tests or for
// swapping in a real model behind the Classifier contract.
func WithClassifier(c classify.Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

// FromConfig expands a loaded Config into the matching options.
func FromConfig(cfg *config.Config) []Option {
	return []Option{
		WithThreshold(cfg.ConfidenceThreshold),
		WithLowStockThreshold(cfg.LowStockThreshold),
		WithAPIURL(cfg.APIURL),
		WithLabelsDir(cfg.LabelsDir),
		WithPredictionsDir(cfg.PredictionsDir),
		WithAuditLogPath(cfg.AuditLogPath),
		WithResultsPath(cfg.ResultsPath),
		WithSummaryPath(cfg.SummaryPath),
		WithClassifierSeed(cfg.ClassifierSeed),
		WithFalsePositiveRate(cfg.FalsePositiveRate),
	}
}
