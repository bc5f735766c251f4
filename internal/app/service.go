// Package app wires the pipeline stages together: fetch, analysis,
// classification, threshold policy, reconciliation, and audit logging.
// Each stage can run standalone from its persisted artifacts, or the
// whole pipeline runs in one pass.
package app

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/shelfwatch/internal/adapters/artifacts"
	"github.com/okian/shelfwatch/internal/adapters/auditlog"
	"github.com/okian/shelfwatch/internal/adapters/http/api"
	"github.com/okian/shelfwatch/internal/adapters/inventory"
	"github.com/okian/shelfwatch/internal/analysis"
	"github.com/okian/shelfwatch/internal/domain/classify"
	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/policy"
	"github.com/okian/shelfwatch/internal/domain/reconcile"
	"github.com/okian/shelfwatch/pkg/logger"
	"github.com/okian/shelfwatch/pkg/metrics"
)

// Service implements the inventory intelligence pipeline.
type Service struct {
	mu sync.Mutex

	// Core components
	source     inventory.Source
	classifier classify.Classifier
	policy     *policy.Policy
	engine     *reconcile.Engine
	store      *artifacts.Store
	audit      *auditlog.Writer

	// Configuration
	threshold         float64
	lowStockThreshold int
	apiURL            string
	labelsDir         string
	predictionsDir    string
	auditLogPath      string
	resultsPath       string
	summaryPath       string
	classifierSeed    int64
	falsePositiveRate float64

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New creates a Service using provided options. Call Start before
// running any stage.
func New(opts ...Option) *Service {
	s := &Service{
		threshold:         policy.DefaultThreshold,
		lowStockThreshold: 10,
		apiURL:            "http://localhost:3000/api/inventory",
		labelsDir:         "ml/shelf_dataset/labels",
		predictionsDir:    "ml/predictions",
		auditLogPath:      "ml/audit_log.jsonl",
		resultsPath:       "ml/reconciliation_results.json",
		summaryPath:       "ml/inventory_summary.json",
		classifierSeed:    42,
		falsePositiveRate: 0.3,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates configuration and initializes the stage components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	pol, err := policy.New(s.threshold)
	if err != nil {
		return fmt.Errorf("threshold policy: %w", err)
	}
	s.policy = pol

	if s.source == nil {
		client, err := inventory.New(s.apiURL)
		if err != nil {
			return fmt.Errorf("inventory client: %w", err)
		}
		s.source = client
	}

	if s.classifier == nil {
		s.classifier = classify.NewSimulator(
			classify.WithSeed(s.classifierSeed),
			classify.WithFalsePositiveRate(s.falsePositiveRate),
		)
	}

	s.engine = reconcile.New()
	s.store = artifacts.NewStore(s.predictionsDir)
	s.audit = auditlog.New(s.auditLogPath)

	s.started = true
	s.logger.Info(ctx, "pipeline ready",
		logger.Float64("threshold", s.threshold),
		logger.String("apiURL", s.apiURL),
		logger.String("auditLog", s.auditLogPath),
	)
	return nil
}

// FetchInventory fetches the current inventory, degrading to fallback
// data when the source is unreachable. Degraded runs are logged loudly;
// stale data must never be indistinguishable from live data.
func (s *Service) FetchInventory(ctx context.Context) ([]model.InventoryRecord, bool, error) {
	if client, ok := s.source.(*inventory.Client); ok {
		records, degraded, err := client.FetchWithFallback(ctx)
		if err != nil {
			return nil, false, err
		}
		if degraded {
			metrics.RecordFetchFallback()
			s.logger.Warn(ctx, "inventory source unreachable; using fallback data",
				logger.String("apiURL", s.apiURL),
			)
		}
		return records, degraded, nil
	}
	records, err := s.source.Fetch(ctx)
	return records, false, err
}

// Analyze fetches the inventory, renders the analysis tables to w, and
// exports the summary snapshot.
func (s *Service) Analyze(ctx context.Context, w io.Writer) (analysis.Summary, error) {
	records, degraded, err := s.FetchInventory(ctx)
	if err != nil {
		return analysis.Summary{}, err
	}

	summary := analysis.Summarize(records, s.lowStockThreshold)
	summary.Degraded = degraded

	analysis.RenderInventory(w, records)
	analysis.RenderSummary(w, summary)

	if err := artifacts.WriteJSON(s.summaryPath, summary); err != nil {
		return analysis.Summary{}, err
	}
	s.logger.Info(ctx, "inventory analysis exported",
		logger.String("path", s.summaryPath),
		logger.Int("products", summary.TotalProducts),
		logger.Bool("degraded", degraded),
	)
	return summary, nil
}

// Classify runs the classifier over every labeled scene and persists
// the per-scene and combined prediction artifacts.
func (s *Service) Classify(ctx context.Context) ([]model.Scene, error) {
	labels, err := classify.LoadLabels(s.labelsDir)
	if err != nil {
		return nil, err
	}

	scenes := make([]model.Scene, 0, len(labels))
	for _, label := range labels {
		scene, err := s.classifier.Predict(ctx, label)
		if err != nil {
			return nil, err
		}
		if err := s.store.SaveScene(scene); err != nil {
			return nil, err
		}
		scenes = append(scenes, scene)
	}

	if err := s.store.SaveScenes(artifacts.AllPredictionsFile, scenes); err != nil {
		return nil, err
	}

	total := model.PredictionCount(scenes)
	metrics.RecordPredictionsClassified(total)
	s.logger.Info(ctx, "classification complete",
		logger.Int("scenes", len(scenes)),
		logger.Int("predictions", total),
	)
	return scenes, nil
}

// Threshold loads the combined predictions, applies the confidence
// policy, and persists the accepted/uncertain partitions plus the
// policy's audit events as review snapshots. The events are not
// appended to the audit log here; reconciliation emits the single
// authoritative event per observation.
func (s *Service) Threshold(ctx context.Context) (policy.Partition, []model.AuditEvent, error) {
	scenes, err := s.store.LoadScenes(artifacts.AllPredictionsFile)
	if err != nil {
		return policy.Partition{}, nil, err
	}

	part, events, err := s.policy.Apply(ctx, scenes)
	if err != nil {
		return policy.Partition{}, nil, err
	}

	if err := s.store.SaveScenes(artifacts.AcceptedFile, part.Accepted); err != nil {
		return policy.Partition{}, nil, err
	}
	if err := s.store.SaveScenes(artifacts.UncertainFile, part.Uncertain); err != nil {
		return policy.Partition{}, nil, err
	}
	if err := s.store.SaveEvents(artifacts.UncertainEventsFile, events); err != nil {
		return policy.Partition{}, nil, err
	}

	acceptedCount := model.PredictionCount(part.Accepted)
	uncertainCount := model.PredictionCount(part.Uncertain)
	metrics.RecordPredictionsAccepted(acceptedCount)
	metrics.RecordPredictionsUncertain(uncertainCount)
	s.logger.Info(ctx, "threshold policy applied",
		logger.Float64("threshold", s.policy.Threshold()),
		logger.Int("accepted", acceptedCount),
		logger.Int("uncertain", uncertainCount),
	)
	return part, events, nil
}

// Reconcile loads the partition snapshots, fetches inventory, runs the
// reconciliation engine, appends one audit event per observation to the
// log, and persists the results snapshot.
func (s *Service) Reconcile(ctx context.Context) (model.Report, error) {
	accepted, err := s.store.LoadScenes(artifacts.AcceptedFile)
	if err != nil {
		return model.Report{}, err
	}
	uncertain, err := s.store.LoadScenes(artifacts.UncertainFile)
	if err != nil {
		return model.Report{}, err
	}
	return s.reconcile(ctx, accepted, uncertain)
}

func (s *Service) reconcile(ctx context.Context, accepted, uncertain []model.Scene) (model.Report, error) {
	records, degraded, err := s.FetchInventory(ctx)
	if err != nil {
		return model.Report{}, err
	}

	results, events, err := s.engine.Reconcile(ctx, accepted, uncertain, records)
	if err != nil {
		return model.Report{}, err
	}

	runID := uuid.NewString()
	for i := range events {
		events[i].RunID = runID
	}

	if err := s.audit.Append(ctx, events); err != nil {
		return model.Report{}, err
	}
	metrics.RecordAuditEventsWritten(len(events))
	for _, e := range events {
		metrics.RecordDisposition(string(e.EventType))
	}

	report := model.Report{
		GeneratedAt: time.Now(),
		RunID:       runID,
		Degraded:    degraded,
		Summary:     results.Summarize(),
		Details:     results,
	}
	if err := artifacts.WriteJSON(s.resultsPath, report); err != nil {
		return model.Report{}, err
	}

	s.logger.Info(ctx, "reconciliation complete",
		logger.String("runID", runID),
		logger.Int("verified", report.Summary.VerifiedCount),
		logger.Int("discrepancies", report.Summary.DiscrepancyCount),
		logger.Int("uncertain", report.Summary.UncertainCount),
		logger.Int("missingFromDB", report.Summary.MissingFromDBCount),
		logger.Int("auditEvents", len(events)),
		logger.Bool("degraded", degraded),
	)
	return report, nil
}

// Run executes the full pipeline: classify, threshold, reconcile. The
// operator-facing reconciliation summary is rendered to w.
func (s *Service) Run(ctx context.Context, w io.Writer) (model.Report, error) {
	if _, err := s.Classify(ctx); err != nil {
		return model.Report{}, err
	}
	part, _, err := s.Threshold(ctx)
	if err != nil {
		return model.Report{}, err
	}
	report, err := s.reconcile(ctx, part.Accepted, part.Uncertain)
	if err != nil {
		return model.Report{}, err
	}

	analysis.RenderReconciliation(w, report)
	metrics.RecordRunCompleted()
	return report, nil
}

// Inventory implements the demo API dependency: the served dataset is
// the documented demo fallback.
func (s *Service) Inventory(_ context.Context) []model.InventoryRecord {
	return inventory.Fallback()
}

// Stats reports the active pipeline configuration for the /stats
// endpoint.
func (s *Service) Stats() api.Stats {
	return api.Stats{
		ConfidenceThreshold: s.threshold,
		LowStockThreshold:   s.lowStockThreshold,
		AuditLogPath:        s.auditLogPath,
		InventoryItems:      len(inventory.Fallback()),
	}
}
