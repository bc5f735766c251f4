// Package metrics provides Prometheus metrics for the shelfwatch
// pipeline and the demo inventory API.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for shelfwatch.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline metrics
	predictionsClassified prometheus.Counter
	predictionsAccepted   prometheus.Counter
	predictionsUncertain  prometheus.Counter
	dispositions          *prometheus.CounterVec
	auditEventsWritten    prometheus.Counter
	fetchFallbacks        prometheus.Counter
	runsCompleted         prometheus.Counter

	// HTTP metrics for the demo inventory API
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "shelfwatch",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.predictionsClassified = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_classified_total",
		Help:      "Total predictions produced by the classifier",
	})

	m.predictionsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_accepted_total",
		Help:      "Predictions at or above the confidence threshold",
	})

	m.predictionsUncertain = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "predictions_uncertain_total",
		Help:      "Predictions below the confidence threshold",
	})

	m.dispositions = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "dispositions_total",
		Help:      "Reconciliation outcomes by disposition",
	}, []string{"disposition"})

	m.auditEventsWritten = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "audit_events_written_total",
		Help:      "Audit events appended to the log",
	})

	m.fetchFallbacks = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "inventory_fetch_fallbacks_total",
		Help:      "Inventory fetches that degraded to fallback data",
	})

	m.runsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "runs_completed_total",
		Help:      "Pipeline runs completed",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by endpoint, method, and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// RecordPredictionsClassified adds to the classifier output counter.
func RecordPredictionsClassified(n int) {
	globalManager.predictionsClassified.Add(float64(n))
}

// RecordPredictionsAccepted adds to the accepted predictions counter.
func RecordPredictionsAccepted(n int) {
	globalManager.predictionsAccepted.Add(float64(n))
}

// RecordPredictionsUncertain adds to the uncertain predictions counter.
func RecordPredictionsUncertain(n int) {
	globalManager.predictionsUncertain.Add(float64(n))
}

// RecordDisposition increments the counter for one disposition.
func RecordDisposition(disposition string) {
	globalManager.dispositions.WithLabelValues(disposition).Inc()
}

// RecordAuditEventsWritten adds to the audit events counter.
func RecordAuditEventsWritten(n int) {
	globalManager.auditEventsWritten.Add(float64(n))
}

// RecordFetchFallback increments the degraded fetch counter.
func RecordFetchFallback() {
	globalManager.fetchFallbacks.Inc()
}

// RecordRunCompleted increments the completed runs counter.
func RecordRunCompleted() {
	globalManager.runsCompleted.Inc()
}

// RecordHTTPRequest increments HTTP request counters.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration in milliseconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
