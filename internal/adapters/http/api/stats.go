// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// Stats is the operational snapshot served at /stats: the active
// pipeline configuration plus the size of the served demo dataset.
type Stats struct {
	ConfidenceThreshold float64 `json:"confidence_threshold"`
	LowStockThreshold   int     `json:"low_stock_threshold"`
	AuditLogPath        string  `json:"audit_log_path"`
	InventoryItems      int     `json:"inventory_items"`
}

// StatsProvider supplies the current pipeline stats.
type StatsProvider interface {
	Stats() Stats
}

// StatsHandler serves the pipeline stats snapshot.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleStats handles GET /stats requests.
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.Stats())
}
