// Package api declares HTTP contracts and route registration helpers
// for the demo inventory API. The original inventory system lives in an
// external service; this server exposes the same contract so the
// pipeline has a live endpoint to exercise fetch-versus-fallback
// behavior against.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/shelfwatch/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Inventory returns the record set served at /api/inventory.
	Inventory(ctx context.Context) []model.InventoryRecord
}

// Server wires HTTP routes for the demo inventory API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	inventoryHandler *InventoryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		inventoryHandler: NewInventoryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/api/inventory", MetricsMiddleware(s.inventoryHandler.HandleGetInventory, "inventory"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
