// Package api declares HTTP contracts and route registration helpers.
package api

import "net/http"

// InventoryHandler handles inventory requests.
type InventoryHandler struct {
	deps Dependencies
}

// NewInventoryHandler creates a new inventory handler.
func NewInventoryHandler(deps Dependencies) *InventoryHandler {
	return &InventoryHandler{deps: deps}
}

// HandleGetInventory handles GET /api/inventory requests.
func (h *InventoryHandler) HandleGetInventory(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_inventory"
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", NewKind(op, ErrBadRequest))
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Inventory(r.Context()))
}
