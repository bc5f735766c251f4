// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"strings"

	"github.com/okian/shelfwatch/internal/domain/types"
)

// InventoryRecord is one row of the inventory system. Records are owned
// by the external inventory source and read-only inside the pipeline.
// Fields mirror the /api/inventory schema.
type InventoryRecord struct {
	ID       int              `json:"id"`
	Name     string           `json:"name"` // unique key used for matching
	Quantity int              `json:"quantity"`
	Category string           `json:"category"`
	Status   types.ItemStatus `json:"status"`
}

// Validate rejects records that would poison downstream matching.
func (r InventoryRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("missing name")
	}
	if r.Quantity < 0 {
		return errors.New("negative quantity")
	}
	return nil
}
