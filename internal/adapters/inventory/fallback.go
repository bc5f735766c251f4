package inventory

import (
	"github.com/okian/shelfwatch/internal/domain/model"
	"github.com/okian/shelfwatch/internal/domain/types"
)

// Fallback returns the demo dataset substituted when the inventory
// source is unreachable. This is degraded-mode data: callers must
// surface the substitution to operators rather than present it as live
// inventory.
func Fallback() []model.InventoryRecord {
	return []model.InventoryRecord{
		{ID: 1, Name: "Arduino Kit", Quantity: 5, Category: "Hardware", Status: types.StatusAvailable},
		{ID: 2, Name: "Figma License", Quantity: 20, Category: "Software", Status: types.StatusAvailable},
		{ID: 3, Name: "Wireless Mouse", Quantity: 25, Category: "Electronics", Status: types.StatusAvailable},
		{ID: 4, Name: "USB Cable", Quantity: 3, Category: "Hardware", Status: types.StatusAvailable},
		{ID: 5, Name: "Monitor Stand", Quantity: 8, Category: "Furniture", Status: types.StatusUnavailable},
	}
}
