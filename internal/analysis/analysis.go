// Package analysis turns raw inventory records into the summary
// operators and dashboards consume: totals, per-category aggregation,
// low-stock flags, and status breakdown.
package analysis

import (
	"sort"
	"time"

	"github.com/okian/shelfwatch/internal/domain/model"
)

// CategorySummary aggregates one category.
type CategorySummary struct {
	Category     string `json:"category"`
	ProductCount int    `json:"product_count"`
	TotalUnits   int    `json:"total_units"`
}

// StatusCount counts records per availability status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// Summary is the inventory analysis snapshot exported as JSON.
type Summary struct {
	GeneratedAt       time.Time               `json:"generated_at"`
	Degraded          bool                    `json:"degraded,omitempty"`
	TotalProducts     int                     `json:"total_products"`
	TotalUnits        int                     `json:"total_units"`
	Categories        []CategorySummary       `json:"categories"`
	LowStockThreshold int                     `json:"low_stock_threshold"`
	LowStock          []model.InventoryRecord `json:"low_stock"`
	StatusBreakdown   []StatusCount           `json:"status_breakdown"`
}

// Summarize computes the analysis over records. Categories and status
// counts are sorted by name so the snapshot is deterministic. The input
// is never mutated; low-stock entries keep their original record order.
func Summarize(records []model.InventoryRecord, lowStockThreshold int) Summary {
	s := Summary{
		GeneratedAt:       time.Now(),
		TotalProducts:     len(records),
		Categories:        []CategorySummary{},
		LowStockThreshold: lowStockThreshold,
		LowStock:          []model.InventoryRecord{},
		StatusBreakdown:   []StatusCount{},
	}

	byCategory := make(map[string]*CategorySummary)
	byStatus := make(map[string]int)
	for _, rec := range records {
		s.TotalUnits += rec.Quantity

		cat, ok := byCategory[rec.Category]
		if !ok {
			cat = &CategorySummary{Category: rec.Category}
			byCategory[rec.Category] = cat
		}
		cat.ProductCount++
		cat.TotalUnits += rec.Quantity

		byStatus[string(rec.Status)]++

		if rec.Quantity < lowStockThreshold {
			s.LowStock = append(s.LowStock, rec)
		}
	}

	for _, cat := range byCategory {
		s.Categories = append(s.Categories, *cat)
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		return s.Categories[i].Category < s.Categories[j].Category
	})

	for status, count := range byStatus {
		s.StatusBreakdown = append(s.StatusBreakdown, StatusCount{Status: status, Count: count})
	}
	sort.Slice(s.StatusBreakdown, func(i, j int) bool {
		return s.StatusBreakdown[i].Status < s.StatusBreakdown[j].Status
	})

	return s
}
