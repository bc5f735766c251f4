package analysis

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/okian/shelfwatch/internal/domain/model"
)

// RenderInventory writes the full inventory table to w.
func RenderInventory(w io.Writer, records []model.InventoryRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "Name", "Quantity", "Category", "Status"})
	for _, rec := range records {
		t.AppendRow(table.Row{rec.ID, rec.Name, rec.Quantity, rec.Category, rec.Status})
	}
	t.Render()
}

// RenderSummary writes the analysis summary tables to w.
func RenderSummary(w io.Writer, s Summary) {
	fmt.Fprintf(w, "Total products: %d\n", s.TotalProducts)
	fmt.Fprintf(w, "Total units:    %d\n", s.TotalUnits)
	if s.Degraded {
		fmt.Fprintln(w, "NOTE: figures computed from fallback data; inventory source was unreachable")
	}

	cats := table.NewWriter()
	cats.SetOutputMirror(w)
	cats.SetStyle(table.StyleLight)
	cats.SetTitle("Items by Category")
	cats.AppendHeader(table.Row{"Category", "Products", "Units"})
	for _, c := range s.Categories {
		cats.AppendRow(table.Row{c.Category, c.ProductCount, c.TotalUnits})
	}
	cats.Render()

	low := table.NewWriter()
	low.SetOutputMirror(w)
	low.SetStyle(table.StyleLight)
	low.SetTitle(fmt.Sprintf("Low Stock (quantity < %d)", s.LowStockThreshold))
	low.AppendHeader(table.Row{"Name", "Category", "Quantity"})
	for _, rec := range s.LowStock {
		low.AppendRow(table.Row{rec.Name, rec.Category, rec.Quantity})
	}
	if len(s.LowStock) == 0 {
		low.AppendRow(table.Row{"(none)", "", ""})
	}
	low.Render()

	for _, sc := range s.StatusBreakdown {
		fmt.Fprintf(w, "%s: %d\n", sc.Status, sc.Count)
	}
}

// RenderReconciliation writes the per-disposition summary table and the
// notable findings to w. This is the operator-facing view; the audit
// log and the results snapshot carry the full detail.
func RenderReconciliation(w io.Writer, report model.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Reconciliation: Observed vs Declared")
	t.AppendHeader(table.Row{"Disposition", "Count"})
	t.AppendRow(table.Row{"VERIFIED", report.Summary.VerifiedCount})
	t.AppendRow(table.Row{"DISCREPANCY", report.Summary.DiscrepancyCount})
	t.AppendRow(table.Row{"UNCERTAIN", report.Summary.UncertainCount})
	t.AppendRow(table.Row{"MISSING_FROM_DB", report.Summary.MissingFromDBCount})
	t.Render()

	if report.Degraded {
		fmt.Fprintln(w, "NOTE: reconciled against fallback data; inventory source was unreachable")
	}

	for _, f := range report.Details.Discrepancies {
		fmt.Fprintf(w, "discrepancy: %s (scene %s, conf %.2f): %s\n", f.Item, f.SceneID, f.Confidence, f.Issue)
	}
	for _, f := range report.Details.MissingFromDB {
		fmt.Fprintf(w, "missing from DB: %s (scene %s, conf %.2f)\n", f.Item, f.SceneID, f.Confidence)
	}
	for _, f := range report.Details.Uncertain {
		fmt.Fprintf(w, "manual review: %s (scene %s, conf %.2f)\n", f.Item, f.SceneID, f.Confidence)
	}
}
