package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/query"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/report"
)

// ExportProductsHandler godoc
// @Summary Export the filtered product list as a PDF report
// @Description Renders the full filtered and sorted set (not just the
// @Description visible page) with the active currency. State is never
// @Description mutated by this path.
// @Tags export
// @Produce application/pdf
// @Success 200 {file} binary
// @Failure 500 {string} string "Report generation failed"
// @Router /export [post]
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	state := filterRepo.State()
	products := productRepo.All()

	gen := report.Generator{
		Currency: currencyRepo.Current(),
		Filter:   state,
		Products: query.Filtered(products, state),
		Counts:   query.CategoryCounts(products),
		Chart:    report.BarChartRenderer{},
		Notifier: notifier,
		Now:      time.Now(),
	}

	// Render into memory first so a failure never sends a partial document.
	var buf bytes.Buffer
	if err := gen.Generate(&buf); err != nil {
		slog.Error("report generation failed", "error", err)
		http.Error(w, "could not generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", gen.Filename()))
	w.Write(buf.Bytes())
}
