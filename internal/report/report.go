// Package report renders the downloadable PDF inventory report: a header
// describing the active filters and currency, the full filtered and sorted
// product table with stock highlighting, and a category distribution chart.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/query"
)

// Page layout constants, in millimeters on A4 portrait.
const (
	marginLeft  = 20.0
	tableWidth  = 170.0
	rowHeight   = 8.0
	headerH     = 10.0
	breakAtY    = 270.0 // start a new page before rows pass this
	chartBreakY = 200.0 // the chart needs a taller block
	footerY     = 290.0
)

// Generator renders one report from a snapshot of the dashboard state. It
// never mutates that state; failure is reported through the Notifier and
// returned as an error.
type Generator struct {
	Currency models.Currency
	Filter   models.FilterState
	Products []models.Product // full filtered and sorted set, unpaginated
	Counts   []query.CategoryCount
	Chart    ChartRenderer
	Notifier Notifier
	Now      time.Time
}

func (g Generator) now() time.Time {
	if g.Now.IsZero() {
		return time.Now()
	}
	return g.Now
}

func (g Generator) notify(level, message string) {
	if g.Notifier != nil {
		g.Notifier.Notify(level, message)
	}
}

// Filename returns the download name for the report, encoding date, active
// stock filter and currency code.
func (g Generator) Filename() string {
	name := "inventory-report-" + g.now().Format("2006-01-02")
	f := g.Filter.Normalize()
	if f.OutOfStockMode() {
		name += "-outofstock"
	} else if f.InStockOnly {
		name += "-instock"
	}
	return name + "-" + strings.ToLower(g.Currency.Code) + ".pdf"
}

// PDFSymbol returns a currency symbol guaranteed to render with the
// document's core fonts, substituting an ASCII approximation where the
// original symbol cannot be displayed reliably.
func PDFSymbol(c models.Currency) string {
	switch c.Code {
	case "INR":
		return "Rs."
	case "CNY":
		return "CN¥"
	case "JPY":
		return "¥"
	}
	for _, r := range c.Symbol {
		if r > 0xFF && r != '€' {
			return c.Code + " "
		}
	}
	return c.Symbol
}

// Generate writes the rendered PDF to w.
func (g Generator) Generate(w io.Writer) error {
	g.notify(LevelInfo, "Generating PDF...")

	f := g.Filter.Normalize()
	symbol := PDFSymbol(g.Currency)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.Text(marginLeft, footerY, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()))
		pdf.SetXY(0, footerY-4)
		pdf.CellFormat(210, 6, "Generated by Inventory Management Dashboard", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "", 18)
	pdf.SetTextColor(79, 70, 229)
	pdf.Text(marginLeft, 20, "Inventory Management Dashboard")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Text(marginLeft, 30, "Generated on: "+g.now().Format("January 2, 2006"))

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	y := 40.0
	line := func(s string) {
		pdf.Text(marginLeft, y, tr(s))
		y += 8
	}

	line(fmt.Sprintf("Currency: %s (%s) - %s", g.Currency.Code, symbol, g.Currency.Name))
	if f.OutOfStockMode() {
		line("Filter: Out of Stock Products Only")
	} else {
		if len(f.Categories) > 0 {
			line("Categories: " + strings.Join(f.Categories, ", "))
		}
		if f.InStockOnly {
			line("Showing only in-stock items")
		}
		if f.Search != "" {
			line(fmt.Sprintf("Search: %q", f.Search))
		}
	}
	direction := "Ascending"
	if f.SortDirection == models.SortDesc {
		direction = "Descending"
	}
	line(fmt.Sprintf("Sorted by: %s (%s)", f.SortField, direction))
	line(fmt.Sprintf("Total products: %d", len(g.Products)))

	y += 8
	g.tableHeader(pdf, &y)

	pdf.SetFont("Helvetica", "", 10)
	alternate := false
	for _, p := range g.Products {
		if y > breakAtY {
			pdf.AddPage()
			y = 20
			g.tableHeader(pdf, &y)
			pdf.SetFont("Helvetica", "", 10)
			alternate = false
		}
		if alternate {
			pdf.SetFillColor(245, 245, 245)
			pdf.Rect(marginLeft, y, tableWidth, rowHeight, "F")
		}
		alternate = !alternate

		pdf.SetTextColor(0, 0, 0)
		pdf.Text(25, y+5, strconv.Itoa(p.ID))
		pdf.Text(40, y+5, tr(truncate(p.Name, 30)))
		pdf.Text(90, y+5, tr(p.Category))

		switch {
		case p.OutOfStock():
			pdf.SetTextColor(220, 38, 38)
		case p.LowStock():
			pdf.SetTextColor(217, 119, 6)
		}
		pdf.Text(140, y+5, strconv.Itoa(p.StockQuantity))
		pdf.SetTextColor(0, 0, 0)

		pdf.Text(160, y+5, tr(fmt.Sprintf("%s%.2f", symbol, p.Price)))
		y += rowHeight
	}

	if g.Chart != nil && len(g.Counts) > 0 {
		y += 10
		if y > chartBreakY {
			pdf.AddPage()
			y = 20
		}
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(marginLeft, y, "Category Distribution")
		y += 10
		g.Chart.Render(pdf, g.Counts, marginLeft, y, tableWidth, 80)
	}

	if err := pdf.Output(w); err != nil {
		g.notify(LevelError, "Error generating PDF. Please try again.")
		return fmt.Errorf("failed to render report: %w", err)
	}
	g.notify(LevelSuccess, "PDF exported successfully!")
	return nil
}

// truncate cuts s to at most max characters, never splitting a rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func (g Generator) tableHeader(pdf *gofpdf.Fpdf, y *float64) {
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(200, 200, 200)
	pdf.Rect(marginLeft, *y, tableWidth, headerH, "FD")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.Text(25, *y+7, "ID")
	pdf.Text(40, *y+7, "Name")
	pdf.Text(90, *y+7, "Category")
	pdf.Text(140, *y+7, "Stock")
	pdf.Text(160, *y+7, "Price")
	*y += headerH
}
