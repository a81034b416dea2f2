package report

import (
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/query"
)

// ChartRenderer draws the category distribution section into the document.
// It is injected so the report layout can be tested without a particular
// rendering, and replaced if a richer snapshot source is available.
type ChartRenderer interface {
	Render(pdf *gofpdf.Fpdf, counts []query.CategoryCount, x, y, w, h float64)
}

// chartPalette cycles per bar.
var chartPalette = [][3]int{
	{0x88, 0x84, 0xD8},
	{0x82, 0xCA, 0x9D},
	{0xFF, 0xC6, 0x58},
	{0xFF, 0x80, 0x42},
	{0x00, 0x88, 0xFE},
	{0x00, 0xC4, 0x9F},
	{0xFF, 0xBB, 0x28},
	{0xFF, 0x80, 0x42},
}

// BarChartRenderer draws a simple per-category bar chart natively with PDF
// primitives.
type BarChartRenderer struct{}

func (BarChartRenderer) Render(pdf *gofpdf.Fpdf, counts []query.CategoryCount, x, y, w, h float64) {
	if len(counts) == 0 {
		return
	}
	maxCount := 0
	for _, c := range counts {
		if c.Count > maxCount {
			maxCount = c.Count
		}
	}
	if maxCount == 0 {
		return
	}

	labelH := 6.0
	topPad := 4.0
	plotH := h - labelH - topPad
	baseline := y + topPad + plotH

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(x, y+topPad, x, baseline)
	pdf.Line(x, baseline, x+w, baseline)

	slot := w / float64(len(counts))
	barW := slot * 0.6
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "", 8)
	for i, c := range counts {
		color := chartPalette[i%len(chartPalette)]
		barH := plotH * float64(c.Count) / float64(maxCount)
		bx := x + slot*float64(i) + (slot-barW)/2

		pdf.SetFillColor(color[0], color[1], color[2])
		pdf.Rect(bx, baseline-barH, barW, barH, "F")

		count := strconv.Itoa(c.Count)
		pdf.SetTextColor(100, 100, 100)
		pdf.Text(bx+barW/2-pdf.GetStringWidth(count)/2, baseline-barH-1, count)

		runes := []rune(c.Category)
		for pdf.GetStringWidth(tr(string(runes))) > slot && len(runes) > 1 {
			runes = runes[:len(runes)-1]
		}
		label := tr(string(runes))
		pdf.SetTextColor(0, 0, 0)
		pdf.Text(bx+barW/2-pdf.GetStringWidth(label)/2, baseline+labelH-1, label)
	}
}
