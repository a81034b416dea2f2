// Package query implements the pure filter → sort → paginate pipeline that
// produces the visible slice of the product list. It never errors; an empty
// result is a valid terminal state.
package query

import (
	"sort"
	"strings"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
)

// Page is one visible slice of the filtered and sorted product list.
type Page struct {
	Items      []models.Product
	TotalCount int
	TotalPages int
}

// Filtered returns the full filtered and sorted set, without pagination.
// The out-of-stock mode is evaluated first and bypasses every other filter,
// so table and export always agree on the visible set.
func Filtered(products []models.Product, f models.FilterState) []models.Product {
	out := make([]models.Product, 0, len(products))
	if f.OutOfStockMode() {
		for _, p := range products {
			if p.StockQuantity <= 0 {
				out = append(out, p)
			}
		}
		sortProducts(out, f)
		return out
	}

	categories := make(map[string]struct{}, len(f.Categories))
	for _, c := range f.Categories {
		categories[c] = struct{}{}
	}
	search := strings.ToLower(f.Search)

	for _, p := range products {
		if len(categories) > 0 {
			if _, ok := categories[p.Category]; !ok {
				continue
			}
		}
		if f.InStockOnly && p.StockQuantity <= 0 {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, f)
	return out
}

// VisiblePage runs the full pipeline and slices out the current page.
// Out-of-range pages yield an empty page with the totals intact.
func VisiblePage(products []models.Product, f models.FilterState) Page {
	return Paginate(Filtered(products, f), f)
}

// Paginate slices an already filtered and sorted set according to the page
// settings in f.
func Paginate(filtered []models.Product, f models.FilterState) Page {
	total := len(filtered)
	pages := TotalPages(total, f.ItemsPerPage)

	start := (f.CurrentPage - 1) * f.ItemsPerPage
	if start < 0 {
		start = 0
	}
	if start >= total {
		return Page{Items: []models.Product{}, TotalCount: total, TotalPages: pages}
	}
	end := start + f.ItemsPerPage
	if end > total {
		end = total
	}
	items := make([]models.Product, end-start)
	copy(items, filtered[start:end])
	return Page{Items: items, TotalCount: total, TotalPages: pages}
}

// TotalPages returns ceil(total/perPage), with a minimum of one page.
func TotalPages(total, perPage int) int {
	if perPage <= 0 {
		return 1
	}
	pages := (total + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage forces page into [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// sortProducts stably sorts in place by the configured field. String fields
// compare case-insensitively; the direction reverses the comparison while
// ties keep their prior relative order.
func sortProducts(products []models.Product, f models.FilterState) {
	less := lessFunc(f.SortField)
	desc := f.SortDirection == models.SortDesc
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		if desc {
			a, b = b, a
		}
		return less(a, b)
	})
}

func lessFunc(field models.SortField) func(a, b models.Product) bool {
	switch field {
	case models.SortByCategory:
		return func(a, b models.Product) bool {
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		}
	case models.SortByStock:
		return func(a, b models.Product) bool {
			return a.StockQuantity < b.StockQuantity
		}
	case models.SortByPrice:
		return func(a, b models.Product) bool {
			return a.Price < b.Price
		}
	default:
		return func(a, b models.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}
}
