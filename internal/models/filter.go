package models

// SortField identifies the product attribute the list is ordered by.
type SortField string

const (
	SortByName     SortField = "name"
	SortByCategory SortField = "category"
	SortByStock    SortField = "stockQuantity"
	SortByPrice    SortField = "price"
)

// Valid reports whether f is one of the sortable product attributes.
func (f SortField) Valid() bool {
	switch f {
	case SortByName, SortByCategory, SortByStock, SortByPrice:
		return true
	}
	return false
}

// SortDirection is the ordering direction of the product list.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// FilterMode distinguishes the normal filter pipeline from the dedicated
// out-of-stock view. Earlier versions of the dashboard encoded the latter as
// a reserved search string; the mode is now explicit, and the reserved value
// is still accepted as input for compatibility with persisted state.
type FilterMode string

const (
	ModeNormal     FilterMode = "normal"
	ModeOutOfStock FilterMode = "outOfStock"
)

// OutOfStockSentinel is the legacy search value meaning "show only products
// with no stock". SetSearch and Normalize translate it into ModeOutOfStock.
const OutOfStockSentinel = "outofstock:true"

// pageSizes are the selectable page sizes.
var pageSizes = []int{5, 10, 25}

// PageSizes returns the selectable page sizes.
func PageSizes() []int {
	out := make([]int, len(pageSizes))
	copy(out, pageSizes)
	return out
}

// ValidPageSize reports whether n is a selectable page size.
func ValidPageSize(n int) bool {
	for _, s := range pageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// FilterState holds the query parameters for the visible product list.
type FilterState struct {
	Categories    []string      `json:"categories"`
	InStockOnly   bool          `json:"inStockOnly"`
	Search        string        `json:"search"`
	Mode          FilterMode    `json:"mode,omitempty"`
	SortField     SortField     `json:"sortField"`
	SortDirection SortDirection `json:"sortDirection"`
	CurrentPage   int           `json:"currentPage"`
	ItemsPerPage  int           `json:"itemsPerPage"`
}

// DefaultFilterState returns the state used when nothing has been persisted.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories:    []string{},
		InStockOnly:   false,
		Search:        "",
		Mode:          ModeNormal,
		SortField:     SortByName,
		SortDirection: SortAsc,
		CurrentPage:   1,
		ItemsPerPage:  5,
	}
}

// OutOfStockMode reports whether the dedicated out-of-stock view is active,
// via either the explicit mode or the legacy sentinel search value.
func (f FilterState) OutOfStockMode() bool {
	return f.Mode == ModeOutOfStock || f.Search == OutOfStockSentinel
}

// Normalize repairs a state loaded from storage: the legacy sentinel search
// is folded into the explicit mode, and out-of-range enum values fall back
// to their defaults.
func (f FilterState) Normalize() FilterState {
	if f.Search == OutOfStockSentinel {
		f.Search = ""
		f.Mode = ModeOutOfStock
	}
	if f.Mode != ModeOutOfStock {
		f.Mode = ModeNormal
	}
	if !f.SortField.Valid() {
		f.SortField = SortByName
	}
	if f.SortDirection != SortDesc {
		f.SortDirection = SortAsc
	}
	if f.CurrentPage < 1 {
		f.CurrentPage = 1
	}
	if !ValidPageSize(f.ItemsPerPage) {
		f.ItemsPerPage = 5
	}
	if f.Categories == nil {
		f.Categories = []string{}
	}
	return f
}
