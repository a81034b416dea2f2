package handlers

import (
	"net/http"
	"strings"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/query"
)

// GetFiltersHandler godoc
// @Summary The current filter/sort/page state
// @Tags filters
// @Produce json
// @Success 200 {object} models.FilterState
// @Router /filters [get]
func GetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// ToggleCategoryHandler godoc
// @Summary Toggle a category in the filter set
// @Description A category can only be added when a product carries it;
// @Description removing one already in the filter set always works.
// @Tags filters
// @Accept json
// @Produce json
// @Param category body CategoryToggleRequest true "Category"
// @Success 200 {object} models.FilterState
// @Failure 400 {string} string "Invalid input"
// @Router /filters/category [post]
func ToggleCategoryHandler(w http.ResponseWriter, r *http.Request) {
	var req CategoryToggleRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		http.Error(w, "category is required", http.StatusBadRequest)
		return
	}
	if !containsString(filterRepo.State().Categories, req.Category) &&
		!containsString(query.Categories(productRepo.All()), req.Category) {
		http.Error(w, "unknown category", http.StatusBadRequest)
		return
	}
	filterRepo.ToggleCategory(r.Context(), req.Category)
	writeJSON(w, http.StatusOK, filterRepo.State())
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// SetInStockOnlyHandler godoc
// @Summary Set the in-stock-only flag
// @Tags filters
// @Accept json
// @Produce json
// @Param flag body StockFilterRequest true "Flag"
// @Success 200 {object} models.FilterState
// @Failure 400 {string} string "Invalid input"
// @Router /filters/stock [put]
func SetInStockOnlyHandler(w http.ResponseWriter, r *http.Request) {
	var req StockFilterRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	filterRepo.SetInStockOnly(r.Context(), req.InStockOnly)
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// SetSearchHandler godoc
// @Summary Set the search text
// @Description The legacy out-of-stock sentinel value is accepted and
// @Description switches the filter mode.
// @Tags filters
// @Accept json
// @Produce json
// @Param search body SearchRequest true "Search text"
// @Success 200 {object} models.FilterState
// @Failure 400 {string} string "Invalid input"
// @Router /filters/search [put]
func SetSearchHandler(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	filterRepo.SetSearch(r.Context(), req.Search)
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// SetSortHandler godoc
// @Summary Select the sort field
// @Description Selecting the active field flips the direction; a new field
// @Description sorts ascending.
// @Tags filters
// @Accept json
// @Produce json
// @Param sort body SortRequest true "Sort field"
// @Success 200 {object} models.FilterState
// @Failure 400 {string} string "Invalid field"
// @Router /filters/sort [put]
func SetSortHandler(w http.ResponseWriter, r *http.Request) {
	var req SortRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	field := models.SortField(req.Field)
	if !field.Valid() {
		http.Error(w, "invalid sort field", http.StatusBadRequest)
		return
	}
	filterRepo.SetSortField(r.Context(), field)
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// SetPageHandler godoc
// @Summary Set the current page
// @Description The requested page is clamped to the range of the currently
// @Description visible set before being stored.
// @Tags filters
// @Accept json
// @Produce json
// @Param page body PageRequest true "Page number"
// @Success 200 {object} models.FilterState
// @Failure 400 {string} string "Invalid input"
// @Router /filters/page [put]
func SetPageHandler(w http.ResponseWriter, r *http.Request) {
	var req PageRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	state := filterRepo.State()
	filtered := query.Filtered(productRepo.All(), state)
	pages := query.TotalPages(len(filtered), state.ItemsPerPage)
	filterRepo.SetCurrentPage(r.Context(), query.ClampPage(req.Page, pages))
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// SetPageSizeHandler godoc
// @Summary Set the page size
// @Tags filters
// @Accept json
// @Produce json
// @Param size body PageSizeRequest true "Items per page"
// @Success 200 {object} models.FilterState
// @Failure 400 {string} string "Invalid page size"
// @Router /filters/page-size [put]
func SetPageSizeHandler(w http.ResponseWriter, r *http.Request) {
	var req PageSizeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !models.ValidPageSize(req.ItemsPerPage) {
		http.Error(w, "items per page must be one of 5, 10, 25", http.StatusBadRequest)
		return
	}
	filterRepo.SetItemsPerPage(r.Context(), req.ItemsPerPage)
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// ResetFiltersHandler godoc
// @Summary Clear categories, stock flag and search
// @Description Sort and page size are kept.
// @Tags filters
// @Produce json
// @Success 200 {object} models.FilterState
// @Router /filters/reset [post]
func ResetFiltersHandler(w http.ResponseWriter, r *http.Request) {
	filterRepo.ResetFilters(r.Context())
	writeJSON(w, http.StatusOK, filterRepo.State())
}

// SetOutOfStockModeHandler godoc
// @Summary Switch to the dedicated out-of-stock view
// @Description Clears every other filter first.
// @Tags filters
// @Produce json
// @Success 200 {object} models.FilterState
// @Router /filters/out-of-stock [post]
func SetOutOfStockModeHandler(w http.ResponseWriter, r *http.Request) {
	filterRepo.SetOutOfStockMode(r.Context())
	writeJSON(w, http.StatusOK, filterRepo.State())
}
