package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetSelectionHandler godoc
// @Summary The currently selected product ids
// @Tags selection
// @Produce json
// @Success 200 {object} SelectionResult
// @Router /selection [get]
func GetSelectionHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SelectionResult{IDs: productRepo.Selected()})
}

// ToggleSelectionHandler godoc
// @Summary Toggle one product id in the selection
// @Tags selection
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} SelectionResult
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /selection/{id} [post]
func ToggleSelectionHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	if _, err := productRepo.GetByID(id); err != nil {
		http.Error(w, "product not found", http.StatusNotFound)
		return
	}
	productRepo.ToggleSelect(id)
	writeJSON(w, http.StatusOK, SelectionResult{IDs: productRepo.Selected()})
}

// ReplaceSelectionHandler godoc
// @Summary Replace the selection wholesale
// @Description Ids without a matching product are dropped.
// @Tags selection
// @Accept json
// @Produce json
// @Param ids body SelectionRequest true "Product IDs"
// @Success 200 {object} SelectionResult
// @Failure 400 {string} string "Invalid input"
// @Router /selection [put]
func ReplaceSelectionHandler(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	productRepo.SelectAll(req.IDs)
	writeJSON(w, http.StatusOK, SelectionResult{IDs: productRepo.Selected()})
}

// ClearSelectionHandler godoc
// @Summary Clear the selection
// @Tags selection
// @Success 204 "Cleared"
// @Router /selection [delete]
func ClearSelectionHandler(w http.ResponseWriter, r *http.Request) {
	productRepo.ClearSelection()
	w.WriteHeader(http.StatusNoContent)
}
