package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/query"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the inventory
// @Tags products
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created := productRepo.Create(r.Context(), models.Product{
		Name:          req.Name,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Price:         req.Price,
	})
	writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products, unfiltered
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Router /products [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products := productRepo.All()
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetProductPageHandler godoc
// @Summary The currently visible product page
// @Description Runs the filter/sort/paginate pipeline over the persisted
// @Description filter state. The current page is clamped to the visible set
// @Description and the clamped value is persisted.
// @Tags products
// @Produce json
// @Success 200 {object} ProductsPageResult
// @Router /products/page [get]
func GetProductPageHandler(w http.ResponseWriter, r *http.Request) {
	state := filterRepo.State()
	products := productRepo.All()

	filtered := query.Filtered(products, state)
	pages := query.TotalPages(len(filtered), state.ItemsPerPage)
	if clamped := query.ClampPage(state.CurrentPage, pages); clamped != state.CurrentPage {
		filterRepo.SetCurrentPage(r.Context(), clamped)
		state.CurrentPage = clamped
	}

	page := query.Paginate(filtered, state)
	resp := ProductsPageResult{
		Data: make([]ProductResponse, len(page.Items)),
		Meta: Meta{
			TotalCount:  page.TotalCount,
			TotalPages:  page.TotalPages,
			CurrentPage: state.CurrentPage,
			PerPage:     state.ItemsPerPage,
		},
	}
	for i, p := range page.Items {
		resp.Data[i] = toProductResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {string} string "Invalid ID"
// @Failure 404 {string} string "Not found"
// @Router /products/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	product, err := productRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch product", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Full replacement by identifier; unknown ids are a no-op.
// @Tags products
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Router /products/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateProduct(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product := models.Product{
		ID:            id,
		Name:          req.Name,
		Category:      req.Category,
		StockQuantity: req.StockQuantity,
		Price:         req.Price,
	}
	productRepo.Update(r.Context(), product)
	writeJSON(w, http.StatusOK, toProductResponse(product))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Idempotent; the id is also pruned from the selection.
// @Tags products
// @Param id path int true "Product ID"
// @Success 204 "Deleted"
// @Failure 400 {string} string "Invalid ID"
// @Router /products/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid product ID", http.StatusBadRequest)
		return
	}
	productRepo.Delete(r.Context(), id)
	w.WriteHeader(http.StatusNoContent)
}

// BulkDeleteProductsHandler godoc
// @Summary Delete several products at once
// @Description Clears the whole selection afterwards.
// @Tags products
// @Accept json
// @Param ids body BulkDeleteRequest true "Product IDs"
// @Success 204 "Deleted"
// @Failure 400 {string} string "Invalid input"
// @Router /products/bulk-delete [post]
func BulkDeleteProductsHandler(w http.ResponseWriter, r *http.Request) {
	var req BulkDeleteRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	productRepo.DeleteMany(r.Context(), req.IDs)
	w.WriteHeader(http.StatusNoContent)
}

// ResetProductsHandler godoc
// @Summary Restore the built-in seed dataset
// @Tags products
// @Produce json
// @Success 200 {array} ProductResponse
// @Router /products/reset [post]
func ResetProductsHandler(w http.ResponseWriter, r *http.Request) {
	productRepo.ResetToDefault(r.Context())
	GetProductsHandler(w, r)
}

// GetCategoriesHandler godoc
// @Summary Product counts per category
// @Tags products
// @Produce json
// @Success 200 {array} query.CategoryCount
// @Router /categories [get]
func GetCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, query.CategoryCounts(productRepo.All()))
}
