// Package http wires the dashboard's routes.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Route("/products", func(r chi.Router) {
		r.Post("/", handlers.CreateProductHandler)
		r.Get("/", handlers.GetProductsHandler)
		r.Get("/page", handlers.GetProductPageHandler)
		r.Post("/bulk-delete", handlers.BulkDeleteProductsHandler)
		r.Post("/reset", handlers.ResetProductsHandler)
		r.Get("/{id}", handlers.GetProductByIDHandler)
		r.Put("/{id}", handlers.UpdateProductHandler)
		r.Delete("/{id}", handlers.DeleteProductHandler)
	})

	r.Get("/categories", handlers.GetCategoriesHandler)

	r.Route("/selection", func(r chi.Router) {
		r.Get("/", handlers.GetSelectionHandler)
		r.Put("/", handlers.ReplaceSelectionHandler)
		r.Delete("/", handlers.ClearSelectionHandler)
		r.Post("/{id}", handlers.ToggleSelectionHandler)
	})

	r.Route("/filters", func(r chi.Router) {
		r.Get("/", handlers.GetFiltersHandler)
		r.Post("/category", handlers.ToggleCategoryHandler)
		r.Put("/stock", handlers.SetInStockOnlyHandler)
		r.Put("/search", handlers.SetSearchHandler)
		r.Put("/sort", handlers.SetSortHandler)
		r.Put("/page", handlers.SetPageHandler)
		r.Put("/page-size", handlers.SetPageSizeHandler)
		r.Post("/reset", handlers.ResetFiltersHandler)
		r.Post("/out-of-stock", handlers.SetOutOfStockModeHandler)
	})

	r.Get("/currencies", handlers.ListCurrenciesHandler)
	r.Get("/currency", handlers.GetCurrencyHandler)
	r.Put("/currency", handlers.SetCurrencyHandler)

	r.With(ExportRateLimit).Post("/export", handlers.ExportProductsHandler)

	return r
}
