package handlers

import "github.com/ROKU24/Inventory-Management-Dashboard/internal/models"

type ProductRequest struct {
	Id            int     `json:"id,omitempty"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	Price         float64 `json:"price"`
}

type ProductResponse struct {
	Id            int     `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	Price         float64 `json:"price"`
	LowStock      bool    `json:"low_stock,omitempty"`
	OutOfStock    bool    `json:"out_of_stock,omitempty"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		Price:         p.Price,
		LowStock:      p.LowStock(),
		OutOfStock:    p.OutOfStock(),
	}
}

type Meta struct {
	TotalCount  int `json:"total_count"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
}

type ProductsPageResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

type BulkDeleteRequest struct {
	IDs []int `json:"ids"`
}

type SelectionRequest struct {
	IDs []int `json:"ids"`
}

type SelectionResult struct {
	IDs []int `json:"ids"`
}

type CategoryToggleRequest struct {
	Category string `json:"category"`
}

type StockFilterRequest struct {
	InStockOnly bool `json:"inStockOnly"`
}

type SearchRequest struct {
	Search string `json:"search"`
}

type SortRequest struct {
	Field string `json:"field"`
}

type PageRequest struct {
	Page int `json:"page"`
}

type PageSizeRequest struct {
	ItemsPerPage int `json:"itemsPerPage"`
}

type CurrencyRequest struct {
	Code string `json:"code"`
}
