package models

// LowStockThreshold is the stock quantity at or below which a product is
// flagged as running low.
const LowStockThreshold = 10

// Product represents a single inventory item record. The JSON field names
// match the persisted record layout, so stored data round-trips unchanged.
type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	Price         float64 `json:"price"`
}

// OutOfStock reports whether the product has no sellable stock.
func (p Product) OutOfStock() bool {
	return p.StockQuantity <= 0
}

// LowStock reports whether the product is in stock but at or below the
// low-stock threshold.
func (p Product) LowStock() bool {
	return p.StockQuantity > 0 && p.StockQuantity <= LowStockThreshold
}
