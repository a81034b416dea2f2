package repo

import "github.com/ROKU24/Inventory-Management-Dashboard/internal/models"

// defaultProducts is the built-in seed dataset the repository falls back to
// and restores on reset. It deliberately includes out-of-stock and low-stock
// entries.
var defaultProducts = []models.Product{
	{ID: 1, Name: "Wireless Mouse", Category: "Electronics", StockQuantity: 42, Price: 24.99},
	{ID: 2, Name: "Mechanical Keyboard", Category: "Electronics", StockQuantity: 8, Price: 79.99},
	{ID: 3, Name: "Office Chair", Category: "Furniture", StockQuantity: 15, Price: 149.50},
	{ID: 4, Name: "Standing Desk", Category: "Furniture", StockQuantity: 0, Price: 399.00},
	{ID: 5, Name: "LED Monitor", Category: "Electronics", StockQuantity: 23, Price: 189.99},
	{ID: 6, Name: "Notebook Pack", Category: "Stationery", StockQuantity: 120, Price: 6.49},
	{ID: 7, Name: "Gel Pen Set", Category: "Stationery", StockQuantity: 0, Price: 12.99},
	{ID: 8, Name: "Desk Lamp", Category: "Furniture", StockQuantity: 5, Price: 34.95},
	{ID: 9, Name: "Coffee Maker", Category: "Appliances", StockQuantity: 17, Price: 89.90},
	{ID: 10, Name: "USB-C Hub", Category: "Electronics", StockQuantity: 3, Price: 45.00},
}

// DefaultProducts returns a fresh copy of the seed dataset.
func DefaultProducts() []models.Product {
	out := make([]models.Product, len(defaultProducts))
	copy(out, defaultProducts)
	return out
}
