package query

import "github.com/ROKU24/Inventory-Management-Dashboard/internal/models"

// CategoryCount is the number of products in one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CategoryCounts aggregates products per category in first-seen order. It
// feeds the category distribution chart and the category filter list.
func CategoryCounts(products []models.Product) []CategoryCount {
	index := make(map[string]int)
	out := []CategoryCount{}
	for _, p := range products {
		if i, ok := index[p.Category]; ok {
			out[i].Count++
			continue
		}
		index[p.Category] = len(out)
		out = append(out, CategoryCount{Category: p.Category, Count: 1})
	}
	return out
}

// Categories returns the distinct category names in first-seen order.
func Categories(products []models.Product) []string {
	counts := CategoryCounts(products)
	out := make([]string, len(counts))
	for i, c := range counts {
		out[i] = c.Category
	}
	return out
}
