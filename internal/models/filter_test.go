package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSentinelSearch(t *testing.T) {
	f := DefaultFilterState()
	f.Search = OutOfStockSentinel
	f.Categories = []string{"Tools"}
	f.InStockOnly = true

	n := f.Normalize()
	assert.Equal(t, ModeOutOfStock, n.Mode)
	assert.Empty(t, n.Search)
	assert.True(t, n.OutOfStockMode())
	// other filter values are kept; the pipeline ignores them in this mode
	assert.Equal(t, []string{"Tools"}, n.Categories)
}

func TestNormalizeRepairsInvalidValues(t *testing.T) {
	f := FilterState{
		Search:        "lamp",
		Mode:          FilterMode("bogus"),
		SortField:     SortField("color"),
		SortDirection: SortDirection("sideways"),
		CurrentPage:   0,
		ItemsPerPage:  7,
	}
	n := f.Normalize()
	assert.Equal(t, ModeNormal, n.Mode)
	assert.Equal(t, SortByName, n.SortField)
	assert.Equal(t, SortAsc, n.SortDirection)
	assert.Equal(t, 1, n.CurrentPage)
	assert.Equal(t, 5, n.ItemsPerPage)
	assert.NotNil(t, n.Categories)
}

func TestNormalizeKeepsValidState(t *testing.T) {
	f := FilterState{
		Categories:    []string{"Electronics"},
		Search:        "hub",
		SortField:     SortByPrice,
		SortDirection: SortDesc,
		CurrentPage:   3,
		ItemsPerPage:  25,
	}
	assert.Equal(t, f.Normalize(), func() FilterState {
		f.Mode = ModeNormal
		return f
	}())
}

func TestFilterStateRoundTrip(t *testing.T) {
	f := DefaultFilterState()
	f.Categories = []string{"Furniture", "Stationery"}
	f.SortField = SortByStock
	f.SortDirection = SortDesc
	f.CurrentPage = 2
	f.ItemsPerPage = 10

	data, err := json.Marshal(f)
	require.NoError(t, err)

	var got FilterState
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, f, got)
}

// Records written by older versions carried the sentinel in the search field
// and no mode; they must load into out-of-stock mode.
func TestFilterStateLegacyRecord(t *testing.T) {
	raw := `{"categories":[],"inStockOnly":false,"search":"outofstock:true",` +
		`"sortField":"name","sortDirection":"asc","currentPage":1,"itemsPerPage":5}`

	var got FilterState
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	n := got.Normalize()
	assert.Equal(t, ModeOutOfStock, n.Mode)
	assert.True(t, n.OutOfStockMode())
}

func TestValidPageSize(t *testing.T) {
	for _, n := range PageSizes() {
		assert.True(t, ValidPageSize(n))
	}
	assert.False(t, ValidPageSize(0))
	assert.False(t, ValidPageSize(7))
	assert.False(t, ValidPageSize(100))
}

func TestCurrencyCatalog(t *testing.T) {
	c, ok := CurrencyByCode("INR")
	require.True(t, ok)
	assert.Equal(t, "₹", c.Symbol)
	assert.Equal(t, "Indian Rupee", c.Name)

	_, ok = CurrencyByCode("XXX")
	assert.False(t, ok)

	assert.Equal(t, "USD", DefaultCurrency().Code)
	assert.Len(t, Currencies(), 8)
}

func TestProductStockFlags(t *testing.T) {
	assert.True(t, Product{StockQuantity: 0}.OutOfStock())
	assert.True(t, Product{StockQuantity: -2}.OutOfStock())
	assert.False(t, Product{StockQuantity: 1}.OutOfStock())

	assert.True(t, Product{StockQuantity: 10}.LowStock())
	assert.True(t, Product{StockQuantity: 1}.LowStock())
	assert.False(t, Product{StockQuantity: 0}.LowStock())
	assert.False(t, Product{StockQuantity: 11}.LowStock())
}
