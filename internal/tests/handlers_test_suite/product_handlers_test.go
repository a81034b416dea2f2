package handlers_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	handler "github.com/ROKU24/Inventory-Management-Dashboard/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Laptop", Category: "Electronics", StockQuantity: 3, Price: 1500.0})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id != 11 {
		t.Errorf("expected id 11 after the ten seed products, got %d", resp.Id)
	}
	if resp.Name != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.Name)
	}
	if resp.Price != 1500.0 {
		t.Errorf("expected price 1500.0, got %v", resp.Price)
	}
	if !resp.LowStock {
		t.Errorf("expected a stock of 3 to be flagged low")
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectedErrors []string
	}{
		{
			name:           "Empty name and category",
			payload:        handler.ProductRequest{Name: "", Category: "", Price: 10.0},
			expectedErrors: []string{"Name", "Category"},
		},
		{
			name:           "Invalid price",
			payload:        handler.ProductRequest{Name: "Mouse", Category: "Electronics", Price: 0.0},
			expectedErrors: []string{"Price"},
		},
		{
			name:           "Negative stock",
			payload:        handler.ProductRequest{Name: "Keyboard", Category: "Electronics", StockQuantity: -1, Price: 50.0},
			expectedErrors: []string{"StockQuantity"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected status 400, got %d", w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	badJSON := `{name: "Invalid" price: 100 "}` // missing comma
	req, w := rawRequest(http.MethodPost, "/products", badJSON)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}
}

func TestGetProductsHandler_SeedData(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/products", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 10 {
		t.Fatalf("expected the 10 seed products, got %d", len(resp))
	}
	outOfStock := 0
	for _, p := range resp {
		if p.OutOfStock {
			outOfStock++
		}
	}
	if outOfStock != 2 {
		t.Errorf("expected 2 out-of-stock seed products, got %d", outOfStock)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/products/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Id != 1 {
		t.Errorf("expected id 1, got %d", resp.Id)
	}

	if w := doJSON(r, http.MethodGet, "/products/9999", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown id, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/products/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for non-numeric id, got %d", w.Code)
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := doJSON(r, http.MethodPut, "/products/2", handler.ProductRequest{
		Name: "Renamed", Category: "Electronics", StockQuantity: 50, Price: 9.99,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	got, err := productRepo.GetByID(2)
	if err != nil {
		t.Fatalf("error fetching updated product: %v", err)
	}
	if got.Name != "Renamed" || got.StockQuantity != 50 {
		t.Errorf("update not applied: %+v", got)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	if w := deleteProduct(r, 1); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if w := doJSON(r, http.MethodGet, "/products/1", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected the deleted product to be gone, got %d", w.Code)
	}
	// deleting again is a no-op
	if w := deleteProduct(r, 1); w.Code != http.StatusNoContent {
		t.Errorf("expected delete to be idempotent, got %d", w.Code)
	}
}

func TestBulkDeleteProductsHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/products/bulk-delete", handler.BulkDeleteRequest{IDs: []int{1, 2, 3}})
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}
	if got := len(productRepo.All()); got != 7 {
		t.Errorf("expected 7 products remaining, got %d", got)
	}
}

func TestResetProductsHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	deleteProduct(r, 1)
	deleteProduct(r, 2)

	w := doJSON(r, http.MethodPost, "/products/reset", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(resp) != 10 {
		t.Errorf("expected the seed dataset back, got %d products", len(resp))
	}
}

func TestGetProductPageHandler_Defaults(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	resp, err := visiblePage(r)
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Data) != 5 {
		t.Errorf("expected a page of 5, got %d", len(resp.Data))
	}
	if resp.Meta.TotalCount != 10 || resp.Meta.TotalPages != 2 {
		t.Errorf("expected 10 products over 2 pages, got %+v", resp.Meta)
	}
	for i := 1; i < len(resp.Data); i++ {
		if strings.ToLower(resp.Data[i-1].Name) > strings.ToLower(resp.Data[i].Name) {
			t.Errorf("expected name-ascending order, got %q before %q", resp.Data[i-1].Name, resp.Data[i].Name)
		}
	}
}

func TestGetProductPageHandler_ClampsAfterShrink(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	// move to the last page, then shrink the set below it
	doJSON(r, http.MethodPut, "/filters/page", handler.PageRequest{Page: 2})
	for id := 1; id <= 6; id++ {
		deleteProduct(r, id)
	}

	resp, err := visiblePage(r)
	if err != nil {
		t.Fatal(err)
	}
	if resp.Meta.CurrentPage != 1 {
		t.Errorf("expected the page to clamp back to 1, got %d", resp.Meta.CurrentPage)
	}
	if resp.Meta.TotalCount != 4 {
		t.Errorf("expected 4 products, got %d", resp.Meta.TotalCount)
	}
	// the clamped page is persisted
	if got := filterRepo.State().CurrentPage; got != 1 {
		t.Errorf("expected persisted page 1, got %d", got)
	}
}

func TestGetCategoriesHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := doJSON(r, http.MethodGet, "/categories", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var resp []struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	total := 0
	for _, c := range resp {
		total += c.Count
	}
	if total != 10 {
		t.Errorf("expected category counts to cover all 10 seed products, got %d", total)
	}
	if len(resp) != 4 {
		t.Errorf("expected 4 seed categories, got %d: %v", len(resp), resp)
	}
}

func TestProductLifecycle(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := createProduct(r, handler.ProductRequest{Name: "Test Widget", Category: "Testing", StockQuantity: 1, Price: 1.0})
	var created handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if w := doJSON(r, http.MethodGet, fmt.Sprintf("/products/%d", created.Id), nil); w.Code != http.StatusOK {
		t.Errorf("expected to fetch the created product, got %d", w.Code)
	}
	if w := deleteProduct(r, created.Id); w.Code != http.StatusNoContent {
		t.Errorf("expected 204 deleting the created product, got %d", w.Code)
	}
}
