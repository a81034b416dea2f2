package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	api "github.com/ROKU24/Inventory-Management-Dashboard/internal/http"
	handler "github.com/ROKU24/Inventory-Management-Dashboard/internal/http/handlers"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/http/ratelimit"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/repo"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/store"
)

var (
	productRepo  *repo.ProductRepository
	filterRepo   *repo.FilterRepository
	currencyRepo *repo.CurrencyRepository
)

func init() {
	setupTestRepos()
}

// setupTestRepos rebuilds every repository on a fresh in-memory store, so
// each test starts from the seed dataset and default state.
func setupTestRepos() {
	ctx := context.Background()
	st := store.NewMemoryStore()

	productRepo = repo.NewProductRepository(ctx, st, nil)
	handler.SetProductRepo(productRepo)

	filterRepo = repo.NewFilterRepository(ctx, st, nil)
	handler.SetFilterRepo(filterRepo)

	currencyRepo = repo.NewCurrencyRepository(ctx, st, nil)
	handler.SetCurrencyRepo(currencyRepo)

	ratelimit.Reset()
}

func doJSON(r http.Handler, method, path string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func rawRequest(method, path, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	return req, httptest.NewRecorder()
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodPost, "/products", p)
}

func deleteProduct(r http.Handler, id int) *httptest.ResponseRecorder {
	return doJSON(r, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil)
}

func visiblePage(r http.Handler) (handler.ProductsPageResult, error) {
	w := doJSON(r, http.MethodGet, "/products/page", nil)
	var resp handler.ProductsPageResult
	if w.Code != http.StatusOK {
		return resp, fmt.Errorf("expected 200 OK, got %d", w.Code)
	}
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

func newRouter() http.Handler {
	return api.NewRouter()
}
