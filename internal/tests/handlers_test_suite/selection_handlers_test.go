package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"reflect"
	"testing"

	handler "github.com/ROKU24/Inventory-Management-Dashboard/internal/http/handlers"
)

func decodeSelection(t *testing.T, body *json.Decoder) []int {
	t.Helper()
	var resp handler.SelectionResult
	if err := body.Decode(&resp); err != nil {
		t.Fatalf("error decoding selection: %v", err)
	}
	return resp.IDs
}

func TestToggleSelectionHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	w := doJSON(r, http.MethodPost, "/selection/3", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); !reflect.DeepEqual(ids, []int{3}) {
		t.Errorf("expected [3], got %v", ids)
	}

	w = doJSON(r, http.MethodPost, "/selection/1", nil)
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); !reflect.DeepEqual(ids, []int{1, 3}) {
		t.Errorf("expected sorted [1 3], got %v", ids)
	}

	// toggling an id out again
	w = doJSON(r, http.MethodPost, "/selection/3", nil)
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); !reflect.DeepEqual(ids, []int{1}) {
		t.Errorf("expected [1], got %v", ids)
	}

	if w := doJSON(r, http.MethodPost, "/selection/abc", nil); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestToggleSelectionHandler_UnknownID(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	if w := doJSON(r, http.MethodPost, "/selection/9999", nil); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for an id without a product, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/selection", nil)
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); len(ids) != 0 {
		t.Errorf("expected no ghost ids in the selection, got %v", ids)
	}
}

func TestReplaceSelectionHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	doJSON(r, http.MethodPost, "/selection/9", nil)

	w := doJSON(r, http.MethodPut, "/selection", handler.SelectionRequest{IDs: []int{2, 4, 6}})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); !reflect.DeepEqual(ids, []int{2, 4, 6}) {
		t.Errorf("expected the selection replaced wholesale, got %v", ids)
	}

	// ids without a product never make it into the selection
	w = doJSON(r, http.MethodPut, "/selection", handler.SelectionRequest{IDs: []int{3, 9999}})
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); !reflect.DeepEqual(ids, []int{3}) {
		t.Errorf("expected unknown ids dropped, got %v", ids)
	}
}

func TestClearSelectionHandler(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	doJSON(r, http.MethodPut, "/selection", handler.SelectionRequest{IDs: []int{1, 2}})

	if w := doJSON(r, http.MethodDelete, "/selection", nil); w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w := doJSON(r, http.MethodGet, "/selection", nil)
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); len(ids) != 0 {
		t.Errorf("expected an empty selection, got %v", ids)
	}
}

func TestDeletePrunesSelection(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	doJSON(r, http.MethodPut, "/selection", handler.SelectionRequest{IDs: []int{1, 2}})
	deleteProduct(r, 1)

	w := doJSON(r, http.MethodGet, "/selection", nil)
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); !reflect.DeepEqual(ids, []int{2}) {
		t.Errorf("expected the deleted id pruned, got %v", ids)
	}
}

func TestBulkDeleteClearsSelection(t *testing.T) {
	t.Cleanup(setupTestRepos)
	r := newRouter()

	doJSON(r, http.MethodPut, "/selection", handler.SelectionRequest{IDs: []int{1, 2, 5}})
	doJSON(r, http.MethodPost, "/products/bulk-delete", handler.BulkDeleteRequest{IDs: []int{1, 2}})

	w := doJSON(r, http.MethodGet, "/selection", nil)
	if ids := decodeSelection(t, json.NewDecoder(w.Body)); len(ids) != 0 {
		t.Errorf("expected the selection cleared after a bulk delete, got %v", ids)
	}
}
