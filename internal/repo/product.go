// Package repo holds the dashboard's state containers: the product list with
// its selection set, the filter/sort/page state, and the display currency.
// Each container loads itself from a store.Store at startup and persists
// after every mutation; a failed write is logged and the in-memory state
// stays authoritative for the session.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sort"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/store"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository owns the authoritative product list and the set of
// currently selected product ids. The selection is session-only and never
// persisted.
type ProductRepository struct {
	store    store.Store
	log      *slog.Logger
	products []models.Product
	selected map[int]struct{}
}

// NewProductRepository loads the persisted product list, falling back to the
// seed dataset when the record is missing or unreadable.
func NewProductRepository(ctx context.Context, st store.Store, log *slog.Logger) *ProductRepository {
	if log == nil {
		log = slog.Default()
	}
	r := &ProductRepository{
		store:    st,
		log:      log,
		selected: make(map[int]struct{}),
	}
	r.products = r.load(ctx)
	return r
}

func (r *ProductRepository) load(ctx context.Context) []models.Product {
	data, err := r.store.Get(ctx, store.KeyProducts)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.log.Warn("loading products failed, using defaults", "error", err)
		}
		return DefaultProducts()
	}
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.log.Warn("stored products unreadable, using defaults", "error", err)
		return DefaultProducts()
	}
	return products
}

func (r *ProductRepository) persist(ctx context.Context) {
	data, err := json.Marshal(r.products)
	if err != nil {
		r.log.Warn("encoding products failed", "error", err)
		return
	}
	if err := r.store.Set(ctx, store.KeyProducts, data); err != nil {
		r.log.Warn("persisting products failed", "error", err)
	}
}

// All returns a copy of the product list in storage order.
func (r *ProductRepository) All() []models.Product {
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out
}

// GetByID returns the product with the given id.
func (r *ProductRepository) GetByID(id int) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Create assigns the next id (one above the current maximum, 1 when the list
// is empty), appends the product and persists. Field validation is the
// caller's responsibility.
func (r *ProductRepository) Create(ctx context.Context, draft models.Product) models.Product {
	maxID := 0
	for _, p := range r.products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	draft.ID = maxID + 1
	r.products = append(r.products, draft)
	r.persist(ctx)
	return draft
}

// Update replaces the product with a matching id in place, preserving its
// position. Unknown ids are a silent no-op.
func (r *ProductRepository) Update(ctx context.Context, product models.Product) {
	for i, p := range r.products {
		if p.ID == product.ID {
			r.products[i] = product
			r.persist(ctx)
			return
		}
	}
}

// Delete removes the product with the given id and prunes it from the
// selection. Deleting an unknown id changes nothing.
func (r *ProductRepository) Delete(ctx context.Context, id int) {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			delete(r.selected, id)
			r.persist(ctx)
			return
		}
	}
}

// DeleteMany removes all matching products in one pass and clears the whole
// selection.
func (r *ProductRepository) DeleteMany(ctx context.Context, ids []int) {
	toDelete := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		toDelete[id] = struct{}{}
	}
	kept := r.products[:0]
	for _, p := range r.products {
		if _, ok := toDelete[p.ID]; !ok {
			kept = append(kept, p)
		}
	}
	r.products = kept
	r.selected = make(map[int]struct{})
	r.persist(ctx)
}

// ResetToDefault replaces the list with the seed dataset and clears the
// selection, like any other bulk list replacement.
func (r *ProductRepository) ResetToDefault(ctx context.Context) {
	r.products = DefaultProducts()
	r.selected = make(map[int]struct{})
	r.persist(ctx)
}

// ToggleSelect adds the id to the selection if absent, removes it otherwise.
// Ids without a matching product are never added; the selection stays a
// subset of the product list.
func (r *ProductRepository) ToggleSelect(id int) {
	if _, ok := r.selected[id]; ok {
		delete(r.selected, id)
		return
	}
	if _, err := r.GetByID(id); err != nil {
		return
	}
	r.selected[id] = struct{}{}
}

// SelectAll replaces the selection wholesale with the given ids, dropping
// any id without a matching product.
func (r *ProductRepository) SelectAll(ids []int) {
	r.selected = make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, err := r.GetByID(id); err != nil {
			continue
		}
		r.selected[id] = struct{}{}
	}
}

// ClearSelection empties the selection.
func (r *ProductRepository) ClearSelection() {
	r.selected = make(map[int]struct{})
}

// Selected returns the selected ids in ascending order.
func (r *ProductRepository) Selected() []int {
	out := make([]int, 0, len(r.selected))
	for id := range r.selected {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
