package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/store"
)

// FilterRepository owns the filter/sort/page state. Every mutation persists
// the full state.
type FilterRepository struct {
	store store.Store
	log   *slog.Logger
	state models.FilterState
}

// NewFilterRepository loads the persisted filter state, falling back to the
// defaults when the record is missing or unreadable. Loaded state is
// normalized, so legacy records using the out-of-stock search sentinel keep
// working.
func NewFilterRepository(ctx context.Context, st store.Store, log *slog.Logger) *FilterRepository {
	if log == nil {
		log = slog.Default()
	}
	r := &FilterRepository{store: st, log: log}
	r.state = r.load(ctx)
	return r
}

func (r *FilterRepository) load(ctx context.Context) models.FilterState {
	data, err := r.store.Get(ctx, store.KeyFilters)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.log.Warn("loading filters failed, using defaults", "error", err)
		}
		return models.DefaultFilterState()
	}
	var state models.FilterState
	if err := json.Unmarshal(data, &state); err != nil {
		r.log.Warn("stored filters unreadable, using defaults", "error", err)
		return models.DefaultFilterState()
	}
	return state.Normalize()
}

func (r *FilterRepository) persist(ctx context.Context) {
	data, err := json.Marshal(r.state)
	if err != nil {
		r.log.Warn("encoding filters failed", "error", err)
		return
	}
	if err := r.store.Set(ctx, store.KeyFilters, data); err != nil {
		r.log.Warn("persisting filters failed", "error", err)
	}
}

// State returns a copy of the current filter state.
func (r *FilterRepository) State() models.FilterState {
	state := r.state
	state.Categories = make([]string, len(r.state.Categories))
	copy(state.Categories, r.state.Categories)
	return state
}

// ToggleCategory adds the category to the filter set if absent and removes
// it otherwise. Resets the current page.
func (r *FilterRepository) ToggleCategory(ctx context.Context, category string) {
	for i, c := range r.state.Categories {
		if c == category {
			r.state.Categories = append(r.state.Categories[:i], r.state.Categories[i+1:]...)
			r.state.CurrentPage = 1
			r.persist(ctx)
			return
		}
	}
	r.state.Categories = append(r.state.Categories, category)
	r.state.CurrentPage = 1
	r.persist(ctx)
}

// SetInStockOnly sets the in-stock flag and resets the current page.
func (r *FilterRepository) SetInStockOnly(ctx context.Context, inStockOnly bool) {
	r.state.InStockOnly = inStockOnly
	r.state.CurrentPage = 1
	r.persist(ctx)
}

// SetSearch sets the search text and resets the current page. The legacy
// out-of-stock sentinel is accepted and switches the filter mode instead of
// being stored as text; any other value returns to normal mode.
func (r *FilterRepository) SetSearch(ctx context.Context, search string) {
	if search == models.OutOfStockSentinel {
		r.state.Search = ""
		r.state.Mode = models.ModeOutOfStock
	} else {
		r.state.Search = search
		r.state.Mode = models.ModeNormal
	}
	r.state.CurrentPage = 1
	r.persist(ctx)
}

// SetSortField flips the direction when the field is already active,
// otherwise selects the field ascending. The current page is kept.
func (r *FilterRepository) SetSortField(ctx context.Context, field models.SortField) {
	if r.state.SortField == field {
		if r.state.SortDirection == models.SortAsc {
			r.state.SortDirection = models.SortDesc
		} else {
			r.state.SortDirection = models.SortAsc
		}
	} else {
		r.state.SortField = field
		r.state.SortDirection = models.SortAsc
	}
	r.persist(ctx)
}

// SetCurrentPage stores the page number as given; clamping against the
// visible set is the caller's job.
func (r *FilterRepository) SetCurrentPage(ctx context.Context, page int) {
	r.state.CurrentPage = page
	r.persist(ctx)
}

// SetItemsPerPage sets the page size and resets the current page.
func (r *FilterRepository) SetItemsPerPage(ctx context.Context, n int) {
	r.state.ItemsPerPage = n
	r.state.CurrentPage = 1
	r.persist(ctx)
}

// ResetFilters clears categories, the in-stock flag, the search text and the
// filter mode, and resets the current page. Sort field, direction and page
// size are kept.
func (r *FilterRepository) ResetFilters(ctx context.Context) {
	r.state.Categories = []string{}
	r.state.InStockOnly = false
	r.state.Search = ""
	r.state.Mode = models.ModeNormal
	r.state.CurrentPage = 1
	r.persist(ctx)
}

// SetOutOfStockMode clears all filters and switches to the dedicated
// out-of-stock view.
func (r *FilterRepository) SetOutOfStockMode(ctx context.Context) {
	r.state.Categories = []string{}
	r.state.InStockOnly = false
	r.state.Search = ""
	r.state.Mode = models.ModeOutOfStock
	r.state.CurrentPage = 1
	r.persist(ctx)
}
