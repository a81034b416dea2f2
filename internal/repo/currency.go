package repo

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/ROKU24/Inventory-Management-Dashboard/internal/models"
	"github.com/ROKU24/Inventory-Management-Dashboard/internal/store"
)

// CurrencyRepository owns the active display currency. Its lifecycle is
// independent of products and filters.
type CurrencyRepository struct {
	store   store.Store
	log     *slog.Logger
	current models.Currency
}

// NewCurrencyRepository loads the persisted currency, falling back to the
// default when the record is missing or unreadable.
func NewCurrencyRepository(ctx context.Context, st store.Store, log *slog.Logger) *CurrencyRepository {
	if log == nil {
		log = slog.Default()
	}
	r := &CurrencyRepository{store: st, log: log}
	r.current = r.load(ctx)
	return r
}

func (r *CurrencyRepository) load(ctx context.Context) models.Currency {
	data, err := r.store.Get(ctx, store.KeyCurrency)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.log.Warn("loading currency failed, using default", "error", err)
		}
		return models.DefaultCurrency()
	}
	var c models.Currency
	if err := json.Unmarshal(data, &c); err != nil || c.Code == "" {
		r.log.Warn("stored currency unreadable, using default", "error", err)
		return models.DefaultCurrency()
	}
	return c
}

// Current returns the active display currency.
func (r *CurrencyRepository) Current() models.Currency {
	return r.current
}

// Set replaces the active currency atomically and persists it. Validation
// against the catalog is the caller's responsibility.
func (r *CurrencyRepository) Set(ctx context.Context, c models.Currency) {
	r.current = c
	data, err := json.Marshal(c)
	if err != nil {
		r.log.Warn("encoding currency failed", "error", err)
		return
	}
	if err := r.store.Set(ctx, store.KeyCurrency, data); err != nil {
		r.log.Warn("persisting currency failed", "error", err)
	}
}
