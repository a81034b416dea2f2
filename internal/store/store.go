// Package store persists dashboard state as opaque serialized records under
// well-known keys. Consumers fall back to built-in defaults when a key is
// missing or its payload cannot be decoded.
package store

import (
	"context"
	"errors"
)

// Keys under which the three independent state records are persisted. They
// match the record names used by earlier versions of the dashboard, so
// existing data keeps loading.
const (
	KeyProducts = "inventoryProducts"
	KeyFilters  = "inventoryFilters"
	KeyCurrency = "inventoryCurrency"
)

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is a key-value persistence adapter.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
