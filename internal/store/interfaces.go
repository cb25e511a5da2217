package store

import (
	"context"

	"github.com/dcastanera/possync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PendingSaleRepository is the durable queue of sales recorded while the
// server was unreachable. All methods are safe for concurrent use.
type PendingSaleRepository interface {
	// Append persists a new sale in pending state and returns its id.
	// A missing sale id is assigned locally; a missing creation time is
	// set to the current wall clock.
	Append(ctx context.Context, sale models.PendingSale) (string, error)

	// ListPending returns every sale still in pending state, in creation
	// order. The order is the submission order guaranteed to the server.
	ListPending(ctx context.Context) ([]models.PendingSale, error)

	// MarkSynced transitions the sale to synced state. Marking an already
	// synced or unknown id is a no-op, not an error, which makes the drain
	// loop safe to retry.
	MarkSynced(ctx context.Context, id string) error

	// CountPending returns the number of sales awaiting acknowledgment.
	CountPending(ctx context.Context) (int, error)

	// PurgeSynced deletes acknowledged sales and reports how many were
	// removed. Retention of synced records is a local policy decision; the
	// sync cycle itself never calls this.
	PurgeSynced(ctx context.Context) (int64, error)
}

// ProductFilter narrows ListProducts results. Zero values mean "no filter".
type ProductFilter struct {
	Category string
	Barcode  string
	Limit    uint64
}

// ProductCacheRepository is the local mirror of the server's product catalog.
// The mirror is replaced wholesale by catalog refills and is read-only for
// everything else.
type ProductCacheRepository interface {
	// ReplaceAll atomically swaps the entire cache for the given products
	// in a single transaction. Concurrent readers observe either the old
	// or the new cache, never a partial mix.
	ReplaceAll(ctx context.Context, products []models.CachedProduct) error

	// Count returns the number of cached products.
	Count(ctx context.Context) (int, error)

	// Get returns the cached product with the given server id, or
	// [ErrProductNotFound].
	Get(ctx context.Context, id int64) (models.CachedProduct, error)

	// ListProducts returns cached products matching the filter, ordered
	// by name.
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.CachedProduct, error)
}
