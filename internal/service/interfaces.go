// Package service implements the offline-sync core: recording sales while the
// backend is unreachable, draining them once connectivity returns, and keeping
// the local product catalog warm.
package service

import (
	"context"

	"github.com/dcastanera/possync/internal/store"
	"github.com/dcastanera/possync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SaleService records sales into the local queue regardless of connectivity.
type SaleService interface {
	// RecordSale validates and appends a sale to the durable local queue in
	// the pending state, returning the locally assigned sale id. The sale is
	// uploaded later by SyncService.
	RecordSale(ctx context.Context, sale models.PendingSale) (string, error)

	// LookupProduct returns a product from the local catalog cache.
	LookupProduct(ctx context.Context, id int64) (models.CachedProduct, error)

	// SearchProducts lists cached products matching the filter, ordered by
	// name.
	SearchProducts(ctx context.Context, filter store.ProductFilter) ([]models.CachedProduct, error)
}

// SyncService moves queued data between the local store and the backend.
type SyncService interface {
	// SyncPendingSales uploads queued sales one at a time in creation order.
	// Sales accepted by the server are marked synced locally; sales the
	// server rejects stay pending and are reported in the result's Errors.
	// The returned error is non-nil only when the local queue itself cannot
	// be read.
	SyncPendingSales(ctx context.Context) (models.SyncResult, error)

	// RefillCatalog downloads the full product catalog in concurrent page
	// rounds and atomically replaces the local cache with it. onProgress, if
	// non-nil, is invoked after every round with the running count and an
	// estimated total, and once more with exact figures after the cache has
	// been replaced. Returns the number of products cached.
	//
	// An empty download is an error and leaves the existing cache untouched.
	RefillCatalog(ctx context.Context, onProgress func(models.CatalogProgress)) (int, error)

	// PurgeSynced deletes sales that have already been uploaded, returning
	// the number of rows removed.
	PurgeSynced(ctx context.Context) (int64, error)
}

// Coordinator owns the background machinery around SyncService: connectivity
// watching, debounced automatic sync, and the periodically refreshed session
// state consumed by the UI.
type Coordinator interface {
	// Start launches the connectivity watcher, the debounced auto-sync
	// reaction, and the pending-count refresh loop. It stops any previously
	// running loops first.
	Start(ctx context.Context)

	// Stop shuts down all background loops and blocks until they have
	// exited.
	Stop()

	// TriggerSync runs one sync cycle if the backend is reachable and no
	// cycle is already in flight. When gated it returns a result with
	// Success=false and a machine-readable Reason instead of queueing.
	TriggerSync(ctx context.Context) models.TriggerResult

	// PrecacheCatalog fills the product cache if it is empty. A populated
	// cache makes this a no-op, so it is cheap to call on every login.
	PrecacheCatalog(ctx context.Context) error

	// ForceFullSync drains the sale queue and unconditionally re-downloads
	// the catalog, even if the cache is already populated.
	ForceFullSync(ctx context.Context) models.TriggerResult

	// State returns a copy of the current session state.
	State() models.SessionState

	// HasPendingSync reports whether any sales are still queued for upload.
	HasPendingSync(ctx context.Context) (bool, error)

	// Stats returns queue and cache counters for diagnostics.
	Stats(ctx context.Context) (models.SyncStats, error)
}
