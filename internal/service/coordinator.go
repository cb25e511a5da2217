package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dcastanera/possync/internal/config"
	"github.com/dcastanera/possync/internal/connectivity"
	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/session"
	"github.com/dcastanera/possync/internal/store"
	"github.com/dcastanera/possync/models"
)

type coordinator struct {
	syncService SyncService
	detector    connectivity.Detector
	storages    *store.Storages
	session     session.Session
	logger      *logger.Logger

	debounceWindow  time.Duration
	refreshInterval time.Duration

	mu               sync.Mutex
	state            models.SessionState
	isSyncing        bool
	isLoadingCatalog bool
	debounceTimer    *time.Timer

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewCoordinator(
	syncService SyncService,
	detector connectivity.Detector,
	storages *store.Storages,
	sess session.Session,
	cfg config.ClientSync,
	logger *logger.Logger,
) Coordinator {
	if cfg.DebounceWindow <= 0 {
		cfg.DebounceWindow = config.DefaultDebounceWindow
	}
	if cfg.PendingRefreshInterval <= 0 {
		cfg.PendingRefreshInterval = config.DefaultPendingRefreshInterval
	}

	return &coordinator{
		syncService:     syncService,
		detector:        detector,
		storages:        storages,
		session:         sess,
		logger:          logger,
		debounceWindow:  cfg.DebounceWindow,
		refreshInterval: cfg.PendingRefreshInterval,
	}
}

func (c *coordinator) Start(ctx context.Context) {
	c.Stop()

	c.runMu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.runMu.Unlock()

	// The pending counter only matters for the role that records offline
	// sales; other roles watch connectivity but never own a queue.
	if c.session.CanSync() {
		c.refreshPendingCount(loopCtx)
	}

	transitions, unsubscribe := c.detector.Subscribe()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer unsubscribe()
		c.watchConnectivity(loopCtx, transitions)
	}()

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.refreshLoop(loopCtx)
	}()
}

func (c *coordinator) Stop() {
	c.runMu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.runMu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()

	c.mu.Lock()
	if c.debounceTimer != nil {
		c.debounceTimer.Stop()
		c.debounceTimer = nil
	}
	c.mu.Unlock()
}

// watchConnectivity reacts to detector transitions. Regaining connectivity
// arms a debounce timer rather than syncing immediately, so a flapping link
// produces at most one sync per stable window. Going offline disarms any
// pending timer.
func (c *coordinator) watchConnectivity(ctx context.Context, transitions <-chan models.ConnectivitySnapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-transitions:
			if !ok {
				return
			}

			c.mu.Lock()
			c.state.IsOnline = snapshot.IsOnline

			if !snapshot.IsOnline {
				if c.debounceTimer != nil {
					c.debounceTimer.Stop()
					c.debounceTimer = nil
				}
				c.mu.Unlock()
				continue
			}

			if !c.session.CanSync() {
				c.mu.Unlock()
				continue
			}

			if c.debounceTimer != nil {
				c.debounceTimer.Reset(c.debounceWindow)
				c.mu.Unlock()
				continue
			}

			c.debounceTimer = time.AfterFunc(c.debounceWindow, func() {
				c.mu.Lock()
				c.debounceTimer = nil
				c.mu.Unlock()

				if ctx.Err() != nil {
					return
				}
				c.logger.Info().
					Str("func", "coordinator.watchConnectivity").
					Msg("connectivity stable, starting automatic sync")
				c.TriggerSync(ctx)

				// Reconnecting with an empty product mirror also warms it.
				if err := c.PrecacheCatalog(ctx); err != nil && !errors.Is(err, ErrCatalogBusy) {
					c.logger.Warn().
						Str("func", "coordinator.watchConnectivity").
						Err(err).
						Msg("catalog precache after reconnect failed")
				}
			})
			c.mu.Unlock()
		}
	}
}

func (c *coordinator) refreshLoop(ctx context.Context) {
	t := time.NewTicker(c.refreshInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if c.session.CanSync() {
				c.refreshPendingCount(ctx)
			}
		}
	}
}

func (c *coordinator) refreshPendingCount(ctx context.Context) {
	count, err := c.storages.PendingSales.CountPending(ctx)
	if err != nil {
		c.logger.Warn().
			Str("func", "coordinator.refreshPendingCount").
			Err(err).
			Msg("failed to refresh pending sale count")
		return
	}

	c.mu.Lock()
	c.state.PendingCount = count
	c.mu.Unlock()
}

func (c *coordinator) TriggerSync(ctx context.Context) models.TriggerResult {
	c.mu.Lock()
	if !c.detector.IsOnline() || c.isSyncing {
		c.mu.Unlock()
		return models.TriggerResult{Success: false, Reason: ReasonOfflineOrSyncing}
	}
	c.isSyncing = true
	c.state.IsSyncing = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.isSyncing = false
		c.state.IsSyncing = false
		c.mu.Unlock()
	}()

	result, err := c.syncService.SyncPendingSales(ctx)
	if err != nil {
		c.mu.Lock()
		c.state.LastError = err.Error()
		c.mu.Unlock()
		return models.TriggerResult{Success: false, Reason: "sync_failed", Sync: &result}
	}

	now := time.Now()
	c.mu.Lock()
	if result.Success {
		c.state.LastSyncTime = &now
		c.state.LastError = ""
	} else if len(result.Errors) > 0 {
		c.state.LastError = result.Errors[0].Message
	}
	c.mu.Unlock()

	c.refreshPendingCount(ctx)

	return models.TriggerResult{Success: result.Success, Sync: &result}
}

func (c *coordinator) PrecacheCatalog(ctx context.Context) error {
	// Pre-caching is a cashier convenience and needs the backend reachable;
	// other roles and offline sessions skip it quietly.
	if !c.session.CanSync() || !c.detector.IsOnline() {
		return nil
	}

	count, err := c.storages.ProductCache.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return c.loadCatalog(ctx)
}

func (c *coordinator) ForceFullSync(ctx context.Context) models.TriggerResult {
	result := c.TriggerSync(ctx)

	if err := c.loadCatalog(ctx); err != nil {
		c.mu.Lock()
		c.state.LastError = err.Error()
		c.mu.Unlock()

		if result.Success {
			result = models.TriggerResult{Success: false, Reason: "catalog_refresh_failed", Sync: result.Sync}
		}
	}

	return result
}

// loadCatalog runs a single catalog refill, publishing download progress to
// the session state. Concurrent calls beyond the first return ErrCatalogBusy.
func (c *coordinator) loadCatalog(ctx context.Context) error {
	c.mu.Lock()
	if c.isLoadingCatalog {
		c.mu.Unlock()
		return ErrCatalogBusy
	}
	c.isLoadingCatalog = true
	c.state.IsLoadingCatalog = true
	c.state.CatalogProgress = models.CatalogProgress{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.isLoadingCatalog = false
		c.state.IsLoadingCatalog = false
		c.mu.Unlock()
	}()

	_, err := c.syncService.RefillCatalog(ctx, func(progress models.CatalogProgress) {
		c.mu.Lock()
		c.state.CatalogProgress = progress
		c.mu.Unlock()
	})

	return err
}

func (c *coordinator) State() models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.state
	state.IsOnline = c.detector.IsOnline()
	return state
}

func (c *coordinator) HasPendingSync(ctx context.Context) (bool, error) {
	count, err := c.storages.PendingSales.CountPending(ctx)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *coordinator) Stats(ctx context.Context) (models.SyncStats, error) {
	pending, err := c.storages.PendingSales.CountPending(ctx)
	if err != nil {
		return models.SyncStats{}, err
	}

	products, err := c.storages.ProductCache.Count(ctx)
	if err != nil {
		return models.SyncStats{}, err
	}

	c.mu.Lock()
	lastSync := c.state.LastSyncTime
	c.mu.Unlock()

	return models.SyncStats{
		PendingSales:   pending,
		CachedProducts: products,
		LastSyncTime:   lastSync,
	}, nil
}
