package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dcastanera/possync/internal/adapter"
	"github.com/dcastanera/possync/internal/config"
	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/store"
	"github.com/dcastanera/possync/models"
)

type syncService struct {
	storages *store.Storages
	adapter  adapter.ServerAdapter
	logger   *logger.Logger

	pageSize    int
	concurrency int
}

func NewSyncService(storages *store.Storages, serverAdapter adapter.ServerAdapter, cfg config.ClientSync, logger *logger.Logger) SyncService {
	if cfg.PageSize <= 0 {
		cfg.PageSize = config.DefaultPageSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = config.DefaultConcurrency
	}

	return &syncService{
		storages:    storages,
		adapter:     serverAdapter,
		logger:      logger,
		pageSize:    cfg.PageSize,
		concurrency: cfg.Concurrency,
	}
}

func (s *syncService) SyncPendingSales(ctx context.Context) (models.SyncResult, error) {
	pending, err := s.storages.PendingSales.ListPending(ctx)
	if err != nil {
		return models.SyncResult{}, fmt.Errorf("%w: %w", ErrQueueUnreadable, err)
	}

	result := models.SyncResult{}

	// Sales are uploaded one at a time in creation order. A rejected sale
	// stays pending and the drain moves on to the next one, so a single bad
	// sale cannot wedge the queue.
	for _, sale := range pending {
		if ctx.Err() != nil {
			result.Errors = append(result.Errors, models.SaleSyncError{
				SaleID:  sale.ID,
				Message: ctx.Err().Error(),
			})
			continue
		}

		submission := models.SaleSubmission{
			Items:         sale.Items,
			PaymentMethod: sale.PaymentMethod,
			Observations:  offlineObservation(time.Now()),
		}

		if err = s.adapter.SubmitSale(ctx, submission); err != nil {
			s.logger.Warn().
				Str("func", "syncService.SyncPendingSales").
				Str("sale_id", sale.ID).
				Err(err).
				Msg("sale rejected by server, keeping it queued")
			result.Errors = append(result.Errors, models.SaleSyncError{SaleID: sale.ID, Message: err.Error()})
			continue
		}

		if err = s.storages.PendingSales.MarkSynced(ctx, sale.ID); err != nil {
			result.Errors = append(result.Errors, models.SaleSyncError{SaleID: sale.ID, Message: err.Error()})
			continue
		}

		result.SyncedCount++
	}

	result.Success = result.SyncedCount > 0 || len(result.Errors) == 0

	s.logger.Info().
		Str("func", "syncService.SyncPendingSales").
		Int("synced", result.SyncedCount).
		Int("failed", len(result.Errors)).
		Msg("pending sale drain finished")

	return result, nil
}

// offlineObservation annotates a resubmitted sale so server-side reports show
// it was captured offline and when it finally went through.
func offlineObservation(syncedAt time.Time) string {
	return fmt.Sprintf("Offline sale - synced at %s", syncedAt.Format("2006-01-02 15:04:05"))
}

// pageFetch is the outcome of one page download within a round.
type pageFetch struct {
	page models.ProductPage
	err  error
}

func (s *syncService) RefillCatalog(ctx context.Context, onProgress func(models.CatalogProgress)) (int, error) {
	var all []models.CachedProduct
	skip := 0

	for {
		results := make([]pageFetch, s.concurrency)

		var wg sync.WaitGroup
		for i := 0; i < s.concurrency; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				page, err := s.adapter.FetchProductPage(ctx, skip+i*s.pageSize, s.pageSize)
				results[i] = pageFetch{page: page, err: err}
			}(i)
		}
		wg.Wait()

		roundCount := 0
		anyHasMore := false

		// Pages are appended in request order so the catalog keeps the
		// server's ordering. A failed page contributes nothing and does not
		// extend the round.
		for i, r := range results {
			if r.err != nil {
				s.logger.Warn().
					Str("func", "syncService.RefillCatalog").
					Int("skip", skip+i*s.pageSize).
					Err(r.err).
					Msg("product page fetch failed")
				continue
			}
			all = append(all, r.page.Products...)
			roundCount += len(r.page.Products)
			if r.page.HasMore {
				anyHasMore = true
			}
		}

		// A round that yielded nothing ends the download without reporting
		// progress. The totals have not moved.
		if roundCount == 0 {
			break
		}

		// While more pages remain the total is only an estimate: everything
		// fetched so far plus at least one more page.
		estimatedTotal := len(all)
		if anyHasMore {
			estimatedTotal += s.pageSize
		}
		if onProgress != nil {
			onProgress(models.CatalogProgress{Current: len(all), Total: estimatedTotal})
		}

		if !anyHasMore || roundCount < s.concurrency*s.pageSize {
			break
		}
		skip += s.concurrency * s.pageSize
	}

	if len(all) == 0 {
		// An empty download must not wipe a working cache.
		return 0, ErrEmptyCatalog
	}

	if err := s.storages.ProductCache.ReplaceAll(ctx, all); err != nil {
		return 0, fmt.Errorf("replace product cache: %w", err)
	}

	if onProgress != nil {
		onProgress(models.CatalogProgress{Current: len(all), Total: len(all)})
	}

	s.logger.Info().
		Str("func", "syncService.RefillCatalog").
		Int("products", len(all)).
		Msg("product catalog refilled")

	return len(all), nil
}

func (s *syncService) PurgeSynced(ctx context.Context) (int64, error) {
	return s.storages.PendingSales.PurgeSynced(ctx)
}
