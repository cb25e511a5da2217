package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/models"
)

type pendingSaleRepository struct {
	*DB
	logger *logger.Logger
}

func NewPendingSaleRepository(db *DB, logger *logger.Logger) PendingSaleRepository {
	return &pendingSaleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *pendingSaleRepository) Append(ctx context.Context, sale models.PendingSale) (string, error) {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	if sale.CreatedAt.IsZero() {
		sale.CreatedAt = time.Now()
	}
	if sale.SyncState == "" {
		sale.SyncState = models.SyncStatePending
	}

	items, err := json.Marshal(sale.Items)
	if err != nil {
		return "", fmt.Errorf("encode sale items (id=%s): %w", sale.ID, err)
	}

	_, err = r.DB.ExecContext(ctx, appendPendingSale,
		sale.ID,
		string(items),
		string(sale.PaymentMethod),
		sale.CreatedAt,
		string(sale.SyncState),
	)
	if err != nil {
		r.logger.Err(err).
			Str("func", "pendingSaleRepository.Append").
			Str("sale_id", sale.ID).
			Msg("failed to insert pending sale")
		return "", fmt.Errorf("%w: append pending sale (id=%s): %w", ErrStorageUnavailable, sale.ID, err)
	}

	return sale.ID, nil
}

func (r *pendingSaleRepository) ListPending(ctx context.Context) ([]models.PendingSale, error) {
	rows, err := r.DB.QueryContext(ctx, listPendingSales)
	if err != nil {
		r.logger.Err(err).
			Str("func", "pendingSaleRepository.ListPending").
			Msg("failed to query pending sales")
		return nil, fmt.Errorf("%w: query pending sales: %w", ErrStorageUnavailable, err)
	}
	defer rows.Close()

	var sales []models.PendingSale

	for rows.Next() {
		var (
			sale          models.PendingSale
			rawItems      string
			paymentMethod string
			syncState     string
		)

		scanErr := rows.Scan(
			&sale.ID,
			&rawItems,
			&paymentMethod,
			&sale.CreatedAt,
			&syncState,
		)
		if scanErr != nil {
			r.logger.Err(scanErr).
				Str("func", "pendingSaleRepository.ListPending").
				Msg("failed to scan pending sale row")
			return nil, fmt.Errorf("failed to scan pending sale row: %w", scanErr)
		}

		if err = json.Unmarshal([]byte(rawItems), &sale.Items); err != nil {
			return nil, fmt.Errorf("decode sale items (id=%s): %w", sale.ID, err)
		}
		sale.PaymentMethod = models.PaymentMethod(paymentMethod)
		sale.SyncState = models.SyncState(syncState)

		sales = append(sales, sale)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		r.logger.Err(rowsErr).
			Str("func", "pendingSaleRepository.ListPending").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: iterating pending sale rows: %w", ErrStorageUnavailable, rowsErr)
	}

	return sales, nil
}

func (r *pendingSaleRepository) MarkSynced(ctx context.Context, id string) error {
	// Zero affected rows means the id is unknown or already synced; both are
	// valid no-ops so the drain loop can safely retry.
	_, err := r.DB.ExecContext(ctx, markSaleSynced, id)
	if err != nil {
		r.logger.Err(err).
			Str("func", "pendingSaleRepository.MarkSynced").
			Str("sale_id", id).
			Msg("failed to mark sale as synced")
		return fmt.Errorf("%w: mark sale synced (id=%s): %w", ErrStorageUnavailable, id, err)
	}

	return nil
}

func (r *pendingSaleRepository) CountPending(ctx context.Context) (int, error) {
	var count int
	row := r.DB.QueryRowContext(ctx, countPendingSales)
	if err := row.Scan(&count); err != nil {
		r.logger.Err(err).
			Str("func", "pendingSaleRepository.CountPending").
			Msg("failed to count pending sales")
		return 0, fmt.Errorf("%w: count pending sales: %w", ErrStorageUnavailable, err)
	}

	return count, nil
}

func (r *pendingSaleRepository) PurgeSynced(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx, purgeSyncedSales)
	if err != nil {
		r.logger.Err(err).
			Str("func", "pendingSaleRepository.PurgeSynced").
			Msg("failed to purge synced sales")
		return 0, fmt.Errorf("%w: purge synced sales: %w", ErrStorageUnavailable, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge synced sales rows affected: %w", err)
	}

	return purged, nil
}
