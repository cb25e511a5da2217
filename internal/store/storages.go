package store

import (
	"context"
	"fmt"

	"github.com/dcastanera/possync/internal/config"
	"github.com/dcastanera/possync/internal/logger"
)

// Storages groups all client-side repositories into a single value that can
// be passed around the service layer.
type Storages struct {
	// PendingSales is the durable queue of offline-recorded sales.
	PendingSales PendingSaleRepository

	// ProductCache is the local mirror of the server's product catalog.
	ProductCache ProductCacheRepository
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error (wrapping [ErrStorageUnavailable]) if the database cannot
// be opened or migration fails.
func NewStorages(cfg config.ClientStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("opening local offline store...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("%w: migration failed: %w", ErrStorageUnavailable, err)
	}

	return &Storages{
		PendingSales: NewPendingSaleRepository(db, logger),
		ProductCache: NewProductCacheRepository(db, logger),
	}, nil
}
