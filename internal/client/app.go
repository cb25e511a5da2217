// Package client assembles the point-of-sale offline-sync runtime: storage,
// transport, connectivity detection, sync coordination, and the terminal
// dashboard.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/dcastanera/possync/internal/adapter"
	"github.com/dcastanera/possync/internal/config"
	"github.com/dcastanera/possync/internal/connectivity"
	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/service"
	"github.com/dcastanera/possync/internal/session"
	"github.com/dcastanera/possync/internal/store"
	"github.com/dcastanera/possync/internal/tui"
	"github.com/dcastanera/possync/internal/workers"
)

type App struct {
	services   *service.Services
	background *workers.Workers
	ui         *tui.TUI
	logger     *logger.Logger
}

// NewApp wires the full client from configuration: the SQLite-backed local
// store, the HTTP adapter, the connectivity detector probing through that
// adapter, and the services on top of them.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	serverAdapter := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	sess := session.Session{}
	if cfg.App.SessionToken != "" {
		sess, err = session.FromToken(cfg.App.SessionToken)
		if err != nil {
			return nil, fmt.Errorf("parse session token: %w", err)
		}
		serverAdapter.SetToken(cfg.App.SessionToken)
	}

	detector := connectivity.NewDetector(serverAdapter.Ping, cfg.Sync.ProbeInterval, log)
	services := service.NewServices(storages, serverAdapter, detector, sess, cfg.Sync, log)

	return &App{
		services:   services,
		background: workers.New(detector, services.Coordinator),
		ui:         tui.New(services, log),
		logger:     log,
	}, nil
}

// Run starts the background machinery and blocks on the dashboard until the
// user quits.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.background.Start(ctx)
	defer a.background.Stop()

	// Warm the catalog cache in the background so the dashboard appears
	// immediately. A cold start with no connectivity simply leaves the cache
	// empty until the first successful refill.
	go func() {
		if err := a.services.Coordinator.PrecacheCatalog(ctx); err != nil && !errors.Is(err, context.Canceled) {
			a.logger.Warn().
				Str("func", "App.Run").
				Err(err).
				Msg("catalog precache failed")
		}
	}()

	if err := a.ui.Run(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("dashboard: %w", err)
	}

	return nil
}
