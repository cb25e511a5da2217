package service

import (
	"github.com/dcastanera/possync/internal/adapter"
	"github.com/dcastanera/possync/internal/config"
	"github.com/dcastanera/possync/internal/connectivity"
	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/internal/session"
	"github.com/dcastanera/possync/internal/store"
)

type Services struct {
	SaleService SaleService
	SyncService SyncService
	Coordinator Coordinator
}

func NewServices(
	storages *store.Storages,
	serverAdapter adapter.ServerAdapter,
	detector connectivity.Detector,
	sess session.Session,
	cfg config.ClientSync,
	logger *logger.Logger,
) *Services {
	syncSvc := NewSyncService(storages, serverAdapter, cfg, logger)

	return &Services{
		SaleService: NewSaleService(storages, logger),
		SyncService: syncSvc,
		Coordinator: NewCoordinator(syncSvc, detector, storages, sess, cfg, logger),
	}
}
