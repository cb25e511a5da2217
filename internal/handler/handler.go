// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

// Package handler implements the devserver's HTTP API: the paginated product
// catalog and the sale intake endpoint the client syncs against.
package handler

import (
	"github.com/dcastanera/possync/internal/logger"
	"github.com/dcastanera/possync/models"
)

type Handler struct {
	catalog []models.CachedProduct

	logger *logger.Logger
}

func NewHandler(catalog []models.CachedProduct, logger *logger.Logger) *Handler {
	logger.Info().Int("products", len(catalog)).Msg("http handler created")
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}
