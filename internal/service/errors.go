// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package service

import "errors"

var (
	ErrInvalidSale     = errors.New("invalid sale")
	ErrEmptyCatalog    = errors.New("catalog download returned no products")
	ErrCatalogBusy     = errors.New("catalog load already in progress")
	ErrQueueUnreadable = errors.New("pending sale queue unreadable")
)

// Machine-readable reasons returned in [models.TriggerResult] when a sync
// request is gated instead of executed.
const (
	ReasonOfflineOrSyncing = "offline_or_syncing"
)
