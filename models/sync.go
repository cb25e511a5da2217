// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package models

import "time"

// SaleSyncError records the failure of a single sale submission during a
// drain cycle. The sale stays pending and is retried on the next cycle.
type SaleSyncError struct {
	SaleID  string `json:"sale_id"`
	Message string `json:"message"`
}

// SyncResult is the outcome of one pending-sale drain cycle.
//
// Success is true when there was nothing to sync, or when at least one sale
// went through. A cycle with partial failures still counts as success: the
// remaining sales are simply retried on the next cycle.
type SyncResult struct {
	Success     bool            `json:"success"`
	SyncedCount int             `json:"synced_count"`
	Errors      []SaleSyncError `json:"errors,omitempty"`
}

// CatalogProgress reports how far a catalog refill has advanced. Total is an
// estimate until the terminating round, where it becomes exact.
type CatalogProgress struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// ConnectivitySnapshot is the detector's current view of the network.
type ConnectivitySnapshot struct {
	IsOnline         bool      `json:"is_online"`
	LastTransitionAt time.Time `json:"last_transition_at"`
}

// SessionState is the coordinator's process-wide state as exposed to the UI
// layer. Values are copies; mutation happens only inside the coordinator.
type SessionState struct {
	IsOnline         bool            `json:"is_online"`
	IsSyncing        bool            `json:"is_syncing"`
	PendingCount     int             `json:"pending_count"`
	LastSyncTime     *time.Time      `json:"last_sync_time,omitempty"`
	LastError        string          `json:"last_error,omitempty"`
	IsLoadingCatalog bool            `json:"is_loading_catalog"`
	CatalogProgress  CatalogProgress `json:"catalog_progress"`
}

// TriggerResult is returned by the coordinator's manual entry points.
type TriggerResult struct {
	Success bool        `json:"success"`
	Reason  string      `json:"reason,omitempty"`
	Sync    *SyncResult `json:"sync,omitempty"`
}

// SyncStats summarises the local offline state for dashboards.
type SyncStats struct {
	PendingSales   int        `json:"pending_sales"`
	CachedProducts int        `json:"cached_products"`
	LastSyncTime   *time.Time `json:"last_sync_time,omitempty"`
}
