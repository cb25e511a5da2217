// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package config

import "time"

// StructuredConfig is the top-level configuration container for possync.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the session token.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote sales/catalog service address and timeouts.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds configuration for the embedded local database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds offline-sync policy knobs (page size, concurrency,
	// debounce window, refresh intervals).
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// SessionToken is the JWT issued to the cashier at login. The current
	// user role is read from its claims; automatic sync and catalog
	// pre-cache are only enabled for the cashier role.
	// Env: APP_SESSION_TOKEN
	SessionToken string `env:"SESSION_TOKEN"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// BaseURL is the base URL of the remote sales service
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s"). A timed-out sale submission is treated as a failed
	// sale; a timed-out page fetch is treated as a failed page.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local storage backend settings.
type Storage struct {
	// DB holds the embedded database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the embedded SQLite database.
type DB struct {
	// DSN is the SQLite file path used for the local offline store
	// (e.g. "possync.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the offline-sync policy knobs. Zero values are replaced with
// the documented defaults by [GetClientConfig].
type Sync struct {
	// PageSize is the number of products requested per catalog page.
	// Env: SYNC_PAGE_SIZE (default 500)
	PageSize int `env:"PAGE_SIZE"`

	// Concurrency is the number of catalog page requests in flight per
	// round. Env: SYNC_CONCURRENCY (default 3)
	Concurrency int `env:"CONCURRENCY"`

	// DebounceWindow is how long the coordinator waits after an
	// offline-to-online transition before starting a sync, so transient
	// connectivity flaps are ignored.
	// Env: SYNC_DEBOUNCE_WINDOW (default 3s)
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`

	// PendingRefreshInterval is how often the coordinator re-derives the
	// pending-sale count for the UI.
	// Env: SYNC_PENDING_REFRESH_INTERVAL (default 10s)
	PendingRefreshInterval time.Duration `env:"PENDING_REFRESH_INTERVAL"`

	// ProbeInterval is how often the connectivity detector probes the
	// remote service. Env: SYNC_PROBE_INTERVAL (default 5s)
	ProbeInterval time.Duration `env:"PROBE_INTERVAL"`
}

// GetStructuredConfig loads and merges the possync configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
