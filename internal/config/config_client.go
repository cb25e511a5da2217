package config

import (
	"fmt"
	"time"
)

// Offline-sync policy defaults applied when the corresponding knob is left
// unset by every configuration source.
const (
	DefaultPageSize               = 500
	DefaultConcurrency            = 3
	DefaultRequestTimeout         = 15 * time.Second
	DefaultDebounceWindow         = 3 * time.Second
	DefaultPendingRefreshInterval = 10 * time.Second
	DefaultProbeInterval          = 5 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SessionToken is the JWT carrying the current user's role claim.
	SessionToken string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the remote sales service base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync contains the resolved offline-sync policy.
type ClientSync struct {
	PageSize               int
	Concurrency            int
	DebounceWindow         time.Duration
	PendingRefreshInterval time.Duration
	ProbeInterval          time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains the offline-sync policy.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, applies the policy defaults, and validates
// the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionToken: cfg.App.SessionToken,
		},
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			PageSize:               cfg.Sync.PageSize,
			Concurrency:            cfg.Sync.Concurrency,
			DebounceWindow:         cfg.Sync.DebounceWindow,
			PendingRefreshInterval: cfg.Sync.PendingRefreshInterval,
			ProbeInterval:          cfg.Sync.ProbeInterval,
		},
	}

	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "possync.db"
	}
	if cfg.Sync.PageSize <= 0 {
		cfg.Sync.PageSize = DefaultPageSize
	}
	if cfg.Sync.Concurrency <= 0 {
		cfg.Sync.Concurrency = DefaultConcurrency
	}
	if cfg.Sync.DebounceWindow <= 0 {
		cfg.Sync.DebounceWindow = DefaultDebounceWindow
	}
	if cfg.Sync.PendingRefreshInterval <= 0 {
		cfg.Sync.PendingRefreshInterval = DefaultPendingRefreshInterval
	}
	if cfg.Sync.ProbeInterval <= 0 {
		cfg.Sync.ProbeInterval = DefaultProbeInterval
	}
}
