package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no sources yet.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.sources)
}

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple sources
// are merged into a single result, with earlier sources taking priority for
// non-zero fields.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.add(&StructuredConfig{
		Adapter: Adapter{BaseURL: "http://primary:8080"},
	})
	b.add(&StructuredConfig{
		Adapter: Adapter{BaseURL: "http://fallback:9090", RequestTimeout: 30 * time.Second},
		Storage: Storage{DB: DB{DSN: "possync.db"}},
	})

	cfg, err := b.build()
	require.NoError(t, err)

	// mergo keeps the first non-zero value and fills the gaps from later sources.
	assert.Equal(t, "http://primary:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "possync.db", cfg.Storage.DB.DSN)
}

// TestClientConfig_Defaults verifies that applyDefaults fills every unset
// policy knob with its documented default.
func TestClientConfig_Defaults(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "http://localhost:8080"},
	}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultPageSize, cfg.Sync.PageSize)
	assert.Equal(t, DefaultConcurrency, cfg.Sync.Concurrency)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDebounceWindow, cfg.Sync.DebounceWindow)
	assert.Equal(t, DefaultPendingRefreshInterval, cfg.Sync.PendingRefreshInterval)
	assert.Equal(t, DefaultProbeInterval, cfg.Sync.ProbeInterval)
	assert.Equal(t, "possync.db", cfg.Storage.DB.DSN)
}

// TestClientConfig_Validate covers the required-field checks.
func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:    "missing base URL",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.BaseURL = "" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "non-positive page size",
			mutate:  func(cfg *ClientConfig) { cfg.Sync.PageSize = 0 },
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "non-positive concurrency",
			mutate:  func(cfg *ClientConfig) { cfg.Sync.Concurrency = -1 },
			wantErr: ErrInvalidSyncConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientConfig{Adapter: ClientAdapter{BaseURL: "http://localhost:8080"}}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
