package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON may be strings ("30s") or nanosecond numbers.
	jsonBody := `{
		"app": {
			"session_token": "jwt_token"
		},
		"adapter": {
			"base_url": "http://localhost:8080",
			"request_timeout": "30s"
		},
		"storage": {
			"db": { "dsn": "/var/lib/possync/possync.db" }
		},
		"sync": {
			"page_size": 250,
			"concurrency": 4,
			"debounce_window": "3s",
			"pending_refresh_interval": "10s",
			"probe_interval": "5s"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_token", cfg.App.SessionToken)

	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/possync/possync.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 250, cfg.Sync.PageSize)
	assert.Equal(t, 4, cfg.Sync.Concurrency)
	assert.Equal(t, 3*time.Second, cfg.Sync.DebounceWindow)
	assert.Equal(t, 10*time.Second, cfg.Sync.PendingRefreshInterval)
	assert.Equal(t, 5*time.Second, cfg.Sync.ProbeInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ not json`), 0o600))

	cfg, err := parseJSON(p)
	assert.Nil(t, cfg)
	require.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string duration", input: `"1h"`, want: time.Hour},
		{name: "numeric nanoseconds", input: `1000000000`, want: time.Second},
		{name: "invalid string", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
