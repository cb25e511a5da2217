// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package config

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.PageSize <= 0 || cfg.Sync.Concurrency <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
