// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Diego Castanera

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. The mapping lives in the
// `env` and `envPrefix` struct tags on [StructuredConfig], so a field like
// Adapter.BaseURL reads ADAPTER_BASE_URL.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("reading environment configuration: %w", err)
	}

	return nil
}
