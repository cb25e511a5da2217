package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url remote service base URL
//	-d local SQLite database path
//	-token session JWT issued at login
//	-request-timeout outbound request timeout (e.g., "15s")
//	-page-size catalog page size
//	-concurrency parallel catalog page requests per round
//	-debounce reconnection debounce window (e.g., "3s")
//	-refresh-interval pending-count refresh interval (e.g., "10s")
//	-probe-interval connectivity probe interval (e.g., "5s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var baseURL string
	var databaseDSN string
	var sessionToken string
	var requestTimeout time.Duration
	var pageSize int
	var concurrency int
	var debounceWindow time.Duration
	var refreshInterval time.Duration
	var probeInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "base-url", "", "Remote service base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local SQLite database path")
	flag.StringVar(&sessionToken, "token", "", "Session JWT")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.IntVar(&pageSize, "page-size", 0, "Catalog page size")
	flag.IntVar(&concurrency, "concurrency", 0, "Parallel catalog page requests per round")
	flag.DurationVar(&debounceWindow, "debounce", 0, "Reconnection debounce window (e.g., 3s)")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Pending-count refresh interval (e.g., 10s)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 5s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			SessionToken: sessionToken,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Sync: Sync{
			PageSize:               pageSize,
			Concurrency:            concurrency,
			DebounceWindow:         debounceWindow,
			PendingRefreshInterval: refreshInterval,
			ProbeInterval:          probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
