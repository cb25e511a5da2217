// Package config provides configuration loading, merging, and validation
// facilities for possync.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which builds the merged
// [StructuredConfig], applies the offline-sync policy defaults, and returns a
// validated client view.
package config
