// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package config

import (
	"time"
)

// Config is the top-level configuration container for the vaultsync engine.
// It is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// Adapter holds network settings for the server transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local vault replica.
	Storage Storage `envPrefix:"STORAGE_"`

	// Keyring holds settings for the OS secure credential store.
	Keyring Keyring `envPrefix:"KEYRING_"`

	// Sync holds sync-scheduling settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings used by the server transport layer.
type Adapter struct {
	// BaseURL is the vault server endpoint. A missing scheme defaults to
	// https.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds local vault replica settings.
type Storage struct {
	// DSN is the SQLite connection string for the encrypted local replica.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Keyring holds OS credential store settings.
type Keyring struct {
	// Service is the keyring service name under which per-account secrets
	// are stored.
	// Env: KEYRING_SERVICE
	Service string `env:"SERVICE"`
}

// Sync holds sync-scheduling settings.
type Sync struct {
	// MinInterval is the minimum time between two non-forced full syncs.
	// Env: SYNC_MIN_INTERVAL
	MinInterval time.Duration `env:"MIN_INTERVAL"`

	// JobInterval is how often the background sync job runs.
	// Env: SYNC_JOB_INTERVAL
	JobInterval time.Duration `env:"JOB_INTERVAL"`
}

// GetConfig builds the final configuration by merging, in order of increasing
// precedence: defaults, environment variables, command-line flags, and the
// optional JSON file. The merged result is validated before being returned.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
