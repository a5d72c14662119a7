// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package config

import "time"

// defaultConfig returns the built-in defaults merged under every other
// configuration source.
func defaultConfig() *Config {
	return &Config{
		Adapter: Adapter{
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DSN: "vaultsync.db",
		},
		Keyring: Keyring{
			Service: "vaultsync",
		},
		Sync: Sync{
			MinInterval: 30 * time.Minute,
			JobInterval: 5 * time.Minute,
		},
	}
}

// validate checks that the final merged [Config] satisfies all invariants
// before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *Config) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Keyring.Service == "" {
		return ErrInvalidKeyringConfigs
	}

	if cfg.Sync.MinInterval <= 0 || cfg.Sync.JobInterval <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
