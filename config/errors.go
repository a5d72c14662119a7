package config

import "errors"

// Validation errors returned by [Config.validate] when required configuration
// groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid server transport settings
	// (for example, missing base URL or non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local replica settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKeyringConfigs indicates invalid credential store settings
	// (for example, an empty keyring service name).
	ErrInvalidKeyringConfigs = errors.New("invalid keyring configuration")
	// ErrInvalidSyncConfigs indicates invalid sync scheduling settings
	// (for example, a non-positive interval).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
