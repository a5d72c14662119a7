// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package config

import (
	"encoding/json"
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

	jsonBody := `{
		"adapter": {
			"base_url": "https://vault.example.com",
			"request_timeout": "30s"
		},
		"storage": {
			"dsn": "/var/lib/vaultsync/replica.db"
		},
		"keyring": {
			"service": "vaultsync-test"
		},
		"sync": {
			"min_interval": "30m",
			"job_interval": "5m"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, "/var/lib/vaultsync/replica.db", cfg.Storage.DSN)
	assert.Equal(t, "vaultsync-test", cfg.Keyring.Service)

	assert.Equal(t, 30*time.Minute, cfg.Sync.MinInterval)
	assert.Equal(t, 5*time.Minute, cfg.Sync.JobInterval)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")

	jsonBody := `{
		"sync": { "min_interval": "not-a-duration" }
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected time.Duration
	}{
		{"duration string", `"1h15m"`, 75 * time.Minute},
		{"seconds string", `"45s"`, 45 * time.Second},
		{"nanosecond integer", `1000000000`, time.Second},
		{"zero", `0`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.body), &d))
			assert.Equal(t, tt.expected, time.Duration(d))
		})
	}
}

func TestDuration_UnmarshalJSON_Invalid(t *testing.T) {
	var d Duration

	err := json.Unmarshal([]byte(`"later"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")

	err = json.Unmarshal([]byte(`true`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration value")
}
