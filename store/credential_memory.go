package store

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/keywarden/vaultsync/models"
)

// memoryCredentialStore is an in-memory [CredentialStore] for tests and for
// platforms without a keyring daemon. Values use the same text encodings as
// the keyring implementation so both behave identically.
type memoryCredentialStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryCredentialStore constructs an in-memory [CredentialStore].
func NewMemoryCredentialStore() CredentialStore {
	return &memoryCredentialStore{values: make(map[string]string)}
}

func (m *memoryCredentialStore) set(userID, suffix, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[credentialKey(userID, suffix)] = value
	return nil
}

func (m *memoryCredentialStore) get(userID, suffix string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.values[credentialKey(userID, suffix)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrCredentialNotFound, suffix)
	}
	return value, nil
}

func (m *memoryCredentialStore) SetAccessToken(_ context.Context, userID, token string) error {
	return m.set(userID, keyAccessToken, token)
}

func (m *memoryCredentialStore) AccessToken(_ context.Context, userID string) (string, error) {
	return m.get(userID, keyAccessToken)
}

func (m *memoryCredentialStore) SetRefreshToken(_ context.Context, userID, token string) error {
	return m.set(userID, keyRefreshToken, token)
}

func (m *memoryCredentialStore) RefreshToken(_ context.Context, userID string) (string, error) {
	return m.get(userID, keyRefreshToken)
}

func (m *memoryCredentialStore) SetLastActiveTime(_ context.Context, userID string, t time.Time) error {
	return m.set(userID, keyLastActiveTime, strconv.FormatInt(t.Unix(), 10))
}

func (m *memoryCredentialStore) LastActiveTime(_ context.Context, userID string) (time.Time, error) {
	raw, err := m.get(userID, keyLastActiveTime)
	if err != nil {
		return time.Time{}, err
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode last active time %q: %w", raw, err)
	}
	return time.Unix(seconds, 0).UTC(), nil
}

func (m *memoryCredentialStore) SetUnlockAttempts(_ context.Context, userID string, attempts int) error {
	return m.set(userID, keyUnlockAttempts, strconv.Itoa(attempts))
}

func (m *memoryCredentialStore) UnlockAttempts(_ context.Context, userID string) (int, error) {
	raw, err := m.get(userID, keyUnlockAttempts)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(raw)
}

func (m *memoryCredentialStore) SetVaultTimeout(_ context.Context, userID string, timeout models.SessionTimeoutValue) error {
	return m.set(userID, keyVaultTimeout, strconv.Itoa(int(timeout)))
}

func (m *memoryCredentialStore) VaultTimeout(_ context.Context, userID string) (models.SessionTimeoutValue, error) {
	raw, err := m.get(userID, keyVaultTimeout)
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("decode vault timeout %q: %w", raw, err)
	}
	return models.SessionTimeoutValue(minutes), nil
}

func (m *memoryCredentialStore) SetDeviceKey(_ context.Context, userID string, key []byte) error {
	return m.set(userID, keyDeviceKey, base64.StdEncoding.EncodeToString(key))
}

func (m *memoryCredentialStore) DeviceKey(_ context.Context, userID string) ([]byte, error) {
	raw, err := m.get(userID, keyDeviceKey)
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode device key: %w", err)
	}
	return key, nil
}

func (m *memoryCredentialStore) DeleteAll(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, suffix := range credentialKeys {
		delete(m.values, credentialKey(userID, suffix))
	}
	return nil
}
