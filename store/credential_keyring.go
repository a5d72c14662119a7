package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/zalando/go-keyring"

	"github.com/keywarden/vaultsync/models"
)

// Credential key suffixes, namespaced per account as "<userID>/<suffix>".
const (
	keyAccessToken    = "accessToken"
	keyRefreshToken   = "refreshToken"
	keyLastActiveTime = "lastActiveTime"
	keyUnlockAttempts = "invalidUnlockAttempts"
	keyVaultTimeout   = "vaultTimeout"
	keyDeviceKey      = "deviceKey"
)

var credentialKeys = []string{
	keyAccessToken,
	keyRefreshToken,
	keyLastActiveTime,
	keyUnlockAttempts,
	keyVaultTimeout,
	keyDeviceKey,
}

// keyringCredentialStore stores per-account secrets in the OS keyring under
// a configurable service name. Values the keyring cannot represent natively
// (timestamps, counters, blobs) are stored as text, matching the wire
// formats named in the credential contract: epoch seconds for timestamps,
// decimal for counters, base64 for blobs.
type keyringCredentialStore struct {
	service string
}

// NewKeyringCredentialStore constructs a [CredentialStore] backed by the OS
// keyring under the given service name.
func NewKeyringCredentialStore(service string) CredentialStore {
	return &keyringCredentialStore{service: service}
}

func credentialKey(userID, suffix string) string {
	return userID + "/" + suffix
}

func (k *keyringCredentialStore) set(userID, suffix, value string) error {
	if err := keyring.Set(k.service, credentialKey(userID, suffix), value); err != nil {
		return fmt.Errorf("keyring set %s: %w", suffix, err)
	}
	return nil
}

func (k *keyringCredentialStore) get(userID, suffix string) (string, error) {
	value, err := keyring.Get(k.service, credentialKey(userID, suffix))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", ErrCredentialNotFound, suffix)
	}
	if err != nil {
		return "", fmt.Errorf("keyring get %s: %w", suffix, err)
	}
	return value, nil
}

// SetAccessToken implements [CredentialStore].
func (k *keyringCredentialStore) SetAccessToken(_ context.Context, userID, token string) error {
	return k.set(userID, keyAccessToken, token)
}

// AccessToken implements [CredentialStore].
func (k *keyringCredentialStore) AccessToken(_ context.Context, userID string) (string, error) {
	return k.get(userID, keyAccessToken)
}

// SetRefreshToken implements [CredentialStore].
func (k *keyringCredentialStore) SetRefreshToken(_ context.Context, userID, token string) error {
	return k.set(userID, keyRefreshToken, token)
}

// RefreshToken implements [CredentialStore].
func (k *keyringCredentialStore) RefreshToken(_ context.Context, userID string) (string, error) {
	return k.get(userID, keyRefreshToken)
}

// SetLastActiveTime implements [CredentialStore].
func (k *keyringCredentialStore) SetLastActiveTime(_ context.Context, userID string, t time.Time) error {
	return k.set(userID, keyLastActiveTime, strconv.FormatInt(t.Unix(), 10))
}

// LastActiveTime implements [CredentialStore].
func (k *keyringCredentialStore) LastActiveTime(_ context.Context, userID string) (time.Time, error) {
	raw, err := k.get(userID, keyLastActiveTime)
	if err != nil {
		return time.Time{}, err
	}
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("decode last active time %q: %w", raw, err)
	}
	return time.Unix(seconds, 0).UTC(), nil
}

// SetUnlockAttempts implements [CredentialStore].
func (k *keyringCredentialStore) SetUnlockAttempts(_ context.Context, userID string, attempts int) error {
	return k.set(userID, keyUnlockAttempts, strconv.Itoa(attempts))
}

// UnlockAttempts implements [CredentialStore].
func (k *keyringCredentialStore) UnlockAttempts(_ context.Context, userID string) (int, error) {
	raw, err := k.get(userID, keyUnlockAttempts)
	if err != nil {
		return 0, err
	}
	attempts, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("decode unlock attempts %q: %w", raw, err)
	}
	return attempts, nil
}

// SetVaultTimeout implements [CredentialStore].
func (k *keyringCredentialStore) SetVaultTimeout(_ context.Context, userID string, timeout models.SessionTimeoutValue) error {
	return k.set(userID, keyVaultTimeout, strconv.Itoa(int(timeout)))
}

// VaultTimeout implements [CredentialStore].
func (k *keyringCredentialStore) VaultTimeout(_ context.Context, userID string) (models.SessionTimeoutValue, error) {
	raw, err := k.get(userID, keyVaultTimeout)
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("decode vault timeout %q: %w", raw, err)
	}
	return models.SessionTimeoutValue(minutes), nil
}

// SetDeviceKey implements [CredentialStore].
func (k *keyringCredentialStore) SetDeviceKey(_ context.Context, userID string, key []byte) error {
	return k.set(userID, keyDeviceKey, base64.StdEncoding.EncodeToString(key))
}

// DeviceKey implements [CredentialStore].
func (k *keyringCredentialStore) DeviceKey(_ context.Context, userID string) ([]byte, error) {
	raw, err := k.get(userID, keyDeviceKey)
	if err != nil {
		return nil, err
	}
	key, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode device key: %w", err)
	}
	return key, nil
}

// DeleteAll implements [CredentialStore]. Missing keys are skipped.
func (k *keyringCredentialStore) DeleteAll(_ context.Context, userID string) error {
	for _, suffix := range credentialKeys {
		err := keyring.Delete(k.service, credentialKey(userID, suffix))
		if err != nil && !errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("keyring delete %s: %w", suffix, err)
		}
	}
	return nil
}
