// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
	"github.com/keywarden/vaultsync/store"
)

// defaultSessionTimeout applies when an account has no stored timeout value.
const defaultSessionTimeout = models.SessionTimeoutValue(15)

// vaultTimeoutService is the concrete implementation of
// [VaultTimeoutService]. Lock state lives only in this process: after a
// restart every account is observed as locked again.
type vaultTimeoutService struct {
	credentials store.CredentialStore
	policies    PolicyService
	logger      *logger.Logger

	// now is swapped in tests.
	now func() time.Time

	// mu guards unlocked. The map holds every account observed so far;
	// a true value means unlocked.
	mu       sync.Mutex
	unlocked map[string]bool
}

// NewVaultTimeoutService constructs a [VaultTimeoutService].
func NewVaultTimeoutService(credentials store.CredentialStore, policies PolicyService, log *logger.Logger) VaultTimeoutService {
	return &vaultTimeoutService{
		credentials: credentials,
		policies:    policies,
		logger:      log,
		now:         time.Now,
		unlocked:    make(map[string]bool),
	}
}

// Lock implements [VaultTimeoutService].
func (v *vaultTimeoutService) Lock(userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unlocked[userID] = false
}

// Unlock implements [VaultTimeoutService]. At most one account may be
// unlocked at any time on the device, so every other known account is forced
// to locked in the same critical section.
func (v *vaultTimeoutService) Unlock(userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for id := range v.unlocked {
		v.unlocked[id] = false
	}
	v.unlocked[userID] = true
}

// Remove implements [VaultTimeoutService].
func (v *vaultTimeoutService) Remove(userID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.unlocked, userID)
}

// IsLocked implements [VaultTimeoutService]. Accounts never observed before
// report locked.
func (v *vaultTimeoutService) IsLocked(userID string) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.unlocked[userID]
}

// SessionTimeout implements [VaultTimeoutService].
func (v *vaultTimeoutService) SessionTimeout(ctx context.Context, userID string) (models.SessionTimeoutValue, error) {
	timeout, err := v.credentials.VaultTimeout(ctx, userID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		return defaultSessionTimeout, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read vault timeout: %w", err)
	}
	return timeout, nil
}

// HasPassedSessionTimeout implements [VaultTimeoutService].
func (v *vaultTimeoutService) HasPassedSessionTimeout(ctx context.Context, userID string) (bool, error) {
	lastActive, err := v.credentials.LastActiveTime(ctx, userID)
	if errors.Is(err, store.ErrCredentialNotFound) {
		// No activity record: fail secure.
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read last active time: %w", err)
	}

	timeout, err := v.SessionTimeout(ctx, userID)
	if err != nil {
		return false, err
	}

	// The sentinels are evaluated at other lifecycle points, not through
	// elapsed-time math.
	duration, ok := timeout.Duration()
	if !ok {
		return false, nil
	}

	return v.now().Sub(lastActive) >= duration, nil
}

// ClampTimeout implements [VaultTimeoutService]. The stored value is lowered
// to the policy ceiling when it exceeds it; the sentinels count as exceeding
// any literal ceiling.
func (v *vaultTimeoutService) ClampTimeout(ctx context.Context, userID string) error {
	policy, ok, err := v.policies.TimeoutPolicy(ctx, userID)
	if err != nil {
		return fmt.Errorf("read timeout policy: %w", err)
	}
	if !ok {
		return nil
	}

	stored, err := v.SessionTimeout(ctx, userID)
	if err != nil {
		return err
	}

	minutes, literal := stored.Minutes()
	if literal && minutes <= policy.Minutes {
		return nil
	}

	v.logger.Info().
		Str("user_id", userID).
		Int("policy_minutes", policy.Minutes).
		Msg("clamping vault timeout to policy ceiling")

	if err := v.credentials.SetVaultTimeout(ctx, userID, models.SessionTimeoutValue(policy.Minutes)); err != nil {
		return fmt.Errorf("store clamped vault timeout: %w", err)
	}
	return nil
}

// IncrementUnlockAttempts implements [VaultTimeoutService].
func (v *vaultTimeoutService) IncrementUnlockAttempts(ctx context.Context, userID string) (int, error) {
	attempts, err := v.credentials.UnlockAttempts(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrCredentialNotFound) {
		return 0, fmt.Errorf("read unlock attempts: %w", err)
	}

	attempts++
	if err := v.credentials.SetUnlockAttempts(ctx, userID, attempts); err != nil {
		return 0, fmt.Errorf("store unlock attempts: %w", err)
	}
	return attempts, nil
}

// ResetUnlockAttempts implements [VaultTimeoutService].
func (v *vaultTimeoutService) ResetUnlockAttempts(ctx context.Context, userID string) error {
	if err := v.credentials.SetUnlockAttempts(ctx, userID, 0); err != nil {
		return fmt.Errorf("reset unlock attempts: %w", err)
	}
	return nil
}
