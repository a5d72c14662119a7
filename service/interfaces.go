// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

// Package service implements the vault synchronization and session lifecycle
// engine: full-sync orchestration, delta-notification reconciliation, policy
// aggregation, and per-account lock state with session timeouts.
package service

import (
	"context"
	"time"

	"github.com/keywarden/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService decides whether a full sync is due, executes it, and
// reconciles the server snapshot against local state.
type SyncService interface {
	// FetchSync runs one sync cycle for the active account. When force is
	// false the cycle is gated: it is skipped if the minimum sync interval
	// has not elapsed, or if the account-revision probe shows no newer data
	// (or fails, in which case stale-but-available data is preferred over a
	// forced refresh).
	//
	// The returned outcome is exhaustive: SyncSkipped and SyncCompleted are
	// the quiet paths; SyncSecurityStampChanged means nothing was applied
	// and the account must re-authenticate; SyncMustSetMasterPassword and
	// SyncRemoveMasterPassword carry follow-up signals for the
	// re-authentication flow.
	//
	// Transport and decoding errors abort the cycle and are returned.
	// Organization key initialization failures are logged and swallowed:
	// one organization's broken keys must not block the rest of the vault.
	FetchSync(ctx context.Context, force bool) (models.SyncOutcome, error)
}

// NotificationService applies single-entity push notifications against local
// state with revision-based conflict resolution. It is invoked out-of-band
// by the push delivery layer, independently of full syncs.
type NotificationService interface {
	// Apply routes a notification to the handler for its entity kind.
	// Unrecognised kinds return [ErrUnknownNotificationKind].
	Apply(ctx context.Context, notification models.SyncNotification) error

	// ApplyCipherNotification reconciles one cipher change event.
	// Notifications for a non-active account are ignored. Upserts whose
	// revision date is not newer than the local copy's are no-ops; a fetch
	// answering "not found" deletes the local copy instead of failing.
	ApplyCipherNotification(ctx context.Context, notification models.SyncNotification) error

	// ApplyFolderNotification reconciles one folder change event. Deleting
	// a folder also detaches the folder reference from local ciphers.
	ApplyFolderNotification(ctx context.Context, notification models.SyncNotification) error

	// ApplySendNotification reconciles one send change event.
	ApplySendNotification(ctx context.Context, notification models.SyncNotification) error
}

// PolicyService aggregates organization policies applicable to a user and
// derives effective settings from them.
type PolicyService interface {
	// ReplacePolicies replaces the stored policy set for userID wholesale
	// and invalidates the per-user cache.
	ReplacePolicies(ctx context.Context, userID string, policies []models.Policy) error

	// PoliciesApplyingToUser returns the enabled policies of the given type
	// whose owning organization subjects the user to policies and does not
	// exempt them from this specific type.
	PoliciesApplyingToUser(ctx context.Context, userID string, policyType models.PolicyType) ([]models.Policy, error)

	// PasswordGeneratorOptions merges all applicable password-generator
	// policies: boolean requirements are OR-ed, minimum counts take the
	// maximum, and a "password" type override wins over "passphrase".
	// ok is false when no policy applies.
	PasswordGeneratorOptions(ctx context.Context, userID string) (opts models.PasswordGeneratorData, ok bool, err error)

	// MasterPasswordRequirements merges all applicable master-password
	// policies with non-null data: maxima of minComplexity and minLength,
	// OR of every require/enforce flag. ok is false when no policy applies.
	MasterPasswordRequirements(ctx context.Context, userID string) (reqs models.MasterPasswordData, ok bool, err error)

	// TimeoutPolicy returns the effective maximum-vault-timeout policy.
	// Minutes comes from the last applicable policy; Action is empty when
	// no policy specifies one, in which case the caller must offer both
	// choices to the user. ok is false when no policy applies.
	TimeoutPolicy(ctx context.Context, userID string) (policy models.VaultTimeoutData, ok bool, err error)

	// RestrictedItemTypes returns the cipher types the user may not create.
	// Currently any applicable restrict-item-types policy restricts cards.
	RestrictedItemTypes(ctx context.Context, userID string) ([]models.CipherType, error)
}

// VaultTimeoutService tracks per-account locked/unlocked state and computes
// timeout-based auto-lock decisions. Lock state is held only in memory:
// every account starts locked after a process restart.
type VaultTimeoutService interface {
	// Lock sets the account to locked. Other accounts are unaffected.
	Lock(userID string)

	// Unlock sets the account to unlocked and forces every other known
	// account to locked. At most one account is unlocked at any time on the
	// device.
	Unlock(userID string)

	// Remove forgets the account's lock state entirely (logout).
	Remove(userID string)

	// IsLocked reports the account's state; unknown accounts are locked.
	IsLocked(userID string) bool

	// HasPassedSessionTimeout reports whether the account must lock because
	// its session timed out. Missing last-active data fails secure (true).
	// The sentinel timeout values never trigger elapsed-time locking.
	HasPassedSessionTimeout(ctx context.Context, userID string) (bool, error)

	// ClampTimeout lowers the stored vault timeout to the policy ceiling
	// when a maximum-vault-timeout policy applies. Called after every full
	// sync.
	ClampTimeout(ctx context.Context, userID string) error

	// SessionTimeout returns the stored timeout value, falling back to the
	// default when none is recorded.
	SessionTimeout(ctx context.Context, userID string) (models.SessionTimeoutValue, error)

	// IncrementUnlockAttempts bumps and returns the unsuccessful-unlock
	// counter for the account.
	IncrementUnlockAttempts(ctx context.Context, userID string) (int, error)

	// ResetUnlockAttempts zeroes the unsuccessful-unlock counter.
	ResetUnlockAttempts(ctx context.Context, userID string) error
}

// SyncJob is a background worker that periodically runs a non-forced sync
// cycle for the active account.
type SyncJob interface {
	// Start launches the background sync goroutine. It syncs every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
