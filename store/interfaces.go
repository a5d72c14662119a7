// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

// Package store provides the persistence layer of the vaultsync engine: the
// SQLite-backed local vault replica and the OS-keyring-backed secure
// credential store.
//
// The local replica keeps per-account collections of encrypted vault entities
// (ciphers, folders, collections, sends, organizations, policies, domains).
// Replace-all operations run inside one SQL transaction per entity kind, so a
// sync aborted mid-way leaves each kind either fully pre-sync or fully
// reconciled.
//
// The credential store keeps per-account secrets (tokens, device key
// material, last-active timestamps, unlock counters, vault-timeout minutes)
// under keys namespaced by account id.
package store

import (
	"context"
	"time"

	"github.com/keywarden/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultRepository is the local replica of one device's vault data, keyed by
// account id. It is the engine's LocalVaultStore collaborator; the SQLite
// implementation in this package is the default, consumers may inject their
// own.
type VaultRepository interface {
	// Replace-all operations: the snapshot is authoritative, the previous
	// contents of the entity kind are discarded wholesale. Each call is
	// atomic for its entity kind.
	ReplaceCiphers(ctx context.Context, userID string, ciphers []models.Cipher) error
	ReplaceFolders(ctx context.Context, userID string, folders []models.Folder) error
	ReplaceCollections(ctx context.Context, userID string, collections []models.Collection) error
	ReplaceSends(ctx context.Context, userID string, sends []models.Send) error
	ReplaceOrganizations(ctx context.Context, userID string, orgs []models.Organization) error
	ReplacePolicies(ctx context.Context, userID string, policies []models.Policy) error
	ReplaceDomains(ctx context.Context, userID string, domains models.Domains) error

	// Upsert operations used by delta reconciliation. A write whose revision
	// date is older than the stored copy's is rejected with
	// [ErrRevisionRegression]; writes with an equal or newer revision date
	// succeed.
	UpsertCipher(ctx context.Context, cipher models.Cipher) error
	UpsertFolder(ctx context.Context, folder models.Folder) error
	UpsertSend(ctx context.Context, send models.Send) error

	// Delete operations remove the local copy unconditionally. Deleting an
	// absent item is a no-op.
	DeleteCipher(ctx context.Context, userID, id string) error
	DeleteFolder(ctx context.Context, userID, id string) error
	DeleteSend(ctx context.Context, userID, id string) error

	// ClearFolderReferences detaches folderID from every local cipher that
	// points to it, without any server round-trip.
	ClearFolderReferences(ctx context.Context, userID, folderID string) error

	// Single-item reads. Return a wrapped [ErrNotFound] when absent.
	GetCipher(ctx context.Context, userID, id string) (models.Cipher, error)
	GetFolder(ctx context.Context, userID, id string) (models.Folder, error)
	GetSend(ctx context.Context, userID, id string) (models.Send, error)

	// List reads used by policy aggregation and visibility checks.
	ListCollections(ctx context.Context, userID string) ([]models.Collection, error)
	ListPolicies(ctx context.Context, userID string) ([]models.Policy, error)
	ListOrganizations(ctx context.Context, userID string) ([]models.Organization, error)
	GetDomains(ctx context.Context, userID string) (models.Domains, error)
}

// AccountRepository stores the logged-in accounts known to this device,
// which of them is active, and per-account sync bookkeeping.
type AccountRepository interface {
	// UpsertAccount inserts or fully replaces the account record.
	UpsertAccount(ctx context.Context, account models.Account) error

	// GetAccount returns the account by user id, or a wrapped [ErrNotFound].
	GetAccount(ctx context.Context, userID string) (models.Account, error)

	// DeleteAccount removes the account record entirely (logout).
	DeleteAccount(ctx context.Context, userID string) error

	// ActiveAccount returns the single active account, or
	// [ErrNoActiveAccount] when the device has none.
	ActiveAccount(ctx context.Context) (models.Account, error)

	// SetActiveAccount marks userID active and every other account inactive.
	SetActiveAccount(ctx context.Context, userID string) error

	// LastSyncTime returns the timestamp of the last successful full sync
	// for userID; ok is false when the account has never synced.
	LastSyncTime(ctx context.Context, userID string) (t time.Time, ok bool, err error)

	// SetLastSyncTime records the timestamp of a successful full sync.
	SetLastSyncTime(ctx context.Context, userID string, t time.Time) error
}

// CredentialStore is the engine's SecureCredentialStore collaborator:
// per-account secret storage backed by the OS keyring (or an in-memory
// substitute in tests). Absent values are reported with a wrapped
// [ErrCredentialNotFound].
type CredentialStore interface {
	SetAccessToken(ctx context.Context, userID, token string) error
	AccessToken(ctx context.Context, userID string) (string, error)

	SetRefreshToken(ctx context.Context, userID, token string) error
	RefreshToken(ctx context.Context, userID string) (string, error)

	// Last-active time is stored as epoch seconds in text form.
	SetLastActiveTime(ctx context.Context, userID string, t time.Time) error
	LastActiveTime(ctx context.Context, userID string) (time.Time, error)

	SetUnlockAttempts(ctx context.Context, userID string, attempts int) error
	UnlockAttempts(ctx context.Context, userID string) (int, error)

	SetVaultTimeout(ctx context.Context, userID string, timeout models.SessionTimeoutValue) error
	VaultTimeout(ctx context.Context, userID string) (models.SessionTimeoutValue, error)

	// Device key material is an opaque blob, access-controlled by the OS.
	SetDeviceKey(ctx context.Context, userID string, key []byte) error
	DeviceKey(ctx context.Context, userID string) ([]byte, error)

	// DeleteAll removes every key stored for userID (logout).
	DeleteAll(ctx context.Context, userID string) error
}
