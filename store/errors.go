package store

import "errors"

var (
	// ErrNotFound indicates the requested entity is absent from the local
	// replica.
	ErrNotFound = errors.New("not found in local store")

	// ErrRevisionRegression indicates an upsert carried a revision date
	// older than the stored copy's. The local revision date never regresses.
	ErrRevisionRegression = errors.New("revision date regression rejected")

	// ErrNoActiveAccount indicates the device holds no active account.
	ErrNoActiveAccount = errors.New("no active account")

	// ErrCredentialNotFound indicates the requested secret is absent from
	// the credential store.
	ErrCredentialNotFound = errors.New("credential not found")
)
