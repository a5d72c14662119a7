// Package crypto declares the contract of the external cryptographic engine.
// The engine owns key derivation, encryption and decryption; this library
// consumes it and never re-implements any primitive.
package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// Engine is the narrow surface of the cryptographic engine that the sync
// lifecycle needs. Vault payloads stay opaque to this library; the only
// interaction during sync is handing over organization key material.
type Engine interface {
	// InitOrganizationKeys registers the organization-id to wrapped-org-key
	// map for userID so that organization-encrypted items can later be
	// decrypted. Called after every full sync. A failure is non-fatal to
	// sync: affected items simply fail to decrypt until the next attempt.
	InitOrganizationKeys(ctx context.Context, userID string, orgKeys map[string]string) error

	// ClearKeys drops all key material held for userID (logout or lock).
	ClearKeys(ctx context.Context, userID string) error
}
