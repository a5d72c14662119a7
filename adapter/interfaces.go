// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

// Package adapter provides transport-layer abstractions for communicating with
// the vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync engine
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404 during delta reconciliation).
package adapter

import (
	"context"
	"time"

	"github.com/keywarden/vaultsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called after every
	// successful authentication or token refresh.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// FetchSync retrieves the full sync snapshot for the authenticated
	// account: profile, organizations, ciphers, folders, collections, sends,
	// domains and policies. Returns an error if the request fails or the
	// response cannot be decoded.
	FetchSync(ctx context.Context) (models.SyncSnapshot, error)

	// LastRevision probes the lightweight account-revision endpoint. It
	// returns the timestamp of the most recent mutation to the account, or
	// ok=false when the server reports no value. Returns an error on
	// transport failure.
	LastRevision(ctx context.Context) (revision time.Time, ok bool, err error)

	// FetchCipher retrieves a single cipher by id. Returns a wrapped
	// [ErrNotFound] if the cipher no longer exists server-side.
	FetchCipher(ctx context.Context, id string) (models.Cipher, error)

	// FetchFolder retrieves a single folder by id. Returns a wrapped
	// [ErrNotFound] if the folder no longer exists server-side.
	FetchFolder(ctx context.Context, id string) (models.Folder, error)

	// FetchSend retrieves a single send by id. Returns a wrapped
	// [ErrNotFound] if the send no longer exists server-side.
	FetchSend(ctx context.Context, id string) (models.Send, error)
}
