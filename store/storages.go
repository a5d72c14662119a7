package store

import (
	"context"
	"fmt"

	"github.com/keywarden/vaultsync/config"
	"github.com/keywarden/vaultsync/logger"
)

// Storages groups the persistence backends into a single value that can be
// passed to the service layer.
type Storages struct {
	// Vault is the SQLite-backed local replica of vault entities.
	Vault VaultRepository

	// Accounts holds the device's logged-in accounts and sync bookkeeping.
	Accounts AccountRepository

	// Credentials is the OS-keyring-backed secure credential store.
	Credentials CredentialStore
}

// NewStorages initialises the persistence layer from the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path in cfg.Storage.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs a [Storages] value wired to fresh repositories and a
//     keyring credential store under cfg.Keyring.Service.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Vault:       NewVaultRepository(db, log),
		Accounts:    NewAccountRepository(db, log),
		Credentials: NewKeyringCredentialStore(cfg.Keyring.Service),
	}, nil
}
