package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
)

// accountRepository is the SQLite-backed implementation of
// [AccountRepository].
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	return &accountRepository{DB: db, logger: logger}
}

const accountColumns = "user_id, email, name, security_stamp, kdf, has_master_password, " +
	"uses_key_connector, key_connector_url, trusted_device, force_password_reset"

// UpsertAccount implements [AccountRepository]. The active flag and last
// sync time of an existing record are preserved.
func (a *accountRepository) UpsertAccount(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	kdf, err := json.Marshal(account.KDF)
	if err != nil {
		return fmt.Errorf("encode kdf config: %w", err)
	}

	_, err = a.DB.ExecContext(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			email                = excluded.email,
			name                 = excluded.name,
			security_stamp       = excluded.security_stamp,
			kdf                  = excluded.kdf,
			has_master_password  = excluded.has_master_password,
			uses_key_connector   = excluded.uses_key_connector,
			key_connector_url    = excluded.key_connector_url,
			trusted_device       = excluded.trusted_device,
			force_password_reset = excluded.force_password_reset;`,
		account.UserID, account.Email, account.Name, account.SecurityStamp, string(kdf),
		account.HasMasterPassword, account.UsesKeyConnector, account.KeyConnectorURL,
		account.TrustedDeviceDecryption, account.ForcePasswordReset,
	)
	if err != nil {
		log.Err(err).
			Str("user_id", account.UserID).
			Msg("failed to upsert account")
		return fmt.Errorf("upsert account %s: %w", account.UserID, err)
	}

	return nil
}

// GetAccount implements [AccountRepository].
func (a *accountRepository) GetAccount(ctx context.Context, userID string) (models.Account, error) {
	query, args, err := qb.Select("user_id", "email", "name", "security_stamp", "kdf",
		"has_master_password", "uses_key_connector", "key_connector_url",
		"trusted_device", "force_password_reset").
		From("accounts").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("build get account query: %w", err)
	}

	account, err := a.scanAccount(a.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, fmt.Errorf("%w: account %s", ErrNotFound, userID)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("scan account row: %w", err)
	}

	return account, nil
}

// DeleteAccount implements [AccountRepository].
func (a *accountRepository) DeleteAccount(ctx context.Context, userID string) error {
	query, args, err := qb.Delete("accounts").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete account query: %w", err)
	}
	if _, err = a.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete account %s: %w", userID, err)
	}
	return nil
}

// ActiveAccount implements [AccountRepository].
func (a *accountRepository) ActiveAccount(ctx context.Context) (models.Account, error) {
	query, args, err := qb.Select("user_id", "email", "name", "security_stamp", "kdf",
		"has_master_password", "uses_key_connector", "key_connector_url",
		"trusted_device", "force_password_reset").
		From("accounts").
		Where(sq.Eq{"active": true}).
		ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("build active account query: %w", err)
	}

	account, err := a.scanAccount(a.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrNoActiveAccount
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("scan active account row: %w", err)
	}

	return account, nil
}

// SetActiveAccount implements [AccountRepository]. Exactly one account is
// active afterwards.
func (a *accountRepository) SetActiveAccount(ctx context.Context, userID string) error {
	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin set-active tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `UPDATE accounts SET active = 0;`); err != nil {
		return fmt.Errorf("deactivate accounts: %w", err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE accounts SET active = 1 WHERE user_id = ?;`, userID)
	if err != nil {
		return fmt.Errorf("activate account %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s", ErrNotFound, userID)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit set-active tx: %w", err)
	}

	return nil
}

// LastSyncTime implements [AccountRepository].
func (a *accountRepository) LastSyncTime(ctx context.Context, userID string) (time.Time, bool, error) {
	query, args, err := qb.Select("last_sync_at").
		From("accounts").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("build last sync query: %w", err)
	}

	var lastSync sql.NullInt64
	err = a.DB.QueryRowContext(ctx, query, args...).Scan(&lastSync)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("scan last sync row: %w", err)
	}
	if !lastSync.Valid {
		return time.Time{}, false, nil
	}

	return time.UnixMilli(lastSync.Int64).UTC(), true, nil
}

// SetLastSyncTime implements [AccountRepository].
func (a *accountRepository) SetLastSyncTime(ctx context.Context, userID string, t time.Time) error {
	res, err := a.DB.ExecContext(ctx,
		`UPDATE accounts SET last_sync_at = ? WHERE user_id = ?;`,
		t.UnixMilli(), userID,
	)
	if err != nil {
		return fmt.Errorf("set last sync time for %s: %w", userID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: account %s", ErrNotFound, userID)
	}
	return nil
}

func (a *accountRepository) scanAccount(row rowScanner) (models.Account, error) {
	var account models.Account
	var kdf string

	err := row.Scan(&account.UserID, &account.Email, &account.Name, &account.SecurityStamp,
		&kdf, &account.HasMasterPassword, &account.UsesKeyConnector, &account.KeyConnectorURL,
		&account.TrustedDeviceDecryption, &account.ForcePasswordReset)
	if err != nil {
		return models.Account{}, err
	}

	if kdf != "" {
		if err := json.Unmarshal([]byte(kdf), &account.KDF); err != nil {
			return models.Account{}, fmt.Errorf("decode kdf config: %w", err)
		}
	}

	return account, nil
}
