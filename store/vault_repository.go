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

// vaultRepository is the SQLite-backed implementation of [VaultRepository].
// Replace-all operations run inside one transaction per entity kind;
// upserts enforce revision-date monotonicity inside the same transaction
// that performs the write.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{DB: db, logger: logger}
}

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func (v *vaultRepository) replaceAll(ctx context.Context, table, userID string, insert func(tx *sql.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin replace tx for %s: %w", table, err)
	}
	defer tx.Rollback()

	query, args, err := qb.Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query for %s: %w", table, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("table", table).
			Str("user_id", userID).
			Msg("failed to clear table during replace")
		return fmt.Errorf("clear %s: %w", table, err)
	}

	if err = insert(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit replace tx for %s: %w", table, err)
	}

	return nil
}

// ReplaceCiphers implements [VaultRepository].
func (v *vaultRepository) ReplaceCiphers(ctx context.Context, userID string, ciphers []models.Cipher) error {
	return v.replaceAll(ctx, "ciphers", userID, func(tx *sql.Tx) error {
		for _, c := range ciphers {
			if err := execInsertCipher(ctx, tx, userID, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceFolders implements [VaultRepository].
func (v *vaultRepository) ReplaceFolders(ctx context.Context, userID string, folders []models.Folder) error {
	return v.replaceAll(ctx, "folders", userID, func(tx *sql.Tx) error {
		for _, f := range folders {
			if err := execInsertFolder(ctx, tx, userID, f); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceCollections implements [VaultRepository].
func (v *vaultRepository) ReplaceCollections(ctx context.Context, userID string, collections []models.Collection) error {
	return v.replaceAll(ctx, "collections", userID, func(tx *sql.Tx) error {
		for _, c := range collections {
			query, args, err := qb.Insert("collections").
				Columns("user_id", "id", "organization_id", "name", "read_only").
				Values(userID, c.ID, c.OrganizationID, c.Name, c.ReadOnly).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert collection: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert collection %s: %w", c.ID, err)
			}
		}
		return nil
	})
}

// ReplaceSends implements [VaultRepository].
func (v *vaultRepository) ReplaceSends(ctx context.Context, userID string, sends []models.Send) error {
	return v.replaceAll(ctx, "sends", userID, func(tx *sql.Tx) error {
		for _, s := range sends {
			if err := execInsertSend(ctx, tx, userID, s); err != nil {
				return err
			}
		}
		return nil
	})
}

// ReplaceOrganizations implements [VaultRepository].
func (v *vaultRepository) ReplaceOrganizations(ctx context.Context, userID string, orgs []models.Organization) error {
	return v.replaceAll(ctx, "organizations", userID, func(tx *sql.Tx) error {
		for _, o := range orgs {
			query, args, err := qb.Insert("organizations").
				Columns("user_id", "id", "name", "org_key", "status", "type", "enabled",
					"use_policies", "uses_key_connector", "key_connector_url", "is_exempt").
				Values(userID, o.ID, o.Name, o.Key, o.Status, o.Type, o.Enabled,
					o.UsePolicies, o.UsesKeyConnector, o.KeyConnectorURL, o.IsExemptFromPolicies).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert organization: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert organization %s: %w", o.ID, err)
			}
		}
		return nil
	})
}

// ReplacePolicies implements [VaultRepository].
func (v *vaultRepository) ReplacePolicies(ctx context.Context, userID string, policies []models.Policy) error {
	return v.replaceAll(ctx, "policies", userID, func(tx *sql.Tx) error {
		for _, p := range policies {
			data, err := json.Marshal(p.Data)
			if err != nil {
				return fmt.Errorf("encode policy data %s: %w", p.ID, err)
			}
			query, args, err := qb.Insert("policies").
				Columns("user_id", "id", "organization_id", "type", "enabled", "data").
				Values(userID, p.ID, p.OrganizationID, p.Type, p.Enabled, string(data)).
				ToSql()
			if err != nil {
				return fmt.Errorf("build insert policy: %w", err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert policy %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

// ReplaceDomains implements [VaultRepository].
func (v *vaultRepository) ReplaceDomains(ctx context.Context, userID string, domains models.Domains) error {
	data, err := json.Marshal(domains)
	if err != nil {
		return fmt.Errorf("encode domains: %w", err)
	}

	return v.replaceAll(ctx, "domains", userID, func(tx *sql.Tx) error {
		query, args, err := qb.Insert("domains").
			Columns("user_id", "data").
			Values(userID, string(data)).
			ToSql()
		if err != nil {
			return fmt.Errorf("build insert domains: %w", err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert domains: %w", err)
		}
		return nil
	})
}

// UpsertCipher implements [VaultRepository]. The write is rejected with
// [ErrRevisionRegression] when the stored copy carries a newer revision date.
func (v *vaultRepository) UpsertCipher(ctx context.Context, cipher models.Cipher) error {
	return v.upsertWithRevisionGuard(ctx, "ciphers", cipher.UserID, cipher.ID, cipher.RevisionDate,
		func(tx *sql.Tx) error {
			return execInsertCipher(ctx, tx, cipher.UserID, cipher)
		})
}

// UpsertFolder implements [VaultRepository].
func (v *vaultRepository) UpsertFolder(ctx context.Context, folder models.Folder) error {
	return v.upsertWithRevisionGuard(ctx, "folders", folder.UserID, folder.ID, folder.RevisionDate,
		func(tx *sql.Tx) error {
			return execInsertFolder(ctx, tx, folder.UserID, folder)
		})
}

// UpsertSend implements [VaultRepository].
func (v *vaultRepository) UpsertSend(ctx context.Context, send models.Send) error {
	return v.upsertWithRevisionGuard(ctx, "sends", send.UserID, send.ID, send.RevisionDate,
		func(tx *sql.Tx) error {
			return execInsertSend(ctx, tx, send.UserID, send)
		})
}

func (v *vaultRepository) upsertWithRevisionGuard(
	ctx context.Context,
	table, userID, id string,
	revision time.Time,
	insert func(tx *sql.Tx) error,
) error {
	tx, err := v.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin upsert tx for %s: %w", table, err)
	}
	defer tx.Rollback()

	query, args, err := qb.Select("revision_date").
		From(table).
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build revision query for %s: %w", table, err)
	}

	var stored int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&stored)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// First write for this id.
	case err != nil:
		return fmt.Errorf("read stored revision for %s/%s: %w", table, id, err)
	default:
		if revision.UnixMilli() < stored {
			return fmt.Errorf("%w: %s/%s", ErrRevisionRegression, table, id)
		}
		del, delArgs, err := qb.Delete(table).Where(sq.Eq{"user_id": userID, "id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("build delete for upsert %s: %w", table, err)
		}
		if _, err = tx.ExecContext(ctx, del, delArgs...); err != nil {
			return fmt.Errorf("delete old row for upsert %s/%s: %w", table, id, err)
		}
	}

	if err = insert(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert tx for %s: %w", table, err)
	}

	return nil
}

// DeleteCipher implements [VaultRepository].
func (v *vaultRepository) DeleteCipher(ctx context.Context, userID, id string) error {
	return v.deleteByID(ctx, "ciphers", userID, id)
}

// DeleteFolder implements [VaultRepository].
func (v *vaultRepository) DeleteFolder(ctx context.Context, userID, id string) error {
	return v.deleteByID(ctx, "folders", userID, id)
}

// DeleteSend implements [VaultRepository].
func (v *vaultRepository) DeleteSend(ctx context.Context, userID, id string) error {
	return v.deleteByID(ctx, "sends", userID, id)
}

func (v *vaultRepository) deleteByID(ctx context.Context, table, userID, id string) error {
	query, args, err := qb.Delete(table).Where(sq.Eq{"user_id": userID, "id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete query for %s: %w", table, err)
	}
	if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete %s/%s: %w", table, id, err)
	}
	return nil
}

// ClearFolderReferences implements [VaultRepository].
func (v *vaultRepository) ClearFolderReferences(ctx context.Context, userID, folderID string) error {
	query, args, err := qb.Update("ciphers").
		Set("folder_id", nil).
		Where(sq.Eq{"user_id": userID, "folder_id": folderID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build clear folder refs query: %w", err)
	}
	if _, err = v.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clear folder references for %s: %w", folderID, err)
	}
	return nil
}

// GetCipher implements [VaultRepository].
func (v *vaultRepository) GetCipher(ctx context.Context, userID, id string) (models.Cipher, error) {
	query, args, err := qb.Select("id", "type", "folder_id", "organization_id",
		"collection_ids", "revision_date", "deleted_date", "data").
		From("ciphers").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return models.Cipher{}, fmt.Errorf("build get cipher query: %w", err)
	}

	row := v.DB.QueryRowContext(ctx, query, args...)
	cipher, err := scanCipher(row, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Cipher{}, fmt.Errorf("%w: cipher %s", ErrNotFound, id)
	}
	if err != nil {
		return models.Cipher{}, fmt.Errorf("scan cipher row: %w", err)
	}

	return cipher, nil
}

// GetFolder implements [VaultRepository].
func (v *vaultRepository) GetFolder(ctx context.Context, userID, id string) (models.Folder, error) {
	query, args, err := qb.Select("id", "revision_date", "data").
		From("folders").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return models.Folder{}, fmt.Errorf("build get folder query: %w", err)
	}

	var folder models.Folder
	var revision int64
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&folder.ID, &revision, &folder.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, fmt.Errorf("%w: folder %s", ErrNotFound, id)
	}
	if err != nil {
		return models.Folder{}, fmt.Errorf("scan folder row: %w", err)
	}

	folder.UserID = userID
	folder.RevisionDate = time.UnixMilli(revision).UTC()
	return folder, nil
}

// GetSend implements [VaultRepository].
func (v *vaultRepository) GetSend(ctx context.Context, userID, id string) (models.Send, error) {
	query, args, err := qb.Select("id", "revision_date", "data").
		From("sends").
		Where(sq.Eq{"user_id": userID, "id": id}).
		ToSql()
	if err != nil {
		return models.Send{}, fmt.Errorf("build get send query: %w", err)
	}

	var send models.Send
	var revision int64
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&send.ID, &revision, &send.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Send{}, fmt.Errorf("%w: send %s", ErrNotFound, id)
	}
	if err != nil {
		return models.Send{}, fmt.Errorf("scan send row: %w", err)
	}

	send.UserID = userID
	send.RevisionDate = time.UnixMilli(revision).UTC()
	return send, nil
}

// ListCollections implements [VaultRepository].
func (v *vaultRepository) ListCollections(ctx context.Context, userID string) ([]models.Collection, error) {
	query, args, err := qb.Select("id", "organization_id", "name", "read_only").
		From("collections").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list collections query: %w", err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	defer rows.Close()

	var collections []models.Collection
	for rows.Next() {
		c := models.Collection{UserID: userID}
		if err := rows.Scan(&c.ID, &c.OrganizationID, &c.Name, &c.ReadOnly); err != nil {
			return nil, fmt.Errorf("scan collection row: %w", err)
		}
		collections = append(collections, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate collection rows: %w", err)
	}

	return collections, nil
}

// ListPolicies implements [VaultRepository].
func (v *vaultRepository) ListPolicies(ctx context.Context, userID string) ([]models.Policy, error) {
	query, args, err := qb.Select("id", "organization_id", "type", "enabled", "data").
		From("policies").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list policies query: %w", err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list policies: %w", err)
	}
	defer rows.Close()

	var policies []models.Policy
	for rows.Next() {
		var p models.Policy
		var data sql.NullString
		if err := rows.Scan(&p.ID, &p.OrganizationID, &p.Type, &p.Enabled, &data); err != nil {
			return nil, fmt.Errorf("scan policy row: %w", err)
		}
		if data.Valid && data.String != "" && data.String != "null" {
			if err := json.Unmarshal([]byte(data.String), &p.Data); err != nil {
				return nil, fmt.Errorf("decode policy data %s: %w", p.ID, err)
			}
		}
		policies = append(policies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate policy rows: %w", err)
	}

	return policies, nil
}

// ListOrganizations implements [VaultRepository].
func (v *vaultRepository) ListOrganizations(ctx context.Context, userID string) ([]models.Organization, error) {
	query, args, err := qb.Select("id", "name", "org_key", "status", "type", "enabled",
		"use_policies", "uses_key_connector", "key_connector_url", "is_exempt").
		From("organizations").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list organizations query: %w", err)
	}

	rows, err := v.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []models.Organization
	for rows.Next() {
		var o models.Organization
		var key sql.NullString
		if err := rows.Scan(&o.ID, &o.Name, &key, &o.Status, &o.Type, &o.Enabled,
			&o.UsePolicies, &o.UsesKeyConnector, &o.KeyConnectorURL, &o.IsExemptFromPolicies); err != nil {
			return nil, fmt.Errorf("scan organization row: %w", err)
		}
		if key.Valid {
			o.Key = &key.String
		}
		orgs = append(orgs, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate organization rows: %w", err)
	}

	return orgs, nil
}

// GetDomains implements [VaultRepository]. An account with no stored domains
// returns the zero value.
func (v *vaultRepository) GetDomains(ctx context.Context, userID string) (models.Domains, error) {
	query, args, err := qb.Select("data").
		From("domains").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.Domains{}, fmt.Errorf("build get domains query: %w", err)
	}

	var data string
	err = v.DB.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Domains{}, nil
	}
	if err != nil {
		return models.Domains{}, fmt.Errorf("scan domains row: %w", err)
	}

	var domains models.Domains
	if err := json.Unmarshal([]byte(data), &domains); err != nil {
		return models.Domains{}, fmt.Errorf("decode domains: %w", err)
	}

	return domains, nil
}

func execInsertCipher(ctx context.Context, tx *sql.Tx, userID string, c models.Cipher) error {
	collectionIDs, err := json.Marshal(c.CollectionIDs)
	if err != nil {
		return fmt.Errorf("encode collection ids for cipher %s: %w", c.ID, err)
	}

	var deleted *int64
	if c.DeletedDate != nil {
		ms := c.DeletedDate.UnixMilli()
		deleted = &ms
	}

	query, args, err := qb.Insert("ciphers").
		Columns("user_id", "id", "type", "folder_id", "organization_id",
			"collection_ids", "revision_date", "deleted_date", "data").
		Values(userID, c.ID, c.Type, c.FolderID, c.OrganizationID,
			string(collectionIDs), c.RevisionDate.UnixMilli(), deleted, []byte(c.Data)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert cipher: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert cipher %s: %w", c.ID, err)
	}
	return nil
}

func execInsertFolder(ctx context.Context, tx *sql.Tx, userID string, f models.Folder) error {
	query, args, err := qb.Insert("folders").
		Columns("user_id", "id", "revision_date", "data").
		Values(userID, f.ID, f.RevisionDate.UnixMilli(), []byte(f.Data)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert folder: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert folder %s: %w", f.ID, err)
	}
	return nil
}

func execInsertSend(ctx context.Context, tx *sql.Tx, userID string, s models.Send) error {
	query, args, err := qb.Insert("sends").
		Columns("user_id", "id", "revision_date", "data").
		Values(userID, s.ID, s.RevisionDate.UnixMilli(), []byte(s.Data)).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert send: %w", err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert send %s: %w", s.ID, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCipher(row rowScanner, userID string) (models.Cipher, error) {
	var c models.Cipher
	var folderID, orgID sql.NullString
	var collectionIDs string
	var revision int64
	var deleted sql.NullInt64

	err := row.Scan(&c.ID, &c.Type, &folderID, &orgID, &collectionIDs, &revision, &deleted, &c.Data)
	if err != nil {
		return models.Cipher{}, err
	}

	c.UserID = userID
	if folderID.Valid {
		c.FolderID = &folderID.String
	}
	if orgID.Valid {
		c.OrganizationID = &orgID.String
	}
	if collectionIDs != "" {
		if err := json.Unmarshal([]byte(collectionIDs), &c.CollectionIDs); err != nil {
			return models.Cipher{}, fmt.Errorf("decode collection ids: %w", err)
		}
	}
	c.RevisionDate = time.UnixMilli(revision).UTC()
	if deleted.Valid {
		t := time.UnixMilli(deleted.Int64).UTC()
		c.DeletedDate = &t
	}

	return c, nil
}
