// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/keywarden/vaultsync/adapter"
	"github.com/keywarden/vaultsync/crypto"
	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
	"github.com/keywarden/vaultsync/store"
)

// defaultMinSyncInterval gates non-forced syncs: two cycles closer together
// than this perform one network sync in total.
const defaultMinSyncInterval = 30 * time.Minute

// syncService is the concrete implementation of [SyncService].
type syncService struct {
	storages    *store.Storages
	adapter     adapter.ServerAdapter
	engine      crypto.Engine
	policies    PolicyService
	timeouts    VaultTimeoutService
	minInterval time.Duration
	logger      *logger.Logger

	// now is swapped in tests.
	now func() time.Time

	// userMu serialises sync cycles per account; different accounts sync in
	// parallel.
	mu     sync.Mutex
	userMu map[string]*sync.Mutex
}

// NewSyncService constructs a [SyncService]. minInterval gates non-forced
// syncs and defaults to 30 minutes when non-positive.
func NewSyncService(
	storages *store.Storages,
	serverAdapter adapter.ServerAdapter,
	engine crypto.Engine,
	policies PolicyService,
	timeouts VaultTimeoutService,
	minInterval time.Duration,
	log *logger.Logger,
) SyncService {
	if minInterval <= 0 {
		minInterval = defaultMinSyncInterval
	}

	return &syncService{
		storages:    storages,
		adapter:     serverAdapter,
		engine:      engine,
		policies:    policies,
		timeouts:    timeouts,
		minInterval: minInterval,
		logger:      log,
		now:         time.Now,
		userMu:      make(map[string]*sync.Mutex),
	}
}

func (s *syncService) lockUser(userID string) func() {
	s.mu.Lock()
	mu, ok := s.userMu[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.userMu[userID] = mu
	}
	s.mu.Unlock()

	mu.Lock()
	return mu.Unlock
}

// newSyncID labels one sync cycle in logs.
func newSyncID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// FetchSync implements [SyncService].
func (s *syncService) FetchSync(ctx context.Context, force bool) (models.SyncOutcome, error) {
	log := &logger.Logger{Logger: logger.FromContext(ctx).With().Str("sync_id", newSyncID()).Logger()}
	ctx = log.WithContext(ctx)

	account, err := s.storages.Accounts.ActiveAccount(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoActiveAccount) {
			return models.SyncOutcome{}, ErrNoActiveAccount
		}
		return models.SyncOutcome{}, fmt.Errorf("resolve active account: %w", err)
	}

	unlock := s.lockUser(account.UserID)
	defer unlock()

	due, err := s.needsSync(ctx, account.UserID, force)
	if err != nil {
		return models.SyncOutcome{}, err
	}
	if !due {
		log.Debug().Str("user_id", account.UserID).Msg("sync not due, skipping")
		return models.SyncOutcome{Kind: models.SyncSkipped}, nil
	}

	snapshot, err := s.adapter.FetchSync(ctx)
	if err != nil {
		return models.SyncOutcome{}, fmt.Errorf("fetch sync snapshot: %w", err)
	}

	// A rotated security stamp means the credentials may have been
	// invalidated elsewhere. Nothing from the snapshot is applied.
	if account.SecurityStamp != "" && snapshot.Profile.SecurityStamp != account.SecurityStamp {
		log.Warn().Str("user_id", account.UserID).Msg("security stamp changed, aborting sync")
		return models.SyncOutcome{Kind: models.SyncSecurityStampChanged}, nil
	}

	outcome := models.SyncOutcome{Kind: models.SyncCompleted}

	s.initOrganizationCrypto(ctx, account.UserID, snapshot.Profile.Organizations)
	if err := s.storages.Vault.ReplaceOrganizations(ctx, account.UserID, snapshot.Profile.Organizations); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("persist organizations: %w", err)
	}

	if orgID, needs := s.needsToSetMasterPassword(account, snapshot); needs {
		outcome = models.SyncOutcome{
			Kind:           models.SyncMustSetMasterPassword,
			OrganizationID: orgID,
		}
	}

	if err := s.updateAccountProfile(ctx, &account, snapshot.Profile); err != nil {
		return models.SyncOutcome{}, err
	}

	if err := s.replaceVaultData(ctx, account.UserID, snapshot); err != nil {
		return models.SyncOutcome{}, err
	}

	if err := s.storages.Accounts.SetLastSyncTime(ctx, account.UserID, s.now()); err != nil {
		return models.SyncOutcome{}, fmt.Errorf("persist last sync time: %w", err)
	}

	if err := s.timeouts.ClampTimeout(ctx, account.UserID); err != nil {
		log.Error().Err(err).
			Str("user_id", account.UserID).
			Msg("failed to clamp vault timeout after sync")
	}

	// A must-set-master-password signal already set above takes precedence:
	// the account cannot migrate off a master password it has yet to set.
	if org, needs := s.needsKeyConnectorMigration(snapshot); needs && outcome.Kind == models.SyncCompleted {
		outcome = models.SyncOutcome{
			Kind:             models.SyncRemoveMasterPassword,
			OrganizationID:   org.ID,
			OrganizationName: org.Name,
			KeyConnectorURL:  org.KeyConnectorURL,
		}
	}

	return outcome, nil
}

// needsSync implements the sync gate. Revision-probe failures count as "no
// information" and resolve to not-due: stale-but-available data beats a full
// refetch on every transient network blip.
func (s *syncService) needsSync(ctx context.Context, userID string, force bool) (bool, error) {
	log := logger.FromContext(ctx)

	lastSync, ok, err := s.storages.Accounts.LastSyncTime(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("read last sync time: %w", err)
	}
	if !ok || force {
		return true, nil
	}

	if s.now().Sub(lastSync) < s.minInterval {
		return false, nil
	}

	revision, known, err := s.adapter.LastRevision(ctx)
	if err != nil {
		log.Warn().Err(err).
			Str("user_id", userID).
			Msg("account revision probe failed, keeping local data")
		return false, nil
	}

	if known && revision.After(lastSync) {
		return true, nil
	}

	// Nothing changed server-side; push lastSync forward so the revision
	// endpoint is not polled again before the next interval.
	if err := s.storages.Accounts.SetLastSyncTime(ctx, userID, s.now()); err != nil {
		return false, fmt.Errorf("refresh last sync time: %w", err)
	}

	return false, nil
}

// initOrganizationCrypto hands the wrapped org keys to the engine. Failures
// are logged and swallowed: affected items fail to decrypt later instead of
// blocking the whole sync.
func (s *syncService) initOrganizationCrypto(ctx context.Context, userID string, orgs []models.Organization) {
	log := logger.FromContext(ctx)

	orgKeys := make(map[string]string, len(orgs))
	for _, org := range orgs {
		if org.Key != nil {
			orgKeys[org.ID] = *org.Key
		}
	}

	if err := s.engine.InitOrganizationKeys(ctx, userID, orgKeys); err != nil {
		log.Error().Err(err).
			Str("user_id", userID).
			Int("org_count", len(orgKeys)).
			Msg("organization crypto initialization failed, continuing sync")
	}
}

// needsToSetMasterPassword detects a trusted-device account without a master
// password that belongs to exactly one organization enforcing one.
func (s *syncService) needsToSetMasterPassword(account models.Account, snapshot models.SyncSnapshot) (string, bool) {
	if account.HasMasterPassword || !account.TrustedDeviceDecryption {
		return "", false
	}

	requiring := make(map[string]struct{})
	for _, policy := range snapshot.Policies {
		if policy.Type == models.PolicyTypeMasterPassword && policy.Enabled {
			requiring[policy.OrganizationID] = struct{}{}
		}
	}

	var matched []string
	for _, org := range snapshot.Profile.Organizations {
		if _, ok := requiring[org.ID]; ok {
			matched = append(matched, org.ID)
		}
	}

	if len(matched) == 1 {
		return matched[0], true
	}
	return "", false
}

func (s *syncService) updateAccountProfile(ctx context.Context, account *models.Account, profile models.Profile) error {
	account.SecurityStamp = profile.SecurityStamp
	account.Email = profile.Email
	account.Name = profile.Name
	account.UsesKeyConnector = profile.UsesKeyConnector
	account.KeyConnectorURL = profile.KeyConnectorURL
	account.ForcePasswordReset = profile.ForcePasswordReset

	if err := s.storages.Accounts.UpsertAccount(ctx, *account); err != nil {
		return fmt.Errorf("update account profile: %w", err)
	}
	return nil
}

// replaceVaultData applies the snapshot wholesale, one entity kind at a
// time. Each replace is atomic for its kind; the multi-kind sequence is not
// transactional, and a crash mid-way is corrected by the next sync.
func (s *syncService) replaceVaultData(ctx context.Context, userID string, snapshot models.SyncSnapshot) error {
	if err := s.storages.Vault.ReplaceCiphers(ctx, userID, snapshot.Ciphers); err != nil {
		return fmt.Errorf("replace ciphers: %w", err)
	}
	if err := s.storages.Vault.ReplaceCollections(ctx, userID, snapshot.Collections); err != nil {
		return fmt.Errorf("replace collections: %w", err)
	}
	if err := s.storages.Vault.ReplaceFolders(ctx, userID, snapshot.Folders); err != nil {
		return fmt.Errorf("replace folders: %w", err)
	}
	if err := s.storages.Vault.ReplaceSends(ctx, userID, snapshot.Sends); err != nil {
		return fmt.Errorf("replace sends: %w", err)
	}
	if err := s.storages.Vault.ReplaceDomains(ctx, userID, snapshot.Domains); err != nil {
		return fmt.Errorf("replace domains: %w", err)
	}
	if err := s.policies.ReplacePolicies(ctx, userID, snapshot.Policies); err != nil {
		return fmt.Errorf("replace policies: %w", err)
	}
	return nil
}

// needsKeyConnectorMigration reports whether the server flags this account
// for key-connector unlock and the managing organization is resolvable.
func (s *syncService) needsKeyConnectorMigration(snapshot models.SyncSnapshot) (models.Organization, bool) {
	if snapshot.Profile.UsesKeyConnector {
		return models.Organization{}, false
	}

	for _, org := range snapshot.Profile.Organizations {
		if org.UsesKeyConnector &&
			org.KeyConnectorURL != "" &&
			org.Status == models.OrgStatusConfirmed &&
			org.Type == models.OrgUserTypeUser {
			return org, true
		}
	}

	return models.Organization{}, false
}
