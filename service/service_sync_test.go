// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/mock"
	"github.com/keywarden/vaultsync/models"
	"github.com/keywarden/vaultsync/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// syncFixture bundles the sync service under test with all of its mocked
// collaborators.
type syncFixture struct {
	svc      *syncService
	vault    *mock.MockVaultRepository
	accounts *mock.MockAccountRepository
	adapter  *mock.MockServerAdapter
	engine   *mock.MockEngine
	policies *mock.MockPolicyService
	timeouts *mock.MockVaultTimeoutService
}

func newTestSyncSvc(t *testing.T, ctrl *gomock.Controller) *syncFixture {
	t.Helper()

	f := &syncFixture{
		vault:    mock.NewMockVaultRepository(ctrl),
		accounts: mock.NewMockAccountRepository(ctrl),
		adapter:  mock.NewMockServerAdapter(ctrl),
		engine:   mock.NewMockEngine(ctrl),
		policies: mock.NewMockPolicyService(ctrl),
		timeouts: mock.NewMockVaultTimeoutService(ctrl),
	}

	storages := &store.Storages{
		Vault:    f.vault,
		Accounts: f.accounts,
	}

	f.svc = NewSyncService(storages, f.adapter, f.engine, f.policies, f.timeouts, 0, logger.Nop()).(*syncService)
	return f
}

func testCtx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

// expectSnapshotApplied registers the full set of write expectations for a
// successfully applied snapshot.
func (f *syncFixture) expectSnapshotApplied(ctx context.Context, userID string, snapshot models.SyncSnapshot) {
	f.engine.EXPECT().InitOrganizationKeys(ctx, userID, gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceOrganizations(ctx, userID, snapshot.Profile.Organizations).Return(nil)
	f.accounts.EXPECT().UpsertAccount(ctx, gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceCiphers(ctx, userID, snapshot.Ciphers).Return(nil)
	f.vault.EXPECT().ReplaceCollections(ctx, userID, snapshot.Collections).Return(nil)
	f.vault.EXPECT().ReplaceFolders(ctx, userID, snapshot.Folders).Return(nil)
	f.vault.EXPECT().ReplaceSends(ctx, userID, snapshot.Sends).Return(nil)
	f.vault.EXPECT().ReplaceDomains(ctx, userID, snapshot.Domains).Return(nil)
	f.policies.EXPECT().ReplacePolicies(ctx, userID, snapshot.Policies).Return(nil)
	f.accounts.EXPECT().SetLastSyncTime(ctx, userID, gomock.Any()).Return(nil)
	f.timeouts.EXPECT().ClampTimeout(ctx, userID).Return(nil)
}

// ── FetchSync ────────────────────────────────────────────────────────────────

func TestSyncService_FetchSync_NoActiveAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	f.accounts.EXPECT().ActiveAccount(ctx).Return(models.Account{}, store.ErrNoActiveAccount)

	_, err := f.svc.FetchSync(ctx, false)
	require.ErrorIs(t, err, ErrNoActiveAccount)
}

func TestSyncService_FetchSync_FirstSyncIsAlwaysDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{UserID: "user-1", SecurityStamp: "stamp-1", Email: "u@example.com"},
		Ciphers: []models.Cipher{{ID: "c1", Type: models.CipherTypeLogin, RevisionDate: time.Now()}},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, outcome.Kind)
	assert.True(t, outcome.Completed())
}

func TestSyncService_FetchSync_SkippedWithinInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.accounts.EXPECT().ActiveAccount(ctx).Return(models.Account{UserID: "user-1"}, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(now.Add(-10*time.Minute), true, nil)

	outcome, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncSkipped, outcome.Kind)
	assert.False(t, outcome.Completed())
}

func TestSyncService_FetchSync_TwoCloseCyclesOneNetworkSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{UserID: "user-1", SecurityStamp: "stamp-1"},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil).Times(2)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(now, true, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil).Times(1)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	first, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, first.Kind)

	second, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncSkipped, second.Kind)
}

func TestSyncService_FetchSync_ForceBypassesInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{UserID: "user-1", SecurityStamp: "stamp-1"},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(now.Add(-time.Minute), true, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, outcome.Kind)
}

func TestSyncService_FetchSync_RevisionProbeShowsNoNewData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lastSync := now.Add(-2 * time.Hour)
	f.svc.now = func() time.Time { return now }

	f.accounts.EXPECT().ActiveAccount(ctx).Return(models.Account{UserID: "user-1"}, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(lastSync, true, nil)
	f.adapter.EXPECT().LastRevision(ctx).Return(lastSync.Add(-time.Hour), true, nil)
	// lastSync is pushed forward so the probe is not repeated before the
	// next interval.
	f.accounts.EXPECT().SetLastSyncTime(ctx, "user-1", now).Return(nil)

	outcome, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncSkipped, outcome.Kind)
}

func TestSyncService_FetchSync_RevisionProbeFailureKeepsLocalData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	f.svc.now = func() time.Time { return now }

	f.accounts.EXPECT().ActiveAccount(ctx).Return(models.Account{UserID: "user-1"}, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(now.Add(-2*time.Hour), true, nil)
	f.adapter.EXPECT().LastRevision(ctx).Return(time.Time{}, false, errors.New("server unavailable"))

	outcome, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncSkipped, outcome.Kind)
}

func TestSyncService_FetchSync_NewerRevisionTriggersSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	lastSync := now.Add(-2 * time.Hour)
	f.svc.now = func() time.Time { return now }

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{UserID: "user-1", SecurityStamp: "stamp-1"},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(lastSync, true, nil)
	f.adapter.EXPECT().LastRevision(ctx).Return(lastSync.Add(time.Hour), true, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, outcome.Kind)
}

func TestSyncService_FetchSync_SecurityStampChangedAppliesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-old"}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{UserID: "user-1", SecurityStamp: "stamp-new"},
		Ciphers: []models.Cipher{{ID: "c1"}},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	// No write expectations: the controller fails the test if anything from
	// the snapshot is persisted.

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncSecurityStampChanged, outcome.Kind)
	assert.False(t, outcome.Completed())
}

func TestSyncService_FetchSync_EngineFailureDoesNotBlockSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	orgKey := "wrapped-org-key"
	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:        "user-1",
			SecurityStamp: "stamp-1",
			Organizations: []models.Organization{{ID: "org-1", Key: &orgKey}},
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)

	f.engine.EXPECT().
		InitOrganizationKeys(ctx, "user-1", map[string]string{"org-1": orgKey}).
		Return(errors.New("bad key material"))
	f.vault.EXPECT().ReplaceOrganizations(ctx, "user-1", snapshot.Profile.Organizations).Return(nil)
	f.accounts.EXPECT().UpsertAccount(ctx, gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceCiphers(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceCollections(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceFolders(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceSends(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceDomains(ctx, "user-1", gomock.Any()).Return(nil)
	f.policies.EXPECT().ReplacePolicies(ctx, "user-1", gomock.Any()).Return(nil)
	f.accounts.EXPECT().SetLastSyncTime(ctx, "user-1", gomock.Any()).Return(nil)
	f.timeouts.EXPECT().ClampTimeout(ctx, "user-1").Return(nil)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, outcome.Kind)
}

func TestSyncService_FetchSync_ProfileUpdatesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", Email: "old@example.com", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:        "user-1",
			SecurityStamp: "stamp-1",
			Email:         "new@example.com",
			Name:          "New Name",
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)

	f.engine.EXPECT().InitOrganizationKeys(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceOrganizations(ctx, "user-1", gomock.Any()).Return(nil)
	f.accounts.EXPECT().UpsertAccount(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, updated models.Account) error {
			assert.Equal(t, "new@example.com", updated.Email)
			assert.Equal(t, "New Name", updated.Name)
			return nil
		})
	f.vault.EXPECT().ReplaceCiphers(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceCollections(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceFolders(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceSends(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceDomains(ctx, "user-1", gomock.Any()).Return(nil)
	f.policies.EXPECT().ReplacePolicies(ctx, "user-1", gomock.Any()).Return(nil)
	f.accounts.EXPECT().SetLastSyncTime(ctx, "user-1", gomock.Any()).Return(nil)
	f.timeouts.EXPECT().ClampTimeout(ctx, "user-1").Return(nil)

	_, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
}

// ── Follow-up signals ────────────────────────────────────────────────────────

func TestSyncService_FetchSync_MustSetMasterPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{
		UserID:                  "user-1",
		TrustedDeviceDecryption: true,
		HasMasterPassword:       false,
	}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:        "user-1",
			SecurityStamp: "stamp-1",
			Organizations: []models.Organization{{ID: "org-1", Status: models.OrgStatusConfirmed}},
		},
		Policies: []models.Policy{
			{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true},
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncMustSetMasterPassword, outcome.Kind)
	assert.Equal(t, "org-1", outcome.OrganizationID)
	assert.True(t, outcome.Completed())
}

func TestSyncService_FetchSync_MustSetMasterPassword_AmbiguousOrgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{
		UserID:                  "user-1",
		TrustedDeviceDecryption: true,
	}
	// Two organizations both require a master password: no unambiguous
	// target, no signal.
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:        "user-1",
			SecurityStamp: "stamp-1",
			Organizations: []models.Organization{{ID: "org-1"}, {ID: "org-2"}},
		},
		Policies: []models.Policy{
			{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true},
			{ID: "p2", OrganizationID: "org-2", Type: models.PolicyTypeMasterPassword, Enabled: true},
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, outcome.Kind)
}

func TestSyncService_FetchSync_KeyConnectorMigration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:           "user-1",
			SecurityStamp:    "stamp-1",
			UsesKeyConnector: false,
			Organizations: []models.Organization{{
				ID:               "org-1",
				Name:             "Acme",
				UsesKeyConnector: true,
				KeyConnectorURL:  "https://kc.acme.example",
				Status:           models.OrgStatusConfirmed,
				Type:             models.OrgUserTypeUser,
			}},
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncRemoveMasterPassword, outcome.Kind)
	assert.Equal(t, "org-1", outcome.OrganizationID)
	assert.Equal(t, "Acme", outcome.OrganizationName)
	assert.Equal(t, "https://kc.acme.example", outcome.KeyConnectorURL)
}

func TestSyncService_FetchSync_MustSetMasterPasswordBeatsKeyConnectorMigration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	// The account qualifies for both follow-up signals at once: it must set
	// a master password, and its organization runs a key connector. It
	// cannot migrate off a password it has yet to set, so the set-password
	// signal must win.
	account := models.Account{
		UserID:                  "user-1",
		TrustedDeviceDecryption: true,
		HasMasterPassword:       false,
	}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:           "user-1",
			SecurityStamp:    "stamp-1",
			UsesKeyConnector: false,
			Organizations: []models.Organization{{
				ID:               "org-1",
				Name:             "Acme",
				UsesKeyConnector: true,
				KeyConnectorURL:  "https://kc.acme.example",
				Status:           models.OrgStatusConfirmed,
				Type:             models.OrgUserTypeUser,
			}},
		},
		Policies: []models.Policy{
			{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true},
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncMustSetMasterPassword, outcome.Kind)
	assert.Equal(t, "org-1", outcome.OrganizationID)
}

func TestSyncService_FetchSync_NoMigrationForAdmins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{
			UserID:        "user-1",
			SecurityStamp: "stamp-1",
			Organizations: []models.Organization{{
				ID:               "org-1",
				UsesKeyConnector: true,
				KeyConnectorURL:  "https://kc.acme.example",
				Status:           models.OrgStatusConfirmed,
				Type:             models.OrgUserTypeAdmin,
			}},
		},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.expectSnapshotApplied(ctx, "user-1", snapshot)

	outcome, err := f.svc.FetchSync(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, models.SyncCompleted, outcome.Kind)
}

// ── Error propagation ────────────────────────────────────────────────────────

func TestSyncService_FetchSync_AdapterErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	f.accounts.EXPECT().ActiveAccount(ctx).Return(models.Account{UserID: "user-1"}, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(models.SyncSnapshot{}, errors.New("server unavailable"))

	_, err := f.svc.FetchSync(ctx, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch sync snapshot")
}

func TestSyncService_FetchSync_ReplaceErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newTestSyncSvc(t, ctrl)
	ctx := testCtx()

	account := models.Account{UserID: "user-1", SecurityStamp: "stamp-1", HasMasterPassword: true}
	snapshot := models.SyncSnapshot{
		Profile: models.Profile{UserID: "user-1", SecurityStamp: "stamp-1"},
	}

	f.accounts.EXPECT().ActiveAccount(ctx).Return(account, nil)
	f.accounts.EXPECT().LastSyncTime(ctx, "user-1").Return(time.Time{}, false, nil)
	f.adapter.EXPECT().FetchSync(ctx).Return(snapshot, nil)
	f.engine.EXPECT().InitOrganizationKeys(ctx, "user-1", gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceOrganizations(ctx, "user-1", gomock.Any()).Return(nil)
	f.accounts.EXPECT().UpsertAccount(ctx, gomock.Any()).Return(nil)
	f.vault.EXPECT().ReplaceCiphers(ctx, "user-1", gomock.Any()).Return(errors.New("disk full"))

	_, err := f.svc.FetchSync(ctx, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "replace ciphers")
}
