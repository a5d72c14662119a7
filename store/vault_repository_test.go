// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
)

func newTestVaultRepo(t *testing.T) VaultRepository {
	t.Helper()
	return NewVaultRepository(newTestDB(t), logger.Nop())
}

func strPtr(s string) *string { return &s }

// Revision dates are persisted at millisecond precision, so fixtures stay at
// that precision to keep roundtrip comparisons exact.
var baseRevision = time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

func testCipher(userID, id string) models.Cipher {
	return models.Cipher{
		ID:            id,
		UserID:        userID,
		Type:          models.CipherTypeLogin,
		CollectionIDs: []string{"col-1", "col-2"},
		RevisionDate:  baseRevision,
		Data:          json.RawMessage(`{"name":"2.encrypted","login":{}}`),
	}
}

// ── Replace ──────────────────────────────────────────────────────────

func TestReplaceCiphers_Roundtrip(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	deleted := baseRevision.Add(time.Hour)
	cipher := testCipher("user-1", "cipher-1")
	cipher.FolderID = strPtr("folder-1")
	cipher.OrganizationID = strPtr("org-1")
	cipher.DeletedDate = &deleted

	require.NoError(t, repo.ReplaceCiphers(ctx, "user-1", []models.Cipher{cipher}))

	got, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	require.NoError(t, err)
	assert.Equal(t, cipher, got)
}

func TestReplaceCiphers_DiscardsPreviousSet(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceCiphers(ctx, "user-1", []models.Cipher{
		testCipher("user-1", "old-1"),
		testCipher("user-1", "old-2"),
	}))
	require.NoError(t, repo.ReplaceCiphers(ctx, "user-1", []models.Cipher{
		testCipher("user-1", "new-1"),
	}))

	_, err := repo.GetCipher(ctx, "user-1", "old-1")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repo.GetCipher(ctx, "user-1", "new-1")
	assert.NoError(t, err)
}

func TestReplaceCiphers_PerUserIsolation(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplaceCiphers(ctx, "user-1", []models.Cipher{testCipher("user-1", "cipher-1")}))
	require.NoError(t, repo.ReplaceCiphers(ctx, "user-2", []models.Cipher{testCipher("user-2", "cipher-2")}))

	// Replacing user-2's set with nothing must not touch user-1's data.
	require.NoError(t, repo.ReplaceCiphers(ctx, "user-2", nil))

	_, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	assert.NoError(t, err)

	_, err = repo.GetCipher(ctx, "user-2", "cipher-2")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReplaceCollections_Roundtrip(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	collections := []models.Collection{
		{ID: "col-1", UserID: "user-1", OrganizationID: "org-1", Name: "2.encname", ReadOnly: false},
		{ID: "col-2", UserID: "user-1", OrganizationID: "org-1", ReadOnly: true},
	}
	require.NoError(t, repo.ReplaceCollections(ctx, "user-1", collections))

	got, err := repo.ListCollections(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, collections, got)
}

func TestReplaceOrganizations_Roundtrip(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	orgs := []models.Organization{
		{
			ID:               "org-1",
			Name:             "Acme",
			Key:              strPtr("4.wrappedkey"),
			Status:           models.OrgStatusConfirmed,
			Type:             models.OrgUserTypeUser,
			Enabled:          true,
			UsePolicies:      true,
			UsesKeyConnector: true,
			KeyConnectorURL:  "https://key.acme.example",
		},
		{
			ID:                   "org-2",
			Name:                 "Globex",
			Status:               models.OrgStatusAccepted,
			Type:                 models.OrgUserTypeOwner,
			IsExemptFromPolicies: true,
		},
	}
	require.NoError(t, repo.ReplaceOrganizations(ctx, "user-1", orgs))

	got, err := repo.ListOrganizations(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, orgs, got)
}

func TestReplacePolicies_Roundtrip(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	policies := []models.Policy{
		{
			ID:             "pol-1",
			OrganizationID: "org-1",
			Type:           models.PolicyTypePasswordGenerator,
			Enabled:        true,
			Data:           map[string]any{"minLength": float64(12), "useNumbers": true},
		},
		{
			ID:             "pol-2",
			OrganizationID: "org-1",
			Type:           models.PolicyTypeDisableSend,
			Enabled:        false,
		},
	}
	require.NoError(t, repo.ReplacePolicies(ctx, "user-1", policies))

	got, err := repo.ListPolicies(ctx, "user-1")
	require.NoError(t, err)
	assert.ElementsMatch(t, policies, got)
}

func TestReplaceDomains_Roundtrip(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	domains := models.Domains{
		EquivalentDomains: [][]string{{"example.com", "example.net"}},
		GlobalEquivalentDomains: []models.GlobalDomains{
			{Type: 2, Domains: []string{"google.com", "youtube.com"}, Excluded: true},
		},
	}
	require.NoError(t, repo.ReplaceDomains(ctx, "user-1", domains))

	got, err := repo.GetDomains(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, domains, got)
}

func TestGetDomains_NeverStored(t *testing.T) {
	repo := newTestVaultRepo(t)

	got, err := repo.GetDomains(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.Domains{}, got)
}

func TestReplaceAll_SameSnapshotTwiceIsIdempotent(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	ciphers := []models.Cipher{
		testCipher("user-1", "cipher-1"),
		testCipher("user-1", "cipher-2"),
	}
	ciphers[1].FolderID = strPtr("folder-1")
	folders := []models.Folder{
		{ID: "folder-1", UserID: "user-1", RevisionDate: baseRevision, Data: json.RawMessage(`{"name":"2.encfolder"}`)},
	}
	collections := []models.Collection{
		{ID: "col-1", UserID: "user-1", OrganizationID: "org-1", ReadOnly: true},
	}
	policies := []models.Policy{
		{ID: "pol-1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword,
			Enabled: true, Data: map[string]any{"minLength": float64(12)}},
	}

	applySnapshot := func() {
		require.NoError(t, repo.ReplaceCiphers(ctx, "user-1", ciphers))
		require.NoError(t, repo.ReplaceFolders(ctx, "user-1", folders))
		require.NoError(t, repo.ReplaceCollections(ctx, "user-1", collections))
		require.NoError(t, repo.ReplacePolicies(ctx, "user-1", policies))
	}

	type replicaState struct {
		ciphers     []models.Cipher
		folder      models.Folder
		collections []models.Collection
		policies    []models.Policy
	}
	readBack := func() replicaState {
		var state replicaState
		for _, id := range []string{"cipher-1", "cipher-2"} {
			c, err := repo.GetCipher(ctx, "user-1", id)
			require.NoError(t, err)
			state.ciphers = append(state.ciphers, c)
		}
		var err error
		state.folder, err = repo.GetFolder(ctx, "user-1", "folder-1")
		require.NoError(t, err)
		state.collections, err = repo.ListCollections(ctx, "user-1")
		require.NoError(t, err)
		state.policies, err = repo.ListPolicies(ctx, "user-1")
		require.NoError(t, err)
		return state
	}

	applySnapshot()
	first := readBack()

	applySnapshot()
	assert.Equal(t, first, readBack())
}

// ── Upsert revision guard ────────────────────────────────────────────

func TestUpsertCipher_FirstWrite(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	cipher := testCipher("user-1", "cipher-1")
	require.NoError(t, repo.UpsertCipher(ctx, cipher))

	got, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	require.NoError(t, err)
	assert.Equal(t, cipher, got)
}

func TestUpsertCipher_RejectsOlderRevision(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	current := testCipher("user-1", "cipher-1")
	require.NoError(t, repo.UpsertCipher(ctx, current))

	stale := testCipher("user-1", "cipher-1")
	stale.RevisionDate = baseRevision.Add(-time.Minute)
	stale.Data = json.RawMessage(`{"name":"2.stale"}`)

	err := repo.UpsertCipher(ctx, stale)
	assert.ErrorIs(t, err, ErrRevisionRegression)

	// The stored copy is untouched.
	got, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	require.NoError(t, err)
	assert.Equal(t, current.Data, got.Data)
}

func TestUpsertCipher_AcceptsEqualRevision(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCipher(ctx, testCipher("user-1", "cipher-1")))

	rewrite := testCipher("user-1", "cipher-1")
	rewrite.Data = json.RawMessage(`{"name":"2.rewritten"}`)
	require.NoError(t, repo.UpsertCipher(ctx, rewrite))

	got, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	require.NoError(t, err)
	assert.Equal(t, rewrite.Data, got.Data)
}

func TestUpsertCipher_AcceptsNewerRevision(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCipher(ctx, testCipher("user-1", "cipher-1")))

	newer := testCipher("user-1", "cipher-1")
	newer.RevisionDate = baseRevision.Add(time.Minute)
	newer.FolderID = strPtr("folder-1")
	require.NoError(t, repo.UpsertCipher(ctx, newer))

	got, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	require.NoError(t, err)
	assert.Equal(t, newer, got)
}

func TestUpsertFolder_Roundtrip(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	folder := models.Folder{
		ID:           "folder-1",
		UserID:       "user-1",
		RevisionDate: baseRevision,
		Data:         json.RawMessage(`{"name":"2.encfolder"}`),
	}
	require.NoError(t, repo.UpsertFolder(ctx, folder))

	got, err := repo.GetFolder(ctx, "user-1", "folder-1")
	require.NoError(t, err)
	assert.Equal(t, folder, got)
}

func TestUpsertSend_RejectsOlderRevision(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	send := models.Send{
		ID:           "send-1",
		UserID:       "user-1",
		RevisionDate: baseRevision,
		Data:         json.RawMessage(`{"name":"2.encsend"}`),
	}
	require.NoError(t, repo.UpsertSend(ctx, send))

	send.RevisionDate = baseRevision.Add(-time.Second)
	assert.ErrorIs(t, repo.UpsertSend(ctx, send), ErrRevisionRegression)
}

// ── Delete ───────────────────────────────────────────────────────────

func TestDeleteCipher(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.UpsertCipher(ctx, testCipher("user-1", "cipher-1")))
	require.NoError(t, repo.DeleteCipher(ctx, "user-1", "cipher-1"))

	_, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCipher_AbsentIsNoOp(t *testing.T) {
	repo := newTestVaultRepo(t)
	assert.NoError(t, repo.DeleteCipher(context.Background(), "user-1", "ghost"))
}

func TestDeleteFolder(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	folder := models.Folder{ID: "folder-1", UserID: "user-1", RevisionDate: baseRevision}
	require.NoError(t, repo.UpsertFolder(ctx, folder))
	require.NoError(t, repo.DeleteFolder(ctx, "user-1", "folder-1"))

	_, err := repo.GetFolder(ctx, "user-1", "folder-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClearFolderReferences(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	inFolder := testCipher("user-1", "cipher-1")
	inFolder.FolderID = strPtr("folder-1")
	elsewhere := testCipher("user-1", "cipher-2")
	elsewhere.FolderID = strPtr("folder-2")
	require.NoError(t, repo.ReplaceCiphers(ctx, "user-1", []models.Cipher{inFolder, elsewhere}))

	require.NoError(t, repo.ClearFolderReferences(ctx, "user-1", "folder-1"))

	got, err := repo.GetCipher(ctx, "user-1", "cipher-1")
	require.NoError(t, err)
	assert.Nil(t, got.FolderID)

	got, err = repo.GetCipher(ctx, "user-1", "cipher-2")
	require.NoError(t, err)
	require.NotNil(t, got.FolderID)
	assert.Equal(t, "folder-2", *got.FolderID)
}

// ── List ─────────────────────────────────────────────────────────────

func TestListCollections_Empty(t *testing.T) {
	repo := newTestVaultRepo(t)

	got, err := repo.ListCollections(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListPolicies_PerUserIsolation(t *testing.T) {
	repo := newTestVaultRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.ReplacePolicies(ctx, "user-1", []models.Policy{
		{ID: "pol-1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true},
	}))

	got, err := repo.ListPolicies(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, got)
}
