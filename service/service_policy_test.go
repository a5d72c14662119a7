// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package service

import (
	"testing"

	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/mock"
	"github.com/keywarden/vaultsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPolicySvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*policyService,
	*mock.MockVaultRepository,
	*PolicyCache,
) {
	t.Helper()
	mockVault := mock.NewMockVaultRepository(ctrl)
	cache := NewPolicyCache()

	svc := NewPolicyService(mockVault, cache, logger.Nop()).(*policyService)
	return svc, mockVault, cache
}

// subscribedOrg returns an organization the user is fully subject to.
func subscribedOrg(id string) models.Organization {
	return models.Organization{
		ID:          id,
		Status:      models.OrgStatusConfirmed,
		UsePolicies: true,
	}
}

// ── ReplacePolicies ──────────────────────────────────────────────────────────

func TestPolicyService_ReplacePolicies_PersistsAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, cache := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{{ID: "p1", Type: models.PolicyTypeMasterPassword, Enabled: true}}

	mockVault.EXPECT().ReplacePolicies(ctx, "user-1", policies).Return(nil)

	require.NoError(t, svc.ReplacePolicies(ctx, "user-1", policies))

	cached, ok := cache.Get("user-1")
	require.True(t, ok)
	assert.Equal(t, policies, cached)
}

// ── PoliciesApplyingToUser ───────────────────────────────────────────────────

func TestPolicyService_PoliciesApplyingToUser_Filters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{ID: "applies", OrganizationID: "org-ok", Type: models.PolicyTypeMasterPassword, Enabled: true},
		{ID: "disabled", OrganizationID: "org-ok", Type: models.PolicyTypeMasterPassword, Enabled: false},
		{ID: "other-type", OrganizationID: "org-ok", Type: models.PolicyTypeDisableSend, Enabled: true},
		{ID: "invited-org", OrganizationID: "org-invited", Type: models.PolicyTypeMasterPassword, Enabled: true},
		{ID: "no-policies-org", OrganizationID: "org-free", Type: models.PolicyTypeMasterPassword, Enabled: true},
		{ID: "exempt-org", OrganizationID: "org-exempt", Type: models.PolicyTypeMasterPassword, Enabled: true},
		{ID: "unknown-org", OrganizationID: "org-gone", Type: models.PolicyTypeMasterPassword, Enabled: true},
	}
	orgs := []models.Organization{
		subscribedOrg("org-ok"),
		{ID: "org-invited", Status: models.OrgStatusInvited, UsePolicies: true},
		{ID: "org-free", Status: models.OrgStatusConfirmed, UsePolicies: false},
		{ID: "org-exempt", Status: models.OrgStatusConfirmed, UsePolicies: true, IsExemptFromPolicies: true},
	}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	applying, err := svc.PoliciesApplyingToUser(ctx, "user-1", models.PolicyTypeMasterPassword)
	require.NoError(t, err)
	require.Len(t, applying, 1)
	assert.Equal(t, "applies", applying[0].ID)
}

func TestPolicyService_PasswordGeneratorBindsExemptUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{ID: "p1", OrganizationID: "org-exempt", Type: models.PolicyTypePasswordGenerator, Enabled: true},
	}
	orgs := []models.Organization{
		{ID: "org-exempt", Status: models.OrgStatusConfirmed, UsePolicies: true, IsExemptFromPolicies: true},
	}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	applying, err := svc.PoliciesApplyingToUser(ctx, "user-1", models.PolicyTypePasswordGenerator)
	require.NoError(t, err)
	assert.Len(t, applying, 1)
}

func TestPolicyService_VaultTimeoutSparesOwners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMaximumVaultTimeout, Enabled: true},
	}
	orgs := []models.Organization{
		{ID: "org-1", Status: models.OrgStatusConfirmed, UsePolicies: true, Type: models.OrgUserTypeOwner},
	}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	applying, err := svc.PoliciesApplyingToUser(ctx, "user-1", models.PolicyTypeMaximumVaultTimeout)
	require.NoError(t, err)
	assert.Empty(t, applying)
}

func TestPolicyService_PoliciesApplyingToUser_UsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, cache := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	cache.Replace("user-1", []models.Policy{
		{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true},
	})

	// Only organizations are read from the store; the policy list comes from
	// the cache.
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").
		Return([]models.Organization{subscribedOrg("org-1")}, nil)

	applying, err := svc.PoliciesApplyingToUser(ctx, "user-1", models.PolicyTypeMasterPassword)
	require.NoError(t, err)
	assert.Len(t, applying, 1)
}

// ── PasswordGeneratorOptions ─────────────────────────────────────────────────

func TestPolicyService_PasswordGeneratorOptions_Merge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{
			ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypePasswordGenerator, Enabled: true,
			Data: map[string]any{"minLength": float64(8), "useUpper": true},
		},
		{
			ID: "p2", OrganizationID: "org-2", Type: models.PolicyTypePasswordGenerator, Enabled: true,
			Data: map[string]any{"minLength": float64(12), "useNumbers": true},
		},
	}
	orgs := []models.Organization{subscribedOrg("org-1"), subscribedOrg("org-2")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	opts, ok, err := svc.PasswordGeneratorOptions(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, opts.MinLength)
	assert.True(t, opts.UseUpper)
	assert.True(t, opts.UseNumbers)
	assert.False(t, opts.UseSpecial)
}

func TestPolicyService_PasswordGeneratorOptions_PasswordBeatsPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{
			ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypePasswordGenerator, Enabled: true,
			Data: map[string]any{"overridePasswordType": "passphrase"},
		},
		{
			ID: "p2", OrganizationID: "org-2", Type: models.PolicyTypePasswordGenerator, Enabled: true,
			Data: map[string]any{"overridePasswordType": "password"},
		},
	}
	orgs := []models.Organization{subscribedOrg("org-1"), subscribedOrg("org-2")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	opts, ok, err := svc.PasswordGeneratorOptions(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "password", opts.OverridePasswordType)
}

func TestPolicyService_PasswordGeneratorOptions_NoneApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(nil, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(nil, nil)

	_, ok, err := svc.PasswordGeneratorOptions(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── MasterPasswordRequirements ───────────────────────────────────────────────

func TestPolicyService_MasterPasswordRequirements_Merge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{
			ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true,
			Data: map[string]any{"minLength": float64(12), "requireUpper": true},
		},
		{
			ID: "p2", OrganizationID: "org-2", Type: models.PolicyTypeMasterPassword, Enabled: true,
			Data: map[string]any{"minLength": float64(8), "requireNumbers": true},
		},
	}
	orgs := []models.Organization{subscribedOrg("org-1"), subscribedOrg("org-2")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	reqs, ok, err := svc.MasterPasswordRequirements(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 12, reqs.MinLength)
	assert.True(t, reqs.RequireUpper)
	assert.True(t, reqs.RequireNumbers)
	assert.False(t, reqs.RequireSpecial)
}

func TestPolicyService_MasterPasswordRequirements_NullDataIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMasterPassword, Enabled: true},
	}
	orgs := []models.Organization{subscribedOrg("org-1")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	_, ok, err := svc.MasterPasswordRequirements(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── TimeoutPolicy ────────────────────────────────────────────────────────────

func TestPolicyService_TimeoutPolicy_LastWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{
			ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMaximumVaultTimeout, Enabled: true,
			Data: map[string]any{"minutes": float64(120), "action": "lock"},
		},
		{
			ID: "p2", OrganizationID: "org-2", Type: models.PolicyTypeMaximumVaultTimeout, Enabled: true,
			Data: map[string]any{"minutes": float64(60)},
		},
	}
	orgs := []models.Organization{subscribedOrg("org-1"), subscribedOrg("org-2")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	policy, ok, err := svc.TimeoutPolicy(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 60, policy.Minutes)
	// The second policy carries no action: the previous explicit one stands.
	assert.Equal(t, models.TimeoutActionLock, policy.Action)
}

func TestPolicyService_TimeoutPolicy_EmptyActionLeftToUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{
			ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeMaximumVaultTimeout, Enabled: true,
			Data: map[string]any{"minutes": float64(60)},
		},
	}
	orgs := []models.Organization{subscribedOrg("org-1")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	policy, ok, err := svc.TimeoutPolicy(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 60, policy.Minutes)
	assert.Empty(t, policy.Action)
}

// ── RestrictedItemTypes ──────────────────────────────────────────────────────

func TestPolicyService_RestrictedItemTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	policies := []models.Policy{
		{ID: "p1", OrganizationID: "org-1", Type: models.PolicyTypeRestrictItemTypes, Enabled: true},
	}
	orgs := []models.Organization{subscribedOrg("org-1")}

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(policies, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(orgs, nil)

	restricted, err := svc.RestrictedItemTypes(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, []models.CipherType{models.CipherTypeCard}, restricted)
}

func TestPolicyService_RestrictedItemTypes_NonePresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockVault, _ := newTestPolicySvc(t, ctrl)
	ctx := testCtx()

	mockVault.EXPECT().ListPolicies(ctx, "user-1").Return(nil, nil)
	mockVault.EXPECT().ListOrganizations(ctx, "user-1").Return(nil, nil)

	restricted, err := svc.RestrictedItemTypes(ctx, "user-1")
	require.NoError(t, err)
	assert.Nil(t, restricted)
}
