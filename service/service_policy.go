// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Keywarden Authors

package service

import (
	"context"
	"fmt"

	"github.com/keywarden/vaultsync/logger"
	"github.com/keywarden/vaultsync/models"
	"github.com/keywarden/vaultsync/store"
)

// policyService aggregates organization policies into effective settings.
// Policy lists are cached per user in the injected [PolicyCache] and loaded
// lazily from the local replica on a miss.
type policyService struct {
	vault  store.VaultRepository
	cache  *PolicyCache
	logger *logger.Logger
}

// NewPolicyService constructs a [PolicyService] backed by the local replica
// and the injected cache.
func NewPolicyService(vault store.VaultRepository, cache *PolicyCache, log *logger.Logger) PolicyService {
	return &policyService{vault: vault, cache: cache, logger: log}
}

// ReplacePolicies implements [PolicyService].
func (p *policyService) ReplacePolicies(ctx context.Context, userID string, policies []models.Policy) error {
	if err := p.vault.ReplacePolicies(ctx, userID, policies); err != nil {
		return fmt.Errorf("replace stored policies: %w", err)
	}

	p.cache.Replace(userID, policies)
	return nil
}

func (p *policyService) userPolicies(ctx context.Context, userID string) ([]models.Policy, error) {
	if cached, ok := p.cache.Get(userID); ok {
		return cached, nil
	}

	policies, err := p.vault.ListPolicies(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load policies from local store: %w", err)
	}

	p.cache.Replace(userID, policies)
	return policies, nil
}

// PoliciesApplyingToUser implements [PolicyService].
func (p *policyService) PoliciesApplyingToUser(ctx context.Context, userID string, policyType models.PolicyType) ([]models.Policy, error) {
	policies, err := p.userPolicies(ctx, userID)
	if err != nil {
		return nil, err
	}

	orgs, err := p.vault.ListOrganizations(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load organizations from local store: %w", err)
	}

	orgByID := make(map[string]models.Organization, len(orgs))
	for _, org := range orgs {
		orgByID[org.ID] = org
	}

	var applying []models.Policy
	for _, policy := range policies {
		if policy.Type != policyType || !policy.Enabled {
			continue
		}

		org, ok := orgByID[policy.OrganizationID]
		if !ok {
			continue
		}
		if org.Status != models.OrgStatusAccepted && org.Status != models.OrgStatusConfirmed {
			continue
		}
		if !org.UsePolicies {
			continue
		}
		if orgExemptFromPolicy(org, policyType) {
			continue
		}

		applying = append(applying, policy)
	}

	return applying, nil
}

// orgExemptFromPolicy decides whether org's exemption shields the user from
// a policy of the given type. Password-generator, remove-unlock-with-pin and
// restrict-item-types policies bind everyone; the vault-timeout ceiling spares
// only owners; every other type follows the organization's general flag.
func orgExemptFromPolicy(org models.Organization, policyType models.PolicyType) bool {
	switch policyType {
	case models.PolicyTypePasswordGenerator,
		models.PolicyTypeRemoveUnlockWithPin,
		models.PolicyTypeRestrictItemTypes:
		return false
	case models.PolicyTypeMaximumVaultTimeout:
		return org.Type == models.OrgUserTypeOwner
	default:
		return org.IsExemptFromPolicies
	}
}

// PasswordGeneratorOptions implements [PolicyService].
func (p *policyService) PasswordGeneratorOptions(ctx context.Context, userID string) (models.PasswordGeneratorData, bool, error) {
	policies, err := p.PoliciesApplyingToUser(ctx, userID, models.PolicyTypePasswordGenerator)
	if err != nil {
		return models.PasswordGeneratorData{}, false, err
	}
	if len(policies) == 0 {
		return models.PasswordGeneratorData{}, false, nil
	}

	var merged models.PasswordGeneratorData
	for _, policy := range policies {
		data, err := policy.PasswordGeneratorData()
		if err != nil {
			p.logger.Warn().Err(err).
				Str("policy_id", policy.ID).
				Msg("skipping undecodable password generator policy")
			continue
		}

		merged.UseUpper = merged.UseUpper || data.UseUpper
		merged.UseLower = merged.UseLower || data.UseLower
		merged.UseNumbers = merged.UseNumbers || data.UseNumbers
		merged.UseSpecial = merged.UseSpecial || data.UseSpecial
		merged.Capitalize = merged.Capitalize || data.Capitalize
		merged.IncludeNumber = merged.IncludeNumber || data.IncludeNumber

		merged.MinLength = max(merged.MinLength, data.MinLength)
		merged.MinNumbers = max(merged.MinNumbers, data.MinNumbers)
		merged.MinSpecial = max(merged.MinSpecial, data.MinSpecial)
		merged.MinNumberWords = max(merged.MinNumberWords, data.MinNumberWords)

		// "password" beats "passphrase" when policies disagree.
		if merged.OverridePasswordType == "" || data.OverridePasswordType == "password" {
			if data.OverridePasswordType != "" {
				merged.OverridePasswordType = data.OverridePasswordType
			}
		}
	}

	return merged, true, nil
}

// MasterPasswordRequirements implements [PolicyService].
func (p *policyService) MasterPasswordRequirements(ctx context.Context, userID string) (models.MasterPasswordData, bool, error) {
	policies, err := p.PoliciesApplyingToUser(ctx, userID, models.PolicyTypeMasterPassword)
	if err != nil {
		return models.MasterPasswordData{}, false, err
	}

	var merged models.MasterPasswordData
	found := false
	for _, policy := range policies {
		if policy.Data == nil {
			continue
		}
		data, err := policy.MasterPasswordData()
		if err != nil {
			p.logger.Warn().Err(err).
				Str("policy_id", policy.ID).
				Msg("skipping undecodable master password policy")
			continue
		}

		found = true
		merged.MinComplexity = max(merged.MinComplexity, data.MinComplexity)
		merged.MinLength = max(merged.MinLength, data.MinLength)
		merged.RequireUpper = merged.RequireUpper || data.RequireUpper
		merged.RequireLower = merged.RequireLower || data.RequireLower
		merged.RequireNumbers = merged.RequireNumbers || data.RequireNumbers
		merged.RequireSpecial = merged.RequireSpecial || data.RequireSpecial
		merged.EnforceOnLogin = merged.EnforceOnLogin || data.EnforceOnLogin
	}

	return merged, found, nil
}

// TimeoutPolicy implements [PolicyService].
func (p *policyService) TimeoutPolicy(ctx context.Context, userID string) (models.VaultTimeoutData, bool, error) {
	policies, err := p.PoliciesApplyingToUser(ctx, userID, models.PolicyTypeMaximumVaultTimeout)
	if err != nil {
		return models.VaultTimeoutData{}, false, err
	}
	if len(policies) == 0 {
		return models.VaultTimeoutData{}, false, nil
	}

	// Applicable timeout policies are not expected to conflict; the last one
	// wins for minutes, and the last explicit action wins for the action.
	var effective models.VaultTimeoutData
	for _, policy := range policies {
		data, err := policy.VaultTimeoutData()
		if err != nil {
			p.logger.Warn().Err(err).
				Str("policy_id", policy.ID).
				Msg("skipping undecodable vault timeout policy")
			continue
		}

		effective.Minutes = data.Minutes
		if data.Action == models.TimeoutActionLock || data.Action == models.TimeoutActionLogOut {
			effective.Action = data.Action
		}
	}

	return effective, true, nil
}

// RestrictedItemTypes implements [PolicyService].
func (p *policyService) RestrictedItemTypes(ctx context.Context, userID string) ([]models.CipherType, error) {
	policies, err := p.PoliciesApplyingToUser(ctx, userID, models.PolicyTypeRestrictItemTypes)
	if err != nil {
		return nil, err
	}
	if len(policies) == 0 {
		return nil, nil
	}

	// The restriction is a fixed mapping: any applicable policy restricts
	// card items, independent of its payload.
	return []models.CipherType{models.CipherTypeCard}, nil
}
