package models

import (
	"encoding/json"
	"fmt"
)

// PolicyType identifies one organization-issued security policy.
type PolicyType int

const (
	PolicyTypeTwoFactorAuthentication    PolicyType = 0
	PolicyTypeMasterPassword             PolicyType = 1
	PolicyTypePasswordGenerator          PolicyType = 2
	PolicyTypeOnlyOrg                    PolicyType = 3
	PolicyTypeRequireSSO                 PolicyType = 4
	PolicyTypePersonalOwnership          PolicyType = 5
	PolicyTypeDisableSend                PolicyType = 6
	PolicyTypeSendOptions                PolicyType = 7
	PolicyTypeResetPassword              PolicyType = 8
	PolicyTypeMaximumVaultTimeout        PolicyType = 9
	PolicyTypeDisablePersonalVaultExport PolicyType = 10
	PolicyTypeActivateAutofill           PolicyType = 11
	PolicyTypeAutomaticAppLogIn          PolicyType = 12
	PolicyTypeFreeFamiliesSponsorship    PolicyType = 13
	PolicyTypeRemoveUnlockWithPin        PolicyType = 14
	PolicyTypeRestrictItemTypes          PolicyType = 15
)

// Policy is an immutable snapshot of one organization policy for one sync
// cycle. Data is the raw policy payload; use the typed decoders below instead
// of reaching into the map field by field.
type Policy struct {
	ID             string         `json:"id"`
	OrganizationID string         `json:"organizationId"`
	Type           PolicyType     `json:"type"`
	Enabled        bool           `json:"enabled"`
	Data           map[string]any `json:"data,omitempty"`
}

// PasswordGeneratorData is the typed payload of a PasswordGenerator policy.
type PasswordGeneratorData struct {
	OverridePasswordType string `json:"overridePasswordType,omitempty"`
	MinLength            int    `json:"minLength,omitempty"`
	UseUpper             bool   `json:"useUpper,omitempty"`
	UseLower             bool   `json:"useLower,omitempty"`
	UseNumbers           bool   `json:"useNumbers,omitempty"`
	UseSpecial           bool   `json:"useSpecial,omitempty"`
	MinNumbers           int    `json:"minNumbers,omitempty"`
	MinSpecial           int    `json:"minSpecial,omitempty"`
	MinNumberWords       int    `json:"minNumberWords,omitempty"`
	Capitalize           bool   `json:"capitalize,omitempty"`
	IncludeNumber        bool   `json:"includeNumber,omitempty"`
}

// MasterPasswordData is the typed payload of a MasterPassword policy.
type MasterPasswordData struct {
	MinComplexity    int  `json:"minComplexity,omitempty"`
	MinLength        int  `json:"minLength,omitempty"`
	RequireUpper     bool `json:"requireUpper,omitempty"`
	RequireLower     bool `json:"requireLower,omitempty"`
	RequireNumbers   bool `json:"requireNumbers,omitempty"`
	RequireSpecial   bool `json:"requireSpecial,omitempty"`
	EnforceOnLogin   bool `json:"enforceOnLogin,omitempty"`
}

// VaultTimeoutData is the typed payload of a MaximumVaultTimeout policy.
// Action is "lock", "logOut", or empty when the policy leaves the choice to
// the user.
type VaultTimeoutData struct {
	Minutes int    `json:"minutes,omitempty"`
	Action  string `json:"action,omitempty"`
}

// TimeoutActionLock and TimeoutActionLogOut are the recognised values of
// VaultTimeoutData.Action.
const (
	TimeoutActionLock   = "lock"
	TimeoutActionLogOut = "logOut"
)

// decodeData deserialises the whole policy payload into out in one step.
// Policies with a nil payload decode into the zero value.
func (p Policy) decodeData(out any) error {
	if p.Data == nil {
		return nil
	}
	raw, err := json.Marshal(p.Data)
	if err != nil {
		return fmt.Errorf("encode policy data: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode policy data: %w", err)
	}
	return nil
}

// PasswordGeneratorData decodes the payload of a PasswordGenerator policy.
func (p Policy) PasswordGeneratorData() (PasswordGeneratorData, error) {
	var d PasswordGeneratorData
	err := p.decodeData(&d)
	return d, err
}

// MasterPasswordData decodes the payload of a MasterPassword policy.
func (p Policy) MasterPasswordData() (MasterPasswordData, error) {
	var d MasterPasswordData
	err := p.decodeData(&d)
	return d, err
}

// VaultTimeoutData decodes the payload of a MaximumVaultTimeout policy.
func (p Policy) VaultTimeoutData() (VaultTimeoutData, error) {
	var d VaultTimeoutData
	err := p.decodeData(&d)
	return d, err
}
