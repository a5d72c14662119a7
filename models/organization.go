package models

// OrgStatus is the membership status of the user within an organization.
type OrgStatus int

const (
	OrgStatusInvited   OrgStatus = 0
	OrgStatusAccepted  OrgStatus = 1
	OrgStatusConfirmed OrgStatus = 2
)

// OrgUserType is the user's role within an organization.
type OrgUserType int

const (
	OrgUserTypeOwner OrgUserType = 0
	OrgUserTypeAdmin OrgUserType = 1
	OrgUserTypeUser  OrgUserType = 2
)

// Organization describes the user's membership in one organization, as
// reported by the sync profile. Key, when present, is the organization's
// symmetric key wrapped for this user; it is handed to the cryptographic
// engine untouched.
type Organization struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name,omitempty"`
	Key                  *string     `json:"key,omitempty"`
	Status               OrgStatus   `json:"status"`
	Type                 OrgUserType `json:"type"`
	Enabled              bool        `json:"enabled"`
	UsePolicies          bool        `json:"usePolicies"`
	UsesKeyConnector     bool        `json:"usesKeyConnector"`
	KeyConnectorURL      string      `json:"keyConnectorUrl,omitempty"`
	IsExemptFromPolicies bool        `json:"isExemptFromPolicies"`
}
