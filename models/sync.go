package models

// SyncSnapshot is the full server response for one sync cycle. It is
// ephemeral: consumed immediately by reconciliation and never persisted
// verbatim.
type SyncSnapshot struct {
	Profile     Profile      `json:"profile"`
	Ciphers     []Cipher     `json:"ciphers"`
	Folders     []Folder     `json:"folders"`
	Collections []Collection `json:"collections"`
	Sends       []Send       `json:"sends"`
	Domains     Domains      `json:"domains"`
	Policies    []Policy     `json:"policies"`
}

// SyncOutcomeKind tags the result of a sync cycle.
type SyncOutcomeKind int

const (
	// SyncCompleted: the snapshot was applied in full.
	SyncCompleted SyncOutcomeKind = iota

	// SyncSkipped: no sync was needed (interval gate, revision probe, or
	// probe failure), local data is unchanged.
	SyncSkipped

	// SyncSecurityStampChanged: the snapshot's security stamp differed from
	// the cached one; nothing was applied and the account must
	// re-authenticate.
	SyncSecurityStampChanged

	// SyncMustSetMasterPassword: the user's single organization requires a
	// master password the account does not have. OrganizationID identifies
	// the organization.
	SyncMustSetMasterPassword

	// SyncRemoveMasterPassword: the account must migrate to key-connector
	// unlock. OrganizationName names the managing organization.
	SyncRemoveMasterPassword
)

// SyncOutcome is the explicit result of a sync cycle. The signal kinds
// replace optional delegate callbacks: every caller has to handle them, there
// is no silent no-op path.
type SyncOutcome struct {
	Kind             SyncOutcomeKind
	OrganizationID   string
	OrganizationName string
	KeyConnectorURL  string
}

// Completed reports whether the snapshot was fully applied. Both
// SyncCompleted and SyncMustSetMasterPassword apply the snapshot; the latter
// additionally carries a follow-up signal.
func (o SyncOutcome) Completed() bool {
	return o.Kind == SyncCompleted ||
		o.Kind == SyncMustSetMasterPassword ||
		o.Kind == SyncRemoveMasterPassword
}
