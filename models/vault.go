package models

import (
	"encoding/json"
	"time"
)

// CipherType distinguishes the kinds of vault items a cipher can hold.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
	CipherTypeSSHKey     CipherType = 5
)

// Cipher is one encrypted vault item. Data is the opaque encrypted payload;
// the engine never decrypts it, only moves it around. RevisionDate orders
// writes: a local copy's revision date must never regress.
type Cipher struct {
	ID             string          `json:"id"`
	UserID         string          `json:"-"`
	Type           CipherType      `json:"type"`
	FolderID       *string         `json:"folderId,omitempty"`
	OrganizationID *string         `json:"organizationId,omitempty"`
	CollectionIDs  []string        `json:"collectionIds,omitempty"`
	RevisionDate   time.Time       `json:"revisionDate"`
	DeletedDate    *time.Time      `json:"deletedDate,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
}

// Folder groups ciphers in the personal vault.
type Folder struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	RevisionDate time.Time       `json:"revisionDate"`
	Data         json.RawMessage `json:"data,omitempty"`
}

// Collection is an organization-owned grouping of ciphers. ReadOnly reflects
// the user's access level; collection visibility checks during delta
// reconciliation only consider read-write collections.
type Collection struct {
	ID             string `json:"id"`
	UserID         string `json:"-"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name,omitempty"`
	ReadOnly       bool   `json:"readOnly"`
}

// Send is an encrypted one-off share.
type Send struct {
	ID           string          `json:"id"`
	UserID       string          `json:"-"`
	RevisionDate time.Time       `json:"revisionDate"`
	Data         json.RawMessage `json:"data,omitempty"`
}

// GlobalDomains is one server-curated group of equivalent domains.
type GlobalDomains struct {
	Type     int      `json:"type"`
	Domains  []string `json:"domains"`
	Excluded bool     `json:"excluded"`
}

// Domains holds the user's equivalent-domain configuration.
type Domains struct {
	EquivalentDomains       [][]string      `json:"equivalentDomains,omitempty"`
	GlobalEquivalentDomains []GlobalDomains `json:"globalEquivalentDomains,omitempty"`
}
