package models

// KDFType identifies the key-derivation algorithm configured for an account.
// The engine never runs the KDF itself; the value is passed through to the
// cryptographic engine.
type KDFType int

const (
	KDFTypePBKDF2 KDFType = 0
	KDFTypeArgon2 KDFType = 1
)

// KDFConfig holds the key-derivation parameters issued by the server for an
// account. Memory and Parallelism are only meaningful for Argon2.
type KDFConfig struct {
	Type        KDFType `json:"kdfType"`
	Iterations  int     `json:"kdfIterations"`
	Memory      int     `json:"kdfMemory,omitempty"`
	Parallelism int     `json:"kdfParallelism,omitempty"`
}

// Account is a logged-in identity on this device. A device may hold several
// accounts, exactly one of which is active at a time.
type Account struct {
	UserID string    `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name,omitempty"`
	KDF    KDFConfig `json:"kdf"`

	// SecurityStamp is a server-issued token that rotates whenever the
	// account's credentials are invalidated elsewhere. A mismatch between
	// the cached value and the value in a fresh sync snapshot means the
	// account must re-authenticate.
	SecurityStamp string `json:"securityStamp"`

	// Decryption options.
	HasMasterPassword       bool   `json:"hasMasterPassword"`
	UsesKeyConnector        bool   `json:"usesKeyConnector"`
	KeyConnectorURL         string `json:"keyConnectorUrl,omitempty"`
	TrustedDeviceDecryption bool   `json:"trustedDeviceDecryption"`

	ForcePasswordReset bool `json:"forcePasswordReset"`
}

// Profile is the account section of a sync snapshot. It is the authoritative
// source for the fields of Account that the server owns.
type Profile struct {
	UserID             string         `json:"id"`
	Email              string         `json:"email"`
	Name               string         `json:"name"`
	SecurityStamp      string         `json:"securityStamp"`
	UsesKeyConnector   bool           `json:"usesKeyConnector"`
	KeyConnectorURL    string         `json:"keyConnectorUrl,omitempty"`
	ForcePasswordReset bool           `json:"forcePasswordReset"`
	Organizations      []Organization `json:"organizations"`
}
