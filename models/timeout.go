package models

import "time"

// SessionTimeoutValue is a vault timeout in minutes with two negative
// sentinels. Literal values are minute counts >= 0.
type SessionTimeoutValue int

const (
	// TimeoutNever disables timeout-based locking entirely.
	TimeoutNever SessionTimeoutValue = -2

	// TimeoutOnAppRestart locks only when the process restarts; it is
	// evaluated at that lifecycle point, never via elapsed-time math.
	TimeoutOnAppRestart SessionTimeoutValue = -1
)

// IsSentinel reports whether v is one of the two non-literal values.
func (v SessionTimeoutValue) IsSentinel() bool {
	return v == TimeoutNever || v == TimeoutOnAppRestart
}

// Minutes returns the literal minute count, and false for sentinels.
func (v SessionTimeoutValue) Minutes() (int, bool) {
	if v.IsSentinel() {
		return 0, false
	}
	return int(v), true
}

// Duration returns the timeout as a time.Duration, and false for sentinels.
func (v SessionTimeoutValue) Duration() (time.Duration, bool) {
	m, ok := v.Minutes()
	if !ok {
		return 0, false
	}
	return time.Duration(m) * time.Minute, true
}
