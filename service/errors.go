package service

import "errors"

var (
	// ErrNoActiveAccount is returned by every operation that requires an
	// active account when the device has none. Never silently defaulted.
	ErrNoActiveAccount = errors.New("no active account")

	// ErrUnknownNotificationKind is returned when a push payload carries an
	// entity kind the handler does not recognise.
	ErrUnknownNotificationKind = errors.New("unknown notification kind")
)
