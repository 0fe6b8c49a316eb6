// Package common defines shared constants and sentinel errors used across
// shelfkeeper components. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository/lookup errors.
	ErrNotFound = errors.New("record not found")

	// Auth errors. ErrInvalidCredentials is deliberately generic so a
	// failed login never reveals whether the account exists.
	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrInvalidToken       = errors.New("invalid session token")

	// Storage errors.
	ErrStoreUnavailable = errors.New("store unavailable")
)
