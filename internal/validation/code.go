// Package validation contains the stateless field validators that gate
// every write in shelfkeeper, plus the record-level aggregator. All
// results are returned as values; nothing in this package panics or
// returns Go errors for user input problems.
package validation

// Code classifies a validation or lookup failure.
type Code string

const (
	// CodeRequired means the input was missing or blank.
	CodeRequired Code = "required"
	// CodeFormat means the input was present but malformed.
	CodeFormat Code = "format"
	// CodeMismatch means two inputs that must agree did not.
	CodeMismatch Code = "mismatch"
	// CodeDuplicate means a uniqueness constraint was violated.
	CodeDuplicate Code = "duplicate"
	// CodeNotFound means a referenced id does not exist.
	CodeNotFound Code = "not_found"
	// CodeInvalidCredentials is the deliberately non-specific login
	// failure.
	CodeInvalidCredentials Code = "invalid_credentials"
)
