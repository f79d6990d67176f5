// Package shared defines sentinel errors and small helpers used across the
// Orwel client layers. Callers should match these values with errors.Is.
package shared

import "errors"

var (
	// Tier outcomes. ErrUnavailable means a transport-level failure
	// (connection refused, timeout) and tells the caller to try the next
	// tier. ErrUnauthorized is an authentication rejection and is terminal
	// for the attempt. ErrNotConfigured marks a source that has no base URL
	// or key configured and is skipped like an unavailable one.
	ErrUnavailable   = errors.New("source unavailable")
	ErrUnauthorized  = errors.New("invalid credentials")
	ErrNotConfigured = errors.New("source not configured")

	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Session errors.
	ErrNotLoggedIn = errors.New("not logged in")

	// Local store failures are surfaced distinctly: there is no further
	// fallback tier behind the cache.
	ErrLocalStore = errors.New("local store failure")
)
