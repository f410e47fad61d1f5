// Package common defines shared constants and sentinel errors used across
// the Ember client layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// ErrAuthFailure means the server rejected the supplied credentials.
	// User-facing; the caller should not retry with the same input.
	ErrAuthFailure = errors.New("invalid email or password")

	// ErrSessionInvalid means the bearer credential is expired or revoked.
	// The session must be reset to anonymous.
	ErrSessionInvalid = errors.New("session invalid")

	// ErrNotFound is the "no such record" signal. For the current user's
	// profile this is a normal "no profile yet" condition, not a failure.
	ErrNotFound = errors.New("not found")

	// ErrNetworkFailure covers transient transport errors and 5xx
	// responses. Retryable.
	ErrNetworkFailure = errors.New("network failure")

	// ErrValidationFailure means the request was malformed or rejected by
	// server-side validation. No state was mutated.
	ErrValidationFailure = errors.New("validation failure")
)
