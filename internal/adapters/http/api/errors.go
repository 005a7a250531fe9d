package api

import "errors"

// Sentinel kinds for API errors.
var (
	// ErrInternal is what clients see when the underlying failure is redacted.
	ErrInternal = errors.New("internal server error")
	// ErrBadBody marks a request body that could not be decoded at all.
	ErrBadBody = errors.New("request body must be valid JSON")
)
