package repository

import "errors"

// Sentinel kinds for usage tally errors.
var (
	ErrClosed = errors.New("usage tally closed")
)
