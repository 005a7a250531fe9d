package analysis

import "errors"

// Error constants
var (
	// ErrInvalidConversation marks a conversation rejected by validation.
	ErrInvalidConversation = errors.New("invalid conversation")
)
