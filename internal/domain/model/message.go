// Package model contains domain models passed between layers.
package model

// Role identifies the author of a conversation message.
type Role string

// Known message roles.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	default:
		return false
	}
}

// Message is a single conversation turn as submitted by clients.
// Fields mirror the OpenAPI schema for /analyze.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is an ordered transcript, oldest message first.
type Conversation []Message

// UserMessages returns the user-authored subset, order preserved.
func (c Conversation) UserMessages() []Message {
	var out []Message
	for _, m := range c {
		if m.Role == RoleUser {
			out = append(out, m)
		}
	}
	return out
}
