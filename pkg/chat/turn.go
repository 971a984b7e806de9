// Package chat drives the multi-turn conversation against a generation
// backend, accumulating history for the lifetime of one session.
package chat

// Role tags a conversation turn.
type Role string

// Conversation roles.
const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message in the conversation.
type Turn struct {
	Role Role
	Text string
}

// GenParams are the sampling parameters sent with every backend call.
type GenParams struct {
	Temperature float64
	TopK        int
	TopP        float64
}
