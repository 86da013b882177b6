// Package llm holds the provider-agnostic conversation types shared by the
// rizz pipeline.
package llm

// Conversation roles understood by every upstream provider.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message represents a single role-tagged turn in a conversation.
// It serializes as {"role": ..., "content": ...}, which is the shape both
// OpenAI and Anthropic accept for plain text messages.
type Message struct {
	Role    string `json:"role"`    // "system", "user"
	Content string `json:"content"` // text content
}

// NewTextMessage creates a simple text message with the given role and content.
func NewTextMessage(role, text string) Message {
	return Message{
		Role:    role,
		Content: text,
	}
}
