package models

// Chat transcript roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is a single transcript entry. Transcript order is significant:
// it is replayed verbatim to the language-model backend.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
