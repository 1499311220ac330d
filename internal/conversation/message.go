package conversation

// Message roles, matching the chat-completion wire format.
const (
	RoleUser      = "user"
	RoleSystem    = "system"
	RoleAssistant = "assistant"
)

// Message is a single conversational turn. Immutable once created; ordering
// within a conversation is chronological.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
