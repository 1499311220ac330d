package action

import (
	"strings"

	"github.com/clipforge/clipforge/internal/conversation"
)

// ResetConfirmation is shown instead of a reply when the reset modifier
// clears a conversation.
const ResetConfirmation = "Conversation cleared."

// ChatHandler serves the continuous chat action. It is the only handler that
// reads and writes conversation state.
type ChatHandler struct {
	store       *conversation.Store
	model       string
	temperature float32
}

// NewChatHandler creates the chat handler bound to the shared conversation
// store.
func NewChatHandler(store *conversation.Store, model string, temperature float32) *ChatHandler {
	return &ChatHandler{store: store, model: model, temperature: temperature}
}

// Precheck clears the application's conversation and disallows the call when
// the reset modifier is held, returning a confirmation instead of a reply.
func (h *ChatHandler) Precheck(req *Request) Precheck {
	if req.Modifiers.Shift {
		h.store.Clear(req.AppID)
		return Precheck{Allow: false, Message: ResetConfirmation}
	}
	return Precheck{Allow: true}
}

// BuildPayload appends the user turn to the application's conversation and
// snapshots the full history as the outbound messages.
func (h *ChatHandler) BuildPayload(req *Request) (*Payload, error) {
	h.store.Append(req.AppID, conversation.Message{
		Role:    conversation.RoleUser,
		Content: req.Text,
	})
	return &Payload{
		Model:       h.model,
		Messages:    h.store.GetOrCreate(req.AppID).Messages(),
		Temperature: h.temperature,
	}, nil
}

// OnSuccess records the assistant's reply and returns its trimmed content.
func (h *ChatHandler) OnSuccess(req *Request, responseText string) string {
	reply := strings.TrimSpace(responseText)
	h.store.Append(req.AppID, conversation.Message{
		Role:    conversation.RoleAssistant,
		Content: reply,
	})
	return reply
}

// OnFailure rolls back the user turn appended by BuildPayload so a failed
// exchange leaves history unchanged.
func (h *ChatHandler) OnFailure(req *Request, err error) {
	h.store.RollbackLast(req.AppID)
}
