package action

import (
	"fmt"
	"strings"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/conversation"
	"github.com/clipforge/clipforge/internal/prompt"
)

// TransformHandler serves one stateless one-time action: a single
// instruction+text message, no history.
type TransformHandler struct {
	id          string
	cfg         config.ActionConfig
	catalog     *prompt.Catalog
	model       string
	temperature float32
}

// NewTransformHandler creates the handler for one one-time action, bound to
// its configuration at startup.
func NewTransformHandler(id string, cfg config.ActionConfig, catalog *prompt.Catalog, model string, temperature float32) *TransformHandler {
	return &TransformHandler{id: id, cfg: cfg, catalog: catalog, model: model, temperature: temperature}
}

// Precheck allows the call only when the action is enabled. Disabled actions
// are a silent no-op.
func (h *TransformHandler) Precheck(req *Request) Precheck {
	return Precheck{Allow: h.cfg.Enabled}
}

// BuildPayload resolves the instruction for the modifier-selected language and
// wraps the selection in a triple-quote delimiter on its own paragraph.
func (h *TransformHandler) BuildPayload(req *Request) (*Payload, error) {
	language := h.cfg.PrimaryLanguage
	if req.Modifiers.Shift {
		language = h.cfg.SecondaryLanguage
	}

	instruction, err := h.catalog.Resolve(h.id, language, h.cfg.Instruction)
	if err != nil {
		return nil, err
	}

	content := fmt.Sprintf("%s\n\n\"\"\"%s\"\"\"", instruction, req.Text)
	return &Payload{
		Model: h.model,
		Messages: []conversation.Message{
			{Role: conversation.RoleUser, Content: content},
		},
		Temperature: h.temperature,
	}, nil
}

// OnSuccess trims the reply and strips a wrapping double-quote pair some
// models add around transformed text.
func (h *TransformHandler) OnSuccess(req *Request, responseText string) string {
	reply := strings.TrimSpace(responseText)
	if len(reply) >= 2 && strings.HasPrefix(reply, `"`) && strings.HasSuffix(reply, `"`) {
		reply = reply[1 : len(reply)-1]
	}
	return reply
}

// OnFailure is a no-op; one-time actions keep no state to roll back.
func (h *TransformHandler) OnFailure(req *Request, err error) {}
