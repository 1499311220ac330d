package action

import (
	"fmt"

	"github.com/clipforge/clipforge/internal/config"
	"github.com/clipforge/clipforge/internal/conversation"
	"github.com/clipforge/clipforge/internal/prompt"
)

// Registry is the immutable mapping from action identifier to handler, built
// once at startup.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry wires the chat handler and one transform handler per one-time
// action.
func NewRegistry(cfg *config.Config, store *conversation.Store, catalog *prompt.Catalog) *Registry {
	handlers := make(map[string]Handler, len(OneTimeIDs)+1)
	handlers[IDChat] = NewChatHandler(store, cfg.Model, cfg.Temperature)
	for _, id := range OneTimeIDs {
		handlers[id] = NewTransformHandler(id, cfg.Action(id), catalog, cfg.Model, cfg.Temperature)
	}
	return &Registry{handlers: handlers}
}

// Resolve returns the handler for an action identifier. An unknown identifier
// is a programming error on the caller's side; the action set is closed.
func (r *Registry) Resolve(id string) (Handler, error) {
	h, ok := r.handlers[id]
	if !ok {
		return nil, fmt.Errorf("unknown action %q", id)
	}
	return h, nil
}
