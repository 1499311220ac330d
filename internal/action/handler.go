// Package action implements the two handler variants behind the closed set of
// user-invokable actions: the continuous chat action and the nine one-time
// transform actions.
package action

import "github.com/clipforge/clipforge/internal/conversation"

// Action identifiers. The set is closed; the registry is the single source of
// which handler serves which identifier.
const (
	IDChat            = "chat"
	IDTranslate       = "translate"
	IDSlang           = "slang"
	IDRevise          = "revise"
	IDPolish          = "polish"
	IDExpand          = "expand"
	IDSummarize       = "summarize"
	IDMidjourney      = "midjourney"
	IDStableDiffusion = "stablediffusion"
	IDCustom          = "custom"
)

// OneTimeIDs lists the stateless transform actions.
var OneTimeIDs = []string{
	IDTranslate, IDSlang, IDRevise, IDPolish, IDExpand,
	IDSummarize, IDMidjourney, IDStableDiffusion, IDCustom,
}

// Modifiers carries the modifier-key state the host reports for an
// invocation.
type Modifiers struct {
	Shift   bool `json:"shift"`
	Option  bool `json:"option"`
	Command bool `json:"command"`
	Control bool `json:"control"`
}

// Request is one invocation as handed over by the host. Transient; nothing in
// it is persisted.
type Request struct {
	Action    string    `json:"action"`
	Text      string    `json:"text"`
	AppID     string    `json:"app_id"`
	AppName   string    `json:"app_name"`
	Modifiers Modifiers `json:"modifiers"`
	CanPaste  bool      `json:"can_paste"`
}

// Payload is the outbound chat-completion request body.
type Payload struct {
	Model       string
	Messages    []conversation.Message
	Temperature float32
}

// Precheck is the outcome of a handler's pre-flight decision. A disallowed
// invocation with a message is informational, not a failure.
type Precheck struct {
	Allow   bool
	Message string
}

// Handler is the per-action contract the dispatcher drives.
type Handler interface {
	Precheck(req *Request) Precheck
	BuildPayload(req *Request) (*Payload, error)
	OnSuccess(req *Request, responseText string) string
	OnFailure(req *Request, err error)
}
