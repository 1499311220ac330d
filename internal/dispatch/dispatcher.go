// Package dispatch drives one invocation end to end: staleness sweep, handler
// resolution, pre-flight, the single backend call, and delivery to the host.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/qmuntal/stateless"
	"github.com/sashabaranov/go-openai"

	"github.com/clipforge/clipforge/internal/action"
	"github.com/clipforge/clipforge/internal/conversation"
	"github.com/clipforge/clipforge/internal/history"
	"github.com/clipforge/clipforge/internal/host"
	"github.com/clipforge/clipforge/internal/llm"
	"github.com/clipforge/clipforge/internal/logger"
)

// FSM States
type FSMState stateless.State

var (
	StateReady          FSMState = "Ready"
	StateCallingBackend FSMState = "CallingBackend"
	StateDelivering     FSMState = "Delivering"
	StateDone           FSMState = "Done"  // Terminal: invocation finished (including policy no-ops and runtime failures)
	StateFatal          FSMState = "Fatal" // Terminal: programming error (unknown action, nil payload)
)

// FSM Triggers
type FSMTrigger stateless.Trigger

var (
	TriggerInvoke           FSMTrigger = "Invoke"
	TriggerPayloadBuilt     FSMTrigger = "PayloadBuilt"
	TriggerDisallowed       FSMTrigger = "Disallowed"
	TriggerBackendResponded FSMTrigger = "BackendResponded"
	TriggerBackendFailed    FSMTrigger = "BackendFailed"
	TriggerDelivered        FSMTrigger = "Delivered"
	TriggerFatalError       FSMTrigger = "FatalError"
)

// Dispatcher runs invocations against an immutable handler registry. One
// outbound request per invocation, never retried; a failure in one invocation
// must not corrupt state visible to the next.
type Dispatcher struct {
	registry *action.Registry
	store    *conversation.Store
	client   llm.Client
	log      *history.Log // nil when the exchange log is disabled
	now      func() time.Time
}

// New creates a dispatcher. A nil clock defaults to time.Now; a nil log
// disables exchange recording.
func New(registry *action.Registry, store *conversation.Store, client llm.Client, log *history.Log, now func() time.Time) *Dispatcher {
	if now == nil {
		now = time.Now
	}
	return &Dispatcher{
		registry: registry,
		store:    store,
		client:   client,
		log:      log,
		now:      now,
	}
}

// Dispatch processes one invocation and delivers the outcome through h.
// Runtime failures (transport, non-2xx, malformed body) are surfaced to the
// user and return nil; the returned error is reserved for programming errors.
func (d *Dispatcher) Dispatch(ctx context.Context, req *action.Request, h host.Host) error {
	// Invocation-local data threaded through the FSM states.
	type invocation struct {
		id       string
		handler  action.Handler
		payload  *action.Payload
		reply    string
		callErr  error
		fatalErr error
	}
	inv := &invocation{id: uuid.NewString()}

	fsm := stateless.NewStateMachine(StateReady)

	// State: Ready
	// Action: sweep stale conversations, resolve the handler, run the
	// pre-flight check and build the payload.
	// Transitions:
	//   - On PayloadBuilt -> StateCallingBackend
	//   - On Disallowed -> StateDone
	//   - On FatalError -> StateFatal
	fsm.Configure(StateReady).
		PermitReentry(TriggerInvoke).
		OnEntry(func(ctx context.Context, args ...any) error {
			d.store.SweepStale(d.now())

			handler, err := d.registry.Resolve(req.Action)
			if err != nil {
				inv.fatalErr = err
				return fsm.FireCtx(ctx, TriggerFatalError)
			}
			inv.handler = handler

			pre := handler.Precheck(req)
			if !pre.Allow {
				if pre.Message != "" {
					h.ShowText(pre.Message, false)
					h.ShowStatus(true)
				}
				logger.L.Debug("invocation disallowed by precheck", "invocation", inv.id, "action", req.Action)
				return fsm.FireCtx(ctx, TriggerDisallowed)
			}

			payload, err := handler.BuildPayload(req)
			if err == nil && payload == nil {
				err = fmt.Errorf("handler for action %q built no payload", req.Action)
			}
			if err != nil {
				inv.fatalErr = err
				return fsm.FireCtx(ctx, TriggerFatalError)
			}
			inv.payload = payload
			return fsm.FireCtx(ctx, TriggerPayloadBuilt)
		}).
		Permit(TriggerPayloadBuilt, StateCallingBackend).
		Permit(TriggerDisallowed, StateDone).
		Permit(TriggerFatalError, StateFatal)

	// State: CallingBackend
	// Action: the single chat-completion POST.
	// Transitions:
	//   - On BackendResponded -> StateDelivering
	//   - On BackendFailed -> StateDone (after rollback + error surface)
	fsm.Configure(StateCallingBackend).
		OnEntry(func(ctx context.Context, args ...any) error {
			resp, err := d.client.CreateChatCompletion(ctx, chatRequest(inv.payload))
			if err == nil && len(resp.Choices) == 0 {
				err = errors.New("backend response carried no choices")
			}
			if err != nil {
				inv.callErr = err
				return fsm.FireCtx(ctx, TriggerBackendFailed)
			}
			inv.reply = resp.Choices[0].Message.Content
			return fsm.FireCtx(ctx, TriggerBackendResponded)
		}).
		Permit(TriggerBackendResponded, StateDelivering).
		Permit(TriggerBackendFailed, StateDone)

	// State: Delivering
	// Action: post-process, record the exchange, paste or copy+preview.
	fsm.Configure(StateDelivering).
		OnEntry(func(ctx context.Context, args ...any) error {
			out := inv.handler.OnSuccess(req, inv.reply)
			d.record(inv.id, req, inv.payload, out)

			if h.CanPaste() {
				if err := h.Paste(out); err != nil {
					logger.L.Warn("paste failed", "invocation", inv.id, "error", err)
				}
			} else {
				if err := h.Copy(out); err != nil {
					logger.L.Warn("copy failed", "invocation", inv.id, "error", err)
				}
				h.ShowText(out, true)
			}
			h.ShowStatus(true)
			logger.L.Info("invocation delivered", "invocation", inv.id, "action", req.Action, "app", req.AppID)
			return fsm.FireCtx(ctx, TriggerDelivered)
		}).
		Permit(TriggerDelivered, StateDone)

	// State: Done
	// Action: on the failure path, run the handler's rollback hook and show
	// the stringified error. Terminal either way.
	fsm.Configure(StateDone).
		OnEntry(func(ctx context.Context, args ...any) error {
			if inv.callErr != nil {
				inv.handler.OnFailure(req, inv.callErr)
				h.ShowText(inv.callErr.Error(), false)
				h.ShowStatus(false)
				logger.L.Error("backend call failed", "invocation", inv.id, "action", req.Action, "error", inv.callErr)
			}
			return nil
		})

	fsm.Configure(StateFatal)

	if fireErr := fsm.FireCtx(ctx, TriggerInvoke); fireErr != nil {
		logger.L.Warn("FSM fire error", "invocation", inv.id, "error", fireErr)
	}

	currentState, err := fsm.State(ctx)
	if err != nil {
		return fmt.Errorf("FSM internal error: %w", err)
	}
	if currentState == StateFatal {
		return inv.fatalErr
	}
	if currentState != StateDone {
		return fmt.Errorf("FSM ended in an unexpected state: %v", currentState)
	}
	return nil
}

// record writes the completed exchange to the history log when enabled.
func (d *Dispatcher) record(invocationID string, req *action.Request, payload *action.Payload, reply string) {
	if d.log == nil {
		return
	}
	prompt := ""
	if n := len(payload.Messages); n > 0 {
		prompt = payload.Messages[n-1].Content
	}
	d.log.Record(history.Exchange{
		InvocationID: invocationID,
		AppID:        req.AppID,
		Action:       req.Action,
		Prompt:       prompt,
		Reply:        reply,
		CreatedAt:    d.now(),
	})
}

// chatRequest maps the handler payload onto the wire request.
func chatRequest(p *action.Payload) openai.ChatCompletionRequest {
	msgs := make([]openai.ChatCompletionMessage, 0, len(p.Messages))
	for _, m := range p.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	return openai.ChatCompletionRequest{
		Model:       p.Model,
		Messages:    msgs,
		Temperature: p.Temperature,
	}
}
