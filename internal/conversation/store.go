// Package conversation keeps per-application chat history in memory.
// Conversations live for the process lifetime at most; an inactivity sweep
// removes them after the staleness window.
package conversation

import (
	"sync"
	"time"
)

// Staleness is the inactivity window after which a conversation becomes
// eligible for removal.
const Staleness = 20 * time.Minute

// Conversation is an ordered message history for one application identifier.
type Conversation struct {
	messages     []Message
	lastActiveAt time.Time
}

// Messages returns a snapshot of the history in chronological order.
func (c *Conversation) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of messages in the conversation.
func (c *Conversation) Len() int {
	return len(c.messages)
}

// Store maps application identifiers to conversations. The clock is injected
// so eviction is a pure function of time. The mutex keeps appends and
// rollbacks ordered should invocations ever overlap.
type Store struct {
	mu    sync.Mutex
	convs map[string]*Conversation
	now   func() time.Time
}

// NewStore creates an empty store. A nil clock defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		convs: make(map[string]*Conversation),
		now:   now,
	}
}

// GetOrCreate returns the conversation for appID, creating an empty one with
// a fresh activity timestamp when none exists.
func (s *Store) GetOrCreate(appID string) *Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(appID)
}

func (s *Store) getOrCreateLocked(appID string) *Conversation {
	c, ok := s.convs[appID]
	if !ok {
		c = &Conversation{lastActiveAt: s.now()}
		s.convs[appID] = c
	}
	return c
}

// Append pushes a message onto appID's conversation and refreshes its
// activity timestamp.
func (s *Store) Append(appID string, msg Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.getOrCreateLocked(appID)
	c.messages = append(c.messages, msg)
	c.lastActiveAt = s.now()
}

// RollbackLast removes the most recently appended message, so a failed
// exchange does not pollute history. No-op on an empty or missing
// conversation.
func (s *Store) RollbackLast(appID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[appID]
	if !ok || len(c.messages) == 0 {
		return
	}
	c.messages = c.messages[:len(c.messages)-1]
}

// Clear empties appID's conversation. The entry itself stays, with its
// activity refreshed, so an immediately following turn starts clean.
func (s *Store) Clear(appID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.convs[appID]
	if !ok {
		return
	}
	c.messages = nil
	c.lastActiveAt = s.now()
}

// SweepStale removes every conversation inactive for at least the staleness
// window. Callers run it once per invocation, before dispatch.
func (s *Store) SweepStale(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for appID, c := range s.convs {
		if now.Sub(c.lastActiveAt) >= Staleness {
			delete(s.convs, appID)
		}
	}
}

// Len returns the number of live conversations.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.convs)
}
