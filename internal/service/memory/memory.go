package memory

import (
	"github.com/sandevgo/muckraker/internal/core"
)

const focusCap = 10

// Conversation is the in-memory state of one (project, user) pair: the
// bounded message log, the accumulated research focus and the last derived
// context. It lives until cleared, and is only flushed to durable storage
// by the orchestrator.
type Conversation struct {
	Messages      []core.Message
	ResearchFocus []string
	Context       core.ConversationContext
}

// Manager applies the retention policies on top of an injected Store.
type Manager struct {
	store      Store
	messageCap int
}

func NewManager(store Store, messageCap int) *Manager {
	return &Manager{store: store, messageCap: messageCap}
}

// Open returns the conversation for key, creating it lazily on first use.
func (m *Manager) Open(key Key) *Conversation {
	if c, ok := m.store.Get(key); ok {
		return c
	}
	c := &Conversation{}
	m.store.Put(key, c)
	return c
}

// Append records turns and then enforces the message cap. Eviction keeps
// every system message and the most recent non-system messages, in their
// original order: old user/assistant turns go first.
func (m *Manager) Append(key Key, msgs ...core.Message) {
	c := m.Open(key)
	c.Messages = append(c.Messages, msgs...)

	if m.messageCap <= 0 || len(c.Messages) <= m.messageCap {
		return
	}

	systemCount := 0
	for _, msg := range c.Messages {
		if msg.Role == core.RoleSystem {
			systemCount++
		}
	}

	keepRecent := m.messageCap - systemCount
	if keepRecent < 0 {
		keepRecent = 0
	}

	// Index of the first non-system message that survives.
	nonSystem := len(c.Messages) - systemCount
	dropBudget := nonSystem - keepRecent

	kept := make([]core.Message, 0, m.messageCap)
	for _, msg := range c.Messages {
		if msg.Role != core.RoleSystem && dropBudget > 0 {
			dropBudget--
			continue
		}
		kept = append(kept, msg)
	}
	c.Messages = kept
}

// SetContext overwrites the derived context; no history of it is kept.
func (m *Manager) SetContext(key Key, ctx core.ConversationContext) {
	m.Open(key).Context = ctx
}

// DeriveResearchFocus appends leads not already tracked (exact match) and
// trims to the most recent entries, dropping from the front.
func (m *Manager) DeriveResearchFocus(key Key, leads []string) {
	c := m.Open(key)

	seen := make(map[string]struct{}, len(c.ResearchFocus))
	for _, f := range c.ResearchFocus {
		seen[f] = struct{}{}
	}
	for _, lead := range leads {
		if lead == "" {
			continue
		}
		if _, ok := seen[lead]; ok {
			continue
		}
		c.ResearchFocus = append(c.ResearchFocus, lead)
		seen[lead] = struct{}{}
	}

	if excess := len(c.ResearchFocus) - focusCap; excess > 0 {
		c.ResearchFocus = c.ResearchFocus[excess:]
	}
}

// Snapshot copies the message log for persistence outside the store.
func (m *Manager) Snapshot(key Key) []core.Message {
	c := m.Open(key)
	out := make([]core.Message, len(c.Messages))
	copy(out, c.Messages)
	return out
}

// Clear drops all in-memory state for key. A no-op for unknown keys.
func (m *Manager) Clear(key Key) {
	m.store.Delete(key)
}
