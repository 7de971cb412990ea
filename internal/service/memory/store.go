package memory

import "sync"

// Key identifies one conversation. Turns for the same key must be processed
// sequentially by the caller; distinct keys may run concurrently.
type Key struct {
	ProjectID string
	UserID    string
}

// Store holds live conversations. Injected so the in-process table can be
// swapped for a shared backend without touching the orchestrator.
type Store interface {
	Get(key Key) (*Conversation, bool)
	Put(key Key, c *Conversation)
	Delete(key Key)
}

// InProcessStore is the default Store: a mutex-guarded table safe for
// concurrent access to distinct keys.
type InProcessStore struct {
	mu    sync.RWMutex
	table map[Key]*Conversation
}

func NewInProcessStore() *InProcessStore {
	return &InProcessStore{table: make(map[Key]*Conversation)}
}

func (s *InProcessStore) Get(key Key) (*Conversation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.table[key]
	return c, ok
}

func (s *InProcessStore) Put(key Key, c *Conversation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table[key] = c
}

func (s *InProcessStore) Delete(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.table, key)
}
