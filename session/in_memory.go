package session

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/hupe1980/agentblend/core"
)

// ErrNotFound is returned by Get when no conversation is stored under the
// requested id.
var ErrNotFound = errors.New("conversation not found")

// Meta carries the lifecycle timestamps of a stored conversation.
type Meta struct {
	Created time.Time
	Updated time.Time
}

type entry struct {
	conv core.Conversation
	meta Meta
}

// InMemoryStore is a volatile ConversationStore implementation keeping
// conversations in a process local map. It is safe for concurrent access and
// best suited for tests or ephemeral demo servers. Every conversation
// crossing the store boundary is cloned, so callers can never mutate stored
// state through a value they hold.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
}

// NewInMemoryStore constructs an empty in-memory conversation store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{entries: make(map[string]entry)}
}

// Get returns a clone of the conversation stored under id.
func (s *InMemoryStore) Get(id string) (core.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}

	return e.conv.Clone(), nil
}

// Put stores a clone of conv under id, replacing any previous value.
func (s *InMemoryStore) Put(id string, conv core.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = s.stamped(id, conv.Clone())

	return nil
}

// Append adds one turn to the conversation under id, creating the
// conversation if it does not exist yet.
func (s *InMemoryStore) Append(id string, msg core.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = s.stamped(id, append(s.entries[id].conv, msg))

	return nil
}

// Delete removes the conversation under id. Deleting an absent id is a no-op.
func (s *InMemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)

	return nil
}

// List returns the ids of all stored conversations in lexical order.
func (s *InMemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}

// Meta returns the lifecycle timestamps of the conversation under id.
func (s *InMemoryStore) Meta(id string) (Meta, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return Meta{}, ErrNotFound
	}

	return e.meta, nil
}

// stamped carries conv into the entry under id, setting Created on the first
// write and advancing Updated on every write. The caller holds the write
// lock.
func (s *InMemoryStore) stamped(id string, conv core.Conversation) entry {
	now := time.Now().UTC()

	e, ok := s.entries[id]
	if !ok {
		e.meta.Created = now
	}

	e.meta.Updated = now
	e.conv = conv

	return e
}
