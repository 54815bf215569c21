package session

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemoryStore is a process-local Store for tests and single-instance
// deployments. Expired entries are reaped lazily on lookup.
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data     Data
	deadline time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Create(_ context.Context, token string, data Data) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Clone: the map retains the token as a key beyond this call, and callers
	// may pass strings aliasing reusable request buffers (fiber's c.Cookies).
	s.entries[strings.Clone(token)] = memoryEntry{
		data:     data,
		deadline: s.now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, token string) (*Data, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return nil, ErrNoSession
	}
	if s.now().After(entry.deadline) {
		delete(s.entries, token)
		return nil, ErrNoSession
	}

	entry.deadline = s.now().Add(s.ttl)
	// Clone for the same reason as Create: map assignment replaces the stored
	// string key, so an aliased token must not become the retained key.
	s.entries[strings.Clone(token)] = entry

	data := entry.data
	return &data, nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, token)
	return nil
}
