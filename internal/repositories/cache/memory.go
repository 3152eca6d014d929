package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	result  StoredResult
	expires time.Time
}

// MemoryStore is an in-process ResultStore used in tests and in
// deployments without redis. Expired entries are dropped lazily on access.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Put(_ context.Context, token string, result StoredResult, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{result: result, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Take(_ context.Context, token string) (StoredResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[token]
	if !ok {
		return StoredResult{}, false, nil
	}
	delete(s.entries, token)
	if time.Now().After(entry.expires) {
		return StoredResult{}, false, nil
	}
	return entry.result, true, nil
}

func (s *MemoryStore) Close() error { return nil }
