package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore keeps each collection as a JSON blob in memory. It mirrors
// the serialization behaviour of the real store, so repository tests run
// against the same document round-trip they would see in production.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

func (s *MemoryStore) Read(ctx context.Context, key string, out interface{}) error {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()

	if !ok {
		raw = []byte("[]")
	}
	return json.Unmarshal(raw, out)
}

func (s *MemoryStore) WriteAll(ctx context.Context, key string, docs interface{}) error {
	raw, err := json.Marshal(docs)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}
