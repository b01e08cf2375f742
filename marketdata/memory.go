package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore is an in-process Store for development and testing. Snapshots
// are deep-copied on save and load so callers never share state with the
// store.
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot []byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// SaveSnapshot stores a copy of the snapshot.
func (m *MemoryStore) SaveSnapshot(ctx context.Context, s *Snapshot) error {
	if s == nil {
		return fmt.Errorf("SaveSnapshot: nil snapshot")
	}
	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("SaveSnapshot: %w", err)
	}
	m.mu.Lock()
	m.snapshot = payload
	m.mu.Unlock()
	return nil
}

// LoadSnapshot returns a copy of the stored snapshot, or ErrNoSnapshot.
func (m *MemoryStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	m.mu.RLock()
	payload := m.snapshot
	m.mu.RUnlock()

	if payload == nil {
		return nil, ErrNoSnapshot
	}
	var s Snapshot
	if err := json.Unmarshal(payload, &s); err != nil {
		return nil, fmt.Errorf("LoadSnapshot: %w", err)
	}
	return &s, nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
