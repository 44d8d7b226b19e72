package storage

import "context"

// MemoryStore keeps overrides for the life of the process only. This is the
// default: a reload discards every edit, matching the prototype's
// session-local semantics.
type MemoryStore struct {
	overrides map[string]Override
}

// NewMemoryStore creates an empty in-memory override store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{overrides: make(map[string]Override)}
}

// Get returns the override for a transaction id, or nil.
func (s *MemoryStore) Get(_ context.Context, transactionID string) (*Override, error) {
	ov, ok := s.overrides[transactionID]
	if !ok {
		return nil, nil
	}
	return &ov, nil
}

// Save upserts an override.
func (s *MemoryStore) Save(_ context.Context, ov Override) error {
	s.overrides[ov.TransactionID] = ov
	return nil
}

// All returns every stored override.
func (s *MemoryStore) All(_ context.Context) (map[string]Override, error) {
	out := make(map[string]Override, len(s.overrides))
	for k, v := range s.overrides {
		out[k] = v
	}
	return out, nil
}

// Close is a no-op for the memory store.
func (s *MemoryStore) Close() error {
	return nil
}
