// Package storage provides the keyed JSON persistence collaborator.
// Profiles and per-user transaction lists are stored as opaque JSON
// values under well-known keys; there is no schema versioning.
package storage

import (
	"context"
	"sync"
)

// KV is a keyed blob store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ProfileKey returns the storage key for a user profile.
func ProfileKey(userID string) string { return "profile:" + userID }

// TransactionsKey returns the storage key for a user's transaction list.
func TransactionsKey(userID string) string { return "transactions:" + userID }

// Memory is an in-process KV used in tests and as a throwaway backend.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(v))
	copy(out, v)

	return out, true, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v

	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)

	return nil
}

func (m *Memory) Close() error { return nil }
