package storage

import (
	"context"
	"sync"
)

// Memory is a map-backed KV. It is used in tests and wherever durability
// does not matter.
type Memory struct {
	mu     sync.Mutex
	values map[string]string

	// SetErr, when non-nil, is returned by every Set call.
	SetErr error
	// GetErr, when non-nil, is returned by every Get call.
	GetErr error
}

// NewMemory creates an empty Memory.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get reads the value stored under key.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
