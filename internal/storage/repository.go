package storage

import (
	"context"
)

// Keys used by the application. Each holds one whole serialized value.
const (
	KeySavedLinks = "inspilink-saved-links"
	KeyDarkMode   = "darkMode"
)

// KV is the persistence collaborator: a string key-value store that lives as
// long as the process. Values are always read and written whole.
// This allows swapping BadgerDB for an in-memory map in tests.
type KV interface {
	// Get returns the value stored under key. The boolean is false if the key
	// has never been written.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Close gracefully shuts down the store.
	Close() error
}
