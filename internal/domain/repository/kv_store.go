// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by KeyValueStore.Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the storage primitive every repository is built on.
// It offers no compare-and-set; callers doing read-check-write accept last-writer-wins.
type KeyValueStore interface {
	// Get returns the raw value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set creates or replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error

	// GetByPrefix returns every value whose key starts with prefix, ordered by key.
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
