// Package memory provides an in-process key-value store for demo mode and tests.
package memory

import (
	"context"
	"slices"
	"strings"
	"sync"

	"bloodlink/internal/domain/repository"
)

// kvStore keeps entries in a map guarded by a RWMutex. Values are copied on the
// way in and out so callers never share backing arrays with the store.
type kvStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewKVStore creates an empty in-memory key-value store
func NewKVStore() repository.KeyValueStore {
	return &kvStore{entries: make(map[string][]byte)}
}

func (s *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return slices.Clone(value), nil
}

func (s *kvStore) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = slices.Clone(value)

	return nil
}

func (s *kvStore) GetByPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for key := range s.entries {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)

	values := make([][]byte, 0, len(keys))
	for _, key := range keys {
		values = append(values, slices.Clone(s.entries[key]))
	}

	return values, nil
}
