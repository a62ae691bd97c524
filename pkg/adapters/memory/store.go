// Package memory provides a map-backed core.Store.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/aretw0/haste/pkg/core"
)

// Store keeps documents in memory under generated ulid keys.
type Store struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{docs: make(map[string]string)}
}

// Get implements core.Store.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.docs[key]
	if !ok {
		return "", core.ErrNotFound
	}
	return content, nil
}

// Put implements core.Store.
func (s *Store) Put(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", core.NewGenericStoreError(0, err)
	}
	key := strings.ToLower(ulid.Make().String())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = content
	return key, nil
}

// Set stores content under a caller-chosen key.
func (s *Store) Set(key, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[key] = content
}

// Len returns the number of stored documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "memory-store"
}
