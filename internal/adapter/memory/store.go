// Package memory implements the document store in process memory.
// Documents are kept as bson maps in insertion order. It backs the service
// and transport tests and the "memory" store driver.
package memory

import (
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Store holds every collection behind a single mutex. A transaction holds
// the mutex for its whole duration, so operations inside RunInTx must not be
// spread across goroutines.
type Store struct {
	mu          sync.Mutex
	collections map[string][]bson.M
	now         func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string][]bson.M),
		now:         time.Now,
	}
}

type txCtxKey struct{}

// lock acquires the store mutex unless ctx belongs to a transaction of s,
// which already holds it.
func (s *Store) lock(ctx context.Context) func() {
	if owner, ok := ctx.Value(txCtxKey{}).(*Store); ok && owner == s {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// RunInTx executes fn with exclusive access to the store.
// On error from fn: restores every collection and returns the error.
// On panic from fn: restores every collection and re-panics.
// A nested call joins the outer transaction.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if owner, ok := ctx.Value(txCtxKey{}).(*Store); ok && owner == s {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snapshot()

	defer func() {
		if r := recover(); r != nil {
			s.collections = snap
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, s)); err != nil {
		s.collections = snap
		return err
	}

	return nil
}

// Ping always succeeds.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// snapshot copies the collection slices. Stored maps are never mutated in
// place, so sharing them with the snapshot is safe.
func (s *Store) snapshot() map[string][]bson.M {
	snap := make(map[string][]bson.M, len(s.collections))
	for name, docs := range s.collections {
		snap[name] = slices.Clone(docs)
	}
	return snap
}

func cloneDoc(doc bson.M) bson.M {
	return maps.Clone(doc)
}
