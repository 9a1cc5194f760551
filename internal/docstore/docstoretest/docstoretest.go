// Package docstoretest provides in-memory collections and fault injection
// for tests of code built on docstore.
package docstoretest

import (
	"context"
	"sync"

	"github.com/priteshGolakiya/Interview-Questions/internal/adapter/memory"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// Fixture is a memory store with the application collections opened.
// Each collection is wrapped so tests can inject failures.
type Fixture struct {
	Store      *memory.Store
	Categories *Collection[domain.Category]
	Questions  *Collection[domain.Question]
	Answers    *Collection[domain.Answer]
}

// NewFixture creates an empty fixture.
func NewFixture() *Fixture {
	s := memory.NewStore()
	return &Fixture{
		Store:      s,
		Categories: Wrap[domain.Category](memory.NewCollection[domain.Category](s, docstore.Categories)),
		Questions:  Wrap[domain.Question](memory.NewCollection[domain.Question](s, docstore.Questions)),
		Answers:    Wrap[domain.Answer](memory.NewCollection[domain.Answer](s, docstore.Answers)),
	}
}

// Collection forwards to Inner unless the matching hook is set.
type Collection[T any] struct {
	Inner docstore.Collection[T]

	InsertFunc     func(ctx context.Context, doc *T) error
	FindByIDFunc   func(ctx context.Context, id string) (*T, error)
	FindOneFunc    func(ctx context.Context, f docstore.Filter) (*T, error)
	FindFunc       func(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*T, error)
	CountFunc      func(ctx context.Context, f docstore.Filter) (int64, error)
	UpdateByIDFunc func(ctx context.Context, id string, u docstore.Update) (*T, error)
	DeleteByIDFunc func(ctx context.Context, id string) (*T, error)

	mu     sync.Mutex
	writes int
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// Wrap returns a pass-through wrapper around inner.
func Wrap[T any](inner docstore.Collection[T]) *Collection[T] {
	return &Collection[T]{Inner: inner}
}

// Writes returns how many Insert, UpdateByID and DeleteByID calls were made.
func (c *Collection[T]) Writes() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writes
}

func (c *Collection[T]) countWrite() {
	c.mu.Lock()
	c.writes++
	c.mu.Unlock()
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	c.countWrite()
	if c.InsertFunc != nil {
		return c.InsertFunc(ctx, doc)
	}
	return c.Inner.Insert(ctx, doc)
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	if c.FindByIDFunc != nil {
		return c.FindByIDFunc(ctx, id)
	}
	return c.Inner.FindByID(ctx, id)
}

func (c *Collection[T]) FindOne(ctx context.Context, f docstore.Filter) (*T, error) {
	if c.FindOneFunc != nil {
		return c.FindOneFunc(ctx, f)
	}
	return c.Inner.FindOne(ctx, f)
}

func (c *Collection[T]) Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*T, error) {
	if c.FindFunc != nil {
		return c.FindFunc(ctx, f, opts)
	}
	return c.Inner.Find(ctx, f, opts)
}

func (c *Collection[T]) Count(ctx context.Context, f docstore.Filter) (int64, error) {
	if c.CountFunc != nil {
		return c.CountFunc(ctx, f)
	}
	return c.Inner.Count(ctx, f)
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, u docstore.Update) (*T, error) {
	c.countWrite()
	if c.UpdateByIDFunc != nil {
		return c.UpdateByIDFunc(ctx, id, u)
	}
	return c.Inner.UpdateByID(ctx, id, u)
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	c.countWrite()
	if c.DeleteByIDFunc != nil {
		return c.DeleteByIDFunc(ctx, id)
	}
	return c.Inner.DeleteByID(ctx, id)
}

// FailInsertAfter lets the first n inserts through and fails every later
// one with err.
func (c *Collection[T]) FailInsertAfter(n int, err error) {
	var mu sync.Mutex
	calls := 0
	c.InsertFunc = func(ctx context.Context, doc *T) error {
		mu.Lock()
		calls++
		current := calls
		mu.Unlock()
		if current > n {
			return err
		}
		return c.Inner.Insert(ctx, doc)
	}
}
