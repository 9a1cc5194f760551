package memory

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// Collection implements docstore.Collection over a Store.
type Collection[T any] struct {
	store *Store
	opts  docstore.CollectionOptions
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection opens the named collection of s.
func NewCollection[T any](s *Store, opts docstore.CollectionOptions) *Collection[T] {
	return &Collection[T]{store: s, opts: opts}
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := toMap(doc)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.opts.Name, err)
	}

	id, _ := m[docstore.FieldID].(string)
	if id == "" {
		id = docstore.NewID()
		m[docstore.FieldID] = id
	}

	unlock := c.store.lock(ctx)
	defer unlock()

	if c.opts.Timestamps {
		now := primitive.NewDateTimeFromTime(c.store.now())
		m[docstore.FieldCreatedAt] = now
		m[docstore.FieldUpdatedAt] = now
	}

	docs := c.store.collections[c.opts.Name]
	if indexOf(docs, id) >= 0 {
		return fmt.Errorf("%s %s: %w", c.opts.Name, id, domain.ErrAlreadyExists)
	}
	if err := c.checkUnique(docs, m, -1); err != nil {
		return err
	}
	c.store.collections[c.opts.Name] = append(docs, m)

	if err := fromMapInto(m, doc); err != nil {
		return fmt.Errorf("insert %s: %w", c.opts.Name, err)
	}
	return nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.findOne(ctx, docstore.ByID(id), id)
}

func (c *Collection[T]) FindOne(ctx context.Context, f docstore.Filter) (*T, error) {
	return c.findOne(ctx, f, "")
}

func (c *Collection[T]) findOne(ctx context.Context, f docstore.Filter, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := c.store.lock(ctx)
	defer unlock()

	for _, m := range c.store.collections[c.opts.Name] {
		if matches(m, f) {
			return fromMap[T](m)
		}
	}
	return nil, c.notFound(id)
}

func (c *Collection[T]) Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := c.store.lock(ctx)
	defer unlock()

	result := make([]*T, 0)
	var skipped int64
	for _, m := range c.store.collections[c.opts.Name] {
		if !matches(m, f) {
			continue
		}
		if skipped < opts.Skip {
			skipped++
			continue
		}
		doc, err := fromMap[T](m)
		if err != nil {
			return nil, err
		}
		result = append(result, doc)
		if opts.Limit > 0 && int64(len(result)) >= opts.Limit {
			break
		}
	}
	return result, nil
}

func (c *Collection[T]) Count(ctx context.Context, f docstore.Filter) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	unlock := c.store.lock(ctx)
	defer unlock()

	var n int64
	for _, m := range c.store.collections[c.opts.Name] {
		if matches(m, f) {
			n++
		}
	}
	return n, nil
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, u docstore.Update) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := c.store.lock(ctx)
	defer unlock()

	docs := c.store.collections[c.opts.Name]
	i := indexOf(docs, id)
	if i < 0 {
		return nil, c.notFound(id)
	}

	updated, err := applyUpdate(docs[i], u)
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", c.opts.Name, id, err)
	}
	if err := c.checkUnique(docs, updated, i); err != nil {
		return nil, err
	}
	if c.opts.Timestamps {
		updated[docstore.FieldUpdatedAt] = primitive.NewDateTimeFromTime(c.store.now())
	}
	docs[i] = updated

	return fromMap[T](updated)
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	unlock := c.store.lock(ctx)
	defer unlock()

	docs := c.store.collections[c.opts.Name]
	i := indexOf(docs, id)
	if i < 0 {
		return nil, c.notFound(id)
	}

	removed := docs[i]
	c.store.collections[c.opts.Name] = append(docs[:i:i], docs[i+1:]...)

	return fromMap[T](removed)
}

func (c *Collection[T]) notFound(id string) error {
	if id == "" {
		return fmt.Errorf("%s: %w", c.opts.Name, domain.ErrNotFound)
	}
	return fmt.Errorf("%s %s: %w", c.opts.Name, id, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// checkUnique reports a conflict when doc repeats a unique field value held
// by any document other than docs[self].
func (c *Collection[T]) checkUnique(docs []bson.M, doc bson.M, self int) error {
	for _, field := range c.opts.Unique {
		v, ok := doc[field]
		if !ok || v == nil {
			continue
		}
		for i, other := range docs {
			ov, ok := other[field]
			if ok && i != self && equalValue(ov, v) {
				return fmt.Errorf("%s %s=%v: %w", c.opts.Name, field, v, domain.ErrAlreadyExists)
			}
		}
	}
	return nil
}

func indexOf(docs []bson.M, id string) int {
	for i, m := range docs {
		if m[docstore.FieldID] == id {
			return i
		}
	}
	return -1
}

// applyUpdate returns a new document with u applied. The input is left
// untouched so snapshots taken by RunInTx stay valid.
func applyUpdate(doc bson.M, u docstore.Update) (bson.M, error) {
	out := cloneDoc(doc)

	for field, v := range u.Set {
		if field == docstore.FieldID {
			continue
		}
		out[field] = v
	}

	for field, v := range u.Push {
		current, _ := out[field].(bson.A)
		next := make(bson.A, 0, len(current)+1)
		next = append(next, current...)
		out[field] = append(next, v)
	}

	for field, v := range u.Pull {
		current, _ := out[field].(bson.A)
		next := make(bson.A, 0, len(current))
		for _, elem := range current {
			if elem != v {
				next = append(next, elem)
			}
		}
		out[field] = next
	}

	return normalize(out)
}

// normalize round-trips m through bson so that every value has the type the
// decoder produces (arrays as bson.A, times as primitive.DateTime).
func normalize(m bson.M) (bson.M, error) {
	raw, err := bson.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var out bson.M
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return out, nil
}

func toMap(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("unmarshal document: %w", err)
	}
	return m, nil
}

func fromMap[T any](m bson.M) (*T, error) {
	var doc T
	if err := fromMapInto(m, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func fromMapInto(m bson.M, dst any) error {
	raw, err := bson.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	if err := bson.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode document: %w", err)
	}
	return nil
}
