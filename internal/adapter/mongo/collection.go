package mongo

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// insertionOrder sorts by _id. Ids are ObjectID hex strings, so the
// lexical order follows creation time.
var insertionOrder = bson.D{{Key: docstore.FieldID, Value: 1}}

// Collection implements docstore.Collection over a MongoDB collection.
type Collection[T any] struct {
	coll *mongo.Collection
	opts docstore.CollectionOptions
	now  func() time.Time
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection opens the collection named opts.Name in the store database.
func NewCollection[T any](s *Store, opts docstore.CollectionOptions) *Collection[T] {
	return &Collection[T]{
		coll: s.db.Collection(opts.Name),
		opts: opts,
		now:  time.Now,
	}
}

func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	m, err := toMap(doc)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.opts.Name, err)
	}

	id, _ := m[docstore.FieldID].(string)
	if id == "" {
		id = docstore.NewID()
		m[docstore.FieldID] = id
	}
	if c.opts.Timestamps {
		now := primitive.NewDateTimeFromTime(c.now())
		m[docstore.FieldCreatedAt] = now
		m[docstore.FieldUpdatedAt] = now
	}

	if _, err := c.coll.InsertOne(ctx, m); err != nil {
		return c.mapError(err, id)
	}

	raw, err := bson.Marshal(m)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.opts.Name, err)
	}
	if err := bson.Unmarshal(raw, doc); err != nil {
		return fmt.Errorf("insert %s: decode document: %w", c.opts.Name, err)
	}
	return nil
}

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	return c.decodeOne(c.coll.FindOne(ctx, bson.D{{Key: docstore.FieldID, Value: id}}), id)
}

func (c *Collection[T]) FindOne(ctx context.Context, f docstore.Filter) (*T, error) {
	opts := options.FindOne().SetSort(insertionOrder)
	return c.decodeOne(c.coll.FindOne(ctx, toFilter(f), opts), "")
}

func (c *Collection[T]) Find(ctx context.Context, f docstore.Filter, fo docstore.FindOptions) ([]*T, error) {
	opts := options.Find().SetSort(insertionOrder)
	if fo.Skip > 0 {
		opts.SetSkip(fo.Skip)
	}
	if fo.Limit > 0 {
		opts.SetLimit(fo.Limit)
	}

	cur, err := c.coll.Find(ctx, toFilter(f), opts)
	if err != nil {
		return nil, c.mapError(err, "")
	}

	result := make([]*T, 0)
	if err := cur.All(ctx, &result); err != nil {
		return nil, c.mapError(err, "")
	}
	if result == nil {
		result = make([]*T, 0)
	}
	return result, nil
}

func (c *Collection[T]) Count(ctx context.Context, f docstore.Filter) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, toFilter(f))
	if err != nil {
		return 0, c.mapError(err, "")
	}
	return n, nil
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, u docstore.Update) (*T, error) {
	set := make(map[string]any, len(u.Set)+1)
	maps.Copy(set, u.Set)
	delete(set, docstore.FieldID)
	if c.opts.Timestamps {
		set[docstore.FieldUpdatedAt] = primitive.NewDateTimeFromTime(c.now())
	}

	update := toUpdate(set, u)
	if len(update) == 0 {
		return c.FindByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	res := c.coll.FindOneAndUpdate(ctx, bson.D{{Key: docstore.FieldID, Value: id}}, update, opts)
	return c.decodeOne(res, id)
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	res := c.coll.FindOneAndDelete(ctx, bson.D{{Key: docstore.FieldID, Value: id}})
	return c.decodeOne(res, id)
}

func (c *Collection[T]) decodeOne(res *mongo.SingleResult, id string) (*T, error) {
	var doc T
	if err := res.Decode(&doc); err != nil {
		return nil, c.mapError(err, id)
	}
	return &doc, nil
}

// mapError converts driver errors to domain errors.
func (c *Collection[T]) mapError(err error, id string) error {
	prefix := c.opts.Name
	if id != "" {
		prefix = c.opts.Name + " " + id
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fmt.Errorf("%s: %w", prefix, err)
	case errors.Is(err, mongo.ErrNoDocuments):
		return fmt.Errorf("%s: %w", prefix, domain.ErrNotFound)
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", prefix, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w", prefix, err)
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
