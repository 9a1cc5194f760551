// Package docstore defines the document store contract shared by the
// MongoDB, PostgreSQL and in-memory backends.
//
// Documents are plain structs carrying bson and json tags. Every document has
// a string "_id" field holding a 24-character hex identifier. Collections
// opened with timestamps get "createdAt" and "updatedAt" maintained by the
// backend.
package docstore

import "context"

// Well-known document fields.
const (
	FieldID        = "_id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// Collection is a typed view over one collection of documents.
// All lookups that find nothing return an error wrapping domain.ErrNotFound.
type Collection[T any] interface {
	// Insert stores doc. An empty _id is assigned with NewID and written back
	// into doc together with any store-managed timestamps.
	Insert(ctx context.Context, doc *T) error

	FindByID(ctx context.Context, id string) (*T, error)

	// FindOne returns the first matching document in insertion order.
	FindOne(ctx context.Context, f Filter) (*T, error)

	// Find returns matching documents in insertion order. Never nil.
	Find(ctx context.Context, f Filter, opts FindOptions) ([]*T, error)

	Count(ctx context.Context, f Filter) (int64, error)

	// UpdateByID applies u and returns the document after the update.
	UpdateByID(ctx context.Context, id string, u Update) (*T, error)

	// DeleteByID removes the document and returns it as it was.
	DeleteByID(ctx context.Context, id string) (*T, error)
}

// TxManager runs fn in a single store transaction carried by the context
// passed to fn. The transaction commits when fn returns nil and rolls back
// otherwise. Nested calls are not supported.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// CollectionOptions configures a collection when a backend opens it.
type CollectionOptions struct {
	Name       string
	Timestamps bool
	// Unique lists top-level fields whose values must differ across
	// documents. Writes that would repeat a value fail with
	// domain.ErrAlreadyExists.
	Unique []string
}

// FindOptions paginates Find. A zero Limit means no limit.
type FindOptions struct {
	Skip  int64
	Limit int64
}

// Collection layout of the application.
var (
	Categories = CollectionOptions{Name: "categories", Timestamps: true, Unique: []string{"name"}}
	Questions  = CollectionOptions{Name: "questions", Timestamps: true}
	Answers    = CollectionOptions{Name: "answers"}
)
