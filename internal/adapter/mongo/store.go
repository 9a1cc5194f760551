// Package mongo implements the document store on MongoDB. Transactions need
// a replica set or sharded cluster.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/priteshGolakiya/Interview-Questions/internal/config"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
)

// Store owns the client connection and the application database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB using cfg and pings the primary so that a bad URI
// fails at startup.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Database returns the application database.
func (s *Store) Database() *mongo.Database {
	return s.db
}

// Ping checks that the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates a unique index for every Unique field of each
// collection. Existing indexes with the same keys are left alone.
func (s *Store) EnsureIndexes(ctx context.Context, collections ...docstore.CollectionOptions) error {
	for _, opts := range collections {
		if len(opts.Unique) == 0 {
			continue
		}
		models := make([]mongo.IndexModel, len(opts.Unique))
		for i, field := range opts.Unique {
			models[i] = mongo.IndexModel{
				Keys:    bson.D{{Key: field, Value: 1}},
				Options: options.Index().SetUnique(true).SetName(field + "_unique"),
			}
		}
		if _, err := s.db.Collection(opts.Name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create %s indexes: %w", opts.Name, err)
		}
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// RunInTx executes fn inside a session transaction. Collections find the
// session through the context passed to fn. The transaction is not retried.
// On error from fn: aborts and returns the error.
// On panic from fn: aborts and re-panics.
func (s *Store) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	sess, err := s.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(context.WithoutCancel(ctx))

	if err := sess.StartTransaction(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	sessCtx := mongo.NewSessionContext(ctx, sess)

	defer func() {
		if r := recover(); r != nil {
			_ = sess.AbortTransaction(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(sessCtx); err != nil {
		if abortErr := sess.AbortTransaction(context.WithoutCancel(ctx)); abortErr != nil {
			return fmt.Errorf("abort failed: %w (original error: %v)", abortErr, err)
		}
		return err
	}

	if err := sess.CommitTransaction(sessCtx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
