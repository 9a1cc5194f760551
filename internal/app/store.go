package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/adapter/memory"
	"github.com/priteshGolakiya/Interview-Questions/internal/adapter/mongo"
	"github.com/priteshGolakiya/Interview-Questions/internal/adapter/postgres"
	"github.com/priteshGolakiya/Interview-Questions/internal/config"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

type txPinger interface {
	docstore.TxManager
	docstore.Pinger
}

// Store is an opened document store with the application collections.
type Store struct {
	Driver     string
	Categories docstore.Collection[domain.Category]
	Questions  docstore.Collection[domain.Question]
	Answers    docstore.Collection[domain.Answer]
	// Tx runs transactions and answers health pings.
	Tx    txPinger
	close func(ctx context.Context) error
}

// Close releases the store's connections.
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}

// OpenStore connects the backend selected by cfg.Store.Driver. Postgres
// migrations and mongo unique indexes are applied before the store is
// returned.
func OpenStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverMemory:
		s := memory.NewStore()
		return &Store{
			Driver:     config.DriverMemory,
			Categories: memory.NewCollection[domain.Category](s, docstore.Categories),
			Questions:  memory.NewCollection[domain.Question](s, docstore.Questions),
			Answers:    memory.NewCollection[domain.Answer](s, docstore.Answers),
			Tx:         s,
		}, nil

	case config.DriverMongo:
		s, err := mongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureIndexes(ctx, docstore.Categories, docstore.Questions, docstore.Answers); err != nil {
			_ = s.Close(context.WithoutCancel(ctx))
			return nil, err
		}
		return &Store{
			Driver:     config.DriverMongo,
			Categories: mongo.NewCollection[domain.Category](s, docstore.Categories),
			Questions:  mongo.NewCollection[domain.Question](s, docstore.Questions),
			Answers:    mongo.NewCollection[domain.Answer](s, docstore.Answers),
			Tx:         s,
			close:      s.Close,
		}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Driver:     config.DriverPostgres,
			Categories: postgres.NewCollection[domain.Category](pool, docstore.Categories),
			Questions:  postgres.NewCollection[domain.Question](pool, docstore.Questions),
			Answers:    postgres.NewCollection[domain.Answer](pool, docstore.Answers),
			Tx:         postgres.NewTxManager(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	default:
		return nil, fmt.Errorf("open store: unknown driver %q", cfg.Store.Driver)
	}
}
