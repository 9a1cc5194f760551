package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs document store transactions on a PostgreSQL pool. The
// transaction travels in the context; collections pick it up through
// DBFromCtx. A RunInTx nested in another runs inside a savepoint, so its
// rollback leaves the outer transaction usable.
type TxManager struct {
	pool *pgxpool.Pool
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunInTx executes fn within a Read Committed transaction.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (m *TxManager) begin(ctx context.Context) (pgx.Tx, error) {
	if outer, ok := TxFromCtx(ctx); ok {
		return outer.Begin(ctx)
	}
	return m.pool.Begin(ctx)
}

// Ping checks that the database accepts connections.
func (m *TxManager) Ping(ctx context.Context) error {
	return m.pool.Ping(ctx)
}
