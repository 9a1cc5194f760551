package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
)

// Collection implements docstore.Collection over a table of the shape
// (seq bigserial, id text primary key, doc jsonb). Insertion order is seq.
type Collection[T any] struct {
	pool  *pgxpool.Pool
	opts  docstore.CollectionOptions
	table string
	now   func() time.Time
}

var _ docstore.Collection[struct{}] = (*Collection[struct{}])(nil)

// NewCollection opens the table named opts.Name.
func NewCollection[T any](pool *pgxpool.Pool, opts docstore.CollectionOptions) *Collection[T] {
	return &Collection[T]{
		pool:  pool,
		opts:  opts,
		table: pgx.Identifier{opts.Name}.Sanitize(),
		now:   time.Now,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

func (c *Collection[T]) Insert(ctx context.Context, doc *T) error {
	m, err := toDocMap(doc)
	if err != nil {
		return fmt.Errorf("insert %s: %w", c.opts.Name, err)
	}

	id, _ := m[docstore.FieldID].(string)
	if id == "" {
		id = docstore.NewID()
		m[docstore.FieldID] = id
	}
	if c.opts.Timestamps {
		now := c.now().UTC()
		m[docstore.FieldCreatedAt] = now
		m[docstore.FieldUpdatedAt] = now
	}

	encoded, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("insert %s: encode document: %w", c.opts.Name, err)
	}

	query, args, err := psql.Insert(c.table).
		Columns("id", "doc").
		Values(id, sq.Expr("?::jsonb", string(encoded))).
		ToSql()
	if err != nil {
		return fmt.Errorf("insert %s: build query: %w", c.opts.Name, err)
	}

	if _, err := DBFromCtx(ctx, c.pool).Exec(ctx, query, args...); err != nil {
		return mapError(err, c.opts.Name, id)
	}

	if err := json.Unmarshal(encoded, doc); err != nil {
		return fmt.Errorf("insert %s: decode document: %w", c.opts.Name, err)
	}
	return nil
}

func (c *Collection[T]) UpdateByID(ctx context.Context, id string, u docstore.Update) (*T, error) {
	set := make(map[string]any, len(u.Set)+1)
	maps.Copy(set, u.Set)
	delete(set, docstore.FieldID)
	if c.opts.Timestamps {
		set[docstore.FieldUpdatedAt] = c.now().UTC()
	}

	docExpr, err := buildDocUpdate(set, u)
	if err != nil {
		return nil, fmt.Errorf("update %s %s: %w", c.opts.Name, id, err)
	}

	query, args, err := psql.Update(c.table).
		Set("doc", docExpr).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING doc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("update %s: build query: %w", c.opts.Name, err)
	}

	return c.scanOne(ctx, id, query, args)
}

func (c *Collection[T]) DeleteByID(ctx context.Context, id string) (*T, error) {
	query, args, err := psql.Delete(c.table).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING doc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("delete %s: build query: %w", c.opts.Name, err)
	}

	return c.scanOne(ctx, id, query, args)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func (c *Collection[T]) FindByID(ctx context.Context, id string) (*T, error) {
	query, args, err := psql.Select("doc").
		From(c.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("find %s: build query: %w", c.opts.Name, err)
	}

	return c.scanOne(ctx, id, query, args)
}

func (c *Collection[T]) FindOne(ctx context.Context, f docstore.Filter) (*T, error) {
	where, err := buildWhere(f)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.opts.Name, err)
	}

	query, args, err := psql.Select("doc").
		From(c.table).
		Where(where).
		OrderBy("seq ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("find %s: build query: %w", c.opts.Name, err)
	}

	return c.scanOne(ctx, "", query, args)
}

func (c *Collection[T]) Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*T, error) {
	where, err := buildWhere(f)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", c.opts.Name, err)
	}

	builder := psql.Select("doc").
		From(c.table).
		Where(where).
		OrderBy("seq ASC")
	if opts.Skip > 0 {
		builder = builder.Offset(uint64(opts.Skip))
	}
	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("find %s: build query: %w", c.opts.Name, err)
	}

	rows, err := DBFromCtx(ctx, c.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, mapError(err, c.opts.Name, "")
	}
	defer rows.Close()

	result := make([]*T, 0)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("find %s: scan: %w", c.opts.Name, err)
		}
		doc, err := decodeDoc[T](raw)
		if err != nil {
			return nil, fmt.Errorf("find %s: %w", c.opts.Name, err)
		}
		result = append(result, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, c.opts.Name, "")
	}

	return result, nil
}

func (c *Collection[T]) Count(ctx context.Context, f docstore.Filter) (int64, error) {
	where, err := buildWhere(f)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", c.opts.Name, err)
	}

	query, args, err := psql.Select("count(*)").
		From(c.table).
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("count %s: build query: %w", c.opts.Name, err)
	}

	var n int64
	if err := DBFromCtx(ctx, c.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, mapError(err, c.opts.Name, "")
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (c *Collection[T]) scanOne(ctx context.Context, id, query string, args []any) (*T, error) {
	var raw []byte
	if err := DBFromCtx(ctx, c.pool).QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		return nil, mapError(err, c.opts.Name, id)
	}

	doc, err := decodeDoc[T](raw)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", c.opts.Name, id, err)
	}
	return doc, nil
}

func decodeDoc[T any](raw []byte) (*T, error) {
	var doc T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}

// toDocMap encodes doc through its json tags into a generic map.
func toDocMap(doc any) (map[string]any, error) {
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(encoded))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return m, nil
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}
