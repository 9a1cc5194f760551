package postgres

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
)

// psql builds statements with PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildWhere compiles f into a condition over the (id, doc) columns.
func buildWhere(f docstore.Filter) (sq.Sqlizer, error) {
	where := sq.And{}

	for _, c := range f.All {
		expr, err := buildCond(c)
		if err != nil {
			return nil, err
		}
		where = append(where, expr)
	}

	if len(f.Any) > 0 {
		anyOf := sq.Or{}
		for _, c := range f.Any {
			expr, err := buildCond(c)
			if err != nil {
				return nil, err
			}
			anyOf = append(anyOf, expr)
		}
		where = append(where, anyOf)
	}

	return where, nil
}

func buildCond(c docstore.Cond) (sq.Sqlizer, error) {
	if c.Field == docstore.FieldID {
		return buildIDCond(c)
	}

	switch c.Op {
	case docstore.OpEq:
		// @> matches scalars by equality and arrays by membership.
		val, err := json.Marshal(c.Value)
		if err != nil {
			return nil, fmt.Errorf("encode filter value for %s: %w", c.Field, err)
		}
		return sq.Expr("doc -> ?::text @> ?::jsonb", c.Field, string(val)), nil

	case docstore.OpIn:
		return sq.Expr("doc ->> ?::text = ANY(?::text[])", c.Field, stringValues(c.Values)), nil

	case docstore.OpContainsFold:
		return sq.Expr(
			"EXISTS (SELECT 1 FROM doc_text_values(doc -> ?::text) AS t(v) WHERE t.v ILIKE ?)",
			c.Field, likePattern(c.Value),
		), nil
	}

	return nil, fmt.Errorf("unsupported filter operator %s on %s", c.Op, c.Field)
}

func buildIDCond(c docstore.Cond) (sq.Sqlizer, error) {
	switch c.Op {
	case docstore.OpEq:
		return sq.Eq{"id": fmt.Sprint(c.Value)}, nil
	case docstore.OpIn:
		return sq.Eq{"id": stringValues(c.Values)}, nil
	case docstore.OpContainsFold:
		return sq.Expr("id ILIKE ?", likePattern(c.Value)), nil
	}
	return nil, fmt.Errorf("unsupported filter operator %s on %s", c.Op, c.Field)
}

func stringValues(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fmt.Sprint(v)
	}
	return out
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps v for a substring ILIKE match with wildcards escaped.
func likePattern(v any) string {
	return "%" + likeEscaper.Replace(fmt.Sprint(v)) + "%"
}

// buildDocUpdate compiles u into a jsonb expression over the doc column.
// set carries the Set fields plus any store-managed timestamps.
func buildDocUpdate(set map[string]any, u docstore.Update) (sq.Sqlizer, error) {
	expr := "doc"
	var args []any

	if len(set) > 0 {
		encoded, err := json.Marshal(set)
		if err != nil {
			return nil, fmt.Errorf("encode update: %w", err)
		}
		expr = "(" + expr + " || ?::jsonb)"
		args = append(args, string(encoded))
	}

	for _, field := range sortedKeys(u.Push) {
		expr = "doc_push(" + expr + ", ?::text, ?::text)"
		args = append(args, field, u.Push[field])
	}

	for _, field := range sortedKeys(u.Pull) {
		expr = "doc_pull(" + expr + ", ?::text, ?::text)"
		args = append(args, field, u.Pull[field])
	}

	return sq.Expr(expr, args...), nil
}
