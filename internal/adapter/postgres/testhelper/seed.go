package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedCategory inserts a category row directly, bypassing the collection code.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	cat := domain.Category{
		ID:        docstore.NewID(),
		Name:      "Category " + UniqueSuffix(),
		Questions: []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	doc, err := json.Marshal(cat)
	if err != nil {
		t.Fatalf("SeedCategory: encode: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO categories (id, doc) VALUES ($1, $2::jsonb)`,
		cat.ID, string(doc),
	)
	if err != nil {
		t.Fatalf("SeedCategory: %v", err)
	}

	return cat
}
