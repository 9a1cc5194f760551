package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// CreateCategory creates an empty category. Names are unique.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	cat := &domain.Category{Name: name, Questions: []string{}}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureNameFree(txCtx, name, ""); err != nil {
			return err
		}
		if err := s.categories.Insert(txCtx, cat); err != nil {
			return fmt.Errorf("insert category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", cat.ID),
		slog.String("name", name),
	)

	return cat, nil
}

// ensureNameFree fails with ErrAlreadyExists when another category than
// exceptID already uses name.
func (s *Service) ensureNameFree(ctx context.Context, name, exceptID string) error {
	existing, err := s.categories.FindOne(ctx, docstore.Where(docstore.Eq(domain.CategoryFieldName, name)))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find category by name: %w", err)
	case existing.ID == exceptID:
		return nil
	}
	return fmt.Errorf("category %q: %w", name, domain.ErrAlreadyExists)
}
