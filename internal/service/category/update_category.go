package category

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// UpdateCategory renames a category. Without a name it returns the
// category unchanged.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.getCategory(txCtx, input.ID)
		if err != nil {
			return err
		}

		if input.Name == nil {
			updated = current
			return nil
		}

		name := strings.TrimSpace(*input.Name)
		if name == current.Name {
			updated = current
			return nil
		}
		if err := s.ensureNameFree(txCtx, name, current.ID); err != nil {
			return err
		}

		updated, err = s.categories.UpdateByID(txCtx, input.ID, docstore.Update{
			Set: map[string]any{domain.CategoryFieldName: name},
		})
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", updated.ID),
		slog.String("name", updated.Name),
	)

	return updated, nil
}

// DeleteCategory removes a category. Its questions are left in place.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if err := validateID("id", id); err != nil {
		return err
	}

	deleted, err := s.categories.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted",
		slog.String("category_id", id),
		slog.Int("orphaned_questions", len(deleted.Questions)),
	)

	return nil
}
