package question

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// UpdateQuestion replaces the supplied fields. A new category is checked
// for existence and the question moves from the old category's list to the
// new one.
func (s *Service) UpdateQuestion(ctx context.Context, input UpdateQuestionInput) (*domain.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	set := map[string]any{}
	if input.Title != nil {
		set[domain.QuestionFieldTitle] = strings.TrimSpace(*input.Title)
	}
	if input.Description != nil {
		set[domain.QuestionFieldDescription] = strings.TrimSpace(*input.Description)
	}
	if input.Difficulty != nil {
		set[domain.QuestionFieldDifficulty] = *input.Difficulty
	}
	if input.Tags != nil {
		set[domain.QuestionFieldTags] = normalizeTags(*input.Tags)
	}

	var updated *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.questions.FindByID(txCtx, input.ID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		if input.CategoryID != nil && *input.CategoryID != current.Category {
			if err := s.moveCategory(txCtx, current, *input.CategoryID); err != nil {
				return err
			}
			set[domain.QuestionFieldCategory] = *input.CategoryID
		}

		if len(set) == 0 {
			updated = current
			return nil
		}

		updated, err = s.questions.UpdateByID(txCtx, input.ID, docstore.Update{Set: set})
		if err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question updated",
		slog.String("question_id", updated.ID),
		slog.String("category_id", updated.Category),
	)

	return updated, nil
}

func (s *Service) moveCategory(ctx context.Context, q *domain.Question, categoryID string) error {
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		return fmt.Errorf("get category: %w", err)
	}
	if err := s.unlinkFromCategory(ctx, q); err != nil {
		return err
	}
	_, err := s.categories.UpdateByID(ctx, categoryID, docstore.Update{
		Push: map[string]string{domain.CategoryFieldQuestions: q.ID},
	})
	if err != nil {
		return fmt.Errorf("link question to category: %w", err)
	}
	return nil
}

// unlinkFromCategory pulls q from its category's list. A category that no
// longer exists is ignored.
func (s *Service) unlinkFromCategory(ctx context.Context, q *domain.Question) error {
	_, err := s.categories.UpdateByID(ctx, q.Category, docstore.Update{
		Pull: map[string]string{domain.CategoryFieldQuestions: q.ID},
	})
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("unlink question from category: %w", err)
	}
	return nil
}

// DeleteQuestion removes a question and its category link. Its answers
// are left in place.
func (s *Service) DeleteQuestion(ctx context.Context, id string) error {
	if !docstore.IsValidID(id) {
		return domain.NewValidationError("id", "invalid id format")
	}

	var deleted *domain.Question
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.questions.DeleteByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		return s.unlinkFromCategory(txCtx, deleted)
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "question deleted",
		slog.String("question_id", id),
		slog.String("category_id", deleted.Category),
	)

	return nil
}
