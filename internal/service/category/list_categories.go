package category

import (
	"context"
	"fmt"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// ListCategories returns every category with its questions resolved to
// id and title.
func (s *Service) ListCategories(ctx context.Context) ([]Summary, error) {
	cats, err := s.categories.Find(ctx, docstore.Filter{}, docstore.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	var ids []string
	for _, c := range cats {
		ids = append(ids, c.Questions...)
	}

	questions, err := docstore.FindByIDs(ctx, s.questions, ids, questionID)
	if err != nil {
		return nil, fmt.Errorf("populate questions: %w", err)
	}

	titles := make(map[string]string, len(questions))
	for _, q := range questions {
		titles[q.ID] = q.Title
	}

	result := make([]Summary, len(cats))
	for i, c := range cats {
		refs := make([]QuestionRef, 0, len(c.Questions))
		for _, id := range c.Questions {
			if title, ok := titles[id]; ok {
				refs = append(refs, QuestionRef{ID: id, Title: title})
			}
		}
		result[i] = Summary{Category: c, Questions: refs}
	}

	return result, nil
}

// GetCategory returns a category with its questions resolved to full
// documents.
func (s *Service) GetCategory(ctx context.Context, id string) (*Details, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}

	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	questions, err := docstore.FindByIDs(ctx, s.questions, cat.Questions, questionID)
	if err != nil {
		return nil, fmt.Errorf("populate questions: %w", err)
	}

	return &Details{Category: cat, Questions: questions}, nil
}

func (s *Service) getCategory(ctx context.Context, id string) (*domain.Category, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return cat, nil
}
