package question

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// GetQuestion returns a question with its category and answers populated.
func (s *Service) GetQuestion(ctx context.Context, id string) (*Details, error) {
	if !docstore.IsValidID(id) {
		return nil, domain.NewValidationError("id", "invalid id format")
	}

	q, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}

	details, err := s.populate(ctx, []*domain.Question{q})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// populate resolves categories and answers of qs. The two lookups run
// concurrently.
func (s *Service) populate(ctx context.Context, qs []*domain.Question) ([]Details, error) {
	var categoryIDs, answerIDs []string
	seen := make(map[string]struct{})
	for _, q := range qs {
		if _, ok := seen[q.Category]; !ok {
			seen[q.Category] = struct{}{}
			categoryIDs = append(categoryIDs, q.Category)
		}
		answerIDs = append(answerIDs, q.Answers...)
	}

	var (
		categories []*domain.Category
		answers    []*domain.Answer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		categories, err = docstore.FindByIDs(gctx, s.categories, categoryIDs, func(c *domain.Category) string { return c.ID })
		if err != nil {
			return fmt.Errorf("populate categories: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		answers, err = docstore.FindByIDs(gctx, s.answers, answerIDs, func(a *domain.Answer) string { return a.ID })
		if err != nil {
			return fmt.Errorf("populate answers: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	categoryByID := make(map[string]*CategoryRef, len(categories))
	for _, c := range categories {
		categoryByID[c.ID] = &CategoryRef{ID: c.ID, Name: c.Name}
	}
	answerByID := make(map[string]*domain.Answer, len(answers))
	for _, a := range answers {
		answerByID[a.ID] = a
	}

	out := make([]Details, len(qs))
	for i, q := range qs {
		d := Details{
			Question: q,
			Category: categoryByID[q.Category],
			Answers:  make([]*domain.Answer, 0, len(q.Answers)),
		}
		for _, id := range q.Answers {
			if a, ok := answerByID[id]; ok {
				d.Answers = append(d.Answers, a)
			}
		}
		out[i] = d
	}
	return out, nil
}
