package question

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// ListQuestions returns one page of questions matching input, populated.
func (s *Service) ListQuestions(ctx context.Context, input ListQuestionsInput) (*Page, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	input = input.normalize()

	filter, err := s.buildFilter(ctx, input)
	if err != nil {
		return nil, err
	}

	var (
		total     int64
		questions []*domain.Question
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = s.questions.Count(gctx, filter)
		if err != nil {
			return fmt.Errorf("count questions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		skip, ok := pageOffset(input.Page, input.Limit)
		if !ok {
			return nil
		}
		var err error
		questions, err = s.questions.Find(gctx, filter, docstore.FindOptions{
			Skip:  skip,
			Limit: int64(input.Limit),
		})
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	details, err := s.populate(ctx, questions)
	if err != nil {
		return nil, err
	}

	return &Page{
		Questions:      details,
		CurrentPage:    input.Page,
		TotalPages:     totalPages(total, input.Limit),
		TotalQuestions: total,
	}, nil
}

func (s *Service) buildFilter(ctx context.Context, input ListQuestionsInput) (docstore.Filter, error) {
	var f docstore.Filter

	if input.Category != "" {
		cat, err := s.categories.FindOne(ctx, docstore.Where(docstore.ContainsFold(domain.CategoryFieldName, input.Category)))
		if err != nil {
			return f, fmt.Errorf("category %q: %w", input.Category, err)
		}
		f.All = append(f.All, docstore.Eq(domain.QuestionFieldCategory, cat.ID))
	}

	if input.Search != "" {
		f.Any = []docstore.Cond{
			docstore.ContainsFold(domain.QuestionFieldTitle, input.Search),
			docstore.ContainsFold(domain.QuestionFieldDescription, input.Search),
			docstore.ContainsFold(domain.QuestionFieldTags, input.Search),
		}
	}

	return f, nil
}

// pageOffset returns how many documents precede page. ok is false when the
// offset does not fit in an int64; such a page is past any collection.
func pageOffset(page, limit int) (skip int64, ok bool) {
	prev, l := int64(page-1), int64(limit)
	if prev > math.MaxInt64/l {
		return 0, false
	}
	return prev * l, true
}

func totalPages(total int64, limit int) int {
	l := int64(limit)
	return int((total + l - 1) / l)
}
