package category

import (
	"context"
	"fmt"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// ResolveByIDOrName looks a category up by id when idOrName has the id
// format, and by exact name otherwise.
func (s *Service) ResolveByIDOrName(ctx context.Context, idOrName string) (*domain.Category, error) {
	if docstore.IsValidID(idOrName) {
		return s.getCategory(ctx, idOrName)
	}

	cat, err := s.categories.FindOne(ctx, docstore.Where(docstore.Eq(domain.CategoryFieldName, idOrName)))
	if err != nil {
		return nil, fmt.Errorf("find category %q: %w", idOrName, err)
	}
	return cat, nil
}

// GetCategoryQuestions returns every question of a category with its
// answers, reshaped into a QuestionSet.
func (s *Service) GetCategoryQuestions(ctx context.Context, idOrName string) (*QuestionSet, error) {
	cat, err := s.ResolveByIDOrName(ctx, idOrName)
	if err != nil {
		return nil, err
	}

	questions, err := s.questions.Find(ctx,
		docstore.Where(docstore.Eq(domain.QuestionFieldCategory, cat.ID)),
		docstore.FindOptions{},
	)
	if err != nil {
		return nil, fmt.Errorf("find questions: %w", err)
	}

	var answerIDs []string
	for _, q := range questions {
		answerIDs = append(answerIDs, q.Answers...)
	}

	answers, err := docstore.FindByIDs(ctx, s.answers, answerIDs, answerID)
	if err != nil {
		return nil, fmt.Errorf("populate answers: %w", err)
	}

	byID := make(map[string]*domain.Answer, len(answers))
	for _, a := range answers {
		byID[a.ID] = a
	}

	set := &QuestionSet{
		Category:  cat.Name,
		Questions: make([]QuestionEntry, len(questions)),
	}
	for i, q := range questions {
		entry := QuestionEntry{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Difficulty:  q.Difficulty,
			Answers:     make([]AnswerEntry, 0, len(q.Answers)),
		}
		for _, id := range q.Answers {
			a, ok := byID[id]
			if !ok {
				continue
			}
			entry.Answers = append(entry.Answers, AnswerEntry{
				ID:      a.ID,
				Content: a.Content,
				Type:    a.Type,
				Votes:   a.Votes,
			})
		}
		set.Questions[i] = entry
	}

	return set, nil
}
