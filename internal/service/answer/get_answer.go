package answer

import (
	"context"
	"fmt"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// Details is an answer with its question populated. Question is nil when
// the question no longer exists.
type Details struct {
	Answer   *domain.Answer
	Question *domain.Question
}

// ListAnswers returns every answer with its question populated.
func (s *Service) ListAnswers(ctx context.Context) ([]Details, error) {
	answers, err := s.answers.Find(ctx, docstore.Filter{}, docstore.FindOptions{})
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	return s.populate(ctx, answers)
}

// GetAnswer returns an answer with its question populated.
func (s *Service) GetAnswer(ctx context.Context, id string) (*Details, error) {
	if !docstore.IsValidID(id) {
		return nil, domain.NewValidationError("id", "invalid id format")
	}

	a, err := s.answers.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get answer: %w", err)
	}

	details, err := s.populate(ctx, []*domain.Answer{a})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *Service) populate(ctx context.Context, answers []*domain.Answer) ([]Details, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, a := range answers {
		if _, ok := seen[a.QuestionID]; !ok {
			seen[a.QuestionID] = struct{}{}
			ids = append(ids, a.QuestionID)
		}
	}

	questions, err := docstore.FindByIDs(ctx, s.questions, ids, func(q *domain.Question) string { return q.ID })
	if err != nil {
		return nil, fmt.Errorf("populate questions: %w", err)
	}
	byID := make(map[string]*domain.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	out := make([]Details, len(answers))
	for i, a := range answers {
		out[i] = Details{Answer: a, Question: byID[a.QuestionID]}
	}
	return out, nil
}
