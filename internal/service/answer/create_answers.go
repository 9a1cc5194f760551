package answer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// CreateAnswers encodes and inserts a batch of answers and appends their ids
// to the question in submission order.
func (s *Service) CreateAnswers(ctx context.Context, input CreateAnswersInput) ([]*domain.Answer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	contents, err := domain.EncodeAnswerPayloads(input.Answers)
	if err != nil {
		return nil, err
	}

	created := make([]*domain.Answer, 0, len(contents))
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		q, err := s.questions.FindByID(txCtx, input.QuestionID)
		if err != nil {
			return fmt.Errorf("get question: %w", err)
		}

		ids := append([]string{}, q.Answers...)
		for i, content := range contents {
			a := &domain.Answer{
				QuestionID: q.ID,
				Type:       input.Answers[i].Type,
				Content:    content,
			}
			if err := s.answers.Insert(txCtx, a); err != nil {
				return fmt.Errorf("insert answer %d: %w", i, err)
			}
			created = append(created, a)
			ids = append(ids, a.ID)
		}

		if len(created) == 0 {
			return nil
		}
		_, err = s.questions.UpdateByID(txCtx, q.ID, docstore.Update{
			Set: map[string]any{domain.QuestionFieldAnswers: ids},
		})
		if err != nil {
			return fmt.Errorf("link answers: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "answers created",
		slog.String("question_id", input.QuestionID),
		slog.Int("count", len(created)),
	)

	return created, nil
}
