package answer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// UpdateAnswer replaces the supplied fields. Content is stored as given;
// it is not re-encoded for the answer type.
func (s *Service) UpdateAnswer(ctx context.Context, input UpdateAnswerInput) (*domain.Answer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	set := map[string]any{}
	if input.Type != nil {
		set[domain.AnswerFieldType] = *input.Type
	}
	if input.Content != nil {
		set[domain.AnswerFieldContent] = *input.Content
	}
	if input.Votes != nil {
		set[domain.AnswerFieldVotes] = *input.Votes
	}

	if len(set) == 0 {
		a, err := s.answers.FindByID(ctx, input.ID)
		if err != nil {
			return nil, fmt.Errorf("get answer: %w", err)
		}
		return a, nil
	}

	updated, err := s.answers.UpdateByID(ctx, input.ID, docstore.Update{Set: set})
	if err != nil {
		return nil, fmt.Errorf("update answer: %w", err)
	}

	s.log.InfoContext(ctx, "answer updated",
		slog.String("answer_id", updated.ID),
		slog.String("type", updated.Type.String()),
	)

	return updated, nil
}

// DeleteAnswer removes an answer and its id from the owning question.
func (s *Service) DeleteAnswer(ctx context.Context, id string) error {
	if !docstore.IsValidID(id) {
		return domain.NewValidationError("id", "invalid id format")
	}

	var deleted *domain.Answer
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.answers.DeleteByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}

		_, err = s.questions.UpdateByID(txCtx, deleted.QuestionID, docstore.Update{
			Pull: map[string]string{domain.QuestionFieldAnswers: id},
		})
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unlink answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "answer deleted",
		slog.String("answer_id", id),
		slog.String("question_id", deleted.QuestionID),
	)

	return nil
}
