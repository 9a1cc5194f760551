package question

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// CreateQuestion creates a question and appends it to its category.
func (s *Service) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*domain.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	q := input.question()

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.FindByID(txCtx, q.Category); err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if err := s.questions.Insert(txCtx, q); err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
		return s.linkToCategory(txCtx, q)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question created",
		slog.String("question_id", q.ID),
		slog.String("category_id", q.Category),
	)

	return q, nil
}

// CreateQuestionWithAnswers creates a question, its answers and the
// category link in one transaction. Either everything is written or
// nothing is.
func (s *Service) CreateQuestionWithAnswers(ctx context.Context, input CreateWithAnswersInput) (*Details, error) {
	if err := input.Question.Validate(); err != nil {
		return nil, err
	}
	contents, err := domain.EncodeAnswerPayloads(input.Answers)
	if err != nil {
		return nil, err
	}

	q := input.Question.question()
	q.ID = docstore.NewID()

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.FindByID(txCtx, q.Category); err != nil {
			return fmt.Errorf("get category: %w", err)
		}

		for i, content := range contents {
			a := &domain.Answer{
				QuestionID: q.ID,
				Type:       input.Answers[i].Type,
				Content:    content,
			}
			if err := s.answers.Insert(txCtx, a); err != nil {
				return fmt.Errorf("insert answer %d: %w", i, err)
			}
			q.Answers = append(q.Answers, a.ID)
		}

		if err := s.questions.Insert(txCtx, q); err != nil {
			return fmt.Errorf("insert question: %w", err)
		}
		return s.linkToCategory(txCtx, q)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "question created with answers",
		slog.String("question_id", q.ID),
		slog.String("category_id", q.Category),
		slog.Int("answers", len(contents)),
	)

	return s.GetQuestion(ctx, q.ID)
}

func (s *Service) linkToCategory(ctx context.Context, q *domain.Question) error {
	_, err := s.categories.UpdateByID(ctx, q.Category, docstore.Update{
		Push: map[string]string{domain.CategoryFieldQuestions: q.ID},
	})
	if err != nil {
		return fmt.Errorf("link question to category: %w", err)
	}
	return nil
}
