// Package answer implements answer management. Answers are always linked
// from their question's answer list.
package answer

import (
	"context"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

type answerStore interface {
	Insert(ctx context.Context, a *domain.Answer) error
	FindByID(ctx context.Context, id string) (*domain.Answer, error)
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Answer, error)
	UpdateByID(ctx context.Context, id string, u docstore.Update) (*domain.Answer, error)
	DeleteByID(ctx context.Context, id string) (*domain.Answer, error)
}

type questionStore interface {
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Question, error)
	UpdateByID(ctx context.Context, id string, u docstore.Update) (*domain.Question, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides answer operations.
type Service struct {
	answers   answerStore
	questions questionStore
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Answer service.
func NewService(log *slog.Logger, answers answerStore, questions questionStore, tx txManager) *Service {
	return &Service{
		answers:   answers,
		questions: questions,
		tx:        tx,
		log:       log.With("service", "answer"),
	}
}
