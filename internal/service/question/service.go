// Package question implements question management, paginated search and
// the atomic creation of a question together with its answers.
package question

import (
	"context"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

type categoryStore interface {
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindOne(ctx context.Context, f docstore.Filter) (*domain.Category, error)
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Category, error)
	UpdateByID(ctx context.Context, id string, u docstore.Update) (*domain.Category, error)
}

type questionStore interface {
	Insert(ctx context.Context, q *domain.Question) error
	FindByID(ctx context.Context, id string) (*domain.Question, error)
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Question, error)
	Count(ctx context.Context, f docstore.Filter) (int64, error)
	UpdateByID(ctx context.Context, id string, u docstore.Update) (*domain.Question, error)
	DeleteByID(ctx context.Context, id string) (*domain.Question, error)
}

type answerStore interface {
	Insert(ctx context.Context, a *domain.Answer) error
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Answer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides question operations.
type Service struct {
	categories categoryStore
	questions  questionStore
	answers    answerStore
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Question service.
func NewService(
	log *slog.Logger,
	categories categoryStore,
	questions questionStore,
	answers answerStore,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		questions:  questions,
		answers:    answers,
		tx:         tx,
		log:        log.With("service", "question"),
	}
}
