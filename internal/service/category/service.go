// Package category implements category management and the per-category
// question aggregation.
package category

import (
	"context"
	"log/slog"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

type categoryStore interface {
	Insert(ctx context.Context, c *domain.Category) error
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	FindOne(ctx context.Context, f docstore.Filter) (*domain.Category, error)
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Category, error)
	UpdateByID(ctx context.Context, id string, u docstore.Update) (*domain.Category, error)
	DeleteByID(ctx context.Context, id string) (*domain.Category, error)
}

type questionStore interface {
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Question, error)
}

type answerStore interface {
	Find(ctx context.Context, f docstore.Filter, opts docstore.FindOptions) ([]*domain.Answer, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const MaxNameLength = 100

// Service provides category operations.
type Service struct {
	categories categoryStore
	questions  questionStore
	answers    answerStore
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new Category service.
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
		log:        log.With("service", "category"),
	}
}

func questionID(q *domain.Question) string { return q.ID }
func answerID(a *domain.Answer) string     { return a.ID }

// validateID returns a ValidationError when id is not a document id.
func validateID(field, id string) error {
	if !docstore.IsValidID(id) {
		return domain.NewValidationError(field, "invalid id format")
	}
	return nil
}
