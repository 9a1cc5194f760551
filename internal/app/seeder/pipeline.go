// Package seeder loads a YAML question bank into the store through the
// application services.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/category"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/question"
)

type categoryService interface {
	ResolveByIDOrName(ctx context.Context, idOrName string) (*domain.Category, error)
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	GetCategoryQuestions(ctx context.Context, idOrName string) (*category.QuestionSet, error)
}

type questionService interface {
	CreateQuestionWithAnswers(ctx context.Context, input question.CreateWithAnswersInput) (*question.Details, error)
}

// CategoryResult holds the outcome for one bank category.
type CategoryResult struct {
	Name     string
	Created  bool
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline seeds a bank category by category. Questions whose title already
// exists in the category are skipped, so a bank can be applied repeatedly.
type Pipeline struct {
	log        *slog.Logger
	categories categoryService
	questions  questionService
	cfg        Config
	results    []CategoryResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, categories categoryService, questions questionService, cfg Config) *Pipeline {
	return &Pipeline{
		log:        log.With("component", "seeder"),
		categories: categories,
		questions:  questions,
		cfg:        cfg,
	}
}

// Results returns per-category results after Run completes.
func (p *Pipeline) Results() []CategoryResult {
	return p.results
}

// HasErrors reports whether any category recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run seeds every category of bank. A failing category is recorded and the
// next one runs, unless StopOnError is set.
func (p *Pipeline) Run(ctx context.Context, bank *Bank) error {
	p.results = p.results[:0]

	for _, bc := range bank.Categories {
		start := time.Now()
		result := p.seedCategory(ctx, bc)
		result.Duration = time.Since(start)
		p.results = append(p.results, result)

		if result.Err != nil {
			p.log.WarnContext(ctx, "category failed",
				slog.String("category", result.Name),
				slog.String("error", result.Err.Error()),
			)
		} else {
			p.log.InfoContext(ctx, "category seeded",
				slog.String("category", result.Name),
				slog.Bool("created", result.Created),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
				slog.Bool("dry_run", p.cfg.DryRun),
			)
		}

		if p.cfg.StopOnError && (result.Err != nil || result.Errors > 0) {
			return fmt.Errorf("seed category %q: stopped on error", result.Name)
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) seedCategory(ctx context.Context, bc BankCategory) CategoryResult {
	name := strings.TrimSpace(bc.Name)
	result := CategoryResult{Name: name}

	cat, existing, created, err := p.ensureCategory(ctx, name)
	if err != nil {
		result.Err = err
		return result
	}
	result.Created = created

	for i, bq := range bc.Questions {
		if existing[bq.Title] {
			result.Skipped++
			continue
		}

		if err := p.seedQuestion(ctx, cat, bq); err != nil {
			result.Errors++
			p.log.WarnContext(ctx, "question failed",
				slog.String("category", name),
				slog.Int("index", i),
				slog.String("title", bq.Title),
				slog.String("error", err.Error()),
			)
			if p.cfg.StopOnError {
				return result
			}
			continue
		}

		existing[bq.Title] = true
		result.Inserted++
	}

	return result
}

// ensureCategory resolves name, creating the category when it is missing,
// and returns the question titles already stored in it. In dry-run mode a
// missing category is not created and the returned category is nil.
func (p *Pipeline) ensureCategory(ctx context.Context, name string) (*domain.Category, map[string]bool, bool, error) {
	titles := make(map[string]bool)

	cat, err := p.categories.ResolveByIDOrName(ctx, name)
	switch {
	case err == nil:
		set, err := p.categories.GetCategoryQuestions(ctx, cat.ID)
		if err != nil {
			return nil, nil, false, fmt.Errorf("existing questions: %w", err)
		}
		for _, q := range set.Questions {
			titles[q.Title] = true
		}
		return cat, titles, false, nil

	case errors.Is(err, domain.ErrNotFound):
		if p.cfg.DryRun {
			return nil, titles, true, nil
		}
		cat, err := p.categories.CreateCategory(ctx, category.CreateCategoryInput{Name: name})
		if err != nil {
			return nil, nil, false, fmt.Errorf("create category: %w", err)
		}
		return cat, titles, true, nil

	default:
		return nil, nil, false, fmt.Errorf("resolve category: %w", err)
	}
}

func (p *Pipeline) seedQuestion(ctx context.Context, cat *domain.Category, bq BankQuestion) error {
	payloads, err := bq.Payloads()
	if err != nil {
		return err
	}

	categoryID := ""
	if cat != nil {
		categoryID = cat.ID
	}
	input := question.CreateWithAnswersInput{
		Question: question.CreateQuestionInput{
			CategoryID:  categoryID,
			Title:       bq.Title,
			Description: bq.Description,
			Difficulty:  bq.Difficulty,
			Tags:        bq.Tags,
		},
		Answers: payloads,
	}

	if p.cfg.DryRun {
		return dryRunCheck(input)
	}

	_, err = p.questions.CreateQuestionWithAnswers(ctx, input)
	return err
}

// dryRunCheck validates input without touching the store. The category id
// is not checked because a dry run never creates categories.
func dryRunCheck(input question.CreateWithAnswersInput) error {
	q := input.Question
	if q.CategoryID == "" {
		q.CategoryID = docstore.NewID()
	}
	if err := q.Validate(); err != nil {
		return err
	}
	_, err := domain.EncodeAnswerPayloads(input.Answers)
	return err
}
