package seeder

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore/docstoretest"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/category"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/question"
)

type env struct {
	fx         *docstoretest.Fixture
	categories *category.Service
	questions  *question.Service
}

func newEnv() *env {
	log := slog.New(slog.DiscardHandler)
	fx := docstoretest.NewFixture()
	return &env{
		fx:         fx,
		categories: category.NewService(log, fx.Categories, fx.Questions, fx.Answers, fx.Store),
		questions:  question.NewService(log, fx.Categories, fx.Questions, fx.Answers, fx.Store),
	}
}

func (e *env) pipeline(cfg Config) *Pipeline {
	return NewPipeline(slog.New(slog.DiscardHandler), e.categories, e.questions, cfg)
}

func mustBank(t *testing.T, src string) *Bank {
	t.Helper()
	b, err := ReadBank(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ReadBank: %v", err)
	}
	return b
}

func TestPipeline_SeedsBank(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv()

	p := e.pipeline(Config{})
	if err := p.Run(ctx, mustBank(t, sampleBank)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %+v", p.Results())
	}

	results := p.Results()
	if len(results) != 2 || !results[0].Created || results[0].Inserted != 1 {
		t.Fatalf("results = %+v", results)
	}

	set, err := e.categories.GetCategoryQuestions(ctx, "Algorithms")
	if err != nil {
		t.Fatalf("GetCategoryQuestions: %v", err)
	}
	if len(set.Questions) != 1 || len(set.Questions[0].Answers) != 3 {
		t.Fatalf("aggregation = %+v", set)
	}
	if got := set.Questions[0].Answers[0].Content; got != "Use a hash map." {
		t.Errorf("first answer = %q", got)
	}
}

func TestPipeline_RerunSkipsExisting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv()
	bank := mustBank(t, sampleBank)

	if err := e.pipeline(Config{}).Run(ctx, bank); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	writes := e.fx.Questions.Writes()

	p := e.pipeline(Config{})
	if err := p.Run(ctx, bank); err != nil {
		t.Fatalf("second Run: %v", err)
	}

	for _, r := range p.Results() {
		if r.Created || r.Inserted != 0 || r.Skipped != 1 {
			t.Errorf("rerun result = %+v, want one skipped", r)
		}
	}
	if e.fx.Questions.Writes() != writes {
		t.Error("rerun should not write questions")
	}
}

func TestPipeline_DryRunNoWrites(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv()

	p := e.pipeline(Config{DryRun: true})
	if err := p.Run(ctx, mustBank(t, sampleBank)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if p.HasErrors() {
		t.Fatalf("unexpected errors: %+v", p.Results())
	}
	if p.Results()[0].Inserted != 1 {
		t.Errorf("dry run should count valid questions: %+v", p.Results()[0])
	}
	if n := e.fx.Categories.Writes() + e.fx.Questions.Writes() + e.fx.Answers.Writes(); n != 0 {
		t.Errorf("dry run wrote %d documents", n)
	}
}

func TestPipeline_DryRunReportsInvalid(t *testing.T) {
	t.Parallel()
	e := newEnv()

	bank := mustBank(t, `
categories:
  - name: Go
    questions:
      - title: Channels
        description: d
        difficulty: Impossible
`)
	p := e.pipeline(Config{DryRun: true})
	if err := p.Run(context.Background(), bank); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !p.HasErrors() || p.Results()[0].Errors != 1 {
		t.Errorf("results = %+v, want one error", p.Results())
	}
}

const badBank = `
categories:
  - name: Go
    questions:
      - title: Broken
        description: d
        difficulty: Easy
        answers:
          - type: paragraph
            content: {body: missing text}
      - title: Fine
        description: d
        difficulty: Easy
  - name: SQL
    questions:
      - title: Joins
        description: d
        difficulty: Hard
`

func TestPipeline_ErrorIsolation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv()

	p := e.pipeline(Config{})
	if err := p.Run(ctx, mustBank(t, badBank)); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !p.HasErrors() {
		t.Fatal("expected errors")
	}

	got := p.Results()
	if got[0].Errors != 1 || got[0].Inserted != 1 || got[1].Inserted != 1 {
		t.Errorf("results = %+v", got)
	}
	if n, _ := e.fx.Answers.Count(ctx, docstore.Filter{}); n != 0 {
		t.Errorf("failed question left %d answers", n)
	}
}

func TestPipeline_StopOnError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	e := newEnv()

	p := e.pipeline(Config{StopOnError: true})
	err := p.Run(ctx, mustBank(t, badBank))
	if err == nil {
		t.Fatal("expected error")
	}
	if len(p.Results()) != 1 || p.Results()[0].Inserted != 0 {
		t.Errorf("results = %+v, want a single stopped category", p.Results())
	}
	if _, err := e.categories.ResolveByIDOrName(ctx, "SQL"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("SQL should not be seeded, err = %v", err)
	}
}
