package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/priteshGolakiya/Interview-Questions/internal/adapter/postgres"
	"github.com/priteshGolakiya/Interview-Questions/internal/adapter/postgres/testhelper"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

func TestCollection_InsertFindUpdateDelete(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	questions := postgres.NewCollection[domain.Question](pool, docstore.CollectionOptions{Name: "questions", Timestamps: true})

	categoryID := docstore.NewID()
	marker := testhelper.UniqueSuffix()

	q := &domain.Question{
		Title:       "What is a goroutine " + marker,
		Description: "Explain",
		Difficulty:  domain.DifficultyEasy,
		Category:    categoryID,
		Tags:        []string{"Go", "concurrency-" + marker},
		Answers:     []string{},
	}
	if err := questions.Insert(ctx, q); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if !docstore.IsValidID(q.ID) || q.CreatedAt.IsZero() {
		t.Fatalf("Insert did not assign id/timestamps: %+v", q)
	}

	got, err := questions.FindByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Title != q.Title || got.Difficulty != domain.DifficultyEasy {
		t.Errorf("FindByID = %+v", got)
	}

	found, err := questions.Find(ctx, docstore.Filter{
		All: []docstore.Cond{docstore.Eq(domain.QuestionFieldCategory, categoryID)},
		Any: []docstore.Cond{docstore.ContainsFold(domain.QuestionFieldTags, "CONCURRENCY-"+marker)},
	}, docstore.FindOptions{})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(found) != 1 || found[0].ID != q.ID {
		t.Errorf("Find = %+v", found)
	}

	n, err := questions.Count(ctx, docstore.Where(docstore.Eq(domain.QuestionFieldTags, "concurrency-"+marker)))
	if err != nil || n != 1 {
		t.Errorf("Count = %d, %v", n, err)
	}

	answerID := docstore.NewID()
	updated, err := questions.UpdateByID(ctx, q.ID, docstore.Update{
		Set:  map[string]any{domain.QuestionFieldTitle: "Updated " + marker},
		Push: map[string]string{domain.QuestionFieldAnswers: answerID},
	})
	if err != nil {
		t.Fatalf("UpdateByID: %v", err)
	}
	if updated.Title != "Updated "+marker || len(updated.Answers) != 1 || updated.Answers[0] != answerID {
		t.Errorf("updated = %+v", updated)
	}
	if !updated.UpdatedAt.After(q.UpdatedAt) && !updated.UpdatedAt.Equal(q.UpdatedAt) {
		t.Errorf("UpdatedAt moved backwards: %v -> %v", q.UpdatedAt, updated.UpdatedAt)
	}

	pulled, err := questions.UpdateByID(ctx, q.ID, docstore.Update{Pull: map[string]string{domain.QuestionFieldAnswers: answerID}})
	if err != nil {
		t.Fatalf("UpdateByID pull: %v", err)
	}
	if len(pulled.Answers) != 0 {
		t.Errorf("Answers after pull = %v", pulled.Answers)
	}

	deleted, err := questions.DeleteByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if deleted.ID != q.ID {
		t.Errorf("deleted = %+v", deleted)
	}

	if _, err := questions.FindByID(ctx, q.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("FindByID after delete: expected ErrNotFound, got %v", err)
	}
}

func TestCollection_FindOrderAndPaging(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	answers := postgres.NewCollection[domain.Answer](pool, docstore.CollectionOptions{Name: "answers"})

	questionID := docstore.NewID()
	var ids []string
	for i := range 4 {
		a := &domain.Answer{QuestionID: questionID, Type: domain.AnswerTypeParagraph, Content: "text", Votes: i}
		if err := answers.Insert(ctx, a); err != nil {
			t.Fatalf("Insert: %v", err)
		}
		ids = append(ids, a.ID)
	}

	page, err := answers.Find(ctx, docstore.Where(docstore.Eq(domain.AnswerFieldQuestionID, questionID)), docstore.FindOptions{Skip: 1, Limit: 2})
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if len(page) != 2 || page[0].ID != ids[1] || page[1].ID != ids[2] {
		t.Errorf("page = %+v", page)
	}

	byIDs, err := answers.Find(ctx, docstore.Where(docstore.In(docstore.FieldID, ids[3], ids[0])), docstore.FindOptions{})
	if err != nil {
		t.Fatalf("Find by ids: %v", err)
	}
	if len(byIDs) != 2 || byIDs[0].ID != ids[0] || byIDs[1].ID != ids[3] {
		t.Errorf("byIDs = %+v", byIDs)
	}

	first, err := answers.FindOne(ctx, docstore.Where(docstore.Eq(domain.AnswerFieldQuestionID, questionID)))
	if err != nil || first.ID != ids[0] {
		t.Errorf("FindOne = %+v, %v", first, err)
	}
}

func TestCollection_DuplicateID(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	categories := postgres.NewCollection[domain.Category](pool, docstore.CollectionOptions{Name: "categories", Timestamps: true})

	seeded := testhelper.SeedCategory(t, pool)
	err := categories.Insert(ctx, &domain.Category{ID: seeded.ID, Name: "dup"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestCollection_TransactionRollback(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	tm := postgres.NewTxManager(pool)
	ctx := context.Background()
	categories := postgres.NewCollection[domain.Category](pool, docstore.CollectionOptions{Name: "categories", Timestamps: true})

	seeded := testhelper.SeedCategory(t, pool)
	sentinel := errors.New("abort")

	err := tm.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := categories.UpdateByID(ctx, seeded.ID, docstore.Update{Push: map[string]string{domain.CategoryFieldQuestions: docstore.NewID()}}); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel, got %v", err)
	}

	got, err := categories.FindByID(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if len(got.Questions) != 0 {
		t.Errorf("Questions = %v, want empty after rollback", got.Questions)
	}
}

func TestCollection_DuplicateCategoryName(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	ctx := context.Background()
	categories := postgres.NewCollection[domain.Category](pool, docstore.Categories)

	seeded := testhelper.SeedCategory(t, pool)

	err := categories.Insert(ctx, &domain.Category{Name: seeded.Name, Questions: []string{}})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("insert: expected ErrAlreadyExists, got %v", err)
	}

	other := &domain.Category{Name: "Other " + testhelper.UniqueSuffix(), Questions: []string{}}
	if err := categories.Insert(ctx, other); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	_, err = categories.UpdateByID(ctx, other.ID, docstore.Update{Set: map[string]any{domain.CategoryFieldName: seeded.Name}})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("rename: expected ErrAlreadyExists, got %v", err)
	}
}
