package question

import (
	"strings"
	"unicode/utf8"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// CreateQuestionInput holds the parameters for creating a question.
type CreateQuestionInput struct {
	CategoryID  string
	Title       string
	Description string
	Difficulty  domain.Difficulty
	Tags        []string
}

// Validate checks all fields and collects all errors.
func (i CreateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if !docstore.IsValidID(i.CategoryID) {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "invalid id format"})
	}
	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateDescription(i.Description)...)
	errs = append(errs, validateDifficulty(i.Difficulty)...)
	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i CreateQuestionInput) question() *domain.Question {
	return &domain.Question{
		Title:       strings.TrimSpace(i.Title),
		Description: strings.TrimSpace(i.Description),
		Difficulty:  i.Difficulty,
		Category:    i.CategoryID,
		Tags:        normalizeTags(i.Tags),
		Answers:     []string{},
	}
}

// CreateWithAnswersInput holds a question and the answers created with it.
type CreateWithAnswersInput struct {
	Question CreateQuestionInput
	Answers  []domain.AnswerPayload
}

// UpdateQuestionInput holds the parameters for updating a question.
// Nil fields are left unchanged.
type UpdateQuestionInput struct {
	ID          string
	CategoryID  *string
	Title       *string
	Description *string
	Difficulty  *domain.Difficulty
	Tags        *[]string
}

// Validate checks the supplied fields and collects all errors.
func (i UpdateQuestionInput) Validate() error {
	var errs []domain.FieldError

	if !docstore.IsValidID(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid id format"})
	}
	if i.CategoryID != nil && !docstore.IsValidID(*i.CategoryID) {
		errs = append(errs, domain.FieldError{Field: "categoryId", Message: "invalid id format"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Description != nil {
		errs = append(errs, validateDescription(*i.Description)...)
	}
	if i.Difficulty != nil {
		errs = append(errs, validateDifficulty(*i.Difficulty)...)
	}
	if i.Tags != nil {
		errs = append(errs, validateTags(*i.Tags)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListQuestionsInput filters and paginates questions. Category is matched
// against category names case-insensitively; Search is matched against the
// title, the description and the tags. A zero Page or Limit takes the
// default.
type ListQuestionsInput struct {
	Category string
	Search   string
	Page     int
	Limit    int
}

// Validate checks all fields and collects all errors.
func (i ListQuestionsInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 0 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be a positive integer"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be a positive integer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// normalize applies the paging defaults and caps.
func (i ListQuestionsInput) normalize() ListQuestionsInput {
	if i.Page == 0 {
		i.Page = 1
	}
	if i.Limit == 0 {
		i.Limit = DefaultPageSize
	}
	if i.Limit > MaxPageSize {
		i.Limit = MaxPageSize
	}
	i.Category = strings.TrimSpace(i.Category)
	i.Search = strings.TrimSpace(i.Search)
	return i
}

func validateTitle(raw string) []domain.FieldError {
	title := strings.TrimSpace(raw)
	if title == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if utf8.RuneCountInString(title) > domain.MaxQuestionTitleLength {
		return []domain.FieldError{{Field: "title", Message: "max 200 characters"}}
	}
	return nil
}

func validateDescription(raw string) []domain.FieldError {
	if strings.TrimSpace(raw) == "" {
		return []domain.FieldError{{Field: "description", Message: "required"}}
	}
	return nil
}

func validateDifficulty(d domain.Difficulty) []domain.FieldError {
	if d == "" {
		return []domain.FieldError{{Field: "difficulty", Message: "required"}}
	}
	if !d.IsValid() {
		return []domain.FieldError{{Field: "difficulty", Message: "must be one of Easy, Medium, Hard"}}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	for _, t := range tags {
		if strings.TrimSpace(t) == "" {
			return []domain.FieldError{{Field: "tags", Message: "must not contain empty values"}}
		}
	}
	return nil
}

// normalizeTags trims tags and drops repeats, keeping first-seen order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
