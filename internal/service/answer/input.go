package answer

import (
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// CreateAnswersInput holds a batch of answers for one question.
type CreateAnswersInput struct {
	QuestionID string
	Answers    []domain.AnswerPayload
}

// Validate checks the question id.
func (i CreateAnswersInput) Validate() error {
	if !docstore.IsValidID(i.QuestionID) {
		return domain.NewValidationError("questionId", "invalid id format")
	}
	return nil
}

// UpdateAnswerInput holds the parameters for updating an answer. Nil
// fields are left unchanged. Content replaces the stored form as given.
type UpdateAnswerInput struct {
	ID      string
	Type    *domain.AnswerType
	Content *string
	Votes   *int
}

// Validate checks all fields and collects all errors.
func (i UpdateAnswerInput) Validate() error {
	var errs []domain.FieldError

	if !docstore.IsValidID(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid id format"})
	}
	if i.Type != nil && *i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if i.Votes != nil && *i.Votes < 0 {
		errs = append(errs, domain.FieldError{Field: "votes", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
