package category

import (
	"strings"
	"unicode/utf8"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
type CreateCategoryInput struct {
	Name string
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	if errs := validateName(i.Name); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateCategoryInput holds the parameters for updating a category.
// A nil Name leaves the category unchanged.
type UpdateCategoryInput struct {
	ID   string
	Name *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	var errs []domain.FieldError

	if !docstore.IsValidID(i.ID) {
		errs = append(errs, domain.FieldError{Field: "id", Message: "invalid id format"})
	}
	if i.Name != nil {
		errs = append(errs, validateName(*i.Name)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateName(raw string) []domain.FieldError {
	name := strings.TrimSpace(raw)
	if name == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return nil
}
