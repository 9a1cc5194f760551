package question

import "github.com/priteshGolakiya/Interview-Questions/internal/domain"

// CategoryRef is the populated form of a question's category.
type CategoryRef struct {
	ID   string
	Name string
}

// Details is a question with its category and answers populated.
// Category is nil when the category no longer exists.
type Details struct {
	Question *domain.Question
	Category *CategoryRef
	Answers  []*domain.Answer
}

// Page is one page of ListQuestions.
type Page struct {
	Questions      []Details
	CurrentPage    int
	TotalPages     int
	TotalQuestions int64
}
