package category

import "github.com/priteshGolakiya/Interview-Questions/internal/domain"

// QuestionRef is the shallow form of a question in category listings.
type QuestionRef struct {
	ID    string
	Title string
}

// Summary is a category with its questions resolved to id and title.
type Summary struct {
	Category  *domain.Category
	Questions []QuestionRef
}

// Details is a category with its questions resolved to full documents.
type Details struct {
	Category  *domain.Category
	Questions []*domain.Question
}

// QuestionSet is the denormalized view of every question in a category.
type QuestionSet struct {
	Category  string
	Questions []QuestionEntry
}

// QuestionEntry is one question of a QuestionSet.
type QuestionEntry struct {
	ID          string
	Title       string
	Description string
	Difficulty  domain.Difficulty
	Answers     []AnswerEntry
}

// AnswerEntry is one answer of a QuestionEntry.
type AnswerEntry struct {
	ID      string
	Content string
	Type    domain.AnswerType
	Votes   int
}
