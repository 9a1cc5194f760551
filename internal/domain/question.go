package domain

import "time"

// Question is a single interview question. Answers holds the ids of the
// answers whose QuestionID points back at this question.
type Question struct {
	ID          string     `bson:"_id" json:"_id"`
	Title       string     `bson:"title" json:"title"`
	Description string     `bson:"description" json:"description"`
	Difficulty  Difficulty `bson:"difficulty" json:"difficulty"`
	Category    string     `bson:"category" json:"category"`
	Tags        []string   `bson:"tags" json:"tags"`
	Answers     []string   `bson:"answers" json:"answers"`
	CreatedAt   time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Question document field names used in filters and updates.
const (
	QuestionFieldTitle       = "title"
	QuestionFieldDescription = "description"
	QuestionFieldDifficulty  = "difficulty"
	QuestionFieldCategory    = "category"
	QuestionFieldTags        = "tags"
	QuestionFieldAnswers     = "answers"
)

// MaxQuestionTitleLength is the longest accepted question title, in characters.
const MaxQuestionTitleLength = 200
