package domain

import "time"

// Category groups interview questions. Questions holds the ids of the
// questions whose Category field points back at this category.
type Category struct {
	ID        string    `bson:"_id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Questions []string  `bson:"questions" json:"questions"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// Category document field names used in filters and updates.
const (
	CategoryFieldName      = "name"
	CategoryFieldQuestions = "questions"
)
