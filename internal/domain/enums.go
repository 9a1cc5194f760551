package domain

// Difficulty is the difficulty level of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// AnswerType tags the shape of an answer's content. The set is open:
// unknown tags are stored as-is and serialized like structured content.
type AnswerType string

const (
	AnswerTypeParagraph AnswerType = "paragraph"
	AnswerTypeTable     AnswerType = "table"
	AnswerTypeCode      AnswerType = "code"
)

func (t AnswerType) String() string { return string(t) }

// IsKnown reports whether t is one of the built-in answer types.
func (t AnswerType) IsKnown() bool {
	switch t {
	case AnswerTypeParagraph, AnswerTypeTable, AnswerTypeCode:
		return true
	}
	return false
}
