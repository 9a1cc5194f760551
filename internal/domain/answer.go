package domain

// Answer is one answer variant attached to a question. Content is the
// serialized form produced by EncodeAnswerContent for the answer's Type.
type Answer struct {
	ID         string     `bson:"_id" json:"_id"`
	QuestionID string     `bson:"questionId" json:"questionId"`
	Type       AnswerType `bson:"type" json:"type"`
	Content    string     `bson:"content" json:"content"`
	Votes      int        `bson:"votes" json:"votes"`
}

// Answer document field names used in filters and updates.
const (
	AnswerFieldQuestionID = "questionId"
	AnswerFieldType       = "type"
	AnswerFieldContent    = "content"
	AnswerFieldVotes      = "votes"
)
