package rest

import (
	"time"

	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/answer"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/category"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/question"
)

// ---------------------------------------------------------------------------
// Categories
// ---------------------------------------------------------------------------

type categoryFields struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type categoryResponse struct {
	categoryFields
	Questions []string `json:"questions"`
}

type categorySummaryResponse struct {
	categoryFields
	Questions []questionRefResponse `json:"questions"`
}

type categoryDetailsResponse struct {
	categoryFields
	Questions []questionResponse `json:"questions"`
}

type questionRefResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type categoryQuestionsResponse struct {
	Category  string                     `json:"category"`
	Questions []categoryQuestionResponse `json:"questions"`
}

type categoryQuestionResponse struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description"`
	Difficulty  domain.Difficulty        `json:"difficulty"`
	Answers     []categoryAnswerResponse `json:"answers"`
}

type categoryAnswerResponse struct {
	ID      string            `json:"id"`
	Content string            `json:"content"`
	Type    domain.AnswerType `json:"type"`
	Votes   int               `json:"votes"`
}

func toCategoryFields(c *domain.Category) categoryFields {
	return categoryFields{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{categoryFields: toCategoryFields(c), Questions: orEmpty(c.Questions)}
}

func toCategorySummaryResponse(s category.Summary) categorySummaryResponse {
	refs := make([]questionRefResponse, len(s.Questions))
	for i, q := range s.Questions {
		refs[i] = questionRefResponse{ID: q.ID, Title: q.Title}
	}
	return categorySummaryResponse{categoryFields: toCategoryFields(s.Category), Questions: refs}
}

func toCategoryDetailsResponse(d *category.Details) categoryDetailsResponse {
	qs := make([]questionResponse, len(d.Questions))
	for i, q := range d.Questions {
		qs[i] = toQuestionResponse(q)
	}
	return categoryDetailsResponse{categoryFields: toCategoryFields(d.Category), Questions: qs}
}

func toCategoryQuestionsResponse(set *category.QuestionSet) categoryQuestionsResponse {
	out := categoryQuestionsResponse{
		Category:  set.Category,
		Questions: make([]categoryQuestionResponse, len(set.Questions)),
	}
	for i, q := range set.Questions {
		answers := make([]categoryAnswerResponse, len(q.Answers))
		for j, a := range q.Answers {
			answers[j] = categoryAnswerResponse{ID: a.ID, Content: a.Content, Type: a.Type, Votes: a.Votes}
		}
		out.Questions[i] = categoryQuestionResponse{
			ID:          q.ID,
			Title:       q.Title,
			Description: q.Description,
			Difficulty:  q.Difficulty,
			Answers:     answers,
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Questions
// ---------------------------------------------------------------------------

type questionResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	Category    string            `json:"category"`
	Tags        []string          `json:"tags"`
	Answers     []string          `json:"answers"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type categoryRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type questionDetailsResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Difficulty  domain.Difficulty    `json:"difficulty"`
	Category    *categoryRefResponse `json:"category"`
	Tags        []string             `json:"tags"`
	Answers     []answerResponse     `json:"answers"`
	CreatedAt   time.Time            `json:"createdAt"`
	UpdatedAt   time.Time            `json:"updatedAt"`
}

type questionPageResponse struct {
	Questions      []questionDetailsResponse `json:"questions"`
	CurrentPage    int                       `json:"currentPage"`
	TotalPages     int                       `json:"totalPages"`
	TotalQuestions int64                     `json:"totalQuestions"`
}

func toQuestionResponse(q *domain.Question) questionResponse {
	return questionResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Difficulty:  q.Difficulty,
		Category:    q.Category,
		Tags:        orEmpty(q.Tags),
		Answers:     orEmpty(q.Answers),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

func toQuestionDetailsResponse(d *question.Details) questionDetailsResponse {
	q := d.Question
	out := questionDetailsResponse{
		ID:          q.ID,
		Title:       q.Title,
		Description: q.Description,
		Difficulty:  q.Difficulty,
		Tags:        orEmpty(q.Tags),
		Answers:     make([]answerResponse, len(d.Answers)),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
	if d.Category != nil {
		out.Category = &categoryRefResponse{ID: d.Category.ID, Name: d.Category.Name}
	}
	for i, a := range d.Answers {
		out.Answers[i] = toAnswerResponse(a)
	}
	return out
}

func toQuestionPageResponse(p *question.Page) questionPageResponse {
	out := questionPageResponse{
		Questions:      make([]questionDetailsResponse, len(p.Questions)),
		CurrentPage:    p.CurrentPage,
		TotalPages:     p.TotalPages,
		TotalQuestions: p.TotalQuestions,
	}
	for i := range p.Questions {
		out.Questions[i] = toQuestionDetailsResponse(&p.Questions[i])
	}
	return out
}

// ---------------------------------------------------------------------------
// Answers
// ---------------------------------------------------------------------------

type answerResponse struct {
	ID         string            `json:"id"`
	QuestionID string            `json:"questionId"`
	Type       domain.AnswerType `json:"type"`
	Content    string            `json:"content"`
	Votes      int               `json:"votes"`
}

type answerDetailsResponse struct {
	answerResponse
	Question *questionResponse `json:"question"`
}

func toAnswerResponse(a *domain.Answer) answerResponse {
	return answerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Type:       a.Type,
		Content:    a.Content,
		Votes:      a.Votes,
	}
}

func toAnswerResponses(as []*domain.Answer) []answerResponse {
	out := make([]answerResponse, len(as))
	for i, a := range as {
		out[i] = toAnswerResponse(a)
	}
	return out
}

func toAnswerDetailsResponse(d *answer.Details) answerDetailsResponse {
	out := answerDetailsResponse{answerResponse: toAnswerResponse(d.Answer)}
	if d.Question != nil {
		q := toQuestionResponse(d.Question)
		out.Question = &q
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
