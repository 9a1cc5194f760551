package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/question"
)

type questionService interface {
	CreateQuestion(ctx context.Context, input question.CreateQuestionInput) (*domain.Question, error)
	CreateQuestionWithAnswers(ctx context.Context, input question.CreateWithAnswersInput) (*question.Details, error)
	ListQuestions(ctx context.Context, input question.ListQuestionsInput) (*question.Page, error)
	GetQuestion(ctx context.Context, id string) (*question.Details, error)
	UpdateQuestion(ctx context.Context, input question.UpdateQuestionInput) (*domain.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// QuestionHandler serves the /questions endpoints.
type QuestionHandler struct {
	svc questionService
	log *slog.Logger
}

// NewQuestionHandler creates a QuestionHandler.
func NewQuestionHandler(svc questionService, logger *slog.Logger) *QuestionHandler {
	return &QuestionHandler{svc: svc, log: logger.With("handler", "question")}
}

type createQuestionRequest struct {
	CategoryID  string            `json:"categoryId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Difficulty  domain.Difficulty `json:"difficulty"`
	Tags        []string          `json:"tags"`
	Answers     json.RawMessage   `json:"answers"`
}

func (req createQuestionRequest) input() question.CreateQuestionInput {
	return question.CreateQuestionInput{
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
	}
}

type updateQuestionRequest struct {
	CategoryID  *string            `json:"categoryId"`
	Title       *string            `json:"title"`
	Description *string            `json:"description"`
	Difficulty  *domain.Difficulty `json:"difficulty"`
	Tags        *[]string          `json:"tags"`
}

// Create handles POST /questions.
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.CreateQuestion(r.Context(), req.input())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toQuestionResponse(q))
}

// CreateWithAnswers handles POST /questions/questions.
func (h *QuestionHandler) CreateWithAnswers(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	answers, err := domain.ParseAnswerPayloads(req.Answers)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	d, err := h.svc.CreateQuestionWithAnswers(r.Context(), question.CreateWithAnswersInput{
		Question: req.input(),
		Answers:  answers,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toQuestionDetailsResponse(d))
}

// List handles GET /questions?category=&search=&page=&limit=.
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := queryInt(r, "page")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q := r.URL.Query()
	result, err := h.svc.ListQuestions(r.Context(), question.ListQuestionsInput{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toQuestionPageResponse(result))
}

// Get handles GET /questions/{id}.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetQuestion(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toQuestionDetailsResponse(d))
}

// Update handles PUT /questions/{id}.
func (h *QuestionHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateQuestionRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	q, err := h.svc.UpdateQuestion(r.Context(), question.UpdateQuestionInput{
		ID:          r.PathValue("id"),
		CategoryID:  req.CategoryID,
		Title:       req.Title,
		Description: req.Description,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toQuestionResponse(q))
}

// Delete handles DELETE /questions/{id}.
func (h *QuestionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteQuestion(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, messageResponse{Message: "question deleted"})
}
