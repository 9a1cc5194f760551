package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/answer"
)

type answerService interface {
	CreateAnswers(ctx context.Context, input answer.CreateAnswersInput) ([]*domain.Answer, error)
	ListAnswers(ctx context.Context) ([]answer.Details, error)
	GetAnswer(ctx context.Context, id string) (*answer.Details, error)
	UpdateAnswer(ctx context.Context, input answer.UpdateAnswerInput) (*domain.Answer, error)
	DeleteAnswer(ctx context.Context, id string) error
}

// AnswerHandler serves the /answers endpoints.
type AnswerHandler struct {
	svc answerService
	log *slog.Logger
}

// NewAnswerHandler creates an AnswerHandler.
func NewAnswerHandler(svc answerService, logger *slog.Logger) *AnswerHandler {
	return &AnswerHandler{svc: svc, log: logger.With("handler", "answer")}
}

type createAnswersRequest struct {
	QuestionID string          `json:"questionId"`
	Answers    json.RawMessage `json:"answers"`
}

type updateAnswerRequest struct {
	Type    *domain.AnswerType `json:"type"`
	Content *string            `json:"content"`
	Votes   *int               `json:"votes"`
}

// Create handles POST /answers.
func (h *AnswerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAnswersRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	payloads, err := domain.ParseAnswerPayloads(req.Answers)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	created, err := h.svc.CreateAnswers(r.Context(), answer.CreateAnswersInput{
		QuestionID: req.QuestionID,
		Answers:    payloads,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toAnswerResponses(created))
}

// List handles GET /answers.
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	details, err := h.svc.ListAnswers(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]answerDetailsResponse, len(details))
	for i := range details {
		out[i] = toAnswerDetailsResponse(&details[i])
	}
	writeData(w, http.StatusOK, out)
}

// Get handles GET /answers/{id}.
func (h *AnswerHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetAnswer(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toAnswerDetailsResponse(d))
}

// Update handles PUT /answers/{id}.
func (h *AnswerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.UpdateAnswer(r.Context(), answer.UpdateAnswerInput{
		ID:      r.PathValue("id"),
		Type:    req.Type,
		Content: req.Content,
		Votes:   req.Votes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toAnswerResponse(a))
}

// Delete handles DELETE /answers/{id}.
func (h *AnswerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAnswer(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, messageResponse{Message: "answer deleted"})
}
