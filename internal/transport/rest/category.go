package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/priteshGolakiya/Interview-Questions/internal/domain"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/category"
)

type categoryService interface {
	CreateCategory(ctx context.Context, input category.CreateCategoryInput) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]category.Summary, error)
	GetCategory(ctx context.Context, id string) (*category.Details, error)
	UpdateCategory(ctx context.Context, input category.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	GetCategoryQuestions(ctx context.Context, idOrName string) (*category.QuestionSet, error)
}

// CategoryHandler serves the /categories endpoints.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

type updateCategoryRequest struct {
	Name *string `json:"name"`
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateCategory(r.Context(), category.CreateCategoryInput{Name: req.Name})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toCategoryResponse(c))
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListCategories(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]categorySummaryResponse, len(summaries))
	for i, s := range summaries {
		out[i] = toCategorySummaryResponse(s)
	}
	writeData(w, http.StatusOK, out)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	d, err := h.svc.GetCategory(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toCategoryDetailsResponse(d))
}

// Update handles PUT /categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateCategory(r.Context(), category.UpdateCategoryInput{
		ID:   r.PathValue("id"),
		Name: req.Name,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toCategoryResponse(c))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, messageResponse{Message: "category deleted"})
}

// Questions handles GET /categories/{idOrName}/questions.
func (h *CategoryHandler) Questions(w http.ResponseWriter, r *http.Request) {
	set, err := h.svc.GetCategoryQuestions(r.Context(), r.PathValue("idOrName"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toCategoryQuestionsResponse(set))
}
