package rest

import "net/http"

// Handlers groups the handlers mounted by NewRouter.
type Handlers struct {
	Categories *CategoryHandler
	Questions  *QuestionHandler
	Answers    *AnswerHandler
	Health     *HealthHandler
}

// NewRouter registers every route on a new ServeMux. With readOnly set
// only the GET routes are mounted; every other request falls through to
// the JSON 404.
func NewRouter(h Handlers, readOnly bool) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("GET /{$}", welcome)
	mux.HandleFunc("GET /favicon.ico", favicon)
	mux.HandleFunc("/", notFound)

	mux.HandleFunc("GET /categories", h.Categories.List)
	mux.HandleFunc("GET /categories/{id}", h.Categories.Get)
	mux.HandleFunc("GET /categories/{idOrName}/questions", h.Categories.Questions)

	mux.HandleFunc("GET /questions", h.Questions.List)
	mux.HandleFunc("GET /questions/{id}", h.Questions.Get)

	mux.HandleFunc("GET /answers", h.Answers.List)
	mux.HandleFunc("GET /answers/{id}", h.Answers.Get)

	if readOnly {
		return mux
	}

	mux.HandleFunc("POST /categories", h.Categories.Create)
	mux.HandleFunc("PUT /categories/{id}", h.Categories.Update)
	mux.HandleFunc("DELETE /categories/{id}", h.Categories.Delete)

	mux.HandleFunc("POST /questions", h.Questions.Create)
	mux.HandleFunc("POST /questions/questions", h.Questions.CreateWithAnswers)
	mux.HandleFunc("PUT /questions/{id}", h.Questions.Update)
	mux.HandleFunc("DELETE /questions/{id}", h.Questions.Delete)

	mux.HandleFunc("POST /answers", h.Answers.Create)
	mux.HandleFunc("PUT /answers/{id}", h.Answers.Update)
	mux.HandleFunc("DELETE /answers/{id}", h.Answers.Delete)

	return mux
}

func welcome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Welcome to the Interview Questions API\n"))
}

func favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}
