package rest_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/priteshGolakiya/Interview-Questions/internal/config"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
	"github.com/priteshGolakiya/Interview-Questions/internal/docstore/docstoretest"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/answer"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/category"
	"github.com/priteshGolakiya/Interview-Questions/internal/service/question"
	"github.com/priteshGolakiya/Interview-Questions/internal/transport/middleware"
	"github.com/priteshGolakiya/Interview-Questions/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer runs the full HTTP stack over an in-memory store.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Store  *docstoretest.Fixture
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func setupTestServer(t *testing.T, readOnly bool) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	fx := docstoretest.NewFixture()

	categories := category.NewService(logger, fx.Categories, fx.Questions, fx.Answers, fx.Store)
	questions := question.NewService(logger, fx.Categories, fx.Questions, fx.Answers, fx.Store)
	answers := answer.NewService(logger, fx.Answers, fx.Questions, fx.Store)

	mux := rest.NewRouter(rest.Handlers{
		Categories: rest.NewCategoryHandler(categories, logger),
		Questions:  rest.NewQuestionHandler(questions, logger),
		Answers:    rest.NewAnswerHandler(answers, logger),
		Health:     rest.NewHealthHandler(fx.Store, config.DriverMemory, "test-version"),
	}, readOnly)

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS"}),
		middleware.BodyLimit(10240),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Store: fx}
}

// do sends body as JSON (raw strings are sent verbatim) and decodes the
// response object.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result), "decode %s %s", method, path)
	return resp.StatusCode, result
}

func dataObject(t *testing.T, result map[string]any) map[string]any {
	t.Helper()
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "expected data object in %v", result)
	return data
}

func dataList(t *testing.T, result map[string]any) []any {
	t.Helper()
	data, ok := result["data"].([]any)
	require.True(t, ok, "expected data array in %v", result)
	return data
}

func (ts *testServer) createCategory(t *testing.T, name string) string {
	t.Helper()
	status, result := ts.do(t, http.MethodPost, "/categories", map[string]any{"name": name})
	require.Equal(t, http.StatusCreated, status, "create category: %v", result)
	return dataObject(t, result)["id"].(string)
}

func (ts *testServer) createQuestion(t *testing.T, categoryID, title string) string {
	t.Helper()
	status, result := ts.do(t, http.MethodPost, "/questions", map[string]any{
		"categoryId":  categoryID,
		"title":       title,
		"description": "description of " + title,
		"difficulty":  "Medium",
		"tags":        []string{"go"},
	})
	require.Equal(t, http.StatusCreated, status, "create question: %v", result)
	return dataObject(t, result)["id"].(string)
}

// ---------------------------------------------------------------------------
// Scenarios
// ---------------------------------------------------------------------------

func TestCompoundCreate_ThenAggregation(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)

	catID := ts.createCategory(t, "Algorithms")

	status, result := ts.do(t, http.MethodPost, "/questions/questions", map[string]any{
		"categoryId":  catID,
		"title":       "Two Sum",
		"description": "Find two numbers that add up to a target.",
		"difficulty":  "Easy",
		"tags":        []string{"array"},
		"answers": []map[string]any{
			{"type": "paragraph", "content": map[string]any{"text": "Use a hash map."}},
		},
	})
	require.Equal(t, http.StatusCreated, status, "%v", result)

	created := dataObject(t, result)
	assert.Equal(t, "Two Sum", created["title"])
	assert.Equal(t, map[string]any{"id": catID, "name": "Algorithms"}, created["category"])
	createdAnswers := created["answers"].([]any)
	require.Len(t, createdAnswers, 1)
	assert.Equal(t, "Use a hash map.", createdAnswers[0].(map[string]any)["content"])

	for _, ref := range []string{catID, "Algorithms"} {
		status, result = ts.do(t, http.MethodGet, "/categories/"+ref+"/questions", nil)
		require.Equal(t, http.StatusOK, status, "%v", result)

		agg := dataObject(t, result)
		assert.Equal(t, "Algorithms", agg["category"])
		qs := agg["questions"].([]any)
		require.Len(t, qs, 1)
		q := qs[0].(map[string]any)
		assert.Equal(t, "Two Sum", q["title"])
		assert.Equal(t, "Easy", q["difficulty"])
		answers := q["answers"].([]any)
		require.Len(t, answers, 1)
		a := answers[0].(map[string]any)
		assert.Equal(t, "Use a hash map.", a["content"])
		assert.Equal(t, "paragraph", a["type"])
		assert.Equal(t, float64(0), a["votes"])
	}
}

func TestCompoundCreate_UnknownCategoryPersistsNothing(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)

	status, result := ts.do(t, http.MethodPost, "/questions/questions", map[string]any{
		"categoryId":  docstore.NewID(),
		"title":       "Two Sum",
		"description": "...",
		"difficulty":  "Easy",
		"answers":     []map[string]any{{"type": "code", "content": "x"}},
	})
	require.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, result["error"], "not found")

	_, result = ts.do(t, http.MethodGet, "/questions", nil)
	assert.Equal(t, float64(0), dataObject(t, result)["totalQuestions"])
	_, result = ts.do(t, http.MethodGet, "/answers", nil)
	assert.Empty(t, dataList(t, result))
}

func TestCompoundCreate_BadRequests(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	catID := ts.createCategory(t, "Go")

	base := func() map[string]any {
		return map[string]any{
			"categoryId":  catID,
			"title":       "Title",
			"description": "Description",
			"difficulty":  "Hard",
			"answers":     []any{},
		}
	}

	tests := []struct {
		name   string
		modify func(map[string]any)
		want   string
	}{
		{"answers missing", func(b map[string]any) { delete(b, "answers") }, "answers: required"},
		{"answers not a list", func(b map[string]any) { b["answers"] = map[string]any{"type": "code"} }, "answers: must be an array"},
		{"malformed category id", func(b map[string]any) { b["categoryId"] = "123" }, "categoryId"},
		{"bad difficulty", func(b map[string]any) { b["difficulty"] = "Trivial" }, "difficulty"},
		{"paragraph without text", func(b map[string]any) {
			b["answers"] = []any{map[string]any{"type": "paragraph", "content": map[string]any{"body": "x"}}}
		}, "answers[0].content.text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := base()
			tt.modify(body)

			status, result := ts.do(t, http.MethodPost, "/questions/questions", body)
			require.Equal(t, http.StatusBadRequest, status, "%v", result)
			assert.Contains(t, result["error"], tt.want)
		})
	}

	_, result := ts.do(t, http.MethodGet, "/categories/"+catID, nil)
	assert.Empty(t, dataObject(t, result)["questions"])
}

func TestListQuestions_SecondPageOfThree(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	catID := ts.createCategory(t, "Go")
	ts.createQuestion(t, catID, "first")
	second := ts.createQuestion(t, catID, "second")
	ts.createQuestion(t, catID, "third")

	status, result := ts.do(t, http.MethodGet, "/questions?page=2&limit=1", nil)
	require.Equal(t, http.StatusOK, status)

	page := dataObject(t, result)
	assert.Equal(t, float64(2), page["currentPage"])
	assert.Equal(t, float64(3), page["totalPages"])
	assert.Equal(t, float64(3), page["totalQuestions"])
	qs := page["questions"].([]any)
	require.Len(t, qs, 1)
	assert.Equal(t, second, qs[0].(map[string]any)["id"])
}

func TestListQuestions_FiltersAndErrors(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	goID := ts.createCategory(t, "Golang")
	sqlID := ts.createCategory(t, "SQL")
	ts.createQuestion(t, goID, "Goroutines")
	ts.createQuestion(t, sqlID, "Window functions")

	_, result := ts.do(t, http.MethodGet, "/questions?category=golang", nil)
	assert.Equal(t, float64(1), dataObject(t, result)["totalQuestions"])

	_, result = ts.do(t, http.MethodGet, "/questions?search=WINDOW", nil)
	qs := dataObject(t, result)["questions"].([]any)
	require.Len(t, qs, 1)
	assert.Equal(t, "Window functions", qs[0].(map[string]any)["title"])

	status, _ := ts.do(t, http.MethodGet, "/questions?category=rust", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, result = ts.do(t, http.MethodGet, "/questions?page=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result["error"], "page")
}

func TestQuestionLifecycle(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	fromID := ts.createCategory(t, "From")
	toID := ts.createCategory(t, "To")
	qID := ts.createQuestion(t, fromID, "Moving question")

	status, result := ts.do(t, http.MethodPut, "/questions/"+qID, map[string]any{
		"title":      "Moved question",
		"categoryId": toID,
	})
	require.Equal(t, http.StatusOK, status, "%v", result)
	assert.Equal(t, "Moved question", dataObject(t, result)["title"])
	assert.Equal(t, toID, dataObject(t, result)["category"])

	_, result = ts.do(t, http.MethodGet, "/categories/"+fromID, nil)
	assert.Empty(t, dataObject(t, result)["questions"])
	_, result = ts.do(t, http.MethodGet, "/categories/"+toID, nil)
	assert.Len(t, dataObject(t, result)["questions"], 1)

	status, result = ts.do(t, http.MethodPut, "/questions/"+qID, map[string]any{"title": 42})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result["error"], "title: must be a string")

	status, result = ts.do(t, http.MethodDelete, "/questions/"+qID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "question deleted", dataObject(t, result)["message"])

	_, result = ts.do(t, http.MethodGet, "/categories/"+toID, nil)
	assert.Empty(t, dataObject(t, result)["questions"])

	status, _ = ts.do(t, http.MethodGet, "/questions/"+qID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = ts.do(t, http.MethodGet, "/questions/not-an-id", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAnswerLifecycle(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	catID := ts.createCategory(t, "Go")
	qID := ts.createQuestion(t, catID, "Defer")

	status, result := ts.do(t, http.MethodPost, "/answers", map[string]any{
		"questionId": qID,
		"answers": []map[string]any{
			{"type": "paragraph", "content": map[string]any{"text": "LIFO"}},
			{"type": "table", "content": map[string]any{"rows": [][]int{{1, 2}}, "cols": []string{"a", "b"}}},
			{"type": "code", "content": map[string]any{"lang": "go", "src": "defer f()"}},
		},
	})
	require.Equal(t, http.StatusCreated, status, "%v", result)
	created := dataList(t, result)
	require.Len(t, created, 3)
	ids := make([]any, len(created))
	for i, c := range created {
		ids[i] = c.(map[string]any)["id"]
	}
	assert.Equal(t, `{"cols":["a","b"],"rows":[[1,2]]}`, created[1].(map[string]any)["content"])

	_, result = ts.do(t, http.MethodGet, "/questions/"+qID, nil)
	answers := dataObject(t, result)["answers"].([]any)
	require.Len(t, answers, 3)
	for i, a := range answers {
		assert.Equal(t, ids[i], a.(map[string]any)["id"])
	}

	status, result = ts.do(t, http.MethodGet, fmt.Sprintf("/answers/%s", ids[0]), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, qID, dataObject(t, result)["question"].(map[string]any)["id"])

	status, result = ts.do(t, http.MethodPut, fmt.Sprintf("/answers/%s", ids[2]), map[string]any{"votes": 3})
	require.Equal(t, http.StatusOK, status, "%v", result)
	assert.Equal(t, float64(3), dataObject(t, result)["votes"])

	status, result = ts.do(t, http.MethodPut, fmt.Sprintf("/answers/%s", ids[2]), map[string]any{"content": map[string]any{"text": "x"}})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result["error"], "content: must be a string")

	status, _ = ts.do(t, http.MethodDelete, fmt.Sprintf("/answers/%s", ids[1]), nil)
	require.Equal(t, http.StatusOK, status)

	_, result = ts.do(t, http.MethodGet, "/questions/"+qID, nil)
	remaining := dataObject(t, result)["answers"].([]any)
	require.Len(t, remaining, 2)
	assert.Equal(t, ids[0], remaining[0].(map[string]any)["id"])
	assert.Equal(t, ids[2], remaining[1].(map[string]any)["id"])
}

func TestCreateAnswers_BadRequests(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)

	status, result := ts.do(t, http.MethodPost, "/answers", map[string]any{"questionId": docstore.NewID(), "answers": "nope"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result["error"], "answers: must be an array")

	status, _ = ts.do(t, http.MethodPost, "/answers", map[string]any{"questionId": docstore.NewID(), "answers": []any{}})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestCategoryLifecycle(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	catID := ts.createCategory(t, "Databases")
	qID := ts.createQuestion(t, catID, "Indexes")

	status, result := ts.do(t, http.MethodPost, "/categories", map[string]any{"name": "Databases"})
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, result["error"], "already exists")

	status, result = ts.do(t, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, status)
	list := dataList(t, result)
	require.Len(t, list, 1)
	assert.Equal(t, []any{map[string]any{"id": qID, "title": "Indexes"}}, list[0].(map[string]any)["questions"])

	status, result = ts.do(t, http.MethodPut, "/categories/"+catID, map[string]any{"name": "Storage"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Storage", dataObject(t, result)["name"])

	status, result = ts.do(t, http.MethodPut, "/categories/"+catID, map[string]any{"name": ""})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result["error"], "name: required")

	status, _ = ts.do(t, http.MethodDelete, "/categories/"+catID, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = ts.do(t, http.MethodGet, "/categories/"+catID, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, result = ts.do(t, http.MethodGet, "/questions/"+qID, nil)
	require.Equal(t, http.StatusOK, status, "questions survive their category")
	assert.Nil(t, dataObject(t, result)["category"])
}

func TestRequestBodies(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)

	status, result := ts.do(t, http.MethodPost, "/categories", "{not json")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, result["error"], "body")

	status, result = ts.do(t, http.MethodPost, "/categories", `{"name":"`+strings.Repeat("x", 11000)+`"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "request body too large", result["error"])
}

func TestErrorBodies_OmitWrapChain(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)
	ts.createCategory(t, "Go")

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		want   string
	}{
		{"missing question", http.MethodGet, "/questions/" + docstore.NewID(), nil, http.StatusNotFound, "not found"},
		{"missing answer update", http.MethodPut, "/answers/" + docstore.NewID(), map[string]any{"type": "code", "content": "x"}, http.StatusNotFound, "not found"},
		{"duplicate category", http.MethodPost, "/categories", map[string]any{"name": "Go"}, http.StatusConflict, "already exists"},
		{"blank category name", http.MethodPost, "/categories", map[string]any{"name": ""}, http.StatusBadRequest, "validation: name: required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, result := ts.do(t, tt.method, tt.path, tt.body)
			require.Equal(t, tt.status, status, "%v", result)
			assert.Equal(t, tt.want, result["error"])
		})
	}
}

func TestReadOnlyRoutes(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, true)

	status, result := ts.do(t, http.MethodPost, "/categories", map[string]any{"name": "Go"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not found", result["error"])

	status, result = ts.do(t, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, dataList(t, result))
}

func TestServiceRoutes(t *testing.T) {
	t.Parallel()
	ts := setupTestServer(t, false)

	resp, err := ts.Client.Get(ts.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	resp, err = ts.Client.Get(ts.URL + "/favicon.ico")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	status, result := ts.do(t, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "not found", result["error"])

	status, result = ts.do(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", result["status"])
}
