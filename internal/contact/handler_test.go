// AngelaMos | 2026
// handler_test.go

package contact

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tkprod/portfolio-api/internal/core"
)

func passthrough(next http.Handler) http.Handler { return next }

func newTestRouter(repo Repository) http.Handler {
	svc := newSyncService(repo, NopNotifier{}, nil)
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		NewHandler(svc, core.NewValidator()).RegisterRoutes(r, passthrough, passthrough)
	})
	return r
}

func TestSubmitHandler(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com","message":"Olá"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message"`)
	assert.Len(t, repo.messages, 1)
}

func TestSubmitHandlerMissingEmail(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodPost, "/api/contact",
		strings.NewReader(`{"name":"Ana","message":"Olá"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Code    string            `json:"code"`
			Details []core.FieldError `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, core.CodeValidation, body.Error.Code)
	require.Len(t, body.Error.Details, 1)
	assert.Equal(t, "email", body.Error.Details[0].Field)
	assert.Empty(t, repo.messages)
}

func TestMessageAdminRoutes(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)
	id := "5c0e2d1a-7b3f-4a9e-8d6c-1f2e3a4b5c6d"
	require.NoError(t, repo.Create(t.Context(), &Message{ID: id, Name: "Ana"}))

	req := httptest.NewRequest(http.MethodPut, "/api/contact/messages/"+id,
		strings.NewReader(`{"read":true}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, repo.messages[id].Read)

	req = httptest.NewRequest(http.MethodPut, "/api/contact/messages/"+id,
		strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, repo.messages[id].Read)

	req = httptest.NewRequest(http.MethodPut,
		"/api/contact/messages/7d4b8a59-1f0e-4c59-8d8b-5b7c3a8e9f00",
		strings.NewReader(`{}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/contact/messages?read=true", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var list MessageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list.Messages, 1)
	assert.Equal(t, 1, list.Pagination.Total)

	for _, want := range []int{http.StatusOK, http.StatusNotFound} {
		req = httptest.NewRequest(http.MethodDelete, "/api/contact/messages/"+id, nil)
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code)
	}
}

func TestListMessagesHugePage(t *testing.T) {
	repo := newMemoryRepo()
	router := newTestRouter(repo)
	require.NoError(t, repo.Create(t.Context(), &Message{
		ID:   "5c0e2d1a-7b3f-4a9e-8d6c-1f2e3a4b5c6d",
		Name: "Ana",
	}))

	req := httptest.NewRequest(http.MethodGet,
		"/api/contact/messages?page=9223372036854775807&limit=100", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body MessageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Messages)
	assert.Equal(t, 1, body.Pagination.Total)
}
