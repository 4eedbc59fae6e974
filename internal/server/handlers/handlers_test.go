package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"jotfeed/internal/domain/jot"
	"jotfeed/internal/server/handlers"
	corpusService "jotfeed/internal/service/corpus"
)

type emptyRegistry struct{}

func (emptyRegistry) Get(id string) (*jot.Jot, bool) { return nil, false }
func (emptyRegistry) All() []*jot.Jot                { return nil }

func TestGetPostNotFound(t *testing.T) {
	corpus := corpusService.NewCorpus(nil, nil, corpusService.CorpusConfig{EventsTopic: "jot"})
	h := handlers.NewFeedHandler(corpus, nil, "all", 50)

	r := chi.NewRouter()
	r.Get("/api/v1/posts/{id}", h.GetPost)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts/missing", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Post not found"}`, rec.Body.String())
}

func TestGetJotNotFound(t *testing.T) {
	corpus := corpusService.NewCorpus(nil, nil, corpusService.CorpusConfig{EventsTopic: "jot"})
	h := handlers.NewJotHandler(emptyRegistry{}, corpus)

	r := chi.NewRouter()
	r.Get("/api/v1/jots/{id}", h.GetJot)
	r.Get("/api/v1/jots/{id}/posts", h.GetJotPosts)

	for _, path := range []string{"/api/v1/jots/missing", "/api/v1/jots/missing/posts"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.JSONEq(t, `{"error":"Jot not found"}`, rec.Body.String(), path)
	}
}
