// internal/server/handlers/jot.go

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

// JotHandler handles jot-related HTTP requests
type JotHandler struct {
	registry jot.Registry
	corpus   feed.Corpus
}

// NewJotHandler creates a new jot handler
func NewJotHandler(registry jot.Registry, corpus feed.Corpus) *JotHandler {
	return &JotHandler{
		registry: registry,
		corpus:   corpus,
	}
}

// ListJots returns the full jot population
func (h *JotHandler) ListJots(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.registry.All())
}

// GetJot returns a specific jot by ID
func (h *JotHandler) GetJot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing jot ID", nil)
		return
	}

	j, ok := h.registry.Get(id)
	if !ok {
		respondWithError(w, http.StatusNotFound, "Jot not found", ErrNotFound)
		return
	}

	respondWithJSON(w, http.StatusOK, j)
}

// GetJotPosts returns every post authored by the given jot
func (h *JotHandler) GetJotPosts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing jot ID", nil)
		return
	}

	if _, ok := h.registry.Get(id); !ok {
		respondWithError(w, http.StatusNotFound, "Jot not found", ErrNotFound)
		return
	}

	posts, err := h.corpus.ByAuthor(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to get posts", err)
		return
	}

	respondWithJSON(w, http.StatusOK, posts)
}
