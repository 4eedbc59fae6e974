// internal/server/handlers/news.go

package handlers

import (
	"net/http"

	"jotfeed/internal/domain/news"
	"jotfeed/internal/service/simulation"
)

// NewsHandler handles news-related HTTP requests
type NewsHandler struct {
	provider news.Provider
	stepper  *simulation.Stepper
}

// NewNewsHandler creates a new news handler
func NewNewsHandler(provider news.Provider, stepper *simulation.Stepper) *NewsHandler {
	return &NewsHandler{
		provider: provider,
		stepper:  stepper,
	}
}

// ListArticles returns the current article set, optionally filtered by category
func (h *NewsHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.provider.Fetch(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch articles", err)
		return
	}

	respondWithJSON(w, http.StatusOK, articles)
}

// Share runs one news share cycle and returns the posts created
func (h *NewsHandler) Share(w http.ResponseWriter, r *http.Request) {
	posts, err := h.stepper.ShareNews(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to share news", err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"count": len(posts),
	})
}
