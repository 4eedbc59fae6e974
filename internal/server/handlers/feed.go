// internal/server/handlers/feed.go

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	corpus           feed.Corpus
	ranker           feed.Ranker
	defaultTimeRange feed.TimeRange
	maxFeedSize      int
}

// NewFeedHandler creates a new feed handler
func NewFeedHandler(corpus feed.Corpus, ranker feed.Ranker, defaultTimeRange string, maxFeedSize int) *FeedHandler {
	return &FeedHandler{
		corpus:           corpus,
		ranker:           ranker,
		defaultTimeRange: feed.TimeRange(defaultTimeRange),
		maxFeedSize:      maxFeedSize,
	}
}

// GetFeed ranks the current corpus for the caller
func (h *FeedHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	type feedRequest struct {
		Algorithm    string   `json:"algorithm"`
		TimeRange    string   `json:"time_range"`
		ContentTypes []string `json:"content_types"`
		ViewerID     string   `json:"viewer_id"`
		Weights      struct {
			Recency       float64 `json:"recency"`
			Engagement    float64 `json:"engagement"`
			Relevance     float64 `json:"relevance"`
			Diversity     float64 `json:"diversity"`
			SocialSignals float64 `json:"social_signals"`
		} `json:"weights"`
	}

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Apply defaults for omitted fields
	if req.Algorithm == "" {
		req.Algorithm = string(feed.AlgorithmPersonalized)
	}
	if req.TimeRange == "" {
		req.TimeRange = string(h.defaultTimeRange)
	}

	contentTypes := []jot.ContentType{
		jot.ContentText, jot.ContentImage, jot.ContentVideo, jot.ContentThread,
	}
	if len(req.ContentTypes) > 0 {
		contentTypes = contentTypes[:0]
		for _, ct := range req.ContentTypes {
			contentTypes = append(contentTypes, jot.ContentType(strings.ToLower(ct)))
		}
	}

	viewReq := feed.ViewRequest{
		ViewerID: req.ViewerID,
		Filter: feed.Filter{
			Algorithm:    feed.Algorithm(req.Algorithm),
			TimeRange:    feed.TimeRange(req.TimeRange),
			ContentTypes: contentTypes,
		},
		Weights: feed.AlgorithmWeights{
			Recency:       req.Weights.Recency,
			Engagement:    req.Weights.Engagement,
			Relevance:     req.Weights.Relevance,
			Diversity:     req.Weights.Diversity,
			SocialSignals: req.Weights.SocialSignals,
		},
	}

	posts, err := h.corpus.Snapshot(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to read corpus", err)
		return
	}

	result, err := h.ranker.Rank(r.Context(), posts, viewReq, time.Now())
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Failed to rank feed", err)
		return
	}

	if len(result.Posts) > h.maxFeedSize {
		result.Posts = result.Posts[:h.maxFeedSize]
	}

	respondWithJSON(w, http.StatusOK, result)
}

// ListPosts returns the raw corpus in insertion order
func (h *FeedHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.corpus.Snapshot(r.Context())
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, "Failed to read corpus", err)
		return
	}

	// Optional limit keeps responses bounded for large corpora
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			respondWithError(w, http.StatusBadRequest, "Invalid limit", err)
			return
		}
		if limit < len(posts) {
			posts = posts[len(posts)-limit:]
		}
	}

	respondWithJSON(w, http.StatusOK, posts)
}

// GetPost returns a specific post by ID
func (h *FeedHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing post ID", nil)
		return
	}

	p, err := h.corpus.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, http.StatusNotFound, "Post not found", ErrNotFound)
		return
	}

	respondWithJSON(w, http.StatusOK, p)
}

// Helper for JSON responses
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("Failed to marshal response"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// Helper for error responses
func respondWithError(w http.ResponseWriter, code int, message string, err error) {
	response := map[string]string{"error": message}

	jsonResponse, _ := json.Marshal(response)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(jsonResponse)
}

// Common errors
var (
	ErrNotFound = errors.New("not found")
)
