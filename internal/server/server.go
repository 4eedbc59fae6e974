// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"jotfeed/internal/config"
	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
	"jotfeed/internal/domain/news"
	"jotfeed/internal/server/handlers"
	"jotfeed/internal/service/simulation"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.Config,
	natsConn *nats.Conn,
	registry jot.Registry,
	corpus feed.Corpus,
	ranker feed.Ranker,
	stepper *simulation.Stepper,
	newsProvider news.Provider,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Server.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	feedHandler := handlers.NewFeedHandler(corpus, ranker, cfg.Feed.DefaultTimeRange, cfg.Feed.MaxFeedSize)
	jotHandler := handlers.NewJotHandler(registry, corpus)
	simulationHandler := handlers.NewSimulationHandler(stepper)
	newsHandler := handlers.NewNewsHandler(newsProvider, stepper)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			// Feed API
			r.Post("/feed", feedHandler.GetFeed)

			// Posts API
			r.Route("/posts", func(r chi.Router) {
				r.Get("/", feedHandler.ListPosts)
				r.Get("/{id}", feedHandler.GetPost)
			})

			// Jots API
			r.Route("/jots", func(r chi.Router) {
				r.Get("/", jotHandler.ListJots)
				r.Get("/{id}", jotHandler.GetJot)
				r.Get("/{id}/posts", jotHandler.GetJotPosts)
			})

			// Simulation API
			r.Route("/simulation", func(r chi.Router) {
				r.Post("/advance", simulationHandler.Advance)
			})

			// News API
			r.Route("/news", func(r chi.Router) {
				r.Get("/", newsHandler.ListArticles)
				r.Post("/share", newsHandler.Share)
			})
		})
	})

	// WebSocket endpoint for real-time feed events
	router.Get("/ws/feed", handlers.FeedWebSocketHandler(natsConn, cfg.Simulation.EventsTopic))

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
