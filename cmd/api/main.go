// cmd/api/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"jotfeed/internal/adapter/storage"
	"jotfeed/internal/config"
	"jotfeed/internal/server"
	corpusService "jotfeed/internal/service/corpus"
	feedService "jotfeed/internal/service/feed"
	newsService "jotfeed/internal/service/news"
	"jotfeed/internal/service/persona"
	"jotfeed/internal/service/simulation"
)

func main() {
	// Load .env if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	natsConn, err := initNATS(cfg.NATS, logger)
	if err != nil {
		// The simulation runs fine without an event bus; streaming
		// endpoints degrade
		logger.Warn("NATS unavailable, event streaming disabled", zap.Error(err))
		natsConn = nil
	}
	if natsConn != nil {
		defer natsConn.Close()
	}

	// Seeded randomness makes whole runs reproducible
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	logger.Info("simulation seed", zap.Int64("seed", seed))

	// Build the jot population
	registry, err := persona.NewRegistry(rng, time.Now())
	if err != nil {
		logger.Fatal("Failed to build jot population", zap.Error(err))
	}

	// Optional persistence
	var stateStore *storage.JotStateStore
	var stateSaver simulation.StateSaver
	var postStore *storage.PostStore
	var postSaver simulation.PostSaver
	if cfg.Database.Enabled {
		db, err := initDatabase(ctx, cfg.Database)
		if err != nil {
			logger.Fatal("Failed to initialize database", zap.Error(err))
		}
		defer db.Close()

		stateStore = storage.NewJotStateStore(db)
		stateSaver = stateStore
		postStore = storage.NewPostStore(db)
		postSaver = postStore

		if err := stateStore.RestoreAll(ctx, registry); err != nil {
			logger.Warn("Failed to restore jot state", zap.Error(err))
		}
	}

	// Initialize services
	simulator := simulation.NewSimulator(registry, rng, natsConn, logger, simulation.SimulatorConfig{
		EventsTopic: cfg.Simulation.EventsTopic,
	})

	corpus := corpusService.NewCorpus(
		corpusService.SeedPosts(time.Now()),
		natsConn,
		corpusService.CorpusConfig{EventsTopic: cfg.Simulation.EventsTopic},
	)

	// Reload posts generated by earlier runs
	if postStore != nil {
		restorePosts(ctx, postStore, corpus, logger)
	}

	ranker := feedService.NewRanker(registry, logger)

	newsProvider := newsService.NewStaticProvider(time.Now())
	sharer := newsService.NewSharer(rng)

	stepper := simulation.NewStepper(
		simulator,
		registry,
		corpus,
		rng,
		newsProvider,
		sharer,
		stateSaver,
		postSaver,
		logger,
		simulation.StepperConfig{
			StepHours:    cfg.Simulation.StepHours,
			NewsEnabled:  cfg.News.Enabled,
			SharesPerJot: cfg.News.SharesPerJot,
		},
	)

	// Background simulation loop
	if cfg.Simulation.AutoAdvance {
		go runSimulationLoop(ctx, stepper, cfg, logger)
	}

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg,
		natsConn,
		registry,
		corpus,
		ranker,
		stepper,
		newsProvider,
	)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server",
			zap.String("host", cfg.Server.Host),
			zap.Int("port", cfg.Server.Port),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	logger.Info("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Stop the simulation loop before the server so no step lands mid-shutdown
	cancel()

	// Shutdown HTTP server
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	// Persist final jot state
	if stateStore != nil {
		if err := stateStore.SaveAll(shutdownCtx, registry); err != nil {
			logger.Error("Failed to persist jot state", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
}

// postRestoreLimit bounds how many stored posts come back into the corpus
// at boot
const postRestoreLimit = 500

// restorePosts loads previously generated posts from storage into the
// in-memory corpus, oldest first so corpus order matches creation order.
// Seed posts are never written to storage, so IDs cannot collide with them.
func restorePosts(ctx context.Context, store *storage.PostStore, corpus *corpusService.Corpus, logger *zap.Logger) {
	stored, err := store.ListPosts(ctx, postRestoreLimit)
	if err != nil {
		logger.Warn("Failed to restore posts", zap.Error(err))
		return
	}

	restored := 0
	for i := len(stored) - 1; i >= 0; i-- {
		if err := corpus.Add(ctx, stored[i]); err != nil {
			logger.Warn("Failed to restore post",
				zap.String("post_id", stored[i].ID),
				zap.Error(err),
			)
			continue
		}
		restored++
	}

	logger.Info("restored posts from storage", zap.Int("count", restored))
}

// runSimulationLoop advances the simulation and runs news share cycles on
// their configured intervals until ctx is cancelled.
func runSimulationLoop(ctx context.Context, stepper *simulation.Stepper, cfg config.Config, logger *zap.Logger) {
	stepTicker := time.NewTicker(cfg.Simulation.StepInterval)
	defer stepTicker.Stop()

	newsTicker := time.NewTicker(cfg.News.FetchInterval)
	defer newsTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-stepTicker.C:
			if _, err := stepper.Step(ctx, cfg.Simulation.StepHours); err != nil {
				logger.Error("simulation step failed", zap.Error(err))
			}

		case <-newsTicker.C:
			if _, err := stepper.ShareNews(ctx); err != nil {
				logger.Error("news share cycle failed", zap.Error(err))
			}
		}
	}
}

// Initialize logger
func initLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// Initialize database connection
func initDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Test connection
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// Initialize NATS connection
func initNATS(cfg config.NATSConfig, logger *zap.Logger) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
