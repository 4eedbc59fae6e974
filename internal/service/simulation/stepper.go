// internal/service/simulation/stepper.go

package simulation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
	"jotfeed/internal/domain/news"
	"jotfeed/internal/service/corpus"
	newsSvc "jotfeed/internal/service/news"
)

// StateSaver persists jot state after a step. The store adapter satisfies it;
// a nil saver means the run is in-memory only.
type StateSaver interface {
	SaveAll(ctx context.Context, registry jot.Registry) error
}

// PostSaver persists posts as the simulation generates them. The post store
// adapter satisfies it; a nil saver means posts live only in memory.
type PostSaver interface {
	SavePost(ctx context.Context, p feed.Post) error
}

// StepperConfig contains configuration for the step orchestrator
type StepperConfig struct {
	StepHours    float64
	NewsEnabled  bool
	SharesPerJot int
}

// Stepper drives one full simulation step: it advances the population,
// converts the resulting actions into corpus posts, and periodically lets
// jots share news articles. It is the single entry point used by both the
// advance endpoint and the background ticker.
type Stepper struct {
	simulator jot.Simulator
	registry  jot.Registry
	corpus    feed.Corpus
	rng       jot.Rand
	provider  news.Provider
	sharer    *newsSvc.Sharer
	states    StateSaver
	posts     PostSaver
	logger    *zap.Logger
	config    StepperConfig
	now       func() time.Time

	// mu serializes steps and share cycles; the advance endpoint and the
	// background ticker can fire at the same time, and the random source
	// is not safe for concurrent use
	mu sync.Mutex
}

// NewStepper creates a new step orchestrator
func NewStepper(
	simulator jot.Simulator,
	registry jot.Registry,
	feedCorpus feed.Corpus,
	rng jot.Rand,
	provider news.Provider,
	sharer *newsSvc.Sharer,
	states StateSaver,
	posts PostSaver,
	logger *zap.Logger,
	config StepperConfig,
) *Stepper {
	return &Stepper{
		simulator: simulator,
		registry:  registry,
		corpus:    feedCorpus,
		rng:       rng,
		provider:  provider,
		sharer:    sharer,
		states:    states,
		posts:     posts,
		logger:    logger,
		config:    config,
		now:       time.Now,
	}
}

// SetClock overrides the stepper's time source for tests
func (s *Stepper) SetClock(now func() time.Time) {
	s.now = now
}

// Step advances the simulation by the given number of hours and appends the
// resulting content to the corpus. It returns the actions taken during the
// step. A zero hours value uses the configured step size.
func (s *Stepper) Step(ctx context.Context, hours float64) ([]jot.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if hours == 0 {
		hours = s.config.StepHours
	}

	actions, err := s.simulator.Advance(ctx, hours)
	if err != nil {
		return nil, fmt.Errorf("error advancing simulation: %w", err)
	}

	for _, a := range actions {
		p, ok := corpus.FromAction(a, s.rng)
		if !ok {
			continue
		}

		if err := s.corpus.Add(ctx, p); err != nil {
			s.logger.Warn("failed to add post to corpus",
				zap.String("jot_id", a.JotID),
				zap.Error(err),
			)
			continue
		}

		s.savePost(ctx, p)
	}

	if s.states != nil {
		if err := s.states.SaveAll(ctx, s.registry); err != nil {
			s.logger.Warn("failed to persist jot state", zap.Error(err))
		}
	}

	s.logger.Info("simulation step complete",
		zap.Float64("hours", hours),
		zap.Int("actions", len(actions)),
	)

	return actions, nil
}

// ShareNews fetches current articles and lets each jot share the ones it is
// drawn to. A jot's chance to share at all tracks its share frequency, so
// quiet personas mostly sit news cycles out.
func (s *Stepper) ShareNews(ctx context.Context) ([]feed.Post, error) {
	if !s.config.NewsEnabled || s.provider == nil || s.sharer == nil {
		return nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	articles, err := s.provider.Fetch(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("error fetching articles: %w", err)
	}

	now := s.now()
	var shared []feed.Post

	for _, j := range s.registry.All() {
		if s.rng.Float64() > j.Personality.ShareFrequency*0.5 {
			continue
		}

		selected := s.sharer.SelectArticles(j, articles, s.config.SharesPerJot)
		if len(selected) == 0 {
			continue
		}

		// One article per jot per cycle keeps the feed from drowning in
		// link posts
		p := s.sharer.SharePost(j, selected[s.rng.Intn(len(selected))], now)

		if err := s.corpus.Add(ctx, p); err != nil {
			s.logger.Warn("failed to add shared article to corpus",
				zap.String("jot_id", j.ID),
				zap.Error(err),
			)
			continue
		}

		s.savePost(ctx, p)
		shared = append(shared, p)
	}

	s.logger.Info("news share cycle complete", zap.Int("posts", len(shared)))

	return shared, nil
}

// savePost writes a post through to storage when persistence is enabled.
// Storage failures are logged, not fatal; the corpus already has the post.
func (s *Stepper) savePost(ctx context.Context, p feed.Post) {
	if s.posts == nil {
		return
	}

	if err := s.posts.SavePost(ctx, p); err != nil {
		s.logger.Warn("failed to persist post",
			zap.String("post_id", p.ID),
			zap.Error(err),
		)
	}
}
