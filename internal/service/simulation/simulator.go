// internal/service/simulation/simulator.go

package simulation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"jotfeed/internal/domain/jot"
	"jotfeed/internal/service/persona"
)

const (
	// energyThreshold is the minimum energy a jot needs to act
	energyThreshold = 0.3

	// contextResampleChance is the per-step probability a jot picks up a
	// new current activity
	contextResampleChance = 0.3
)

// SimulatorConfig contains configuration for the simulator
type SimulatorConfig struct {
	EventsTopic string
}

// Simulator implements the jot.Simulator interface. It advances the jot
// population through discrete time steps, updating per-jot energy, mood and
// context, and emitting the actions jots decide to take.
type Simulator struct {
	registry jot.Registry
	rng      jot.Rand
	eventBus *nats.Conn
	logger   *zap.Logger
	config   SimulatorConfig
	now      func() time.Time
	mu       sync.Mutex
}

// NewSimulator creates a new simulator over the given population
func NewSimulator(
	registry jot.Registry,
	rng jot.Rand,
	eventBus *nats.Conn,
	logger *zap.Logger,
	config SimulatorConfig,
) *Simulator {
	return &Simulator{
		registry: registry,
		rng:      rng,
		eventBus: eventBus,
		logger:   logger,
		config:   config,
		now:      time.Now,
	}
}

// SetClock overrides the simulator's time source. Tests use this to pin the
// current hour-of-day.
func (s *Simulator) SetClock(now func() time.Time) {
	s.now = now
}

// Advance moves the simulation forward by the given number of hours and
// returns the actions the population took during the step. Failures for one
// jot never halt the step for the rest of the population.
func (s *Simulator) Advance(ctx context.Context, hours float64) ([]jot.Action, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("hours must be positive, got %f", hours)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	currentTime := s.now()
	var actions []jot.Action

	for _, j := range s.registry.All() {
		select {
		case <-ctx.Done():
			return actions, ctx.Err()
		default:
		}

		s.updateState(j, hours)

		if !s.shouldAct(j, currentTime) {
			continue
		}

		action, ok := s.generateAction(j, currentTime)
		if !ok {
			continue
		}

		actions = append(actions, action)
		s.applyAction(j, action)

		if err := s.publishAction(action); err != nil {
			s.logger.Warn("failed to publish jot action",
				zap.String("jot_id", j.ID),
				zap.Error(err),
			)
		}
	}

	return actions, nil
}

// updateState advances a jot's energy, mood and context by one step of the
// given duration.
func (s *Simulator) updateState(j *jot.Jot, hours float64) {
	// Energy decays with time and recovers with extraversion
	energyDecay := 0.1 * hours
	personalityBoost := j.Personality.Extraversion * 0.05
	j.EnergyLevel = jot.Clamp(j.EnergyLevel-energyDecay+personalityBoost, 0, 1)

	// More neurotic jots have noisier mood
	moodStability := 1 - j.Personality.Neuroticism
	moodChange := (s.rng.Float64() - 0.5) * 0.2 * (1 - moodStability)
	j.MoodState = jot.Clamp(j.MoodState+moodChange, -1, 1)

	// Occasionally pick up a new activity
	if s.rng.Float64() < contextResampleChance {
		j.CurrentContext = persona.ContextFor(j.Demographics.Profession, s.rng)
	}
}

// shouldAct is the action-eligibility gate: the jot acts only during its
// active hours, with enough energy, and per its share frequency.
func (s *Simulator) shouldAct(j *jot.Jot, currentTime time.Time) bool {
	hour := currentTime.Hour()

	isActiveHour := false
	for _, h := range j.BehaviorPattern.PostingHours {
		if h == hour {
			isActiveHour = true
			break
		}
	}

	return isActiveHour &&
		j.EnergyLevel > energyThreshold &&
		s.rng.Float64() < j.Personality.ShareFrequency
}

// generateAction decides what an eligible jot does this step. Only
// create_post produces content; the engage branch is a placeholder for
// richer behavior and yields no action yet.
func (s *Simulator) generateAction(j *jot.Jot, timestamp time.Time) (jot.Action, bool) {
	actionTypes := []jot.ActionType{jot.ActionCreatePost, jot.ActionEngageWithPost}
	actionType := actionTypes[s.rng.Intn(len(actionTypes))]

	if actionType != jot.ActionCreatePost {
		return jot.Action{}, false
	}

	template := s.selectTemplate(j)
	content := s.generateContent(j, template)

	return jot.Action{
		ID:        uuid.New().String(),
		Type:      jot.ActionCreatePost,
		JotID:     j.ID,
		Timestamp: timestamp,
		Context: jot.ActionContext{
			Mood:           j.MoodState,
			Energy:         j.EnergyLevel,
			CurrentContext: j.CurrentContext,
			Template:       &template,
		},
		Content: content,
		Success: true,
		Impact:  0.1,
	}, true
}

// selectTemplate picks a template whose mood range is close to the jot's
// current mood or whose triggers match the current context, falling back to
// the jot's first template when nothing fits.
func (s *Simulator) selectTemplate(j *jot.Jot) jot.ContentTemplate {
	var suitable []jot.ContentTemplate

	for _, t := range j.ContentTemplates {
		moodMatch := abs(t.Mood-j.MoodState) < 0.5

		contextMatch := false
		for _, trigger := range t.Triggers {
			if strings.Contains(j.CurrentContext, strings.ReplaceAll(trigger, "_", " ")) {
				contextMatch = true
				break
			}
		}

		if moodMatch || contextMatch {
			suitable = append(suitable, t)
		}
	}

	if len(suitable) == 0 {
		return j.ContentTemplates[0]
	}

	return suitable[s.rng.Intn(len(suitable))]
}

// applyAction applies the side effects of a completed action to the jot
func (s *Simulator) applyAction(j *jot.Jot, action jot.Action) {
	j.EnergyLevel = jot.Clamp(j.EnergyLevel-0.1, 0, 1)
	j.LastActiveTime = action.Timestamp

	impact := 0.1
	if !action.Success {
		impact = -0.1
	}

	j.Remember(jot.Memory{
		Timestamp:       action.Timestamp,
		Event:           jot.EventPostCreated,
		Context:         action.Context.CurrentContext,
		EmotionalImpact: impact,
		LearningValue:   0.05,
	})
}

// publishAction publishes a jot action to the event bus
func (s *Simulator) publishAction(action jot.Action) error {
	if s.eventBus == nil {
		return nil
	}

	data, err := json.Marshal(map[string]interface{}{
		"id":        action.ID,
		"type":      string(action.Type),
		"jot_id":    action.JotID,
		"timestamp": action.Timestamp,
		"content":   action.Content,
	})
	if err != nil {
		return fmt.Errorf("error marshaling action: %w", err)
	}

	topic := fmt.Sprintf("%s.action.%s", s.config.EventsTopic, action.Type)
	return s.eventBus.Publish(topic, data)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
