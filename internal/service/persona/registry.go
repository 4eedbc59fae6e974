// internal/service/persona/registry.go

package persona

import (
	"fmt"
	"time"

	"jotfeed/internal/domain/jot"
)

// Registry implements the jot.Registry interface. It holds the fixed jot
// population, created once at construction from the static persona table and
// never mutated structurally afterwards.
type Registry struct {
	jots  map[string]*jot.Jot
	order []string
}

// NewRegistry builds the jot population from the static persona table.
// Malformed personality data is rejected here, at construction time, so the
// simulator never has to deal with out-of-range traits.
func NewRegistry(rng jot.Rand, now time.Time) (*Registry, error) {
	r := &Registry{
		jots: make(map[string]*jot.Jot),
	}

	for _, p := range seedProfiles() {
		j, err := buildJot(p, rng, now)
		if err != nil {
			return nil, fmt.Errorf("error building jot %s: %w", p.ID, err)
		}

		r.jots[j.ID] = j
		r.order = append(r.order, j.ID)
	}

	return r, nil
}

// Get returns a jot by ID
func (r *Registry) Get(id string) (*jot.Jot, bool) {
	j, ok := r.jots[id]
	return j, ok
}

// All returns every jot in the population in seed order
func (r *Registry) All() []*jot.Jot {
	jots := make([]*jot.Jot, 0, len(r.order))
	for _, id := range r.order {
		jots = append(jots, r.jots[id])
	}
	return jots
}

// buildJot creates a live jot from a static profile, initializing the
// mutable simulation state.
func buildJot(p Profile, rng jot.Rand, now time.Time) (*jot.Jot, error) {
	if err := p.Personality.Validate(); err != nil {
		return nil, fmt.Errorf("invalid personality: %w", err)
	}
	if err := p.Demographics.Validate(); err != nil {
		return nil, fmt.Errorf("invalid demographics: %w", err)
	}

	j := &jot.Jot{
		ID:              p.ID,
		Username:        p.Username,
		DisplayName:     p.DisplayName,
		Avatar:          p.Avatar,
		Bio:             p.Bio,
		Followers:       p.Followers,
		Following:       p.Following,
		Verified:        p.Verified,
		Personality:     p.Personality,
		Demographics:    p.Demographics,
		BehaviorPattern: p.BehaviorPattern,
		ContentStyle:    p.ContentStyle,

		// Initial simulation state: active sometime in the last 24 hours,
		// random starting energy and mood.
		LastActiveTime: now.Add(-time.Duration(rng.Float64() * 24 * float64(time.Hour))),
		EnergyLevel:    rng.Float64(),
		MoodState:      (rng.Float64() - 0.5) * 2,
		CurrentContext: ContextFor(p.Demographics.Profession, rng),

		// Adaptation rate fixed at creation, 0.1 to 0.5
		AdaptationRate: 0.1 + rng.Float64()*0.4,

		ContentTemplates: DeriveTemplates(p.Personality),
	}

	return j, nil
}
