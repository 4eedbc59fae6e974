package jot

import (
	"context"
	"time"
)

// ActionType identifies what a jot chose to do during a simulation step
type ActionType string

const (
	ActionCreatePost     ActionType = "create_post"
	ActionEngageWithPost ActionType = "engage_with_post"
	ActionShareLink      ActionType = "share_link"
)

// ActionContext captures the jot's state at the moment it acted
type ActionContext struct {
	Mood           float64
	Energy         float64
	CurrentContext string
	Template       *ContentTemplate
}

// Action is one decision made by a jot during a simulation step
type Action struct {
	ID        string
	Type      ActionType
	JotID     string
	Timestamp time.Time
	Context   ActionContext
	Content   string // generated post body, set for create_post actions
	Success   bool
	Impact    float64
}

// Registry holds the fixed jot population. The population is created once at
// construction and never grows or shrinks during a run.
type Registry interface {
	// Get returns a jot by ID
	Get(id string) (*Jot, bool)

	// All returns every jot in the population in stable order
	All() []*Jot
}

// Simulator advances the jot population through discrete time steps
type Simulator interface {
	// Advance moves the simulation forward by the given number of hours and
	// returns the actions the population took during the step
	Advance(ctx context.Context, hours float64) ([]Action, error)
}

// Rand is the random source injected into the simulator so tests can pin
// outcomes. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}
