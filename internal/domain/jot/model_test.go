package jot_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jotfeed/internal/domain/jot"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, jot.Clamp(-0.5, 0, 1))
	assert.Equal(t, 1.0, jot.Clamp(1.5, 0, 1))
	assert.Equal(t, 0.5, jot.Clamp(0.5, 0, 1))
	assert.Equal(t, -1.0, jot.Clamp(-3, -1, 1))
}

func TestPersonalityValidate(t *testing.T) {
	valid := jot.Personality{
		Openness:             0.5,
		Conscientiousness:    0.5,
		Extraversion:         0.5,
		Agreeableness:        0.5,
		Neuroticism:          0.5,
		ShareFrequency:       0.5,
		EngagementLevel:      0.5,
		ControversyTolerance: 0.5,
		TrendFollowing:       0.5,
		Authenticity:         0.5,
	}
	assert.NoError(t, valid.Validate())

	invalid := valid
	invalid.ShareFrequency = 1.2
	assert.Error(t, invalid.Validate())

	negative := valid
	negative.Openness = -0.1
	assert.Error(t, negative.Validate())
}

func TestDemographicsValidate(t *testing.T) {
	valid := jot.Demographics{PoliticalLean: -0.4, Religiosity: 0.2}
	assert.NoError(t, valid.Validate())

	badLean := jot.Demographics{PoliticalLean: 1.5}
	assert.Error(t, badLean.Validate())

	badReligiosity := jot.Demographics{Religiosity: -0.1}
	assert.Error(t, badReligiosity.Validate())
}

func TestTopTopic(t *testing.T) {
	b := jot.BehaviorPattern{
		TopicAffinities: map[string]float64{
			"javascript": 0.8,
			"gaming":     0.6,
			"ai":         0.9,
		},
	}
	assert.Equal(t, "ai", b.TopTopic())
}

func TestTopTopicTieBreak(t *testing.T) {
	// Equal affinities resolve lexicographically so the result is stable
	// across map iteration orders
	b := jot.BehaviorPattern{
		TopicAffinities: map[string]float64{
			"zebra": 0.7,
			"apple": 0.7,
			"mango": 0.7,
		},
	}
	for i := 0; i < 20; i++ {
		assert.Equal(t, "apple", b.TopTopic())
	}
}

func TestTopTopicEmpty(t *testing.T) {
	b := jot.BehaviorPattern{}
	assert.Equal(t, "", b.TopTopic())
}

func TestRememberBound(t *testing.T) {
	j := &jot.Jot{}

	var entries []jot.Memory
	for i := 0; i < 101; i++ {
		m := jot.Memory{
			Timestamp: time.Now(),
			Event:     jot.EventPostCreated,
			Context:   fmt.Sprintf("entry-%d", i),
		}
		entries = append(entries, m)
		j.Remember(m)
	}

	// Appending the 101st entry trims the log to the most recent 50
	require.Len(t, j.ExperienceMemory, 50)
	assert.Equal(t, entries[51].Context, j.ExperienceMemory[0].Context)
	assert.Equal(t, entries[100].Context, j.ExperienceMemory[49].Context)
}

func TestRememberStaysUnderBound(t *testing.T) {
	j := &jot.Jot{}
	for i := 0; i < 500; i++ {
		j.Remember(jot.Memory{Event: jot.EventPostCreated})
		assert.LessOrEqual(t, len(j.ExperienceMemory), 100)
	}
}

func TestStateRoundTrip(t *testing.T) {
	j := &jot.Jot{
		ID:             "jot-x",
		EnergyLevel:    0.7,
		MoodState:      -0.2,
		CurrentContext: "coding session",
		LastActiveTime: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	j.Remember(jot.Memory{Event: jot.EventPostCreated, Context: "a"})

	state := j.State()
	assert.Equal(t, "jot-x", state.JotID)
	assert.Equal(t, 0.7, state.EnergyLevel)
	require.Len(t, state.Memory, 1)

	// State is a copy, not a view
	j.Remember(jot.Memory{Event: jot.EventPostCreated, Context: "b"})
	assert.Len(t, state.Memory, 1)

	restored := &jot.Jot{ID: "jot-x"}
	restored.RestoreState(state)
	assert.Equal(t, 0.7, restored.EnergyLevel)
	assert.Equal(t, -0.2, restored.MoodState)
	assert.Equal(t, "coding session", restored.CurrentContext)
	assert.Len(t, restored.ExperienceMemory, 1)
}

func TestRestoreStateClampsBounds(t *testing.T) {
	j := &jot.Jot{}
	j.RestoreState(jot.MutableState{
		EnergyLevel: 4.2,
		MoodState:   -9,
	})

	assert.Equal(t, 1.0, j.EnergyLevel)
	assert.Equal(t, -1.0, j.MoodState)
}
