package jot

import (
	"fmt"
	"time"
)

// AgeRange buckets a jot's age for demographic purposes
type AgeRange string

const (
	Age18to24 AgeRange = "18-24"
	Age25to34 AgeRange = "25-34"
	Age35to44 AgeRange = "35-44"
	Age45to54 AgeRange = "45-54"
	Age55to64 AgeRange = "55-64"
	Age65Plus AgeRange = "65+"
)

// ContentType identifies the format of a generated piece of content
type ContentType string

const (
	ContentText   ContentType = "text"
	ContentImage  ContentType = "image"
	ContentVideo  ContentType = "video"
	ContentThread ContentType = "thread"
)

// Personality holds the fixed ten-trait profile of a jot.
// Every trait is a real number in [0,1].
type Personality struct {
	Openness             float64
	Conscientiousness    float64
	Extraversion         float64
	Agreeableness        float64
	Neuroticism          float64
	ShareFrequency       float64
	EngagementLevel      float64
	ControversyTolerance float64
	TrendFollowing       float64
	Authenticity         float64
}

// Validate checks that every trait is within [0,1]
func (p Personality) Validate() error {
	traits := map[string]float64{
		"openness":              p.Openness,
		"conscientiousness":     p.Conscientiousness,
		"extraversion":          p.Extraversion,
		"agreeableness":         p.Agreeableness,
		"neuroticism":           p.Neuroticism,
		"share_frequency":       p.ShareFrequency,
		"engagement_level":      p.EngagementLevel,
		"controversy_tolerance": p.ControversyTolerance,
		"trend_following":       p.TrendFollowing,
		"authenticity":          p.Authenticity,
	}

	for name, v := range traits {
		if v < 0 || v > 1 {
			return fmt.Errorf("personality trait %s out of range: %f", name, v)
		}
	}

	return nil
}

// Location holds where a jot is based
type Location struct {
	Country  string
	City     string
	Timezone string
}

// Demographics are static, set at creation, and never mutated
type Demographics struct {
	AgeRange           AgeRange
	Location           Location
	Profession         string
	EducationLevel     string
	IncomeLevel        string
	RelationshipStatus string
	HasChildren        bool
	PoliticalLean      float64 // -1 (left) to 1 (right)
	Religiosity        float64 // 0 (secular) to 1 (very religious)
}

// Validate checks bounded demographic fields
func (d Demographics) Validate() error {
	if d.PoliticalLean < -1 || d.PoliticalLean > 1 {
		return fmt.Errorf("political lean out of range: %f", d.PoliticalLean)
	}
	if d.Religiosity < 0 || d.Religiosity > 1 {
		return fmt.Errorf("religiosity out of range: %f", d.Religiosity)
	}
	return nil
}

// ContentPreferences weights a jot's appetite for each content format
type ContentPreferences struct {
	Text    float64
	Images  float64
	Videos  float64
	Threads float64
	Links   float64
}

// InteractionStyle weights how generous a jot is with each interaction kind
type InteractionStyle struct {
	LikesGiven    float64
	CommentsGiven float64
	SharesGiven   float64
	RepliesGiven  float64
}

// BehaviorPattern describes when and how a jot participates
type BehaviorPattern struct {
	PostingHours       []int // hours of day when most active (0-23)
	ContentPreferences ContentPreferences
	TopicAffinities    map[string]float64 // topic -> interest level (0-1)
	InteractionStyle   InteractionStyle
}

// TopTopic returns the topic with the highest affinity.
// Ties are broken by lexicographic order so the result is stable.
func (b BehaviorPattern) TopTopic() string {
	var top string
	var best float64
	for topic, affinity := range b.TopicAffinities {
		if affinity > best || (affinity == best && (top == "" || topic < top)) {
			top = topic
			best = affinity
		}
	}
	return top
}

// WritingStyle describes how a jot writes
type WritingStyle struct {
	Formality    float64
	Emotionality float64
	Humor        float64
	Verbosity    float64
	EmojiUsage   float64
	HashtagUsage float64
}

// VisualStyle describes a jot's visual content habits
type VisualStyle struct {
	FilterUsage          float64
	CompositionSkill     float64
	ColorPreference      string
	AestheticConsistency float64
}

// ContentStyle bundles the static writing and visual trait vectors
type ContentStyle struct {
	Writing WritingStyle
	Visual  VisualStyle
}

// MemoryEvent identifies what kind of experience a memory entry records
type MemoryEvent string

const (
	EventPostCreated        MemoryEvent = "post_created"
	EventEngagement         MemoryEvent = "engage_with_post"
	EventEngagementReceived MemoryEvent = "engagement_received"
	EventTrendObserved      MemoryEvent = "trend_observed"
)

// Memory is a single entry in a jot's bounded experience log
type Memory struct {
	Timestamp       time.Time
	Event           MemoryEvent
	Context         string
	EmotionalImpact float64 // -1 to 1
	LearningValue   float64 // 0 to 1
}

// ContentTemplate is a parameterized phrase pattern used to generate a post
// body. Templates are derived from a jot's personality at creation and are
// immutable thereafter.
type ContentTemplate struct {
	Type      ContentType
	Pattern   string   // template with {placeholder} keys
	Topics    []string // topics this template applies to
	Mood      float64  // mood range this template fits (-1 to 1)
	Formality float64
	Triggers  []string // context keywords that make this template eligible
}

// Jot is an autonomous simulated persona. Identity, personality,
// demographics, behavior and content style are fixed at creation; only the
// simulation state block is mutated, and only by the simulator.
type Jot struct {
	// Identity
	ID          string
	Username    string
	DisplayName string
	Avatar      string
	Bio         string
	Followers   int
	Following   int
	Verified    bool

	// Static profile
	Personality     Personality
	Demographics    Demographics
	BehaviorPattern BehaviorPattern
	ContentStyle    ContentStyle

	// Simulation state
	LastActiveTime time.Time
	EnergyLevel    float64 // 0-1: current motivation to post
	MoodState      float64 // -1 (negative) to 1 (positive)
	CurrentContext string  // what they're currently focused on

	// Learning and adaptation
	ExperienceMemory []Memory
	AdaptationRate   float64 // 0-1: fixed at creation

	// Content generation
	ContentTemplates []ContentTemplate
}

// Remember appends a memory entry and trims the log when it grows past 100
// entries, keeping the most recent 50.
func (j *Jot) Remember(m Memory) {
	j.ExperienceMemory = append(j.ExperienceMemory, m)
	if len(j.ExperienceMemory) > 100 {
		j.ExperienceMemory = j.ExperienceMemory[len(j.ExperienceMemory)-50:]
	}
}

// MutableState is the portion of a jot that changes between simulation steps.
// It is the only part that a host needs to persist between runs; the static
// profile can always be re-derived from the persona table by ID.
type MutableState struct {
	JotID          string
	EnergyLevel    float64
	MoodState      float64
	CurrentContext string
	LastActiveTime time.Time
	Memory         []Memory
}

// State extracts the jot's mutable state for persistence
func (j *Jot) State() MutableState {
	memory := make([]Memory, len(j.ExperienceMemory))
	copy(memory, j.ExperienceMemory)

	return MutableState{
		JotID:          j.ID,
		EnergyLevel:    j.EnergyLevel,
		MoodState:      j.MoodState,
		CurrentContext: j.CurrentContext,
		LastActiveTime: j.LastActiveTime,
		Memory:         memory,
	}
}

// RestoreState applies persisted mutable state to the jot, clamping bounded
// values to their declared ranges.
func (j *Jot) RestoreState(s MutableState) {
	j.EnergyLevel = Clamp(s.EnergyLevel, 0, 1)
	j.MoodState = Clamp(s.MoodState, -1, 1)
	j.CurrentContext = s.CurrentContext
	j.LastActiveTime = s.LastActiveTime
	j.ExperienceMemory = make([]Memory, len(s.Memory))
	copy(j.ExperienceMemory, s.Memory)
}

// Clamp bounds v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
