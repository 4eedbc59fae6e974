package feed

import (
	"fmt"
	"time"

	"jotfeed/internal/domain/jot"
)

// MediaItem references an image or video attached to a post
type MediaItem struct {
	ID        string
	Type      string
	URL       string
	Thumbnail string
	Alt       string
}

// NewsRef links a post back to the article it shares
type NewsRef struct {
	URL              string
	Title            string
	Source           string
	PublishedAt      time.Time
	CredibilityScore float64
}

// Post is a single piece of feed content. Posts are immutable once created;
// engagement counters are simulated values fixed at creation time.
type Post struct {
	ID          string
	AuthorID    string
	Type        jot.ContentType
	Content     string
	Media       []MediaItem
	ThreadPosts []Post
	NewsLink    *NewsRef
	Likes       int
	Comments    int
	Shares      int
	CreatedAt   time.Time

	// Score is optional pre-authored scoring data. It is never treated as
	// ground truth by the ranker, which recomputes scores per request, but
	// its Relevance factor is consulted as the precomputed relevance proxy.
	Score *AlgorithmScore
}

// EngagementTotal sums the post's simulated engagement counters
func (p Post) EngagementTotal() int {
	return p.Likes + p.Comments + p.Shares
}

// Factor is one named, weighted contributor to a composite score
type Factor struct {
	Name         string
	Weight       float64
	Contribution float64
	Description  string
}

// Explanation is the structured rationale attached to a score
type Explanation struct {
	Primary   string
	Secondary []string
	Reasoning string
}

// AlgorithmScore is the full scoring artifact attached to a ranked post
type AlgorithmScore struct {
	TotalScore  float64
	Confidence  float64
	Explanation Explanation
	Factors     []Factor
}

// FactorByName returns the named factor, if present
func (s *AlgorithmScore) FactorByName(name string) (Factor, bool) {
	if s == nil {
		return Factor{}, false
	}
	for _, f := range s.Factors {
		if f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}

// AlgorithmWeights is the viewer-supplied weighting over the five scoring
// factors. Weights are intended to sum to 1.0; the ranker renormalizes
// off-simplex vectors rather than rejecting them.
type AlgorithmWeights struct {
	Recency       float64
	Engagement    float64
	Relevance     float64
	Diversity     float64
	SocialSignals float64
}

// Sum returns the total of all weights
func (w AlgorithmWeights) Sum() float64 {
	return w.Recency + w.Engagement + w.Relevance + w.Diversity + w.SocialSignals
}

// Validate rejects negative weights. Off-simplex sums are allowed; they are
// normalized at scoring time and surfaced as a diagnostic.
func (w AlgorithmWeights) Validate() error {
	for name, v := range map[string]float64{
		"recency":        w.Recency,
		"engagement":     w.Engagement,
		"relevance":      w.Relevance,
		"diversity":      w.Diversity,
		"social_signals": w.SocialSignals,
	} {
		if v < 0 {
			return fmt.Errorf("weight %s must be non-negative, got %f", name, v)
		}
	}
	return nil
}

// Normalized divides each weight by the sum so they form a simplex. A zero
// sum returns the weights unchanged; callers detect that case via Sum().
func (w AlgorithmWeights) Normalized() AlgorithmWeights {
	sum := w.Sum()
	if sum <= 0 {
		return w
	}
	return AlgorithmWeights{
		Recency:       w.Recency / sum,
		Engagement:    w.Engagement / sum,
		Relevance:     w.Relevance / sum,
		Diversity:     w.Diversity / sum,
		SocialSignals: w.SocialSignals / sum,
	}
}

// Algorithm selects the ranking mode for a feed request
type Algorithm string

const (
	AlgorithmChronological Algorithm = "chronological"
	AlgorithmEngagement    Algorithm = "engagement"
	AlgorithmPersonalized  Algorithm = "personalized"
	AlgorithmCustom        Algorithm = "custom"
)

// TimeRange bounds how far back a feed request looks
type TimeRange string

const (
	RangeHour  TimeRange = "hour"
	RangeDay   TimeRange = "day"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeAll   TimeRange = "all"
)

// Lookback converts the time range into a duration. RangeAll returns
// (0, false) meaning no bound.
func (r TimeRange) Lookback() (time.Duration, bool) {
	switch r {
	case RangeHour:
		return time.Hour, true
	case RangeDay:
		return 24 * time.Hour, true
	case RangeWeek:
		return 7 * 24 * time.Hour, true
	case RangeMonth:
		return 30 * 24 * time.Hour, true
	default:
		return 0, false
	}
}

// Filter selects which posts are eligible for a feed request
type Filter struct {
	Algorithm    Algorithm
	ContentTypes []jot.ContentType
	TimeRange    TimeRange
}

// Validate checks the filter's enumerated fields
func (f Filter) Validate() error {
	switch f.Algorithm {
	case AlgorithmChronological, AlgorithmEngagement, AlgorithmPersonalized, AlgorithmCustom:
	default:
		return fmt.Errorf("unknown algorithm mode: %q", f.Algorithm)
	}

	switch f.TimeRange {
	case RangeHour, RangeDay, RangeWeek, RangeMonth, RangeAll:
	default:
		return fmt.Errorf("unknown time range: %q", f.TimeRange)
	}

	for _, ct := range f.ContentTypes {
		switch ct {
		case jot.ContentText, jot.ContentImage, jot.ContentVideo, jot.ContentThread:
		default:
			return fmt.Errorf("unknown content type: %q", ct)
		}
	}

	return nil
}

// AllowsType reports whether the filter's content-type set includes ct
func (f Filter) AllowsType(ct jot.ContentType) bool {
	for _, allowed := range f.ContentTypes {
		if allowed == ct {
			return true
		}
	}
	return false
}

// ViewRequest is a single feed request from a viewer
type ViewRequest struct {
	Weights  AlgorithmWeights
	Filter   Filter
	ViewerID string
}

// ScoredPost pairs a post with the score computed for this request
type ScoredPost struct {
	Post  Post
	Score AlgorithmScore
}

// Result is the ranked output of a feed request
type Result struct {
	Posts []ScoredPost

	// WeightsNormalized is set when the supplied weights did not sum to 1.0
	// and were renormalized. Degenerate all-zero weights are reported here
	// too; the ranker scores everything to zero rather than guessing a
	// fallback mode.
	WeightsNormalized bool
	ZeroWeights       bool
}
