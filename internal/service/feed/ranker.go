// internal/service/feed/ranker.go

package feed

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	feedDomain "jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

const (
	// recencyHorizonHours is the linear decay window for the recency
	// factor: a post this old scores zero on recency
	recencyHorizonHours = 168.0

	// engagementSaturation caps the engagement factor: this many total
	// interactions scores 1.0
	engagementSaturation = 1000.0

	// neutralRelevance is used when a post carries no precomputed
	// relevance data
	neutralRelevance = 0.5

	// simplexTolerance is how far a weight sum may drift from 1.0 before
	// the ranker reports renormalization
	simplexTolerance = 1e-6
)

// Ranker implements the feed.Ranker interface. Rank is a pure function of
// (posts, request, now); it holds no mutable state and may be called
// concurrently over corpus snapshots.
type Ranker struct {
	registry jot.Registry
	logger   *zap.Logger
	builder  *ExplanationBuilder
}

// NewRanker creates a new feed ranker
func NewRanker(registry jot.Registry, logger *zap.Logger) *Ranker {
	return &Ranker{
		registry: registry,
		logger:   logger,
		builder:  NewExplanationBuilder(),
	}
}

// Rank scores and orders the given posts per the request. An empty result
// after filtering is returned as an empty sequence, not an error.
func (r *Ranker) Rank(ctx context.Context, posts []feedDomain.Post, req feedDomain.ViewRequest, now time.Time) (*feedDomain.Result, error) {
	if err := req.Filter.Validate(); err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	if err := req.Weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid weights: %w", err)
	}

	filtered := r.applyFilters(posts, req.Filter, now)

	switch req.Filter.Algorithm {
	case feedDomain.AlgorithmChronological:
		// Order comes straight from timestamps. The recency-only score is
		// attached for display; sorting on it would let everything past the
		// decay horizon tie at zero.
		return r.rankScored(filtered, feedDomain.AlgorithmWeights{Recency: 1}, now, byCreatedAt, false, false)

	case feedDomain.AlgorithmEngagement:
		// Raw interaction totals, not the saturating factor, so posts above
		// the saturation point still separate
		return r.rankScored(filtered, feedDomain.AlgorithmWeights{Engagement: 1}, now, byEngagementTotal, false, false)

	default:
		weights := req.Weights
		sum := weights.Sum()

		// All-zero weights score every post to zero. That is surfaced as
		// a diagnostic, not corrected: a silent chronological fallback
		// would hide the caller's configuration mistake.
		if sum == 0 {
			return r.rankScored(filtered, weights, now, byTotalScore, false, true)
		}

		normalized := math.Abs(sum-1.0) > simplexTolerance
		return r.rankScored(filtered, weights.Normalized(), now, byTotalScore, normalized, false)
	}
}

// applyFilters drops posts outside the enabled content types and the
// requested time range.
func (r *Ranker) applyFilters(posts []feedDomain.Post, filter feedDomain.Filter, now time.Time) []feedDomain.Post {
	lookback, bounded := filter.TimeRange.Lookback()
	cutoff := now.Add(-lookback)

	var filtered []feedDomain.Post
	for _, p := range posts {
		if !filter.AllowsType(p.Type) {
			continue
		}
		if bounded && !p.CreatedAt.After(cutoff) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

// byTotalScore orders by composite score, highest first
func byTotalScore(a, b feedDomain.ScoredPost) bool {
	return a.Score.TotalScore > b.Score.TotalScore
}

// byCreatedAt orders newest first
func byCreatedAt(a, b feedDomain.ScoredPost) bool {
	return a.Post.CreatedAt.After(b.Post.CreatedAt)
}

// byEngagementTotal orders by raw likes+comments+shares, highest first
func byEngagementTotal(a, b feedDomain.ScoredPost) bool {
	return a.Post.EngagementTotal() > b.Post.EngagementTotal()
}

// rankScored computes a score artifact per post and sorts by the given
// comparator. The sort is stable, so ties keep corpus order and output is
// deterministic for a fixed input.
func (r *Ranker) rankScored(
	posts []feedDomain.Post,
	weights feedDomain.AlgorithmWeights,
	now time.Time,
	less func(a, b feedDomain.ScoredPost) bool,
	normalized bool,
	zeroWeights bool,
) (*feedDomain.Result, error) {
	scored := make([]feedDomain.ScoredPost, 0, len(posts))

	for _, p := range posts {
		author, ok := r.registry.Get(p.AuthorID)
		if !ok {
			// A single corrupt post must not take down the whole feed
			r.logger.Warn("skipping post with unknown author",
				zap.String("post_id", p.ID),
				zap.String("author_id", p.AuthorID),
			)
			continue
		}

		score := r.scorePost(p, author, weights, now)
		scored = append(scored, feedDomain.ScoredPost{Post: p, Score: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return less(scored[i], scored[j])
	})

	return &feedDomain.Result{
		Posts:             scored,
		WeightsNormalized: normalized,
		ZeroWeights:       zeroWeights,
	}, nil
}

// scorePost computes the composite score for one post. Each factor output is
// normalized into [0,1] before weighting, so the weighted contributions sum
// exactly to the total.
func (r *Ranker) scorePost(p feedDomain.Post, author *jot.Jot, weights feedDomain.AlgorithmWeights, now time.Time) feedDomain.AlgorithmScore {
	hoursSince := now.Sub(p.CreatedAt).Hours()

	recency := math.Max(0, 1-hoursSince/recencyHorizonHours)
	engagement := math.Min(1, float64(p.EngagementTotal())/engagementSaturation)
	relevance := relevanceFor(p)
	diversity := diversityFor(p.Type)
	social := socialFor(author)

	factors := []feedDomain.Factor{
		{
			Name:         "Recency",
			Weight:       weights.Recency,
			Contribution: weights.Recency * recency,
			Description:  fmt.Sprintf("Posted %.0f hours ago", hoursSince),
		},
		{
			Name:         "Engagement",
			Weight:       weights.Engagement,
			Contribution: weights.Engagement * engagement,
			Description:  fmt.Sprintf("%d total interactions", p.EngagementTotal()),
		},
		{
			Name:         "Relevance",
			Weight:       weights.Relevance,
			Contribution: weights.Relevance * relevance,
			Description:  "Estimated match with your interests",
		},
		{
			Name:         "Diversity",
			Weight:       weights.Diversity,
			Contribution: weights.Diversity * diversity,
			Description:  fmt.Sprintf("Adds %s content to your feed", p.Type),
		},
		{
			Name:         "Social Signals",
			Weight:       weights.SocialSignals,
			Contribution: weights.SocialSignals * social,
			Description:  socialDescription(author),
		},
	}

	var total float64
	for _, f := range factors {
		total += f.Contribution
	}

	explanation, confidence := r.builder.Build(factors, total)

	return feedDomain.AlgorithmScore{
		TotalScore:  total,
		Confidence:  confidence,
		Explanation: explanation,
		Factors:     factors,
	}
}

// relevanceFor reads the precomputed relevance proxy off a post's authored
// scoring data. Computing true relevance would need a learned model; the
// stored contribution stands in for it, with a neutral default when absent.
func relevanceFor(p feedDomain.Post) float64 {
	if f, ok := p.Score.FactorByName("Relevance"); ok {
		return jot.Clamp(f.Contribution, 0, 1)
	}
	return neutralRelevance
}

// diversityFor rewards non-text formats to avoid feed monotony
func diversityFor(ct jot.ContentType) float64 {
	switch ct {
	case jot.ContentThread:
		return 0.8
	case jot.ContentVideo:
		return 0.9
	default:
		return 0.7
	}
}

// socialFor scores the author's standing
func socialFor(author *jot.Jot) float64 {
	if author.Verified {
		return 0.8
	}
	return 0.5
}

func socialDescription(author *jot.Jot) string {
	if author.Verified {
		return "From a verified account"
	}
	return "From a standard account"
}
