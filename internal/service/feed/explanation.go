// internal/service/feed/explanation.go

package feed

import (
	"fmt"
	"strings"

	feedDomain "jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

// primaryReasons maps the dominant factor to a one-line reason shown at the
// top of a score explanation.
var primaryReasons = map[string]string{
	"Recency":        "Posted recently",
	"Engagement":     "Popular with other readers",
	"Relevance":      "High relevance to your interests",
	"Diversity":      "Adds variety to your feed",
	"Social Signals": "From an account with strong standing",
}

// ExplanationBuilder turns raw per-factor contributions into the structured,
// human-readable rationale attached to every score.
type ExplanationBuilder struct{}

// NewExplanationBuilder creates a new explanation builder
func NewExplanationBuilder() *ExplanationBuilder {
	return &ExplanationBuilder{}
}

// Build assembles an explanation from the scored factors and derives a
// confidence value. Confidence measures how concentrated the score is in its
// dominant factor: a score driven by one strong factor reads as a confident
// recommendation, an even spread does not. It is always within [0,1].
func (b *ExplanationBuilder) Build(factors []feedDomain.Factor, total float64) (feedDomain.Explanation, float64) {
	if len(factors) == 0 || total <= 0 {
		return feedDomain.Explanation{
			Primary:   "No ranking signal available",
			Reasoning: "This post did not accumulate any scoring signal under the current weights.",
		}, 0
	}

	dominant := factors[0]
	for _, f := range factors[1:] {
		if f.Contribution > dominant.Contribution {
			dominant = f
		}
	}

	secondary := make([]string, 0, len(factors))
	for _, f := range factors {
		secondary = append(secondary, f.Description)
	}

	primary, ok := primaryReasons[dominant.Name]
	if !ok {
		primary = fmt.Sprintf("Strong %s signal", strings.ToLower(dominant.Name))
	}

	confidence := jot.Clamp(dominant.Contribution/total, 0, 1)

	return feedDomain.Explanation{
		Primary:   primary,
		Secondary: secondary,
		Reasoning: b.reasoning(dominant, factors, total),
	}, confidence
}

// reasoning writes the free-text paragraph for an explanation
func (b *ExplanationBuilder) reasoning(dominant feedDomain.Factor, factors []feedDomain.Factor, total float64) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "This post scored %.2f, driven mostly by its %s factor (%.2f of the total). ",
		total, strings.ToLower(dominant.Name), dominant.Contribution)

	var supporting []string
	for _, f := range factors {
		if f.Name == dominant.Name || f.Contribution <= 0 {
			continue
		}
		supporting = append(supporting, fmt.Sprintf("%s (%.2f)", strings.ToLower(f.Name), f.Contribution))
	}

	if len(supporting) > 0 {
		fmt.Fprintf(&sb, "Supporting factors: %s.", strings.Join(supporting, ", "))
	} else {
		sb.WriteString("No other factor contributed under the current weights.")
	}

	return sb.String()
}
