package feed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	feedDomain "jotfeed/internal/domain/feed"
	feedService "jotfeed/internal/service/feed"
)

func TestExplanationDominantFactor(t *testing.T) {
	builder := feedService.NewExplanationBuilder()

	factors := []feedDomain.Factor{
		{Name: "Recency", Weight: 0.2, Contribution: 0.1, Description: "Posted 3 hours ago"},
		{Name: "Engagement", Weight: 0.4, Contribution: 0.35, Description: "420 total interactions"},
		{Name: "Relevance", Weight: 0.2, Contribution: 0.1, Description: "Estimated match with your interests"},
		{Name: "Diversity", Weight: 0.1, Contribution: 0.07, Description: "Adds text content to your feed"},
		{Name: "Social Signals", Weight: 0.1, Contribution: 0.05, Description: "From a verified account"},
	}

	explanation, confidence := builder.Build(factors, 0.67)

	assert.Equal(t, "Popular with other readers", explanation.Primary)
	require.Len(t, explanation.Secondary, 5)
	assert.Contains(t, explanation.Secondary, "420 total interactions")
	assert.NotEmpty(t, explanation.Reasoning)
	assert.Contains(t, explanation.Reasoning, "engagement")

	// Confidence is the dominant factor's share of the total
	assert.InDelta(t, 0.35/0.67, confidence, 1e-9)
}

func TestExplanationConfidenceBounds(t *testing.T) {
	builder := feedService.NewExplanationBuilder()

	// A single contributing factor concentrates all confidence
	factors := []feedDomain.Factor{
		{Name: "Recency", Weight: 1, Contribution: 0.8, Description: "Posted recently"},
	}

	_, confidence := builder.Build(factors, 0.8)
	assert.InDelta(t, 1.0, confidence, 1e-9)
	assert.LessOrEqual(t, confidence, 1.0)
}

func TestExplanationZeroTotal(t *testing.T) {
	builder := feedService.NewExplanationBuilder()

	factors := []feedDomain.Factor{
		{Name: "Recency", Weight: 0, Contribution: 0},
	}

	explanation, confidence := builder.Build(factors, 0)
	assert.Equal(t, "No ranking signal available", explanation.Primary)
	assert.Equal(t, 0.0, confidence)
}

func TestExplanationNoFactors(t *testing.T) {
	builder := feedService.NewExplanationBuilder()

	explanation, confidence := builder.Build(nil, 0.5)
	assert.Equal(t, "No ranking signal available", explanation.Primary)
	assert.Equal(t, 0.0, confidence)
}

func TestExplanationUnknownDominantFactor(t *testing.T) {
	builder := feedService.NewExplanationBuilder()

	factors := []feedDomain.Factor{
		{Name: "Novelty", Weight: 1, Contribution: 0.4, Description: "Brand new topic"},
	}

	explanation, _ := builder.Build(factors, 0.4)
	assert.Equal(t, "Strong novelty signal", explanation.Primary)
}
