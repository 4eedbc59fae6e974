package feed_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

func TestWeightsSum(t *testing.T) {
	w := feed.AlgorithmWeights{
		Recency:       0.3,
		Engagement:    0.25,
		Relevance:     0.25,
		Diversity:     0.1,
		SocialSignals: 0.1,
	}
	assert.InDelta(t, 1.0, w.Sum(), 1e-9)
}

func TestWeightsValidate(t *testing.T) {
	assert.NoError(t, feed.AlgorithmWeights{Recency: 0.5}.Validate())
	assert.NoError(t, feed.AlgorithmWeights{}.Validate())
	assert.Error(t, feed.AlgorithmWeights{Diversity: -0.1}.Validate())
}

func TestWeightsNormalized(t *testing.T) {
	w := feed.AlgorithmWeights{Recency: 2, Engagement: 2}
	n := w.Normalized()
	assert.InDelta(t, 1.0, n.Sum(), 1e-9)
	assert.InDelta(t, 0.5, n.Recency, 1e-9)
	assert.InDelta(t, 0.5, n.Engagement, 1e-9)
}

func TestWeightsNormalizedZeroSum(t *testing.T) {
	// Zero weights pass through unchanged; callers detect the case via Sum
	w := feed.AlgorithmWeights{}
	assert.Equal(t, w, w.Normalized())
}

func TestTimeRangeLookback(t *testing.T) {
	cases := []struct {
		r       feed.TimeRange
		d       time.Duration
		bounded bool
	}{
		{feed.RangeHour, time.Hour, true},
		{feed.RangeDay, 24 * time.Hour, true},
		{feed.RangeWeek, 7 * 24 * time.Hour, true},
		{feed.RangeMonth, 30 * 24 * time.Hour, true},
		{feed.RangeAll, 0, false},
	}

	for _, c := range cases {
		d, bounded := c.r.Lookback()
		assert.Equal(t, c.d, d)
		assert.Equal(t, c.bounded, bounded)
	}
}

func TestFilterValidate(t *testing.T) {
	valid := feed.Filter{
		Algorithm:    feed.AlgorithmPersonalized,
		TimeRange:    feed.RangeWeek,
		ContentTypes: []jot.ContentType{jot.ContentText},
	}
	assert.NoError(t, valid.Validate())

	badAlgo := valid
	badAlgo.Algorithm = "reverse_chronological"
	assert.Error(t, badAlgo.Validate())

	badRange := valid
	badRange.TimeRange = "fortnight"
	assert.Error(t, badRange.Validate())

	badType := valid
	badType.ContentTypes = []jot.ContentType{"hologram"}
	assert.Error(t, badType.Validate())
}

func TestFilterAllowsType(t *testing.T) {
	f := feed.Filter{ContentTypes: []jot.ContentType{jot.ContentText, jot.ContentImage}}
	assert.True(t, f.AllowsType(jot.ContentText))
	assert.False(t, f.AllowsType(jot.ContentVideo))

	empty := feed.Filter{}
	assert.False(t, empty.AllowsType(jot.ContentText))
}

func TestFactorByName(t *testing.T) {
	s := &feed.AlgorithmScore{
		Factors: []feed.Factor{
			{Name: "Recency", Contribution: 0.2},
			{Name: "Relevance", Contribution: 0.3},
		},
	}

	f, ok := s.FactorByName("Relevance")
	require.True(t, ok)
	assert.Equal(t, 0.3, f.Contribution)

	_, ok = s.FactorByName("Novelty")
	assert.False(t, ok)
}

func TestFactorByNameNilScore(t *testing.T) {
	var s *feed.AlgorithmScore
	_, ok := s.FactorByName("Relevance")
	assert.False(t, ok)
}

func TestEngagementTotal(t *testing.T) {
	p := feed.Post{Likes: 10, Comments: 5, Shares: 2}
	assert.Equal(t, 17, p.EngagementTotal())
}
