package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	feedDomain "jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
	feedService "jotfeed/internal/service/feed"
)

type stubRegistry struct {
	jots map[string]*jot.Jot
}

func (r *stubRegistry) Get(id string) (*jot.Jot, bool) {
	j, ok := r.jots[id]
	return j, ok
}

func (r *stubRegistry) All() []*jot.Jot {
	jots := make([]*jot.Jot, 0, len(r.jots))
	for _, j := range r.jots {
		jots = append(jots, j)
	}
	return jots
}

func testRegistry() *stubRegistry {
	return &stubRegistry{jots: map[string]*jot.Jot{
		"jot-a": {ID: "jot-a", Username: "alice", Verified: true},
		"jot-b": {ID: "jot-b", Username: "bob", Verified: false},
	}}
}

func newTestRanker() *feedService.Ranker {
	return feedService.NewRanker(testRegistry(), zap.NewNop())
}

func allTypes() []jot.ContentType {
	return []jot.ContentType{jot.ContentText, jot.ContentImage, jot.ContentVideo, jot.ContentThread}
}

func textPost(id, author string, age time.Duration, now time.Time) feedDomain.Post {
	return feedDomain.Post{
		ID:        id,
		AuthorID:  author,
		Type:      jot.ContentText,
		Content:   "post " + id,
		CreatedAt: now.Add(-age),
	}
}

func evenWeights() feedDomain.AlgorithmWeights {
	return feedDomain.AlgorithmWeights{
		Recency:       0.2,
		Engagement:    0.2,
		Relevance:     0.2,
		Diversity:     0.2,
		SocialSignals: 0.2,
	}
}

func personalizedRequest(weights feedDomain.AlgorithmWeights) feedDomain.ViewRequest {
	return feedDomain.ViewRequest{
		Weights: weights,
		Filter: feedDomain.Filter{
			Algorithm:    feedDomain.AlgorithmPersonalized,
			TimeRange:    feedDomain.RangeAll,
			ContentTypes: allTypes(),
		},
	}
}

func TestRankChronological(t *testing.T) {
	now := time.Now()
	posts := []feedDomain.Post{
		textPost("A", "jot-a", 1*time.Hour, now),
		textPost("B", "jot-b", 30*time.Minute, now),
		textPost("C", "jot-a", 2*time.Hour, now),
	}

	req := feedDomain.ViewRequest{
		Filter: feedDomain.Filter{
			Algorithm:    feedDomain.AlgorithmChronological,
			TimeRange:    feedDomain.RangeAll,
			ContentTypes: allTypes(),
		},
	}

	result, err := newTestRanker().Rank(context.Background(), posts, req, now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 3)

	assert.Equal(t, "B", result.Posts[0].Post.ID)
	assert.Equal(t, "A", result.Posts[1].Post.ID)
	assert.Equal(t, "C", result.Posts[2].Post.ID)

	assert.False(t, result.WeightsNormalized)
	assert.False(t, result.ZeroWeights)
}

func TestRankChronologicalBeyondRecencyHorizon(t *testing.T) {
	now := time.Now()

	// Both posts are past the recency decay window, so their recency
	// factors tie at zero. Chronological order must still hold.
	older := textPost("older", "jot-a", 400*time.Hour, now)
	newer := textPost("newer", "jot-b", 200*time.Hour, now)

	req := feedDomain.ViewRequest{
		Filter: feedDomain.Filter{
			Algorithm:    feedDomain.AlgorithmChronological,
			TimeRange:    feedDomain.RangeAll,
			ContentTypes: allTypes(),
		},
	}

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{older, newer}, req, now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)

	assert.Equal(t, "newer", result.Posts[0].Post.ID)
	assert.Equal(t, "older", result.Posts[1].Post.ID)
}

func TestRankEngagement(t *testing.T) {
	now := time.Now()

	a := textPost("A", "jot-a", 1*time.Hour, now)
	a.Likes = 5
	b := textPost("B", "jot-b", 1*time.Hour, now)
	b.Likes = 100
	c := textPost("C", "jot-a", 1*time.Hour, now)
	c.Likes = 30

	req := feedDomain.ViewRequest{
		Filter: feedDomain.Filter{
			Algorithm:    feedDomain.AlgorithmEngagement,
			TimeRange:    feedDomain.RangeAll,
			ContentTypes: allTypes(),
		},
	}

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{a, b, c}, req, now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 3)

	assert.Equal(t, "B", result.Posts[0].Post.ID)
	assert.Equal(t, "C", result.Posts[1].Post.ID)
	assert.Equal(t, "A", result.Posts[2].Post.ID)
}

func TestRankEngagementAboveSaturation(t *testing.T) {
	now := time.Now()

	// Both posts exceed the engagement factor's saturation point, where
	// the factor tops out at 1.0. Engagement mode must still order them
	// by their raw interaction totals.
	lower := textPost("lower", "jot-a", 1*time.Hour, now)
	lower.Likes = 1282
	higher := textPost("higher", "jot-b", 1*time.Hour, now)
	higher.Likes = 1390

	req := feedDomain.ViewRequest{
		Filter: feedDomain.Filter{
			Algorithm:    feedDomain.AlgorithmEngagement,
			TimeRange:    feedDomain.RangeAll,
			ContentTypes: allTypes(),
		},
	}

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{lower, higher}, req, now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)

	assert.Equal(t, "higher", result.Posts[0].Post.ID)
	assert.Equal(t, "lower", result.Posts[1].Post.ID)
}

func TestRankEngagementSaturation(t *testing.T) {
	now := time.Now()
	p := textPost("A", "jot-a", 1*time.Hour, now)
	p.Likes = 5000

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{p}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)

	f, ok := result.Posts[0].Score.FactorByName("Engagement")
	require.True(t, ok)
	assert.InDelta(t, 0.2*1.0, f.Contribution, 1e-9)
}

func TestRankRecencyDecay(t *testing.T) {
	now := time.Now()
	fresh := textPost("fresh", "jot-a", 0, now)
	stale := textPost("stale", "jot-a", 169*time.Hour, now)

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{fresh, stale}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)

	for _, sp := range result.Posts {
		f, ok := sp.Score.FactorByName("Recency")
		require.True(t, ok)

		switch sp.Post.ID {
		case "fresh":
			assert.InDelta(t, 0.2*1.0, f.Contribution, 1e-9)
		case "stale":
			// Past the decay horizon recency bottoms out at zero
			assert.Equal(t, 0.0, f.Contribution)
		}
	}
}

func TestRankRelevanceProxy(t *testing.T) {
	now := time.Now()

	withScore := textPost("scored", "jot-a", 1*time.Hour, now)
	withScore.Score = &feedDomain.AlgorithmScore{
		Factors: []feedDomain.Factor{
			{Name: "Relevance", Weight: 0.3, Contribution: 0.28},
		},
	}
	plain := textPost("plain", "jot-a", 1*time.Hour, now)

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{withScore, plain}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 2)

	for _, sp := range result.Posts {
		f, ok := sp.Score.FactorByName("Relevance")
		require.True(t, ok)

		switch sp.Post.ID {
		case "scored":
			assert.InDelta(t, 0.2*0.28, f.Contribution, 1e-9)
		case "plain":
			// No authored relevance data falls back to the neutral 0.5
			assert.InDelta(t, 0.2*0.5, f.Contribution, 1e-9)
		}
	}
}

func TestRankDiversityByType(t *testing.T) {
	now := time.Now()

	text := textPost("text", "jot-a", 1*time.Hour, now)
	video := textPost("video", "jot-a", 1*time.Hour, now)
	video.Type = jot.ContentVideo
	thread := textPost("thread", "jot-a", 1*time.Hour, now)
	thread.Type = jot.ContentThread

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{text, video, thread}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)

	expected := map[string]float64{"text": 0.7, "video": 0.9, "thread": 0.8}
	for _, sp := range result.Posts {
		f, ok := sp.Score.FactorByName("Diversity")
		require.True(t, ok)
		assert.InDelta(t, 0.2*expected[sp.Post.ID], f.Contribution, 1e-9)
	}
}

func TestRankSocialSignals(t *testing.T) {
	now := time.Now()

	verified := textPost("verified", "jot-a", 1*time.Hour, now)
	standard := textPost("standard", "jot-b", 1*time.Hour, now)

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{verified, standard}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)

	expected := map[string]float64{"verified": 0.8, "standard": 0.5}
	for _, sp := range result.Posts {
		f, ok := sp.Score.FactorByName("Social Signals")
		require.True(t, ok)
		assert.InDelta(t, 0.2*expected[sp.Post.ID], f.Contribution, 1e-9)
	}
}

func TestRankTotalIsSumOfContributions(t *testing.T) {
	now := time.Now()
	p := textPost("A", "jot-a", 3*time.Hour, now)
	p.Likes = 250

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{p}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)

	score := result.Posts[0].Score
	require.Len(t, score.Factors, 5)

	var sum float64
	for _, f := range score.Factors {
		sum += f.Contribution
	}
	assert.InDelta(t, score.TotalScore, sum, 1e-9)

	assert.GreaterOrEqual(t, score.Confidence, 0.0)
	assert.LessOrEqual(t, score.Confidence, 1.0)
	assert.NotEmpty(t, score.Explanation.Primary)
	assert.Len(t, score.Explanation.Secondary, 5)
	assert.NotEmpty(t, score.Explanation.Reasoning)
}

func TestRankZeroWeights(t *testing.T) {
	now := time.Now()
	posts := []feedDomain.Post{
		textPost("A", "jot-a", 1*time.Hour, now),
		textPost("B", "jot-b", 2*time.Hour, now),
	}

	result, err := newTestRanker().Rank(context.Background(), posts, personalizedRequest(feedDomain.AlgorithmWeights{}), now)
	require.NoError(t, err)

	assert.True(t, result.ZeroWeights)
	require.Len(t, result.Posts, 2)

	// All scores are zero and corpus order is preserved
	assert.Equal(t, "A", result.Posts[0].Post.ID)
	assert.Equal(t, "B", result.Posts[1].Post.ID)
	for _, sp := range result.Posts {
		assert.Equal(t, 0.0, sp.Score.TotalScore)
		assert.Equal(t, 0.0, sp.Score.Confidence)
	}
}

func TestRankRenormalizesWeights(t *testing.T) {
	now := time.Now()
	p := textPost("A", "jot-a", 1*time.Hour, now)

	weights := feedDomain.AlgorithmWeights{Recency: 2, Engagement: 2}
	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{p}, personalizedRequest(weights), now)
	require.NoError(t, err)

	assert.True(t, result.WeightsNormalized)

	f, ok := result.Posts[0].Score.FactorByName("Recency")
	require.True(t, ok)
	assert.InDelta(t, 0.5, f.Weight, 1e-9)
}

func TestRankOnSimplexWeightsNotFlagged(t *testing.T) {
	now := time.Now()
	p := textPost("A", "jot-a", 1*time.Hour, now)

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{p}, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)
	assert.False(t, result.WeightsNormalized)
	assert.False(t, result.ZeroWeights)
}

func TestRankSkipsUnknownAuthor(t *testing.T) {
	now := time.Now()
	posts := []feedDomain.Post{
		textPost("known", "jot-a", 1*time.Hour, now),
		textPost("orphan", "jot-missing", 1*time.Hour, now),
	}

	result, err := newTestRanker().Rank(context.Background(), posts, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "known", result.Posts[0].Post.ID)
}

func TestRankFiltersContentTypes(t *testing.T) {
	now := time.Now()

	text := textPost("text", "jot-a", 1*time.Hour, now)
	image := textPost("image", "jot-a", 1*time.Hour, now)
	image.Type = jot.ContentImage

	req := personalizedRequest(evenWeights())
	req.Filter.ContentTypes = []jot.ContentType{jot.ContentText}

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{text, image}, req, now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "text", result.Posts[0].Post.ID)
}

func TestRankFiltersTimeRange(t *testing.T) {
	now := time.Now()

	recent := textPost("recent", "jot-a", 2*time.Hour, now)
	old := textPost("old", "jot-a", 25*time.Hour, now)

	req := personalizedRequest(evenWeights())
	req.Filter.TimeRange = feedDomain.RangeDay

	result, err := newTestRanker().Rank(context.Background(), []feedDomain.Post{recent, old}, req, now)
	require.NoError(t, err)
	require.Len(t, result.Posts, 1)
	assert.Equal(t, "recent", result.Posts[0].Post.ID)
}

func TestRankEmptyCorpus(t *testing.T) {
	result, err := newTestRanker().Rank(context.Background(), nil, personalizedRequest(evenWeights()), time.Now())
	require.NoError(t, err)
	assert.Empty(t, result.Posts)
}

func TestRankDeterministic(t *testing.T) {
	now := time.Now()
	posts := []feedDomain.Post{
		textPost("A", "jot-a", 1*time.Hour, now),
		textPost("B", "jot-b", 2*time.Hour, now),
		textPost("C", "jot-a", 3*time.Hour, now),
	}
	posts[0].Likes = 40
	posts[1].Likes = 75
	posts[2].Likes = 75

	ranker := newTestRanker()
	first, err := ranker.Rank(context.Background(), posts, personalizedRequest(evenWeights()), now)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := ranker.Rank(context.Background(), posts, personalizedRequest(evenWeights()), now)
		require.NoError(t, err)
		require.Equal(t, len(first.Posts), len(again.Posts))
		for k := range first.Posts {
			assert.Equal(t, first.Posts[k].Post.ID, again.Posts[k].Post.ID)
			assert.Equal(t, first.Posts[k].Score.TotalScore, again.Posts[k].Score.TotalScore)
		}
	}
}

func TestRankRejectsInvalidRequests(t *testing.T) {
	ranker := newTestRanker()

	badAlgo := personalizedRequest(evenWeights())
	badAlgo.Filter.Algorithm = "trending"
	_, err := ranker.Rank(context.Background(), nil, badAlgo, time.Now())
	assert.Error(t, err)

	badWeights := personalizedRequest(feedDomain.AlgorithmWeights{Recency: -0.5})
	_, err = ranker.Rank(context.Background(), nil, badWeights, time.Now())
	assert.Error(t, err)
}
