package corpus_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
	"jotfeed/internal/service/corpus"
)

type fakeRand struct {
	f float64
	i int
}

func (r fakeRand) Float64() float64 { return r.f }
func (r fakeRand) Intn(n int) int   { return r.i % n }

func newTestCorpus(seed []feed.Post) *corpus.Corpus {
	return corpus.NewCorpus(seed, nil, corpus.CorpusConfig{EventsTopic: "jot"})
}

func TestCorpusAddAndGet(t *testing.T) {
	c := newTestCorpus(nil)
	ctx := context.Background()

	p := feed.Post{ID: "p-1", AuthorID: "jot-1", Type: jot.ContentText, Content: "hello"}
	require.NoError(t, c.Add(ctx, p))

	got, err := c.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "hello", got.Content)

	_, err = c.Get(ctx, "p-2")
	assert.Error(t, err)
}

func TestCorpusRejectsDuplicatesAndEmptyIDs(t *testing.T) {
	c := newTestCorpus(nil)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, feed.Post{ID: "p-1", AuthorID: "jot-1"}))
	assert.Error(t, c.Add(ctx, feed.Post{ID: "p-1", AuthorID: "jot-1"}))
	assert.Error(t, c.Add(ctx, feed.Post{AuthorID: "jot-1"}))
	assert.Equal(t, 1, c.Len())
}

func TestCorpusByAuthor(t *testing.T) {
	c := newTestCorpus(nil)
	ctx := context.Background()

	require.NoError(t, c.Add(ctx, feed.Post{ID: "p-1", AuthorID: "jot-1"}))
	require.NoError(t, c.Add(ctx, feed.Post{ID: "p-2", AuthorID: "jot-2"}))
	require.NoError(t, c.Add(ctx, feed.Post{ID: "p-3", AuthorID: "jot-1"}))

	posts, err := c.ByAuthor(ctx, "jot-1")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "p-1", posts[0].ID)
	assert.Equal(t, "p-3", posts[1].ID)

	none, err := c.ByAuthor(ctx, "jot-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCorpusSnapshotIsolation(t *testing.T) {
	c := newTestCorpus([]feed.Post{{ID: "p-1", AuthorID: "jot-1", Content: "original"}})
	ctx := context.Background()

	snap, err := c.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snap, 1)

	// Mutating the snapshot must not leak back into the corpus
	snap[0].Content = "mutated"

	got, err := c.Get(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "original", got.Content)

	// Later appends do not show up in earlier snapshots
	require.NoError(t, c.Add(ctx, feed.Post{ID: "p-2", AuthorID: "jot-1"}))
	assert.Len(t, snap, 1)
}

func TestFromAction(t *testing.T) {
	ts := time.Now()
	a := jot.Action{
		ID:        "action-1",
		Type:      jot.ActionCreatePost,
		JotID:     "jot-3",
		Timestamp: ts,
		Content:   "generated body",
		Context: jot.ActionContext{
			Template: &jot.ContentTemplate{Type: jot.ContentText},
		},
	}

	p, ok := corpus.FromAction(a, fakeRand{i: 3})
	require.True(t, ok)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "jot-3", p.AuthorID)
	assert.Equal(t, jot.ContentText, p.Type)
	assert.Equal(t, "generated body", p.Content)
	assert.Equal(t, ts, p.CreatedAt)

	assert.Less(t, p.Likes, 50)
	assert.Less(t, p.Comments, 20)
	assert.Less(t, p.Shares, 10)
}

func TestFromActionIgnoresNonPosts(t *testing.T) {
	_, ok := corpus.FromAction(jot.Action{Type: jot.ActionEngageWithPost}, fakeRand{})
	assert.False(t, ok)

	_, ok = corpus.FromAction(jot.Action{Type: jot.ActionCreatePost, Content: ""}, fakeRand{})
	assert.False(t, ok)
}

func TestSeedPosts(t *testing.T) {
	now := time.Now()
	posts := corpus.SeedPosts(now)
	require.NotEmpty(t, posts)

	seen := make(map[string]bool)
	for _, p := range posts {
		assert.False(t, seen[p.ID], "duplicate seed ID %s", p.ID)
		seen[p.ID] = true

		assert.NotEmpty(t, p.AuthorID)
		assert.NotEmpty(t, p.Content)
		assert.True(t, p.CreatedAt.Before(now))
	}
}

func TestSeedPostsCarryRelevanceData(t *testing.T) {
	posts := corpus.SeedPosts(time.Now())

	var withRelevance, without int
	for _, p := range posts {
		if _, ok := p.Score.FactorByName("Relevance"); ok {
			withRelevance++
		} else {
			without++
		}
	}

	// Both the authored-score path and the neutral default path need
	// representation in the seed corpus
	assert.Greater(t, withRelevance, 0)
	assert.Greater(t, without, 0)
}

func TestSeedPostsLoadIntoCorpus(t *testing.T) {
	posts := corpus.SeedPosts(time.Now())
	c := newTestCorpus(posts)

	assert.Equal(t, len(posts), c.Len())

	snap, err := c.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(posts), len(snap))
}
