package feed

import (
	"context"
	"time"
)

// Corpus is the full addressable collection of posts available for ranking
type Corpus interface {
	// Add appends a post to the corpus
	Add(ctx context.Context, p Post) error

	// Get returns a post by ID
	Get(ctx context.Context, id string) (*Post, error)

	// ByAuthor returns every post by the given author
	ByAuthor(ctx context.Context, authorID string) ([]Post, error)

	// Snapshot returns an immutable copy of the corpus in insertion order.
	// Rankers operate on snapshots so simulation steps can append posts
	// concurrently with ranking reads.
	Snapshot(ctx context.Context) ([]Post, error)
}

// Ranker orders a corpus snapshot for a viewer
type Ranker interface {
	// Rank scores and orders the given posts per the request. The now
	// argument is captured once per call so every post in one request is
	// compared against the same instant.
	Rank(ctx context.Context, posts []Post, req ViewRequest, now time.Time) (*Result, error)
}
