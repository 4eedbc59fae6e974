// internal/service/corpus/corpus.go

package corpus

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

// CorpusConfig contains configuration for the content corpus
type CorpusConfig struct {
	EventsTopic string
}

// Corpus implements the feed.Corpus interface as an in-memory collection.
// Simulation steps are the single writer; rankers read copy-on-write
// snapshots, so reads never block behind an in-progress append.
type Corpus struct {
	mu       sync.RWMutex
	posts    []feed.Post
	byID     map[string]int
	byAuthor map[string][]int
	eventBus *nats.Conn
	config   CorpusConfig
}

// NewCorpus creates a corpus pre-populated with the given seed posts
func NewCorpus(seed []feed.Post, eventBus *nats.Conn, config CorpusConfig) *Corpus {
	c := &Corpus{
		byID:     make(map[string]int),
		byAuthor: make(map[string][]int),
		eventBus: eventBus,
		config:   config,
	}

	for _, p := range seed {
		c.append(p)
	}

	return c
}

// Add appends a post to the corpus and publishes a post-created event
func (c *Corpus) Add(ctx context.Context, p feed.Post) error {
	if p.ID == "" {
		return fmt.Errorf("post has no ID")
	}

	c.mu.Lock()
	if _, exists := c.byID[p.ID]; exists {
		c.mu.Unlock()
		return fmt.Errorf("post %s already in corpus", p.ID)
	}
	c.append(p)
	c.mu.Unlock()

	if err := c.publishPostCreated(p); err != nil {
		// Event delivery is best-effort; the corpus itself is consistent
		return nil
	}

	return nil
}

// append stores a post; callers hold the write lock (or own the corpus
// exclusively during construction).
func (c *Corpus) append(p feed.Post) {
	idx := len(c.posts)
	c.posts = append(c.posts, p)
	c.byID[p.ID] = idx
	c.byAuthor[p.AuthorID] = append(c.byAuthor[p.AuthorID], idx)
}

// Get returns a post by ID
func (c *Corpus) Get(ctx context.Context, id string) (*feed.Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok {
		return nil, fmt.Errorf("post %s not found", id)
	}

	p := c.posts[idx]
	return &p, nil
}

// ByAuthor returns every post by the given author in insertion order
func (c *Corpus) ByAuthor(ctx context.Context, authorID string) ([]feed.Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	indices := c.byAuthor[authorID]
	posts := make([]feed.Post, 0, len(indices))
	for _, idx := range indices {
		posts = append(posts, c.posts[idx])
	}

	return posts, nil
}

// Snapshot returns an immutable copy of the corpus in insertion order
func (c *Corpus) Snapshot(ctx context.Context) ([]feed.Post, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	posts := make([]feed.Post, len(c.posts))
	copy(posts, c.posts)

	return posts, nil
}

// Len returns the number of posts in the corpus
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.posts)
}

// publishPostCreated publishes a post-created event to the event bus
func (c *Corpus) publishPostCreated(p feed.Post) error {
	if c.eventBus == nil {
		return nil
	}

	data, err := json.Marshal(map[string]interface{}{
		"id":         p.ID,
		"author_id":  p.AuthorID,
		"type":       string(p.Type),
		"content":    p.Content,
		"created_at": p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("error marshaling post event: %w", err)
	}

	topic := fmt.Sprintf("%s.post.created", c.config.EventsTopic)
	return c.eventBus.Publish(topic, data)
}

// FromAction converts a create_post simulation action into a post. Initial
// engagement counters are simulated small values, matching how seeded
// content carries static counters.
func FromAction(a jot.Action, rng jot.Rand) (feed.Post, bool) {
	if a.Type != jot.ActionCreatePost || a.Content == "" {
		return feed.Post{}, false
	}

	contentType := jot.ContentText
	if a.Context.Template != nil {
		contentType = a.Context.Template.Type
	}

	return feed.Post{
		ID:        uuid.New().String(),
		AuthorID:  a.JotID,
		Type:      contentType,
		Content:   a.Content,
		Likes:     rng.Intn(50),
		Comments:  rng.Intn(20),
		Shares:    rng.Intn(10),
		CreatedAt: a.Timestamp,
	}, true
}
