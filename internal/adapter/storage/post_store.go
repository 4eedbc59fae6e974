// internal/adapter/storage/post_store.go

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

// PostStore persists feed posts. Nested structures (media, thread posts,
// news link, authored score) are stored as JSONB so the corpus shape can
// evolve without schema migrations.
type PostStore struct {
	db *pgxpool.Pool
}

// NewPostStore creates a new post store
func NewPostStore(db *pgxpool.Pool) *PostStore {
	return &PostStore{
		db: db,
	}
}

// SavePost saves a post to storage
func (s *PostStore) SavePost(ctx context.Context, p feed.Post) error {
	query := `
		INSERT INTO posts (
			id, author_id, type, content,
			media, thread_posts, news_link, authored_score,
			likes, comments, shares, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8,
			$9, $10, $11, $12
		)
		ON CONFLICT (id) DO UPDATE
		SET
			content = $4,
			media = $5,
			thread_posts = $6,
			news_link = $7,
			authored_score = $8,
			likes = $9,
			comments = $10,
			shares = $11
	`

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	mediaJSON, err := json.Marshal(p.Media)
	if err != nil {
		return fmt.Errorf("error marshaling media: %w", err)
	}

	threadJSON, err := json.Marshal(p.ThreadPosts)
	if err != nil {
		return fmt.Errorf("error marshaling thread posts: %w", err)
	}

	newsLinkJSON, err := json.Marshal(p.NewsLink)
	if err != nil {
		return fmt.Errorf("error marshaling news link: %w", err)
	}

	scoreJSON, err := json.Marshal(p.Score)
	if err != nil {
		return fmt.Errorf("error marshaling authored score: %w", err)
	}

	_, err = s.db.Exec(
		ctx,
		query,
		p.ID,
		p.AuthorID,
		string(p.Type),
		p.Content,
		mediaJSON,
		threadJSON,
		newsLinkJSON,
		scoreJSON,
		p.Likes,
		p.Comments,
		p.Shares,
		p.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// GetPost retrieves a post by ID
func (s *PostStore) GetPost(ctx context.Context, id string) (*feed.Post, error) {
	query := `
		SELECT
			id, author_id, type, content,
			media, thread_posts, news_link, authored_score,
			likes, comments, shares, created_at
		FROM posts
		WHERE id = $1
	`

	p, err := scanPost(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("error querying post: %w", err)
	}

	return p, nil
}

// ListPosts returns posts newest-first, bounded by limit
func (s *PostStore) ListPosts(ctx context.Context, limit int) ([]feed.Post, error) {
	query := `
		SELECT
			id, author_id, type, content,
			media, thread_posts, news_link, authored_score,
			likes, comments, shares, created_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := s.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []feed.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// ListPostsByAuthor returns one author's posts, newest-first
func (s *PostStore) ListPostsByAuthor(ctx context.Context, authorID string, limit int) ([]feed.Post, error) {
	query := `
		SELECT
			id, author_id, type, content,
			media, thread_posts, news_link, authored_score,
			likes, comments, shares, created_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := s.db.Query(ctx, query, authorID, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var posts []feed.Post
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning post: %w", err)
		}
		posts = append(posts, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// rowScanner covers pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPost reads one post row, decoding the JSONB columns
func scanPost(row rowScanner) (*feed.Post, error) {
	var p feed.Post
	var postType string
	var mediaJSON, threadJSON, newsLinkJSON, scoreJSON []byte

	err := row.Scan(
		&p.ID,
		&p.AuthorID,
		&postType,
		&p.Content,
		&mediaJSON,
		&threadJSON,
		&newsLinkJSON,
		&scoreJSON,
		&p.Likes,
		&p.Comments,
		&p.Shares,
		&p.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	p.Type = jot.ContentType(postType)

	if err := json.Unmarshal(mediaJSON, &p.Media); err != nil {
		return nil, fmt.Errorf("error unmarshaling media: %w", err)
	}

	if err := json.Unmarshal(threadJSON, &p.ThreadPosts); err != nil {
		return nil, fmt.Errorf("error unmarshaling thread posts: %w", err)
	}

	if err := json.Unmarshal(newsLinkJSON, &p.NewsLink); err != nil {
		return nil, fmt.Errorf("error unmarshaling news link: %w", err)
	}

	if err := json.Unmarshal(scoreJSON, &p.Score); err != nil {
		return nil, fmt.Errorf("error unmarshaling authored score: %w", err)
	}

	return &p, nil
}
