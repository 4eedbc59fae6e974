package news

import (
	"context"
	"time"
)

// Article is one piece of external news delivered by a provider
type Article struct {
	ID               string
	Title            string
	Description      string
	URL              string
	ImageURL         string
	Source           string
	PublishedAt      time.Time
	Category         string
	ReadingTime      int     // estimated minutes
	CredibilityScore float64 // 0-1: source credibility
	PoliticalLean    float64 // -1 to 1: political bias
	EmotionalTone    float64 // -1 to 1: negative to positive
}

// Provider delivers external news articles. The HTTP fetch, retry and
// rate-limiting policy belongs to the provider; the core only consumes the
// resulting articles.
type Provider interface {
	// Fetch returns current articles, optionally restricted to a category
	Fetch(ctx context.Context, category string) ([]Article, error)
}
