// internal/service/news/provider.go

package news

import (
	"context"
	"time"

	"jotfeed/internal/domain/news"
)

// StaticProvider implements the news.Provider interface over a fixed article
// set. Real deployments would swap in a provider backed by a news API; the
// fetch/retry/rate-limit policy lives entirely behind the interface.
type StaticProvider struct {
	articles []news.Article
}

// NewStaticProvider creates a provider serving the built-in article set,
// with publication times anchored relative to now.
func NewStaticProvider(now time.Time) *StaticProvider {
	return &StaticProvider{
		articles: []news.Article{
			{
				ID:               "news-1",
				Title:            "AI Breakthrough: New Model Achieves Human-Level Performance in Complex Reasoning",
				Description:      "Researchers at leading tech companies announce a major breakthrough in artificial intelligence, with their latest model demonstrating unprecedented reasoning capabilities across multiple domains.",
				URL:              "https://example.com/ai-breakthrough",
				ImageURL:         "https://images.unsplash.com/photo-1677442136019-21780ecad995?w=600&h=400&fit=crop",
				Source:           "TechCrunch",
				PublishedAt:      now.Add(-2 * time.Hour),
				Category:         "technology",
				ReadingTime:      8,
				CredibilityScore: 0.92,
				PoliticalLean:    0.1,
				EmotionalTone:    0.2,
			},
			{
				ID:               "news-2",
				Title:            "Climate Action: Young Activists Launch Global Digital Campaign",
				Description:      "A new generation of climate activists is using social media and digital tools to organize the largest environmental movement in history.",
				URL:              "https://example.com/climate-youth-movement",
				ImageURL:         "https://images.unsplash.com/photo-1569163139394-de44aa4e71ba?w=600&h=400&fit=crop",
				Source:           "Environmental Post",
				PublishedAt:      now.Add(-4 * time.Hour),
				Category:         "environment",
				ReadingTime:      6,
				CredibilityScore: 0.85,
				PoliticalLean:    -0.2,
				EmotionalTone:    0.4,
			},
			{
				ID:               "news-3",
				Title:            "Gaming Industry Reaches New Heights with $200B Revenue",
				Description:      "The gaming industry continues its explosive growth, driven by mobile gaming and emerging technologies like VR and AR.",
				URL:              "https://example.com/gaming-industry-growth",
				ImageURL:         "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=600&h=400&fit=crop",
				Source:           "GameSpot",
				PublishedAt:      now.Add(-6 * time.Hour),
				Category:         "gaming",
				ReadingTime:      5,
				CredibilityScore: 0.88,
				PoliticalLean:    0.0,
				EmotionalTone:    0.5,
			},
			{
				ID:               "news-4",
				Title:            "Social Media Platforms Introduce New Mental Health Features",
				Description:      "Major social platforms announce comprehensive mental health initiatives designed specifically for teen users.",
				URL:              "https://example.com/social-media-mental-health",
				ImageURL:         "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?w=600&h=400&fit=crop",
				Source:           "Social Media Today",
				PublishedAt:      now.Add(-8 * time.Hour),
				Category:         "health",
				ReadingTime:      6,
				CredibilityScore: 0.90,
				PoliticalLean:    -0.1,
				EmotionalTone:    0.1,
			},
			{
				ID:               "news-5",
				Title:            "Space Exploration: Private Companies Plan Moon Base by 2030",
				Description:      "Several private space companies announce ambitious plans for permanent lunar settlements within the next decade.",
				URL:              "https://example.com/moon-base-2030",
				ImageURL:         "https://images.unsplash.com/photo-1446776877081-d282a0f896e2?w=600&h=400&fit=crop",
				Source:           "Space News",
				PublishedAt:      now.Add(-12 * time.Hour),
				Category:         "science",
				ReadingTime:      10,
				CredibilityScore: 0.87,
				PoliticalLean:    0.0,
				EmotionalTone:    0.6,
			},
			{
				ID:               "news-6",
				Title:            "Gen Z Entrepreneurs Break Records with Social Impact Startups",
				Description:      "Young entrepreneurs are creating businesses that prioritize social and environmental impact alongside profit.",
				URL:              "https://example.com/genz-social-startups",
				ImageURL:         "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?w=600&h=400&fit=crop",
				Source:           "Forbes",
				PublishedAt:      now.Add(-16 * time.Hour),
				Category:         "business",
				ReadingTime:      9,
				CredibilityScore: 0.83,
				PoliticalLean:    0.1,
				EmotionalTone:    0.3,
			},
		},
	}
}

// Fetch returns current articles, optionally restricted to a category
func (p *StaticProvider) Fetch(ctx context.Context, category string) ([]news.Article, error) {
	if category == "" {
		articles := make([]news.Article, len(p.articles))
		copy(articles, p.articles)
		return articles, nil
	}

	var filtered []news.Article
	for _, a := range p.articles {
		if a.Category == category {
			filtered = append(filtered, a)
		}
	}

	return filtered, nil
}
