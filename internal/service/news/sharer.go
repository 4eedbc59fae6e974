// internal/service/news/sharer.go

package news

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
	"jotfeed/internal/domain/news"
)

// shareCommentTemplates are the fixed phrase patterns used to wrap an
// article in a jot's own words.
var shareCommentTemplates = []string{
	"This is exactly what I've been talking about! {title} - the implications are huge for our industry.",
	"Important read: {title}. This changes everything we thought we knew about {topic}.",
	"Everyone in {field} needs to read this: {title}. The future is happening faster than we thought.",
	"Fascinating article on {topic}: {title}. What do you all think about the implications?",
	"This confirms what many of us suspected: {title}. Time to adapt our strategies.",
	"Breaking: {title}. This is why I'm passionate about {topic} - real change is happening!",
	"Must-read for anyone interested in {topic}: {title}. The data is compelling.",
	"This article perfectly captures the current state of {field}: {title}. Thoughts?",
}

// Sharer wraps external news articles into feed posts attributed to jots
type Sharer struct {
	rng jot.Rand
}

// NewSharer creates a new news sharer
func NewSharer(rng jot.Rand) *Sharer {
	return &Sharer{rng: rng}
}

// SelectArticles picks the articles a jot is most likely to share, scored by
// topic-affinity overlap, political compatibility and source credibility.
func (s *Sharer) SelectArticles(j *jot.Jot, articles []news.Article, count int) []news.Article {
	type scoredArticle struct {
		article news.Article
		score   float64
	}

	scored := make([]scoredArticle, 0, len(articles))
	for _, a := range articles {
		var score float64

		title := strings.ToLower(a.Title)
		description := strings.ToLower(a.Description)
		category := strings.ToLower(a.Category)

		for topic, affinity := range j.BehaviorPattern.TopicAffinities {
			needle := strings.ReplaceAll(topic, "-", " ")
			if strings.Contains(title, needle) ||
				strings.Contains(description, needle) ||
				strings.Contains(category, needle) {
				score += affinity
			}
		}

		// Jots share articles they are politically comfortable with, and
		// prefer credible sources
		score *= 1 - math.Abs(j.Demographics.PoliticalLean-a.PoliticalLean)
		score *= a.CredibilityScore

		scored = append(scored, scoredArticle{article: a, score: score})
	}

	sort.SliceStable(scored, func(i, k int) bool {
		return scored[i].score > scored[k].score
	})

	if count > len(scored) {
		count = len(scored)
	}

	selected := make([]news.Article, 0, count)
	for _, sa := range scored[:count] {
		selected = append(selected, sa.article)
	}

	return selected
}

// SharePost wraps an article into a post shared by the given jot. The
// comment template is chosen uniformly at random and interpolated with the
// article title, category and the jot's profession.
func (s *Sharer) SharePost(j *jot.Jot, a news.Article, now time.Time) feed.Post {
	comment := s.shareComment(j, a)

	var media []feed.MediaItem
	if a.ImageURL != "" {
		media = []feed.MediaItem{{
			ID:        fmt.Sprintf("news-preview-%s", a.ID),
			Type:      "image",
			URL:       a.ImageURL,
			Thumbnail: a.ImageURL,
			Alt:       fmt.Sprintf("News preview: %s", a.Title),
		}}
	}

	return feed.Post{
		ID:       uuid.New().String(),
		AuthorID: j.ID,
		Type:     jot.ContentText,
		Content:  fmt.Sprintf("%s\n\n📰 %s\n\n%s", comment, a.Title, a.Description),
		Media:    media,
		NewsLink: &feed.NewsRef{
			URL:              a.URL,
			Title:            a.Title,
			Source:           a.Source,
			PublishedAt:      a.PublishedAt,
			CredibilityScore: a.CredibilityScore,
		},
		Likes:     s.rng.Intn(300) + 50,
		Comments:  s.rng.Intn(50) + 10,
		Shares:    s.rng.Intn(80) + 15,
		CreatedAt: now,
	}
}

// shareComment builds the jot's own commentary on the article
func (s *Sharer) shareComment(j *jot.Jot, a news.Article) string {
	template := shareCommentTemplates[s.rng.Intn(len(shareCommentTemplates))]

	comment := strings.ReplaceAll(template, "{title}", a.Title)
	comment = strings.ReplaceAll(comment, "{topic}", strings.ToLower(a.Category))
	comment = strings.ReplaceAll(comment, "{field}", strings.ToLower(j.Demographics.Profession))

	return comment
}
