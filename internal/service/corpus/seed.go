// internal/service/corpus/seed.go

package corpus

import (
	"time"

	"jotfeed/internal/domain/feed"
	"jotfeed/internal/domain/jot"
)

// authoredScore builds the pre-authored scoring data carried by seed posts.
// Rankers read the Relevance contribution off this data as a relevance proxy.
func authoredScore(total, confidence float64, primary, reasoning string, factors []feed.Factor) *feed.AlgorithmScore {
	secondary := make([]string, 0, len(factors))
	for _, f := range factors {
		secondary = append(secondary, f.Description)
	}

	return &feed.AlgorithmScore{
		TotalScore: total,
		Confidence: confidence,
		Explanation: feed.Explanation{
			Primary:   primary,
			Secondary: secondary,
			Reasoning: reasoning,
		},
		Factors: factors,
	}
}

// SeedPosts returns the starting content corpus, with creation times anchored
// relative to now so recency scoring behaves the same on every boot.
func SeedPosts(now time.Time) []feed.Post {
	return []feed.Post{
		{
			ID:        "post-1",
			AuthorID:  "jot-1",
			Type:      jot.ContentText,
			Content:   "Just open-sourced my new React algorithm visualization library! 🎉 It shows how different sorting algorithms work in real-time. Check it out and let me know what you think!",
			Likes:     234,
			Comments:  45,
			Shares:    23,
			CreatedAt: now.Add(-5 * time.Hour),
			Score: authoredScore(0.85, 0.92,
				"High relevance to your tech interests",
				"This post scored highly because it matches your interests in JavaScript and open-source development, has strong engagement, and is from a verified developer.",
				[]feed.Factor{
					{Name: "Relevance", Weight: 0.3, Contribution: 0.28, Description: "Matches your JavaScript and open-source interests"},
					{Name: "Engagement", Weight: 0.25, Contribution: 0.22, Description: "High like-to-follower ratio"},
					{Name: "Recency", Weight: 0.3, Contribution: 0.25, Description: "Posted recently"},
					{Name: "Social Signals", Weight: 0.1, Contribution: 0.08, Description: "From verified user you follow"},
					{Name: "Diversity", Weight: 0.05, Contribution: 0.02, Description: "Adds variety to your feed"},
				}),
		},
		{
			ID:       "post-2",
			AuthorID: "jot-2",
			Type:     jot.ContentThread,
			Content:  "THREAD: The hidden costs of \"free\" social media platforms 🧵",
			ThreadPosts: []feed.Post{
				{
					ID:        "thread-2-1",
					AuthorID:  "jot-2",
					Type:      jot.ContentText,
					Content:   "1/ We often think social media is \"free\" but we're actually paying with our data, attention, and privacy. Let me break down the real costs...",
					Likes:     156,
					Comments:  23,
					Shares:    45,
					CreatedAt: now.Add(-26 * time.Hour),
				},
				{
					ID:        "thread-2-2",
					AuthorID:  "jot-2",
					Type:      jot.ContentText,
					Content:   "2/ Data harvesting: Every click, scroll, and pause is tracked. This creates detailed profiles sold to advertisers for billions annually.",
					Likes:     134,
					Comments:  18,
					Shares:    32,
					CreatedAt: now.Add(-26 * time.Hour),
				},
				{
					ID:        "thread-2-3",
					AuthorID:  "jot-2",
					Type:      jot.ContentText,
					Content:   "3/ Attention manipulation: Algorithms designed to maximize engagement often exploit psychological vulnerabilities, leading to addiction-like behaviors.",
					Likes:     189,
					Comments:  34,
					Shares:    56,
					CreatedAt: now.Add(-26 * time.Hour),
				},
			},
			Likes:     456,
			Comments:  89,
			Shares:    123,
			CreatedAt: now.Add(-26 * time.Hour),
			Score: authoredScore(0.78, 0.88,
				"Matches your privacy and tech policy interests",
				"This thread aligns with your interests in digital rights and journalism, has strong engagement from your network.",
				[]feed.Factor{
					{Name: "Relevance", Weight: 0.25, Contribution: 0.23, Description: "Matches privacy and tech policy interests"},
					{Name: "Engagement", Weight: 0.15, Contribution: 0.14, Description: "High engagement on thread format"},
					{Name: "Recency", Weight: 0.5, Contribution: 0.35, Description: "Recent and trending topic"},
					{Name: "Social Signals", Weight: 0.05, Contribution: 0.04, Description: "Shared by people you follow"},
					{Name: "Diversity", Weight: 0.05, Contribution: 0.02, Description: "Different content type (thread)"},
				}),
		},
		{
			ID:       "post-3",
			AuthorID: "jot-3",
			Type:     jot.ContentImage,
			Content:  "New UI concept for a sustainable fashion app 🌱 What do you think about the color palette?",
			Media: []feed.MediaItem{
				{
					ID:        "media-3-1",
					Type:      "image",
					URL:       "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?w=600&h=400&fit=crop",
					Thumbnail: "https://images.unsplash.com/photo-1581291518857-4e27b48ff24e?w=300&h=200&fit=crop",
					Alt:       "UI concept for a sustainable fashion app",
				},
			},
			Likes:     324,
			Comments:  67,
			Shares:    34,
			CreatedAt: now.Add(-30 * time.Hour),
			Score: authoredScore(0.72, 0.84,
				"Strong design community engagement",
				"Visual design content with high engagement from the design community and a relevance match on UI/UX interests.",
				[]feed.Factor{
					{Name: "Relevance", Weight: 0.3, Contribution: 0.26, Description: "Matches your UI/UX and design interests"},
					{Name: "Engagement", Weight: 0.35, Contribution: 0.28, Description: "High engagement from design community"},
					{Name: "Recency", Weight: 0.2, Contribution: 0.14, Description: "Posted yesterday"},
					{Name: "Diversity", Weight: 0.1, Contribution: 0.03, Description: "Visual content adds variety"},
					{Name: "Social Signals", Weight: 0.05, Contribution: 0.01, Description: "Liked by designers you follow"},
				}),
		},
		{
			ID:        "post-4",
			AuthorID:  "jot-4",
			Type:      jot.ContentText,
			Content:   "New research shows Arctic ice loss is accelerating faster than our models predicted. We need immediate action on carbon emissions. Here's what the data tells us... 🧊📊",
			Likes:     567,
			Comments:  123,
			Shares:    89,
			CreatedAt: now.Add(-48 * time.Hour),
			Score: authoredScore(0.69, 0.81,
				"Important climate science information",
				"Recent scientific findings from a verified climate scientist, with moderate engagement on a serious topic.",
				[]feed.Factor{
					{Name: "Relevance", Weight: 0.4, Contribution: 0.32, Description: "Important climate science information"},
					{Name: "Recency", Weight: 0.2, Contribution: 0.16, Description: "Recent scientific findings"},
					{Name: "Social Signals", Weight: 0.15, Contribution: 0.12, Description: "From verified climate scientist"},
					{Name: "Engagement", Weight: 0.2, Contribution: 0.08, Description: "Moderate engagement on serious topic"},
					{Name: "Diversity", Weight: 0.05, Contribution: 0.01, Description: "Educational content"},
				}),
		},
		{
			ID:       "post-5",
			AuthorID: "jot-5",
			Type:     jot.ContentVideo,
			Content:  "Epic clutch moment in the tournament finals! 🎮 The crowd went wild!",
			Media: []feed.MediaItem{
				{
					ID:        "media-5-1",
					Type:      "video",
					URL:       "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=600&h=400&fit=crop",
					Thumbnail: "https://images.unsplash.com/photo-1542751371-adc38448a05e?w=300&h=200&fit=crop",
					Alt:       "Tournament finals gameplay clip",
				},
			},
			Likes:     892,
			Comments:  156,
			Shares:    234,
			CreatedAt: now.Add(-72 * time.Hour),
			Score: authoredScore(0.64, 0.79,
				"Very high engagement rate",
				"Tournament content with very high engagement, limited relevance match to your interests.",
				[]feed.Factor{
					{Name: "Engagement", Weight: 0.4, Contribution: 0.35, Description: "Very high engagement rate"},
					{Name: "Social Signals", Weight: 0.1, Contribution: 0.08, Description: "Shared by gaming community"},
					{Name: "Recency", Weight: 0.2, Contribution: 0.14, Description: "Recent tournament content"},
					{Name: "Relevance", Weight: 0.2, Contribution: 0.05, Description: "Limited relevance to your interests"},
					{Name: "Diversity", Weight: 0.1, Contribution: 0.02, Description: "Different content category"},
				}),
		},
		{
			ID:       "post-6",
			AuthorID: "jot-6",
			Type:     jot.ContentImage,
			Content:  "Homemade ramen with 24-hour bone broth 🍜 Recipe in the comments!",
			Media: []feed.MediaItem{
				{
					ID:        "media-6-1",
					Type:      "image",
					URL:       "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=600&h=400&fit=crop",
					Thumbnail: "https://images.unsplash.com/photo-1569718212165-3a8278d5f624?w=300&h=200&fit=crop",
					Alt:       "Bowl of homemade ramen",
				},
			},
			Likes:     1234,
			Comments:  89,
			Shares:    67,
			CreatedAt: now.Add(-96 * time.Hour),
			Score: authoredScore(0.58, 0.76,
				"Very high like count",
				"Popular food content adding variety to the feed, though not directly matching stated interests.",
				[]feed.Factor{
					{Name: "Engagement", Weight: 0.4, Contribution: 0.32, Description: "Very high like count"},
					{Name: "Diversity", Weight: 0.15, Contribution: 0.12, Description: "Food content adds variety"},
					{Name: "Recency", Weight: 0.2, Contribution: 0.10, Description: "Posted 4 days ago"},
					{Name: "Social Signals", Weight: 0.1, Contribution: 0.03, Description: "Popular in your network"},
					{Name: "Relevance", Weight: 0.15, Contribution: 0.01, Description: "Not directly relevant to interests"},
				}),
		},
		{
			ID:        "post-7",
			AuthorID:  "jot-7",
			Type:      jot.ContentText,
			Content:   "Quick reminder: consistency beats perfection every time 💪 Small daily habits compound into major results. What's one habit you're building this week?",
			Likes:     445,
			Comments:  78,
			Shares:    45,
			CreatedAt: now.Add(-120 * time.Hour),
			Score: authoredScore(0.55, 0.74,
				"Good engagement rate",
				"Motivational content with a positive community response, posted several days ago.",
				[]feed.Factor{
					{Name: "Engagement", Weight: 0.35, Contribution: 0.28, Description: "Good engagement rate"},
					{Name: "Social Signals", Weight: 0.15, Contribution: 0.12, Description: "Positive community response"},
					{Name: "Recency", Weight: 0.2, Contribution: 0.12, Description: "Posted 5 days ago"},
					{Name: "Diversity", Weight: 0.1, Contribution: 0.02, Description: "Motivational content type"},
					{Name: "Relevance", Weight: 0.2, Contribution: 0.01, Description: "Not matching your interests"},
				}),
		},
		{
			// No authored score: exercises the neutral relevance default
			ID:        "post-8",
			AuthorID:  "jot-8",
			Type:      jot.ContentText,
			Content:   "Working on my machine learning thesis about algorithmic bias in social media feeds. It's fascinating how small changes in training data can have huge impacts on what users see. #MLResearch #AlgorithmicTransparency",
			Likes:     167,
			Comments:  34,
			Shares:    23,
			CreatedAt: now.Add(-10 * time.Hour),
		},
		{
			ID:        "post-9",
			AuthorID:  "jot-9",
			Type:      jot.ContentText,
			Content:   "Lesson from scaling our startup to 50 people: culture is not ping pong tables, it is how decisions get made when the founders are not in the room.",
			Likes:     389,
			Comments:  56,
			Shares:    71,
			CreatedAt: now.Add(-18 * time.Hour),
		},
		{
			ID:       "post-10",
			AuthorID: "jot-10",
			Type:     jot.ContentImage,
			Content:  "Golden hour over the ridge line. Sometimes the best shot is the one you almost did not wait for. 📸",
			Media: []feed.MediaItem{
				{
					ID:        "media-10-1",
					Type:      "image",
					URL:       "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=600&h=400&fit=crop",
					Thumbnail: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=300&h=200&fit=crop",
					Alt:       "Mountain ridge at golden hour",
				},
			},
			Likes:     712,
			Comments:  64,
			Shares:    58,
			CreatedAt: now.Add(-40 * time.Hour),
		},
	}
}
