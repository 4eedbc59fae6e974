// internal/service/persona/templates.go

package persona

import (
	"jotfeed/internal/domain/jot"
)

// baseTemplates is the shared template set every jot starts from. Each jot
// gets a personality-adjusted copy at creation.
func baseTemplates() []jot.ContentTemplate {
	return []jot.ContentTemplate{
		// Professional insights
		{
			Type:      jot.ContentText,
			Pattern:   "Just realized something important about {topic}: {insight}. This changes how I think about {related_field}.",
			Topics:    []string{"work", "industry", "trends"},
			Mood:      0.3,
			Formality: 0.7,
			Triggers:  []string{"work_hours", "industry_news", "learning"},
		},

		// Personal sharing
		{
			Type:      jot.ContentText,
			Pattern:   "{personal_activity} today and it got me thinking about {reflection}. Sometimes the best insights come from unexpected places.",
			Topics:    []string{"lifestyle", "personal"},
			Mood:      0.5,
			Formality: 0.3,
			Triggers:  []string{"weekend", "personal_time", "reflection"},
		},

		// Opinion/Commentary
		{
			Type:      jot.ContentText,
			Pattern:   "Hot take: {opinion}. I know this might be controversial, but hear me out... {reasoning}",
			Topics:    []string{"opinion", "debate", "industry"},
			Mood:      0.0,
			Formality: 0.5,
			Triggers:  []string{"controversy", "debate", "strong_opinion"},
		},

		// Educational/Tips
		{
			Type:      jot.ContentText,
			Pattern:   "{profession} tip: {tip}. This simple change can make a huge difference in {outcome}.",
			Topics:    []string{"education", "tips", "professional"},
			Mood:      0.4,
			Formality: 0.6,
			Triggers:  []string{"teaching_moment", "help_others", "expertise"},
		},

		// Achievement/Milestone
		{
			Type:      jot.ContentText,
			Pattern:   "Exciting news! {achievement} 🎉 This has been {timeframe} in the making and I'm grateful for {acknowledgment}.",
			Topics:    []string{"achievement", "milestone", "celebration"},
			Mood:      0.8,
			Formality: 0.5,
			Triggers:  []string{"success", "milestone", "celebration"},
		},

		// Question/Engagement
		{
			Type:      jot.ContentText,
			Pattern:   "Quick question for my network: {question} I'm curious about your experiences with {topic}.",
			Topics:    []string{"question", "community", "learning"},
			Mood:      0.2,
			Formality: 0.4,
			Triggers:  []string{"community_engagement", "learning", "curiosity"},
		},
	}
}

// DeriveTemplates produces a jot's personal template set from its
// personality. More conscientious jots write more formally; more neurotic
// jots gravitate toward lower-mood templates. The result is deterministic
// for a given personality and immutable thereafter.
func DeriveTemplates(p jot.Personality) []jot.ContentTemplate {
	base := baseTemplates()
	templates := make([]jot.ContentTemplate, len(base))

	for i, t := range base {
		t.Formality = t.Formality * p.Conscientiousness
		t.Mood = t.Mood * (1 - p.Neuroticism)
		templates[i] = t
	}

	return templates
}
