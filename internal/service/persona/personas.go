// internal/service/persona/personas.go

package persona

import (
	"jotfeed/internal/domain/jot"
)

// Profile is a static persona record: everything about a jot except its
// mutable simulation state, which is initialized by the registry.
type Profile struct {
	ID          string
	Username    string
	DisplayName string
	Avatar      string
	Bio         string
	Followers   int
	Following   int
	Verified    bool

	Personality     jot.Personality
	Demographics    jot.Demographics
	BehaviorPattern jot.BehaviorPattern
	ContentStyle    jot.ContentStyle
}

// seedProfiles returns the fixed persona table for the simulated population
func seedProfiles() []Profile {
	return []Profile{
		{
			ID:          "jot-1",
			Username:    "alex_chen_dev",
			DisplayName: "Alex Chen",
			Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=150&h=150&fit=crop&crop=face",
			Bio:         "Full-stack developer passionate about AI and open-source. Building the future, one commit at a time.",
			Followers:   2847,
			Following:   892,
			Verified:    true,
			Personality: jot.Personality{
				Openness: 0.85, Conscientiousness: 0.78, Extraversion: 0.65,
				Agreeableness: 0.72, Neuroticism: 0.35,
				ShareFrequency: 0.7, EngagementLevel: 0.8, ControversyTolerance: 0.4,
				TrendFollowing: 0.9, Authenticity: 0.8,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age25to34,
				Location:           jot.Location{Country: "USA", City: "San Francisco", Timezone: "PST"},
				Profession:         "Software Developer",
				EducationLevel:     "bachelors",
				IncomeLevel:        "upper_middle",
				RelationshipStatus: "dating",
				HasChildren:        false,
				PoliticalLean:      -0.3,
				Religiosity:        0.2,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{9, 12, 15, 18, 21},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.6, Images: 0.3, Videos: 0.2, Threads: 0.8, Links: 0.9,
				},
				TopicAffinities: map[string]float64{
					"javascript": 0.95, "react": 0.9, "ai": 0.85, "open-source": 0.8,
					"web-development": 0.9, "startups": 0.6, "coffee": 0.7,
					"photography": 0.5, "hiking": 0.4, "books": 0.6,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.7, CommentsGiven: 0.8, SharesGiven: 0.6, RepliesGiven: 0.9,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.6, Emotionality: 0.4, Humor: 0.7,
					Verbosity: 0.7, EmojiUsage: 0.4, HashtagUsage: 0.3,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.2, CompositionSkill: 0.7,
					ColorPreference: "blue", AestheticConsistency: 0.6,
				},
			},
		},
		{
			ID:          "jot-2",
			Username:    "maria_journalist",
			DisplayName: "Maria Rodriguez",
			Avatar:      "https://images.unsplash.com/photo-1494790108755-2616b612b0e3?w=150&h=150&fit=crop&crop=face",
			Bio:         "Investigative journalist covering tech policy and digital rights. Truth matters.",
			Followers:   15234,
			Following:   1456,
			Verified:    true,
			Personality: jot.Personality{
				Openness: 0.9, Conscientiousness: 0.85, Extraversion: 0.7,
				Agreeableness: 0.6, Neuroticism: 0.5,
				ShareFrequency: 0.8, EngagementLevel: 0.9, ControversyTolerance: 0.9,
				TrendFollowing: 0.7, Authenticity: 0.95,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age35to44,
				Location:           jot.Location{Country: "USA", City: "New York", Timezone: "EST"},
				Profession:         "Journalist",
				EducationLevel:     "masters",
				IncomeLevel:        "middle",
				RelationshipStatus: "married",
				HasChildren:        true,
				PoliticalLean:      -0.6,
				Religiosity:        0.4,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{6, 9, 13, 17, 20},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.8, Images: 0.4, Videos: 0.3, Threads: 0.9, Links: 0.95,
				},
				TopicAffinities: map[string]float64{
					"journalism": 0.95, "politics": 0.9, "technology": 0.8,
					"privacy": 0.9, "ethics": 0.85, "human-rights": 0.8,
					"democracy": 0.9, "media-literacy": 0.85, "fact-checking": 0.9,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.5, CommentsGiven: 0.9, SharesGiven: 0.8, RepliesGiven: 0.95,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.8, Emotionality: 0.6, Humor: 0.3,
					Verbosity: 0.8, EmojiUsage: 0.2, HashtagUsage: 0.4,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.1, CompositionSkill: 0.8,
					ColorPreference: "red", AestheticConsistency: 0.7,
				},
			},
		},
		{
			ID:          "jot-3",
			Username:    "david_artist",
			DisplayName: "David Kim",
			Avatar:      "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=150&h=150&fit=crop&crop=face",
			Bio:         "Digital artist and UI/UX designer. Creating beautiful experiences through design.",
			Followers:   8392,
			Following:   2341,
			Verified:    false,
			Personality: jot.Personality{
				Openness: 0.95, Conscientiousness: 0.6, Extraversion: 0.5,
				Agreeableness: 0.8, Neuroticism: 0.6,
				ShareFrequency: 0.6, EngagementLevel: 0.7, ControversyTolerance: 0.3,
				TrendFollowing: 0.8, Authenticity: 0.9,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age25to34,
				Location:           jot.Location{Country: "South Korea", City: "Seoul", Timezone: "KST"},
				Profession:         "Digital Artist",
				EducationLevel:     "bachelors",
				IncomeLevel:        "middle",
				RelationshipStatus: "single",
				HasChildren:        false,
				PoliticalLean:      -0.2,
				Religiosity:        0.3,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{10, 14, 16, 19, 22},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.4, Images: 0.95, Videos: 0.6, Threads: 0.5, Links: 0.4,
				},
				TopicAffinities: map[string]float64{
					"design": 0.95, "art": 0.9, "creativity": 0.85, "ui-ux": 0.9,
					"digital-art": 0.95, "color-theory": 0.8, "typography": 0.7,
					"inspiration": 0.8, "minimalism": 0.7,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.8, CommentsGiven: 0.6, SharesGiven: 0.7, RepliesGiven: 0.7,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.4, Emotionality: 0.7, Humor: 0.5,
					Verbosity: 0.5, EmojiUsage: 0.6, HashtagUsage: 0.7,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.8, CompositionSkill: 0.95,
					ColorPreference: "purple", AestheticConsistency: 0.9,
				},
			},
		},
		{
			ID:          "jot-4",
			Username:    "sarah_scientist",
			DisplayName: "Dr. Sarah Johnson",
			Avatar:      "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=150&h=150&fit=crop&crop=face",
			Bio:         "Climate scientist and researcher. PhD in Environmental Science. Sharing facts about our planet.",
			Followers:   12456,
			Following:   789,
			Verified:    true,
			Personality: jot.Personality{
				Openness: 0.8, Conscientiousness: 0.9, Extraversion: 0.6,
				Agreeableness: 0.7, Neuroticism: 0.4,
				ShareFrequency: 0.5, EngagementLevel: 0.8, ControversyTolerance: 0.8,
				TrendFollowing: 0.4, Authenticity: 0.95,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age35to44,
				Location:           jot.Location{Country: "Canada", City: "Vancouver", Timezone: "PST"},
				Profession:         "Climate Scientist",
				EducationLevel:     "phd",
				IncomeLevel:        "upper_middle",
				RelationshipStatus: "married",
				HasChildren:        true,
				PoliticalLean:      -0.4,
				Religiosity:        0.3,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{8, 12, 16, 19},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.7, Images: 0.6, Videos: 0.4, Threads: 0.8, Links: 0.9,
				},
				TopicAffinities: map[string]float64{
					"climate-science": 0.95, "research": 0.9, "environment": 0.95,
					"data-analysis": 0.8, "sustainability": 0.9, "renewable-energy": 0.8,
					"policy": 0.7, "education": 0.8,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.6, CommentsGiven: 0.8, SharesGiven: 0.7, RepliesGiven: 0.9,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.9, Emotionality: 0.5, Humor: 0.2,
					Verbosity: 0.8, EmojiUsage: 0.1, HashtagUsage: 0.3,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.1, CompositionSkill: 0.6,
					ColorPreference: "green", AestheticConsistency: 0.5,
				},
			},
		},
		{
			ID:          "jot-5",
			Username:    "mike_gamer",
			DisplayName: "Mike Thompson",
			Avatar:      "https://images.unsplash.com/photo-1500917293891-ef795e70e1f6?w=150&h=150&fit=crop&crop=face",
			Bio:         "Gaming enthusiast and streamer. Always up for a good co-op session!",
			Followers:   5623,
			Following:   3421,
			Verified:    false,
			Personality: jot.Personality{
				Openness: 0.7, Conscientiousness: 0.4, Extraversion: 0.8,
				Agreeableness: 0.6, Neuroticism: 0.3,
				ShareFrequency: 0.9, EngagementLevel: 0.9, ControversyTolerance: 0.7,
				TrendFollowing: 0.9, Authenticity: 0.7,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age18to24,
				Location:           jot.Location{Country: "USA", City: "Austin", Timezone: "CST"},
				Profession:         "Content Creator",
				EducationLevel:     "some_college",
				IncomeLevel:        "middle",
				RelationshipStatus: "single",
				HasChildren:        false,
				PoliticalLean:      0.1,
				Religiosity:        0.2,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{11, 14, 17, 20, 23, 1},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.5, Images: 0.7, Videos: 0.9, Threads: 0.6, Links: 0.5,
				},
				TopicAffinities: map[string]float64{
					"gaming": 0.95, "streaming": 0.9, "esports": 0.85, "technology": 0.7,
					"reviews": 0.8, "memes": 0.8, "movies": 0.6, "music": 0.7, "anime": 0.6,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.9, CommentsGiven: 0.8, SharesGiven: 0.8, RepliesGiven: 0.8,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.2, Emotionality: 0.8, Humor: 0.9,
					Verbosity: 0.4, EmojiUsage: 0.8, HashtagUsage: 0.6,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.3, CompositionSkill: 0.5,
					ColorPreference: "orange", AestheticConsistency: 0.4,
				},
			},
		},
		{
			ID:          "jot-6",
			Username:    "elena_foodie",
			DisplayName: "Elena Vasquez",
			Avatar:      "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=150&h=150&fit=crop&crop=face",
			Bio:         "Food blogger and chef. Exploring flavors from around the world 🍜✨",
			Followers:   18765,
			Following:   892,
			Verified:    true,
			Personality: jot.Personality{
				Openness: 0.8, Conscientiousness: 0.7, Extraversion: 0.9,
				Agreeableness: 0.85, Neuroticism: 0.3,
				ShareFrequency: 0.8, EngagementLevel: 0.9, ControversyTolerance: 0.2,
				TrendFollowing: 0.7, Authenticity: 0.8,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age25to34,
				Location:           jot.Location{Country: "Spain", City: "Barcelona", Timezone: "CET"},
				Profession:         "Food Blogger",
				EducationLevel:     "bachelors",
				IncomeLevel:        "middle",
				RelationshipStatus: "married",
				HasChildren:        false,
				PoliticalLean:      -0.3,
				Religiosity:        0.6,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{8, 13, 16, 19, 21},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.5, Images: 0.95, Videos: 0.7, Threads: 0.4, Links: 0.6,
				},
				TopicAffinities: map[string]float64{
					"cooking": 0.95, "recipes": 0.9, "restaurants": 0.85,
					"food-photography": 0.9, "culture": 0.8, "travel": 0.7,
					"wine": 0.6, "nutrition": 0.5, "sustainability": 0.6,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.9, CommentsGiven: 0.8, SharesGiven: 0.7, RepliesGiven: 0.9,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.5, Emotionality: 0.8, Humor: 0.6,
					Verbosity: 0.6, EmojiUsage: 0.9, HashtagUsage: 0.8,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.6, CompositionSkill: 0.9,
					ColorPreference: "warm", AestheticConsistency: 0.8,
				},
			},
		},
		{
			ID:          "jot-7",
			Username:    "james_fitness",
			DisplayName: "James Wilson",
			Avatar:      "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=150&h=150&fit=crop&crop=face",
			Bio:         "Personal trainer and nutrition coach. Helping people achieve their fitness goals 💪",
			Followers:   9234,
			Following:   1567,
			Verified:    false,
			Personality: jot.Personality{
				Openness: 0.6, Conscientiousness: 0.9, Extraversion: 0.8,
				Agreeableness: 0.7, Neuroticism: 0.2,
				ShareFrequency: 0.7, EngagementLevel: 0.8, ControversyTolerance: 0.3,
				TrendFollowing: 0.6, Authenticity: 0.8,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age35to44,
				Location:           jot.Location{Country: "Australia", City: "Sydney", Timezone: "AEST"},
				Profession:         "Fitness Coach",
				EducationLevel:     "bachelors",
				IncomeLevel:        "middle",
				RelationshipStatus: "married",
				HasChildren:        true,
				PoliticalLean:      0.2,
				Religiosity:        0.4,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{6, 9, 12, 17, 20},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.6, Images: 0.8, Videos: 0.9, Threads: 0.5, Links: 0.4,
				},
				TopicAffinities: map[string]float64{
					"fitness": 0.95, "nutrition": 0.9, "health": 0.85, "motivation": 0.8,
					"lifestyle": 0.7, "wellness": 0.8, "sports": 0.7, "mindfulness": 0.6,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.8, CommentsGiven: 0.7, SharesGiven: 0.6, RepliesGiven: 0.8,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.5, Emotionality: 0.7, Humor: 0.4,
					Verbosity: 0.5, EmojiUsage: 0.7, HashtagUsage: 0.9,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.4, CompositionSkill: 0.6,
					ColorPreference: "blue", AestheticConsistency: 0.6,
				},
			},
		},
		{
			ID:          "jot-8",
			Username:    "aisha_student",
			DisplayName: "Aisha Patel",
			Avatar:      "https://images.unsplash.com/photo-1531123897727-8f129e1688ce?w=150&h=150&fit=crop&crop=face",
			Bio:         "Computer Science student passionate about machine learning and social impact.",
			Followers:   1876,
			Following:   2341,
			Verified:    false,
			Personality: jot.Personality{
				Openness: 0.9, Conscientiousness: 0.7, Extraversion: 0.6,
				Agreeableness: 0.8, Neuroticism: 0.5,
				ShareFrequency: 0.6, EngagementLevel: 0.7, ControversyTolerance: 0.4,
				TrendFollowing: 0.8, Authenticity: 0.8,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age18to24,
				Location:           jot.Location{Country: "India", City: "Mumbai", Timezone: "IST"},
				Profession:         "Student",
				EducationLevel:     "some_college",
				IncomeLevel:        "low",
				RelationshipStatus: "single",
				HasChildren:        false,
				PoliticalLean:      -0.5,
				Religiosity:        0.5,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{9, 13, 18, 21, 23},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.7, Images: 0.6, Videos: 0.5, Threads: 0.8, Links: 0.8,
				},
				TopicAffinities: map[string]float64{
					"machine-learning": 0.9, "computer-science": 0.85, "research": 0.8,
					"social-impact": 0.9, "education": 0.8, "diversity": 0.7,
					"career-advice": 0.6, "mental-health": 0.6,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.7, CommentsGiven: 0.8, SharesGiven: 0.6, RepliesGiven: 0.8,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.6, Emotionality: 0.6, Humor: 0.5,
					Verbosity: 0.7, EmojiUsage: 0.5, HashtagUsage: 0.5,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.3, CompositionSkill: 0.5,
					ColorPreference: "teal", AestheticConsistency: 0.5,
				},
			},
		},
		{
			ID:          "jot-9",
			Username:    "robert_entrepreneur",
			DisplayName: "Robert Chen",
			Avatar:      "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=150&h=150&fit=crop&crop=face",
			Bio:         "Serial entrepreneur and startup advisor. Building the next generation of tech companies.",
			Followers:   24567,
			Following:   892,
			Verified:    true,
			Personality: jot.Personality{
				Openness: 0.8, Conscientiousness: 0.8, Extraversion: 0.9,
				Agreeableness: 0.6, Neuroticism: 0.4,
				ShareFrequency: 0.6, EngagementLevel: 0.8, ControversyTolerance: 0.5,
				TrendFollowing: 0.9, Authenticity: 0.7,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age45to54,
				Location:           jot.Location{Country: "Singapore", City: "Singapore", Timezone: "SGT"},
				Profession:         "Entrepreneur",
				EducationLevel:     "masters",
				IncomeLevel:        "high",
				RelationshipStatus: "married",
				HasChildren:        true,
				PoliticalLean:      0.3,
				Religiosity:        0.3,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{7, 10, 14, 18, 22},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.8, Images: 0.4, Videos: 0.3, Threads: 0.7, Links: 0.9,
				},
				TopicAffinities: map[string]float64{
					"entrepreneurship": 0.95, "startups": 0.9, "venture-capital": 0.8,
					"innovation": 0.85, "leadership": 0.8, "business-strategy": 0.9,
					"technology": 0.7, "mentorship": 0.7,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.6, CommentsGiven: 0.7, SharesGiven: 0.8, RepliesGiven: 0.7,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.8, Emotionality: 0.4, Humor: 0.3,
					Verbosity: 0.7, EmojiUsage: 0.2, HashtagUsage: 0.4,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.2, CompositionSkill: 0.7,
					ColorPreference: "gold", AestheticConsistency: 0.7,
				},
			},
		},
		{
			ID:          "jot-10",
			Username:    "lisa_photographer",
			DisplayName: "Lisa Anderson",
			Avatar:      "https://images.unsplash.com/photo-1487412720507-e7ab37603c6f?w=150&h=150&fit=crop&crop=face",
			Bio:         "Travel photographer capturing moments around the world. Currently in Tokyo 📸",
			Followers:   34521,
			Following:   1234,
			Verified:    true,
			Personality: jot.Personality{
				Openness: 0.9, Conscientiousness: 0.6, Extraversion: 0.7,
				Agreeableness: 0.8, Neuroticism: 0.4,
				ShareFrequency: 0.8, EngagementLevel: 0.7, ControversyTolerance: 0.2,
				TrendFollowing: 0.6, Authenticity: 0.9,
			},
			Demographics: jot.Demographics{
				AgeRange:           jot.Age25to34,
				Location:           jot.Location{Country: "Japan", City: "Tokyo", Timezone: "JST"},
				Profession:         "Photographer",
				EducationLevel:     "bachelors",
				IncomeLevel:        "middle",
				RelationshipStatus: "single",
				HasChildren:        false,
				PoliticalLean:      -0.2,
				Religiosity:        0.2,
			},
			BehaviorPattern: jot.BehaviorPattern{
				PostingHours: []int{8, 11, 15, 18, 20},
				ContentPreferences: jot.ContentPreferences{
					Text: 0.3, Images: 0.95, Videos: 0.6, Threads: 0.3, Links: 0.3,
				},
				TopicAffinities: map[string]float64{
					"photography": 0.95, "travel": 0.9, "nature": 0.8,
					"street-photography": 0.85, "storytelling": 0.8, "culture": 0.7,
					"minimalism": 0.6, "light": 0.9,
				},
				InteractionStyle: jot.InteractionStyle{
					LikesGiven: 0.9, CommentsGiven: 0.6, SharesGiven: 0.5, RepliesGiven: 0.7,
				},
			},
			ContentStyle: jot.ContentStyle{
				Writing: jot.WritingStyle{
					Formality: 0.4, Emotionality: 0.8, Humor: 0.4,
					Verbosity: 0.4, EmojiUsage: 0.6, HashtagUsage: 0.7,
				},
				Visual: jot.VisualStyle{
					FilterUsage: 0.3, CompositionSkill: 0.95,
					ColorPreference: "natural", AestheticConsistency: 0.9,
				},
			},
		},
	}
}
