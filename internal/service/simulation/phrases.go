// internal/service/simulation/phrases.go

package simulation

import (
	"strings"

	"jotfeed/internal/domain/jot"
)

// Placeholder keys recognized by the template interpolator. Every key has a
// phrase pool or a derivation rule; an unrecognized key in a template falls
// back to a neutral default instead of silently surviving substitution.
const (
	keyTopic            = "topic"
	keyProfession       = "profession"
	keyInsight          = "insight"
	keyOpinion          = "opinion"
	keyAchievement      = "achievement"
	keyQuestion         = "question"
	keyTip              = "tip"
	keyPersonalActivity = "personal_activity"
	keyReflection       = "reflection"
	keyRelatedField     = "related_field"
	keyReasoning        = "reasoning"
	keyTimeframe        = "timeframe"
	keyAcknowledgment   = "acknowledgment"
	keyOutcome          = "outcome"
)

const fallbackPhrase = "this"

var phrasePools = map[string][]string{
	keyInsight: {
		"the importance of user-centered design",
		"how small changes can have big impacts",
		"the power of community-driven development",
		"why transparency builds trust",
		"how data tells compelling stories",
	},
	keyOpinion: {
		"remote work is here to stay and companies need to adapt",
		"AI will augment human creativity, not replace it",
		"sustainable practices should be the default, not an option",
		"transparency in algorithms is a fundamental right",
		"diversity in teams leads to better products",
	},
	keyAchievement: {
		"launched my new project",
		"hit a major milestone",
		"completed a challenging course",
		"spoke at an industry conference",
		"published my research",
	},
	keyQuestion: {
		"What tools do you use for productivity?",
		"How do you stay updated with industry trends?",
		"What's your biggest professional challenge?",
		"How do you balance work and personal life?",
		"What advice would you give to newcomers?",
	},
	keyTip: {
		"Always version control your work",
		"Take breaks to maintain creativity",
		"Ask for feedback early and often",
		"Document your processes",
		"Invest in learning new skills",
	},
	keyPersonalActivity: {
		"Went for a walk",
		"Read an interesting book",
		"Had coffee with a friend",
		"Tried a new restaurant",
		"Attended a workshop",
	},
	keyReflection: {
		"the importance of continuous learning",
		"how connections shape our perspectives",
		"why stepping outside comfort zones matters",
		"the value of diverse viewpoints",
		"how small moments can spark big ideas",
	},
	keyRelatedField: {
		"my day-to-day work",
		"the wider industry",
		"how teams collaborate",
		"what we build next",
	},
	keyReasoning: {
		"the evidence keeps piling up",
		"I've seen it play out firsthand",
		"the incentives all point the same way",
		"the alternative just doesn't scale",
	},
	keyTimeframe: {
		"months",
		"a long time",
		"the better part of a year",
	},
	keyAcknowledgment: {
		"everyone who supported me",
		"my amazing collaborators",
		"this community",
	},
	keyOutcome: {
		"your results",
		"your daily workflow",
		"the quality of your work",
	},
}

// generateContent instantiates a template for a jot, substituting every
// enumerated placeholder with content drawn from the phrase pools,
// parameterized by the jot's top topic affinity and profession.
func (s *Simulator) generateContent(j *jot.Jot, template jot.ContentTemplate) string {
	content := template.Pattern

	for {
		start := strings.Index(content, "{")
		if start < 0 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end < 0 {
			break
		}
		end += start

		key := content[start+1 : end]
		content = content[:start] + s.phraseFor(j, key) + content[end+1:]
	}

	return content
}

// phraseFor resolves one placeholder key for a jot
func (s *Simulator) phraseFor(j *jot.Jot, key string) string {
	switch key {
	case keyTopic:
		return strings.ReplaceAll(j.BehaviorPattern.TopTopic(), "-", " ")
	case keyProfession:
		return j.Demographics.Profession
	}

	pool, ok := phrasePools[key]
	if !ok || len(pool) == 0 {
		return fallbackPhrase
	}

	return pool[s.rng.Intn(len(pool))]
}
