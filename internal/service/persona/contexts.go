// internal/service/persona/contexts.go

package persona

import (
	"jotfeed/internal/domain/jot"
)

// professionContexts maps professions to the activities their jots cycle
// through during simulation.
var professionContexts = map[string][]string{
	"Software Developer": {"coding session", "debugging", "code review", "learning new tech", "project planning"},
	"Journalist":         {"researching story", "interviewing sources", "fact-checking", "writing article", "news analysis"},
	"Digital Artist":     {"design project", "creative exploration", "client work", "inspiration hunting", "skill development"},
	"Climate Scientist":  {"data analysis", "research paper", "field study", "peer review", "conference prep"},
	"Content Creator":    {"content planning", "video editing", "community engagement", "trend analysis", "collaboration"},
	"Food Blogger":       {"recipe testing", "restaurant visit", "food photography", "content creation", "ingredient sourcing"},
	"Fitness Coach":      {"client training", "workout planning", "nutrition research", "fitness education", "health assessment"},
	"Student":            {"studying", "research project", "group work", "exam prep", "internship search"},
	"Entrepreneur":       {"strategy meeting", "investor pitch", "product development", "market research", "team building"},
	"Photographer":       {"photo shoot", "editing session", "client meeting", "location scouting", "portfolio update"},
}

// defaultContexts covers professions without a dedicated pool
var defaultContexts = []string{"work", "project", "meeting"}

// ContextFor samples a current context for the given profession
func ContextFor(profession string, rng jot.Rand) string {
	contexts, ok := professionContexts[profession]
	if !ok {
		contexts = defaultContexts
	}
	return contexts[rng.Intn(len(contexts))]
}
