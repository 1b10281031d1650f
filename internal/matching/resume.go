package matching

import (
	"strings"

	"github.com/krishna0743/careerguid-ai/internal/careers"
)

// Analysis is the outcome of scanning a resume for known skills.
type Analysis struct {
	Skills []string
	Best   Result
	Found  bool
}

// ExtractSkills returns every dataset token contained in text, in the store's
// token order. Containment is a plain substring test, so short tokens can
// match inside longer words ("ai" in "air").
func ExtractSkills(store *careers.Store, text string) []string {
	skills := make([]string, 0)
	if store == nil {
		return skills
	}

	lowered := strings.ToLower(text)
	for _, token := range store.SkillTokens() {
		if strings.Contains(lowered, token) {
			skills = append(skills, token)
		}
	}
	return skills
}

// AnalyzeResume extracts skills from text and picks the single best career.
// Best is NoMatch when no skill is found or nothing scores.
func AnalyzeResume(store *careers.Store, text string) Analysis {
	skills := ExtractSkills(store, text)

	analysis := Analysis{Skills: skills, Best: NoMatch}
	if len(skills) == 0 {
		return analysis
	}

	if top := Match(store, JoinSkills(skills), 1); len(top) > 0 {
		analysis.Best = top[0]
		analysis.Found = true
	}

	return analysis
}
