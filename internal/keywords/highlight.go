package keywords

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Span is a highlighted region of text, as byte offsets [Start, End).
type Span struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Word  string `json:"word"`
}

// SearchWord returns the resume phrasing to highlight for a job keyword: the value of the
// first resume keyword sharing its skill, or "" when the resume lacks the skill.
func SearchWord(jobKeyword types.Keyword, resumeKeywords []types.Keyword) string {
	kw, _ := FindBySkill(resumeKeywords, jobKeyword.Skill)
	return kw.Value
}

// FindSpans locates literal occurrences of words in text, scanning left to right.
// Spans never overlap; when several words start at the same offset the longest wins.
// Empty words are ignored. Matching is case-sensitive so highlights agree with Classify,
// which compares values byte for byte.
func FindSpans(text string, words []string) []Span {
	spans := []Span{}
	candidates := make([]string, 0, len(words))
	for _, w := range words {
		if w != "" {
			candidates = append(candidates, w)
		}
	}
	if len(candidates) == 0 || text == "" {
		return spans
	}

	for i := 0; i < len(text); {
		best := ""
		for _, w := range candidates {
			if len(w) > len(best) && strings.HasPrefix(text[i:], w) {
				best = w
			}
		}
		if best == "" {
			i++
			continue
		}
		spans = append(spans, Span{Start: i, End: i + len(best), Word: best})
		i += len(best)
	}
	return spans
}

// FindBySkill returns the first keyword with the given skill.
func FindBySkill(kws []types.Keyword, skill string) (types.Keyword, bool) {
	for _, kw := range kws {
		if kw.Skill == skill {
			return kw, true
		}
	}
	return types.Keyword{}, false
}
