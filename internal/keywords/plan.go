package keywords

import "github.com/jonathan/resume-studio/internal/types"

// PlanConversions builds the ordered replacement list for the similar keywords.
//
// For each similar keyword the first resume keyword with the same skill (in resume order)
// supplies the text to search for, and the job keyword's value is the replacement.
// Keywords with no resume counterpart are skipped.
func PlanConversions(similar, resumeKeywords []types.Keyword) []types.ConversionPair {
	pairs := make([]types.ConversionPair, 0, len(similar))
	if len(similar) == 0 {
		return pairs
	}

	first := firstValueBySkill(resumeKeywords)
	for _, kw := range similar {
		from, ok := first[kw.Skill]
		if !ok {
			continue
		}
		pairs = append(pairs, types.ConversionPair{From: from, To: kw.Value})
	}
	return pairs
}

// firstValueBySkill keeps the value of the earliest resume keyword for each skill.
func firstValueBySkill(resumeKeywords []types.Keyword) map[string]string {
	first := make(map[string]string, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		if _, seen := first[kw.Skill]; !seen {
			first[kw.Skill] = kw.Value
		}
	}
	return first
}
