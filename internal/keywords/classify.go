// Package keywords compares a job's required keywords against the keywords found in a resume
// and computes the literal text conversions that bring resume phrasing in line with the job.
package keywords

import "github.com/jonathan/resume-studio/internal/types"

// Partition holds the three disjoint buckets produced by Classify. Each bucket is a
// subsequence of the job keywords in their original order.
type Partition struct {
	Matching []types.Keyword
	Similar  []types.Keyword
	Missing  []types.Keyword
}

// Len returns the number of job keywords that were classified.
func (p Partition) Len() int {
	return len(p.Matching) + len(p.Similar) + len(p.Missing)
}

// skillIndex maps each skill present in the resume to the set of values it was found under.
type skillIndex map[string]map[string]struct{}

func indexResume(resumeKeywords []types.Keyword) skillIndex {
	idx := make(skillIndex, len(resumeKeywords))
	for _, kw := range resumeKeywords {
		values, ok := idx[kw.Skill]
		if !ok {
			values = make(map[string]struct{})
			idx[kw.Skill] = values
		}
		values[kw.Value] = struct{}{}
	}
	return idx
}

// Classify partitions jobKeywords against resumeKeywords.
//
// A job keyword is matching when the resume carries the same skill with the identical value,
// similar when the resume carries the skill only under other values, and missing when the
// skill does not appear in the resume at all. Comparison is exact string equality.
func Classify(jobKeywords, resumeKeywords []types.Keyword) Partition {
	p := Partition{
		Matching: []types.Keyword{},
		Similar:  []types.Keyword{},
		Missing:  []types.Keyword{},
	}
	if len(jobKeywords) == 0 {
		return p
	}

	idx := indexResume(resumeKeywords)
	for _, kw := range jobKeywords {
		values, ok := idx[kw.Skill]
		switch {
		case !ok:
			p.Missing = append(p.Missing, kw)
		case hasValue(values, kw.Value):
			p.Matching = append(p.Matching, kw)
		default:
			p.Similar = append(p.Similar, kw)
		}
	}
	return p
}

func hasValue(values map[string]struct{}, value string) bool {
	_, ok := values[value]
	return ok
}

// Matching returns the job keywords whose skill and exact value both appear in the resume.
func Matching(jobKeywords, resumeKeywords []types.Keyword) []types.Keyword {
	return Classify(jobKeywords, resumeKeywords).Matching
}

// Similar returns the job keywords whose skill appears in the resume under a different value.
func Similar(jobKeywords, resumeKeywords []types.Keyword) []types.Keyword {
	return Classify(jobKeywords, resumeKeywords).Similar
}

// Missing returns the job keywords whose skill does not appear in the resume.
func Missing(jobKeywords, resumeKeywords []types.Keyword) []types.Keyword {
	return Classify(jobKeywords, resumeKeywords).Missing
}
