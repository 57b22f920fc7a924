package keywords

import "github.com/jonathan/resume-studio/internal/types"

// List names used in InvalidKeywordRecordError.
const (
	ListJobKeywords    = "keywords"
	ListResumeKeywords = "resume_keywords"
)

// ValidateKeywords checks that every record in list carries both a skill and a value.
// It returns the first offending record as an *InvalidKeywordRecordError.
func ValidateKeywords(list string, kws []types.Keyword) error {
	for i, kw := range kws {
		if kw.Skill == "" {
			return &InvalidKeywordRecordError{List: list, Index: i, Field: "skill"}
		}
		if kw.Value == "" {
			return &InvalidKeywordRecordError{List: list, Index: i, Field: "value"}
		}
	}
	return nil
}

// ValidateJob validates both keyword lists of a job.
func ValidateJob(job *types.Job) error {
	if err := ValidateKeywords(ListJobKeywords, job.Keywords); err != nil {
		return err
	}
	return ValidateKeywords(ListResumeKeywords, job.ResumeKeywords)
}
