package keywords

import "fmt"

// InvalidKeywordRecordError reports a keyword record with a required field missing.
// Keyword extraction happens upstream, so this is a broken precondition rather than
// something the comparison can recover from.
type InvalidKeywordRecordError struct {
	List  string // "keywords" or "resume_keywords"
	Index int
	Field string // "skill" or "value"
}

func (e *InvalidKeywordRecordError) Error() string {
	return fmt.Sprintf("invalid keyword record: %s[%d] is missing %s", e.List, e.Index, e.Field)
}
