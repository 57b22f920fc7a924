// Package types provides type definitions for structured data used throughout the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Keyword is a normalized term extracted from a job posting or a resume.
// Skill is the join key between job and resume keywords; Value is the literal
// phrasing found in the source document.
type Keyword struct {
	Skill string `json:"skill" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// ConversionPair is a literal find/replace instruction that upgrades resume
// phrasing to the job's phrasing.
type ConversionPair struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to"`
}

// ConversionPlan is the ordered list of replacements produced for one auto-update.
type ConversionPlan struct {
	Conversions []ConversionPair `json:"conversions"`
}

// BucketCount is the "n / total" figure shown on the scorecard for one bucket.
type BucketCount struct {
	Count int `json:"count"`
	Total int `json:"total"`
}

// KeywordReport is the scorecard for one job: the three keyword buckets and their counts.
type KeywordReport struct {
	JobID        string      `json:"job_id,omitempty"`
	Score        float64     `json:"score"`
	ScorePercent string      `json:"score_percent"`
	Matching     []Keyword   `json:"matching"`
	Similar      []Keyword   `json:"similar"`
	Missing      []Keyword   `json:"missing"`
	MatchingInfo BucketCount `json:"matching_info"`
	SimilarInfo  BucketCount `json:"similar_info"`
	MissingInfo  BucketCount `json:"missing_info"`
}
