package keywords

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/types"
)

// BuildReport validates the job's keyword lists, classifies them and fills in the
// scorecard counts. Every bucket count is reported out of the total number of job keywords.
func BuildReport(job *types.Job) (*types.KeywordReport, error) {
	if err := ValidateJob(job); err != nil {
		return nil, err
	}

	p := Classify(job.Keywords, job.ResumeKeywords)
	total := len(job.Keywords)

	report := &types.KeywordReport{
		Score:        job.Score,
		ScorePercent: FormatScore(job.Score),
		Matching:     p.Matching,
		Similar:      p.Similar,
		Missing:      p.Missing,
		MatchingInfo: types.BucketCount{Count: len(p.Matching), Total: total},
		SimilarInfo:  types.BucketCount{Count: len(p.Similar), Total: total},
		MissingInfo:  types.BucketCount{Count: len(p.Missing), Total: total},
	}
	if job.ID != uuid.Nil {
		report.JobID = job.ID.String()
	}
	return report, nil
}

// FormatScore renders a 0-1 score as a percentage with two decimals, e.g. "87.50%".
func FormatScore(score float64) string {
	return fmt.Sprintf("%.2f%%", score*100)
}
