package studio

import (
	"context"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/types"
)

// Highlight is what the studio marks up when a job keyword is hovered: the resume phrasing
// of that skill and where it occurs, and where the hovered keyword occurs in the job description.
type Highlight struct {
	Skill            string          `json:"skill"`
	SearchWord       string          `json:"search_word"`
	ResumeSpans      []keywords.Span `json:"resume_spans"`
	DescriptionSpans []keywords.Span `json:"description_spans"`
}

// Highlight looks up the resume phrasing for skill in the job's resume.
func (s *Service) Highlight(ctx context.Context, id uuid.UUID, skill string) (*Highlight, error) {
	job, err := s.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}
	return HighlightJob(job, skill), nil
}

// HighlightJob computes the highlight for an in-memory job.
// Nothing is highlighted when skill is empty or not one of the job's keywords.
func HighlightJob(job *types.Job, skill string) *Highlight {
	h := &Highlight{
		Skill:            skill,
		ResumeSpans:      []keywords.Span{},
		DescriptionSpans: []keywords.Span{},
	}
	if skill == "" {
		return h
	}
	hovered, ok := keywords.FindBySkill(job.Keywords, skill)
	if !ok {
		return h
	}

	h.SearchWord = keywords.SearchWord(hovered, job.ResumeKeywords)
	h.ResumeSpans = keywords.FindSpans(job.ResumeText, []string{h.SearchWord})
	h.DescriptionSpans = keywords.FindSpans(job.Description, []string{hovered.Value})
	return h
}
