package studio

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/resume-studio/internal/keywords"
	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHighlightJob(t *testing.T) {
	job := sampleJob()

	h := HighlightJob(job, "js")
	assert.Equal(t, "JS", h.SearchWord)
	assert.Equal(t, []keywords.Span{
		{Start: 7, End: 9, Word: "JS"},
		{Start: 24, End: 26, Word: "JS"},
	}, h.ResumeSpans)
	// Only the hovered keyword is marked in the description.
	assert.Equal(t, []keywords.Span{
		{Start: 8, End: 18, Word: "JavaScript"},
	}, h.DescriptionSpans)
}

func TestHighlightJob_MissingFromResume(t *testing.T) {
	h := HighlightJob(sampleJob(), "rust")
	assert.Equal(t, "", h.SearchWord)
	assert.Empty(t, h.ResumeSpans)
	assert.Equal(t, []keywords.Span{{Start: 46, End: 50, Word: "Rust"}}, h.DescriptionSpans)
}

func TestHighlightJob_NothingHovered(t *testing.T) {
	tests := []struct {
		name  string
		skill string
	}{
		{"empty skill", ""},
		{"skill not in job", "python"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := HighlightJob(sampleJob(), tt.skill)
			assert.Equal(t, "", h.SearchWord)
			assert.Empty(t, h.ResumeSpans)
			assert.Empty(t, h.DescriptionSpans)
		})
	}
}

func TestHighlightJob_SkillOnlyInResume(t *testing.T) {
	job := sampleJob()
	job.ResumeKeywords = append(job.ResumeKeywords, types.Keyword{Skill: "py", Value: "Python"})
	job.ResumeText += " Python too."

	h := HighlightJob(job, "py")
	assert.Equal(t, "", h.SearchWord)
	assert.Empty(t, h.ResumeSpans)
	assert.Empty(t, h.DescriptionSpans)
}

func TestHighlight_NotFound(t *testing.T) {
	s := newTestService(newMemoryStore(), nil)
	_, err := s.Highlight(context.Background(), uuid.New(), "js")
	var notFound *JobNotFoundError
	require.ErrorAs(t, err, &notFound)
}
