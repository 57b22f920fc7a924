package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintScorecard(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.KeywordReport{
		ScorePercent: "62.50%",
		Matching:     []types.Keyword{{Skill: "go", Value: "Go"}},
		Similar:      []types.Keyword{{Skill: "js", Value: "JavaScript"}},
		Missing:      []types.Keyword{{Skill: "rust", Value: "Rust"}, {Skill: "aws", Value: "AWS"}},
		MatchingInfo: types.BucketCount{Count: 1, Total: 4},
		SimilarInfo:  types.BucketCount{Count: 1, Total: 4},
		MissingInfo:  types.BucketCount{Count: 2, Total: 4},
	}

	p.PrintScorecard(report)
	output := buf.String()

	assert.Contains(t, output, "RESUME SCORECARD")
	assert.Contains(t, output, "62.50%")
	assert.Contains(t, output, "Matching Keywords (1 / 4)")
	assert.Contains(t, output, "Similar Keywords (1 / 4)")
	assert.Contains(t, output, "Missing Keywords (2 / 4)")
	assert.Contains(t, output, "JavaScript")
	assert.Contains(t, output, "AWS")
}

func TestPrintScorecard_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScorecard(nil)
	assert.Empty(t, buf.String())
}

func TestPrintScorecard_TruncatesLongBuckets(t *testing.T) {
	var buf bytes.Buffer
	missing := make([]types.Keyword, 0, 12)
	for i := 0; i < 12; i++ {
		missing = append(missing, types.Keyword{Skill: fmt.Sprintf("s%d", i), Value: fmt.Sprintf("Skill %d", i)})
	}

	NewPrinter(&buf).PrintScorecard(&types.KeywordReport{
		Missing:     missing,
		MissingInfo: types.BucketCount{Count: 12, Total: 12},
	})

	assert.Contains(t, buf.String(), "... and 4 more")
	assert.NotContains(t, buf.String(), "Skill 11")
}

func TestPrintConversions(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintConversions([]types.ConversionPair{{From: "JS", To: "JavaScript"}})
	output := buf.String()

	assert.Contains(t, output, "AUTO UPDATE PLAN")
	assert.Contains(t, output, `"JS" → "JavaScript"`)

	buf.Reset()
	p.PrintConversions(nil)
	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).printBox("TITLE", strings.Repeat("x", 100))
	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", 60))
}
