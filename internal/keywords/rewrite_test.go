package keywords

import (
	"testing"

	"github.com/jonathan/resume-studio/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRewrite(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pairs []types.ConversionPair
		want  string
	}{
		{
			name:  "replaces every occurrence",
			text:  "I know JS and have used JS in production.",
			pairs: []types.ConversionPair{{From: "JS", To: "JavaScript"}},
			want:  "I know JavaScript and have used JavaScript in production.",
		},
		{
			name: "pairs chain sequentially",
			text: "A",
			pairs: []types.ConversionPair{
				{From: "A", To: "B"},
				{From: "B", To: "C"},
			},
			want: "C",
		},
		{
			name: "reversed order does not chain",
			text: "A",
			pairs: []types.ConversionPair{
				{From: "B", To: "C"},
				{From: "A", To: "B"},
			},
			want: "B",
		},
		{
			name:  "literal match, not a pattern",
			text:  "Used C++ and C.",
			pairs: []types.ConversionPair{{From: "C++", To: "C/C++"}},
			want:  "Used C/C++ and C.",
		},
		{
			name:  "empty plan returns input",
			text:  "unchanged text",
			pairs: nil,
			want:  "unchanged text",
		},
		{
			name:  "no occurrence leaves text alone",
			text:  "Go developer",
			pairs: []types.ConversionPair{{From: "JS", To: "JavaScript"}},
			want:  "Go developer",
		},
		{
			name:  "empty from is ignored",
			text:  "abc",
			pairs: []types.ConversionPair{{From: "", To: "x"}},
			want:  "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rewrite(tt.text, tt.pairs))
		})
	}
}

func TestRewrite_EndToEnd(t *testing.T) {
	job := []types.Keyword{kw("js", "JavaScript"), kw("k8s", "Kubernetes"), kw("go", "Go")}
	resume := []types.Keyword{kw("js", "JS"), kw("k8s", "k8s"), kw("go", "Go")}
	text := "Built JS dashboards.\nRan Go services on k8s.\nMentored JS developers."

	p := Classify(job, resume)
	got := Rewrite(text, PlanConversions(p.Similar, resume))

	assert.Equal(t, "Built JavaScript dashboards.\nRan Go services on Kubernetes.\nMentored JavaScript developers.", got)
}
