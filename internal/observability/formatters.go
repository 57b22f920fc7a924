// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScorecard outputs the match score and the three keyword buckets.
func (p *Printer) PrintScorecard(report *types.KeywordReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Match score: %s\n", report.ScorePercent))
	writeBucket(&sb, "Matching Keywords", report.MatchingInfo, report.Matching)
	writeBucket(&sb, "Similar Keywords", report.SimilarInfo, report.Similar)
	writeBucket(&sb, "Missing Keywords", report.MissingInfo, report.Missing)

	p.printBox("RESUME SCORECARD", strings.TrimSuffix(sb.String(), "\n"))
}

func writeBucket(sb *strings.Builder, title string, info types.BucketCount, kws []types.Keyword) {
	sb.WriteString(fmt.Sprintf("\n%s (%d / %d)\n", title, info.Count, info.Total))
	count := min(len(kws), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", kws[i].Value))
	}
	if len(kws) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(kws)-maxItemsToShow))
	}
}

// PrintConversions outputs the planned replacements, one per line.
func (p *Printer) PrintConversions(pairs []types.ConversionPair) {
	if len(pairs) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Planned %d conversions:\n\n", len(pairs)))
	for i, pair := range pairs {
		sb.WriteString(fmt.Sprintf("%d. %q → %q\n", i+1, pair.From, pair.To))
	}

	p.printBox("AUTO UPDATE PLAN", strings.TrimSuffix(sb.String(), "\n"))
}
