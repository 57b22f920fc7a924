package keywords

import (
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// Rewrite applies the conversion pairs to text in order, replacing every literal occurrence
// of From with To before moving on. Each pair sees the output of the previous one, so a
// later pair can rewrite text introduced by an earlier pair.
func Rewrite(text string, pairs []types.ConversionPair) string {
	for _, pair := range pairs {
		if pair.From == "" {
			continue
		}
		text = strings.ReplaceAll(text, pair.From, pair.To)
	}
	return text
}
