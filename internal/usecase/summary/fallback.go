package summary

import (
	"regexp"
	"strings"
)

const (
	// maxFallbackBullets caps how many fragments the local summary keeps.
	maxFallbackBullets = 5

	// minFragmentLength filters noise such as stray punctuation or short
	// interjections; fragments at or below this trimmed length are dropped.
	minFragmentLength = 10
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// Fallback derives a summary without any external call. It is a pure
// function: identical inputs always yield identical output.
func Fallback(transcript, customPrompt string) string {
	fragments := sentenceBoundary.Split(transcript, -1)

	bullets := make([]string, 0, maxFallbackBullets)
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if len(f) <= minFragmentLength {
			continue
		}
		bullets = append(bullets, "• "+f)
		if len(bullets) == maxFallbackBullets {
			break
		}
	}

	var b strings.Builder
	if strings.TrimSpace(customPrompt) != "" {
		b.WriteString("Custom Instructions: ")
		b.WriteString(customPrompt)
		b.WriteString("\n\n")
	}
	b.WriteString("Summary:")
	for _, bullet := range bullets {
		b.WriteString("\n")
		b.WriteString(bullet)
	}
	return b.String()
}
