package analyzer

import "strings"

const (
	// SummaryMaxLen is the summary length cap in characters.
	SummaryMaxLen = 200
	// NoSummary is returned for chunks with no eligible prose lines.
	NoSummary = "No summary available"
)

// ExtractSummary builds a short summary by joining stripped non-empty,
// non-header, non-separator lines until the result exceeds SummaryMaxLen
// characters, then truncating to exactly that length. A truncation that
// cuts mid-word is trimmed back to the last space and marked with an
// ellipsis.
func ExtractSummary(content string) string {
	var parts []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "---") {
			continue
		}
		parts = append(parts, line)
		if len([]rune(strings.Join(parts, " "))) > SummaryMaxLen {
			break
		}
	}

	runes := []rune(strings.Join(parts, " "))
	if len(runes) > SummaryMaxLen {
		runes = runes[:SummaryMaxLen]
	}
	summary := string(runes)

	if len(runes) == SummaryMaxLen {
		if i := strings.LastIndex(summary, " "); i > 0 {
			summary = summary[:i]
		}
		summary += "..."
	}

	if summary == "" {
		return NoSummary
	}
	return summary
}
