package chunker

import (
	"regexp"
	"strings"

	"docsplit/internal/domain"
)

// PrefaceTitle names the implicit section before the first numbered
// heading.
const PrefaceTitle = "Preface"

// numberedHeadingRe matches numbered section headings like
// "1. Executive Summary" or "3.1 Core Loop".
var numberedHeadingRe = regexp.MustCompile(`^\d+\.`)

// NumberedSplitter splits a document at numbered section headings into
// one section per heading. Unlike SectionChunker it has no size target;
// sections are whatever the headings delimit.
type NumberedSplitter struct{}

func NewNumberedSplitter() *NumberedSplitter {
	return &NumberedSplitter{}
}

func (s *NumberedSplitter) Split(content string) []domain.Section {
	lines := strings.Split(content, "\n")

	var sections []domain.Section
	var current []string
	title := PrefaceTitle

	flush := func() {
		if len(current) == 0 {
			return
		}
		sections = append(sections, domain.Section{
			Number:  len(sections) + 1,
			Title:   title,
			Content: strings.Join(current, "\n"),
		})
		current = nil
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if numberedHeadingRe.MatchString(trimmed) {
			flush()
			title = trimmed
		}
		current = append(current, line)
	}
	flush()

	return sections
}

var (
	unsafeFilenameRe = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRunRe  = regexp.MustCompile(`\s+`)
)

// SafeSectionName sanitizes a section title for use in a filename:
// non-word characters removed, whitespace collapsed to dashes, capped
// at maxLen characters.
func SafeSectionName(title string, maxLen int) string {
	safe := unsafeFilenameRe.ReplaceAllString(title, "")
	safe = whitespaceRunRe.ReplaceAllString(safe, "-")
	runes := []rune(safe)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return string(runes)
}
