package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"docsplit/internal/domain"
)

const (
	// DefaultTargetSize is the soft chunk size limit in characters.
	DefaultTargetSize = 8000
	// DefaultHeaderFillRatio is how full the current chunk must be
	// before a header line forces a split.
	DefaultHeaderFillRatio = 0.7
	// DefaultBlankLookback bounds the backward blank-line search when
	// a chunk overflows. Keeping it fixed keeps the pass linear.
	DefaultBlankLookback = 20
)

// splitHeaderRe matches level 1-3 Markdown headers at column zero.
// Deeper headers never trigger a split.
var splitHeaderRe = regexp.MustCompile(`^#{1,3}\s`)

// SectionChunker splits a document into bounded-size chunks, preferring
// to break at header and blank-line boundaries. The target size is
// advisory: actual chunks land roughly within [30%, 130%] of it.
type SectionChunker struct {
	targetSize      int
	headerFillRatio float64
	blankLookback   int
}

func NewSectionChunker(targetSize int, headerFillRatio float64, blankLookback int) *SectionChunker {
	if targetSize <= 0 {
		targetSize = DefaultTargetSize
	}
	if headerFillRatio <= 0 {
		headerFillRatio = DefaultHeaderFillRatio
	}
	if blankLookback <= 0 {
		blankLookback = DefaultBlankLookback
	}
	return &SectionChunker{
		targetSize:      targetSize,
		headerFillRatio: headerFillRatio,
		blankLookback:   blankLookback,
	}
}

// Chunk splits content into an ordered chunk sequence. Joining the
// chunk contents back together reproduces content exactly: no line is
// dropped, duplicated, or reordered. An empty or header-less document
// yields a single chunk.
func (c *SectionChunker) Chunk(doc domain.Document, content string) ([]domain.Chunk, error) {
	lines := strings.Split(content, "\n")
	headerThreshold := int(float64(c.targetSize) * c.headerFillRatio)

	var groups [][]string
	var buf []string
	size := 0

	for _, line := range lines {
		// A header closes the current chunk only once it already
		// holds substantial content; small sections merge forward.
		if splitHeaderRe.MatchString(line) && len(buf) > 0 && size > headerThreshold {
			groups = append(groups, buf)
			buf = nil
			size = 0
		}

		buf = append(buf, line)
		size += utf8.RuneCountInString(line) + 1

		if size > c.targetSize {
			split := c.findSplitPoint(buf)
			groups = append(groups, buf[:split:split])
			buf = buf[split:]
			size = 0
			for _, l := range buf {
				size += utf8.RuneCountInString(l) + 1
			}
		}
	}

	if len(buf) > 0 {
		groups = append(groups, buf)
	}

	chunks := make([]domain.Chunk, 0, len(groups))
	for i, group := range groups {
		text := strings.Join(group, "\n")
		chunks = append(chunks, domain.Chunk{
			SequenceNumber: i + 1,
			Content:        text,
			CharCount:      utf8.RuneCountInString(text),
			LineCount:      len(group),
			SourcePath:     doc.Path,
		})
	}

	return chunks, nil
}

// findSplitPoint searches backward from the end of buf for the nearest
// blank line within the lookback window. The blank line stays with the
// first of the two resulting chunks. With no blank line in the window
// the split is hard: the whole buffer becomes a chunk.
func (c *SectionChunker) findSplitPoint(buf []string) int {
	lo := len(buf) - c.blankLookback
	if lo < 1 {
		lo = 1
	}
	for j := len(buf) - 1; j >= lo; j-- {
		if strings.TrimSpace(buf[j]) == "" {
			return j + 1
		}
	}
	return len(buf)
}
