package chunker

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"docsplit/internal/domain"
)

const preambleDelim = "---"

// FormatChunkFile renders a chunk the way it is persisted: a metadata
// preamble block, a blank line, then the raw chunk content. The
// preamble is not part of the logical chunk; StripPreamble undoes it.
func FormatChunkFile(chunk domain.Chunk, total int) string {
	var b strings.Builder
	b.WriteString(preambleDelim + "\n")
	fmt.Fprintf(&b, "source: %s\n", chunk.SourcePath)
	fmt.Fprintf(&b, "chunk: %d/%d\n", chunk.SequenceNumber, total)
	fmt.Fprintf(&b, "size: %d chars\n", chunk.CharCount)
	b.WriteString(preambleDelim + "\n\n")
	b.WriteString(chunk.Content)
	return b.String()
}

// StripPreamble splits a persisted chunk file back into its metadata
// key/value pairs and the original content. Files without a preamble
// pass through unchanged with nil metadata.
func StripPreamble(raw string) (map[string]string, string) {
	if !strings.HasPrefix(raw, preambleDelim) {
		return nil, raw
	}

	end := strings.Index(raw[len(preambleDelim):], preambleDelim)
	if end < 0 {
		return nil, raw
	}
	end += len(preambleDelim)

	block := strings.TrimSpace(raw[len(preambleDelim):end])
	meta := map[string]string{}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		// Fall back to line-wise parsing for values yaml rejects.
		meta = map[string]string{}
		for _, line := range strings.Split(block, "\n") {
			if k, v, ok := strings.Cut(line, ":"); ok {
				meta[strings.TrimSpace(k)] = strings.TrimSpace(v)
			}
		}
	}

	// Remove only what FormatChunkFile injected so that stripped
	// contents concatenate back into the original document.
	content := raw[end+len(preambleDelim):]
	content = strings.TrimPrefix(content, "\n\n")
	return meta, content
}
