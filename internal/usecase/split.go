package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"docsplit/internal/adapter/chunker"
	"docsplit/internal/adapter/fs"
	"docsplit/internal/domain"
	"docsplit/internal/port"
)

// ProgressCallback reports progress during a run.
type ProgressCallback func(done, total int, current string)

// SplitUseCase chunks one document and persists the chunk files plus a
// per-document Markdown index.
type SplitUseCase struct {
	chunker    port.Chunker
	targetSize int
}

func NewSplitUseCase(chk port.Chunker, targetSize int) *SplitUseCase {
	return &SplitUseCase{
		chunker:    chk,
		targetSize: targetSize,
	}
}

// SplitResult contains the results of a split run.
type SplitResult struct {
	ChunksWritten int
	ChunkFiles    []string
	IndexFile     string
	TotalChars    int
}

// Split reads srcPath, chunks it, and writes one file per chunk into
// outDir along with a Markdown chunk index. Re-running with the same
// inputs overwrites prior outputs byte for byte.
func (u *SplitUseCase) Split(srcPath, outDir string, progress ProgressCallback) (*SplitResult, error) {
	content, err := fs.ReadTextFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source document: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	doc := domain.Document{
		Path:     srcPath,
		BaseName: baseName(srcPath),
	}

	chunks, err := u.chunker.Chunk(doc, content)
	if err != nil {
		return nil, fmt.Errorf("failed to chunk document: %w", err)
	}

	result := &SplitResult{}
	for i, chunk := range chunks {
		name := ChunkFileName(doc.BaseName, chunk.SequenceNumber)
		path := filepath.Join(outDir, name)

		data := chunker.FormatChunkFile(chunk, len(chunks))
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			return nil, fmt.Errorf("failed to write chunk file %s: %w", path, err)
		}

		result.ChunkFiles = append(result.ChunkFiles, path)
		result.TotalChars += chunk.CharCount
		if progress != nil {
			progress(i+1, len(chunks), name)
		}
	}
	result.ChunksWritten = len(chunks)

	indexPath := filepath.Join(outDir, doc.BaseName+"_index.md")
	if err := os.WriteFile(indexPath, []byte(u.renderIndex(doc, len(chunks))), 0644); err != nil {
		return nil, fmt.Errorf("failed to write chunk index %s: %w", indexPath, err)
	}
	result.IndexFile = indexPath

	return result, nil
}

// renderIndex produces the human-readable Markdown listing that
// accompanies the chunk files.
func (u *SplitUseCase) renderIndex(doc domain.Document, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Document Chunks Index\n\n", doc.BaseName)
	fmt.Fprintf(&b, "Total chunks: %d\n", total)
	fmt.Fprintf(&b, "Original file: %s\n", doc.Path)
	fmt.Fprintf(&b, "Chunk size: ~%d chars\n\n", u.targetSize)
	b.WriteString("## Chunks List\n\n")

	for i := 1; i <= total; i++ {
		name := ChunkFileName(doc.BaseName, i)
		fmt.Fprintf(&b, "- [%s](./%s)\n", name, name)
	}
	return b.String()
}

// ChunkFileName returns the deterministic chunk file name for a given
// source base name and 1-based chunk index.
func ChunkFileName(base string, index int) string {
	return fmt.Sprintf("%s_chunk_%03d.md", base, index)
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
