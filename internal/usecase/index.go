package usecase

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"docsplit/internal/adapter/analyzer"
	"docsplit/internal/adapter/chunker"
	"docsplit/internal/adapter/fs"
	"docsplit/internal/domain"
	"docsplit/internal/port"
)

const indexVersion = "1.0"

// IndexUseCase scans a directory of chunk files and produces the JSON
// chunk index plus its human-readable text companion.
type IndexUseCase struct {
	walker       port.FileWalker
	documentType string
	project      string
	chunkSize    int
}

func NewIndexUseCase(walker port.FileWalker, documentType, project string, chunkSize int) *IndexUseCase {
	return &IndexUseCase{
		walker:       walker,
		documentType: documentType,
		project:      project,
		chunkSize:    chunkSize,
	}
}

// IndexResult contains the results of an index run.
type IndexResult struct {
	Index         *domain.ChunkIndex
	IndexFile     string
	TextIndexFile string
}

// Build derives the chunk index from the files under sourceDir and
// writes it to indexFile. The index is a projection: it never feeds
// back into the chunk files.
func (u *IndexUseCase) Build(sourceDir, indexFile string, progress ProgressCallback) (*IndexResult, error) {
	files, err := u.walker.Walk(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan source directory: %w", err)
	}

	index := &domain.ChunkIndex{
		Version:         indexVersion,
		SourceDirectory: sourceDir,
		TotalDocuments:  len(files),
		Metadata: domain.IndexMetadata{
			CreatedAt:      time.Now().Format("2006-01-02"),
			DocumentType:   u.documentType,
			Project:        u.project,
			ChunkingMethod: "section-aware",
			ChunkSize:      u.chunkSize,
		},
		Documents: []domain.IndexEntry{},
	}

	for i, file := range files {
		entry, err := u.indexFile(file.Path, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", file.Path, err)
		}
		index.Documents = append(index.Documents, entry)
		if progress != nil {
			progress(i+1, len(files), filepath.Base(file.Path))
		}
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal index: %w", err)
	}
	if err := os.WriteFile(indexFile, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to write index file %s: %w", indexFile, err)
	}

	textFile := TextIndexFileName(indexFile)
	if err := os.WriteFile(textFile, []byte(renderTextIndex(index)), 0644); err != nil {
		return nil, fmt.Errorf("failed to write text index %s: %w", textFile, err)
	}

	return &IndexResult{
		Index:         index,
		IndexFile:     indexFile,
		TextIndexFile: textFile,
	}, nil
}

// indexFile builds the summary record for one chunk file.
func (u *IndexUseCase) indexFile(path string, number int) (domain.IndexEntry, error) {
	raw, err := fs.ReadTextFile(path)
	if err != nil {
		return domain.IndexEntry{}, err
	}

	meta, content := chunker.StripPreamble(raw)
	content = strings.TrimSpace(content)
	if meta == nil {
		meta = map[string]string{}
	}

	name := filepath.Base(path)
	base := strings.TrimSuffix(name, filepath.Ext(name))

	return domain.IndexEntry{
		ID:          DocumentID(name),
		File:        path,
		ChunkNumber: number,
		Title:       analyzer.ExtractTitle(content, base),
		Size:        utf8.RuneCountInString(content),
		CharCount:   utf8.RuneCountInString(content),
		LineCount:   len(strings.Split(content, "\n")),
		Metadata:    meta,
		Tags:        analyzer.ExtractTags(content),
		Summary:     analyzer.ExtractSummary(content),
	}, nil
}

// DocumentID derives a stable 12-character identifier from a chunk file
// name. The same name always yields the same id; collisions are not
// resolved since file names are caller-unique.
func DocumentID(fileName string) string {
	sum := md5.Sum([]byte(fileName))
	return hex.EncodeToString(sum[:])[:12]
}

// TextIndexFileName returns the companion text index path for a JSON
// index path.
func TextIndexFileName(indexFile string) string {
	if strings.HasSuffix(indexFile, ".index") {
		return strings.TrimSuffix(indexFile, ".index") + "_text.index"
	}
	return indexFile + "_text"
}

func renderTextIndex(index *domain.ChunkIndex) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Chunks Embedding Index\n\n", index.Metadata.DocumentType)
	fmt.Fprintf(&b, "Total Documents: %d\n", index.TotalDocuments)
	fmt.Fprintf(&b, "Source Directory: %s\n\n", index.SourceDirectory)
	b.WriteString("## Document List\n\n")

	for _, doc := range index.Documents {
		fmt.Fprintf(&b, "### [%s] %s\n", doc.ID, doc.Title)
		fmt.Fprintf(&b, "- File: %s\n", doc.File)
		fmt.Fprintf(&b, "- Size: %d chars\n", doc.Size)
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(doc.Tags, ", "))
		fmt.Fprintf(&b, "- Summary: %s\n\n", doc.Summary)
	}
	return b.String()
}
