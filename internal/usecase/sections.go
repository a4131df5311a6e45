package usecase

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"docsplit/internal/adapter/chunker"
	"docsplit/internal/adapter/fs"
	"docsplit/internal/port"
)

const sectionNameMaxLen = 30

// SectionsUseCase splits a document at numbered section headings and
// writes one file per section.
type SectionsUseCase struct {
	splitter port.SectionSplitter
	minChars int
}

func NewSectionsUseCase(splitter port.SectionSplitter, minChars int) *SectionsUseCase {
	return &SectionsUseCase{
		splitter: splitter,
		minChars: minChars,
	}
}

// SectionsResult contains the results of a sections run.
type SectionsResult struct {
	SectionFiles []string
	Skipped      int
}

// Split writes each sufficiently large section of srcPath into outDir.
// Section numbering counts skipped sections so file names stay stable
// when small sections grow past the threshold.
func (u *SectionsUseCase) Split(srcPath, outDir string, progress ProgressCallback) (*SectionsResult, error) {
	content, err := fs.ReadTextFile(srcPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read source document: %w", err)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	sections := u.splitter.Split(content)

	result := &SectionsResult{}
	for i, section := range sections {
		if utf8.RuneCountInString(strings.TrimSpace(section.Content)) < u.minChars {
			result.Skipped++
			continue
		}

		name := fmt.Sprintf("section_%02d_%s.txt",
			section.Number, chunker.SafeSectionName(section.Title, sectionNameMaxLen))
		path := filepath.Join(outDir, name)

		if err := os.WriteFile(path, []byte(section.Content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write section file %s: %w", path, err)
		}

		result.SectionFiles = append(result.SectionFiles, path)
		if progress != nil {
			progress(i+1, len(sections), name)
		}
	}

	return result, nil
}
