package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsplit/internal/adapter/chunker"
)

func TestSectionsSplit(t *testing.T) {
	content := strings.Join([]string{
		"1. Executive Summary",
		strings.Repeat("summary prose ", 20),
		"2. Tiny",
		"too small",
		"3. Architecture",
		strings.Repeat("architecture prose ", 20),
	}, "\n")
	src := writeTestDoc(t, "prd.txt", content)
	outDir := filepath.Join(t.TempDir(), "sections")

	uc := NewSectionsUseCase(chunker.NewNumberedSplitter(), 100)
	result, err := uc.Split(src, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(result.SectionFiles) != 2 {
		t.Fatalf("expected 2 section files, got %d", len(result.SectionFiles))
	}
	if result.Skipped != 1 {
		t.Errorf("expected 1 skipped section, got %d", result.Skipped)
	}

	// Numbering counts the skipped section so names stay stable.
	wantNames := []string{
		"section_01_1-Executive-Summary.txt",
		"section_03_3-Architecture.txt",
	}
	for i, want := range wantNames {
		if got := filepath.Base(result.SectionFiles[i]); got != want {
			t.Errorf("section file %d = %q, want %q", i, got, want)
		}
	}

	data, err := os.ReadFile(result.SectionFiles[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "1. Executive Summary") {
		t.Error("section file should start with its heading line")
	}
}

func TestSectionsMissingSource(t *testing.T) {
	uc := NewSectionsUseCase(chunker.NewNumberedSplitter(), 100)

	if _, err := uc.Split(filepath.Join(t.TempDir(), "nope.txt"), t.TempDir(), nil); err == nil {
		t.Error("expected error for missing source file")
	}
}
