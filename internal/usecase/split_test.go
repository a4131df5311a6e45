package usecase

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"docsplit/internal/adapter/chunker"
)

func writeTestDoc(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testDocContent() string {
	var lines []string
	lines = append(lines, "# Guild Manager PRD", "")
	for s := 1; s <= 3; s++ {
		lines = append(lines, "## Section "+strings.Repeat("I", s), "")
		for i := 0; i < 10; i++ {
			lines = append(lines, strings.Repeat("p", 60))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func newSplitUC(target int) *SplitUseCase {
	chk := chunker.NewSectionChunker(target, chunker.DefaultHeaderFillRatio, chunker.DefaultBlankLookback)
	return NewSplitUseCase(chk, target)
}

func TestSplitWritesChunkFiles(t *testing.T) {
	src := writeTestDoc(t, "prd.md", testDocContent())
	outDir := filepath.Join(t.TempDir(), "chunks")

	result, err := newSplitUC(600).Split(src, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}

	if result.ChunksWritten < 2 {
		t.Fatalf("expected multiple chunks, got %d", result.ChunksWritten)
	}

	for i, file := range result.ChunkFiles {
		want := filepath.Join(outDir, ChunkFileName("prd", i+1))
		if file != want {
			t.Errorf("chunk file %d = %s, want %s", i, file, want)
		}
		if _, err := os.Stat(file); err != nil {
			t.Errorf("chunk file missing: %v", err)
		}
	}

	if result.IndexFile != filepath.Join(outDir, "prd_index.md") {
		t.Errorf("index file = %s", result.IndexFile)
	}
	indexData, err := os.ReadFile(result.IndexFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(indexData), ChunkFileName("prd", 1)) {
		t.Error("index should list the chunk files")
	}
}

func TestSplitRoundTripThroughFiles(t *testing.T) {
	content := testDocContent()
	src := writeTestDoc(t, "prd.md", content)
	outDir := filepath.Join(t.TempDir(), "chunks")

	result, err := newSplitUC(600).Split(src, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}

	var parts []string
	for _, file := range result.ChunkFiles {
		raw, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		meta, chunkContent := chunker.StripPreamble(string(raw))
		if meta["source"] != src {
			t.Errorf("preamble source = %q", meta["source"])
		}
		parts = append(parts, chunkContent)
	}

	if strings.Join(parts, "\n") != content {
		t.Error("stripped chunk files do not reproduce the source document")
	}
}

func TestSplitDeterminism(t *testing.T) {
	content := testDocContent()
	src := writeTestDoc(t, "prd.md", content)

	dirA := filepath.Join(t.TempDir(), "a")
	dirB := filepath.Join(t.TempDir(), "b")

	uc := newSplitUC(600)
	resA, err := uc.Split(src, dirA, nil)
	if err != nil {
		t.Fatal(err)
	}
	resB, err := uc.Split(src, dirB, nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(resA.ChunkFiles) != len(resB.ChunkFiles) {
		t.Fatalf("chunk counts differ: %d vs %d", len(resA.ChunkFiles), len(resB.ChunkFiles))
	}

	for i := range resA.ChunkFiles {
		a, err := os.ReadFile(resA.ChunkFiles[i])
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(resB.ChunkFiles[i])
		if err != nil {
			t.Fatal(err)
		}
		if string(a) != string(b) {
			t.Errorf("chunk file %d differs between runs", i)
		}
	}
}

func TestSplitMissingSource(t *testing.T) {
	outDir := t.TempDir()

	_, err := newSplitUC(600).Split(filepath.Join(outDir, "nope.md"), outDir, nil)
	if err == nil {
		t.Error("expected error for missing source file")
	}
}

func TestSplitInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "bad.md")
	if err := os.WriteFile(src, []byte{'o', 'k', 0xff, 0xfe, 'x'}, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := newSplitUC(600).Split(src, dir, nil)
	if err == nil {
		t.Fatal("expected error for invalid UTF-8 input")
	}
	if !strings.Contains(err.Error(), "invalid UTF-8") || !strings.Contains(err.Error(), "offset 2") {
		t.Errorf("error should report the invalid byte offset, got %v", err)
	}
}

func TestSplitEmptyDocument(t *testing.T) {
	src := writeTestDoc(t, "empty.md", "")
	outDir := filepath.Join(t.TempDir(), "chunks")

	result, err := newSplitUC(600).Split(src, outDir, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.ChunksWritten != 1 {
		t.Errorf("expected single chunk for empty document, got %d", result.ChunksWritten)
	}
}

func TestSplitProgressCallback(t *testing.T) {
	src := writeTestDoc(t, "prd.md", testDocContent())
	outDir := filepath.Join(t.TempDir(), "chunks")

	var calls int
	var lastTotal int
	_, err := newSplitUC(600).Split(src, outDir, func(done, total int, current string) {
		calls++
		lastTotal = total
		if done > total {
			t.Errorf("done %d exceeds total %d", done, total)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls == 0 || calls != lastTotal {
		t.Errorf("expected one callback per chunk, got %d calls for total %d", calls, lastTotal)
	}
}
