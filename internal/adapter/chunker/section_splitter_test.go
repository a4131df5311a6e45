package chunker

import (
	"strings"
	"testing"
)

func TestNumberedSplitterBasic(t *testing.T) {
	content := strings.Join([]string{
		"Some preface text",
		"before any numbered heading.",
		"1. Executive Summary",
		"The summary body.",
		"2. Scope",
		"The scope body.",
		"More scope.",
	}, "\n")

	sections := NewNumberedSplitter().Split(content)

	if len(sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(sections))
	}

	if sections[0].Title != PrefaceTitle {
		t.Errorf("first section title = %q", sections[0].Title)
	}
	if sections[1].Title != "1. Executive Summary" {
		t.Errorf("second section title = %q", sections[1].Title)
	}
	if sections[2].Title != "2. Scope" {
		t.Errorf("third section title = %q", sections[2].Title)
	}

	for i, s := range sections {
		if s.Number != i+1 {
			t.Errorf("section %d has number %d", i, s.Number)
		}
	}

	var parts []string
	for _, s := range sections {
		parts = append(parts, s.Content)
	}
	if strings.Join(parts, "\n") != content {
		t.Error("joined sections do not reproduce the document")
	}
}

func TestNumberedSplitterSubsectionHeadings(t *testing.T) {
	content := "3.1 Core Loop\nbody\n4. Next\nmore"

	sections := NewNumberedSplitter().Split(content)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].Title != "3.1 Core Loop" {
		t.Errorf("title = %q", sections[0].Title)
	}
}

func TestNumberedSplitterNoHeadings(t *testing.T) {
	content := "just prose\nno headings here"

	sections := NewNumberedSplitter().Split(content)
	if len(sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(sections))
	}
	if sections[0].Title != PrefaceTitle || sections[0].Content != content {
		t.Error("single section should carry the whole document under the preface title")
	}
}

func TestSafeSectionName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1. Executive Summary", "1-Executive-Summary"},
		{"3.1 Core Loop: Design!", "31-Core-Loop-Design"},
		{"plain", "plain"},
		{strings.Repeat("a", 40), strings.Repeat("a", 30)},
	}

	for _, tt := range tests {
		if got := SafeSectionName(tt.in, 30); got != tt.want {
			t.Errorf("SafeSectionName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
