package domain

import "time"

type Document struct {
	Path     string
	BaseName string
}

// Chunk is a contiguous slice of a document's lines. Content never
// includes the metadata preamble that gets prepended on disk.
type Chunk struct {
	SequenceNumber int
	Content        string
	CharCount      int
	LineCount      int
	SourcePath     string
}

// Section is one numbered top-level section of a document.
type Section struct {
	Number  int
	Title   string
	Content string
}

// IndexEntry is the per-chunk summary record in a generated index.
type IndexEntry struct {
	ID          string            `json:"id"`
	File        string            `json:"file"`
	ChunkNumber int               `json:"chunk_number"`
	Title       string            `json:"title"`
	Size        int               `json:"size"`
	CharCount   int               `json:"char_count"`
	LineCount   int               `json:"line_count"`
	Metadata    map[string]string `json:"metadata"`
	Tags        []string          `json:"tags"`
	Summary     string            `json:"summary"`
}

type IndexMetadata struct {
	CreatedAt      string `json:"created_at"`
	DocumentType   string `json:"document_type"`
	Project        string `json:"project"`
	ChunkingMethod string `json:"chunking_method"`
	ChunkSize      int    `json:"chunk_size"`
}

// ChunkIndex is a read-only projection over a finalized chunk sequence.
// It is derived entirely from the chunk files, never edited in place.
type ChunkIndex struct {
	Version         string        `json:"version"`
	SourceDirectory string        `json:"source_directory"`
	TotalDocuments  int           `json:"total_documents"`
	Metadata        IndexMetadata `json:"metadata"`
	Documents       []IndexEntry  `json:"documents"`
}

type Stats struct {
	TotalEntries int
	TotalChars   int
	AvgChunkLen  float64
}

// BacklogTask is the source schema for task conversion.
type BacklogTask struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Desc         string   `json:"desc"`
	Priority     string   `json:"priority,omitempty"`
	Labels       []string `json:"labels,omitempty"`
	Acceptance   []string `json:"acceptance,omitempty"`
	Details      string   `json:"details,omitempty"`
	TestStrategy string   `json:"testStrategy,omitempty"`
}

// TaskMasterTask is the target schema expected by TaskMaster.
type TaskMasterTask struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	Dependencies []int     `json:"dependencies"`
	Details      string    `json:"details"`
	TestStrategy string    `json:"testStrategy"`
	Subtasks     []any     `json:"subtasks"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type TaskMasterMetadata struct {
	Version     string    `json:"version"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	TotalTasks  int       `json:"totalTasks"`
	GeneratedBy string    `json:"generatedBy"`
}

type TaskMasterTag struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type TaskMasterFile struct {
	Tasks      []TaskMasterTask         `json:"tasks"`
	Metadata   TaskMasterMetadata       `json:"metadata"`
	Tags       map[string]TaskMasterTag `json:"tags"`
	CurrentTag string                   `json:"currentTag"`
}

type GenerationSummary struct {
	GeneratedAt          time.Time      `json:"generatedAt"`
	Source               string         `json:"source"`
	TotalTasks           int            `json:"totalTasks"`
	PriorityDistribution map[string]int `json:"priorityDistribution"`
	FirstTask            string         `json:"firstTask,omitempty"`
	LastTask             string         `json:"lastTask,omitempty"`
}
