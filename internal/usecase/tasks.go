package usecase

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"docsplit/internal/domain"
)

const (
	taskStatusPending   = "pending"
	taskDefaultPriority = "medium"
)

var trailingDigitsRe = regexp.MustCompile(`(\d+)$`)

// ConvertUseCase converts backlog-style tasks into the TaskMaster
// tasks.json schema. Pure field remapping with default injection; no
// dependency-graph computation happens here.
type ConvertUseCase struct {
	tag         string
	generatedBy string
	now         func() time.Time
}

func NewConvertUseCase(tag, generatedBy string) *ConvertUseCase {
	return &ConvertUseCase{
		tag:         tag,
		generatedBy: generatedBy,
		now:         time.Now,
	}
}

// ConvertResult contains the results of a task conversion.
type ConvertResult struct {
	TasksFile            string
	SummaryFile          string
	TotalTasks           int
	PriorityDistribution map[string]int
}

// Convert reads a JSON array of backlog tasks from inputFile and writes
// tasks.json plus generation_summary.json into outDir.
func (u *ConvertUseCase) Convert(inputFile, outDir string) (*ConvertResult, error) {
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks file: %w", err)
	}

	var backlog []domain.BacklogTask
	if err := json.Unmarshal(data, &backlog); err != nil {
		return nil, fmt.Errorf("failed to parse tasks file %s: %w", inputFile, err)
	}

	doc, err := u.Map(backlog)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	tasksFile := filepath.Join(outDir, "tasks.json")
	if err := writeJSON(tasksFile, doc); err != nil {
		return nil, err
	}

	dist := map[string]int{}
	for _, task := range doc.Tasks {
		dist[task.Priority]++
	}

	summary := domain.GenerationSummary{
		GeneratedAt:          u.now(),
		Source:               inputFile,
		TotalTasks:           len(doc.Tasks),
		PriorityDistribution: dist,
	}
	if len(doc.Tasks) > 0 {
		summary.FirstTask = doc.Tasks[0].Title
		summary.LastTask = doc.Tasks[len(doc.Tasks)-1].Title
	}

	summaryFile := filepath.Join(outDir, "generation_summary.json")
	if err := writeJSON(summaryFile, summary); err != nil {
		return nil, err
	}

	return &ConvertResult{
		TasksFile:            tasksFile,
		SummaryFile:          summaryFile,
		TotalTasks:           len(doc.Tasks),
		PriorityDistribution: dist,
	}, nil
}

// Map converts backlog tasks to a TaskMaster document. Tasks without a
// title are rejected.
func (u *ConvertUseCase) Map(backlog []domain.BacklogTask) (*domain.TaskMasterFile, error) {
	now := u.now()

	tasks := make([]domain.TaskMasterTask, 0, len(backlog))
	for i, src := range backlog {
		if strings.TrimSpace(src.Title) == "" {
			return nil, fmt.Errorf("task %d has no title", i+1)
		}

		priority := src.Priority
		if priority == "" {
			priority = taskDefaultPriority
		}

		details := src.Details
		if details == "" {
			details = bulletList(src.Acceptance)
		}

		testStrategy := src.TestStrategy
		if testStrategy == "" {
			testStrategy = strings.Join(src.Acceptance, "; ")
		}

		tasks = append(tasks, domain.TaskMasterTask{
			ID:           taskNumber(src.ID, i+1),
			Title:        src.Title,
			Description:  src.Desc,
			Status:       taskStatusPending,
			Priority:     priority,
			Dependencies: []int{},
			Details:      details,
			TestStrategy: testStrategy,
			Subtasks:     []any{},
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}

	return &domain.TaskMasterFile{
		Tasks: tasks,
		Metadata: domain.TaskMasterMetadata{
			Version:     "1.0",
			CreatedAt:   now,
			UpdatedAt:   now,
			TotalTasks:  len(tasks),
			GeneratedBy: u.generatedBy,
		},
		Tags: map[string]domain.TaskMasterTag{
			u.tag: {
				Name:        u.tag,
				Description: "Main development tasks",
				CreatedAt:   now,
			},
		},
		CurrentTag: u.tag,
	}, nil
}

// taskNumber extracts the numeric part of ids like "T-0012"; tasks
// without one get their 1-based position.
func taskNumber(id string, fallback int) int {
	if m := trailingDigitsRe.FindString(id); m != "" {
		if n, err := strconv.Atoi(m); err == nil {
			return n
		}
	}
	return fallback
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + item)
	}
	return b.String()
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
