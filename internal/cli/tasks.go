package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsplit/internal/usecase"
)

var tasksOutputDir string

var tasksCmd = &cobra.Command{
	Use:   "tasks <backlog.json>",
	Short: "Convert backlog tasks to the TaskMaster format",
	Long: `Convert a JSON array of backlog tasks into the TaskMaster
tasks.json schema, plus a generation summary with the priority
distribution.

Examples:
  docsplit tasks backlog.json
  docsplit tasks backlog.json -o .taskmaster/tasks`,
	Args: cobra.ExactArgs(1),
	RunE: runTasks,
}

func init() {
	rootCmd.AddCommand(tasksCmd)
	tasksCmd.Flags().StringVarP(&tasksOutputDir, "output", "o", "", "output directory (default from config)")
}

func runTasks(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	outDir := cfg.Tasks.OutputDir
	if tasksOutputDir != "" {
		outDir = tasksOutputDir
	}

	convertUC := usecase.NewConvertUseCase(cfg.Tasks.Tag, cfg.Tasks.GeneratedBy)

	result, err := convertUC.Convert(args[0], outDir)
	if err != nil {
		return fmt.Errorf("task conversion failed: %w", err)
	}

	fmt.Printf("Generated %d tasks\n", result.TotalTasks)
	fmt.Printf("Tasks saved to: %s\n", result.TasksFile)

	fmt.Printf("\nTask priority distribution:\n")
	for priority, count := range result.PriorityDistribution {
		fmt.Printf("  %s: %d tasks\n", priority, count)
	}

	return nil
}
