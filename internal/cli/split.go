package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsplit/internal/adapter/chunker"
	"docsplit/internal/usecase"
)

var (
	splitTargetSize int
	splitOutputDir  string
)

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Split a document into bounded-size chunk files",
	Long: `Split a document into bounded-size chunks, preferring to break at
header and blank-line boundaries. Each chunk is written with a metadata
preamble, and a Markdown index listing all chunks is generated alongside.

Examples:
  docsplit split prd.md                      # Chunk with defaults (~8000 chars)
  docsplit split prd.md -s 4000 -o chunks/   # Smaller chunks, custom directory`,
	Args: cobra.ExactArgs(1),
	RunE: runSplit,
}

func init() {
	rootCmd.AddCommand(splitCmd)
	splitCmd.Flags().IntVarP(&splitTargetSize, "size", "s", 0, "target chunk size in characters (default from config)")
	splitCmd.Flags().StringVarP(&splitOutputDir, "output", "o", "", "output directory (default from config)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	srcPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	targetSize := cfg.Split.TargetSize
	if splitTargetSize > 0 {
		targetSize = splitTargetSize
	}

	outDir := cfg.Split.OutputDir
	if splitOutputDir != "" {
		outDir = splitOutputDir
	}

	chk := chunker.NewSectionChunker(targetSize, cfg.Split.HeaderFillRatio, cfg.Split.BlankLookback)
	splitUC := usecase.NewSplitUseCase(chk, targetSize)

	fmt.Printf("Splitting %s (target %d chars)...\n", srcPath, targetSize)

	result, err := splitUC.Split(srcPath, outDir, newProgress("Splitting"))
	if err != nil {
		return fmt.Errorf("split failed: %w", err)
	}

	fmt.Printf("\nSplit complete:\n")
	fmt.Printf("  Chunks written: %d\n", result.ChunksWritten)
	fmt.Printf("  Total content:  %d chars\n", result.TotalChars)
	fmt.Printf("  Chunk index:    %s\n", result.IndexFile)

	return nil
}
