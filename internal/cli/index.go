package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsplit/internal/adapter/fs"
	"docsplit/internal/usecase"
)

var (
	indexSourceDir string
	indexFile      string
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Build a JSON index over a directory of chunk files",
	Long: `Scan a directory of chunk files and build a JSON index with a
derived title, tags, and summary per chunk, plus a human-readable text
companion listing the same records.

Examples:
  docsplit index                             # Index the default chunk directory
  docsplit index -s chunks/ -i chunks.index  # Custom source and index file`,
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVarP(&indexSourceDir, "source", "s", "", "chunk directory to scan (default from config)")
	indexCmd.Flags().StringVarP(&indexFile, "index", "i", "", "index file to write (default from config)")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	sourceDir := cfg.Index.SourceDir
	if indexSourceDir != "" {
		sourceDir = indexSourceDir
	}

	outFile := cfg.Index.IndexFile
	if indexFile != "" {
		outFile = indexFile
	}

	walker := fs.NewWalker(cfg.Index.Includes, cfg.Index.Excludes)
	indexUC := usecase.NewIndexUseCase(walker, cfg.Index.DocumentType, cfg.Index.Project, cfg.Split.TargetSize)

	fmt.Printf("Scanning %s...\n", sourceDir)

	result, err := indexUC.Build(sourceDir, outFile, newProgress("Indexing"))
	if err != nil {
		return fmt.Errorf("indexing failed: %w", err)
	}

	fmt.Printf("\nIndex created:\n")
	fmt.Printf("  Documents indexed: %d\n", result.Index.TotalDocuments)
	fmt.Printf("  Index file:        %s\n", result.IndexFile)
	fmt.Printf("  Text index:        %s\n", result.TextIndexFile)

	return nil
}
