package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"docsplit/internal/adapter/chunker"
	"docsplit/internal/usecase"
)

var sectionsOutputDir string

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Split a document at numbered section headings",
	Long: `Split a document into one file per numbered section heading
(lines like "1. Executive Summary"). Sections below the configured
minimum size are skipped.

Examples:
  docsplit sections prd.txt
  docsplit sections prd.txt -o sections/`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
	sectionsCmd.Flags().StringVarP(&sectionsOutputDir, "output", "o", "", "output directory (default from config)")
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	srcPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path: %w", err)
	}

	outDir := cfg.Sections.OutputDir
	if sectionsOutputDir != "" {
		outDir = sectionsOutputDir
	}

	sectionsUC := usecase.NewSectionsUseCase(chunker.NewNumberedSplitter(), cfg.Sections.MinSectionChars)

	result, err := sectionsUC.Split(srcPath, outDir, nil)
	if err != nil {
		return fmt.Errorf("section split failed: %w", err)
	}

	for _, file := range result.SectionFiles {
		fmt.Printf("Created section file: %s\n", filepath.Base(file))
	}

	fmt.Printf("\nSections written: %d (skipped %d below %d chars)\n",
		len(result.SectionFiles), result.Skipped, cfg.Sections.MinSectionChars)

	return nil
}
