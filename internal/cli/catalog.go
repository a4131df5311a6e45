package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docsplit/config"
	"docsplit/internal/adapter/store"
	"docsplit/internal/usecase"
)

var (
	catalogIndexFile string
	catalogDBPath    string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Load a generated index into a local catalog database",
	Long: `Load the records of a generated JSON index into a bbolt catalog
database so downstream consumers can look up chunk records by id.
The catalog is fully reloaded on every run.

Examples:
  docsplit catalog
  docsplit catalog -i chunks.index -o catalog.db`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
	catalogCmd.Flags().StringVarP(&catalogIndexFile, "index", "i", "", "index file to load (default from config)")
	catalogCmd.Flags().StringVarP(&catalogDBPath, "db", "o", "", "catalog database path (default from config)")
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	idxFile := cfg.Index.IndexFile
	if catalogIndexFile != "" {
		idxFile = catalogIndexFile
	}

	dbPath := cfg.Catalog.DBPath
	if catalogDBPath != "" {
		dbPath = catalogDBPath
	}

	if err := config.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}

	st, err := store.NewCatalogStore(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}
	defer st.Close()

	catalogUC := usecase.NewCatalogUseCase(st)

	result, err := catalogUC.Load(idxFile, newProgress("Loading"))
	if err != nil {
		return fmt.Errorf("catalog load failed: %w", err)
	}

	fmt.Printf("\nCatalog loaded:\n")
	fmt.Printf("  Entries:         %d\n", result.EntriesLoaded)
	fmt.Printf("  Total content:   %d chars\n", result.Stats.TotalChars)
	fmt.Printf("  Avg chunk size:  %.0f chars\n", result.Stats.AvgChunkLen)
	fmt.Printf("  Catalog stored at: %s\n", dbPath)

	return nil
}
