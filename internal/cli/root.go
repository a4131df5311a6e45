package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"docsplit/config"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "docsplit",
	Short: "docsplit - section-aware document chunking for task and RAG pipelines",
	Long: `docsplit splits large structured documents into bounded-size chunks,
preferring header and paragraph boundaries, and builds summary indexes
over the results for downstream task-management and RAG tooling.

Example usage:
  docsplit split prd.md            # Chunk a document into bounded pieces
  docsplit index                   # Build the JSON index over the chunks
  docsplit catalog                 # Load the index into a local catalog db`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./docsplit.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
