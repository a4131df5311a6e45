package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the docsplit tool.
type Config struct {
	Split    SplitConfig    `yaml:"split"`
	Sections SectionsConfig `yaml:"sections"`
	Index    IndexConfig    `yaml:"index"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Tasks    TasksConfig    `yaml:"tasks"`
}

// SplitConfig holds chunking configuration. HeaderFillRatio and
// BlankLookback are policy knobs; the shipped defaults are what the
// downstream index/tag step is tuned against, so changing them shifts
// the chunk-size distribution.
type SplitConfig struct {
	TargetSize      int     `yaml:"target_size"`
	OutputDir       string  `yaml:"output_dir"`
	HeaderFillRatio float64 `yaml:"header_fill_ratio"`
	BlankLookback   int     `yaml:"blank_lookback"`
}

// SectionsConfig holds numbered-section splitting configuration.
type SectionsConfig struct {
	OutputDir       string `yaml:"output_dir"`
	MinSectionChars int    `yaml:"min_section_chars"`
}

// IndexConfig holds index generation configuration.
type IndexConfig struct {
	SourceDir    string   `yaml:"source_dir"`
	IndexFile    string   `yaml:"index_file"`
	Includes     []string `yaml:"includes"`
	Excludes     []string `yaml:"excludes"`
	DocumentType string   `yaml:"document_type"`
	Project      string   `yaml:"project"`
}

// CatalogConfig holds catalog database configuration.
type CatalogConfig struct {
	DBPath string `yaml:"db_path"`
}

// TasksConfig holds task conversion configuration.
type TasksConfig struct {
	OutputDir   string `yaml:"output_dir"`
	Tag         string `yaml:"tag"`
	GeneratedBy string `yaml:"generated_by"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Split: SplitConfig{
			TargetSize:      8000,
			OutputDir:       "docs/prd_chunks",
			HeaderFillRatio: 0.7,
			BlankLookback:   20,
		},
		Sections: SectionsConfig{
			OutputDir:       "docs/prd_sections",
			MinSectionChars: 100,
		},
		Index: IndexConfig{
			SourceDir:    "docs/prd_chunks",
			IndexFile:    "prd_chunks.index",
			Includes:     []string{"**/*.md"},
			Excludes:     []string{"**/*_index.md"},
			DocumentType: "PRD",
			Project:      "Guild Manager",
		},
		Catalog: CatalogConfig{
			DBPath: filepath.Join(".docsplit", "catalog.db"),
		},
		Tasks: TasksConfig{
			OutputDir:   filepath.Join(".taskmaster", "tasks"),
			Tag:         "master",
			GeneratedBy: "docsplit",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Return defaults if no config file
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for docsplit.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "docsplit.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".docsplit", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureDir ensures the parent directory of path exists.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0755)
}
