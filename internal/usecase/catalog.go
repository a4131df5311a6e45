package usecase

import (
	"encoding/json"
	"fmt"
	"os"

	"docsplit/internal/domain"
	"docsplit/internal/port"
)

// CatalogUseCase loads a generated chunk index into a catalog store.
type CatalogUseCase struct {
	store port.CatalogStore
}

func NewCatalogUseCase(store port.CatalogStore) *CatalogUseCase {
	return &CatalogUseCase{store: store}
}

// CatalogResult contains the results of a catalog load.
type CatalogResult struct {
	EntriesLoaded int
	Stats         domain.Stats
}

// Load replaces the catalog contents with the records from the JSON
// index at indexFile.
func (u *CatalogUseCase) Load(indexFile string, progress ProgressCallback) (*CatalogResult, error) {
	data, err := os.ReadFile(indexFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read index file: %w", err)
	}

	var index domain.ChunkIndex
	if err := json.Unmarshal(data, &index); err != nil {
		return nil, fmt.Errorf("failed to parse index file %s: %w", indexFile, err)
	}

	if err := u.store.Reset(); err != nil {
		return nil, fmt.Errorf("failed to reset catalog: %w", err)
	}

	for i, entry := range index.Documents {
		if err := u.store.PutEntry(entry); err != nil {
			return nil, fmt.Errorf("failed to store entry %s: %w", entry.ID, err)
		}
		if progress != nil {
			progress(i+1, len(index.Documents), entry.ID)
		}
	}

	if err := u.store.PutIndexInfo(index); err != nil {
		return nil, fmt.Errorf("failed to store index info: %w", err)
	}

	stats, err := u.store.Stats()
	if err != nil {
		return nil, fmt.Errorf("failed to compute catalog stats: %w", err)
	}

	return &CatalogResult{
		EntriesLoaded: len(index.Documents),
		Stats:         stats,
	}, nil
}
