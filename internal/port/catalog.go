package port

import "docsplit/internal/domain"

type CatalogStore interface {
	Reset() error

	PutEntry(entry domain.IndexEntry) error

	GetEntry(id string) (domain.IndexEntry, error)

	ListEntries() ([]domain.IndexEntry, error)

	PutIndexInfo(index domain.ChunkIndex) error

	GetIndexInfo() (domain.ChunkIndex, error)

	Stats() (domain.Stats, error)

	Close() error
}
