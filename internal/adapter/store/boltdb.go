package store

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"docsplit/internal/domain"
)

var (
	bucketEntries = []byte("entries")
	bucketMeta    = []byte("meta")
	keyIndexInfo  = []byte("index_info")
)

// CatalogStore persists generated index records in a bbolt database so
// downstream consumers can look up chunk records by id without
// re-parsing the JSON index.
type CatalogStore struct {
	db *bbolt.DB
}

func NewCatalogStore(path string) (*CatalogStore, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog db: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, b := range [][]byte{bucketEntries, bucketMeta} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", b, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &CatalogStore{db: db}, nil
}

// Reset drops all stored entries. Each catalog run fully reloads the
// index, matching the regenerate-everything model of the chunker.
func (s *CatalogStore) Reset() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketEntries); err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		_, err := tx.CreateBucket(bucketEntries)
		return err
	})
}

func (s *CatalogStore) PutEntry(entry domain.IndexEntry) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketEntries).Put([]byte(entry.ID), data)
	})
}

func (s *CatalogStore) GetEntry(id string) (domain.IndexEntry, error) {
	var entry domain.IndexEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketEntries).Get([]byte(id))
		if data == nil {
			return fmt.Errorf("entry not found: %s", id)
		}
		return json.Unmarshal(data, &entry)
	})
	return entry, err
}

func (s *CatalogStore) ListEntries() ([]domain.IndexEntry, error) {
	var entries []domain.IndexEntry
	err := s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketEntries).ForEach(func(_, v []byte) error {
			var entry domain.IndexEntry
			if err := json.Unmarshal(v, &entry); err != nil {
				return err
			}
			entries = append(entries, entry)
			return nil
		})
	})
	return entries, err
}

// PutIndexInfo stores the index-level metadata (without the per-chunk
// records, which live in the entries bucket).
func (s *CatalogStore) PutIndexInfo(index domain.ChunkIndex) error {
	index.Documents = nil
	return s.db.Update(func(tx *bbolt.Tx) error {
		data, err := json.Marshal(index)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketMeta).Put(keyIndexInfo, data)
	})
}

func (s *CatalogStore) GetIndexInfo() (domain.ChunkIndex, error) {
	var index domain.ChunkIndex
	err := s.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketMeta).Get(keyIndexInfo)
		if data == nil {
			return fmt.Errorf("index info not found")
		}
		return json.Unmarshal(data, &index)
	})
	return index, err
}

func (s *CatalogStore) Stats() (domain.Stats, error) {
	entries, err := s.ListEntries()
	if err != nil {
		return domain.Stats{}, err
	}

	stats := domain.Stats{TotalEntries: len(entries)}
	for _, e := range entries {
		stats.TotalChars += e.CharCount
	}
	if stats.TotalEntries > 0 {
		stats.AvgChunkLen = float64(stats.TotalChars) / float64(stats.TotalEntries)
	}
	return stats, nil
}

func (s *CatalogStore) Close() error {
	return s.db.Close()
}
