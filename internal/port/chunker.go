package port

import "docsplit/internal/domain"

type Chunker interface {
	Chunk(doc domain.Document, content string) ([]domain.Chunk, error)
}

type SectionSplitter interface {
	Split(content string) []domain.Section
}
