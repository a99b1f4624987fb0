package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"docrag/internal/contextutil"
	"docrag/internal/document"
	"docrag/internal/extract"
)

// Chunker splits extracted elements into retrieval-sized chunks using
// recursive character splitting.
type Chunker struct {
	splitter textsplitter.RecursiveCharacter
	size     int
	overlap  int
}

// NewChunker creates a chunker with the given size and overlap, both in
// characters. Overlap must be smaller than size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("chunk size must be positive, got %d", size)
	}
	if overlap < 0 || overlap >= size {
		return nil, fmt.Errorf("chunk overlap must be in [0, size), got %d", overlap)
	}

	return &Chunker{
		splitter: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(size),
			textsplitter.WithChunkOverlap(overlap),
		),
		size:    size,
		overlap: overlap,
	}, nil
}

// Split turns a document's extracted elements into chunks carrying the
// document's source name and content hash. Elements shorter than the chunk
// size come through as a single chunk; image elements are never split.
// Blank pieces are dropped with a warning.
func (c *Chunker) Split(ctx context.Context, elements []extract.Element, source, contentHash string) ([]document.Chunk, error) {
	logger := contextutil.LoggerFromContext(ctx)

	var chunks []document.Chunk
	for _, element := range elements {
		pieces := []string{element.Text}

		if element.Type != document.DocTypeImage {
			split, err := c.splitter.SplitText(element.Text)
			if err != nil {
				return nil, fmt.Errorf("failed to split element %d of %s: %w", element.Index, source, err)
			}
			pieces = split
		}

		elementIndex := element.Index
		for _, piece := range pieces {
			if strings.TrimSpace(piece) == "" {
				logger.WarnContext(ctx, "dropping blank chunk", "source", source, "element_index", element.Index)
				continue
			}

			chunks = append(chunks, document.Chunk{
				Text:         piece,
				Source:       source,
				Page:         element.Page,
				ElementIndex: &elementIndex,
				Type:         element.Type,
				ContentHash:  contentHash,
			})
		}
	}

	return chunks, nil
}
