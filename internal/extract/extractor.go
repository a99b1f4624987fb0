package extract

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"docrag/internal/document"
)

// ErrNoContent is returned when a file yields no usable text elements.
// The ingestion pipeline records such files as failed, not skipped.
var ErrNoContent = errors.New("no extractable content")

// ErrUnsupported is returned for file types no extractor handles.
var ErrUnsupported = errors.New("unsupported file type")

// Element is a unit of extracted text with positional provenance.
// Extraction internals are a black box to the rest of the system; chunking
// policy operates on elements only.
type Element struct {
	// Text is the extracted text. May be blank for non-text elements (images).
	Text string
	// Page is the 1-based page number, for sources with a page concept.
	Page *int
	// Index is the element's position within the source.
	Index int
	// Type classifies the element.
	Type document.DocType
}

// Extractor extracts text elements from a file's raw bytes.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) ([]Element, error)
}

// Registry dispatches extraction by file extension.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates a registry with the default extractor set.
func NewRegistry() *Registry {
	md := NewMarkdownExtractor()
	plain := &PlainTextExtractor{}
	img := &ImageExtractor{}

	return &Registry{
		byExt: map[string]Extractor{
			".pdf":      &PDFExtractor{},
			".md":       md,
			".markdown": md,
			".txt":      plain,
			".text":     plain,
			".png":      img,
			".jpg":      img,
			".jpeg":     img,
			".gif":      img,
			".webp":     img,
		},
	}
}

// Extract dispatches to the extractor registered for the file's extension.
func (r *Registry) Extract(ctx context.Context, filename string, data []byte) ([]Element, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	extractor, ok := r.byExt[ext]
	if !ok {
		return nil, ErrUnsupported
	}
	return extractor.Extract(ctx, filename, data)
}
