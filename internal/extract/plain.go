package extract

import (
	"context"
	"strings"

	"docrag/internal/document"
)

// PlainTextExtractor treats the whole file as a single text element.
type PlainTextExtractor struct{}

// Extract returns the file content as one element, or ErrNoContent when blank.
func (e *PlainTextExtractor) Extract(ctx context.Context, filename string, data []byte) ([]Element, error) {
	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, ErrNoContent
	}

	return []Element{{
		Text:  content,
		Index: 0,
		Type:  document.DocTypeText,
	}}, nil
}

// ImageExtractor produces a single placeholder element for image files.
// Images carry no extractable text; the placeholder keeps the file
// retrievable by name, and the context assembler renders image chunks as a
// source label only.
type ImageExtractor struct{}

// Extract returns one image element whose text is the filename.
func (e *ImageExtractor) Extract(ctx context.Context, filename string, data []byte) ([]Element, error) {
	if len(data) == 0 {
		return nil, ErrNoContent
	}

	return []Element{{
		Text:  filename,
		Index: 0,
		Type:  document.DocTypeImage,
	}}, nil
}
