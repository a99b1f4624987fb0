package extract

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"docrag/internal/document"
)

// PDFExtractor extracts plain text from PDF files, one element per page.
type PDFExtractor struct{}

// Extract parses the PDF and returns one element per page that contains text.
// Pages without extractable text are dropped; a document with no textual page
// at all fails with ErrNoContent.
func (e *PDFExtractor) Extract(ctx context.Context, filename string, data []byte) ([]Element, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf %s: %w", filename, err)
	}

	var elements []Element
	pages := reader.NumPage()

	for i := 1; i <= pages; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		fonts := make(map[string]*pdf.Font)
		text, err := page.GetPlainText(fonts)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}

		if strings.TrimSpace(text) == "" {
			continue
		}

		pageNum := i
		elements = append(elements, Element{
			Text:  text,
			Page:  &pageNum,
			Index: len(elements),
			Type:  document.DocTypeText,
		})
	}

	if len(elements) == 0 {
		return nil, ErrNoContent
	}

	return elements, nil
}
