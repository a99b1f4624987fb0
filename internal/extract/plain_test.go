package extract

import (
	"context"
	"errors"
	"testing"

	"docrag/internal/document"
)

func TestPlainTextExtractor(t *testing.T) {
	extractor := &PlainTextExtractor{}

	elements, err := extractor.Extract(context.Background(), "notes.txt", []byte("line one\nline two"))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if elements[0].Text != "line one\nline two" {
		t.Errorf("unexpected text: %q", elements[0].Text)
	}
	if elements[0].Page != nil {
		t.Errorf("expected no page, got %v", *elements[0].Page)
	}
}

func TestPlainTextExtractor_Blank(t *testing.T) {
	extractor := &PlainTextExtractor{}

	_, err := extractor.Extract(context.Background(), "empty.txt", []byte("  \n\t "))
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}

func TestImageExtractor(t *testing.T) {
	extractor := &ImageExtractor{}

	elements, err := extractor.Extract(context.Background(), "diagram.png", []byte{0x89, 0x50})
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if elements[0].Type != document.DocTypeImage {
		t.Errorf("expected image type, got %q", elements[0].Type)
	}
	if elements[0].Text != "diagram.png" {
		t.Errorf("expected filename placeholder, got %q", elements[0].Text)
	}
}

func TestImageExtractor_EmptyFile(t *testing.T) {
	extractor := &ImageExtractor{}

	_, err := extractor.Extract(context.Background(), "empty.png", nil)
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}
