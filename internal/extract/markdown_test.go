package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestMarkdownExtractor_BlocksBecomeElements(t *testing.T) {
	extractor := NewMarkdownExtractor()

	input := "# Heading\n\nFirst paragraph with content.\n\nSecond paragraph here.\n"
	elements, err := extractor.Extract(context.Background(), "doc.md", []byte(input))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(elements))
	}
	if elements[0].Text != "Heading" {
		t.Errorf("unexpected heading text: %q", elements[0].Text)
	}
	if elements[1].Text != "First paragraph with content." {
		t.Errorf("unexpected paragraph text: %q", elements[1].Text)
	}
	for i, el := range elements {
		if el.Index != i {
			t.Errorf("element %d has index %d", i, el.Index)
		}
	}
}

func TestMarkdownExtractor_CodeBlock(t *testing.T) {
	extractor := NewMarkdownExtractor()

	input := "Intro.\n\n```go\nfunc main() {}\n```\n"
	elements, err := extractor.Extract(context.Background(), "doc.md", []byte(input))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(elements))
	}
	if !strings.Contains(elements[1].Text, "func main() {}") {
		t.Errorf("expected code content preserved, got %q", elements[1].Text)
	}
}

func TestMarkdownExtractor_Table(t *testing.T) {
	extractor := NewMarkdownExtractor()

	input := "| Name | Value |\n|------|-------|\n| a    | 1     |\n"
	elements, err := extractor.Extract(context.Background(), "doc.md", []byte(input))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if !strings.Contains(elements[0].Text, "Name | Value") {
		t.Errorf("expected pipe-separated header row, got %q", elements[0].Text)
	}
	if !strings.Contains(elements[0].Text, "a | 1") {
		t.Errorf("expected data row, got %q", elements[0].Text)
	}
}

func TestMarkdownExtractor_List(t *testing.T) {
	extractor := NewMarkdownExtractor()

	input := "- first item\n- second item\n"
	elements, err := extractor.Extract(context.Background(), "doc.md", []byte(input))
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if len(elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(elements))
	}
	if !strings.Contains(elements[0].Text, "first item") || !strings.Contains(elements[0].Text, "second item") {
		t.Errorf("expected both items, got %q", elements[0].Text)
	}
}

func TestMarkdownExtractor_Empty(t *testing.T) {
	extractor := NewMarkdownExtractor()

	_, err := extractor.Extract(context.Background(), "empty.md", []byte("   \n\n  "))
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}
