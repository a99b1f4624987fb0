package ingest

import (
	"context"
	"strings"
	"testing"

	"docrag/internal/document"
	"docrag/internal/extract"
)

func intPtr(i int) *int { return &i }

func TestChunker_ShortElementSingleChunk(t *testing.T) {
	chunker, err := NewChunker(1000, 150)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	elements := []extract.Element{
		{Text: "a short paragraph", Index: 0, Type: document.DocTypeText},
	}

	chunks, err := chunker.Split(context.Background(), elements, "notes.txt", "hash-1")
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "a short paragraph" {
		t.Errorf("unexpected chunk text: %q", chunks[0].Text)
	}
	if chunks[0].Source != "notes.txt" {
		t.Errorf("expected source notes.txt, got %q", chunks[0].Source)
	}
	if chunks[0].ContentHash != "hash-1" {
		t.Errorf("expected content hash hash-1, got %q", chunks[0].ContentHash)
	}
	if chunks[0].ElementIndex == nil || *chunks[0].ElementIndex != 0 {
		t.Errorf("expected element index 0, got %v", chunks[0].ElementIndex)
	}
}

func TestChunker_LongElementSplitsWithOverlap(t *testing.T) {
	chunker, err := NewChunker(100, 20)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	// 60 words of ~7 chars each, far beyond one chunk.
	words := make([]string, 60)
	for i := range words {
		words[i] = "content"
	}
	text := strings.Join(words, " ")

	elements := []extract.Element{{Text: text, Index: 0, Type: document.DocTypeText}}

	chunks, err := chunker.Split(context.Background(), elements, "big.txt", "hash-2")
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if len(chunk.Text) > 100 {
			t.Errorf("chunk %d exceeds size limit: %d chars", i, len(chunk.Text))
		}
		if chunk.ContentHash != "hash-2" {
			t.Errorf("chunk %d has wrong hash: %q", i, chunk.ContentHash)
		}
	}
}

func TestChunker_PreservesPageMetadata(t *testing.T) {
	chunker, err := NewChunker(1000, 150)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	elements := []extract.Element{
		{Text: "page one text", Page: intPtr(1), Index: 0, Type: document.DocTypeText},
		{Text: "page two text", Page: intPtr(2), Index: 1, Type: document.DocTypeText},
	}

	chunks, err := chunker.Split(context.Background(), elements, "doc.pdf", "hash-3")
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}

	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0].Page == nil || *chunks[0].Page != 1 {
		t.Errorf("expected page 1, got %v", chunks[0].Page)
	}
	if chunks[1].Page == nil || *chunks[1].Page != 2 {
		t.Errorf("expected page 2, got %v", chunks[1].Page)
	}
}

func TestChunker_ImageElementNotSplit(t *testing.T) {
	chunker, err := NewChunker(10, 2)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	elements := []extract.Element{
		{Text: "a-very-long-image-filename.png", Index: 0, Type: document.DocTypeImage},
	}

	chunks, err := chunker.Split(context.Background(), elements, "a-very-long-image-filename.png", "hash-4")
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}

	if len(chunks) != 1 {
		t.Fatalf("expected image to stay a single chunk, got %d", len(chunks))
	}
	if chunks[0].Type != document.DocTypeImage {
		t.Errorf("expected image type, got %q", chunks[0].Type)
	}
}

func TestChunker_DropsBlankElements(t *testing.T) {
	chunker, err := NewChunker(1000, 150)
	if err != nil {
		t.Fatalf("failed to create chunker: %v", err)
	}

	elements := []extract.Element{
		{Text: "   \n\t ", Index: 0, Type: document.DocTypeText},
		{Text: "real content", Index: 1, Type: document.DocTypeText},
	}

	chunks, err := chunker.Split(context.Background(), elements, "mixed.txt", "hash-5")
	if err != nil {
		t.Fatalf("failed to split: %v", err)
	}

	if len(chunks) != 1 {
		t.Fatalf("expected blank element dropped, got %d chunks", len(chunks))
	}
	if chunks[0].Text != "real content" {
		t.Errorf("unexpected chunk text: %q", chunks[0].Text)
	}
}

func TestNewChunker_RejectsInvalidConfig(t *testing.T) {
	cases := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative overlap", 100, -1},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewChunker(tc.size, tc.overlap); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestContentHash(t *testing.T) {
	h1 := ContentHash([]byte("hello"))
	h2 := ContentHash([]byte("hello"))
	h3 := ContentHash([]byte("world"))

	if h1 != h2 {
		t.Error("expected identical content to hash identically")
	}
	if h1 == h3 {
		t.Error("expected different content to hash differently")
	}
	if len(h1) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(h1))
	}
	// Known digest of "hello".
	if h1 != "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824" {
		t.Errorf("unexpected digest: %s", h1)
	}
}
