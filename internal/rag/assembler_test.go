package rag

import (
	"strings"
	"testing"

	"docrag/internal/document"
)

func intPtr(i int) *int { return &i }

func TestFormatContext_Empty(t *testing.T) {
	if got := FormatContext(nil); got != NoContextSentinel {
		t.Errorf("expected sentinel, got %q", got)
	}
	if got := FormatContext([]document.Scored{}); got != NoContextSentinel {
		t.Errorf("expected sentinel, got %q", got)
	}
}

func TestFormatContext_TextChunkWithPage(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{Text: "the findings", Source: "report.pdf", Page: intPtr(3), Type: document.DocTypeText}, Score: 0.9},
	}

	got := FormatContext(results)
	want := "[Context from text document: report.pdf, page 3]\nthe findings"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatContext_TextChunkWithoutPage(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{Text: "plain notes", Source: "notes.txt", Type: document.DocTypeText}, Score: 0.8},
	}

	got := FormatContext(results)
	if strings.Contains(got, "page") {
		t.Errorf("expected no page info, got %q", got)
	}
	if !strings.HasPrefix(got, "[Context from text document: notes.txt]") {
		t.Errorf("unexpected header: %q", got)
	}
}

func TestFormatContext_ImageChunk(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{Text: "diagram.png", Source: "diagram.png", Type: document.DocTypeImage}, Score: 0.7},
	}

	got := FormatContext(results)
	if got != "[Context from image: diagram.png]" {
		t.Errorf("expected image label only, got %q", got)
	}
}

func TestFormatContext_SeparatorBetweenChunks(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{Text: "first", Source: "a.txt", Type: document.DocTypeText}, Score: 0.9},
		{Chunk: document.Chunk{Text: "second", Source: "b.txt", Type: document.DocTypeText}, Score: 0.8},
	}

	got := FormatContext(results)
	if strings.Count(got, "\n---\n") != 1 {
		t.Errorf("expected one separator, got %q", got)
	}
}

func TestFormatContext_StripsLinks(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{
			Text:   "see https://example.com/page and www.other.org for details",
			Source: "links.txt",
			Type:   document.DocTypeText,
		}, Score: 0.9},
	}

	got := FormatContext(results)
	if strings.Contains(got, "https://") || strings.Contains(got, "www.") {
		t.Errorf("expected links removed, got %q", got)
	}
	if !strings.Contains(got, "for details") {
		t.Errorf("expected surrounding text preserved, got %q", got)
	}
}

func TestFormatContext_BlankChunkPlaceholder(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{Text: "   ", Source: "empty.txt", Type: document.DocTypeText}, Score: 0.5},
	}

	got := FormatContext(results)
	if !strings.Contains(got, "[Content missing or empty]") {
		t.Errorf("expected placeholder for blank content, got %q", got)
	}
}

func TestCitations(t *testing.T) {
	results := []document.Scored{
		{Chunk: document.Chunk{Text: "some long chunk text", Source: "doc.pdf", Page: intPtr(2), Type: document.DocTypeText}, Score: 0.9},
	}

	citations := Citations(results)
	if len(citations) != 1 {
		t.Fatalf("expected 1 citation, got %d", len(citations))
	}
	if citations[0].Source != "doc.pdf" {
		t.Errorf("expected source doc.pdf, got %q", citations[0].Source)
	}
	if citations[0].Page == nil || *citations[0].Page != 2 {
		t.Errorf("expected page 2, got %v", citations[0].Page)
	}

	if got := Citations(nil); len(got) != 0 {
		t.Errorf("expected empty citations, got %d", len(got))
	}
}
