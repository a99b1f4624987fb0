package vectorstore

import (
	"testing"

	"github.com/qdrant/go-client/qdrant"

	"docrag/internal/document"
)

func TestChunkPayloadRoundTrip(t *testing.T) {
	page := 3
	idx := 7
	chunk := document.Chunk{
		Text:         "chapter three content",
		Source:       "report.pdf",
		Page:         &page,
		ElementIndex: &idx,
		Type:         document.DocTypeText,
		ContentHash:  "abc123",
	}

	payload := qdrant.NewValueMap(chunkPayload("tenant-1", chunk))
	got := chunkFromPayload(payload)

	if got.Text != chunk.Text {
		t.Errorf("expected text %q, got %q", chunk.Text, got.Text)
	}
	if got.Source != chunk.Source {
		t.Errorf("expected source %q, got %q", chunk.Source, got.Source)
	}
	if got.Type != chunk.Type {
		t.Errorf("expected type %q, got %q", chunk.Type, got.Type)
	}
	if got.ContentHash != chunk.ContentHash {
		t.Errorf("expected hash %q, got %q", chunk.ContentHash, got.ContentHash)
	}
	if got.Page == nil || *got.Page != page {
		t.Errorf("expected page %d, got %v", page, got.Page)
	}
	if got.ElementIndex == nil || *got.ElementIndex != idx {
		t.Errorf("expected element index %d, got %v", idx, got.ElementIndex)
	}
}

func TestChunkPayloadOmitsMissingFields(t *testing.T) {
	chunk := document.Chunk{
		Text:        "plain text",
		Source:      "notes.txt",
		Type:        document.DocTypeText,
		ContentHash: "def456",
	}

	raw := chunkPayload("tenant-1", chunk)
	if _, ok := raw[fieldPage]; ok {
		t.Error("expected no page field for pageless chunk")
	}
	if _, ok := raw[fieldElementIndex]; ok {
		t.Error("expected no element_index field")
	}
	if raw[fieldTenantID] != "tenant-1" {
		t.Errorf("expected tenant_id tenant-1, got %v", raw[fieldTenantID])
	}

	got := chunkFromPayload(qdrant.NewValueMap(raw))
	if got.Page != nil {
		t.Errorf("expected nil page, got %v", *got.Page)
	}
	if got.ElementIndex != nil {
		t.Errorf("expected nil element index, got %v", *got.ElementIndex)
	}
}

func TestNewQdrantIndexDerivesGRPCPort(t *testing.T) {
	idx, err := NewQdrantIndex("http://localhost:6333", "documents")
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	if idx.collection != "documents" {
		t.Errorf("expected collection documents, got %q", idx.collection)
	}
}
