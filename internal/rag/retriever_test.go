package rag

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"go.uber.org/mock/gomock"

	"docrag/internal/document"
	"docrag/internal/rag/mocks"
	vsmocks "docrag/internal/vectorstore/mocks"
)

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRetriever_ReturnsScoredChunks(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	index := vsmocks.NewMockVectorIndex(ctrl)
	ctx := context.Background()

	vector := []float32{0.1, 0.2, 0.3}
	expected := []document.Scored{
		{Chunk: document.Chunk{Text: "best match", Source: "a.txt"}, Score: 0.92},
		{Chunk: document.Chunk{Text: "second", Source: "b.txt"}, Score: 0.81},
	}

	embedder.EXPECT().EmbedTexts(ctx, []string{"what is x"}).Return([][]float32{vector}, nil)
	index.EXPECT().Query(ctx, "tenant-1", vector, 4).Return(expected, nil)

	r := NewRetriever(embedder, index, 4)
	got, err := r.Retrieve(ctx, "tenant-1", "what is x")
	if err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].Score < got[1].Score {
		t.Error("expected results in descending score order")
	}
}

func TestRetriever_DefaultsK(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	index := vsmocks.NewMockVectorIndex(ctrl)
	ctx := context.Background()

	embedder.EXPECT().EmbedTexts(ctx, gomock.Any()).Return([][]float32{{0.1}}, nil)
	index.EXPECT().Query(ctx, "tenant-1", gomock.Any(), DefaultK).Return(nil, nil)

	r := NewRetriever(embedder, index, 0)
	if _, err := r.Retrieve(ctx, "tenant-1", "query"); err != nil {
		t.Fatalf("retrieve failed: %v", err)
	}
}

func TestRetriever_EmbedFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	index := vsmocks.NewMockVectorIndex(ctrl)
	ctx := context.Background()

	embedder.EXPECT().EmbedTexts(ctx, gomock.Any()).Return(nil, errors.New("service down"))

	r := NewRetriever(embedder, index, 4)
	got, err := r.Retrieve(ctx, "tenant-1", "query")
	if err != nil {
		t.Fatalf("expected degraded empty result, got error %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestRetriever_QueryFailureDegradesToEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	embedder := mocks.NewMockEmbedder(ctrl)
	index := vsmocks.NewMockVectorIndex(ctrl)
	ctx := context.Background()

	embedder.EXPECT().EmbedTexts(ctx, gomock.Any()).Return([][]float32{{0.1}}, nil)
	index.EXPECT().Query(ctx, "tenant-1", gomock.Any(), 4).Return(nil, errors.New("backend unavailable"))

	r := NewRetriever(embedder, index, 4)
	got, err := r.Retrieve(ctx, "tenant-1", "query")
	if err != nil {
		t.Fatalf("expected degraded empty result, got error %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}
