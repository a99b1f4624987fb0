package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_retriever_deps.go -package=mocks docrag/internal/rag Embedder

import (
	"context"

	"docrag/internal/contextutil"
	"docrag/internal/document"
	"docrag/internal/vectorstore"
)

// DefaultK is the number of chunks retrieved per query when no other value is
// configured.
const DefaultK = 4

// Embedder turns a query into a vector.
// This interface is defined from the retriever's perspective (consumer-first).
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// Retriever finds the chunks most similar to a query inside one tenant
// partition.
type Retriever struct {
	embedder Embedder
	index    vectorstore.VectorIndex
	k        int
}

// NewRetriever creates a retriever returning up to k chunks per query.
func NewRetriever(embedder Embedder, index vectorstore.VectorIndex, k int) *Retriever {
	if k <= 0 {
		k = DefaultK
	}
	return &Retriever{
		embedder: embedder,
		index:    index,
		k:        k,
	}
}

// Retrieve returns up to k chunks ordered by descending score. Retrieval
// failures degrade to an empty result rather than an error so the chat flow
// can still answer from the model alone; a session with nothing indexed
// behaves the same way.
func (r *Retriever) Retrieve(ctx context.Context, tenantID, query string) ([]document.Scored, error) {
	logger := contextutil.LoggerFromContext(ctx)

	embeddings, err := r.embedder.EmbedTexts(ctx, []string{query})
	if err != nil {
		logger.WarnContext(ctx, "failed to embed query, continuing without context", "tenant_id", tenantID, "error", err)
		return nil, nil
	}
	if len(embeddings) == 0 {
		logger.WarnContext(ctx, "no embedding returned for query", "tenant_id", tenantID)
		return nil, nil
	}

	results, err := r.index.Query(ctx, tenantID, embeddings[0], r.k)
	if err != nil {
		logger.WarnContext(ctx, "vector query failed, continuing without context", "tenant_id", tenantID, "error", err)
		return nil, nil
	}

	logger.InfoContext(ctx, "retrieval completed", "tenant_id", tenantID, "k", r.k, "results", len(results))
	return results, nil
}
