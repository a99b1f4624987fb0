package vectorstore

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_vector_index.go -package=mocks docrag/internal/vectorstore VectorIndex

import (
	"context"
	"errors"

	"docrag/internal/document"
)

// ErrSchemaMismatch is returned when the existing collection's vector size
// does not match the configured embedding size.
var ErrSchemaMismatch = errors.New("collection vector size mismatch")

// Point represents an embedded chunk ready for storage.
type Point struct {
	ID    string
	Vec   []float32
	Chunk document.Chunk
}

// VectorIndex defines the interface for tenant-partitioned vector storage.
// All reads and writes are scoped to a single tenant partition.
type VectorIndex interface {
	// EnsureCollection creates the backing collection if missing and validates
	// its vector size if present.
	EnsureCollection(ctx context.Context, vectorSize int) error

	// Upsert inserts or updates a batch of points inside a tenant partition.
	Upsert(ctx context.Context, tenantID string, points []Point) error

	// Query performs a similarity search inside a tenant partition and returns
	// up to k chunks ordered by descending score.
	Query(ctx context.Context, tenantID string, vector []float32, k int) ([]document.Scored, error)

	// ExistsByHash reports whether any chunk with the given content hash is
	// stored in a tenant partition.
	ExistsByHash(ctx context.Context, tenantID string, contentHash string) (bool, error)

	// DeleteTenant removes every point belonging to a tenant partition.
	DeleteTenant(ctx context.Context, tenantID string) error
}
