package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"docrag/internal/contextutil"
	"docrag/internal/document"
)

// Payload field names. Every point carries tenant_id so a single collection
// can hold all tenant partitions.
const (
	fieldTenantID     = "tenant_id"
	fieldText         = "text"
	fieldSource       = "source"
	fieldPage         = "page"
	fieldDocType      = "doc_type"
	fieldElementIndex = "element_index"
	fieldDocHash      = "doc_hash"
)

// QdrantIndex implements VectorIndex using a single Qdrant collection
// partitioned by a tenant_id payload index.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantIndex creates a new Qdrant-backed vector index.
// urlStr should be in the format "http://host:port" (e.g., "http://localhost:6333").
// The gRPC port (typically 6334) will be derived from the HTTP port.
func NewQdrantIndex(urlStr, collection string) (*QdrantIndex, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	// Extract port from URL, default to 6333 for HTTP
	port := 6334 // Default gRPC port
	if parsedURL.Port() != "" {
		httpPort, err := strconv.Atoi(parsedURL.Port())
		if err == nil {
			// gRPC port is typically HTTP port + 1
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host: host,
		Port: port,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantIndex{
		client:     client,
		collection: collection,
	}, nil
}

// EnsureCollection creates the collection with the given vector size if it
// does not exist, and validates the vector size if it does. New collections
// get keyword payload indexes on tenant_id and doc_hash so tenant filters and
// dedup lookups stay fast as the collection grows.
func (s *QdrantIndex) EnsureCollection(ctx context.Context, vectorSize int) error {
	logger := contextutil.LoggerFromContext(ctx)

	exists, err := s.client.CollectionExists(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}

	if !exists {
		logger.InfoContext(ctx, "creating collection", "collection", s.collection, "vector_size", vectorSize)
		err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
			CollectionName: s.collection,
			VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
				Size:     uint64(vectorSize),
				Distance: qdrant.Distance_Cosine,
			}),
		})
		if err != nil {
			return fmt.Errorf("failed to create collection: %w", err)
		}

		for _, field := range []string{fieldTenantID, fieldDocHash} {
			_, err := s.client.CreateFieldIndex(ctx, &qdrant.CreateFieldIndexCollection{
				CollectionName: s.collection,
				FieldName:      field,
				FieldType:      qdrant.FieldType_FieldTypeKeyword.Enum(),
			})
			if err != nil {
				return fmt.Errorf("failed to create payload index on %s: %w", field, err)
			}
		}

		logger.InfoContext(ctx, "collection created", "collection", s.collection, "vector_size", vectorSize)
		return nil
	}

	// Collection exists, validate vector size
	info, err := s.client.GetCollectionInfo(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("failed to get collection info: %w", err)
	}

	config := info.Config
	if config == nil || config.Params == nil {
		return fmt.Errorf("collection config is invalid")
	}

	vectorsConfig := config.Params.GetVectorsConfig()
	if vectorsConfig == nil {
		return fmt.Errorf("collection vectors config is invalid")
	}

	params := vectorsConfig.GetParams()
	if params == nil {
		return fmt.Errorf("collection vector params are invalid")
	}

	if int(params.Size) != vectorSize {
		return fmt.Errorf("%w: expected %d, got %d", ErrSchemaMismatch, vectorSize, params.Size)
	}

	logger.InfoContext(ctx, "collection validated", "collection", s.collection, "vector_size", vectorSize)
	return nil
}

// Upsert inserts or updates points inside a tenant partition.
func (s *QdrantIndex) Upsert(ctx context.Context, tenantID string, points []Point) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(points) == 0 {
		return nil
	}

	qdrantPoints := make([]*qdrant.PointStruct, 0, len(points))
	for _, point := range points {
		qdrantPoints = append(qdrantPoints, &qdrant.PointStruct{
			Id:      qdrant.NewID(point.ID),
			Vectors: qdrant.NewVectors(point.Vec...),
			Payload: qdrant.NewValueMap(chunkPayload(tenantID, point.Chunk)),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collection,
		Points:         qdrantPoints,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to upsert points", "tenant_id", tenantID, "count", len(points), "error", err)
		return fmt.Errorf("failed to upsert points: %w", err)
	}

	logger.InfoContext(ctx, "upserted points", "tenant_id", tenantID, "count", len(points))
	return nil
}

// Query performs a similarity search filtered to a single tenant partition.
// Results come back ordered by descending cosine score.
func (s *QdrantIndex) Query(ctx context.Context, tenantID string, vector []float32, k int) ([]document.Scored, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		return nil, fmt.Errorf("k must be greater than 0")
	}

	limit := uint64(k)
	scoredPoints, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &limit,
		WithPayload:    qdrant.NewWithPayload(true),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(fieldTenantID, tenantID),
			},
		},
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to query points", "tenant_id", tenantID, "k", k, "error", err)
		return nil, fmt.Errorf("failed to query points: %w", err)
	}

	results := make([]document.Scored, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		results = append(results, document.Scored{
			Chunk: chunkFromPayload(point.Payload),
			Score: point.Score,
		})
	}

	logger.InfoContext(ctx, "query completed", "tenant_id", tenantID, "k", k, "results", len(results))
	return results, nil
}

// ExistsByHash reports whether a tenant partition already holds any chunk of
// the document with the given content hash.
func (s *QdrantIndex) ExistsByHash(ctx context.Context, tenantID string, contentHash string) (bool, error) {
	count, err := s.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: s.collection,
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(fieldTenantID, tenantID),
				qdrant.NewMatch(fieldDocHash, contentHash),
			},
		},
	})
	if err != nil {
		return false, fmt.Errorf("failed to count points by hash: %w", err)
	}

	return count > 0, nil
}

// DeleteTenant removes every point in a tenant partition.
func (s *QdrantIndex) DeleteTenant(ctx context.Context, tenantID string) error {
	logger := contextutil.LoggerFromContext(ctx)

	_, err := s.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: s.collection,
		Points: qdrant.NewPointsSelectorFilter(&qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch(fieldTenantID, tenantID),
			},
		}),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to delete tenant points", "tenant_id", tenantID, "error", err)
		return fmt.Errorf("failed to delete tenant points: %w", err)
	}

	logger.InfoContext(ctx, "deleted tenant points", "tenant_id", tenantID)
	return nil
}

// chunkPayload converts a chunk into a Qdrant payload map.
func chunkPayload(tenantID string, chunk document.Chunk) map[string]any {
	payload := map[string]any{
		fieldTenantID: tenantID,
		fieldText:     chunk.Text,
		fieldSource:   chunk.Source,
		fieldDocType:  string(chunk.Type),
		fieldDocHash:  chunk.ContentHash,
	}
	if chunk.Page != nil {
		payload[fieldPage] = int64(*chunk.Page)
	}
	if chunk.ElementIndex != nil {
		payload[fieldElementIndex] = int64(*chunk.ElementIndex)
	}
	return payload
}

// chunkFromPayload reconstructs a chunk from a Qdrant payload.
func chunkFromPayload(payload map[string]*qdrant.Value) document.Chunk {
	chunk := document.Chunk{
		Text:        payloadString(payload, fieldText),
		Source:      payloadString(payload, fieldSource),
		Type:        document.DocType(payloadString(payload, fieldDocType)),
		ContentHash: payloadString(payload, fieldDocHash),
	}
	if page, ok := payloadInt(payload, fieldPage); ok {
		chunk.Page = &page
	}
	if idx, ok := payloadInt(payload, fieldElementIndex); ok {
		chunk.ElementIndex = &idx
	}
	return chunk
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	if v, ok := payload[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func payloadInt(payload map[string]*qdrant.Value, key string) (int, bool) {
	v, ok := payload[key]
	if !ok {
		return 0, false
	}
	if _, isInt := v.Kind.(*qdrant.Value_IntegerValue); !isInt {
		return 0, false
	}
	return int(v.GetIntegerValue()), true
}
