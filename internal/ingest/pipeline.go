package ingest

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_deps.go -package=mocks docrag/internal/ingest Embedder,TenantRegistry,Extractor

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"docrag/internal/contextutil"
	"docrag/internal/docstore"
	"docrag/internal/extract"
	"docrag/internal/vectorstore"
)

// pointNamespace is the UUIDv5 namespace for chunk point IDs. Deriving the ID
// from (tenant, content hash, chunk index) makes re-ingestion of the same
// document an idempotent upsert instead of a duplicate insert.
var pointNamespace = uuid.MustParse("8a9b6c1d-4e2f-4a73-9d05-c3f1b28e7a64")

// Embedder turns chunk texts into vectors.
type Embedder interface {
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// TenantRegistry tracks which tenant partitions have been created.
type TenantRegistry interface {
	Exists(ctx context.Context, tenantID string) (bool, error)
	Create(ctx context.Context, tenantID string) error
}

// Extractor converts raw file bytes into text elements.
type Extractor interface {
	Extract(ctx context.Context, filename string, data []byte) ([]extract.Element, error)
}

// Pipeline ingests a session's uploaded files into its vector partition.
type Pipeline struct {
	files     docstore.FileStore
	extractor Extractor
	chunker   *Chunker
	embedder  Embedder
	index     vectorstore.VectorIndex
	tenants   TenantRegistry
	workers   int
}

// NewPipeline creates a new ingestion pipeline. workers bounds how many files
// are processed concurrently.
func NewPipeline(
	files docstore.FileStore,
	extractor Extractor,
	chunker *Chunker,
	embedder Embedder,
	index vectorstore.VectorIndex,
	tenants TenantRegistry,
	workers int,
) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	return &Pipeline{
		files:     files,
		extractor: extractor,
		chunker:   chunker,
		embedder:  embedder,
		index:     index,
		tenants:   tenants,
		workers:   workers,
	}
}

// Ingest processes every uploaded file of a session: unchanged files are
// skipped via content hash, new ones are extracted, chunked, embedded and
// upserted into the session's partition. Each file succeeds or fails as a
// whole; one bad file never aborts the rest of the run.
func (p *Pipeline) Ingest(ctx context.Context, sessionID string) (*Report, error) {
	logger := contextutil.LoggerFromContext(ctx)

	storedFiles, err := p.files.ListFiles(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list session files: %w", err)
	}

	builder := &reportBuilder{}
	if len(storedFiles) == 0 {
		logger.InfoContext(ctx, "no files to ingest", "session_id", sessionID)
		return builder.build(), nil
	}

	// The tenant partition is created lazily, on the first ingestion that has
	// any files to process.
	if err := p.ensureTenant(ctx, sessionID); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "starting ingestion", "session_id", sessionID, "files", len(storedFiles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)

	for _, file := range storedFiles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			status, err := p.ingestFile(gctx, sessionID, file.Name)
			switch {
			case err != nil:
				logger.WarnContext(gctx, "file ingestion failed", "session_id", sessionID, "file", file.Name, "error", err)
				builder.addFailed(file.Name, err.Error())
			case status == fileSkipped:
				logger.DebugContext(gctx, "skipping duplicate file", "session_id", sessionID, "file", file.Name)
				builder.addSkipped()
			default:
				builder.addProcessed(file.Name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := builder.build()
	logger.InfoContext(ctx, "ingestion completed",
		"session_id", sessionID,
		"processed", len(report.ProcessedFiles),
		"skipped", report.SkippedCount,
		"failed", len(report.FailedFiles))
	return report, nil
}

func (p *Pipeline) ensureTenant(ctx context.Context, sessionID string) error {
	exists, err := p.tenants.Exists(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("failed to check tenant: %w", err)
	}
	if exists {
		return nil
	}
	if err := p.tenants.Create(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}
	return nil
}

type fileStatus int

const (
	fileProcessed fileStatus = iota
	fileSkipped
)

// ingestFile runs the per-file state machine: read, hash, dedup check,
// extract, chunk, embed, upsert. The upsert is a single batch call so a file
// lands in the partition completely or not at all.
func (p *Pipeline) ingestFile(ctx context.Context, sessionID, filename string) (fileStatus, error) {
	data, err := p.files.Read(ctx, sessionID, filename)
	if err != nil {
		return fileProcessed, fmt.Errorf("failed to read file: %w", err)
	}

	hash := ContentHash(data)

	exists, err := p.index.ExistsByHash(ctx, sessionID, hash)
	if err != nil {
		return fileProcessed, fmt.Errorf("failed to check content hash: %w", err)
	}
	if exists {
		return fileSkipped, nil
	}

	elements, err := p.extractor.Extract(ctx, filename, data)
	if err != nil {
		return fileProcessed, fmt.Errorf("failed to extract content: %w", err)
	}

	chunks, err := p.chunker.Split(ctx, elements, filename, hash)
	if err != nil {
		return fileProcessed, fmt.Errorf("failed to chunk content: %w", err)
	}
	if len(chunks) == 0 {
		return fileProcessed, fmt.Errorf("no chunks produced")
	}

	texts := make([]string, len(chunks))
	for i, chunk := range chunks {
		texts[i] = chunk.Text
	}

	embeddings, err := p.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		return fileProcessed, fmt.Errorf("failed to embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return fileProcessed, fmt.Errorf("embedding count mismatch: expected %d, got %d", len(chunks), len(embeddings))
	}

	points := make([]vectorstore.Point, len(chunks))
	for i, chunk := range chunks {
		points[i] = vectorstore.Point{
			ID:    pointID(sessionID, hash, i),
			Vec:   embeddings[i],
			Chunk: chunk,
		}
	}

	if err := p.index.Upsert(ctx, sessionID, points); err != nil {
		return fileProcessed, fmt.Errorf("failed to upsert chunks: %w", err)
	}

	return fileProcessed, nil
}

// pointID derives a deterministic UUIDv5 from the tenant, document hash and
// chunk position.
func pointID(tenantID, contentHash string, chunkIndex int) string {
	name := fmt.Sprintf("%s:%s:%d", tenantID, contentHash, chunkIndex)
	return uuid.NewSHA1(pointNamespace, []byte(name)).String()
}
