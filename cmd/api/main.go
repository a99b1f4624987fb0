package main

import (
	"context"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"

	"docrag/internal/config"
	"docrag/internal/docstore"
	"docrag/internal/extract"
	"docrag/internal/http"
	"docrag/internal/ingest"
	"docrag/internal/llm"
	"docrag/internal/rag"
	"docrag/internal/storage"
	"docrag/internal/vectorstore"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	tenantRepo := storage.NewTenantRepository(db)
	turnRepo := storage.NewTurnRepository(db)

	// Initialize document file store
	fileStore, err := docstore.NewDiskStore(cfg.DocumentsDir)
	if err != nil {
		log.Fatalf("Failed to initialize document store: %v", err)
	}
	slog.Info("Document store initialized", "root", cfg.DocumentsDir)

	ctx := context.Background()

	// Initialize Qdrant vector index
	index, err := vectorstore.NewQdrantIndex(cfg.QdrantURL, cfg.QdrantCollection)
	if err != nil {
		log.Fatalf("Failed to create Qdrant client: %v", err)
	}

	if err := index.EnsureCollection(ctx, cfg.QdrantVectorSize); err != nil {
		log.Fatalf("Failed to ensure Qdrant collection: %v", err)
	}
	slog.Info("Qdrant collection ready", "collection", cfg.QdrantCollection, "vector_size", cfg.QdrantVectorSize)

	// Validate embedding client vector size (fail-fast)
	embedder := llm.NewEmbeddingsClient(cfg.EmbeddingBaseURL, cfg.LLMAPIKey, cfg.EmbeddingModelName, cfg.QdrantVectorSize)
	testEmbeddings, err := embedder.EmbedTexts(ctx, []string{"test"})
	if err != nil {
		log.Fatalf("Failed to validate embedding client: %v", err)
	}
	if len(testEmbeddings) == 0 || len(testEmbeddings[0]) != cfg.QdrantVectorSize {
		log.Fatalf("Embedding vector size mismatch: expected %d, got %d", cfg.QdrantVectorSize, len(testEmbeddings[0]))
	}
	slog.Info("Embedding client validated", "vector_size", cfg.QdrantVectorSize)

	// Create ingestion pipeline
	chunker, err := ingest.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap)
	if err != nil {
		log.Fatalf("Failed to create chunker: %v", err)
	}
	pipeline := ingest.NewPipeline(
		fileStore,
		extract.NewRegistry(),
		chunker,
		embedder,
		index,
		tenantRepo,
		cfg.IngestWorkers,
	)

	// Create LLM client and conversational chain
	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModelName)
	retriever := rag.NewRetriever(embedder, index, cfg.RetrieverK)
	chain := rag.NewChain(retriever, llmClient, turnRepo, cfg.ConversationMessageLimit)
	slog.Info("Conversational chain initialized", "k", cfg.RetrieverK, "history_limit", cfg.ConversationMessageLimit)

	// Create router with dependencies
	deps := &http.Deps{
		Chain:    chain,
		Pipeline: pipeline,
		Files:    fileStore,
		Tenants:  tenantRepo,
		Turns:    turnRepo,
		Index:    index,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModelName)
	if err := nethttp.ListenAndServe(addr, router); err != nil {
		log.Fatalf("API server failed to start: %v", err)
	}
}
