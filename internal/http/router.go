package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"docrag/internal/docstore"
	"docrag/internal/handlers"
	"docrag/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Chain    handlers.AnswerStreamer
	Pipeline handlers.Ingestor
	Files    docstore.FileStore
	Tenants  handlers.TenantAdmin
	Turns    handlers.ConversationLog
	Index    vectorstore.VectorIndex
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	chatHandler := handlers.NewChatHandler(deps.Chain)
	uploadHandler := handlers.NewUploadHandler(deps.Files)
	processHandler := handlers.NewProcessHandler(deps.Pipeline)
	sessionHandler := handlers.NewSessionHandler(deps.Tenants, deps.Turns, deps.Index, deps.Files)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/chat", chatHandler)
		r.Method(http.MethodPost, "/documents/upload", uploadHandler)
		r.Method(http.MethodPost, "/documents/process", processHandler)
		r.Get("/sessions/{id}/history", sessionHandler.History)
		r.Delete("/sessions/{id}", sessionHandler.Delete)
	})

	r.Get("/healthz", handlers.Health)

	return r
}
