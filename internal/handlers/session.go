package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_session_deps.go -package=mocks docrag/internal/handlers TenantAdmin,ConversationLog

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"docrag/internal/contextutil"
	"docrag/internal/docstore"
	"docrag/internal/storage"
	"docrag/internal/vectorstore"
)

// TenantAdmin checks and removes tenant registrations.
type TenantAdmin interface {
	Exists(ctx context.Context, tenantID string) (bool, error)
	Delete(ctx context.Context, tenantID string) error
}

// ConversationLog reads and removes a session's conversation history.
type ConversationLog interface {
	GetRecent(ctx context.Context, sessionID string, limit int) ([]storage.Turn, error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionHandler serves session history and session teardown.
type SessionHandler struct {
	tenants TenantAdmin
	turns   ConversationLog
	index   vectorstore.VectorIndex
	files   docstore.FileStore
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(tenants TenantAdmin, turns ConversationLog, index vectorstore.VectorIndex, files docstore.FileStore) *SessionHandler {
	return &SessionHandler{
		tenants: tenants,
		turns:   turns,
		index:   index,
		files:   files,
	}
}

// TurnResponse is the wire form of one conversation turn.
type TurnResponse struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// defaultHistoryLimit bounds a history read when no limit is given.
const defaultHistoryLimit = 50

// History returns a session's recent turns in chronological order.
func (h *SessionHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := chi.URLParam(r, "id")

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "Validation error: limit must be a positive integer")
			return
		}
		limit = parsed
	}

	turns, err := h.turns.GetRecent(ctx, sessionID, limit)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to load history")
		return
	}

	resp := make([]TurnResponse, 0, len(turns))
	for _, turn := range turns {
		resp = append(resp, TurnResponse{
			Role:      string(turn.Role),
			Content:   turn.Content,
			CreatedAt: turn.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Delete tears a session down: its vector partition, conversation history,
// uploaded files and tenant registration. Deleting an unknown session is a
// 404; a partial failure leaves the remaining stores untouched so the call
// can be retried.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	sessionID := chi.URLParam(r, "id")

	exists, err := h.tenants.Exists(ctx, sessionID)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to check session")
		return
	}
	if !exists {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	if err := h.index.DeleteTenant(ctx, sessionID); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete session vectors")
		return
	}

	if err := h.turns.DeleteSession(ctx, sessionID); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete session history")
		return
	}

	if err := h.files.DeleteSession(ctx, sessionID); err != nil {
		handleServiceError(ctx, w, err, "Failed to delete session files")
		return
	}

	if err := h.tenants.Delete(ctx, sessionID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		handleServiceError(ctx, w, err, "Failed to delete session")
		return
	}

	logger.InfoContext(ctx, "session deleted", "session_id", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
