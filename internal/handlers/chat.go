package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_answer_streamer.go -package=mocks docrag/internal/handlers AnswerStreamer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"docrag/internal/contextutil"
	"docrag/internal/rag"
)

// AnswerStreamer runs a conversational query and returns its event stream.
// This interface is defined from the handler's perspective (consumer-first).
type AnswerStreamer interface {
	Run(ctx context.Context, sessionID, query string) <-chan rag.AnswerEvent
}

// ChatHandler streams RAG answers over Server-Sent Events.
type ChatHandler struct {
	chain AnswerStreamer
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(chain AnswerStreamer) *ChatHandler {
	return &ChatHandler{chain: chain}
}

// ChatRequest represents the HTTP request payload for chat.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

// sseEvent is the wire form of one answer stream event.
type sseEvent struct {
	Type    string `json:"type"`
	Content any    `json:"content,omitempty"`
}

// ServeHTTP answers a question for a session, streaming the answer as SSE.
// Each SSE data line is a JSON object with a type of answer_chunk, sources,
// error or end.
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.SessionID) == "" {
		writeError(w, http.StatusBadRequest, "Validation error: session_id cannot be empty")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	// Set up Server-Sent Events headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	for event := range h.chain.Run(ctx, req.SessionID, req.Question) {
		wire := toWireEvent(event)

		payload, err := json.Marshal(wire)
		if err != nil {
			logger.ErrorContext(ctx, "failed to marshal event", "type", event.Type, "error", err)
			continue
		}

		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			logger.WarnContext(ctx, "client disconnected during stream", "error", err)
			return
		}
		flusher.Flush()
	}
}

func toWireEvent(event rag.AnswerEvent) sseEvent {
	switch event.Type {
	case rag.EventToken:
		return sseEvent{Type: "answer_chunk", Content: event.Token}
	case rag.EventSources:
		return sseEvent{Type: "sources", Content: event.Sources}
	case rag.EventError:
		return sseEvent{Type: "error", Content: event.Err.Error()}
	default:
		return sseEvent{Type: "end"}
	}
}
