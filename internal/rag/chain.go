package rag

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_chain_deps.go -package=mocks docrag/internal/rag ChunkRetriever,StreamingLLM,HistoryStore

import (
	"context"
	"fmt"
	"strings"

	"docrag/internal/contextutil"
	"docrag/internal/document"
	"docrag/internal/llm"
	"docrag/internal/storage"
)

// systemPromptFormat instructs the model to answer from the retrieved context
// only, falling back to a fixed refusal when the context does not contain the
// answer.
const systemPromptFormat = "You are a helpful assistant who answers questions based ONLY on the provided context. " +
	"If the answer is not found in the context, respond with 'Answer cannot be found.'. " +
	"Consider the chat history provided for context, but prioritize the current question and the retrieved document context." +
	"\n\nContext:\n%s\n"

// ChunkRetriever finds context chunks for a query inside a tenant partition.
// This interface is defined from the chain's perspective (consumer-first).
type ChunkRetriever interface {
	Retrieve(ctx context.Context, tenantID, query string) ([]document.Scored, error)
}

// StreamingLLM generates an answer incrementally via callback.
type StreamingLLM interface {
	GenerateStream(ctx context.Context, messages []llm.Message, onToken func(token string) error) error
}

// HistoryStore persists and recalls conversation turns.
type HistoryStore interface {
	GetRecent(ctx context.Context, sessionID string, limit int) ([]storage.Turn, error)
	Append(ctx context.Context, sessionID string, role storage.Role, content string) error
}

// Chain runs the conversational flow: retrieve context, assemble the prompt
// with recent history, stream the answer, persist the new turns.
type Chain struct {
	retriever    ChunkRetriever
	llmClient    StreamingLLM
	history      HistoryStore
	historyLimit int
}

// NewChain creates a conversational chain. historyLimit bounds how many past
// turns are replayed into the prompt.
func NewChain(retriever ChunkRetriever, llmClient StreamingLLM, history HistoryStore, historyLimit int) *Chain {
	if historyLimit <= 0 {
		historyLimit = 6
	}
	return &Chain{
		retriever:    retriever,
		llmClient:    llmClient,
		history:      history,
		historyLimit: historyLimit,
	}
}

// Run answers a query for a session and returns the event stream. The stream
// carries exactly one sources event, zero or more token events, and ends with
// an end event; a failure is reported as an error event immediately before
// the end event. The channel is closed once the run finishes.
func (c *Chain) Run(ctx context.Context, sessionID, query string) <-chan AnswerEvent {
	events := make(chan AnswerEvent, 8)

	go func() {
		defer close(events)
		c.run(ctx, sessionID, query, events)
	}()

	return events
}

func (c *Chain) run(ctx context.Context, sessionID, query string, events chan<- AnswerEvent) {
	logger := contextutil.LoggerFromContext(ctx)

	send := func(ev AnswerEvent) bool {
		select {
		case events <- ev:
			return true
		case <-ctx.Done():
			return false
		}
	}

	if strings.TrimSpace(query) == "" {
		logger.WarnContext(ctx, "empty query in chat request", "session_id", sessionID)
		send(AnswerEvent{Type: EventError, Err: &ValidationError{Field: "question", Message: "cannot be empty"}})
		send(AnswerEvent{Type: EventEnd})
		return
	}

	// History and retrieval are independent reads; run them concurrently.
	var (
		turns   []storage.Turn
		results []document.Scored
	)
	done := make(chan struct{}, 2)
	go func() {
		defer func() { done <- struct{}{} }()
		var err error
		turns, err = c.history.GetRecent(ctx, sessionID, c.historyLimit)
		if err != nil {
			logger.WarnContext(ctx, "failed to load history, continuing without it", "session_id", sessionID, "error", err)
			turns = nil
		}
	}()
	go func() {
		defer func() { done <- struct{}{} }()
		var err error
		results, err = c.retriever.Retrieve(ctx, sessionID, query)
		if err != nil {
			logger.WarnContext(ctx, "retrieval failed, continuing without context", "session_id", sessionID, "error", err)
			results = nil
		}
	}()
	for i := 0; i < 2; i++ {
		select {
		case <-done:
		case <-ctx.Done():
			return
		}
	}

	if !send(AnswerEvent{Type: EventSources, Sources: Citations(results)}) {
		return
	}

	messages := c.buildMessages(turns, results, query)

	var answer strings.Builder
	streamErr := c.llmClient.GenerateStream(ctx, messages, func(token string) error {
		answer.WriteString(token)
		if !send(AnswerEvent{Type: EventToken, Token: token}) {
			return ctx.Err()
		}
		return nil
	})

	// Persist even when the caller has already disconnected; a half-finished
	// exchange should still show the user's question in the history.
	persistCtx := context.WithoutCancel(ctx)
	if err := c.history.Append(persistCtx, sessionID, storage.RoleUser, query); err != nil {
		logger.ErrorContext(ctx, "failed to persist user turn", "session_id", sessionID, "error", err)
	}
	if answer.Len() > 0 {
		if err := c.history.Append(persistCtx, sessionID, storage.RoleAssistant, answer.String()); err != nil {
			logger.ErrorContext(ctx, "failed to persist assistant turn", "session_id", sessionID, "error", err)
		}
	}

	if streamErr != nil {
		logger.ErrorContext(ctx, "failed to stream answer", "session_id", sessionID, "error", streamErr)
		send(AnswerEvent{Type: EventError, Err: WrapError(streamErr, "failed to generate answer")})
		send(AnswerEvent{Type: EventEnd})
		return
	}

	logger.InfoContext(ctx, "chat completed",
		"session_id", sessionID,
		"question_length", len(query),
		"sources", len(results),
		"answer_length", answer.Len())
	send(AnswerEvent{Type: EventEnd})
}

// buildMessages assembles the prompt: system message carrying the retrieved
// context, recent turns oldest first, then the current question.
func (c *Chain) buildMessages(turns []storage.Turn, results []document.Scored, query string) []llm.Message {
	messages := make([]llm.Message, 0, len(turns)+2)
	messages = append(messages, llm.Message{
		Role:    "system",
		Content: fmt.Sprintf(systemPromptFormat, FormatContext(results)),
	})
	for _, turn := range turns {
		messages = append(messages, llm.Message{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	messages = append(messages, llm.Message{Role: "user", Content: query})
	return messages
}
