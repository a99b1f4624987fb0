package rag

import "docrag/internal/document"

// AnswerEventType identifies one kind of event on an answer stream.
type AnswerEventType string

const (
	// EventToken carries one incremental piece of the generated answer.
	EventToken AnswerEventType = "token"
	// EventSources carries the citations backing the answer. Exactly one
	// sources event is emitted per stream.
	EventSources AnswerEventType = "sources"
	// EventError reports a failure; it is always followed by EventEnd.
	EventError AnswerEventType = "error"
	// EventEnd terminates the stream. It is always the last event.
	EventEnd AnswerEventType = "end"
)

// AnswerEvent is one element of the answer stream produced by a chain run.
type AnswerEvent struct {
	Type    AnswerEventType
	Token   string
	Sources []document.Citation
	Err     error
}
