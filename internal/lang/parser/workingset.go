package parser

import (
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// ParseError is a diagnostic produced while parsing. Parsing itself never
// fails; diagnostics accumulate here instead.
type ParseError struct {
	Span lexer.Span
	Msg  string
}

// WorkingSet is the transient per-request parse context: the source buffer,
// a read-only view of the engine state, and the diagnostics table. It is
// discarded after the request.
type WorkingSet struct {
	State *engine.EngineState

	src    []byte
	errors []ParseError
}

// NewWorkingSet creates a working set over the given engine state.
func NewWorkingSet(state *engine.EngineState) *WorkingSet {
	return &WorkingSet{State: state}
}

// Contents returns the source bytes covered by the span, clamped to the
// buffer.
func (ws *WorkingSet) Contents(span lexer.Span) []byte {
	start, end := span.Start, span.End
	if start < 0 {
		start = 0
	}
	if end > len(ws.src) {
		end = len(ws.src)
	}
	if start >= end {
		return nil
	}
	return ws.src[start:end]
}

// Errors returns the diagnostics accumulated by the last Parse.
func (ws *WorkingSet) Errors() []ParseError {
	return ws.errors
}

func (ws *WorkingSet) addError(span lexer.Span, msg string) {
	ws.errors = append(ws.errors, ParseError{Span: span, Msg: msg})
}
