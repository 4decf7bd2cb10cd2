// Package completion implements context-aware tab completion for nush:
// parse the line up to the cursor, locate the expression under it, and
// dispatch to the strategy matching its syntactic shape.
package completion

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// SuggestionKind tags a suggestion for display grouping. It never affects
// matching or ordering.
type SuggestionKind int

const (
	// KindNone is an untagged suggestion
	KindNone SuggestionKind = iota
	// KindCommand is a built-in command name
	KindCommand
	// KindExternal is an executable found on PATH
	KindExternal
	// KindFlag is a command flag
	KindFlag
	// KindVariable is a variable or cell path member
	KindVariable
	// KindFile is a file path
	KindFile
	// KindDirectory is a directory path
	KindDirectory
	// KindOperator is an infix operator
	KindOperator
	// KindModule is an importable script
	KindModule
	// KindValue is a value produced by a custom or external completer
	KindValue
)

// Suggestion is one completion candidate. Span is the byte range of the
// input line the value replaces, in the caller's coordinates.
type Suggestion struct {
	Value       string
	Description string
	Style       *lipgloss.Style
	Span        lexer.Span
	// AppendWhitespace asks the editor to insert a trailing space after
	// accepting the suggestion.
	AppendWhitespace bool
	Kind             SuggestionKind
}
