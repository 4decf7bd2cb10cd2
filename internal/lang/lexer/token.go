package lexer

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Special tokens
	ILLEGAL TokenType = iota
	EOF

	// Separators
	NEWLINE // \n or ;
	PIPE    // |

	// Delimiters
	LBRACKET // [
	RBRACKET // ]

	// Literals
	WORD   // bare words: command names, flags, numbers, $vars, @attrs
	STRING // "quoted", 'quoted', `quoted`
)

var tokenTypeNames = [...]string{
	ILLEGAL:  "ILLEGAL",
	EOF:      "EOF",
	NEWLINE:  "NEWLINE",
	PIPE:     "PIPE",
	LBRACKET: "LBRACKET",
	RBRACKET: "RBRACKET",
	WORD:     "WORD",
	STRING:   "STRING",
}

// String returns the string representation of the token type
func (tt TokenType) String() string {
	if int(tt) < len(tokenTypeNames) {
		return tokenTypeNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Span is a half-open byte range [Start, End) into the source buffer.
type Span struct {
	Start int
	End   int
}

// NewSpan creates a new Span.
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Contains reports whether pos falls inside the span.
func (s Span) Contains(pos int) bool {
	return pos >= s.Start && pos < s.End
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Token represents a single token with its source location
type Token struct {
	Type    TokenType
	Literal string
	Span    Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d..%d", t.Type, t.Literal, t.Span.Start, t.Span.End)
}
