// Package lexer tokenizes shell lines into spanned word tokens.
//
// The lexer is deliberately coarse: it only separates pipeline bars, list
// brackets, quoted strings and whitespace-delimited words. Finer
// classification (numbers, flags, variables, cell paths) happens in the
// parser, which has access to the command registry. Lexing never fails;
// malformed input still produces tokens so that completion can work on
// partial lines.
package lexer

// Lexer tokenizes a source line
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
}

// New creates a new Lexer instance
func New(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// Tokenize runs the lexer over the whole input and returns all tokens,
// excluding the trailing EOF.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipBlank()

	// Skip comments to end of line
	for l.ch == '#' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		l.skipBlank()
	}

	start := l.position

	switch l.ch {
	case 0:
		return Token{Type: EOF, Span: NewSpan(start, start)}
	case '\n', ';':
		l.readChar()
		return Token{Type: NEWLINE, Literal: l.input[start:l.position], Span: NewSpan(start, l.position)}
	case '|':
		l.readChar()
		return Token{Type: PIPE, Literal: "|", Span: NewSpan(start, l.position)}
	case '[':
		l.readChar()
		return Token{Type: LBRACKET, Literal: "[", Span: NewSpan(start, l.position)}
	case ']':
		l.readChar()
		return Token{Type: RBRACKET, Literal: "]", Span: NewSpan(start, l.position)}
	case '"', '\'', '`':
		return l.readString()
	default:
		return l.readWord()
	}
}

// readString reads a quoted string token. The literal keeps the surrounding
// quotes; an unterminated string extends to the end of input rather than
// failing, so partially typed lines still tokenize.
func (l *Lexer) readString() Token {
	start := l.position
	quote := l.ch
	l.readChar()
	for l.ch != 0 && l.ch != quote {
		if quote == '"' && l.ch == '\\' {
			l.readChar()
		}
		if l.ch != 0 {
			l.readChar()
		}
	}
	if l.ch == quote {
		l.readChar()
	}
	return Token{Type: STRING, Literal: l.input[start:l.position], Span: NewSpan(start, l.position)}
}

// readWord reads a bare word until blank space or a structural character.
func (l *Lexer) readWord() Token {
	start := l.position
	for l.ch != 0 && !isWordBoundary(l.ch) {
		l.readChar()
	}
	return Token{Type: WORD, Literal: l.input[start:l.position], Span: NewSpan(start, l.position)}
}

func (l *Lexer) skipBlank() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.readChar()
	}
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
}

func isWordBoundary(ch byte) bool {
	switch ch {
	case ' ', '\t', '\r', '\n', ';', '|', '[', ']', '"', '\'', '`':
		return true
	}
	return false
}
