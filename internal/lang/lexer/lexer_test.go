package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `ls -la src | where size > 10 ; echo "hello world" [1 2]`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
	}{
		{WORD, "ls"},
		{WORD, "-la"},
		{WORD, "src"},
		{PIPE, "|"},
		{WORD, "where"},
		{WORD, "size"},
		{WORD, ">"},
		{WORD, "10"},
		{NEWLINE, ";"},
		{WORD, "echo"},
		{STRING, `"hello world"`},
		{LBRACKET, "["},
		{WORD, "1"},
		{WORD, "2"},
		{RBRACKET, "]"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestTokenSpans(t *testing.T) {
	input := `sudo l`
	tokens := Tokenize(input)

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	for i, tok := range tokens {
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Literal {
			t.Errorf("tokens[%d] span %v does not cover literal: got %q, want %q",
				i, tok.Span, got, tok.Literal)
		}
	}
	if tokens[0].Span != NewSpan(0, 4) {
		t.Errorf("tokens[0] span = %v, want 0..4", tokens[0].Span)
	}
	if tokens[1].Span != NewSpan(5, 6) {
		t.Errorf("tokens[1] span = %v, want 5..6", tokens[1].Span)
	}
}

func TestVariablesAndCellPathsStayWords(t *testing.T) {
	tokens := Tokenize(`$env.PWD $nu 1.5 --all @example`)

	expected := []string{"$env.PWD", "$nu", "1.5", "--all", "@example"}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}
	for i, want := range expected {
		if tokens[i].Type != WORD {
			t.Errorf("tokens[%d] type = %v, want WORD", i, tokens[i].Type)
		}
		if tokens[i].Literal != want {
			t.Errorf("tokens[%d] literal = %q, want %q", i, tokens[i].Literal, want)
		}
	}
}

func TestUnterminatedStringDoesNotFail(t *testing.T) {
	tokens := Tokenize(`echo "abc`)

	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens, got %d", len(tokens))
	}
	if tokens[1].Type != STRING || tokens[1].Literal != `"abc` {
		t.Errorf("tokens[1] = %v, want unterminated STRING", tokens[1])
	}
}

func TestCommentsAreSkipped(t *testing.T) {
	tokens := Tokenize("ls # list files")

	if len(tokens) != 1 || tokens[0].Literal != "ls" {
		t.Fatalf("expected single ls token, got %v", tokens)
	}
}

func TestSpanContains(t *testing.T) {
	s := NewSpan(2, 5)

	for pos, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := s.Contains(pos); got != want {
			t.Errorf("Span(2,5).Contains(%d) = %v, want %v", pos, got, want)
		}
	}
	if NewSpan(3, 3).Contains(3) {
		t.Error("zero-width span should contain nothing")
	}
}
