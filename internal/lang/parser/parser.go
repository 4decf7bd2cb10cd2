// Package parser turns source text into a span-annotated expression tree
// and flattens trees into (span, shape) token streams. It is fault
// tolerant: any input parses, with unrecognized pieces wrapped in Garbage so
// completion can still work on their spans.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

var (
	intPattern   = regexp.MustCompile(`^[+-]?[0-9]+$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+\.[0-9]*|\.[0-9]+)$`)
)

// Parse tokenizes src and builds the block tree, resetting any previous
// diagnostics.
func (ws *WorkingSet) Parse(src []byte) *Block {
	ws.src = src
	ws.errors = nil

	tokens := lexer.Tokenize(string(src))
	lines := splitTokens(tokens, lexer.NEWLINE)

	block := &Block{}
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if len(line) == 0 {
			continue
		}
		if isAttributeToken(line[0]) {
			var attrs []*Expression
			for i < len(lines) && len(lines[i]) > 0 && isAttributeToken(lines[i][0]) {
				attrs = append(attrs, ws.parseAttribute(lines[i]))
				i++
			}
			var item *Expression
			if i < len(lines) && len(lines[i]) > 0 {
				stages := splitTokens(lines[i], lexer.PIPE)
				item = ws.parseStage(stages[0])
			}
			span := lexer.NewSpan(attrs[0].Span.Start, attrs[len(attrs)-1].Span.End)
			if item != nil {
				span.End = item.Span.End
			}
			elem := &Expression{
				Expr: &AttributeBlock{Attributes: attrs, Item: item},
				Span: span,
			}
			block.Pipelines = append(block.Pipelines, &Pipeline{Elements: []*Expression{elem}})
			continue
		}

		pipeline := &Pipeline{}
		for _, stage := range splitTokens(line, lexer.PIPE) {
			if elem := ws.parseStage(stage); elem != nil {
				pipeline.Elements = append(pipeline.Elements, elem)
			}
		}
		if len(pipeline.Elements) > 0 {
			block.Pipelines = append(block.Pipelines, pipeline)
		}
	}
	return block
}

func splitTokens(tokens []lexer.Token, sep lexer.TokenType) [][]lexer.Token {
	var groups [][]lexer.Token
	var current []lexer.Token
	for _, tok := range tokens {
		if tok.Type == sep {
			groups = append(groups, current)
			current = nil
			continue
		}
		current = append(current, tok)
	}
	groups = append(groups, current)
	return groups
}

func isAttributeToken(tok lexer.Token) bool {
	return tok.Type == lexer.WORD && strings.HasPrefix(tok.Literal, "@")
}

// parseAttribute parses one @name line. The expression spans just the name
// when the attribute stands alone, and the whole line when arguments follow,
// so the cursor can land on an argument token.
func (ws *WorkingSet) parseAttribute(line []lexer.Token) *Expression {
	head := line[0]
	name := strings.TrimPrefix(head.Literal, "@")
	nameSpan := lexer.NewSpan(head.Span.Start+1, head.Span.End)

	recognized := false
	for _, attr := range ws.State.Attributes {
		if attr.Name == name {
			recognized = true
			break
		}
	}

	var nameExpr *Expression
	if recognized {
		nameExpr = &Expression{Expr: &Keyword{Name: name}, Span: nameSpan}
	} else {
		ws.addError(nameSpan, "unknown attribute")
		nameExpr = &Expression{Expr: &Garbage{}, Span: nameSpan}
	}

	if len(line) == 1 {
		return nameExpr
	}

	var args []*Expression
	for _, tok := range line[1:] {
		args = append(args, ws.parseLiteral(tok))
	}
	return &Expression{
		Expr: &ExternalCall{Head: nameExpr, Args: args},
		Span: lexer.NewSpan(head.Span.Start, line[len(line)-1].Span.End),
	}
}

// parseStage parses one pipeline element. A stage whose first token is an
// operand literal becomes a math expression; a stage headed by a declared
// name becomes an internal call; anything else becomes an external call.
func (ws *WorkingSet) parseStage(tokens []lexer.Token) *Expression {
	if len(tokens) == 0 {
		return nil
	}
	first := tokens[0]
	if isOperandToken(first) {
		if _, ok := ws.State.FindDecl(first.Literal); !ok {
			return ws.parseMath(tokens)
		}
	}
	if declID, matched := ws.longestDeclMatch(tokens); matched > 0 {
		return ws.parseCall(declID, tokens, matched)
	}
	return ws.parseExternalCall(tokens)
}

func isOperandToken(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.STRING, lexer.LBRACKET:
		return true
	case lexer.WORD:
		lit := tok.Literal
		return intPattern.MatchString(lit) ||
			floatPattern.MatchString(lit) ||
			lit == "true" || lit == "false" ||
			strings.HasPrefix(lit, "$")
	}
	return false
}

// longestDeclMatch matches the longest declared name formed by joining the
// stage's leading words, so "overlay use" wins over "overlay".
func (ws *WorkingSet) longestDeclMatch(tokens []lexer.Token) (engine.DeclID, int) {
	max := 3
	if len(tokens) < max {
		max = len(tokens)
	}
	for n := max; n >= 1; n-- {
		parts := make([]string, 0, n)
		for _, tok := range tokens[:n] {
			if tok.Type != lexer.WORD {
				parts = nil
				break
			}
			parts = append(parts, tok.Literal)
		}
		if parts == nil {
			continue
		}
		if id, ok := ws.State.FindDecl(strings.Join(parts, " ")); ok {
			return id, n
		}
	}
	return 0, 0
}

func (ws *WorkingSet) parseCall(declID engine.DeclID, tokens []lexer.Token, matched int) *Expression {
	decl := ws.State.GetDecl(declID)
	head := lexer.NewSpan(tokens[0].Span.Start, tokens[matched-1].Span.End)

	call := &Call{Decl: declID, Head: head}
	end := head.End
	positional := 0
	rest := tokens[matched:]
	for i := 0; i < len(rest); i++ {
		tok := rest[i]
		var arg *Expression
		switch {
		case tok.Type == lexer.LBRACKET:
			var consumed int
			arg, consumed = ws.parseList(rest[i:])
			i += consumed - 1
			positional++
		case isFlagToken(tok):
			arg = &Expression{Expr: &Flag{Name: tok.Literal}, Span: tok.Span}
		default:
			arg = ws.parseCallArg(tok, decl, positional)
			positional++
		}
		call.Args = append(call.Args, arg)
		end = arg.Span.End
	}
	return &Expression{Expr: call, Span: lexer.NewSpan(head.Start, end)}
}

// parseCallArg classifies one non-flag argument using the declared
// signature. Bare words take the positional's syntax shape; quoted strings
// and literals keep their own.
func (ws *WorkingSet) parseCallArg(tok lexer.Token, decl *engine.Decl, positional int) *Expression {
	if lit := ws.parseLiteralStrict(tok); lit != nil {
		return lit
	}

	var param *engine.PositionalArg
	if decl != nil {
		if positional < len(decl.Sig.Positional) {
			param = &decl.Sig.Positional[positional]
		} else if decl.Sig.Rest != nil {
			param = decl.Sig.Rest
		}
	}

	word := tok.Literal
	expr := &Expression{Span: tok.Span}
	if param == nil {
		expr.Expr = &String{Value: word}
		return expr
	}
	switch param.Shape {
	case engine.ShapeFilepath:
		expr.Expr = &Filepath{Value: word}
	case engine.ShapeDirectory:
		expr.Expr = &Directory{Value: word}
	case engine.ShapeGlobPattern:
		expr.Expr = &GlobPattern{Value: word}
	default:
		expr.Expr = &String{Value: word}
	}
	expr.CustomCompletion = param.Completer
	return expr
}

func (ws *WorkingSet) parseExternalCall(tokens []lexer.Token) *Expression {
	head := &Expression{
		Expr: &String{Value: unquote(tokens[0])},
		Span: tokens[0].Span,
	}
	call := &ExternalCall{Head: head}
	end := head.Span.End
	for i := 1; i < len(tokens); i++ {
		tok := tokens[i]
		var arg *Expression
		switch {
		case tok.Type == lexer.LBRACKET:
			var consumed int
			arg, consumed = ws.parseList(tokens[i:])
			i += consumed - 1
		case isFlagToken(tok):
			arg = &Expression{Expr: &Flag{Name: tok.Literal}, Span: tok.Span}
		default:
			if lit := ws.parseLiteralStrict(tok); lit != nil {
				arg = lit
			} else {
				arg = &Expression{Expr: &ExternalArg{Value: tok.Literal}, Span: tok.Span}
			}
		}
		call.Args = append(call.Args, arg)
		end = arg.Span.End
	}
	return &Expression{Expr: call, Span: lexer.NewSpan(head.Span.Start, end)}
}

// parseMath parses a left-associative chain of binary operations. A missing
// right operand becomes zero-width Garbage at the end of the operator, and
// an unrecognized operator word becomes Garbage over its own span, keeping
// partially typed expressions addressable.
func (ws *WorkingSet) parseMath(tokens []lexer.Token) *Expression {
	left, i := ws.parseOperand(tokens, 0)
	for i < len(tokens) {
		opTok := tokens[i]
		var op *Expression
		if opTok.Type == lexer.WORD && IsOperatorName(opTok.Literal) {
			op = &Expression{Expr: &Operator{Name: opTok.Literal}, Span: opTok.Span}
		} else {
			ws.addError(opTok.Span, "expected operator")
			op = &Expression{Expr: &Garbage{}, Span: opTok.Span}
		}
		i++

		var right *Expression
		if i < len(tokens) {
			right, i = ws.parseOperand(tokens, i)
		} else {
			right = &Expression{
				Expr: &Garbage{},
				Span: lexer.NewSpan(op.Span.End, op.Span.End),
			}
		}
		span := lexer.NewSpan(left.Span.Start, op.Span.End)
		if right.Span.End > span.End {
			span.End = right.Span.End
		}
		left = &Expression{
			Expr: &BinaryOp{Left: left, Op: op, Right: right},
			Span: span,
		}
	}
	return left
}

func (ws *WorkingSet) parseOperand(tokens []lexer.Token, i int) (*Expression, int) {
	tok := tokens[i]
	if tok.Type == lexer.LBRACKET {
		expr, consumed := ws.parseList(tokens[i:])
		return expr, i + consumed
	}
	if lit := ws.parseLiteralStrict(tok); lit != nil {
		return lit, i + 1
	}
	ws.addError(tok.Span, "expected operand")
	return &Expression{Expr: &Garbage{}, Span: tok.Span}, i + 1
}

// parseList consumes a bracketed list starting at tokens[0] and returns the
// expression plus the number of tokens consumed. An unterminated list runs
// to the end of the stage.
func (ws *WorkingSet) parseList(tokens []lexer.Token) (*Expression, int) {
	list := &List{}
	end := tokens[0].Span.End
	consumed := 1
	depth := 1
	for consumed < len(tokens) {
		tok := tokens[consumed]
		consumed++
		end = tok.Span.End
		if tok.Type == lexer.LBRACKET {
			inner, n := ws.parseList(tokens[consumed-1:])
			list.Items = append(list.Items, inner)
			consumed += n - 1
			end = inner.Span.End
			continue
		}
		if tok.Type == lexer.RBRACKET {
			depth--
			break
		}
		list.Items = append(list.Items, ws.parseLiteral(tok))
	}
	if depth != 0 {
		ws.addError(lexer.NewSpan(tokens[0].Span.Start, end), "unterminated list")
	}
	return &Expression{
		Expr: list,
		Span: lexer.NewSpan(tokens[0].Span.Start, end),
	}, consumed
}

// parseLiteralStrict parses tokens with self-evident literal forms: quoted
// strings, numbers, booleans, and variables. It returns nil for plain words
// so the caller can classify them by context.
func (ws *WorkingSet) parseLiteralStrict(tok lexer.Token) *Expression {
	if tok.Type == lexer.STRING {
		return &Expression{Expr: &String{Value: unquote(tok)}, Span: tok.Span}
	}
	if tok.Type != lexer.WORD {
		return nil
	}
	lit := tok.Literal
	switch {
	case intPattern.MatchString(lit):
		v, _ := strconv.ParseInt(lit, 10, 64)
		return &Expression{Expr: &Int{Value: v}, Span: tok.Span}
	case floatPattern.MatchString(lit):
		v, _ := strconv.ParseFloat(lit, 64)
		return &Expression{Expr: &Float{Value: v}, Span: tok.Span}
	case lit == "true" || lit == "false":
		return &Expression{Expr: &Bool{Value: lit == "true"}, Span: tok.Span}
	case strings.HasPrefix(lit, "$"):
		return ws.parseCellPath(tok)
	}
	return nil
}

// parseLiteral is parseLiteralStrict with plain words falling back to
// strings.
func (ws *WorkingSet) parseLiteral(tok lexer.Token) *Expression {
	if lit := ws.parseLiteralStrict(tok); lit != nil {
		return lit
	}
	return &Expression{Expr: &String{Value: tok.Literal}, Span: tok.Span}
}

// parseCellPath splits a $var.member.member word into a variable head and
// per-member path entries, each with its own span.
func (ws *WorkingSet) parseCellPath(tok lexer.Token) *Expression {
	parts := strings.Split(tok.Literal, ".")
	headSpan := lexer.NewSpan(tok.Span.Start, tok.Span.Start+len(parts[0]))
	head := &Expression{Expr: &Var{Name: parts[0]}, Span: headSpan}
	if len(parts) == 1 {
		return head
	}

	path := &FullCellPath{Head: head}
	offset := headSpan.End
	for _, part := range parts[1:] {
		offset++ // the dot
		path.Tail = append(path.Tail, PathMember{
			Name: part,
			Span: lexer.NewSpan(offset, offset+len(part)),
		})
		offset += len(part)
	}
	return &Expression{Expr: path, Span: tok.Span}
}

func isFlagToken(tok lexer.Token) bool {
	if tok.Type != lexer.WORD || !strings.HasPrefix(tok.Literal, "-") {
		return false
	}
	return !intPattern.MatchString(tok.Literal) && !floatPattern.MatchString(tok.Literal)
}

func unquote(tok lexer.Token) string {
	lit := tok.Literal
	if len(lit) >= 2 {
		switch lit[0] {
		case '"', '\'', '`':
			if lit[len(lit)-1] == lit[0] {
				return lit[1 : len(lit)-1]
			}
		}
	}
	if len(lit) >= 1 {
		switch lit[0] {
		case '"', '\'', '`':
			return lit[1:]
		}
	}
	return lit
}
