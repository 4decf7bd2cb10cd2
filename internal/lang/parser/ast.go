package parser

import (
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// Expr is one variant of the expression tree. The set of variants is closed;
// new syntax is added as a new variant case, not by subclassing.
type Expr interface {
	exprNode()
}

// Expression pairs an expression variant with its source span. The optional
// CustomCompletion field carries the block registered as the argument's
// custom completer, when the enclosing signature declares one.
type Expression struct {
	Expr Expr
	Span lexer.Span

	CustomCompletion engine.BlockID
}

// Block is the root of a parsed source: a list of pipelines.
type Block struct {
	Pipelines []*Pipeline
}

// Pipeline is a sequence of expressions connected by pipes.
type Pipeline struct {
	Elements []*Expression
}

// Int is an integer literal
type Int struct {
	Value int64
}

// Float is a float literal
type Float struct {
	Value float64
}

// Bool is a boolean literal
type Bool struct {
	Value bool
}

// String is a string literal; Value holds the unquoted text
type String struct {
	Value string
}

// Filepath is a bare word in file path position
type Filepath struct {
	Value string
}

// Directory is a bare word in directory position
type Directory struct {
	Value string
}

// GlobPattern is a bare word in glob position
type GlobPattern struct {
	Value string
}

// Var is a variable reference; Name includes the leading sigil
type Var struct {
	Name string
}

// PathMember is one member of a cell path, with its own span so completion
// can replace just the member under the cursor.
type PathMember struct {
	Name string
	Span lexer.Span
}

// FullCellPath is a head expression followed by field accesses
type FullCellPath struct {
	Head *Expression
	Tail []PathMember
}

// Flag is a dash-prefixed argument; Name holds the raw text including dashes
type Flag struct {
	Name string
}

// List is a bracketed list literal
type List struct {
	Items []*Expression
}

// Operator is a recognized infix operator
type Operator struct {
	Name string
}

// BinaryOp is an infix operation. Op may wrap Garbage while the operator is
// still being typed.
type BinaryOp struct {
	Left  *Expression
	Op    *Expression
	Right *Expression
}

// Call is an invocation of a declared command. Head spans the full matched
// command name, including multi-word names.
type Call struct {
	Decl engine.DeclID
	Head lexer.Span
	Args []*Expression
}

// ExternalCall is an invocation of an undeclared command
type ExternalCall struct {
	Head *Expression
	Args []*Expression
}

// ExternalArg is an argument to an external call
type ExternalArg struct {
	Value string
}

// Keyword is a bare word recognized as part of a declaration, such as an
// attribute name
type Keyword struct {
	Name string
}

// AttributeBlock is one or more attribute lines followed by the item they
// decorate. Attribute expressions wrap Keyword for recognized attributes and
// Garbage for ones still being typed.
type AttributeBlock struct {
	Attributes []*Expression
	Item       *Expression
}

// Garbage marks source that could not be parsed; completion still works on
// its span
type Garbage struct{}

func (*Int) exprNode()            {}
func (*Float) exprNode()          {}
func (*Bool) exprNode()           {}
func (*String) exprNode()         {}
func (*Filepath) exprNode()       {}
func (*Directory) exprNode()      {}
func (*GlobPattern) exprNode()    {}
func (*Var) exprNode()            {}
func (*FullCellPath) exprNode()   {}
func (*Flag) exprNode()           {}
func (*List) exprNode()           {}
func (*Operator) exprNode()       {}
func (*BinaryOp) exprNode()       {}
func (*Call) exprNode()           {}
func (*ExternalCall) exprNode()   {}
func (*ExternalArg) exprNode()    {}
func (*Keyword) exprNode()        {}
func (*AttributeBlock) exprNode() {}
func (*Garbage) exprNode()        {}
