package parser

import (
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// ShapeKind classifies the syntactic shape of a flattened token.
type ShapeKind int

const (
	// ShapeGarbage marks unparsable source
	ShapeGarbage ShapeKind = iota
	// ShapeInt marks an integer literal
	ShapeInt
	// ShapeFloat marks a float literal
	ShapeFloat
	// ShapeBool marks a boolean literal
	ShapeBool
	// ShapeString marks a string literal or plain word
	ShapeString
	// ShapeList marks a list literal
	ShapeList
	// ShapeVariable marks a variable reference
	ShapeVariable
	// ShapeFilepath marks a file path argument
	ShapeFilepath
	// ShapeDirectory marks a directory argument
	ShapeDirectory
	// ShapeGlobPattern marks a glob argument
	ShapeGlobPattern
	// ShapeFlag marks a dash-prefixed flag
	ShapeFlag
	// ShapeOperator marks an infix operator
	ShapeOperator
	// ShapeInternalCall marks the head of a declared command call
	ShapeInternalCall
	// ShapeExternal marks the head of an external call
	ShapeExternal
	// ShapeExternalArg marks an argument to an external call
	ShapeExternalArg
	// ShapeKeyword marks declaration keywords and attribute names
	ShapeKeyword
	// ShapeCustom marks an argument with a custom completer attached
	ShapeCustom
)

var shapeKindNames = map[ShapeKind]string{
	ShapeGarbage:      "garbage",
	ShapeInt:          "int",
	ShapeFloat:        "float",
	ShapeBool:         "bool",
	ShapeString:       "string",
	ShapeList:         "list",
	ShapeVariable:     "variable",
	ShapeFilepath:     "filepath",
	ShapeDirectory:    "directory",
	ShapeGlobPattern:  "glob",
	ShapeFlag:         "flag",
	ShapeOperator:     "operator",
	ShapeInternalCall: "internal_call",
	ShapeExternal:     "external",
	ShapeExternalArg:  "external_arg",
	ShapeKeyword:      "keyword",
	ShapeCustom:       "custom",
}

func (k ShapeKind) String() string {
	if name, ok := shapeKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// FlatShape is a shape classification; Block is set for ShapeCustom and
// references the argument's completer.
type FlatShape struct {
	Kind  ShapeKind
	Block engine.BlockID
}

// FlatToken is one (span, shape) pair of the flattened token stream, ordered
// left to right by source position.
type FlatToken struct {
	Span  lexer.Span
	Shape FlatShape
}

// Flatten converts an expression tree into its ordered leaf tokens. Spans
// with zero width are dropped; completion relies on at most one flattened
// token containing the cursor.
func Flatten(expr *Expression) []FlatToken {
	var out []FlatToken
	flattenInto(expr, &out)
	return out
}

func flattenInto(expr *Expression, out *[]FlatToken) {
	if expr == nil || expr.Span.Len() == 0 {
		return
	}
	if expr.CustomCompletion != 0 {
		push(out, expr.Span, FlatShape{Kind: ShapeCustom, Block: expr.CustomCompletion})
		return
	}
	switch ex := expr.Expr.(type) {
	case *Int:
		push(out, expr.Span, FlatShape{Kind: ShapeInt})
	case *Float:
		push(out, expr.Span, FlatShape{Kind: ShapeFloat})
	case *Bool:
		push(out, expr.Span, FlatShape{Kind: ShapeBool})
	case *String:
		push(out, expr.Span, FlatShape{Kind: ShapeString})
	case *Filepath:
		push(out, expr.Span, FlatShape{Kind: ShapeFilepath})
	case *Directory:
		push(out, expr.Span, FlatShape{Kind: ShapeDirectory})
	case *GlobPattern:
		push(out, expr.Span, FlatShape{Kind: ShapeGlobPattern})
	case *Var:
		push(out, expr.Span, FlatShape{Kind: ShapeVariable})
	case *FullCellPath:
		flattenInto(ex.Head, out)
		for _, member := range ex.Tail {
			push(out, member.Span, FlatShape{Kind: ShapeString})
		}
	case *Flag:
		push(out, expr.Span, FlatShape{Kind: ShapeFlag})
	case *List:
		// a list participates in operator dispatch as a single operand
		push(out, expr.Span, FlatShape{Kind: ShapeList})
	case *Operator:
		push(out, expr.Span, FlatShape{Kind: ShapeOperator})
	case *BinaryOp:
		flattenInto(ex.Left, out)
		flattenInto(ex.Op, out)
		flattenInto(ex.Right, out)
	case *Call:
		push(out, ex.Head, FlatShape{Kind: ShapeInternalCall})
		for _, arg := range ex.Args {
			flattenInto(arg, out)
		}
	case *ExternalCall:
		push(out, ex.Head.Span, FlatShape{Kind: ShapeExternal})
		for _, arg := range ex.Args {
			flattenInto(arg, out)
		}
	case *ExternalArg:
		push(out, expr.Span, FlatShape{Kind: ShapeExternalArg})
	case *Keyword:
		push(out, expr.Span, FlatShape{Kind: ShapeKeyword})
	case *AttributeBlock:
		for _, attr := range ex.Attributes {
			flattenInto(attr, out)
		}
		flattenInto(ex.Item, out)
	case *Garbage:
		push(out, expr.Span, FlatShape{Kind: ShapeGarbage})
	}
}

func push(out *[]FlatToken, span lexer.Span, shape FlatShape) {
	if span.Len() == 0 {
		return
	}
	*out = append(*out, FlatToken{Span: span, Shape: shape})
}
