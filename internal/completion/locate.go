package completion

import (
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// locate finds the innermost expression whose span contains pos. Compound
// expressions try their children in source order and claim the position
// themselves only when no child does. A bare variable is terminal; leaf
// literals yield nothing so an enclosing compound can claim them.
func locate(expr *parser.Expression, pos int) *parser.Expression {
	if expr == nil || !expr.Span.Contains(pos) {
		return nil
	}
	switch ex := expr.Expr.(type) {
	case *parser.Var:
		return expr
	case *parser.FullCellPath:
		if found := locate(ex.Head, pos); found != nil {
			return found
		}
		return expr
	case *parser.Call:
		for _, arg := range ex.Args {
			if found := locate(arg, pos); found != nil {
				return found
			}
		}
		return expr
	case *parser.ExternalCall:
		if found := locate(ex.Head, pos); found != nil {
			return found
		}
		for _, arg := range ex.Args {
			if found := locate(arg, pos); found != nil {
				return found
			}
		}
		return expr
	case *parser.BinaryOp:
		for _, child := range []*parser.Expression{ex.Left, ex.Op, ex.Right} {
			if found := locate(child, pos); found != nil {
				return found
			}
		}
		return expr
	case *parser.AttributeBlock:
		for _, attr := range ex.Attributes {
			if found := locate(attr, pos); found != nil {
				return found
			}
		}
		if found := locate(ex.Item, pos); found != nil {
			return found
		}
		return expr
	}
	return nil
}
