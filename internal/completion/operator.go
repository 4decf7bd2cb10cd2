package completion

import (
	"strings"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// OperatorCompletion enumerates the infix operators valid after the
// preceding operand. A variable operand is resolved through the stack so its
// runtime type narrows the operator set; an unresolvable variable keeps the
// comparison-only set.
type OperatorCompletion struct {
	PrevShape parser.ShapeKind
	PrevText  string
}

func (o OperatorCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	shape := o.PrevShape
	if shape == parser.ShapeVariable {
		if resolved, ok := shapeOfValue(resolveVariable(ctx, strings.TrimSpace(o.PrevText))); ok {
			shape = resolved
		}
	}

	m := newMatcher(prefix, ctx.opts)
	for _, op := range parser.OperatorsForShape(shape) {
		m.Add(op.Name, Suggestion{
			Value:            op.Name,
			Description:      op.Desc,
			Span:             span,
			AppendWhitespace: true,
			Kind:             KindOperator,
		})
	}
	return m.Results()
}

func shapeOfValue(v engine.Value) (parser.ShapeKind, bool) {
	switch v.Type() {
	case engine.IntType:
		return parser.ShapeInt, true
	case engine.FloatType:
		return parser.ShapeFloat, true
	case engine.StringType:
		return parser.ShapeString, true
	case engine.BoolType:
		return parser.ShapeBool, true
	case engine.ListType:
		return parser.ShapeList, true
	}
	return parser.ShapeGarbage, false
}
