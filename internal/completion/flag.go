package completion

import (
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// FlagCompletion enumerates the declared flags of the command being called.
// External calls have no declared flags and yield nothing.
type FlagCompletion struct {
	Element *parser.Expression
}

func (f FlagCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	call, ok := f.Element.Expr.(*parser.Call)
	if !ok {
		return nil
	}
	decl := ctx.state.GetDecl(call.Decl)
	if decl == nil {
		return nil
	}

	m := newMatcher(prefix, ctx.opts)
	for _, flag := range decl.Sig.Flags {
		if flag.Long != "" {
			long := "--" + flag.Long
			m.Add(long, Suggestion{
				Value:            long,
				Description:      flag.Desc,
				Span:             span,
				AppendWhitespace: true,
				Kind:             KindFlag,
			})
		}
		if flag.Short != 0 {
			short := "-" + string(flag.Short)
			m.Add(short, Suggestion{
				Value:            short,
				Description:      flag.Desc,
				Span:             span,
				AppendWhitespace: true,
				Kind:             KindFlag,
			})
		}
	}
	return m.Results()
}
