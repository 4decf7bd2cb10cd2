package completion

import (
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// AttributeCompletion enumerates the declarable attribute names. The leading
// "@" is already in the buffer; values carry the bare name.
type AttributeCompletion struct{}

func (AttributeCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	m := newMatcher(prefix, ctx.opts)
	for _, attr := range ctx.state.Attributes {
		m.Add(attr.Name, Suggestion{
			Value:       attr.Name,
			Description: attr.Desc,
			Span:        span,
			Kind:        KindValue,
		})
	}
	return m.Results()
}

// AttributableCompletion enumerates the declarations that may carry
// attributes, offered once the attribute lines above are complete.
type AttributableCompletion struct{}

func (AttributableCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	m := newMatcher(prefix, ctx.opts)
	for _, decl := range ctx.state.Decls() {
		if !decl.Attributable {
			continue
		}
		m.Add(decl.Name, Suggestion{
			Value:            decl.Name,
			Description:      decl.Desc,
			Span:             span,
			AppendWhitespace: true,
			Kind:             KindCommand,
		})
	}
	return m.Results()
}
