package completion

import (
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// Completer is the uniform strategy contract. prefix is the current token's
// text up to the cursor with the placeholder removed, and span is the byte
// range the produced suggestions replace, already in caller coordinates.
// Strategies are stateless across requests; anything request-scoped arrives
// through ctx or the constructor.
type Completer interface {
	Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion
}

// requestContext carries the per-request working set plus the shared
// read-only snapshot. One is built per completion call and discarded after.
type requestContext struct {
	state *engine.EngineState
	ws    *parser.WorkingSet
	stack *engine.Stack
	opts  Options
	log   *zap.Logger
}

// process runs one strategy and applies the shared failure policy: a
// strategy can assume it never sees a nil context, and its panics degrade to
// an empty result rather than killing the input loop.
func process(ctx *requestContext, completer Completer, prefix []byte, span lexer.Span) (out []Suggestion) {
	defer func() {
		if r := recover(); r != nil {
			ctx.log.Warn("completion strategy failed", zap.Any("reason", r))
			out = nil
		}
	}()
	return completer.Fetch(ctx, prefix, span)
}
