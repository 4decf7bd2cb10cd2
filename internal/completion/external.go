package completion

import (
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// externalCompletion invokes the registered external completer closure. The
// returned bool distinguishes "the completer answered", possibly with an
// empty list that suppresses fallbacks, from "no opinion, defer to the
// built-in fallback":
//
//	list     -> (mapped, true)
//	nothing  -> (nil, false)
//	other or evaluation failure -> logged, (empty, true)
//
// The closure runs on a fresh child frame with its captures copied in, so a
// misbehaving completer cannot corrupt the interactive session state.
func externalCompletion(ctx *requestContext, closure *engine.Closure, args []string, span lexer.Span) ([]Suggestion, bool) {
	block := ctx.state.GetBlock(closure.Block)
	if block == nil {
		ctx.log.Warn("external completer references unknown block",
			zap.Int("block", int(closure.Block)))
		return []Suggestion{}, true
	}

	callee := ctx.stack.CapturesToStack(closure.Captures)
	if len(block.Sig.Positional) > 0 {
		callee.AddVar(block.Sig.Positional[0].Name, engine.NewStringList(args))
	}

	out, err := engine.EvalBlock(ctx.state, callee, block, engine.Nothing())
	if err != nil {
		ctx.log.Warn("external completer failed", zap.Error(err))
		return []Suggestion{}, true
	}

	switch val := out.(type) {
	case *engine.ListValue:
		mapped := mapValueCompletions(ctx, val.Items, span)
		if max := ctx.state.Config.Completions.External.MaxResults; max > 0 && len(mapped) > max {
			mapped = mapped[:max]
		}
		return mapped, true
	case *engine.NothingValue:
		return nil, false
	default:
		ctx.log.Warn("external completer returned unexpected value",
			zap.String("type", out.Type().String()))
		return []Suggestion{}, true
	}
}
