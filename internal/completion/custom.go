package completion

import (
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/config"
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// CustomCompletion invokes the completer block declared for an argument,
// passing the line and cursor position when the block's signature asks for
// them. An empty, invalid or failed result falls back to file completion.
type CustomCompletion struct {
	Block engine.BlockID
	Line  string
	Pos   int
}

func (c CustomCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	block := ctx.state.GetBlock(c.Block)
	if block == nil {
		return fileFallback(ctx, prefix, span)
	}

	callee := ctx.stack.CapturesToStack(nil)
	if len(block.Sig.Positional) > 0 {
		callee.AddVar(block.Sig.Positional[0].Name, engine.NewString(c.Line))
	}
	if len(block.Sig.Positional) > 1 {
		callee.AddVar(block.Sig.Positional[1].Name, engine.NewInt(int64(c.Pos)))
	}

	out, err := engine.EvalBlock(ctx.state, callee, block, engine.Nothing())
	if err != nil {
		ctx.log.Warn("custom completer failed", zap.Error(err))
		return fileFallback(ctx, prefix, span)
	}

	opts := ctx.opts
	var items []engine.Value
	switch val := out.(type) {
	case *engine.ListValue:
		items = val.Items
	case *engine.RecordValue:
		list, ok := val.Get("completions")
		if !ok {
			return fileFallback(ctx, prefix, span)
		}
		listVal, ok := list.(*engine.ListValue)
		if !ok {
			return fileFallback(ctx, prefix, span)
		}
		items = listVal.Items
		if o, ok := val.Get("options"); ok {
			opts = overrideOptions(opts, o)
		}
	default:
		ctx.log.Warn("custom completer returned unexpected value",
			zap.String("type", out.Type().String()))
		return fileFallback(ctx, prefix, span)
	}

	mapped := mapValueCompletions(ctx, items, span)
	m := newMatcher(prefix, opts)
	for _, sug := range mapped {
		m.Add(sug.Value, sug)
	}
	results := m.Results()
	if len(results) == 0 {
		return fileFallback(ctx, prefix, span)
	}
	return results
}

func fileFallback(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	return process(ctx, FileCompletion{}, prefix, span)
}

// overrideOptions applies a custom completer's options record on top of the
// request options. Unknown fields are ignored.
func overrideOptions(opts Options, v engine.Value) Options {
	record, ok := v.(*engine.RecordValue)
	if !ok {
		return opts
	}
	if cs, ok := record.Get("case_sensitive"); ok {
		if b, ok := cs.(*engine.BoolValue); ok {
			opts.CaseSensitive = b.Val
		}
	}
	if algo, ok := record.Get("completion_algorithm"); ok {
		if text, ok := engine.CoerceString(algo); ok {
			switch text {
			case config.AlgorithmPrefix, config.AlgorithmFuzzy:
				opts.Algorithm = text
			}
		}
	}
	if mode, ok := record.Get("sort"); ok {
		if text, ok := engine.CoerceString(mode); ok {
			switch text {
			case config.SortSmart, config.SortAlphabetical:
				opts.Sort = text
			}
		}
	}
	return opts
}
