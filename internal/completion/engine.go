package completion

import (
	"bytes"

	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// placeholder is appended to the truncated line before parsing so a token
// always exists under the cursor, even at buffer end. It is stripped from
// every span and prefix before suggestions are produced; the technique is
// load-bearing, not cosmetic.
const placeholder = "a"

// Engine is the completion engine for one interactive session. The state
// snapshot is shared and read-only; the stack belongs to this session.
type Engine struct {
	state *engine.EngineState
	stack *engine.Stack
	log   *zap.Logger
}

// NewEngine creates a completion engine. A nil logger disables logging and a
// nil stack gets a fresh one.
func NewEngine(state *engine.EngineState, stack *engine.Stack, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if stack == nil {
		stack = engine.NewStack()
	}
	return &Engine{state: state, stack: stack, log: logger}
}

// FetchCompletionsAt returns ordered suggestions for the token under the
// cursor. Text after pos is ignored. It never fails; anything that goes
// wrong inside degrades to an empty result.
func (e *Engine) FetchCompletionsAt(line string, pos int) []Suggestion {
	if pos < 0 {
		pos = 0
	}
	if pos > len(line) {
		pos = len(line)
	}
	return e.fetch(line[:pos]+placeholder, pos, 0)
}

// fetch completes within the padded buffer. offset translates padded-buffer
// coordinates back to the caller's; a standalone line has offset zero.
func (e *Engine) fetch(padded string, pos, offset int) []Suggestion {
	ws := parser.NewWorkingSet(e.state)
	block := ws.Parse([]byte(padded))
	ctx := &requestContext{
		state: e.state,
		ws:    ws,
		stack: e.stack,
		opts:  optionsFromConfig(e.state.Config),
		log:   e.log,
	}

	var element, located *parser.Expression
outer:
	for _, pipeline := range block.Pipelines {
		for _, elem := range pipeline.Elements {
			if found := locate(elem, pos); found != nil {
				element, located = elem, found
				break outer
			}
		}
	}
	if located == nil {
		return nil
	}

	// a bare variable, or a cell path still without members, completes as
	// a variable over the stripped prefix
	if _, ok := located.Expr.(*parser.Var); ok {
		stripped := stripPlaceholder(located.Span)
		return process(ctx, VariableCompletion{}, ws.Contents(stripped), translate(stripped, offset))
	}
	if path, ok := located.Expr.(*parser.FullCellPath); ok {
		if len(path.Tail) == 0 {
			stripped := stripPlaceholder(located.Span)
			return process(ctx, VariableCompletion{}, ws.Contents(stripped), translate(stripped, offset))
		}
		for i := len(path.Tail) - 1; i >= 0; i-- {
			member := path.Tail[i]
			if !member.Span.Contains(pos) {
				continue
			}
			stripped := stripPlaceholder(member.Span)
			return process(ctx, CellPathCompletion{Path: path, Upto: i},
				ws.Contents(stripped), translate(stripped, offset))
		}
		return nil
	}

	flattened := parser.Flatten(element)
	current := -1
	args := make([]string, 0, len(flattened))
	var prefix []byte
	var stripped lexer.Span
	for i, tok := range flattened {
		text := ws.Contents(tok.Span)
		if tok.Span.Contains(pos) {
			current = i
			rel := pos - tok.Span.Start
			if rel > len(text) {
				rel = len(text)
			}
			prefix = append([]byte(nil), text[:rel]...)
			stripped = stripPlaceholder(tok.Span)
			args = append(args, string(prefix))
			continue
		}
		args = append(args, string(text))
	}
	if current < 0 {
		return nil
	}
	passthrough := len(args) > 0 && isPassthrough(args[0])
	span := translate(stripped, offset)
	e.log.Debug(
		"completing token",
		zap.String("prefix", string(prefix)),
		zap.Int("position", current),
		zap.Int("shape", int(flattened[current].Shape.Kind)),
	)

	if ab, ok := element.Expr.(*parser.AttributeBlock); ok && len(ab.Attributes) > 0 {
		last := ab.Attributes[len(ab.Attributes)-1]
		if _, garbage := last.Expr.(*parser.Garbage); garbage {
			return process(ctx, AttributeCompletion{}, prefix, span)
		}
		return process(ctx, AttributableCompletion{}, prefix, span)
	}

	if bytes.HasPrefix(prefix, []byte("-")) {
		results := process(ctx, FlagCompletion{Element: element}, prefix, span)
		if len(results) > 0 {
			return results
		}
		if closure := externalCompleterFor(ctx); closure != nil {
			if mapped, answered := externalCompletion(ctx, closure, args, span); answered {
				return mapped
			}
		}
		return results
	}

	// an empty token in command position always completes commands,
	// overriding shape dispatch
	if (current == 0 || (passthrough && current == 1)) && stripped.Len() == 0 {
		return process(ctx, CommandCompletion{
			Flattened:        flattened,
			Current:          current,
			Passthrough:      passthrough,
			IncludeExternals: true,
		}, prefix, span)
	}

	if current > 0 {
		prev := flattened[current-1]
		switch string(ws.Contents(prev.Span)) {
		case "use", "overlay use", "source-env":
			return process(ctx, DotNuCompletion{}, prefix, span)
		case "ls":
			return process(ctx, FileCompletion{}, prefix, span)
		}
		switch prev.Shape.Kind {
		case parser.ShapeFloat, parser.ShapeInt, parser.ShapeString,
			parser.ShapeList, parser.ShapeBool, parser.ShapeVariable:
			operators := process(ctx, OperatorCompletion{
				PrevShape: prev.Shape.Kind,
				PrevText:  string(ws.Contents(prev.Span)),
			}, prefix, span)
			if len(operators) > 0 {
				return operators
			}
		}
	}

	switch flattened[current].Shape.Kind {
	case parser.ShapeCustom:
		return process(ctx, CustomCompletion{
			Block: flattened[current].Shape.Block,
			Line:  padded[:len(padded)-len(placeholder)],
			Pos:   pos,
		}, prefix, span)
	case parser.ShapeDirectory:
		return process(ctx, DirectoryCompletion{}, prefix, span)
	case parser.ShapeFilepath, parser.ShapeGlobPattern:
		return process(ctx, FileCompletion{}, prefix, span)
	default:
		results := process(ctx, CommandCompletion{
			Flattened:   flattened,
			Current:     current,
			Passthrough: passthrough,
		}, prefix, span)
		if len(results) > 0 {
			return results
		}
		if closure := externalCompleterFor(ctx); closure != nil {
			if mapped, answered := externalCompletion(ctx, closure, args, span); answered {
				return mapped
			}
		}
		return process(ctx, FileCompletion{}, prefix, span)
	}
}

func externalCompleterFor(ctx *requestContext) *engine.Closure {
	if ctx.state.ExternalCompleter == nil {
		return nil
	}
	if !ctx.state.Config.Completions.External.Enable {
		return nil
	}
	return ctx.state.ExternalCompleter
}

// stripPlaceholder removes the trailing placeholder byte from a span that
// covers the token under the cursor.
func stripPlaceholder(span lexer.Span) lexer.Span {
	end := span.End - 1
	if end < span.Start {
		end = span.Start
	}
	return lexer.NewSpan(span.Start, end)
}

func translate(span lexer.Span, offset int) lexer.Span {
	return lexer.NewSpan(span.Start-offset, span.End-offset)
}
