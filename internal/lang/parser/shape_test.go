package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

func flattenSource(t *testing.T, state *engine.EngineState, src string) []FlatToken {
	t.Helper()
	ws := NewWorkingSet(state)
	block := ws.Parse([]byte(src))
	require.Len(t, block.Pipelines, 1)
	var out []FlatToken
	for _, elem := range block.Pipelines[0].Elements {
		out = append(out, Flatten(elem)...)
	}
	return out
}

func shapes(tokens []FlatToken) []ShapeKind {
	kinds := make([]ShapeKind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Shape.Kind
	}
	return kinds
}

func TestFlattenInternalCall(t *testing.T) {
	tokens := flattenSource(t, engine.DefaultEngineState(), "ls -la src")

	assert.Equal(t, []ShapeKind{ShapeInternalCall, ShapeFlag, ShapeGlobPattern}, shapes(tokens))
	assert.Equal(t, lexer.NewSpan(0, 2), tokens[0].Span)
	assert.Equal(t, lexer.NewSpan(3, 6), tokens[1].Span)
	assert.Equal(t, lexer.NewSpan(7, 10), tokens[2].Span)
}

func TestFlattenExternalCall(t *testing.T) {
	tokens := flattenSource(t, engine.DefaultEngineState(), "sudo la")

	assert.Equal(t, []ShapeKind{ShapeExternal, ShapeExternalArg}, shapes(tokens))
	assert.Equal(t, lexer.NewSpan(0, 4), tokens[0].Span)
	assert.Equal(t, lexer.NewSpan(5, 7), tokens[1].Span)
}

func TestFlattenPartialMath(t *testing.T) {
	tokens := flattenSource(t, engine.DefaultEngineState(), "1 bit-sha")

	// zero-width right operand does not appear
	assert.Equal(t, []ShapeKind{ShapeInt, ShapeGarbage}, shapes(tokens))
	assert.Equal(t, lexer.NewSpan(2, 9), tokens[1].Span)
}

func TestFlattenCellPath(t *testing.T) {
	tokens := flattenSource(t, engine.DefaultEngineState(), "echo $env.PWDa")

	assert.Equal(t, []ShapeKind{ShapeInternalCall, ShapeVariable, ShapeString}, shapes(tokens))
	assert.Equal(t, lexer.NewSpan(5, 9), tokens[1].Span)
	assert.Equal(t, lexer.NewSpan(10, 14), tokens[2].Span)
}

func TestFlattenListIsSingleToken(t *testing.T) {
	tokens := flattenSource(t, engine.DefaultEngineState(), "[1 2] ++ [3]")

	assert.Equal(t, []ShapeKind{ShapeList, ShapeOperator, ShapeList}, shapes(tokens))
	assert.Equal(t, lexer.NewSpan(0, 5), tokens[0].Span)
}

func TestFlattenCustomShapeCarriesBlock(t *testing.T) {
	state := engine.DefaultEngineState()
	blockID := state.AddBlock(&engine.Block{
		Run: func(*engine.EngineState, *engine.Stack, engine.Value) (engine.Value, error) {
			return engine.Nothing(), nil
		},
	})
	state.AddDecl(&engine.Decl{
		Name: "my-command",
		Sig: engine.Signature{
			Positional: []engine.PositionalArg{
				{Name: "animal", Shape: engine.ShapeString, Completer: blockID},
			},
		},
	})

	tokens := flattenSource(t, state, "my-command ca")
	require.Len(t, tokens, 2)
	assert.Equal(t, ShapeCustom, tokens[1].Shape.Kind)
	assert.Equal(t, blockID, tokens[1].Shape.Block)
}

func TestFlattenSpansAreOrderedAndNonEmpty(t *testing.T) {
	tokens := flattenSource(t, engine.DefaultEngineState(), `open file.txt | where name starts-with "a"`)

	prev := -1
	for _, tok := range tokens {
		assert.Greater(t, tok.Span.Len(), 0)
		assert.GreaterOrEqual(t, tok.Span.Start, prev)
		prev = tok.Span.End
	}
}
