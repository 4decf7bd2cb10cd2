package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

func parseOne(t *testing.T, src string) *Expression {
	t.Helper()
	ws := NewWorkingSet(engine.DefaultEngineState())
	block := ws.Parse([]byte(src))
	require.Len(t, block.Pipelines, 1)
	require.NotEmpty(t, block.Pipelines[0].Elements)
	return block.Pipelines[0].Elements[0]
}

func TestParseInternalCall(t *testing.T) {
	elem := parseOne(t, "ls -la src")

	call, ok := elem.Expr.(*Call)
	require.True(t, ok)
	assert.Equal(t, lexer.NewSpan(0, 2), call.Head)
	require.Len(t, call.Args, 2)

	flag, ok := call.Args[0].Expr.(*Flag)
	require.True(t, ok)
	assert.Equal(t, "-la", flag.Name)

	pattern, ok := call.Args[1].Expr.(*GlobPattern)
	require.True(t, ok)
	assert.Equal(t, "src", pattern.Value)
	assert.Equal(t, lexer.NewSpan(7, 10), call.Args[1].Span)
}

func TestParseMultiWordCommandHead(t *testing.T) {
	elem := parseOne(t, "overlay use helpers")

	call, ok := elem.Expr.(*Call)
	require.True(t, ok)
	assert.Equal(t, lexer.NewSpan(0, 11), call.Head)
	require.Len(t, call.Args, 1)
}

func TestParsePipelineStages(t *testing.T) {
	ws := NewWorkingSet(engine.DefaultEngineState())
	block := ws.Parse([]byte("ls | sudo ma"))

	require.Len(t, block.Pipelines, 1)
	elements := block.Pipelines[0].Elements
	require.Len(t, elements, 2)

	_, ok := elements[0].Expr.(*Call)
	assert.True(t, ok)

	external, ok := elements[1].Expr.(*ExternalCall)
	require.True(t, ok)
	head, ok := external.Head.Expr.(*String)
	require.True(t, ok)
	assert.Equal(t, "sudo", head.Value)
	require.Len(t, external.Args, 1)
	_, ok = external.Args[0].Expr.(*ExternalArg)
	assert.True(t, ok)
}

func TestParseMathWithKnownOperator(t *testing.T) {
	elem := parseOne(t, "1 + 2")

	op, ok := elem.Expr.(*BinaryOp)
	require.True(t, ok)
	_, ok = op.Left.Expr.(*Int)
	assert.True(t, ok)
	name, ok := op.Op.Expr.(*Operator)
	require.True(t, ok)
	assert.Equal(t, "+", name.Name)
	_, ok = op.Right.Expr.(*Int)
	assert.True(t, ok)
}

func TestParseMathPartialOperator(t *testing.T) {
	elem := parseOne(t, "1 bit-sha")

	op, ok := elem.Expr.(*BinaryOp)
	require.True(t, ok)
	_, ok = op.Op.Expr.(*Garbage)
	require.True(t, ok)
	assert.Equal(t, lexer.NewSpan(2, 9), op.Op.Span)

	// the missing right operand is zero width at the end of the operator
	_, ok = op.Right.Expr.(*Garbage)
	require.True(t, ok)
	assert.Equal(t, 0, op.Right.Span.Len())
}

func TestParseMathLeftAssociative(t *testing.T) {
	elem := parseOne(t, "1 + 2 * 3")

	outer, ok := elem.Expr.(*BinaryOp)
	require.True(t, ok)
	name, ok := outer.Op.Expr.(*Operator)
	require.True(t, ok)
	assert.Equal(t, "*", name.Name)

	inner, ok := outer.Left.Expr.(*BinaryOp)
	require.True(t, ok)
	innerOp, ok := inner.Op.Expr.(*Operator)
	require.True(t, ok)
	assert.Equal(t, "+", innerOp.Name)
}

func TestParseStringOperand(t *testing.T) {
	elem := parseOne(t, `"a" sa`)

	op, ok := elem.Expr.(*BinaryOp)
	require.True(t, ok)
	str, ok := op.Left.Expr.(*String)
	require.True(t, ok)
	assert.Equal(t, "a", str.Value)
	_, ok = op.Op.Expr.(*Garbage)
	assert.True(t, ok)
}

func TestParseListOperand(t *testing.T) {
	elem := parseOne(t, "[1 2] ++ [3]")

	op, ok := elem.Expr.(*BinaryOp)
	require.True(t, ok)
	list, ok := op.Left.Expr.(*List)
	require.True(t, ok)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, lexer.NewSpan(0, 5), op.Left.Span)

	name, ok := op.Op.Expr.(*Operator)
	require.True(t, ok)
	assert.Equal(t, "++", name.Name)
}

func TestParseCellPath(t *testing.T) {
	elem := parseOne(t, "echo $env.PWDa")

	call, ok := elem.Expr.(*Call)
	require.True(t, ok)
	require.Len(t, call.Args, 1)

	path, ok := call.Args[0].Expr.(*FullCellPath)
	require.True(t, ok)
	v, ok := path.Head.Expr.(*Var)
	require.True(t, ok)
	assert.Equal(t, "$env", v.Name)
	assert.Equal(t, lexer.NewSpan(5, 9), path.Head.Span)

	require.Len(t, path.Tail, 1)
	assert.Equal(t, "PWDa", path.Tail[0].Name)
	assert.Equal(t, lexer.NewSpan(10, 14), path.Tail[0].Span)
}

func TestParseBareVariable(t *testing.T) {
	elem := parseOne(t, "echo $env")

	call, ok := elem.Expr.(*Call)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	v, ok := call.Args[0].Expr.(*Var)
	require.True(t, ok)
	assert.Equal(t, "$env", v.Name)
}

func TestParseAttributeBlock(t *testing.T) {
	elem := parseOne(t, "@example\ndef greet")

	attrBlock, ok := elem.Expr.(*AttributeBlock)
	require.True(t, ok)
	require.Len(t, attrBlock.Attributes, 1)

	kw, ok := attrBlock.Attributes[0].Expr.(*Keyword)
	require.True(t, ok)
	assert.Equal(t, "example", kw.Name)
	assert.Equal(t, lexer.NewSpan(1, 8), attrBlock.Attributes[0].Span)

	require.NotNil(t, attrBlock.Item)
	_, ok = attrBlock.Item.Expr.(*Call)
	assert.True(t, ok)
}

func TestParseUnknownAttributeIsGarbage(t *testing.T) {
	elem := parseOne(t, "@cata")

	attrBlock, ok := elem.Expr.(*AttributeBlock)
	require.True(t, ok)
	require.Len(t, attrBlock.Attributes, 1)
	_, ok = attrBlock.Attributes[0].Expr.(*Garbage)
	assert.True(t, ok)
	assert.Nil(t, attrBlock.Item)
}

func TestParseCustomCompleterPropagates(t *testing.T) {
	state := engine.DefaultEngineState()
	blockID := state.AddBlock(&engine.Block{
		Run: func(*engine.EngineState, *engine.Stack, engine.Value) (engine.Value, error) {
			return engine.NewStringList([]string{"cat", "dog"}), nil
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

	ws := NewWorkingSet(state)
	block := ws.Parse([]byte("my-command ca"))
	require.Len(t, block.Pipelines, 1)
	call, ok := block.Pipelines[0].Elements[0].Expr.(*Call)
	require.True(t, ok)
	require.Len(t, call.Args, 1)
	assert.Equal(t, blockID, call.Args[0].CustomCompletion)
}

func TestContentsClampsToBuffer(t *testing.T) {
	ws := NewWorkingSet(engine.DefaultEngineState())
	ws.Parse([]byte("ls"))

	assert.Equal(t, []byte("ls"), ws.Contents(lexer.NewSpan(0, 2)))
	assert.Equal(t, []byte("s"), ws.Contents(lexer.NewSpan(1, 99)))
	assert.Nil(t, ws.Contents(lexer.NewSpan(5, 9)))
}

func TestParseRecordsDiagnostics(t *testing.T) {
	ws := NewWorkingSet(engine.DefaultEngineState())
	ws.Parse([]byte("1 nope"))
	require.NotEmpty(t, ws.Errors())
	assert.Equal(t, lexer.NewSpan(2, 6), ws.Errors()[0].Span)

	// diagnostics reset on the next parse
	ws.Parse([]byte("1 + 2"))
	assert.Empty(t, ws.Errors())
}
