package engine

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackChildReadsThroughParent(t *testing.T) {
	parent := NewStack()
	parent.AddVar("x", NewInt(1))

	child := parent.Child()

	val, ok := child.GetVar("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), val.(*IntValue).Val)
}

func TestStackChildCannotMutateParent(t *testing.T) {
	parent := NewStack()
	parent.AddVar("x", NewInt(1))

	child := parent.Child()
	child.AddVar("x", NewInt(2))

	val, _ := parent.GetVar("x")
	assert.Equal(t, int64(1), val.(*IntValue).Val, "parent binding must be untouched")

	val, _ = child.GetVar("x")
	assert.Equal(t, int64(2), val.(*IntValue).Val, "child binding shadows parent")
}

func TestCapturesToStack(t *testing.T) {
	caller := NewStack()
	caller.AddVar("outer", NewString("visible"))

	callee := caller.CapturesToStack(map[string]Value{
		"captured": NewString("hello"),
	})

	val, ok := callee.GetVar("captured")
	require.True(t, ok)
	assert.Equal(t, "hello", val.String())

	_, ok = caller.GetVar("captured")
	assert.False(t, ok, "captures must not leak into the caller frame")

	assert.Equal(t, io.Discard, callee.Out, "callee output destination is reset")
}

func TestStackVarNames(t *testing.T) {
	parent := NewStack()
	parent.AddVar("b", Nothing())
	child := parent.Child()
	child.AddVar("a", Nothing())
	child.AddVar("b", NewInt(1))

	assert.Equal(t, []string{"a", "b"}, child.VarNames())
}

func TestEnvRecordShadowing(t *testing.T) {
	parent := NewStack()
	parent.SetEnv("PWD", "/outer")
	parent.SetEnv("HOME", "/home/me")
	child := parent.Child()
	child.SetEnv("PWD", "/inner")

	record := child.EnvRecord()

	val, ok := record.Get("PWD")
	require.True(t, ok)
	assert.Equal(t, "/inner", val.String())

	_, ok = record.Get("HOME")
	assert.True(t, ok)
}

func TestCwdPrefersStackEnv(t *testing.T) {
	stack := NewStack()
	stack.SetEnv("PWD", "/somewhere")

	assert.Equal(t, "/somewhere", stack.Cwd())
}
