package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

func locateIn(t *testing.T, src string, pos int) *parser.Expression {
	t.Helper()
	ws := parser.NewWorkingSet(engine.DefaultEngineState())
	block := ws.Parse([]byte(src))
	for _, pipeline := range block.Pipelines {
		for _, elem := range pipeline.Elements {
			if found := locate(elem, pos); found != nil {
				return found
			}
		}
	}
	return nil
}

func TestLocateBareVariableIsTerminal(t *testing.T) {
	found := locateIn(t, "echo $env", 6)
	require.NotNil(t, found)
	_, ok := found.Expr.(*parser.Var)
	assert.True(t, ok)
}

func TestLocateCellPathHeadReturnsVariable(t *testing.T) {
	found := locateIn(t, "echo $env.PWD", 7)
	require.NotNil(t, found)
	_, ok := found.Expr.(*parser.Var)
	assert.True(t, ok)
}

func TestLocateCellPathMemberReturnsPath(t *testing.T) {
	found := locateIn(t, "echo $env.PWD", 11)
	require.NotNil(t, found)
	_, ok := found.Expr.(*parser.FullCellPath)
	assert.True(t, ok)
}

func TestLocateCompoundClaimsUnmatchedChildren(t *testing.T) {
	// the flag is a leaf the call itself must claim
	found := locateIn(t, "ls --all", 5)
	require.NotNil(t, found)
	_, ok := found.Expr.(*parser.Call)
	assert.True(t, ok)
}

func TestLocateOutsideEverySpanFindsNothing(t *testing.T) {
	assert.Nil(t, locateIn(t, "ls", 40))
}
