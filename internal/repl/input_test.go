package repl

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/completion"
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/history"
)

func testModel(t *testing.T, historyLines []string) inputModel {
	t.Helper()
	state := engine.DefaultEngineState()
	stack := engine.NewStack()
	stack.SetEnv("PWD", t.TempDir())
	stack.SetEnv("PATH", "")
	eng := completion.NewEngine(state, stack, zap.NewNop())
	return newInputModel(eng, historyLines, zap.NewNop())
}

func press(m inputModel, keyType tea.KeyType) inputModel {
	updated, _ := m.Update(tea.KeyMsg{Type: keyType})
	return updated.(inputModel)
}

func TestTabAppliesSingleSuggestionWithTrailingSpace(t *testing.T) {
	m := testModel(t, nil)
	m.input.SetValue("ls --a")
	m.input.SetCursor(6)

	m = press(m, tea.KeyTab)
	assert.Equal(t, "ls --all ", m.input.Value())
}

func TestTabCyclesThroughSuggestions(t *testing.T) {
	m := testModel(t, nil)
	m.input.SetValue("1 bit-sh")
	m.input.SetCursor(8)

	m = press(m, tea.KeyTab)
	require.Len(t, m.suggestions, 2)
	assert.Equal(t, "1 bit-shl", m.input.Value())

	m = press(m, tea.KeyTab)
	assert.Equal(t, "1 bit-shr", m.input.Value())

	m = press(m, tea.KeyShiftTab)
	assert.Equal(t, "1 bit-shl", m.input.Value())
}

func TestEscapeRestoresOriginalLine(t *testing.T) {
	m := testModel(t, nil)
	m.input.SetValue("1 bit-sh")
	m.input.SetCursor(8)

	m = press(m, tea.KeyTab)
	require.NotEmpty(t, m.suggestions)

	m = press(m, tea.KeyEsc)
	assert.Empty(t, m.suggestions)
	assert.Equal(t, "1 bit-sh", m.input.Value())
}

func TestTabWithNoMatchesLeavesLineUntouched(t *testing.T) {
	m := testModel(t, nil)
	m.input.SetValue("1.0 bit-sh")
	m.input.SetCursor(10)

	m = press(m, tea.KeyTab)
	assert.Empty(t, m.suggestions)
	assert.Equal(t, "1.0 bit-sh", m.input.Value())
}

func TestHistoryRecall(t *testing.T) {
	m := testModel(t, []string{"second", "first"})
	m.input.SetValue("draft")

	m = press(m, tea.KeyUp)
	assert.Equal(t, "second", m.input.Value())

	m = press(m, tea.KeyUp)
	assert.Equal(t, "first", m.input.Value())

	m = press(m, tea.KeyDown)
	assert.Equal(t, "second", m.input.Value())

	m = press(m, tea.KeyDown)
	assert.Equal(t, "draft", m.input.Value())
}

func TestEnterSubmits(t *testing.T) {
	m := testModel(t, nil)
	m.input.SetValue("echo hi")

	m = press(m, tea.KeyEnter)
	assert.Equal(t, ResultSubmit, m.result.Type)
	assert.Equal(t, "echo hi", m.result.Value)
}

func TestCtrlDOnEmptyLineIsEOF(t *testing.T) {
	m := testModel(t, nil)

	m = press(m, tea.KeyCtrlD)
	assert.Equal(t, ResultEOF, m.result.Type)
}

func TestRenderHistoryUsesRelativeTimes(t *testing.T) {
	entries := []history.HistoryEntry{
		{ID: 1, CreatedAt: time.Now().Add(-2 * time.Hour), Line: "ls"},
	}
	out := renderHistory(entries)
	assert.Contains(t, out, "ls")
	assert.True(t, strings.Contains(out, "ago"))
}
