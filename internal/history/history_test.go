package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiamat-Tech/nushell/internal/core"
)

func testManager(t *testing.T) *HistoryManager {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	core.ResetPaths()
	t.Cleanup(core.ResetPaths)

	manager, err := NewHistoryManager(filepath.Join(home, "history.db"))
	require.NoError(t, err)
	return manager
}

func TestStartAndFinishLine(t *testing.T) {
	manager := testManager(t)

	entry, err := manager.StartLine("ls --all", "/tmp")
	require.NoError(t, err)
	assert.False(t, entry.ExitCode.Valid)

	entry, err = manager.FinishLine(entry, 0)
	require.NoError(t, err)
	assert.True(t, entry.ExitCode.Valid)
	assert.EqualValues(t, 0, entry.ExitCode.Int32)
}

func TestRecentEntriesScopedByDirectory(t *testing.T) {
	manager := testManager(t)

	_, err := manager.StartLine("first", "/a")
	require.NoError(t, err)
	_, err = manager.StartLine("second", "/b")
	require.NoError(t, err)

	entries, err := manager.GetRecentEntries("/a", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "first", entries[0].Line)

	entries, err = manager.GetRecentEntries("", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecentEntriesByPrefix(t *testing.T) {
	manager := testManager(t)

	for _, line := range []string{"git status", "git push", "ls"} {
		_, err := manager.StartLine(line, "/tmp")
		require.NoError(t, err)
	}

	entries, err := manager.GetRecentEntriesByPrefix("git", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// most recent first
	assert.Equal(t, "git push", entries[0].Line)
}

func TestSearchHistory(t *testing.T) {
	manager := testManager(t)

	for _, line := range []string{"open notes.txt", "ls", "cat notes.txt"} {
		_, err := manager.StartLine(line, "/tmp")
		require.NoError(t, err)
	}

	entries, err := manager.SearchHistory("notes", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestResetHistory(t *testing.T) {
	manager := testManager(t)

	_, err := manager.StartLine("ls", "/tmp")
	require.NoError(t, err)
	require.NoError(t, manager.ResetHistory())

	entries, err := manager.GetRecentEntries("", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
