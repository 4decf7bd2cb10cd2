package repl

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/completion"
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/history"
	"github.com/Tiamat-Tech/nushell/internal/styles"
)

const historyRecallLimit = 200

// Repl drives the interactive loop: read a line, record it, run it, repeat.
type Repl struct {
	state   *engine.EngineState
	stack   *engine.Stack
	engine  *completion.Engine
	history *history.HistoryManager
	log     *zap.Logger
}

// New creates a REPL over the given engine state and session stack. The
// history manager may be nil, which disables persistence and recall.
func New(state *engine.EngineState, stack *engine.Stack, historyManager *history.HistoryManager, logger *zap.Logger) *Repl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repl{
		state:   state,
		stack:   stack,
		engine:  completion.NewEngine(state, stack, logger),
		history: historyManager,
		log:     logger,
	}
}

// Run loops until the user exits. Interrupt clears the line; EOF or the exit
// command ends the session.
func (r *Repl) Run() error {
	for {
		result, err := r.readLine()
		if err != nil {
			return err
		}
		switch result.Type {
		case ResultEOF:
			return nil
		case ResultInterrupt:
			continue
		}
		line := strings.TrimSpace(result.Value)
		if line == "" {
			continue
		}
		if line == "exit" {
			return nil
		}

		var entry *history.HistoryEntry
		if r.history != nil {
			entry, err = r.history.StartLine(line, r.stack.Cwd())
			if err != nil {
				r.log.Warn("failed to record history entry", zap.Error(err))
			}
		}
		code := r.execute(line)
		if r.history != nil && entry != nil {
			if _, err := r.history.FinishLine(entry, code); err != nil {
				r.log.Warn("failed to finish history entry", zap.Error(err))
			}
		}
	}
}

func (r *Repl) readLine() (Result, error) {
	model := newInputModel(r.engine, r.recentLines(), r.log)
	program := tea.NewProgram(model)
	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("input session failed: %w", err)
	}
	m, ok := final.(inputModel)
	if !ok {
		return Result{}, fmt.Errorf("unexpected input model type")
	}
	return m.result, nil
}

func (r *Repl) recentLines() []string {
	if r.history == nil {
		return nil
	}
	entries, err := r.history.GetRecentEntries("", historyRecallLimit)
	if err != nil {
		r.log.Warn("failed to load history", zap.Error(err))
		return nil
	}
	// most recent first for recall
	lines := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		lines = append(lines, entries[i].Line)
	}
	return lines
}

// execute runs one submitted line. Directory changes and history listing are
// handled in-process; everything else is spawned as an external command in
// the session's working directory.
func (r *Repl) execute(line string) int {
	fields := strings.Fields(line)
	switch fields[0] {
	case "cd":
		return r.changeDirectory(fields[1:])
	case "history":
		return r.showHistory()
	case "clear":
		fmt.Print("\033[2J\033[H")
		return 0
	}

	cmd := exec.Command(fields[0], fields[1:]...)
	cmd.Dir = r.stack.Cwd()
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode()
		}
		fmt.Println(styles.ERROR(err.Error()))
		return 1
	}
	return 0
}

func (r *Repl) changeDirectory(args []string) int {
	target := ""
	if len(args) > 0 {
		target = args[0]
	}
	if target == "" || target == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(styles.ERROR(err.Error()))
			return 1
		}
		target = home
	}
	if !filepath.IsAbs(target) {
		target = filepath.Join(r.stack.Cwd(), target)
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		fmt.Println(styles.ERROR(fmt.Sprintf("cd: no such directory: %s", target)))
		return 1
	}
	r.stack.SetEnv("PWD", target)
	return 0
}

func (r *Repl) showHistory() int {
	if r.history == nil {
		return 0
	}
	entries, err := r.history.GetRecentEntries("", historyRecallLimit)
	if err != nil {
		fmt.Println(styles.ERROR(err.Error()))
		return 1
	}
	fmt.Print(renderHistory(entries))
	return 0
}

// renderHistory formats entries oldest first with relative timestamps.
func renderHistory(entries []history.HistoryEntry) string {
	var b strings.Builder
	for _, entry := range entries {
		b.WriteString(fmt.Sprintf("%5d  %-14s %s\n",
			entry.ID, humanize.Time(entry.CreatedAt), entry.Line))
	}
	return b.String()
}
