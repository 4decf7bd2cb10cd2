// Package repl implements the interactive nush prompt: a Bubble Tea line
// editor with tab completion, history recall, and a small built-in command
// set, running one editing session per submitted line.
package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Tiamat-Tech/nushell/internal/completion"
)

// ResultType indicates how an input session ended.
type ResultType int

const (
	// ResultNone indicates no result yet (still editing).
	ResultNone ResultType = iota
	// ResultSubmit indicates the user submitted the input (Enter).
	ResultSubmit
	// ResultInterrupt indicates the user interrupted (Ctrl+C).
	ResultInterrupt
	// ResultEOF indicates end of input (Ctrl+D on empty line).
	ResultEOF
)

// Result is the outcome of one input session.
type Result struct {
	Type  ResultType
	Value string
}

var (
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	descStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true)
)

// inputModel is the Bubble Tea model for one line of input. Tab fetches and
// cycles completions, Escape dismisses them, Up/Down walk history.
type inputModel struct {
	input  textinput.Model
	engine *completion.Engine
	log    *zap.Logger

	// history, most recent first; index -1 means editing the current line
	history   []string
	histIdx   int
	savedLine string

	// completion state: suggestions apply against base, the line as it
	// was when they were fetched
	suggestions []completion.Suggestion
	selected    int
	base        string

	result Result
}

func newInputModel(engine *completion.Engine, history []string, logger *zap.Logger) inputModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Prompt = promptStyle.Render("nush> ")
	input.Focus()
	return inputModel{
		input:   input,
		engine:  engine,
		log:     logger,
		history: history,
		histIdx: -1,
	}
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyEnter:
		m.result = Result{Type: ResultSubmit, Value: m.input.Value()}
		return m, tea.Quit
	case tea.KeyCtrlC:
		m.result = Result{Type: ResultInterrupt}
		return m, tea.Quit
	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.result = Result{Type: ResultEOF}
			return m, tea.Quit
		}
	case tea.KeyTab:
		return m.nextSuggestion(1), nil
	case tea.KeyShiftTab:
		return m.nextSuggestion(-1), nil
	case tea.KeyEsc:
		return m.dismissSuggestions(), nil
	case tea.KeyUp:
		return m.recallHistory(1), nil
	case tea.KeyDown:
		return m.recallHistory(-1), nil
	}

	// any other key edits the line and invalidates completion state
	m.suggestions = nil
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	var b strings.Builder
	b.WriteString(m.input.View())
	if len(m.suggestions) > 0 {
		b.WriteString("\n")
		b.WriteString(m.renderSuggestions())
	}
	return b.String()
}

// nextSuggestion fetches completions on first Tab and cycles through them on
// repeat presses, applying the selected one to the line.
func (m inputModel) nextSuggestion(direction int) inputModel {
	if len(m.suggestions) == 0 {
		line := m.input.Value()
		pos := m.input.Position()
		suggestions := m.engine.FetchCompletionsAt(line, pos)
		if len(suggestions) == 0 {
			return m
		}
		m.suggestions = suggestions
		m.selected = 0
		m.base = line
		return m.applySelected()
	}
	m.selected = (m.selected + direction + len(m.suggestions)) % len(m.suggestions)
	return m.applySelected()
}

func (m inputModel) applySelected() inputModel {
	sug := m.suggestions[m.selected]
	start, end := sug.Span.Start, sug.Span.End
	if start < 0 || end > len(m.base) || start > end {
		m.log.Warn("suggestion span out of range",
			zap.Int("start", start), zap.Int("end", end))
		return m
	}
	value := sug.Value
	if sug.AppendWhitespace && len(m.suggestions) == 1 {
		value += " "
	}
	line := m.base[:start] + value + m.base[end:]
	m.input.SetValue(line)
	m.input.SetCursor(start + len(value))
	return m
}

func (m inputModel) dismissSuggestions() inputModel {
	if len(m.suggestions) == 0 {
		return m
	}
	m.input.SetValue(m.base)
	m.input.SetCursor(len(m.base))
	m.suggestions = nil
	return m
}

func (m inputModel) recallHistory(direction int) inputModel {
	if len(m.history) == 0 {
		return m
	}
	if m.histIdx == -1 {
		if direction < 0 {
			return m
		}
		m.savedLine = m.input.Value()
	}
	idx := m.histIdx + direction
	if idx >= len(m.history) {
		return m
	}
	m.suggestions = nil
	if idx < 0 {
		m.histIdx = -1
		m.input.SetValue(m.savedLine)
		m.input.SetCursor(len(m.savedLine))
		return m
	}
	m.histIdx = idx
	m.input.SetValue(m.history[idx])
	m.input.SetCursor(len(m.history[idx]))
	return m
}

func (m inputModel) renderSuggestions() string {
	parts := make([]string, 0, len(m.suggestions))
	for i, sug := range m.suggestions {
		style := suggestionStyle
		if sug.Style != nil {
			style = *sug.Style
		}
		if i == m.selected {
			style = selectedStyle
		}
		text := style.Render(sug.Value)
		if i == m.selected && sug.Description != "" {
			text += " " + descStyle.Render(sug.Description)
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "  ")
}
