package completion

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiamat-Tech/nushell/internal/engine"
)

var namedColors = map[string]lipgloss.Color{
	"black":   lipgloss.Color("0"),
	"red":     lipgloss.Color("1"),
	"green":   lipgloss.Color("2"),
	"yellow":  lipgloss.Color("3"),
	"blue":    lipgloss.Color("4"),
	"magenta": lipgloss.Color("5"),
	"purple":  lipgloss.Color("5"),
	"cyan":    lipgloss.Color("6"),
	"white":   lipgloss.Color("7"),
}

// styleFromValue builds a render style from a completer-provided value: a
// string names a color with optional underscore modifiers ("green_bold"),
// a record carries fg, bg and attr fields. Unrecognized input yields nil.
func styleFromValue(v engine.Value) *lipgloss.Style {
	switch val := v.(type) {
	case *engine.StringValue:
		return styleFromName(val.Val)
	case *engine.RecordValue:
		return styleFromRecord(val)
	}
	return nil
}

func styleFromName(name string) *lipgloss.Style {
	parts := strings.Split(name, "_")
	style := lipgloss.NewStyle()
	known := false
	for _, part := range parts {
		if color, ok := parseColor(part); ok {
			style = style.Foreground(color)
			known = true
			continue
		}
		switch part {
		case "bold":
			style = style.Bold(true)
			known = true
		case "italic":
			style = style.Italic(true)
			known = true
		case "underline":
			style = style.Underline(true)
			known = true
		case "dimmed":
			style = style.Faint(true)
			known = true
		case "reverse":
			style = style.Reverse(true)
			known = true
		}
	}
	if !known {
		return nil
	}
	return &style
}

func styleFromRecord(record *engine.RecordValue) *lipgloss.Style {
	style := lipgloss.NewStyle()
	known := false
	if v, ok := record.Get("fg"); ok {
		if text, ok := engine.CoerceString(v); ok {
			if color, ok := parseColor(text); ok {
				style = style.Foreground(color)
				known = true
			}
		}
	}
	if v, ok := record.Get("bg"); ok {
		if text, ok := engine.CoerceString(v); ok {
			if color, ok := parseColor(text); ok {
				style = style.Background(color)
				known = true
			}
		}
	}
	if v, ok := record.Get("attr"); ok {
		if text, ok := engine.CoerceString(v); ok {
			for _, attr := range text {
				switch attr {
				case 'b':
					style = style.Bold(true)
					known = true
				case 'i':
					style = style.Italic(true)
					known = true
				case 'u':
					style = style.Underline(true)
					known = true
				case 'd':
					style = style.Faint(true)
					known = true
				case 'r':
					style = style.Reverse(true)
					known = true
				}
			}
		}
	}
	if !known {
		return nil
	}
	return &style
}

func parseColor(text string) (lipgloss.Color, bool) {
	if color, ok := namedColors[text]; ok {
		return color, true
	}
	if strings.HasPrefix(text, "#") && (len(text) == 7 || len(text) == 4) {
		return lipgloss.Color(text), true
	}
	return "", false
}
