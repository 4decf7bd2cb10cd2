package completion

import (
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/pattern"

	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// FileCompletion enumerates filesystem entries relative to the working
// directory.
type FileCompletion struct{}

func (FileCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	return completePath(ctx, prefix, span, false)
}

// DirectoryCompletion is FileCompletion restricted to directories.
type DirectoryCompletion struct{}

func (DirectoryCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	return completePath(ctx, prefix, span, true)
}

func completePath(ctx *requestContext, prefix []byte, span lexer.Span, dirsOnly bool) []Suggestion {
	text := strings.Trim(string(prefix), "`\"'")
	dirPart, base := splitPathPrefix(text)

	searchDir := expandHome(dirPart)
	if searchDir == "" {
		searchDir = "."
	}
	if !filepath.IsAbs(searchDir) {
		searchDir = filepath.Join(ctx.stack.Cwd(), searchDir)
	}
	entries, err := os.ReadDir(searchDir)
	if err != nil {
		return nil
	}

	m := newMatcher([]byte(base), ctx.opts)
	for _, entry := range entries {
		if dirsOnly && !entry.IsDir() {
			continue
		}
		name := entry.Name()
		value := dirPart + escapePath(name)
		kind := KindFile
		if entry.IsDir() {
			value += string(filepath.Separator)
			kind = KindDirectory
		}
		m.Add(name, Suggestion{
			Value: value,
			Span:  span,
			Kind:  kind,
		})
	}
	return m.Results()
}

// splitPathPrefix splits a partial path into the directory portion, kept
// verbatim in produced values, and the base being matched.
func splitPathPrefix(text string) (string, string) {
	idx := strings.LastIndex(text, "/")
	if idx < 0 {
		return "", text
	}
	return text[:idx+1], text[idx+1:]
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return home + strings.TrimPrefix(path, "~")
}

// escapePath quotes glob metacharacters so a produced name round-trips
// through the parser, and backtick-quotes names containing whitespace.
func escapePath(name string) string {
	escaped := pattern.QuoteMeta(name, pattern.Filenames)
	if strings.ContainsAny(escaped, " \t") {
		return "`" + name + "`"
	}
	return escaped
}
