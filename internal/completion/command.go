package completion

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// passthroughPrefixes are leading commands after which the next token is
// still a command for dispatch purposes.
var passthroughPrefixes = map[string]bool{
	"sudo": true,
	"doas": true,
}

// CommandCompletion enumerates reachable command names. It only fires when
// the current token sits in command position within its pipeline stage,
// counting one extra slot past a passthrough prefix.
type CommandCompletion struct {
	Flattened   []parser.FlatToken
	Current     int
	Passthrough bool
	// IncludeExternals adds executables found on PATH to the candidate
	// set.
	IncludeExternals bool
}

func (c CommandCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	head := c.Current == 0 || (c.Passthrough && c.Current == 1)
	if !head {
		return nil
	}

	m := newMatcher(prefix, ctx.opts)
	internal := make(map[string]bool)
	for _, decl := range ctx.state.Decls() {
		internal[decl.Name] = true
		m.Add(decl.Name, Suggestion{
			Value:            decl.Name,
			Description:      decl.Desc,
			Span:             span,
			AppendWhitespace: true,
			Kind:             KindCommand,
		})
	}
	if c.IncludeExternals {
		for _, name := range pathExecutables(ctx) {
			if internal[name] {
				continue
			}
			m.Add(name, Suggestion{
				Value:            name,
				Span:             span,
				AppendWhitespace: true,
				Kind:             KindExternal,
			})
		}
	}
	return m.Results()
}

// pathExecutables lists executable names on PATH, resolved through the
// request's stack so tests and subshells can scope their own search path.
func pathExecutables(ctx *requestContext) []string {
	pathEnv, ok := ctx.stack.GetEnv("PATH")
	if !ok {
		return nil
	}
	var names []string
	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil || info.Mode()&0o111 == 0 {
				continue
			}
			names = append(names, entry.Name())
		}
	}
	return lo.Uniq(names)
}

func isPassthrough(word string) bool {
	return passthroughPrefixes[strings.TrimSpace(word)]
}
