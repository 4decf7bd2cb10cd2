package completion

import (
	"os"
	"strings"

	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
)

// DotNuCompletion enumerates importable scripts: .nu files and module
// directories found in the working directory and on the configured library
// path.
type DotNuCompletion struct{}

func (DotNuCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	searchDirs := append([]string{ctx.stack.Cwd()}, ctx.state.LibDirs...)

	m := newMatcher(prefix, ctx.opts)
	seen := make(map[string]bool)
	for _, dir := range searchDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() && !strings.HasSuffix(name, ".nu") {
				continue
			}
			if entry.IsDir() {
				name += "/"
			}
			if seen[name] {
				continue
			}
			seen[name] = true
			m.Add(name, Suggestion{
				Value:            name,
				Span:             span,
				AppendWhitespace: !entry.IsDir(),
				Kind:             KindModule,
			})
		}
	}
	return m.Results()
}
