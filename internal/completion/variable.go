package completion

import (
	"os"
	"strconv"
	"strings"

	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/lang/lexer"
	"github.com/Tiamat-Tech/nushell/internal/lang/parser"
)

// VariableCompletion enumerates in-scope variable names, built-ins first.
type VariableCompletion struct{}

func (VariableCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	m := newMatcher(prefix, ctx.opts)
	seen := make(map[string]bool)
	add := func(name string) {
		if !strings.HasPrefix(name, "$") {
			name = "$" + name
		}
		if seen[name] {
			return
		}
		seen[name] = true
		m.Add(name, Suggestion{
			Value: name,
			Span:  span,
			Kind:  KindVariable,
		})
	}
	for _, name := range ctx.state.BuiltinVars {
		add(name)
	}
	for _, name := range ctx.stack.VarNames() {
		add(name)
	}
	return m.Results()
}

// CellPathCompletion enumerates the fields reachable from a cell path head.
// upto is how many path members to resolve before enumerating, so the member
// under the cursor is excluded from resolution.
type CellPathCompletion struct {
	Path *parser.FullCellPath
	Upto int
}

func (c CellPathCompletion) Fetch(ctx *requestContext, prefix []byte, span lexer.Span) []Suggestion {
	head, ok := c.Path.Head.Expr.(*parser.Var)
	if !ok {
		return nil
	}
	value := resolveVariable(ctx, head.Name)
	for i := 0; i < c.Upto && i < len(c.Path.Tail); i++ {
		record, ok := value.(*engine.RecordValue)
		if !ok {
			return nil
		}
		value, ok = record.Get(c.Path.Tail[i].Name)
		if !ok {
			return nil
		}
	}

	m := newMatcher(prefix, ctx.opts)
	switch val := value.(type) {
	case *engine.RecordValue:
		for _, col := range val.Cols {
			m.Add(col, Suggestion{Value: col, Span: span, Kind: KindVariable})
		}
	case *engine.ListValue:
		for i := range val.Items {
			idx := strconv.Itoa(i)
			m.Add(idx, Suggestion{Value: idx, Span: span, Kind: KindVariable})
		}
	}
	return m.Results()
}

func resolveVariable(ctx *requestContext, name string) engine.Value {
	switch name {
	case "$env":
		return ctx.stack.EnvRecord()
	case "$nu":
		return nuRecord(ctx)
	case "$in":
		return engine.Nothing()
	}
	if v, ok := ctx.stack.GetVar(name); ok {
		return v
	}
	if v, ok := ctx.stack.GetVar(strings.TrimPrefix(name, "$")); ok {
		return v
	}
	return engine.Nothing()
}

// nuRecord is the built-in $nu constant: a handful of well-known paths.
func nuRecord(ctx *requestContext) *engine.RecordValue {
	home, _ := os.UserHomeDir()
	record := &engine.RecordValue{}
	record.Push("home-path", engine.NewString(home))
	record.Push("current-exe", engine.NewString(os.Args[0]))
	record.Push("pid", engine.NewInt(int64(os.Getpid())))
	record.Push("cwd", engine.NewString(ctx.stack.Cwd()))
	return record
}
