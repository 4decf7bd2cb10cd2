package engine

import (
	"io"
	"os"
	"sort"
)

// Stack holds variable bindings and environment variables for one session.
// Frames are layered: a child frame resolves names through its parent but
// writes only to itself, so nested evaluations cannot mutate the caller's
// bindings.
type Stack struct {
	parent *Stack
	vars   map[string]Value
	env    map[string]Value

	// Out is where evaluated blocks write their pipeline output. Child
	// frames created for completion callbacks reset it to io.Discard so a
	// completer cannot scribble over the interactive screen.
	Out io.Writer
}

// NewStack creates a root stack frame.
func NewStack() *Stack {
	return &Stack{
		vars: make(map[string]Value),
		env:  make(map[string]Value),
		Out:  os.Stdout,
	}
}

// Child creates a new frame layered on top of this one.
func (s *Stack) Child() *Stack {
	return &Stack{
		parent: s,
		vars:   make(map[string]Value),
		env:    make(map[string]Value),
		Out:    s.Out,
	}
}

// CapturesToStack creates a callee frame for a closure invocation: a fresh
// child with the closure's captured bindings copied in and output collection
// redirected away from the caller's destination.
func (s *Stack) CapturesToStack(captures map[string]Value) *Stack {
	callee := s.Child()
	for name, val := range captures {
		callee.vars[name] = val
	}
	callee.Out = io.Discard
	return callee
}

// AddVar binds a variable in the current frame.
func (s *Stack) AddVar(name string, val Value) {
	s.vars[name] = val
}

// GetVar resolves a variable through the frame chain.
func (s *Stack) GetVar(name string) (Value, bool) {
	if val, ok := s.vars[name]; ok {
		return val, true
	}
	if s.parent != nil {
		return s.parent.GetVar(name)
	}
	return nil, false
}

// VarNames returns all variable names visible from this frame, sorted.
func (s *Stack) VarNames() []string {
	seen := make(map[string]bool)
	for f := s; f != nil; f = f.parent {
		for name := range f.vars {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetEnv sets an environment variable in the current frame.
func (s *Stack) SetEnv(name, val string) {
	s.env[name] = NewString(val)
}

// SetEnvValue sets an environment variable to an arbitrary value.
func (s *Stack) SetEnvValue(name string, val Value) {
	s.env[name] = val
}

// GetEnv resolves an environment variable through the frame chain, falling
// back to the process environment.
func (s *Stack) GetEnv(name string) (string, bool) {
	for f := s; f != nil; f = f.parent {
		if val, ok := f.env[name]; ok {
			str, coerced := CoerceString(val)
			return str, coerced
		}
	}
	val, ok := os.LookupEnv(name)
	return val, ok
}

// EnvRecord returns the visible environment as an ordered record. Closer
// frames shadow outer ones.
func (s *Stack) EnvRecord() *RecordValue {
	merged := make(map[string]Value)
	var frames []*Stack
	for f := s; f != nil; f = f.parent {
		frames = append(frames, f)
	}
	// apply outermost first so inner frames win
	for i := len(frames) - 1; i >= 0; i-- {
		for name, val := range frames[i].env {
			merged[name] = val
		}
	}
	cols := make([]string, 0, len(merged))
	for name := range merged {
		cols = append(cols, name)
	}
	sort.Strings(cols)
	record := &RecordValue{}
	for _, col := range cols {
		record.Push(col, merged[col])
	}
	return record
}

// Cwd returns the working directory for filesystem completions: the PWD
// environment variable if set, the process working directory otherwise.
func (s *Stack) Cwd() string {
	if pwd, ok := s.GetEnv("PWD"); ok && pwd != "" {
		return pwd
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}
