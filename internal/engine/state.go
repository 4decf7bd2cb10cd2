// Package engine holds the shared state consumed by the completion engine:
// the command, attribute and variable registries, runtime values, the
// frame-layered variable stack, and synchronous block evaluation.
//
// An EngineState is built once and treated as an immutable snapshot
// afterwards; concurrent completion requests may read it freely as long as
// each owns its own Stack.
package engine

import (
	"fmt"

	"github.com/Tiamat-Tech/nushell/internal/config"
)

// DeclID identifies a declared command in the engine state.
type DeclID int

// BlockID identifies a registered block in the engine state.
type BlockID int

// SyntaxShape describes the expected shape of a declared argument. The
// parser maps it to the syntactic shape of the concrete token, which in turn
// drives completion strategy selection.
type SyntaxShape int

const (
	// ShapeAny accepts any expression
	ShapeAny SyntaxShape = iota
	// ShapeString expects a string argument
	ShapeString
	// ShapeInt expects an integer argument
	ShapeInt
	// ShapeFilepath expects a path to a file
	ShapeFilepath
	// ShapeDirectory expects a path to a directory
	ShapeDirectory
	// ShapeGlobPattern expects a glob pattern
	ShapeGlobPattern
)

// Flag is a declared command flag.
type Flag struct {
	Long  string // without leading dashes
	Short byte   // 0 if none
	Desc  string
}

// PositionalArg is a declared positional parameter.
type PositionalArg struct {
	Name  string
	Desc  string
	Shape SyntaxShape
	// Completer references a registered block that produces custom
	// completions for this argument. Zero means none.
	Completer BlockID
}

// Signature describes a command's parameters.
type Signature struct {
	Flags      []Flag
	Positional []PositionalArg
	Rest       *PositionalArg
}

// Decl is a declared command.
type Decl struct {
	Name string
	Desc string
	Sig  Signature
	// Attributable marks declarations that may carry attributes, such as
	// def and extern.
	Attributable bool
}

// AttrDef is a declarable attribute usable in attribute blocks.
type AttrDef struct {
	Name string
	Desc string
}

// Closure is an opaque reference to a block plus the bindings it captured.
type Closure struct {
	Block    BlockID
	Captures map[string]Value
}

// RunFunc is the native body of a block. It receives the engine state, the
// callee stack frame with parameters already bound, and the pipeline input.
type RunFunc func(state *EngineState, stack *Stack, input Value) (Value, error)

// Block is an evaluatable unit registered in the engine state.
type Block struct {
	ID  BlockID
	Sig Signature
	Run RunFunc
}

// EngineState is the shared registry snapshot for one engine instance.
type EngineState struct {
	decls     []*Decl
	declIndex map[string]DeclID
	blocks    []*Block

	// Attributes lists the declarable attributes offered by attribute
	// completion.
	Attributes []AttrDef

	// BuiltinVars are always-available variable names, with sigils.
	BuiltinVars []string

	// LibDirs is the search path for importable scripts.
	LibDirs []string

	// Config is the configuration snapshot read once per completion
	// request.
	Config *config.Config

	// ExternalCompleter, when set, is consulted after built-in strategies
	// come up empty.
	ExternalCompleter *Closure
}

// NewEngineState creates an empty engine state with default configuration.
func NewEngineState() *EngineState {
	return &EngineState{
		declIndex:   make(map[string]DeclID),
		blocks:      []*Block{nil}, // BlockID 0 is reserved as "none"
		BuiltinVars: []string{"$nu", "$env", "$in"},
		Config:      config.DefaultConfig(),
	}
}

// AddDecl registers a command declaration and returns its id.
func (e *EngineState) AddDecl(decl *Decl) DeclID {
	id := DeclID(len(e.decls))
	e.decls = append(e.decls, decl)
	e.declIndex[decl.Name] = id
	return id
}

// GetDecl returns the declaration for the given id.
func (e *EngineState) GetDecl(id DeclID) *Decl {
	if id < 0 || int(id) >= len(e.decls) {
		return nil
	}
	return e.decls[id]
}

// FindDecl looks up a command by its full name.
func (e *EngineState) FindDecl(name string) (DeclID, bool) {
	id, ok := e.declIndex[name]
	return id, ok
}

// Decls returns all declarations in registration order.
func (e *EngineState) Decls() []*Decl {
	return e.decls
}

// AddBlock registers a block and returns its id.
func (e *EngineState) AddBlock(block *Block) BlockID {
	id := BlockID(len(e.blocks))
	block.ID = id
	e.blocks = append(e.blocks, block)
	return id
}

// GetBlock returns the block for the given id, or nil for the reserved zero
// id.
func (e *EngineState) GetBlock(id BlockID) *Block {
	if id <= 0 || int(id) >= len(e.blocks) {
		return nil
	}
	return e.blocks[id]
}

// EvalBlock evaluates a block synchronously against the given stack frame.
// Parameter binding is the caller's responsibility; see Signature.
func EvalBlock(state *EngineState, stack *Stack, block *Block, input Value) (Value, error) {
	if block == nil || block.Run == nil {
		return nil, fmt.Errorf("block has no body")
	}
	out, err := block.Run(state, stack, input)
	if err != nil {
		return nil, fmt.Errorf("block evaluation failed: %w", err)
	}
	if out == nil {
		out = Nothing()
	}
	return out, nil
}
