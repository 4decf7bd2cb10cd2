package engine

// DefaultEngineState returns an engine state preloaded with the core command
// set, the standard attributes, and default configuration. Hosts embedding
// the engine typically start from this and register their own declarations
// on top before first use.
func DefaultEngineState() *EngineState {
	state := NewEngineState()

	for _, decl := range coreCommands() {
		state.AddDecl(decl)
	}

	state.Attributes = []AttrDef{
		{Name: "category", Desc: "Adds a category to custom commands"},
		{Name: "deprecated", Desc: "Marks a command as deprecated"},
		{Name: "example", Desc: "Attaches an example to a custom command"},
		{Name: "search-terms", Desc: "Adds search terms to a custom command"},
	}

	return state
}

func coreCommands() []*Decl {
	return []*Decl{
		{
			Name: "alias",
			Desc: "Alias a command (with optional flags) to a new name.",
		},
		{
			Name: "cal",
			Desc: "Display a calendar.",
			Sig: Signature{
				Flags: []Flag{
					{Long: "year", Short: 'y', Desc: "Display the year column"},
					{Long: "quarter", Short: 'q', Desc: "Display the quarter column"},
					{Long: "month", Short: 'm', Desc: "Display the month column"},
					{Long: "month-names", Short: 't', Desc: "Display the month names instead of integers"},
				},
			},
		},
		{
			Name: "cd",
			Desc: "Change directory.",
			Sig: Signature{
				Positional: []PositionalArg{
					{Name: "path", Desc: "The path to change to", Shape: ShapeDirectory},
				},
			},
		},
		{
			Name: "clear",
			Desc: "Clear the terminal.",
		},
		{
			Name: "config",
			Desc: "Edit nush configuration.",
		},
		{
			Name: "const",
			Desc: "Create a parse-time constant.",
		},
		{
			Name: "cp",
			Desc: "Copy files.",
			Sig: Signature{
				Flags: []Flag{
					{Long: "recursive", Short: 'r', Desc: "Copy directories recursively"},
					{Long: "verbose", Short: 'v', Desc: "Show successful copies"},
					{Long: "force", Short: 'f', Desc: "Overwrite without prompting"},
				},
				Positional: []PositionalArg{
					{Name: "source", Desc: "The file or files to copy", Shape: ShapeGlobPattern},
					{Name: "destination", Desc: "The place to copy to", Shape: ShapeFilepath},
				},
			},
		},
		{
			Name:         "def",
			Desc:         "Define a custom command.",
			Attributable: true,
		},
		{
			Name: "each",
			Desc: "Run a closure on each row of the input.",
		},
		{
			Name: "echo",
			Desc: "Returns its arguments, ignoring the piped-in value.",
		},
		{
			Name: "exit",
			Desc: "Exit the shell.",
		},
		{
			Name:         "extern",
			Desc:         "Define a signature for an external command.",
			Attributable: true,
		},
		{
			Name: "first",
			Desc: "Return only the first several rows of the input.",
		},
		{
			Name: "get",
			Desc: "Extract data using a cell path.",
		},
		{
			Name: "help",
			Desc: "Display help information about different parts of nush.",
		},
		{
			Name: "history",
			Desc: "Get the command history.",
		},
		{
			Name: "last",
			Desc: "Return only the last several rows of the input.",
		},
		{
			Name: "length",
			Desc: "Count the number of items in an input list or rows in a table.",
		},
		{
			Name: "let",
			Desc: "Create a variable and give it a value.",
		},
		{
			Name: "lines",
			Desc: "Converts input to lines of strings.",
		},
		{
			Name: "load-env",
			Desc: "Loads an environment update from a record.",
		},
		{
			Name: "loop",
			Desc: "Run a block in a loop.",
		},
		{
			Name: "ls",
			Desc: "List the filenames, sizes, and modification times of items in a directory.",
			Sig: Signature{
				Flags: []Flag{
					{Long: "all", Short: 'a', Desc: "Show hidden files"},
					{Long: "long", Short: 'l', Desc: "Get all available columns for each entry"},
					{Long: "short-names", Short: 's', Desc: "Only print the file names, not the path"},
					{Long: "full-paths", Short: 'f', Desc: "Display paths as absolute paths"},
					{Long: "directory", Short: 'D', Desc: "List the specified directory itself instead of its contents"},
				},
				Positional: []PositionalArg{
					{Name: "pattern", Desc: "The glob pattern to use", Shape: ShapeGlobPattern},
				},
			},
		},
		{
			Name: "move",
			Desc: "Move columns relative to other columns.",
		},
		{
			Name: "mut",
			Desc: "Create a mutable variable and give it a value.",
		},
		{
			Name: "mv",
			Desc: "Move files or directories.",
			Sig: Signature{
				Flags: []Flag{
					{Long: "verbose", Short: 'v', Desc: "Make mv to be verbose"},
					{Long: "force", Short: 'f', Desc: "Overwrite the destination"},
				},
				Positional: []PositionalArg{
					{Name: "source", Desc: "The file or files to move", Shape: ShapeGlobPattern},
					{Name: "destination", Desc: "The location to move files to", Shape: ShapeFilepath},
				},
			},
		},
		{
			Name: "open",
			Desc: "Load a file into a cell, converting to table if possible.",
			Sig: Signature{
				Positional: []PositionalArg{
					{Name: "filename", Desc: "The filename to use", Shape: ShapeFilepath},
				},
			},
		},
		{
			Name: "overlay hide",
			Desc: "Hide an active overlay.",
		},
		{
			Name: "overlay new",
			Desc: "Create an empty overlay.",
		},
		{
			Name: "overlay use",
			Desc: "Use definitions from a module as an overlay.",
			Sig: Signature{
				Positional: []PositionalArg{
					{Name: "name", Desc: "Module name to use overlay for", Shape: ShapeString},
				},
			},
		},
		{
			Name: "print",
			Desc: "Print the given values to stdout.",
			Sig: Signature{
				Flags: []Flag{
					{Long: "no-newline", Short: 'n', Desc: "Print without inserting a newline"},
					{Long: "stderr", Short: 'e', Desc: "Print to stderr instead of stdout"},
				},
			},
		},
		{
			Name: "save",
			Desc: "Save a file.",
			Sig: Signature{
				Flags: []Flag{
					{Long: "force", Short: 'f', Desc: "Overwrite the destination"},
					{Long: "append", Short: 'a', Desc: "Append input to the end of the file"},
				},
				Positional: []PositionalArg{
					{Name: "filename", Desc: "The filename to use", Shape: ShapeFilepath},
				},
			},
		},
		{
			Name: "select",
			Desc: "Select only these columns or rows from the input.",
		},
		{
			Name: "sort-by",
			Desc: "Sort by the given columns, in increasing order.",
		},
		{
			Name: "source-env",
			Desc: "Source the environment from a source file into the current environment.",
			Sig: Signature{
				Positional: []PositionalArg{
					{Name: "filename", Desc: "The filepath to the script file", Shape: ShapeString},
				},
			},
		},
		{
			Name: "table",
			Desc: "Render the table.",
		},
		{
			Name: "use",
			Desc: "Use definitions from a module.",
			Sig: Signature{
				Positional: []PositionalArg{
					{Name: "module", Desc: "Module or module file to use", Shape: ShapeString},
				},
			},
		},
		{
			Name: "where",
			Desc: "Filter values based on a row condition.",
		},
	}
}
