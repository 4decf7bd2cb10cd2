package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/Tiamat-Tech/nushell/internal/completion"
	"github.com/Tiamat-Tech/nushell/internal/config"
	"github.com/Tiamat-Tech/nushell/internal/core"
	"github.com/Tiamat-Tech/nushell/internal/engine"
	"github.com/Tiamat-Tech/nushell/internal/history"
	"github.com/Tiamat-Tech/nushell/internal/repl"
	"github.com/Tiamat-Tech/nushell/internal/styles"
)

var BUILD_VERSION = "dev"

var completeLine = flag.String("complete", "", "print completions for a line and exit")
var completePos = flag.Int("pos", -1, "cursor position for -complete; defaults to end of line")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `nush - a structured shell with context-aware completion

USAGE:
  nush [options]

MODES:
  nush                        Start an interactive shell
  nush -complete "ls --" -pos 5
                              Print completions for a line at a cursor
                              position, one per line, and exit

OPTIONS:
`

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	logger, err := initializeLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	state, stack := initializeEngine(logger)

	if *completeLine != "" || *completePos >= 0 {
		printCompletions(state, stack, logger)
		return
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, styles.ERROR("nush requires an interactive terminal"))
		os.Exit(1)
	}

	historyManager, err := history.NewHistoryManager(core.HistoryFile())
	if err != nil {
		logger.Warn("history disabled", zap.Error(err))
		historyManager = nil
	}

	logger.Info("-------- new nush session --------", zap.Any("args", os.Args))

	if err := repl.New(state, stack, historyManager, logger).Run(); err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintln(os.Stderr, styles.ERROR(err.Error()))
		os.Exit(1)
	}
}

func initializeEngine(logger *zap.Logger) (*engine.EngineState, *engine.Stack) {
	state := engine.DefaultEngineState()

	cfg, err := config.LoadFromFile(core.ConfigFile())
	if err != nil {
		logger.Warn("falling back to default configuration", zap.Error(err))
		cfg = config.DefaultConfig()
	}
	state.Config = cfg

	stack := engine.NewStack()
	if cwd, err := os.Getwd(); err == nil {
		stack.SetEnv("PWD", cwd)
	}
	return state, stack
}

func printCompletions(state *engine.EngineState, stack *engine.Stack, logger *zap.Logger) {
	line := *completeLine
	pos := *completePos
	if pos < 0 || pos > len(line) {
		pos = len(line)
	}
	completer := completion.NewEngine(state, stack, logger)
	for _, sug := range completer.FetchCompletionsAt(line, pos) {
		fmt.Println(sug.Value)
	}
}

func initializeLogger() (*zap.Logger, error) {
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}
	return loggerConfig.Build()
}
