package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"life-ca/internal/config"
	"life-ca/internal/fsutil"
	"life-ca/internal/patterns"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Invocation is the parsed command line.
type Invocation struct {
	Run       config.Run
	LogLevel  string
	LogFormat string
	Stats     bool
	PlotPath  string
}

// Usage returns the one-line positional usage for prog.
func Usage(prog string) string {
	return fmt.Sprintf("Usage: %s <print_mode> <size> <iterations> <pattern_file>", prog)
}

// Parse processes the arguments that follow prog. It returns the invocation,
// whether the program should exit cleanly (help was requested), or an
// *ExitError.
func Parse(prog string, args []string, output io.Writer, fsys fsutil.FileSystem) (*Invocation, bool, error) {
	flagSet := flag.NewFlagSet(prog, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%s

Runs Conway's Game of Life on a fixed square grid with dead edges.

Arguments:
  print_mode    all, final or none
  size          grid width and height (positive integer)
  iterations    number of generations (non-negative integer)
  pattern_file  plain-text pattern ('!' comments, 'O' alive) or builtin:<name>
                built-ins: %s

Options:
`, Usage(prog), strings.Join(patterns.Names(), ", "))
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "HCL run file replacing the positional arguments.")
	logLevelFlag := flagSet.String("log-level", "warn", "Logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	statsFlag := flagSet.Bool("stats", false, "Log a population summary when the run finishes.")
	plotFlag := flagSet.String("plot", "", "Write a PNG chart of population per generation to this path.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(prog, err)
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, usageError(prog, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", *logLevelFlag))
	}
	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError(prog, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", *logFormatFlag))
	}

	var (
		run config.Run
		err error
	)
	if *configFlag != "" {
		if flagSet.NArg() > 0 {
			return nil, false, usageError(prog, fmt.Errorf("-config does not take positional arguments, got %d", flagSet.NArg()))
		}
		run, err = config.LoadFile(fsys, *configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 1, Message: "Error: " + err.Error()}
		}
	} else {
		run, err = config.FromArgs(flagSet.Args())
		if err != nil {
			return nil, false, usageError(prog, err)
		}
	}

	return &Invocation{
		Run:       run,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Stats:     *statsFlag,
		PlotPath:  *plotFlag,
	}, false, nil
}

func usageError(prog string, err error) *ExitError {
	return &ExitError{Code: 1, Message: "Error: " + err.Error() + "\n" + Usage(prog)}
}
