package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/burstmake/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("burstmake", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
burstmake - rebuild targets whose dependencies changed.

Usage:
  burstmake [options] [TARGET]

Arguments:
  TARGET
    Target to build. Defaults to the first target in the build file.

Options:
`)
		flagSet.PrintDefaults()
	}

	fileFlag := flagSet.String("f", app.DefaultBuildFile, "Build file: a rule file, a .hcl file or directory, or a .yaml file.")
	dirFlag := flagSet.String("C", "", "Change to this directory before reading the build file and running commands.")
	dryRunFlag := flagSet.Bool("n", false, "Print the commands that would run without running them.")
	strictFlag := flagSet.Bool("strict-cycles", false, "Fail the build when a dependency cycle is found.")
	watchFlag := flagSet.Bool("watch", false, "Rebuild whenever the build file or a known file changes.")
	dotFlag := flagSet.Bool("dot", false, "Print the dependency graph in Graphviz DOT format and exit.")
	lintFlag := flagSet.Bool("lint", false, "Report dependency cycles and exit.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one target, got %d: %s", flagSet.NArg(), strings.Join(flagSet.Args(), " "))
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	config, err := app.NewConfig(app.Config{
		BuildFile:    *fileFlag,
		Target:       flagSet.Arg(0),
		Dir:          *dirFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		DryRun:       *dryRunFlag,
		StrictCycles: *strictFlag,
		Watch:        *watchFlag,
		PrintDOT:     *dotFlag,
		Lint:         *lintFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
