package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	flag "github.com/spf13/pflag"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/config"
	"github.com/printmd/printmd/internal/hints"
	"github.com/printmd/printmd/internal/spool"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadCSS            = errors.New("failed to read CSS file")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrInvalidArguments   = errors.New("invalid arguments")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// run dispatches a CLI invocation and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "print":
		return reportError(env, runPrint(ctx, rest, env))
	case "preview":
		return reportError(env, runPreview(ctx, rest, env))
	case "pdf":
		return reportError(env, runPDF(ctx, rest, env))
	case "doctor":
		return runDoctor(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "printmd %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)
		return ExitSuccess
	case "help", "-h", "--help":
		runHelp(rest, env)
		return ExitSuccess
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}
}

// reportError prints err with any actionable hint and maps it to an exit
// code. A nil error or a --help request exits cleanly.
func reportError(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, flag.ErrHelp) {
		// pflag already printed usage via fs.Usage.
		return ExitSuccess
	}
	fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
	return exitCodeFor(err)
}

// hintFor returns an actionable recovery hint for known failures, or the
// empty string when there is nothing useful to suggest.
func hintFor(err error) string {
	switch {
	case errors.Is(err, printmd.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, spool.ErrNoSpooler):
		return hints.ForNoSpooler()
	case errors.Is(err, printmd.ErrStyleNotFound):
		return hints.ForStyleNotFound(printmd.Styles())
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, ErrWriteOutput):
		return hints.ForOutputDirectory()
	}
	return ""
}
