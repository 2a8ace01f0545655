package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Environment holds the injectable dependencies of the CLI. Commands
// receive it instead of touching process globals directly so tests can
// substitute clocks and capture output.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// DefaultEnv returns the production environment backed by the real clock
// and process streams. Diagnostics go to stderr so stdout stays clean for
// results.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: newLogger(os.Stderr, log.WarnLevel),
	}
}

// configureLogging adjusts the log level from the common flags. Verbose
// wins over quiet when both are given.
func configureLogging(env *Environment, f commonFlags) {
	switch {
	case f.verbose:
		env.Logger.SetLevel(log.DebugLevel)
	case f.quiet:
		env.Logger.SetLevel(log.ErrorLevel)
	}
}
