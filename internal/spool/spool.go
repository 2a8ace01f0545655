// Package spool dispatches rendered PDFs to the system print spooler.
//
// On Unix-likes jobs go through CUPS (lp, falling back to lpr). On Windows
// the shell's print verb is used via rundll32, which hands the file to the
// registered PDF handler. When no spooler is usable, callers can fall back
// to OpenInViewer for manual printing.
package spool

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/printmd/printmd/internal/process"
)

// Sentinel errors for spool operations.
var (
	ErrNoSpooler = errors.New("no print spooler command found")
	ErrDispatch  = errors.New("print dispatch failed")
	ErrNoViewer  = errors.New("no viewer command found")
)

// DefaultSettle is how long to give the spooler to pick a file up before
// the temp copy is removed.
const DefaultSettle = 3 * time.Second

// Job describes one document to print.
type Job struct {
	Path    string // path to the PDF on disk
	Printer string // printer name; empty selects the system default
}

// Dispatcher submits print jobs to the operating system.
type Dispatcher interface {
	// Name identifies the underlying spooler command, for diagnostics.
	Name() string

	// Dispatch submits the job and returns once the spooler accepted it.
	// Acceptance does not mean the job printed; spoolers queue asynchronously.
	Dispatch(ctx context.Context, job Job) error
}

// New returns the Dispatcher for the current platform.
// Returns ErrNoSpooler when no spooler command is available.
func New() (Dispatcher, error) {
	return newPlatformDispatcher()
}

// Settle blocks for d, returning early if ctx is canceled. Spoolers read
// the submitted file asynchronously; removing it immediately after
// submission can yield blank jobs.
func Settle(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// runCommand runs a spooler command in its own process group so a
// cancellation kills the whole tree, not just the direct child.
func runCommand(ctx context.Context, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.SysProcAttr = process.GroupAttr()
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			process.KillProcessGroup(cmd.Process.Pid)
		}
		return nil
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		detail := strings.TrimSpace(string(output))
		if detail != "" {
			return fmt.Errorf("%w: %s: %s", ErrDispatch, bin, detail)
		}
		return fmt.Errorf("%w: %s: %v", ErrDispatch, bin, err)
	}
	return nil
}
