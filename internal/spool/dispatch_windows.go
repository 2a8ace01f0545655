//go:build windows

package spool

import (
	"context"
	"fmt"
	"os/exec"
)

// shellDispatcher prints through the shell's print verb, the same path
// right-click -> Print takes. rundll32 forwards the file to whatever
// application is registered for PDFs.
type shellDispatcher struct{}

func newPlatformDispatcher() (Dispatcher, error) {
	if _, err := exec.LookPath("rundll32"); err != nil {
		return nil, fmt.Errorf("%w: rundll32 not available", ErrNoSpooler)
	}
	return &shellDispatcher{}, nil
}

func (d *shellDispatcher) Name() string {
	return "rundll32"
}

// Dispatch submits the PDF to the default printer. The shell print verb
// has no printer selection; Job.Printer is ignored on Windows.
func (d *shellDispatcher) Dispatch(ctx context.Context, job Job) error {
	return runCommand(ctx, "rundll32", "shell32.dll,ShellExec_RunDLL", job.Path, "print")
}

// Available reports the spooler command found on PATH, for diagnostics.
func Available() (string, bool) {
	if _, err := exec.LookPath("rundll32"); err == nil {
		return "rundll32", true
	}
	return "", false
}

// Compile-time interface check.
var _ Dispatcher = (*shellDispatcher)(nil)
