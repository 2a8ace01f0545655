//go:build !windows

package spool

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// OpenInViewer opens path with the desktop's default application.
// Used as the manual-print fallback when no PDF engine or spooler is usable.
func OpenInViewer(ctx context.Context, path string) error {
	bin := "xdg-open"
	if runtime.GOOS == "darwin" {
		bin = "open"
	}

	if _, err := exec.LookPath(bin); err != nil {
		return fmt.Errorf("%w: %s not on PATH", ErrNoViewer, bin)
	}

	return runCommand(ctx, bin, path)
}
