//go:build windows

package spool

import "context"

// OpenInViewer opens path with the desktop's default application.
// Used as the manual-print fallback when no PDF engine or spooler is usable.
func OpenInViewer(ctx context.Context, path string) error {
	// start detaches the viewer; the empty string fills the window title
	// slot, which start would otherwise consume the path for.
	return runCommand(ctx, "cmd", "/c", "start", "", path)
}
