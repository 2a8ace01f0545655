//go:build !windows

package spool

import (
	"context"
	"fmt"
	"os/exec"
)

// spoolerCandidates in preference order. lp is the modern CUPS client;
// lpr survives on BSD-flavored systems.
var spoolerCandidates = []string{"lp", "lpr"}

// cupsDispatcher submits jobs through lp or lpr.
type cupsDispatcher struct {
	bin    string // resolved command path
	flavor string // command base name; decides the printer flag
}

func newPlatformDispatcher() (Dispatcher, error) {
	for _, candidate := range spoolerCandidates {
		if bin, err := exec.LookPath(candidate); err == nil {
			return &cupsDispatcher{bin: bin, flavor: candidate}, nil
		}
	}
	return nil, fmt.Errorf("%w: neither lp nor lpr on PATH", ErrNoSpooler)
}

func (d *cupsDispatcher) Name() string {
	return d.flavor
}

// args builds the submit arguments. lp selects printers with -d, lpr with -P.
func (d *cupsDispatcher) args(job Job) []string {
	args := make([]string, 0, 3)
	if job.Printer != "" {
		if d.flavor == "lp" {
			args = append(args, "-d", job.Printer)
		} else {
			args = append(args, "-P", job.Printer)
		}
	}
	return append(args, job.Path)
}

// Dispatch submits the PDF to the spooler.
func (d *cupsDispatcher) Dispatch(ctx context.Context, job Job) error {
	return runCommand(ctx, d.bin, d.args(job)...)
}

// Available reports the spooler command found on PATH, for diagnostics.
func Available() (string, bool) {
	for _, candidate := range spoolerCandidates {
		if _, err := exec.LookPath(candidate); err == nil {
			return candidate, true
		}
	}
	return "", false
}

// Compile-time interface check.
var _ Dispatcher = (*cupsDispatcher)(nil)
