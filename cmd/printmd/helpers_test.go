package main

// Notes:
// - This file contains test helpers shared across command tests: a capture
//   environment with a fixed clock, and fakes for the renderer pool.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/printmd/printmd"
)

// captureEnv returns an Environment with a fixed clock and buffered streams
// so tests can assert on exact output.
func captureEnv(t *testing.T) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC) },
		Stdout: stdout,
		Stderr: stderr,
		Logger: newLogger(stderr, log.ErrorLevel),
	}
	return env, stdout, stderr
}

// fakeRenderer implements Renderer without a browser. failOn triggers an
// error for any input whose markdown contains the substring.
type fakeRenderer struct {
	pdf    []byte
	err    error
	failOn string

	mu     sync.Mutex
	inputs []printmd.Input
}

func (r *fakeRenderer) ToPDF(_ context.Context, input printmd.Input) ([]byte, error) {
	r.mu.Lock()
	r.inputs = append(r.inputs, input)
	r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	if r.failOn != "" && strings.Contains(input.Markdown, r.failOn) {
		return nil, errRenderFailed
	}
	if r.pdf != nil {
		return r.pdf, nil
	}
	return []byte("%PDF-fake"), nil
}

func (r *fakeRenderer) callCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inputs)
}

var errRenderFailed = errors.New("render failed")

// fakePool hands out a single shared fake renderer and counts traffic.
type fakePool struct {
	renderer Renderer
	size     int

	mu       sync.Mutex
	acquires int
	releases int
}

func (p *fakePool) Acquire() Renderer {
	p.mu.Lock()
	p.acquires++
	p.mu.Unlock()
	return p.renderer
}

func (p *fakePool) Release(Renderer) {
	p.mu.Lock()
	p.releases++
	p.mu.Unlock()
}

func (p *fakePool) Size() int { return p.size }
