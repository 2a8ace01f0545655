package main

// Notes:
// - runPrint: only the paths before the browser engine spins up are covered
//   (missing input, wrong extension). The render-and-dispatch path needs a
//   Chrome binary and a print spooler, which is integration territory.
// - openFallbackPreview: PATH is emptied so no viewer can launch; the test
//   pins the "saved, open manually" degradation. svc.Render needs no browser.
// - dispatchPrint is not covered: it shells out to lp/lpr.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/spool"
)

// ---------------------------------------------------------------------------
// TestSettleDelay - Spooler wait resolution
// ---------------------------------------------------------------------------

func TestSettleDelay(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		waitSeconds int
		want        time.Duration
	}{
		{"zero uses default", 0, spool.DefaultSettle},
		{"negative uses default", -3, spool.DefaultSettle},
		{"one second", 1, time.Second},
		{"five seconds", 5, 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := settleDelay(tt.waitSeconds); got != tt.want {
				t.Errorf("settleDelay(%d) = %v, want %v", tt.waitSeconds, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestStagePDF - PDF staging for the spooler
// ---------------------------------------------------------------------------

func TestStagePDF(t *testing.T) {
	t.Parallel()

	t.Run("keep path writes the PDF there", func(t *testing.T) {
		t.Parallel()
		keepPath := filepath.Join(t.TempDir(), "kept.pdf")

		path, cleanup, err := stagePDF([]byte("%PDF-data"), keepPath)
		if err != nil {
			t.Fatalf("stagePDF() error = %v", err)
		}
		if path != keepPath {
			t.Errorf("path = %q, want %q", path, keepPath)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading staged PDF: %v", err)
		}
		if string(content) != "%PDF-data" {
			t.Errorf("content = %q, want %%PDF-data", content)
		}

		// Kept PDFs must survive cleanup.
		cleanup()
		if _, err := os.Stat(path); err != nil {
			t.Errorf("kept PDF removed by cleanup: %v", err)
		}
	})

	t.Run("empty keep path stages a temp file", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := stagePDF([]byte("%PDF-data"), "")
		if err != nil {
			t.Fatalf("stagePDF() error = %v", err)
		}
		if !strings.HasSuffix(path, ".pdf") {
			t.Errorf("path = %q, want .pdf suffix", path)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("reading staged PDF: %v", err)
		}
		if string(content) != "%PDF-data" {
			t.Errorf("content = %q, want %%PDF-data", content)
		}

		cleanup()
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("temp PDF should be removed by cleanup, stat err = %v", err)
		}
	})

	t.Run("unwritable keep path errors", func(t *testing.T) {
		t.Parallel()
		keepPath := filepath.Join(t.TempDir(), "no-such-dir", "kept.pdf")

		_, _, err := stagePDF([]byte("%PDF-data"), keepPath)
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("stagePDF() error = %v, want ErrWriteOutput", err)
		}
	})
}

// ---------------------------------------------------------------------------
// TestKeepPDFForRetry - Saving the render when dispatch fails
// ---------------------------------------------------------------------------

func TestKeepPDFForRetry(t *testing.T) {
	t.Parallel()

	cause := errors.New("spooler rejected the job")

	t.Run("saves next to input when no keep path", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		inputPath := filepath.Join(dir, "doc.md")
		env, _, stderr := captureEnv(t)

		err := keepPDFForRetry([]byte("%PDF-data"), "", inputPath, env, cause)
		if !errors.Is(err, cause) {
			t.Errorf("keepPDFForRetry() error = %v, want the dispatch cause", err)
		}

		savedPath := filepath.Join(dir, "doc.pdf")
		content, readErr := os.ReadFile(savedPath)
		if readErr != nil {
			t.Fatalf("reading saved PDF: %v", readErr)
		}
		if string(content) != "%PDF-data" {
			t.Errorf("content = %q, want %%PDF-data", content)
		}
		if !strings.Contains(stderr.String(), "PDF saved to "+savedPath) {
			t.Errorf("stderr = %q, want saved-path notice", stderr.String())
		}
	})

	t.Run("keep path is not rewritten", func(t *testing.T) {
		t.Parallel()
		keepPath := filepath.Join(t.TempDir(), "kept.pdf")
		env, _, stderr := captureEnv(t)

		// stagePDF already wrote the keep path in the real flow; the retry
		// helper must only point at it, never write again.
		err := keepPDFForRetry([]byte("%PDF-data"), keepPath, "doc.md", env, cause)
		if !errors.Is(err, cause) {
			t.Errorf("keepPDFForRetry() error = %v, want the dispatch cause", err)
		}
		if _, statErr := os.Stat(keepPath); !errors.Is(statErr, os.ErrNotExist) {
			t.Error("keep path was written by the retry helper")
		}
		if !strings.Contains(stderr.String(), keepPath) {
			t.Errorf("stderr = %q, want mention of %q", stderr.String(), keepPath)
		}
	})

	t.Run("write failure reports both errors", func(t *testing.T) {
		t.Parallel()
		inputPath := filepath.Join(t.TempDir(), "no-such-dir", "doc.md")
		env, _, stderr := captureEnv(t)

		err := keepPDFForRetry([]byte("%PDF-data"), "", inputPath, env, cause)
		if !errors.Is(err, cause) {
			t.Errorf("error should wrap the dispatch cause, got %v", err)
		}
		if !errors.Is(err, ErrWriteOutput) {
			t.Errorf("error should wrap ErrWriteOutput, got %v", err)
		}
		if strings.Contains(stderr.String(), "PDF saved") {
			t.Errorf("stderr = %q, should not claim the PDF was saved", stderr.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestOpenFallbackPreview - Manual-print degradation without a browser
// ---------------------------------------------------------------------------

func TestOpenFallbackPreview(t *testing.T) {
	// Empty PATH keeps xdg-open/open from launching anything.
	t.Setenv("PATH", "")

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "doc.md")
	env, stdout, _ := captureEnv(t)

	svc := printmd.New()
	defer func() { _ = svc.Close() }()

	input := buildInput("# Hello Fallback", inputPath, &renderParams{})
	if err := openFallbackPreview(context.Background(), svc, input, inputPath, env); err != nil {
		t.Fatalf("openFallbackPreview() error = %v", err)
	}

	htmlPath := filepath.Join(dir, "doc.html")
	content, err := os.ReadFile(htmlPath)
	if err != nil {
		t.Fatalf("reading fallback HTML: %v", err)
	}
	if !strings.Contains(string(content), "Hello Fallback") {
		t.Error("fallback HTML does not contain the rendered heading")
	}
	if !strings.Contains(stdout.String(), "Saved "+htmlPath) {
		t.Errorf("stdout = %q, want saved-file notice", stdout.String())
	}
}

// ---------------------------------------------------------------------------
// TestRunPrint - Early exits before any engine spins up
// ---------------------------------------------------------------------------

func TestRunPrint(t *testing.T) {
	t.Parallel()

	t.Run("no input path", func(t *testing.T) {
		t.Parallel()
		env, _, _ := captureEnv(t)

		err := runPrint(context.Background(), nil, env)
		if !errors.Is(err, ErrNoInput) {
			t.Errorf("runPrint() error = %v, want ErrNoInput", err)
		}
		if err == nil || !strings.Contains(err.Error(), "printmd print") {
			t.Errorf("error = %v, want usage hint", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		env, _, _ := captureEnv(t)

		err := runPrint(context.Background(), []string{"definitely-not-here.md"}, env)
		if !errors.Is(err, ErrReadMarkdown) {
			t.Errorf("runPrint() error = %v, want ErrReadMarkdown", err)
		}
	})

	t.Run("wrong extension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "doc.txt")
		if err := os.WriteFile(path, []byte("not markdown"), 0o600); err != nil {
			t.Fatal(err)
		}
		env, _, _ := captureEnv(t)

		err := runPrint(context.Background(), []string{path}, env)
		if !errors.Is(err, ErrInvalidExtension) {
			t.Errorf("runPrint() error = %v, want ErrInvalidExtension", err)
		}
	})
}
