package fileutil_test

// Notes:
// - TestWriteTempBytes_CreateTempError: this test modifies the global TMPDIR
//   environment variable and cannot run in parallel with other tests.
// - The Write and Close error branches in WriteTempBytes are not tested
//   because triggering disk write failures is platform-specific.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/printmd/printmd/internal/fileutil"
)

// ---------------------------------------------------------------------------
// TestValidateExtension - Extension validation
// ---------------------------------------------------------------------------

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{
			name:      "valid extension md",
			extension: "md",
			wantErr:   nil,
		},
		{
			name:      "valid extension pdf",
			extension: "pdf",
			wantErr:   nil,
		},
		{
			name:      "empty extension",
			extension: "",
			wantErr:   fileutil.ErrExtensionEmpty,
		},
		{
			name:      "forward slash path traversal",
			extension: "../etc/passwd",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "backslash path traversal",
			extension: "..\\windows\\system32",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
		{
			name:      "null byte injection",
			extension: "html\x00exe",
			wantErr:   fileutil.ErrExtensionPathTraversal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fileutil.ValidateExtension(tt.extension)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempFile - Temporary file creation from strings
// ---------------------------------------------------------------------------

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		extension string
	}{
		{
			name:      "markdown file",
			content:   "# Test Markdown",
			extension: "md",
		},
		{
			name:      "html file",
			content:   "<html><body>Test Content</body></html>",
			extension: "html",
		},
		{
			name:      "empty content",
			content:   "",
			extension: "md",
		},
		{
			name:      "unicode content",
			content:   "# Hello World\n\nThis is a test with special characters: cafe, naive, resume",
			extension: "md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path, cleanup, err := fileutil.WriteTempFile(tt.content, tt.extension)
			if err != nil {
				t.Fatalf("WriteTempFile() error = %v", err)
			}
			defer cleanup()

			// Verify file exists
			if _, err := os.Stat(path); os.IsNotExist(err) {
				t.Errorf("temp file does not exist at %s", path)
			}

			// Verify path pattern
			if !strings.Contains(path, "printmd-") {
				t.Errorf("path %q does not contain prefix 'printmd-'", path)
			}
			if !strings.HasSuffix(path, "."+tt.extension) {
				t.Errorf("path %q does not have extension .%s", path, tt.extension)
			}

			// Verify content
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read temp file: %v", err)
			}
			if string(data) != tt.content {
				t.Errorf("file content = %q, want %q", string(data), tt.content)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestWriteTempBytes - Temporary file creation from raw bytes
// ---------------------------------------------------------------------------

func TestWriteTempBytes(t *testing.T) {
	t.Parallel()

	t.Run("binary content round-trips", func(t *testing.T) {
		t.Parallel()

		// PDF-ish binary payload with a null byte.
		content := []byte("%PDF-1.7\x00\xde\xad\xbe\xef")

		path, cleanup, err := fileutil.WriteTempBytes(content, "pdf")
		if err != nil {
			t.Fatalf("WriteTempBytes() error = %v", err)
		}
		defer cleanup()

		if !strings.HasSuffix(path, ".pdf") {
			t.Errorf("path %q does not have extension .pdf", path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read temp file: %v", err)
		}
		if !bytes.Equal(data, content) {
			t.Errorf("file content = %q, want %q", data, content)
		}
	})

	t.Run("cleanup removes the file", func(t *testing.T) {
		t.Parallel()

		path, cleanup, err := fileutil.WriteTempBytes([]byte("payload"), "pdf")
		if err != nil {
			t.Fatalf("WriteTempBytes() error = %v", err)
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Fatalf("temp file does not exist at %s", path)
		}

		cleanup()

		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("temp file still exists after cleanup at %s", path)
		}
	})

	t.Run("invalid extension errors", func(t *testing.T) {
		t.Parallel()

		_, cleanup, err := fileutil.WriteTempBytes([]byte("payload"), "../foo")
		if cleanup != nil {
			defer cleanup()
		}
		if !errors.Is(err, fileutil.ErrExtensionPathTraversal) {
			t.Errorf("WriteTempBytes() error = %v, want ErrExtensionPathTraversal", err)
		}
	})

	t.Run("large content", func(t *testing.T) {
		t.Parallel()

		largeContent := bytes.Repeat([]byte{'x'}, 1024*1024) // 1MB

		path, cleanup, err := fileutil.WriteTempBytes(largeContent, "pdf")
		if err != nil {
			t.Fatalf("WriteTempBytes() error = %v", err)
		}
		defer cleanup()

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile error = %v", err)
		}
		if len(data) != len(largeContent) {
			t.Errorf("file size = %d, want %d", len(data), len(largeContent))
		}
	})
}

// ---------------------------------------------------------------------------
// TestWriteTempBytes_CreateTempError - CreateTemp failure handling
// ---------------------------------------------------------------------------

// NOTE: This test modifies TMPDIR and cannot run in parallel.
func TestWriteTempBytes_CreateTempError(t *testing.T) {
	// Non-existent TMPDIR makes CreateTemp fail.
	t.Setenv("TMPDIR", "/nonexistent/path/that/does/not/exist")

	_, cleanup, err := fileutil.WriteTempBytes([]byte("content"), "md")
	if cleanup != nil {
		defer cleanup()
	}

	if err == nil {
		t.Fatal("WriteTempBytes() expected error when TMPDIR is invalid, got nil")
	}

	if !strings.Contains(err.Error(), "creating temp file") {
		t.Errorf("WriteTempBytes() error = %q, want error containing 'creating temp file'", err.Error())
	}
}

// ---------------------------------------------------------------------------
// TestFileExists - File existence check
// ---------------------------------------------------------------------------

func TestFileExists(t *testing.T) {
	t.Parallel()

	tempDir := t.TempDir()

	// Create a test file
	testFile := filepath.Join(tempDir, "test.txt")
	if err := os.WriteFile(testFile, []byte("content"), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	// Create a test directory
	testDir := filepath.Join(tempDir, "testdir")
	if err := os.Mkdir(testDir, 0755); err != nil {
		t.Fatalf("failed to create test dir: %v", err)
	}

	tests := []struct {
		name string
		path string
		want bool
	}{
		{
			name: "existing file returns true",
			path: testFile,
			want: true,
		},
		{
			name: "directory returns false",
			path: testDir,
			want: false,
		},
		{
			name: "nonexistent path returns false",
			path: filepath.Join(tempDir, "nonexistent"),
			want: false,
		},
		{
			name: "empty path returns false",
			path: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.FileExists(tt.path)
			if got != tt.want {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsFilePath - File path detection
// ---------------------------------------------------------------------------

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "simple name returns false",
			input: "github",
			want:  false,
		},
		{
			name:  "relative path with dot-slash returns true",
			input: "./custom.css",
			want:  true,
		},
		{
			name:  "parent path returns true",
			input: "../shared/style.css",
			want:  true,
		},
		{
			name:  "absolute Unix path returns true",
			input: "/absolute/path.css",
			want:  true,
		},
		{
			name:  "Windows path with backslash returns true",
			input: "C:\\windows\\path.css",
			want:  true,
		},
		{
			name:  "hyphenated name returns false",
			input: "my-style",
			want:  false,
		},
		{
			name:  "path with subdirectory returns true",
			input: "sub/dir",
			want:  true,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
		{
			name:  "name with dots but no slash returns false",
			input: "name.with.dots",
			want:  false,
		},
		{
			name:  "underscore name returns false",
			input: "my_style",
			want:  false,
		},
		{
			name:  "single forward slash returns true",
			input: "/",
			want:  true,
		},
		{
			name:  "single backslash returns true",
			input: "\\",
			want:  true,
		},
		{
			name:  "Windows drive letter path returns true",
			input: "D:/Documents/style.css",
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsFilePath(tt.input)
			if got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestIsURL - URL detection
// ---------------------------------------------------------------------------

func TestIsURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "http URL returns true",
			input: "http://example.com",
			want:  true,
		},
		{
			name:  "https URL returns true",
			input: "https://example.com",
			want:  true,
		},
		{
			name:  "file path returns false",
			input: "/path/to/file",
			want:  false,
		},
		{
			name:  "relative path returns false",
			input: "./file.txt",
			want:  false,
		},
		{
			name:  "empty string returns false",
			input: "",
			want:  false,
		},
		{
			name:  "ftp URL returns false",
			input: "ftp://example.com",
			want:  false,
		},
		{
			name:  "HTTP uppercase returns false",
			input: "HTTP://example.com",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fileutil.IsURL(tt.input)
			if got != tt.want {
				t.Errorf("IsURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
