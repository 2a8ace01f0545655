package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileToRender pairs a markdown source with its resolved PDF destination.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles expands the input path into the list of files to render.
// A file yields exactly one entry; a directory is walked recursively for
// .md and .markdown files.
func discoverFiles(inputPath, outputDir string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("cannot access input path: %w", err)
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToRender{{
			InputPath:  inputPath,
			OutputPath: resolveOutputPath(inputPath, outputDir, ""),
		}}, nil
	}

	var files []FileToRender
	walkErr := filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !hasMarkdownExtension(path) {
			return nil
		}
		files = append(files, FileToRender{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir, inputPath),
		})
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walking directory: %w", walkErr)
	}
	return files, nil
}

// resolveOutputPath determines the PDF destination for one markdown file.
// baseInputDir is empty for single-file conversion; for batch runs the
// input's directory structure is mirrored under outputDir.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	pdfName := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath)) + ".pdf"

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), pdfName)
	}

	// A single-file conversion may name the output PDF directly.
	if baseInputDir == "" && strings.EqualFold(filepath.Ext(outputDir), ".pdf") {
		return outputDir
	}

	if baseInputDir != "" {
		if rel, err := filepath.Rel(baseInputDir, filepath.Dir(inputPath)); err == nil && rel != "." {
			return filepath.Join(outputDir, rel, pdfName)
		}
	}
	return filepath.Join(outputDir, pdfName)
}

// hasMarkdownExtension reports whether path looks like a markdown file.
func hasMarkdownExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// validateMarkdownExtension rejects inputs that are not markdown files.
func validateMarkdownExtension(path string) error {
	if !hasMarkdownExtension(path) {
		return fmt.Errorf("%w: %s", ErrInvalidExtension, path)
	}
	return nil
}

// replaceExtension swaps the path's extension for newExt, which must
// include the leading dot.
func replaceExtension(path, newExt string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + newExt
}
