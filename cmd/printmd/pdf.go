package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/config"
)

// RenderResult holds the outcome of rendering a single file.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// runPDF renders one markdown file or a directory of them to PDF. Batch
// conversion fans out over a pool of renderers, each owning its own
// browser instance.
func runPDF(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parsePDFFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	configureLogging(env, f.common)

	if err := validateWorkers(f.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Logger)
	cfg, err := loadConfig(f.common.config, envCfg)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)

	mergePageFlags(f.page, cfg)
	mergeStyleFlags(f.style, cfg)
	mergePageBreakFlags(f.pageBreaks, cfg)
	mergeFooterFlags(f.footer, cfg)

	inputPath, err := resolveInputPath(rest, cfg)
	if err != nil {
		return err
	}
	outputDir := f.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	params, err := buildParams(f.title, cfg, true, env.Now)
	if err != nil {
		return err
	}

	opts, err := buildServiceOptions(cfg, f.timeout, envCfg)
	if err != nil {
		return err
	}

	workers := f.workers
	if workers == 0 {
		workers = envCfg.Workers
	}
	poolSize := printmd.ResolvePoolSize(workers)
	if poolSize > len(files) {
		poolSize = len(files)
	}
	env.Logger.Debugf("rendering %d file(s) with %d worker(s)", len(files), poolSize)

	pool := newRendererPool(poolSize, opts...)
	defer func() { _ = pool.Close() }()

	prog := newProgress(env.Logger)
	results := renderBatch(ctx, pool, files, params)
	prog.done(fmt.Sprintf("Processed %d file(s)", len(results)))

	if failed := printResults(results, f.common.quiet, f.common.verbose, env); failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// resolveInputPath picks the positional argument, else the configured
// default input directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", fmt.Errorf("%w: usage: printmd pdf <file.md or directory>", ErrNoInput)
}

// validateWorkers checks the worker count. Zero means auto-detect.
func validateWorkers(workers int) error {
	if workers < 0 || workers > printmd.MaxPoolSize {
		return fmt.Errorf("%w: %d (must be 1 to %d, or 0 for auto)", ErrInvalidWorkerCount, workers, printmd.MaxPoolSize)
	}
	return nil
}

// renderBatch distributes files across pool workers. Results land at the
// same index as their input file so output order stays deterministic.
func renderBatch(ctx context.Context, pool Pool, files []FileToRender, params *renderParams) []RenderResult {
	results := make([]RenderResult, len(files))

	jobs := make(chan int, len(files))
	for i := range files {
		jobs <- i
	}
	close(jobs)

	workers := pool.Size()
	if workers > len(files) {
		workers = len(files)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				svc := pool.Acquire()
				results[idx] = renderFile(ctx, svc, files[idx], params)
				pool.Release(svc)
			}
		}()
	}
	wg.Wait()

	return results
}

// renderFile converts one markdown file to PDF.
func renderFile(ctx context.Context, svc Renderer, f FileToRender, params *renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{InputPath: f.InputPath, OutputPath: f.OutputPath}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	input := buildInput(string(content), f.InputPath, params)

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	pdfBytes, err := svc.ToPDF(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- PDFs are meant to be readable
	if err := os.WriteFile(f.OutputPath, pdfBytes, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	result.Duration = time.Since(start)
	return result
}

// printResults reports per-file outcomes and returns the failure count.
func printResults(results []RenderResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "Created %s (%s)\n", r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}
	if len(results) > 1 && !quiet {
		fmt.Fprintf(env.Stdout, "%d succeeded, %d failed\n", len(results)-failed, failed)
	}
	return failed
}
