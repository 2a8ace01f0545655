package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/config"
	"github.com/printmd/printmd/internal/fileutil"
	"github.com/printmd/printmd/internal/spool"
)

// runPrint renders a markdown file to PDF and hands it to the platform
// print spooler. When no browser engine is available it degrades to an
// HTML preview in the default browser so the document can still be
// printed manually.
func runPrint(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parsePrintFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	configureLogging(env, f.common)

	if len(rest) == 0 {
		return fmt.Errorf("%w: usage: printmd print <file.md>", ErrNoInput)
	}
	inputPath := rest[0]

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
	if f.printer != "" {
		cfg.Printer.Name = f.printer
	}
	if f.wait > 0 {
		cfg.Printer.WaitSeconds = f.wait
	}

	markdown, err := readMarkdownFile(inputPath)
	if err != nil {
		return err
	}

	params, err := buildParams(f.title, cfg, true, env.Now)
	if err != nil {
		return err
	}
	input := buildInput(markdown, inputPath, params)

	opts, err := buildServiceOptions(cfg, f.timeout, envCfg)
	if err != nil {
		return err
	}

	svc := printmd.New(opts...)
	defer func() { _ = svc.Close() }()

	prog := newProgress(env.Logger)
	pdfBytes, err := svc.ToPDF(ctx, input)
	if err != nil {
		if errors.Is(err, printmd.ErrBrowserConnect) {
			return openFallbackPreview(ctx, svc, input, inputPath, env)
		}
		return err
	}
	prog.done(fmt.Sprintf("Rendered %s", filepath.Base(inputPath)))

	pdfPath, cleanup, err := stagePDF(pdfBytes, f.keepPDF)
	if err != nil {
		return err
	}
	defer cleanup()

	if err := dispatchPrint(ctx, pdfPath, cfg, env); err != nil {
		return keepPDFForRetry(pdfBytes, f.keepPDF, inputPath, env, err)
	}

	printer := cfg.Printer.Name
	if printer == "" {
		printer = "default printer"
	}
	fmt.Fprintf(env.Stdout, "Sent %s to %s\n", filepath.Base(inputPath), printer)
	return nil
}

// stagePDF writes the PDF either to the user-requested keep path or to a
// temp file. cleanup is a no-op when the PDF is kept.
func stagePDF(pdf []byte, keepPath string) (string, func(), error) {
	if keepPath != "" {
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(keepPath, pdf, filePermissions); err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return keepPath, func() {}, nil
	}
	return fileutil.WriteTempBytes(pdf, "pdf")
}

// dispatchPrint submits the PDF to the platform spooler and waits for the
// spooler to pick the job up before the caller removes the temp file.
func dispatchPrint(ctx context.Context, pdfPath string, cfg *config.Config, env *Environment) error {
	dispatcher, err := spool.New()
	if err != nil {
		return err
	}

	if runtime.GOOS == "windows" && cfg.Printer.Name != "" {
		env.Logger.Warn("printer selection is not supported on Windows; using the default printer")
	}

	env.Logger.Debugf("dispatching %s via %s", filepath.Base(pdfPath), dispatcher.Name())
	job := spool.Job{Path: pdfPath, Printer: cfg.Printer.Name}
	if err := dispatcher.Dispatch(ctx, job); err != nil {
		return err
	}

	return spool.Settle(ctx, settleDelay(cfg.Printer.WaitSeconds))
}

// settleDelay converts the configured wait into a duration. Zero means
// the default; the spooler needs the file to exist until it has opened
// it, so the wait never goes below the default floor unasked.
func settleDelay(waitSeconds int) time.Duration {
	if waitSeconds <= 0 {
		return spool.DefaultSettle
	}
	return time.Duration(waitSeconds) * time.Second
}

// keepPDFForRetry saves the rendered PDF next to the input when a print
// submission fails, so the user can retry manually without re-rendering.
func keepPDFForRetry(pdf []byte, keepPath, inputPath string, env *Environment, cause error) error {
	savedPath := keepPath
	if savedPath == "" {
		savedPath = replaceExtension(inputPath, ".pdf")
		// #nosec G306 -- PDFs are meant to be readable
		if err := os.WriteFile(savedPath, pdf, filePermissions); err != nil {
			return errors.Join(cause, fmt.Errorf("%w: %v", ErrWriteOutput, err))
		}
	}
	fmt.Fprintf(env.Stderr, "PDF saved to %s for manual printing\n", savedPath)
	return cause
}

// openFallbackPreview saves a styled HTML rendering and opens it in the
// default browser. Used when no Chrome is available for PDF generation;
// the browser's own print dialog takes over from there.
func openFallbackPreview(ctx context.Context, svc *printmd.Service, input printmd.Input, inputPath string, env *Environment) error {
	env.Logger.Warn("browser engine unavailable; falling back to an HTML preview for manual printing")

	htmlContent, err := svc.Render(ctx, input)
	if err != nil {
		return err
	}

	htmlPath := replaceExtension(inputPath, ".html")
	// #nosec G306 -- preview files are meant to be readable
	if err := os.WriteFile(htmlPath, []byte(htmlContent), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}

	if err := spool.OpenInViewer(ctx, htmlPath); err != nil {
		env.Logger.Debugf("opening viewer: %v", err)
		fmt.Fprintf(env.Stdout, "Saved %s; open it in a browser and print from there\n", htmlPath)
		return nil
	}
	fmt.Fprintf(env.Stdout, "Opened %s; use the browser's print dialog\n", htmlPath)
	return nil
}
