package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/config"
	"github.com/printmd/printmd/internal/spool"
)

// runPreview renders a markdown file to a styled HTML document with
// estimated page break markers overlaid, showing where the printed pages
// will end.
func runPreview(ctx context.Context, args []string, env *Environment) error {
	f, rest, err := parsePreviewFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	configureLogging(env, f.common)

	if len(rest) == 0 {
		return fmt.Errorf("%w: usage: printmd preview <file.md>", ErrNoInput)
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
	if f.noMarkers {
		cfg.Preview.DisableMarkers = true
	}
	if f.open {
		cfg.Preview.OpenBrowser = true
	}

	markdown, err := readMarkdownFile(inputPath)
	if err != nil {
		return err
	}

	// Footers only exist in the PDF output, so previews skip them.
	params, err := buildParams(f.title, cfg, false, env.Now)
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

	htmlContent, err := renderPreview(ctx, svc, input, cfg, env)
	if err != nil {
		return err
	}

	outputPath := f.output
	if outputPath == "" {
		outputPath = replaceExtension(inputPath, ".html")
	}

	// #nosec G306 -- preview files are meant to be readable
	if err := os.WriteFile(outputPath, []byte(htmlContent), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", outputPath)

	if cfg.Preview.OpenBrowser {
		if err := spool.OpenInViewer(ctx, outputPath); err != nil {
			env.Logger.Warnf("could not open a browser: %v", err)
		}
	}
	return nil
}

// renderPreview produces the annotated preview, degrading to a plain
// rendering when markers are disabled or no browser is available to
// measure the content.
func renderPreview(ctx context.Context, svc *printmd.Service, input printmd.Input, cfg *config.Config, env *Environment) (string, error) {
	if cfg.Preview.DisableMarkers {
		return svc.Render(ctx, input)
	}

	prog := newProgress(env.Logger)
	pv, err := svc.Preview(ctx, input)
	if err != nil {
		if errors.Is(err, printmd.ErrBrowserConnect) {
			env.Logger.Warn("browser engine unavailable; preview will not show page break markers")
			return svc.Render(ctx, input)
		}
		return "", err
	}
	prog.done(fmt.Sprintf("Estimated %d page(s), %d break marker(s)", pv.PageCount, len(pv.Markers)))
	env.Logger.Debugf("content height %.0fpx against page height %.0fpx", pv.ContentHeightPx, pv.PageHeightPx)

	return pv.HTML, nil
}
