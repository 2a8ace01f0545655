package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/config"
)

// renderParams holds everything shared across files in a run: stylesheet,
// extra CSS, page settings, page breaks, and footer. Resolved once so
// batch conversion does not re-read the CSS file per document.
type renderParams struct {
	title      string
	style      string
	css        string
	page       *printmd.PageSettings
	pageBreaks *printmd.PageBreaks
	footer     *printmd.Footer
}

// mergePageFlags overlays page flags onto the config. CLI wins.
func mergePageFlags(f pageFlags, cfg *config.Config) {
	if f.size != "" {
		cfg.Page.Size = f.size
	}
	if f.orientation != "" {
		cfg.Page.Orientation = f.orientation
	}
	if f.margin > 0 {
		cfg.Page.Margin = f.margin
	}
}

// mergeStyleFlags overlays style flags onto the config.
func mergeStyleFlags(f styleFlags, cfg *config.Config) {
	if f.name != "" {
		cfg.Style.Name = f.name
	}
	if f.cssFile != "" {
		cfg.Style.CSSFile = f.cssFile
	}
	if f.assetDir != "" {
		cfg.Assets.BasePath = f.assetDir
	}
}

// mergePageBreakFlags overlays page break flags onto the config.
func mergePageBreakFlags(f pageBreakFlags, cfg *config.Config) {
	if f.breakBefore != "" {
		h1, h2, h3 := parseBreakBefore(f.breakBefore)
		cfg.PageBreaks.BeforeH1 = h1
		cfg.PageBreaks.BeforeH2 = h2
		cfg.PageBreaks.BeforeH3 = h3
	}
	if f.orphans > 0 {
		cfg.PageBreaks.Orphans = f.orphans
	}
	if f.widows > 0 {
		cfg.PageBreaks.Widows = f.widows
	}
}

// mergeFooterFlags overlays footer flags onto the config. Setting any
// footer content flag enables the footer; --no-footer wins over all.
func mergeFooterFlags(f footerFlags, cfg *config.Config) {
	if f.position != "" {
		cfg.Footer.Position = f.position
		cfg.Footer.Enabled = true
	}
	if f.date != "" {
		cfg.Footer.Date = f.date
		cfg.Footer.Enabled = true
	}
	if f.text != "" {
		cfg.Footer.Text = f.text
		cfg.Footer.Enabled = true
	}
	if f.pageNumber {
		cfg.Footer.ShowPageNumber = true
		cfg.Footer.Enabled = true
	}
	if f.disabled {
		cfg.Footer.Enabled = false
	}
}

// parseBreakBefore splits a comma-separated heading list like "h1,h3".
// Unknown entries are ignored rather than rejected.
func parseBreakBefore(value string) (h1, h2, h3 bool) {
	for _, part := range strings.Split(value, ",") {
		switch strings.ToLower(strings.TrimSpace(part)) {
		case "h1":
			h1 = true
		case "h2":
			h2 = true
		case "h3":
			h3 = true
		}
	}
	return h1, h2, h3
}

// buildParams resolves the merged config into the render parameters
// shared by every file in the run.
func buildParams(title string, cfg *config.Config, withFooter bool, now func() time.Time) (*renderParams, error) {
	params := &renderParams{title: title, style: cfg.Style.Name}

	if cfg.Style.CSSFile != "" {
		css, err := os.ReadFile(cfg.Style.CSSFile) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrReadCSS, err)
		}
		params.css = string(css)
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}
	params.page = page
	params.pageBreaks = buildPageBreaks(cfg)

	if withFooter {
		footer, err := buildFooter(cfg, now)
		if err != nil {
			return nil, err
		}
		params.footer = footer
	}

	return params, nil
}

// buildPageSettings converts config page fields to validated settings.
// Returns nil when nothing was configured so the library defaults apply.
func buildPageSettings(cfg *config.Config) (*printmd.PageSettings, error) {
	if cfg.Page.Size == "" && cfg.Page.Orientation == "" && cfg.Page.Margin == 0 {
		return nil, nil
	}

	ps := &printmd.PageSettings{
		Size:        cfg.Page.Size,
		Orientation: cfg.Page.Orientation,
		Margin:      cfg.Page.Margin,
	}
	if ps.Size == "" {
		ps.Size = printmd.PageSizeLetter
	}
	if ps.Orientation == "" {
		ps.Orientation = printmd.OrientationPortrait
	}
	if ps.Margin == 0 {
		ps.Margin = printmd.DefaultMargin
	}
	if err := ps.Validate(); err != nil {
		return nil, err
	}
	return ps, nil
}

// buildPageBreaks converts config page break fields. Returns nil when
// nothing was configured.
func buildPageBreaks(cfg *config.Config) *printmd.PageBreaks {
	pb := cfg.PageBreaks
	if !pb.BeforeH1 && !pb.BeforeH2 && !pb.BeforeH3 && pb.Orphans == 0 && pb.Widows == 0 {
		return nil
	}
	return &printmd.PageBreaks{
		BeforeH1: pb.BeforeH1,
		BeforeH2: pb.BeforeH2,
		BeforeH3: pb.BeforeH3,
		Orphans:  pb.Orphans,
		Widows:   pb.Widows,
	}
}

// buildFooter converts config footer fields, resolving auto dates against
// the injected clock. Returns nil when the footer is disabled.
func buildFooter(cfg *config.Config, now func() time.Time) (*printmd.Footer, error) {
	if !cfg.Footer.Enabled {
		return nil, nil
	}

	date, err := printmd.ResolveDate(cfg.Footer.Date, now())
	if err != nil {
		return nil, fmt.Errorf("invalid footer date: %w", err)
	}

	return &printmd.Footer{
		Position:       cfg.Footer.Position,
		ShowPageNumber: cfg.Footer.ShowPageNumber,
		Date:           date,
		Text:           cfg.Footer.Text,
	}, nil
}

// buildInput assembles the per-file render input from shared params.
// SourceDir lets relative image paths in the markdown resolve against
// the document's own directory.
func buildInput(markdown, sourcePath string, params *renderParams) printmd.Input {
	return printmd.Input{
		Markdown:   markdown,
		Title:      params.title,
		Style:      params.style,
		CSS:        params.css,
		Footer:     params.footer,
		Page:       params.page,
		PageBreaks: params.pageBreaks,
		SourceDir:  filepath.Dir(sourcePath),
	}
}

// buildServiceOptions derives library options from the merged config and
// the timeout flag.
func buildServiceOptions(cfg *config.Config, timeoutFlag string, envCfg *envConfig) ([]printmd.Option, error) {
	var opts []printmd.Option

	timeout, err := resolveTimeout(timeoutFlag, envCfg)
	if err != nil {
		return nil, err
	}
	if timeout > 0 {
		opts = append(opts, printmd.WithTimeout(timeout))
	}

	if cfg.Assets.BasePath != "" {
		loader, err := printmd.NewStyleLoader(cfg.Assets.BasePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, printmd.WithStyles(loader))
	}

	return opts, nil
}

// resolveTimeout parses the --timeout flag, falling back to the
// environment. Zero means the library default applies.
func resolveTimeout(flagValue string, envCfg *envConfig) (time.Duration, error) {
	if flagValue == "" {
		return envCfg.Timeout, nil
	}
	d, err := time.ParseDuration(flagValue)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q (use formats like 30s or 2m)", ErrInvalidTimeout, flagValue)
	}
	return d, nil
}

// readMarkdownFile validates the extension and reads the file.
func readMarkdownFile(path string) (string, error) {
	if err := validateMarkdownExtension(path); err != nil {
		return "", err
	}
	content, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadMarkdown, err)
	}
	return string(content), nil
}
