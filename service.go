package printmd

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/printmd/printmd/internal/assets"
	"github.com/printmd/printmd/internal/fileutil"
	"github.com/printmd/printmd/internal/pipeline"
)

// Service orchestrates the markdown-to-print pipeline.
type Service struct {
	cfg           serviceConfig
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	cssInjector   pipeline.CSSInjector
	tocInjector   *pipeline.TOCInjection
	styles        StyleLoader
	measurer      contentMeasurer
	markerSink    markerSink
	pdfConverter  pdfConverter
	renderer      *rodRenderer // shared browser behind measurer and pdfConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:           serviceConfig{timeout: defaultTimeout},
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
		tocInjector:   pipeline.NewTOCInjection(),
		markerSink:    overlayMarkerSink{},
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.styles == nil {
		s.styles = embeddedStyles()
	}

	// Create browser-backed collaborators if not injected (e.g., by tests).
	// Both share one renderer so a Service launches at most one browser.
	if s.pdfConverter == nil || s.measurer == nil {
		renderer := newRodRenderer(s.cfg.timeout)
		s.renderer = renderer
		if s.pdfConverter == nil {
			s.pdfConverter = newRodConverter(renderer)
		}
		if s.measurer == nil {
			s.measurer = newRodMeasurer(renderer)
		}
	}

	return s
}

// Render converts markdown into a complete print-styled HTML document.
// The context is used for cancellation and timeout.
func (s *Service) Render(ctx context.Context, input Input) (string, error) {
	if err := s.validateInput(input); err != nil {
		return "", err
	}
	return s.render(ctx, input)
}

// Preview renders the document, measures it in headless Chrome, and layers
// estimated page-break markers over the content. A document without the
// content container comes back unannotated with a zero estimate.
func (s *Service) Preview(ctx context.Context, input Input) (*Preview, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	htmlContent, err := s.render(ctx, input)
	if err != nil {
		return nil, err
	}

	geometry := input.Page.Geometry()
	preview := &Preview{
		HTML:         htmlContent,
		PageHeightPx: geometry.PageHeightPx,
	}

	height, found, err := s.measurer.MeasureHeight(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("measuring content height: %w", err)
	}
	if !found {
		return preview, nil
	}

	preview.ContentHeightPx = height
	preview.PageCount = PageCount(height, geometry.PageHeightPx)
	preview.Markers = slices.Collect(EstimateBreaks(height, geometry.PageHeightPx))

	if len(preview.Markers) > 0 {
		annotated := s.cssInjector.InjectCSS(ctx, htmlContent, assets.PreviewCSS())
		preview.HTML = s.markerSink.InjectMarkers(annotated, slices.Values(preview.Markers))
	}

	return preview, nil
}

// ToPDF runs the full pipeline and returns the PDF as bytes.
// The context is used for cancellation and timeout.
func (s *Service) ToPDF(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	htmlContent, err := s.render(ctx, input)
	if err != nil {
		return nil, err
	}

	pdfBytes, err := s.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{
		Footer: toFooterData(input.Footer),
		Page:   input.Page,
	})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}

	return pdfBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.renderer != nil {
		return s.renderer.Close()
	}
	return nil
}

// render is the shared markdown-to-document stage behind Render, Preview,
// and ToPDF. Input must already be validated.
func (s *Service) render(ctx context.Context, input Input) (string, error) {
	// Preprocess markdown
	mdContent := s.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Resolve the document title: explicit, else first heading, else the
	// shell's default
	title := input.Title
	if title == "" {
		title = pipeline.ExtractTitle(mdContent)
	}

	// Convert to HTML
	paperWidth, _ := input.Page.paperSize()
	htmlContent, err := s.htmlConverter.ToHTML(ctx, mdContent, pipeline.Shell{
		Title:            title,
		PaperWidthInches: paperWidth,
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("%w: %v", ErrHTMLConversion, err)
	}

	// Finalize ==highlight== placeholders before anything parses the HTML
	htmlContent = pipeline.ConvertMarkPlaceholders(htmlContent)

	// Build combined CSS: stylesheet, page-break rules, user CSS
	styleCSS, err := s.loadStyle(input.Style)
	if err != nil {
		return "", err
	}
	cssContent := styleCSS + "\n" + buildPageBreaksCSS(input.PageBreaks)
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}

	// Inject CSS
	htmlContent = s.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	// Expand [TOC] markers into a numbered table of contents
	htmlContent = s.tocInjector.ExpandMarkers(ctx, htmlContent)

	// Anchor relative image and link paths at the source directory
	if input.SourceDir != "" {
		htmlContent, err = pipeline.RewriteRelativePaths(htmlContent, input.SourceDir)
		if err != nil {
			return "", fmt.Errorf("rewriting relative paths: %w", err)
		}
	}

	return htmlContent, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Markdown == "" {
		return ErrEmptyMarkdown
	}
	if err := input.Page.Validate(); err != nil {
		return err
	}
	if err := input.Footer.Validate(); err != nil {
		return err
	}
	if err := input.PageBreaks.Validate(); err != nil {
		return err
	}
	return nil
}

// loadStyle resolves Input.Style: empty means the default style, a path
// loads a CSS file directly, anything else is a named stylesheet.
func (s *Service) loadStyle(style string) (string, error) {
	if style == "" {
		style = DefaultStyle
	}

	if fileutil.IsFilePath(style) {
		data, err := os.ReadFile(style) // #nosec G304 -- user-provided path
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
		return string(data), nil
	}

	return s.styles.LoadStyle(style)
}

// toFooterData converts the public Footer type to internal footerData.
func toFooterData(f *Footer) *footerData {
	if f == nil {
		return nil
	}
	return &footerData{
		Position:       f.Position,
		ShowPageNumber: f.ShowPageNumber,
		Date:           f.Date,
		Text:           f.Text,
	}
}
