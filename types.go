package printmd

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.75
)

// paperDimensions maps a page size to its portrait dimensions in inches.
var paperDimensions = map[string]struct{ width, height float64 }{
	PageSizeLetter: {8.5, 11},
	PageSizeA4:     {8.27, 11.69},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures page dimensions for preview and PDF output.
type PageSettings struct {
	Size        string  // "letter", "a4", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns page settings with default values.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeLetter,
		Orientation: OrientationPortrait,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
// Does not mutate - uses case-insensitive comparison.
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if p.Size != "" && !isValidPageSize(p.Size) {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	if p.Orientation != "" && !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin != 0 && (p.Margin < MinMargin || p.Margin > MaxMargin) {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// paperSize reports paper dimensions in inches with orientation applied.
// Nil settings and unknown sizes fall back to portrait letter.
func (p *PageSettings) paperSize() (width, height float64) {
	size := PageSizeLetter
	orientation := OrientationPortrait
	if p != nil {
		if p.Size != "" {
			size = strings.ToLower(p.Size)
		}
		if p.Orientation != "" {
			orientation = strings.ToLower(p.Orientation)
		}
	}

	dims, ok := paperDimensions[size]
	if !ok {
		dims = paperDimensions[PageSizeLetter]
	}
	if orientation == OrientationLandscape {
		return dims.height, dims.width
	}
	return dims.width, dims.height
}

// margin reports the margin in inches, defaulting when unset.
func (p *PageSettings) margin() float64 {
	if p == nil || p.Margin == 0 {
		return DefaultMargin
	}
	return p.Margin
}

// isValidPageSize checks if size is a known page size (case-insensitive).
func isValidPageSize(size string) bool {
	_, ok := paperDimensions[strings.ToLower(size)]
	return ok
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Input contains rendering parameters.
type Input struct {
	Markdown   string        // Markdown content (required)
	Title      string        // Document title (optional, first heading then "Document")
	Style      string        // Stylesheet name or CSS file path (optional, default "github")
	CSS        string        // Extra CSS appended after the stylesheet (optional)
	Footer     *Footer       // Footer config (optional)
	Page       *PageSettings // Page settings (optional, nil = defaults)
	PageBreaks *PageBreaks   // Page-break tuning (optional, nil = defaults)
	SourceDir  string        // Base directory for relative image and link paths (optional)
}

// Footer configures the printed page footer.
type Footer struct {
	Position       string // "left", "center", "right" (default: "right")
	ShowPageNumber bool
	Date           string
	Text           string
}

// Validate checks that footer settings are valid.
// Returns nil if f is nil (nil means no footer).
func (f *Footer) Validate() error {
	if f == nil {
		return nil
	}
	switch strings.ToLower(f.Position) {
	case "", "left", "center", "right":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be left, center, or right)", ErrInvalidFooterPosition, f.Position)
	}
}

// PageBreaks tunes where the print engine may split content across pages.
type PageBreaks struct {
	BeforeH1 bool // force a break before every level-1 heading
	BeforeH2 bool // force a break before every level-2 heading
	BeforeH3 bool // force a break before every level-3 heading
	Orphans  int  // minimum lines kept at the bottom of a page (0 = engine default)
	Widows   int  // minimum lines kept at the top of a page (0 = engine default)
}

// Validate checks that page-break settings are valid.
// Returns nil if b is nil (nil means defaults).
func (b *PageBreaks) Validate() error {
	if b == nil {
		return nil
	}
	if b.Orphans < 0 || b.Widows < 0 {
		return fmt.Errorf("%w: orphans=%d widows=%d (must not be negative)", ErrInvalidPageBreaks, b.Orphans, b.Widows)
	}
	return nil
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout time.Duration
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-document rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("printmd: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithStyles sets the stylesheet loader. Use NewStyleLoader to serve a
// directory of custom stylesheets with fallback to the embedded ones.
func WithStyles(loader StyleLoader) Option {
	return func(s *Service) {
		s.styles = loader
	}
}
