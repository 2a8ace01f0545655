package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/printmd/printmd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits for shared-config safety.
const (
	MaxStyleNameLength   = 100  // Stylesheet name
	MaxPathLength        = 2048 // File paths (css file, asset base)
	MaxDateLength        = 50   // "auto:DDDD, MMMM D, YYYY" and friends
	MaxTextLength        = 500  // Footer free-form text
	MaxPageSizeLength    = 10   // "letter", "a4", "legal"
	MaxOrientationLength = 10   // "portrait", "landscape"
	MaxPrinterLength     = 127  // CUPS printer name limit
)

// Config holds all configuration for rendering and printing.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Style      StyleConfig      `yaml:"style"`
	Page       PageConfig       `yaml:"page"`
	PageBreaks PageBreaksConfig `yaml:"pageBreaks"`
	Footer     FooterConfig     `yaml:"footer"`
	Printer    PrinterConfig    `yaml:"printer"`
	Preview    PreviewConfig    `yaml:"preview"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// StyleConfig defines stylesheet options.
type StyleConfig struct {
	Name    string `yaml:"name"`    // Built-in style name (default: "github")
	CSSFile string `yaml:"cssFile"` // Extra CSS file appended after the style
}

// PageConfig defines page settings for preview and PDF.
type PageConfig struct {
	Size        string  `yaml:"size"`        // "letter", "a4", "legal" (default: "letter")
	Orientation string  `yaml:"orientation"` // "portrait", "landscape" (default: "portrait")
	Margin      float64 `yaml:"margin"`      // inches (default: 0.75)
}

// PageBreaksConfig tunes print fragmentation.
type PageBreaksConfig struct {
	BeforeH1 bool `yaml:"beforeH1"` // Force a page break before every H1
	BeforeH2 bool `yaml:"beforeH2"` // Force a page break before every H2
	BeforeH3 bool `yaml:"beforeH3"` // Force a page break before every H3
	Orphans  int  `yaml:"orphans"`  // Min lines at the bottom of a page (0 = engine default)
	Widows   int  `yaml:"widows"`   // Min lines at the top of a page (0 = engine default)
}

// FooterConfig defines page footer options.
type FooterConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Position       string `yaml:"position"` // "left", "center", "right" (default: "right")
	ShowPageNumber bool   `yaml:"showPageNumber"`
	Date           string `yaml:"date"` // Literal text, or "auto" / "auto:FORMAT"
	Text           string `yaml:"text"` // Optional free-form text
}

// PrinterConfig defines print dispatch options.
type PrinterConfig struct {
	Name        string `yaml:"name"`        // Printer name (empty = system default)
	WaitSeconds int    `yaml:"waitSeconds"` // Seconds to wait after submitting before cleanup (0 = CLI default)
}

// PreviewConfig defines preview rendering options.
type PreviewConfig struct {
	DisableMarkers bool `yaml:"disableMarkers"` // Skip the page-break overlay
	OpenBrowser    bool `yaml:"openBrowser"`    // Open generated previews in the default browser
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Custom styles directory (empty = embedded only)
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("style.name", c.Style.Name, MaxStyleNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("style.cssFile", c.Style.CSSFile, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}

	if err := validateFieldLength("page.size", c.Page.Size, MaxPageSizeLength); err != nil {
		return err
	}
	if err := validateFieldLength("page.orientation", c.Page.Orientation, MaxOrientationLength); err != nil {
		return err
	}

	if c.PageBreaks.Orphans < 0 {
		return fmt.Errorf("pageBreaks.orphans: must not be negative, got %d", c.PageBreaks.Orphans)
	}
	if c.PageBreaks.Widows < 0 {
		return fmt.Errorf("pageBreaks.widows: must not be negative, got %d", c.PageBreaks.Widows)
	}

	if err := validateFieldLength("footer.date", c.Footer.Date, MaxDateLength); err != nil {
		return err
	}
	if err := validateFieldLength("footer.text", c.Footer.Text, MaxTextLength); err != nil {
		return err
	}
	if c.Footer.Position != "" {
		switch strings.ToLower(c.Footer.Position) {
		case "left", "center", "right":
			// valid
		default:
			return fmt.Errorf("footer.position: invalid value %q (must be left, center, or right)", c.Footer.Position)
		}
	}

	if err := validateFieldLength("printer.name", c.Printer.Name, MaxPrinterLength); err != nil {
		return err
	}
	if c.Printer.WaitSeconds < 0 {
		return fmt.Errorf("printer.waitSeconds: must not be negative, got %d", c.Printer.WaitSeconds)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration with optional features disabled.
func DefaultConfig() *Config {
	return &Config{
		Input:   InputConfig{DefaultDir: ""},
		Output:  OutputConfig{DefaultDir: ""},
		Style:   StyleConfig{Name: ""},
		Footer:  FooterConfig{Enabled: false},
		Printer: PrinterConfig{Name: ""},
		Preview: PreviewConfig{},
		Assets:  AssetsConfig{BasePath: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	var cfg Config
	if err := yamlutil.LoadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/printmd/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "printmd", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
