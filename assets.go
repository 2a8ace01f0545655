package printmd

import (
	"errors"

	"github.com/printmd/printmd/internal/assets"
)

// DefaultStyle is the stylesheet used when Input.Style is empty.
const DefaultStyle = "github"

// StyleLoader defines the contract for loading CSS stylesheets by name.
// Implementations may load from filesystem, embedded assets, object
// storage, etc.
//
// The library provides NewStyleLoader() for filesystem-based loading with
// fallback to embedded defaults. Implement this interface for custom
// backends.
type StyleLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)
}

// Styles lists the built-in stylesheet names.
func Styles() []string {
	return assets.StyleNames()
}

// NewStyleLoader creates a StyleLoader for the given base path.
// If basePath is empty, returns a loader using only embedded styles.
// If basePath is set, styles under {basePath}/styles/ take precedence with
// fallback to the embedded styles of the same name.
//
// Returns ErrInvalidAssetPath if basePath is set but not a valid, readable
// directory.
func NewStyleLoader(basePath string) (StyleLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &styleLoaderAdapter{resolver: resolver}, nil
}

// embeddedStyles returns the loader over the embedded styles only.
// Resolver construction cannot fail without a custom base path.
func embeddedStyles() StyleLoader {
	loader, _ := NewStyleLoader("")
	return loader
}

// styleLoaderAdapter wraps the internal AssetResolver to return public errors.
type styleLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *styleLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.resolver.LoadStyle(name)
	if err != nil {
		return "", convertAssetError(err)
	}
	return content, nil
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, assets.ErrStyleNotFound):
		return wrapError(ErrStyleNotFound, err)
	case errors.Is(err, assets.ErrInvalidBasePath):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrPathTraversal):
		return wrapError(ErrInvalidAssetPath, err)
	case errors.Is(err, assets.ErrInvalidAssetName):
		return wrapError(ErrStyleNotFound, err) // Invalid name means not found
	default:
		return err
	}
}

// wrapError creates a new error that wraps the original with a public sentinel.
// The resulting error preserves the original message via Error() and supports
// errors.Is() matching against the public sentinel via Unwrap().
func wrapError(sentinel, original error) error {
	return &wrappedAssetError{sentinel: sentinel, original: original}
}

type wrappedAssetError struct {
	sentinel error
	original error
}

func (e *wrappedAssetError) Error() string {
	return e.original.Error()
}

// Unwrap returns the public sentinel for errors.Is() matching.
// Internal errors are not exposed since they're in internal/ packages.
func (e *wrappedAssetError) Unwrap() error {
	return e.sentinel
}
