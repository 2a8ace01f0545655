package assets

// defaultLoader is the package-level embedded loader.
var defaultLoader = NewEmbeddedLoader()

// LoadStyle loads a stylesheet by name using the default embedded loader.
// The name should not include the .css extension or path components.
// Returns ErrStyleNotFound if the style does not exist.
// Returns ErrInvalidAssetName if the name contains path separators or traversal.
func LoadStyle(name string) (string, error) {
	return defaultLoader.LoadStyle(name)
}

// StyleNames lists the built-in stylesheet names.
func StyleNames() []string {
	return defaultLoader.StyleNames()
}

// PreviewCSS returns the stylesheet for the page-break marker overlay drawn
// on print previews. It is not a user-selectable style and is kept out of
// the styles/ directory so it cannot shadow or be shadowed by one.
func PreviewCSS() string {
	return previewCSS
}
