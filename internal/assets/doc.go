// Package assets provides the CSS stylesheets shipped with printmd.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in styles)
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in styles (github, plain) embedded at
// compile time.
//
// FilesystemLoader allows users to provide custom stylesheets from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver is the loader used by the rendering service. It tries the
// custom FilesystemLoader first, falling back to EmbeddedLoader if the
// style is not found. This enables overriding specific styles while
// keeping the defaults.
//
// # Directory Structure
//
// Custom style directories mirror the embedded layout:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css           # stylesheet (e.g., report.css)
//
// # Security
//
// Style names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
