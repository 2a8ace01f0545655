// Package pipeline implements the Markdown-to-HTML rendering pipeline.
//
// This package handles preprocessing, HTML conversion, and HTML injection stages:
//   - Markdown preprocessing (line normalization, highlight syntax)
//   - Markdown to HTML conversion via Goldmark, wrapped in a print-ready
//     document shell
//   - Title extraction from the leading heading
//   - CSS injection into HTML documents
//   - [TOC] marker expansion into a numbered table of contents
//   - Relative path rewriting for images and links
//
// Height measurement, page-break estimation, and PDF generation are handled
// by the root printmd package using headless Chrome (go-rod). This
// separation keeps the pipeline focused on document structure and content,
// while the root package handles page layout, pagination, and browser
// concerns.
package pipeline
