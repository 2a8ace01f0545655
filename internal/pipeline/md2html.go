package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strconv"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// DefaultTitle is used when no document title can be determined.
const DefaultTitle = "Document"

// defaultViewportWidthInches matches portrait letter paper.
const defaultViewportWidthInches = 8.5

// htmlTemplate wraps Goldmark's fragment output in a complete HTML5
// document. The viewport width mirrors the paper width so the browser lays
// the content out at print proportions, and the markdown-body article is
// the container the stylesheets and the height measurement target.
const htmlTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=%sin, initial-scale=1.0">
<title>%s</title>
</head>
<body>
<article class="markdown-body">
%s
</article>
</body>
</html>`

// Shell describes the document wrapper around the converted Markdown body.
type Shell struct {
	Title            string  // escaped into <title>; empty means DefaultTitle
	PaperWidthInches float64 // viewport width hint; <= 0 means letter width
}

// HTMLConverter abstracts Markdown to HTML conversion.
type HTMLConverter interface {
	ToHTML(ctx context.Context, content string, shell Shell) (string, error)
}

// GoldmarkConverter converts Markdown to HTML using goldmark (pure Go).
type GoldmarkConverter struct {
	md goldmark.Markdown
}

// NewGoldmarkConverter creates a GoldmarkConverter with GFM extensions and syntax highlighting.
func NewGoldmarkConverter() *GoldmarkConverter {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,      // Tables, strikethrough, autolinks, task lists
			extension.Footnote, // [^1] footnotes
			highlighting.NewHighlighting(
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true), // CSS classes so the print stylesheet controls colors
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(), // Generate IDs for headings (required for [TOC] anchors)
		),
		goldmark.WithRendererOptions(
			htmlrenderer.WithHardWraps(), // Treat newlines as <br>
			htmlrenderer.WithXHTML(),     // Self-closing tags
			// Note: WithUnsafe() intentionally NOT used for security.
			// The ==highlight== feature uses placeholders converted after Goldmark.
		),
	)
	return &GoldmarkConverter{md: md}
}

// ToHTML converts Markdown content to a standalone HTML5 document.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *GoldmarkConverter) ToHTML(ctx context.Context, content string, shell Shell) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("converting markdown: %w", err)}
			return
		}
		done <- result{html: wrapDocument(buf.String(), shell)}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// wrapDocument places the converted body in the document shell.
func wrapDocument(body string, shell Shell) string {
	title := shell.Title
	if title == "" {
		title = DefaultTitle
	}

	width := shell.PaperWidthInches
	if width <= 0 {
		width = defaultViewportWidthInches
	}

	return fmt.Sprintf(htmlTemplate,
		strconv.FormatFloat(width, 'f', -1, 64),
		html.EscapeString(title),
		body,
	)
}
