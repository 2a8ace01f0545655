package pipeline

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block into HTML content.
// Tries </head> first, then <body>, then prepends to the HTML.
// CSS content is sanitized to prevent injection attacks.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	sanitizedCSS := sanitizeCSS(cssContent)
	styleBlock := "<style>" + sanitizedCSS + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	// Try inserting before </head>
	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	// Try inserting after <body>
	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		// Find the closing > of <body...>
		closeIdx := strings.Index(htmlContent[idx:], ">")
		if closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	// Fallback: prepend
	return styleBlock + htmlContent
}

// sanitizeCSS escapes sequences that could break out of a <style> block.
// Prevents CSS injection by escaping </style> and similar closing sequences.
func sanitizeCSS(css string) string {
	// Escape </ sequences to prevent closing the style tag prematurely
	return strings.ReplaceAll(css, "</", `<\/`)
}

// AppendBody inserts markup before </body>, appending to the end when no
// closing tag exists. Used for overlay elements layered over the content.
func AppendBody(htmlContent, markup string) string {
	if markup == "" {
		return htmlContent
	}

	lowerHTML := strings.ToLower(htmlContent)
	if idx := strings.Index(lowerHTML, "</body>"); idx != -1 {
		return htmlContent[:idx] + markup + htmlContent[idx:]
	}
	return htmlContent + markup
}

// TOC marker expansion depth bounds. Deeper headings clutter a printed
// table of contents.
const (
	tocMinDepth = 1
	tocMaxDepth = 3
)

// tocMarkerPattern matches a [TOC] marker rendered as its own paragraph.
// Markers inside code blocks never render as bare paragraphs, so they are
// left alone.
var tocMarkerPattern = regexp.MustCompile(`(?i)<p>\[TOC\]</p>`)

// TOCInjection expands [TOC] markers into a numbered table of contents.
type TOCInjection struct{}

// NewTOCInjection creates a TOC marker expander.
func NewTOCInjection() *TOCInjection {
	return &TOCInjection{}
}

// ExpandMarkers replaces every [TOC] paragraph with a numbered table of
// contents built from the document's headings. Documents without markers
// are returned unchanged.
func (t *TOCInjection) ExpandMarkers(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return htmlContent
	}
	if !tocMarkerPattern.MatchString(htmlContent) {
		return htmlContent
	}

	headings := extractHeadings(htmlContent, tocMinDepth, tocMaxDepth)
	tocHTML := generateNumberedTOC(headings)
	return tocMarkerPattern.ReplaceAllLiteralString(htmlContent, tocHTML)
}

// headingInfo represents an extracted heading from HTML.
type headingInfo struct {
	Level int    // 1-6
	ID    string // anchor ID
	Text  string // heading text content
}

// headingPattern matches h1-h6 tags with id attribute.
// Captures: 1=level, 2=id, 3=inner HTML (may contain inline tags)
var headingPattern = regexp.MustCompile(`(?is)<h([1-6])[^>]*\bid="([^"]*)"[^>]*>(.*?)</h[1-6]>`)

// htmlTagPattern matches HTML tags for stripping from heading text.
var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// stripHTMLTags removes HTML tags from a string, decodes HTML entities,
// and trims whitespace. Decoding entities is essential to avoid double-encoding
// when the text is later escaped for HTML output.
func stripHTMLTags(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return strings.TrimSpace(s)
}

// extractHeadings parses HTML and returns headings between minDepth and maxDepth.
// Headings without IDs are skipped.
func extractHeadings(htmlContent string, minDepth, maxDepth int) []headingInfo {
	matches := headingPattern.FindAllStringSubmatch(htmlContent, -1)
	if len(matches) == 0 {
		return nil
	}

	var headings []headingInfo
	for _, m := range matches {
		level, _ := strconv.Atoi(m[1])
		if level < minDepth || level > maxDepth {
			continue
		}
		headings = append(headings, headingInfo{
			Level: level,
			ID:    m[2],
			Text:  stripHTMLTags(m[3]),
		})
	}
	return headings
}

// numberingState tracks hierarchical numbering for TOC entries.
// Supports normalization (first heading becomes level 1) and gap skipping.
type numberingState struct {
	counters     [6]int // counters[0] = level 1 count, etc.
	minLevelSeen int    // for normalization (0 = not set)
	lastLevel    int    // for tracking parent relationships
}

// newNumberingState creates a new numbering state.
func newNumberingState() *numberingState {
	return &numberingState{minLevelSeen: 0, lastLevel: 0}
}

// next returns the next number string and effective depth for the given heading level.
// Handles normalization and gap skipping.
// The effective depth is used for indentation in TOC generation.
func (n *numberingState) next(level int) (numStr string, effectiveDepth int) {
	// Initialize minLevelSeen on first heading
	if n.minLevelSeen == 0 {
		n.minLevelSeen = level
	}

	// Calculate effective depth (1-based, normalized)
	effectiveDepth = level - n.minLevelSeen + 1
	if effectiveDepth < 1 {
		effectiveDepth = 1
	}

	// Handle gap skipping: if we jump levels, treat as direct child
	// E.g., H1 -> H3 becomes depth 1 -> depth 2 (not depth 3)
	if n.lastLevel > 0 && effectiveDepth > n.lastLevel+1 {
		effectiveDepth = n.lastLevel + 1
	}

	// Reset deeper level counters
	for i := effectiveDepth; i < 6; i++ {
		n.counters[i] = 0
	}

	// Increment current level
	n.counters[effectiveDepth-1]++
	n.lastLevel = effectiveDepth

	// Build number string: "1.2.3."
	var parts []string
	for i := 0; i < effectiveDepth; i++ {
		parts = append(parts, strconv.Itoa(n.counters[i]))
	}
	return strings.Join(parts, ".") + ".", effectiveDepth
}

// generateNumberedTOC creates HTML for a numbered table of contents.
// Uses <div> elements instead of <ul>/<li> to avoid CSS list-style conflicts.
func generateNumberedTOC(headings []headingInfo) string {
	if len(headings) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(`<nav class="toc"><div class="toc-list">`)

	numbering := newNumberingState()

	for _, h := range headings {
		// Get number and effective depth (handles normalization and gap skipping)
		num, effectiveDepth := numbering.next(h.Level)

		// Calculate indentation: (depth - 1) * 1.5em
		indent := float64(effectiveDepth-1) * 1.5

		buf.WriteString(`<div class="toc-item"`)
		if indent > 0 {
			buf.WriteString(fmt.Sprintf(` style="padding-left:%.1fem"`, indent))
		}
		buf.WriteString(`><a href="#`)
		buf.WriteString(html.EscapeString(h.ID))
		buf.WriteString(`">`)
		buf.WriteString(num)
		buf.WriteString(` `)
		buf.WriteString(html.EscapeString(h.Text))
		buf.WriteString(`</a></div>`)
	}

	buf.WriteString(`</div></nav>`)
	return buf.String()
}
