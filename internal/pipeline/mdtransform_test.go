package pipeline

import (
	"context"
	"testing"
)

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "LF unchanged",
			input:    "line1\nline2\nline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "CRLF to LF",
			input:    "line1\r\nline2\r\nline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "CR to LF",
			input:    "line1\rline2\rline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "mixed line endings",
			input:    "line1\r\nline2\rline3\nline4",
			expected: "line1\nline2\nline3\nline4",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := normalizeLineEndings(tt.input)
			if got != tt.expected {
				t.Errorf("normalizeLineEndings() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCompressBlankLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single blank line unchanged",
			input:    "line1\n\nline2",
			expected: "line1\n\nline2",
		},
		{
			name:     "two blank lines compressed to two newlines",
			input:    "line1\n\n\nline2",
			expected: "line1\n\nline2",
		},
		{
			name:     "three blank lines compressed to two",
			input:    "line1\n\n\n\nline2",
			expected: "line1\n\nline2",
		},
		{
			name:     "five blank lines compressed to two",
			input:    "line1\n\n\n\n\n\nline2",
			expected: "line1\n\nline2",
		},
		{
			name:     "multiple groups compressed",
			input:    "a\n\n\n\nb\n\n\n\n\nc",
			expected: "a\n\nb\n\nc",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := compressBlankLines(tt.input)
			if got != tt.expected {
				t.Errorf("compressBlankLines() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertHighlights(t *testing.T) {
	t.Parallel()

	// Helper to build expected output with placeholders
	mark := func(s string) string {
		return MarkStartPlaceholder + s + MarkEndPlaceholder
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single highlight",
			input:    "This is ==highlighted== text",
			expected: "This is " + mark("highlighted") + " text",
		},
		{
			name:     "multiple highlights",
			input:    "==one== and ==two==",
			expected: mark("one") + " and " + mark("two"),
		},
		{
			name:     "empty highlight",
			input:    "empty ==== here",
			expected: "empty " + mark("") + " here",
		},
		{
			name:     "highlight with spaces",
			input:    "==hello world==",
			expected: mark("hello world"),
		},
		{
			name:     "no highlights",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "unclosed highlight unchanged",
			input:    "==unclosed",
			expected: "==unclosed",
		},
		{
			name:     "unicode highlight",
			input:    "This is ==日本語== text",
			expected: "This is " + mark("日本語") + " text",
		},
		{
			name:     "triple equals captures inner equals with trailing",
			input:    "===not highlight===",
			expected: mark("=not highlight") + "=",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := convertHighlights(tt.input)
			if got != tt.expected {
				t.Errorf("convertHighlights() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestConvertMarkPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single placeholder",
			input:    "text " + MarkStartPlaceholder + "highlighted" + MarkEndPlaceholder + " more",
			expected: "text <mark>highlighted</mark> more",
		},
		{
			name:     "multiple placeholders",
			input:    MarkStartPlaceholder + "one" + MarkEndPlaceholder + " and " + MarkStartPlaceholder + "two" + MarkEndPlaceholder,
			expected: "<mark>one</mark> and <mark>two</mark>",
		},
		{
			name:     "no placeholders",
			input:    "plain text without markers",
			expected: "plain text without markers",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "nested in HTML",
			input:    "<p>" + MarkStartPlaceholder + "important" + MarkEndPlaceholder + "</p>",
			expected: "<p><mark>important</mark></p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ConvertMarkPlaceholders(tt.input)
			if got != tt.expected {
				t.Errorf("ConvertMarkPlaceholders() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCommonMarkPreprocessor_PreprocessMarkdown(t *testing.T) {
	t.Parallel()

	// Helper to build expected output with placeholders
	mark := func(s string) string {
		return MarkStartPlaceholder + s + MarkEndPlaceholder
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text unchanged",
			input:    "Hello world",
			expected: "Hello world",
		},
		{
			name:     "CRLF normalized to LF",
			input:    "line1\r\nline2\r\nline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "CR normalized to LF",
			input:    "line1\rline2\rline3",
			expected: "line1\nline2\nline3",
		},
		{
			name:     "UTF-8 BOM stripped",
			input:    utf8BOM + "# Title",
			expected: "# Title",
		},
		{
			name:     "highlights converted to placeholders",
			input:    "This is ==important== text",
			expected: "This is " + mark("important") + " text",
		},
		{
			name:     "multiple highlights converted to placeholders",
			input:    "==one== and ==two==",
			expected: mark("one") + " and " + mark("two"),
		},
		{
			name:     "multiple blank lines compressed to two",
			input:    "a\n\n\n\n\nb",
			expected: "a\n\nb",
		},
		{
			name:     "full pipeline: normalize, highlight, compress",
			input:    "Title\r\n\r\n\r\n\r\nText with ==highlight==\r\n\r\n\r\nEnd",
			expected: "Title\n\nText with " + mark("highlight") + "\n\nEnd",
		},
	}

	preprocessor := &CommonMarkPreprocessor{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := preprocessor.PreprocessMarkdown(ctx, tt.input)
			if got != tt.expected {
				t.Errorf("PreprocessMarkdown():\ngot:  %q\nwant: %q", got, tt.expected)
			}
		})
	}
}

func TestCommonMarkPreprocessor_ContextCancellation(t *testing.T) {
	t.Parallel()

	preprocessor := &CommonMarkPreprocessor{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	input := "line1\r\nline2 with ==highlight=="
	got := preprocessor.PreprocessMarkdown(ctx, input)
	if got != input {
		t.Errorf("PreprocessMarkdown() with cancelled context should return content unchanged, got %q", got)
	}
}

func TestExtractTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple h1",
			input:    "# Hello World\n\nBody text",
			expected: "Hello World",
		},
		{
			name:     "h2 as first heading",
			input:    "Intro paragraph\n\n## Section Title\n\nBody",
			expected: "Section Title",
		},
		{
			name:     "h6 heading",
			input:    "###### Deep Heading",
			expected: "Deep Heading",
		},
		{
			name:     "first of several headings wins",
			input:    "# First\n\n# Second",
			expected: "First",
		},
		{
			name:     "bold markup stripped",
			input:    "# **Bold** Title",
			expected: "Bold Title",
		},
		{
			name:     "italic markup stripped",
			input:    "# _Italic_ Title",
			expected: "Italic Title",
		},
		{
			name:     "inline code markup stripped",
			input:    "# The `printmd` Tool",
			expected: "The printmd Tool",
		},
		{
			name:     "link keeps label",
			input:    "# [Release Notes](https://example.com/notes)",
			expected: "Release Notes",
		},
		{
			name:     "closing hashes stripped",
			input:    "# Title ##",
			expected: "Title",
		},
		{
			name:     "heading inside backtick fence ignored",
			input:    "```\n# Not The Title\n```\n\n# Real Title",
			expected: "Real Title",
		},
		{
			name:     "heading inside tilde fence ignored",
			input:    "~~~\n# Not The Title\n~~~\n\n# Real Title",
			expected: "Real Title",
		},
		{
			name:     "indented heading ignored",
			input:    "    # Code Block Heading",
			expected: "",
		},
		{
			name:     "no heading returns empty",
			input:    "Just a paragraph\n\nAnother paragraph",
			expected: "",
		},
		{
			name:     "hash without space is not a heading",
			input:    "#NoSpace",
			expected: "",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "unicode title",
			input:    "# 日本語のタイトル",
			expected: "日本語のタイトル",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ExtractTitle(tt.input)
			if got != tt.expected {
				t.Errorf("ExtractTitle() = %q, want %q", got, tt.expected)
			}
		})
	}
}
