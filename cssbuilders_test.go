package printmd

// Notes:
// - buildPageBreaksCSS: tests page break CSS generation for headings,
//   orphans/widows defaults, and the break-before-heading blocks

import (
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestBuildPageBreaksCSS - Always-On Rules
// ---------------------------------------------------------------------------

func TestBuildPageBreaksCSS_HeadingProtection(t *testing.T) {
	t.Parallel()

	// The heading protection rules apply regardless of configuration.
	for _, pb := range []*PageBreaks{nil, {}, {BeforeH1: true}} {
		css := buildPageBreaksCSS(pb)

		if !strings.Contains(css, "break-after: avoid") {
			t.Error("expected heading break-after rule")
		}
		if !strings.Contains(css, "page-break-after: avoid") {
			t.Error("expected legacy page-break-after rule")
		}
		if !strings.Contains(css, "break-inside: avoid") {
			t.Error("expected break-inside rule")
		}
		if !strings.Contains(css, "h1, h2, h3, h4, h5, h6") {
			t.Error("expected heading selector")
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuildPageBreaksCSS - Orphans and Widows
// ---------------------------------------------------------------------------

func TestBuildPageBreaksCSS_OrphansWidows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pb          *PageBreaks
		wantOrphans string
		wantWidows  string
	}{
		{
			name:        "nil uses defaults",
			pb:          nil,
			wantOrphans: "orphans: 2",
			wantWidows:  "widows: 2",
		},
		{
			name:        "zero values use defaults",
			pb:          &PageBreaks{},
			wantOrphans: "orphans: 2",
			wantWidows:  "widows: 2",
		},
		{
			name:        "custom values",
			pb:          &PageBreaks{Orphans: 4, Widows: 3},
			wantOrphans: "orphans: 4",
			wantWidows:  "widows: 3",
		},
		{
			name:        "orphans only",
			pb:          &PageBreaks{Orphans: 5},
			wantOrphans: "orphans: 5",
			wantWidows:  "widows: 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css := buildPageBreaksCSS(tt.pb)

			if !strings.Contains(css, tt.wantOrphans) {
				t.Errorf("expected %q in CSS:\n%s", tt.wantOrphans, css)
			}
			if !strings.Contains(css, tt.wantWidows) {
				t.Errorf("expected %q in CSS:\n%s", tt.wantWidows, css)
			}
			if !strings.Contains(css, "p, li, dd, dt, blockquote") {
				t.Error("expected orphans/widows selector for text blocks")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildPageBreaksCSS - Break Before Headings
// ---------------------------------------------------------------------------

func TestBuildPageBreaksCSS_BreakBefore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		pb        *PageBreaks
		wantRules []string
		noRules   []string
	}{
		{
			name:    "disabled by default",
			pb:      &PageBreaks{},
			noRules: []string{"break-before: page"},
		},
		{
			name: "before h1",
			pb:   &PageBreaks{BeforeH1: true},
			wantRules: []string{
				"/* Page breaks: before H1 */",
				"h1 {",
				"break-before: page",
				"page-break-before: always",
			},
			noRules: []string{
				"/* Page breaks: before H2 */",
				"/* Page breaks: before H3 */",
			},
		},
		{
			name: "before h2",
			pb:   &PageBreaks{BeforeH2: true},
			wantRules: []string{
				"/* Page breaks: before H2 */",
				"h2 {",
				"break-before: page",
			},
			noRules: []string{
				"/* Page breaks: before H1 */",
				"/* Page breaks: before H3 */",
			},
		},
		{
			name: "before h3",
			pb:   &PageBreaks{BeforeH3: true},
			wantRules: []string{
				"/* Page breaks: before H3 */",
				"h3 {",
				"break-before: page",
			},
		},
		{
			name: "all levels",
			pb:   &PageBreaks{BeforeH1: true, BeforeH2: true, BeforeH3: true},
			wantRules: []string{
				"/* Page breaks: before H1 */",
				"/* Page breaks: before H2 */",
				"/* Page breaks: before H3 */",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			css := buildPageBreaksCSS(tt.pb)

			for _, want := range tt.wantRules {
				if !strings.Contains(css, want) {
					t.Errorf("expected %q in CSS:\n%s", want, css)
				}
			}
			for _, not := range tt.noRules {
				if strings.Contains(css, not) {
					t.Errorf("unexpected %q in CSS:\n%s", not, css)
				}
			}
		})
	}
}

// A forced break before every h1 must not produce a blank first page when
// the document opens with a heading.
func TestBuildPageBreaksCSS_FirstHeadingException(t *testing.T) {
	t.Parallel()

	css := buildPageBreaksCSS(&PageBreaks{BeforeH1: true})

	if !strings.Contains(css, ".markdown-body > h1:first-child") {
		t.Fatalf("expected first-child exception in CSS:\n%s", css)
	}
	if !strings.Contains(css, "break-before: auto") {
		t.Errorf("expected exception to restore automatic breaking:\n%s", css)
	}
}
