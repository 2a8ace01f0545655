// Package printmd renders Markdown for print: styled HTML, print previews
// with estimated page-break markers, and PDFs via headless Chrome.
//
// # Quick Start
//
// Create a service, render, and close when done:
//
//	svc := printmd.New()
//	defer svc.Close()
//
//	pdf, err := svc.ToPDF(ctx, printmd.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.pdf", pdf, 0644)
//
// # Pipeline
//
// Every entry point shares the same document stage:
//
//  1. Markdown preprocessing (line normalization, ==highlight== syntax)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. CSS injection (named stylesheet, page-break rules, user CSS)
//  4. [TOC] expansion and relative path rewriting
//
// ToPDF hands the document to headless Chrome (go-rod) for PDF rendering.
// Preview instead measures the rendered content height, estimates where the
// print engine will break pages, and layers dashed marker lines over the
// document:
//
//	pv, err := svc.Preview(ctx, printmd.Input{Markdown: content})
//	// pv.HTML        - annotated document for the browser
//	// pv.PageCount   - estimated printed pages
//	// pv.Markers     - one BreakMarker per page boundary
//
// The estimate is heuristic. Headings, code blocks, and tables refuse to
// split across pages, so real breaks drift off the ideal grid; each marker
// carries a corrective margin that tracks that drift. Expect the markers to
// approximate, not reproduce, the PDF engine's pagination.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := printmd.New(
//	    printmd.WithTimeout(2 * time.Minute),
//	)
//
// Per-document options are passed via Input:
//
//	pdf, err := svc.ToPDF(ctx, printmd.Input{
//	    Markdown:   content,
//	    SourceDir:  "/path/to/markdown",  // for relative image paths
//	    Style:      "github",             // built-in name or CSS file path
//	    CSS:        "body { font-size: 14px; }",
//	    Page:       &printmd.PageSettings{Size: "a4"},
//	    PageBreaks: &printmd.PageBreaks{BeforeH1: true},
//	    Footer:     &printmd.Footer{ShowPageNumber: true},
//	})
//
// # Parallel Processing
//
// For batch conversion, use ServicePool to manage multiple browser instances:
//
//	pool := printmd.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	pdf, err := svc.ToPDF(ctx, input)
//
// # Custom Styles
//
// Override built-in stylesheets with a StyleLoader:
//
//	loader, err := printmd.NewStyleLoader("/path/to/assets")
//	svc := printmd.New(printmd.WithStyles(loader))
//
// Asset directory structure:
//
//	assets/
//	└── styles/
//	    └── custom.css
//
// # Browser Requirements
//
// PDF generation and preview measurement require Chrome/Chromium. The
// go-rod library automatically downloads a managed Chromium instance on
// first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN to specify a custom Chrome binary.
package printmd
