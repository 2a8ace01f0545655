package printmd_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/printmd/printmd"
)

// Example demonstrates rendering markdown into a print-styled HTML document.
// For PDF output or a measured preview, use ToPDF or Preview (requires Chrome).
func Example() {
	service := printmd.New()
	defer service.Close()

	htmlContent, err := service.Render(context.Background(), printmd.Input{
		Markdown: "# Hello World\n\nThis is a test.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(htmlContent, "<h1") {
		fmt.Println("HTML generated successfully")
	}
	// Output: HTML generated successfully
}

// Example_withStyle demonstrates using a built-in stylesheet.
func Example_withStyle() {
	service := printmd.New()
	defer service.Close()

	htmlContent, err := service.Render(context.Background(), printmd.Input{
		Markdown: "# Plain Document\n\nInk-frugal serif styling.",
		Style:    "plain",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The plain style sets a Georgia serif stack.
	if strings.Contains(htmlContent, "Georgia") {
		fmt.Println("Plain style applied")
	}
	// Output: Plain style applied
}

// Example_withCustomCSS demonstrates injecting custom CSS.
func Example_withCustomCSS() {
	service := printmd.New()
	defer service.Close()

	htmlContent, err := service.Render(context.Background(), printmd.Input{
		Markdown: "# Styled Document\n\nCustom styling applied.",
		CSS:      "h1 { color: #2c3e50; border-bottom: 2px solid #3498db; }",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(htmlContent, "#2c3e50") {
		fmt.Println("Custom CSS injected")
	}
	// Output: Custom CSS injected
}

// Example_withPageSettings demonstrates configuring the paper format.
func Example_withPageSettings() {
	service := printmd.New()
	defer service.Close()

	htmlContent, err := service.Render(context.Background(), printmd.Input{
		Markdown: "# A4 Document\n\nConfigured for A4 paper.",
		Page: &printmd.PageSettings{
			Size:        printmd.PageSizeA4,
			Orientation: printmd.OrientationPortrait,
			Margin:      1.0, // inches
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(htmlContent) > 0 {
		fmt.Println("Page settings configured")
	}
	// Output: Page settings configured
}

// ExampleService_Preview demonstrates estimating page breaks for a print
// preview. Requires a Chrome or Chromium install (downloaded on first use).
func ExampleService_Preview() {
	service := printmd.New()
	defer service.Close()

	pv, err := service.Preview(context.Background(), printmd.Input{
		Markdown: "# Long Report\n\nMany pages of content...",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d page(s), %d marker(s)\n", pv.PageCount, len(pv.Markers))
	// pv.HTML now carries one dashed boundary line per estimated page break.
}

// ExampleEstimateBreaks demonstrates the drift-corrected page boundary
// estimate for 2000px of content on 912px pages.
func ExampleEstimateBreaks() {
	for m := range printmd.EstimateBreaks(2000, 912) {
		fmt.Printf("page %d starts at %.0fpx (margin-top %dpx)\n", m.Index+1, m.TopOffsetPx, m.MarginTopPx)
	}
	// Output:
	// page 2 starts at 912px (margin-top 60px)
	// page 3 starts at 1824px (margin-top -36px)
}

// ExamplePageCount demonstrates the page estimate behind the preview.
func ExamplePageCount() {
	fmt.Println(printmd.PageCount(2000, 912))
	// Output: 3
}

// ExampleResolveDate demonstrates the auto date syntax used by footers.
func ExampleResolveDate() {
	date, err := printmd.ResolveDate("auto:long", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(date)
	// Output: January 15, 2026
}

// ExampleServicePool demonstrates parallel batch rendering.
func ExampleServicePool() {
	pool := printmd.NewServicePool(2)

	docs := []string{
		"# Document 1\n\nFirst document.",
		"# Document 2\n\nSecond document.",
	}

	results := make(chan bool, len(docs))
	var wg sync.WaitGroup

	for _, doc := range docs {
		wg.Add(1)
		go func(markdown string) {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			htmlContent, err := svc.Render(context.Background(), printmd.Input{Markdown: markdown})
			results <- err == nil && strings.Contains(htmlContent, "Document")
		}(doc)
	}

	wg.Wait()
	pool.Close()

	success := 0
	for range docs {
		if <-results {
			success++
		}
	}
	fmt.Printf("Processed %d documents\n", success)
	// Output: Processed 2 documents
}

// ExampleNewStyleLoader demonstrates stylesheet resolution with a custom
// directory. An empty base path serves the embedded styles only.
func ExampleNewStyleLoader() {
	loader, err := printmd.NewStyleLoader("")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	css, err := loader.LoadStyle("github")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if len(css) > 0 {
		fmt.Println("Stylesheet loaded")
	}
	// Output: Stylesheet loaded
}
