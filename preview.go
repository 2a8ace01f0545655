package printmd

import (
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/printmd/printmd/internal/pipeline"
)

// Preview is the result of a print preview pass: the rendered document with
// page-break markers layered over it, and the estimate behind them.
type Preview struct {
	// HTML is the annotated document. When the content container is absent
	// the document is returned unannotated.
	HTML string

	// ContentHeightPx is the measured height of the content container in
	// CSS pixels. Zero when the container is absent.
	ContentHeightPx float64

	// PageHeightPx is the printable height of one page in CSS pixels.
	PageHeightPx float64

	// PageCount is the estimated number of printed pages.
	PageCount int

	// Markers are the estimated page boundaries in ascending index order.
	// Content that fits on a single page has none.
	Markers []BreakMarker
}

// markerSink renders an ordered marker sequence into a document.
type markerSink interface {
	InjectMarkers(htmlContent string, markers iter.Seq[BreakMarker]) string
}

// Compile-time interface check
var _ markerSink = (*overlayMarkerSink)(nil)

// overlayMarkerSink appends one absolutely positioned div per marker before
// </body>. Position and the corrective margin are inline per marker;
// appearance comes from the preview overlay stylesheet.
type overlayMarkerSink struct{}

// InjectMarkers renders the markers into htmlContent. An empty sequence
// returns the document unchanged.
func (overlayMarkerSink) InjectMarkers(htmlContent string, markers iter.Seq[BreakMarker]) string {
	var buf strings.Builder
	for m := range markers {
		writeMarkerDiv(&buf, m)
	}
	if buf.Len() == 0 {
		return htmlContent
	}
	return pipeline.AppendBody(htmlContent, buf.String())
}

// writeMarkerDiv emits the overlay element for one page boundary. data-page
// holds the zero-based page index, --page-number exposes the 1-based page
// number to the stylesheet, and the label names the page starting below
// the line.
func writeMarkerDiv(buf *strings.Builder, m BreakMarker) {
	top := strconv.FormatFloat(m.TopOffsetPx, 'f', -1, 64)
	fmt.Fprintf(buf,
		`<div class="page-break-marker" data-page="%d" style="top:%spx;margin-top:%dpx;--page-number:%d;"><span class="page-break-label">Page %d</span></div>`,
		m.Index, top, m.MarginTopPx, m.Index+1, m.Index+1)
}
