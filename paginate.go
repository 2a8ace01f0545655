package printmd

import (
	"iter"
	"math"
)

// previewDPI is the CSS pixel density Chromium assumes when it lays out
// content for print.
const previewDPI = 96.0

// maxPageCount bounds the estimate so a corrupt height measurement cannot
// produce an effectively unbounded marker sequence.
const maxPageCount = 1 << 20

// Drift-correction constants for preview page-break markers. Headings,
// code blocks, and tables avoid breaking across pages, so the real breaks
// drift away from the ideal index*pageHeight grid as the page index grows.
// Each marker carries a corrective top margin that decays over the
// document to compensate. The values were tuned against Chromium's print
// output and have no closed-form derivation.
const (
	initialMarkerMargin = 60   // margin-top of the first marker, px
	initialMarginStep   = 96   // per-boundary correction step, px
	marginStepDecay     = 56   // step shrink applied every stepAdjustWindow boundaries, px
	marginFloor         = -240 // accumulated margin at or below this resets the correction, px
	resetMarginStep     = 40   // correction step after a floor reset, px
	stepAdjustWindow    = 5    // boundaries between step adjustments
)

// PageGeometry describes the printable area of a single page in CSS
// pixels at screen density.
type PageGeometry struct {
	// PageHeightPx is the content height of one printed page: the paper
	// height minus the top and bottom margins, converted at 96 DPI.
	PageHeightPx float64
}

// Geometry reports the printable area these settings produce. A nil
// receiver uses the default page settings.
func (p *PageSettings) Geometry() PageGeometry {
	_, paperHeight := p.paperSize()
	height := (paperHeight - 2*p.margin()) * previewDPI
	if height < 0 {
		height = 0
	}
	return PageGeometry{PageHeightPx: height}
}

// BreakMarker marks an estimated boundary where one printed page ends and
// the next begins, in document coordinates.
type BreakMarker struct {
	// Index is the zero-based ordinal of the page that starts at this
	// boundary. The first page has no leading boundary, so Index >= 1.
	Index int

	// TopOffsetPx is the uncorrected boundary position measured from the
	// top of the document: Index times the page height.
	TopOffsetPx float64

	// MarginTopPx is the corrective margin layered on top of TopOffsetPx
	// so the marker tracks Chromium's real fragmentation instead of the
	// ideal grid.
	MarginTopPx int
}

// PageCount reports how many printed pages content of the given height
// fills. Zero, negative, or non-finite inputs count as zero pages.
func PageCount(contentHeightPx, pageHeightPx float64) int {
	if !usableSize(contentHeightPx) || !usableSize(pageHeightPx) {
		return 0
	}
	pages := math.Ceil(contentHeightPx / pageHeightPx)
	if pages > maxPageCount {
		return maxPageCount
	}
	return int(pages)
}

func usableSize(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// markerCorrection accumulates drift correction across page boundaries.
// It is local to one estimation pass; the zero value is not usable.
type markerCorrection struct {
	marginTop int // margin applied to the next marker, px
	step      int // decrement applied after each boundary, px
	count     int // boundaries seen since the last step adjustment
}

func newMarkerCorrection() markerCorrection {
	return markerCorrection{marginTop: initialMarkerMargin, step: initialMarginStep}
}

// advance consumes one page index and returns the corrective margin for
// its marker. Indices must be fed in order starting at zero: index zero
// advances the state but its return value is discarded, because the first
// page gets no marker.
func (c *markerCorrection) advance(index int) int {
	c.count++
	margin := c.marginTop
	if index > 0 {
		c.marginTop -= c.step
	}
	if index >= 2 && c.count >= stepAdjustWindow {
		c.count = 0
		c.step -= marginStepDecay
		if c.marginTop <= marginFloor {
			c.marginTop = 0
			c.step = resetMarginStep
		}
	}
	return margin
}

// EstimateBreaks returns the estimated page boundaries for content of the
// given height laid out on pages of the given height. The sequence is
// finite, yields markers in ascending index order starting at 1, and is
// a pure function of its inputs. Content that fits on a single page
// yields no markers.
func EstimateBreaks(contentHeightPx, pageHeightPx float64) iter.Seq[BreakMarker] {
	return func(yield func(BreakMarker) bool) {
		pages := PageCount(contentHeightPx, pageHeightPx)
		correction := newMarkerCorrection()
		for i := range pages {
			margin := correction.advance(i)
			if i == 0 {
				continue
			}
			marker := BreakMarker{
				Index:       i,
				TopOffsetPx: float64(i) * pageHeightPx,
				MarginTopPx: margin,
			}
			if !yield(marker) {
				return
			}
		}
	}
}
