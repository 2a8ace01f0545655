package printmd

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"github.com/printmd/printmd/internal/fileutil"
)

// contentMeasurer reports the rendered height of the document's content
// container. found is false when the document has no such container.
type contentMeasurer interface {
	MeasureHeight(ctx context.Context, htmlContent string) (heightPx float64, found bool, err error)
}

// Compile-time interface check
var _ contentMeasurer = (*rodMeasurer)(nil)

// contentHeightJS reads the scroll height of the content container. The
// sentinel -1 signals an absent container, which the caller treats as a
// clean no-op rather than an error.
const contentHeightJS = `() => {
	const el = document.querySelector('.markdown-body');
	return el ? el.scrollHeight : -1;
}`

// measureSettle is how long the layout must hold still before the height is
// read. Fonts and images can shift the layout shortly after load.
const measureSettle = 300 * time.Millisecond

// rodMeasurer measures content height in headless Chrome on a shared renderer.
type rodMeasurer struct {
	renderer *rodRenderer
}

// newRodMeasurer creates a rodMeasurer on a shared renderer.
func newRodMeasurer(renderer *rodRenderer) *rodMeasurer {
	return &rodMeasurer{renderer: renderer}
}

// MeasureHeight loads the document in headless Chrome and reads the content
// container's scroll height in CSS pixels once the layout has settled.
func (m *rodMeasurer) MeasureHeight(ctx context.Context, htmlContent string) (float64, bool, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return 0, false, err
	}
	defer cleanup()

	r := m.renderer
	if err := r.ensureBrowser(); err != nil {
		return 0, false, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout, err := r.pageTimeout(ctx)
	if err != nil {
		return 0, false, err
	}

	// One deadline covers load, settle, and the height read.
	bounded := page.Timeout(timeout)
	if err := bounded.WaitLoad(); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := bounded.WaitStable(measureSettle); err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	obj, err := bounded.Eval(contentHeightJS)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrMeasureHeight, err)
	}

	height := obj.Value.Num()
	if height < 0 {
		return 0, false, nil
	}
	return height, true, nil
}
