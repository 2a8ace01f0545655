package printmd

import (
	"time"

	"github.com/printmd/printmd/internal/dateutil"
)

// ResolveDate handles "auto" and "auto:FORMAT" syntax for footer date values.
// - "auto" → current date in YYYY-MM-DD format
// - "auto:FORMAT" → current date in custom format (e.g., "auto:DD/MM/YYYY")
// - "auto:preset" → current date using named preset (iso, european, us, long, full)
// - any other value → returned unchanged (passthrough)
//
// The time parameter allows injecting a fixed time for testing.
func ResolveDate(value string, t time.Time) (string, error) {
	return dateutil.ResolveDate(value, t)
}
