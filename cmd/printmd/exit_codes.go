package main

import (
	"errors"
	"os"

	"github.com/printmd/printmd"
	"github.com/printmd/printmd/internal/config"
	"github.com/printmd/printmd/internal/dateutil"
	"github.com/printmd/printmd/internal/spool"
)

// Exit codes returned by the CLI. Scripts dispatch on these, so the
// values are part of the interface and must stay stable.
const (
	ExitSuccess = 0 // Successful execution
	ExitGeneral = 1 // Unexpected error
	ExitUsage   = 2 // Invalid flags, config, or input validation
	ExitIO      = 3 // File not found, permission denied, write failure
	ExitBrowser = 4 // Browser launch, page load, or PDF generation failure
	ExitPrinter = 5 // Spooler missing or print submission failure
)

// exitCodeFor maps an error to the appropriate exit code by checking
// sentinel errors from most specific to least.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Printer errors (exit 5)
	if errors.Is(err, spool.ErrNoSpooler) ||
		errors.Is(err, spool.ErrDispatch) {
		return ExitPrinter
	}

	// Browser errors (exit 4)
	if errors.Is(err, printmd.ErrBrowserConnect) ||
		errors.Is(err, printmd.ErrPageCreate) ||
		errors.Is(err, printmd.ErrPageLoad) ||
		errors.Is(err, printmd.ErrPDFGeneration) ||
		errors.Is(err, printmd.ErrMeasureHeight) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage and validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, printmd.ErrEmptyMarkdown) ||
		errors.Is(err, printmd.ErrInvalidPageSize) ||
		errors.Is(err, printmd.ErrInvalidOrientation) ||
		errors.Is(err, printmd.ErrInvalidMargin) ||
		errors.Is(err, printmd.ErrInvalidFooterPosition) ||
		errors.Is(err, printmd.ErrInvalidPageBreaks) ||
		errors.Is(err, printmd.ErrStyleNotFound) ||
		errors.Is(err, printmd.ErrInvalidAssetPath) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrInvalidArguments) {
		return ExitUsage
	}

	return ExitGeneral
}
