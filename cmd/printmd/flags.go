package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared by every command.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags.
type pageFlags struct {
	size        string
	orientation string
	margin      float64
}

// styleFlags holds stylesheet selection flags.
type styleFlags struct {
	name     string
	cssFile  string
	assetDir string
}

// pageBreakFlags holds page break control flags.
type pageBreakFlags struct {
	breakBefore string
	orphans     int
	widows      int
}

// footerFlags holds footer content flags.
type footerFlags struct {
	position   string
	date       string
	text       string
	pageNumber bool
	disabled   bool
}

// printFlags holds all flags accepted by the print command.
type printFlags struct {
	common     commonFlags
	page       pageFlags
	style      styleFlags
	pageBreaks pageBreakFlags
	footer     footerFlags
	title      string
	timeout    string
	printer    string
	wait       int
	keepPDF    string
}

// previewFlags holds all flags accepted by the preview command.
type previewFlags struct {
	common     commonFlags
	page       pageFlags
	style      styleFlags
	pageBreaks pageBreakFlags
	title      string
	timeout    string
	output     string
	open       bool
	noMarkers  bool
}

// pdfFlags holds all flags accepted by the pdf command.
type pdfFlags struct {
	common     commonFlags
	page       pageFlags
	style      styleFlags
	pageBreaks pageBreakFlags
	footer     footerFlags
	title      string
	timeout    string
	output     string
	workers    int
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config name or path to a YAML config file")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show diagnostic logging and timings")
}

func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.Float64Var(&f.margin, "margin", 0, "page margin in inches (0.25 to 3.0)")
}

func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.StringVarP(&f.name, "style", "s", "", "stylesheet name or path to a CSS file")
	fs.StringVar(&f.cssFile, "css", "", "extra CSS file appended after the stylesheet")
	fs.StringVar(&f.assetDir, "asset-dir", "", "directory with custom styles/ to use instead of the embedded set")
}

func addPageBreakFlags(fs *flag.FlagSet, f *pageBreakFlags) {
	fs.StringVar(&f.breakBefore, "break-before", "", "force page breaks before headings, comma-separated: h1,h2,h3")
	fs.IntVar(&f.orphans, "orphans", 0, "minimum lines kept at the bottom of a page")
	fs.IntVar(&f.widows, "widows", 0, "minimum lines kept at the top of a page")
}

func addFooterFlags(fs *flag.FlagSet, f *footerFlags) {
	fs.StringVar(&f.position, "footer-position", "", "footer position: left, center, right")
	fs.StringVar(&f.date, "footer-date", "", "footer date: auto, auto:FORMAT, or literal text")
	fs.StringVar(&f.text, "footer-text", "", "custom footer text")
	fs.BoolVar(&f.pageNumber, "footer-page-number", false, "show page numbers in the footer")
	fs.BoolVar(&f.disabled, "no-footer", false, "disable the footer entirely")
}

func addRenderFlags(fs *flag.FlagSet, title, timeout *string) {
	fs.StringVar(title, "title", "", "document title (default: first heading)")
	fs.StringVarP(timeout, "timeout", "t", "", "rendering timeout, e.g. 30s or 2m")
}

// parseArgs runs the flag set and tags parse failures so they map to the
// usage exit code. Help requests pass through for a clean exit.
func parseArgs(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidArguments, err)
}

// parsePrintFlags parses flags for the print command and returns the
// remaining positional arguments.
func parsePrintFlags(args []string, errOut io.Writer) (*printFlags, []string, error) {
	fs := flag.NewFlagSet("print", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &printFlags{}

	fs.StringVarP(&f.printer, "printer", "d", "", "printer name (default: system default printer)")
	fs.IntVarP(&f.wait, "wait", "w", 0, "seconds to wait for the spooler before cleaning up the temp PDF")
	fs.StringVar(&f.keepPDF, "keep-pdf", "", "also save the rendered PDF to this path")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)
	addPageBreakFlags(fs, &f.pageBreaks)
	addFooterFlags(fs, &f.footer)
	addRenderFlags(fs, &f.title, &f.timeout)

	fs.Usage = func() { printPrintUsage(errOut) }

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePreviewFlags parses flags for the preview command.
func parsePreviewFlags(args []string, errOut io.Writer) (*previewFlags, []string, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &previewFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output HTML path (default: input name with .html)")
	fs.BoolVar(&f.open, "open", false, "open the preview in the default browser")
	fs.BoolVar(&f.noMarkers, "no-markers", false, "skip page break estimation and markers")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)
	addPageBreakFlags(fs, &f.pageBreaks)
	addRenderFlags(fs, &f.title, &f.timeout)

	fs.Usage = func() { printPreviewUsage(errOut) }

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parsePDFFlags parses flags for the pdf command.
func parsePDFFlags(args []string, errOut io.Writer) (*pdfFlags, []string, error) {
	fs := flag.NewFlagSet("pdf", flag.ContinueOnError)
	fs.SetOutput(errOut)
	f := &pdfFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path, or directory for batch conversion")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel renderers for batch conversion (default: CPU count / 2)")

	addCommonFlags(fs, &f.common)
	addPageFlags(fs, &f.page)
	addStyleFlags(fs, &f.style)
	addPageBreakFlags(fs, &f.pageBreaks)
	addFooterFlags(fs, &f.footer)
	addRenderFlags(fs, &f.title, &f.timeout)

	fs.Usage = func() { printPDFUsage(errOut) }

	if err := parseArgs(fs, args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
