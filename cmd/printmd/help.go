package main

import (
	"fmt"
	"io"
)

// printUsage shows the top-level command summary.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "printmd - print markdown files with professional formatting")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  printmd <command> [flags] [arguments]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  print    Render a markdown file to PDF and send it to a printer")
	fmt.Fprintln(w, "  preview  Render an HTML preview with estimated page break markers")
	fmt.Fprintln(w, "  pdf      Render markdown files to PDF")
	fmt.Fprintln(w, "  doctor   Diagnose browser, spooler, and environment problems")
	fmt.Fprintln(w, "  version  Show version information")
	fmt.Fprintln(w, "  help     Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'printmd help <command>' for command-specific flags.")
}

func printPrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printmd print [flags] <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders the markdown file to PDF and submits it to the print spooler.")
	fmt.Fprintln(w, "Without Chrome available, saves an HTML preview and opens it in the")
	fmt.Fprintln(w, "default browser for manual printing.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -d, --printer <name>        printer name (default: system default printer)")
	fmt.Fprintln(w, "  -w, --wait <seconds>        wait for the spooler before removing the temp PDF")
	fmt.Fprintln(w, "      --keep-pdf <path>       also save the rendered PDF to this path")
	fmt.Fprintln(w, "  -s, --style <name|path>     stylesheet name or CSS file path")
	fmt.Fprintln(w, "      --css <path>            extra CSS appended after the stylesheet")
	fmt.Fprintln(w, "      --asset-dir <path>      directory with custom styles/")
	fmt.Fprintln(w, "  -p, --page-size <size>      letter, a4, or legal")
	fmt.Fprintln(w, "      --orientation <o>       portrait or landscape")
	fmt.Fprintln(w, "      --margin <inches>       page margin, 0.25 to 3.0")
	fmt.Fprintln(w, "      --break-before <list>   page breaks before headings: h1,h2,h3")
	fmt.Fprintln(w, "      --orphans <n>           minimum lines at the bottom of a page")
	fmt.Fprintln(w, "      --widows <n>            minimum lines at the top of a page")
	fmt.Fprintln(w, "      --footer-position <p>   left, center, or right")
	fmt.Fprintln(w, "      --footer-date <spec>    auto, auto:FORMAT, or literal text")
	fmt.Fprintln(w, "      --footer-text <text>    custom footer text")
	fmt.Fprintln(w, "      --footer-page-number    show page numbers in the footer")
	fmt.Fprintln(w, "      --no-footer             disable the footer entirely")
	fmt.Fprintln(w, "      --title <text>          document title (default: first heading)")
	fmt.Fprintln(w, "  -t, --timeout <duration>    rendering timeout, e.g. 30s or 2m")
	fmt.Fprintln(w, "  -c, --config <name|path>    config name or path to a YAML config")
	fmt.Fprintln(w, "  -q, --quiet                 only show errors")
	fmt.Fprintln(w, "  -v, --verbose               show diagnostic logging and timings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  printmd print report.md")
	fmt.Fprintln(w, "  printmd print -d Office_Laser --footer-page-number report.md")
	fmt.Fprintln(w, "  printmd print --keep-pdf report.pdf report.md")
}

func printPreviewUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printmd preview [flags] <file.md>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders a styled HTML preview with markers showing where the printed")
	fmt.Fprintln(w, "page breaks will fall. Marker positions are estimates.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>         output HTML path (default: input name with .html)")
	fmt.Fprintln(w, "      --open                  open the preview in the default browser")
	fmt.Fprintln(w, "      --no-markers            skip page break estimation and markers")
	fmt.Fprintln(w, "  -s, --style <name|path>     stylesheet name or CSS file path")
	fmt.Fprintln(w, "      --css <path>            extra CSS appended after the stylesheet")
	fmt.Fprintln(w, "      --asset-dir <path>      directory with custom styles/")
	fmt.Fprintln(w, "  -p, --page-size <size>      letter, a4, or legal")
	fmt.Fprintln(w, "      --orientation <o>       portrait or landscape")
	fmt.Fprintln(w, "      --margin <inches>       page margin, 0.25 to 3.0")
	fmt.Fprintln(w, "      --break-before <list>   page breaks before headings: h1,h2,h3")
	fmt.Fprintln(w, "      --orphans <n>           minimum lines at the bottom of a page")
	fmt.Fprintln(w, "      --widows <n>            minimum lines at the top of a page")
	fmt.Fprintln(w, "      --title <text>          document title (default: first heading)")
	fmt.Fprintln(w, "  -t, --timeout <duration>    rendering timeout, e.g. 30s or 2m")
	fmt.Fprintln(w, "  -c, --config <name|path>    config name or path to a YAML config")
	fmt.Fprintln(w, "  -q, --quiet                 only show errors")
	fmt.Fprintln(w, "  -v, --verbose               show diagnostic logging and timings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  printmd preview report.md --open")
	fmt.Fprintln(w, "  printmd preview -o /tmp/check.html -p a4 report.md")
}

func printPDFUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printmd pdf [flags] <file.md | directory>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Renders markdown to PDF. Given a directory, converts every .md and")
	fmt.Fprintln(w, ".markdown file recursively, mirroring the directory structure under")
	fmt.Fprintln(w, "the output directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>         output PDF path, or directory for batch runs")
	fmt.Fprintln(w, "  -w, --workers <n>           parallel renderers (default: CPU count / 2)")
	fmt.Fprintln(w, "  -s, --style <name|path>     stylesheet name or CSS file path")
	fmt.Fprintln(w, "      --css <path>            extra CSS appended after the stylesheet")
	fmt.Fprintln(w, "      --asset-dir <path>      directory with custom styles/")
	fmt.Fprintln(w, "  -p, --page-size <size>      letter, a4, or legal")
	fmt.Fprintln(w, "      --orientation <o>       portrait or landscape")
	fmt.Fprintln(w, "      --margin <inches>       page margin, 0.25 to 3.0")
	fmt.Fprintln(w, "      --break-before <list>   page breaks before headings: h1,h2,h3")
	fmt.Fprintln(w, "      --orphans <n>           minimum lines at the bottom of a page")
	fmt.Fprintln(w, "      --widows <n>            minimum lines at the top of a page")
	fmt.Fprintln(w, "      --footer-position <p>   left, center, or right")
	fmt.Fprintln(w, "      --footer-date <spec>    auto, auto:FORMAT, or literal text")
	fmt.Fprintln(w, "      --footer-text <text>    custom footer text")
	fmt.Fprintln(w, "      --footer-page-number    show page numbers in the footer")
	fmt.Fprintln(w, "      --no-footer             disable the footer entirely")
	fmt.Fprintln(w, "      --title <text>          document title (default: first heading)")
	fmt.Fprintln(w, "  -t, --timeout <duration>    rendering timeout, e.g. 30s or 2m")
	fmt.Fprintln(w, "  -c, --config <name|path>    config name or path to a YAML config")
	fmt.Fprintln(w, "  -q, --quiet                 only show errors")
	fmt.Fprintln(w, "  -v, --verbose               show per-file timings")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  printmd pdf report.md")
	fmt.Fprintln(w, "  printmd pdf -o out/ -w 4 docs/")
	fmt.Fprintln(w, "  printmd pdf --footer-page-number --footer-date auto report.md")
}

func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: printmd doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Checks for a usable browser engine, a print spooler, container and")
	fmt.Fprintln(w, "CI environments, and temp directory writability.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --json   output diagnostics as JSON")
}

// runHelp shows help for a specific command, or the general usage.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}
	switch args[0] {
	case "print":
		printPrintUsage(env.Stdout)
	case "preview":
		printPreviewUsage(env.Stdout)
	case "pdf":
		printPDFUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		printUsage(env.Stdout)
	}
}
