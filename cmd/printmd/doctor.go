package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/launcher"
	flag "github.com/spf13/pflag"

	"github.com/printmd/printmd/internal/spool"
)

// doctorResult aggregates environment diagnostics for the doctor command.
type doctorResult struct {
	Chrome   chromeInfo  `json:"chrome"`
	Spooler  spoolerInfo `json:"spooler"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

type chromeInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

type spoolerInfo struct {
	Found   bool   `json:"found"`
	Command string `json:"command,omitempty"`
}

type envInfo struct {
	CI        bool `json:"ci"`
	Container bool `json:"container"`
}

type systemInfo struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	NumCPU       int    `json:"num_cpu"`
	GoVersion    string `json:"go_version"`
	TempWritable bool   `json:"temp_writable"`
}

// ciVars are environment variables that indicate a CI environment.
var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// chromeVersionTimeout bounds the chrome --version subprocess.
const chromeVersionTimeout = 5 * time.Second

// runDoctor diagnoses the environment: browser availability, print
// spooler, CI/container detection, and temp directory writability.
func runDoctor(args []string, env *Environment) int {
	fs := flag.NewFlagSet("doctor", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	jsonOut := fs.Bool("json", false, "output diagnostics as JSON")
	fs.Usage = func() { printDoctorUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		return ExitUsage
	}

	result := collectDiagnostics()

	if *jsonOut {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v\n", err)
			return ExitGeneral
		}
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if len(result.Errors) > 0 {
		return ExitGeneral
	}
	return ExitSuccess
}

func collectDiagnostics() *doctorResult {
	result := &doctorResult{
		System: systemInfo{
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
			NumCPU:    runtime.NumCPU(),
			GoVersion: runtime.Version(),
		},
	}

	checkChrome(result)
	checkSpooler(result)
	checkEnvironment(result)
	checkTempDir(result)

	return result
}

// checkChrome locates a Chrome or Chromium binary and asks it for its
// version. Absence is a warning rather than an error because rod
// downloads a managed browser on first use.
func checkChrome(result *doctorResult) {
	path, found := launcher.LookPath()
	if !found {
		result.Warnings = append(result.Warnings,
			"No Chrome or Chromium found; one will be downloaded on first use, or set ROD_BROWSER_BIN to use an existing install")
		return
	}
	result.Chrome.Found = true
	result.Chrome.Path = path

	ctx, cancel := context.WithTimeout(context.Background(), chromeVersionTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, path, "--version").Output() // #nosec G204 -- path from launcher.LookPath
	if err == nil {
		result.Chrome.Version = strings.TrimSpace(string(out))
	}
}

// checkSpooler looks for the platform print command. Its absence only
// degrades the print command, so it is a warning.
func checkSpooler(result *doctorResult) {
	command, ok := spool.Available()
	if !ok {
		result.Warnings = append(result.Warnings,
			"No print spooler found (install CUPS for lp/lpr); the print command will save a PDF instead of printing")
		return
	}
	result.Spooler.Found = true
	result.Spooler.Command = command
}

func checkEnvironment(result *doctorResult) {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			result.Env.CI = true
			break
		}
	}
	result.Env.Container = isContainer()

	if result.Env.Container && !result.Chrome.Found {
		result.Warnings = append(result.Warnings,
			"Running in a container without Chrome; install chromium in the image and set ROD_BROWSER_BIN")
	}
}

// isContainer detects container environments via the PRINTMD_CONTAINER
// override and common runtime signals.
func isContainer() bool {
	if os.Getenv("PRINTMD_CONTAINER") == "1" {
		return true
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	if os.Getenv("container") != "" {
		return true
	}
	if os.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true
	}
	return false
}

// checkTempDir verifies the temp directory is writable, since rendered
// HTML and PDFs are staged there.
func checkTempDir(result *doctorResult) {
	f, err := os.CreateTemp("", "printmd-doctor-*")
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Temp directory is not writable: %v", err))
		return
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	result.System.TempWritable = true
}

func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintln(w, "printmd doctor")
	fmt.Fprintln(w)

	if r.Chrome.Found {
		fmt.Fprintf(w, "[OK]    Chrome: %s\n", r.Chrome.Path)
		if r.Chrome.Version != "" {
			fmt.Fprintf(w, "        Version: %s\n", r.Chrome.Version)
		}
	} else {
		fmt.Fprintln(w, "[WARN]  Chrome: not found")
	}

	if r.Spooler.Found {
		fmt.Fprintf(w, "[OK]    Spooler: %s\n", r.Spooler.Command)
	} else {
		fmt.Fprintln(w, "[WARN]  Spooler: not found")
	}

	fmt.Fprintf(w, "[OK]    System: %s/%s, %d CPUs, %s\n", r.System.OS, r.System.Arch, r.System.NumCPU, r.System.GoVersion)

	if r.System.TempWritable {
		fmt.Fprintln(w, "[OK]    Temp directory: writable")
	} else {
		fmt.Fprintln(w, "[ERROR] Temp directory: not writable")
	}

	if r.Env.CI {
		fmt.Fprintln(w, "        CI environment detected")
	}
	if r.Env.Container {
		fmt.Fprintln(w, "        Container environment detected")
	}

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w)
		for _, warning := range r.Warnings {
			fmt.Fprintf(w, "Warning: %s\n", warning)
		}
	}
	if len(r.Errors) > 0 {
		fmt.Fprintln(w)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "Error: %s\n", e)
		}
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Everything looks good")
}
