package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/nvell/mdpdf/internal/assets"
)

// doctorResult is the full diagnostic report, shaped for both the text
// and the --json renderings.
type doctorResult struct {
	Status   string      `json:"status"` // ready, warnings, or errors
	Browser  browserInfo `json:"browser"`
	Env      envInfo     `json:"environment"`
	System   systemInfo  `json:"system"`
	Warnings []string    `json:"warnings,omitempty"`
	Errors   []string    `json:"errors,omitempty"`
}

// browserInfo describes the detected Chrome or Chromium binary.
type browserInfo struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
	Sandbox bool   `json:"sandbox"`
}

// envInfo captures platform and runtime environment signals.
type envInfo struct {
	OS            string `json:"os"`
	Arch          string `json:"arch"`
	Container     bool   `json:"container"`
	ContainerHint string `json:"container_hint,omitempty"` // which signal matched
	CI            bool   `json:"ci"`
	NoSandbox     string `json:"rod_no_sandbox"`
	BrowserBin    string `json:"rod_browser_bin"`
}

// systemInfo captures host checks that do not involve the browser.
type systemInfo struct {
	TempWritable  bool     `json:"temp_writable"`
	BundledStyles []string `json:"bundled_styles"`
}

func (r *doctorResult) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *doctorResult) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// runDoctorCmd renders environment diagnostics and returns an exit code:
// ExitSuccess when the setup can convert (warnings included), ExitGeneral
// when a check failed outright.
func runDoctorCmd(args []string, env *Environment) int {
	result := runDoctor(env)

	if slices.Contains(args, "--json") {
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(result)
	} else {
		printDoctorResult(env.Stdout, result)
	}

	if result.Status == "errors" {
		return ExitGeneral
	}
	return ExitSuccess
}

// runDoctor runs every check and derives the overall status.
func runDoctor(env *Environment) *doctorResult {
	r := &doctorResult{
		Env: envInfo{
			OS:         runtime.GOOS,
			Arch:       runtime.GOARCH,
			NoSandbox:  env.Getenv("ROD_NO_SANDBOX"),
			BrowserBin: env.Getenv("ROD_BROWSER_BIN"),
		},
	}

	r.checkBrowser(env)
	r.checkEnvironment(env)
	r.checkSystem()

	switch {
	case len(r.Errors) > 0:
		r.Status = "errors"
	case len(r.Warnings) > 0:
		r.Status = "warnings"
	default:
		r.Status = "ready"
	}
	return r
}

// checkBrowser locates the browser binary and probes its version.
// ROD_BROWSER_BIN wins over the PATH lookup.
func (r *doctorResult) checkBrowser(env *Environment) {
	path := r.Env.BrowserBin
	if path == "" {
		var ok bool
		if path, ok = env.LookPath(); !ok {
			r.errorf("Chrome/Chromium not found. Install Chrome or set ROD_BROWSER_BIN")
			return
		}
	}
	if _, err := os.Stat(path); err != nil {
		r.errorf("Browser not found at %s", path)
		return
	}

	r.Browser.Found = true
	r.Browser.Path = path
	r.Browser.Sandbox = r.Env.NoSandbox != "1"

	out, err := exec.Command(path, "--version").Output() // #nosec G204 -- detected browser path
	if err != nil {
		r.warnf("Could not get browser version: %v", err)
		return
	}
	r.Browser.Version = strings.TrimSpace(string(out))
}

// ciEnvVars are set by the CI systems we recognize.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL", "CIRCLECI"}

// checkEnvironment detects containers and CI, where Chrome usually needs
// its sandbox turned off.
func (r *doctorResult) checkEnvironment(env *Environment) {
	r.Env.Container, r.Env.ContainerHint = containerHint(env)

	for _, v := range ciEnvVars {
		if env.Getenv(v) != "" {
			r.Env.CI = true
			break
		}
	}

	if (r.Env.Container || r.Env.CI) && r.Env.NoSandbox != "1" {
		r.warnf("Container/CI detected but ROD_NO_SANDBOX not set. Set ROD_NO_SANDBOX=1")
	}
}

// containerHint reports whether this looks like a container and which
// signal matched. MDPDF_CONTAINER=1 forces detection for runtimes the
// built-in signals miss.
func containerHint(env *Environment) (bool, string) {
	if env.Getenv("MDPDF_CONTAINER") == "1" {
		return true, "MDPDF_CONTAINER=1"
	}
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true, "/.dockerenv"
	}
	if v := env.Getenv("container"); v != "" {
		return true, "container=" + v
	}
	if env.Getenv("KUBERNETES_SERVICE_HOST") != "" {
		return true, "KUBERNETES_SERVICE_HOST"
	}
	return false, ""
}

// checkSystem probes the temp directory and inventories bundled styles.
func (r *doctorResult) checkSystem() {
	probe := filepath.Join(os.TempDir(), "mdpdf-doctor-probe")
	if err := os.WriteFile(probe, []byte("ok"), 0o600); err != nil {
		r.errorf("Temp directory not writable: %s", os.TempDir())
	} else {
		r.System.TempWritable = true
		_ = os.Remove(probe)
	}

	r.System.BundledStyles = assets.BundledStyles()
}

// statusText maps a report status to the closing line of the text output.
var statusText = map[string]string{
	"ready":    "Ready to convert",
	"warnings": "Ready with warnings",
	"errors":   "Not ready (see errors above)",
}

// printDoctorResult renders the human-readable report.
func printDoctorResult(w io.Writer, r *doctorResult) {
	fmt.Fprintf(w, "mdpdf doctor\n\n")

	fmt.Fprintln(w, "Browser")
	if !r.Browser.Found {
		fmt.Fprintln(w, "  [ERROR] Not found")
	} else {
		fmt.Fprintf(w, "  [OK] Found at %s\n", r.Browser.Path)
		if r.Browser.Version != "" {
			fmt.Fprintf(w, "  [OK] Version: %s\n", r.Browser.Version)
		}
		if r.Browser.Sandbox {
			fmt.Fprintln(w, "  [OK] Sandbox: enabled")
		} else {
			fmt.Fprintln(w, "  [OK] Sandbox: disabled (ROD_NO_SANDBOX=1)")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Environment")
	fmt.Fprintf(w, "  [OK] Platform: %s/%s\n", r.Env.OS, r.Env.Arch)
	if r.Env.Container {
		fmt.Fprintf(w, "  [OK] Container: detected (%s)\n", r.Env.ContainerHint)
	}
	if r.Env.CI {
		fmt.Fprintln(w, "  [OK] CI: detected")
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "System")
	if r.System.TempWritable {
		fmt.Fprintln(w, "  [OK] Temp directory: writable")
	} else {
		fmt.Fprintln(w, "  [ERROR] Temp directory: not writable")
	}
	if len(r.System.BundledStyles) > 0 {
		fmt.Fprintf(w, "  [OK] Bundled styles: %s\n", strings.Join(r.System.BundledStyles, ", "))
	}
	fmt.Fprintln(w)

	printList(w, "Warnings:", "[WARN]", r.Warnings)
	printList(w, "Errors:", "[ERROR]", r.Errors)

	fmt.Fprintf(w, "Status: %s\n", statusText[r.Status])
}

// printList renders a labeled list, or nothing when it is empty.
func printList(w io.Writer, heading, tag string, entries []string) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintln(w, heading)
	for _, e := range entries {
		fmt.Fprintf(w, "  %s %s\n", tag, e)
	}
	fmt.Fprintln(w)
}
