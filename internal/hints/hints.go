// Package hints attaches short remediation notes to CLI error output.
// Every hint renders as "\n  hint: <text>" so callers append it directly to
// the error line.
package hints

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nvell/mdpdf/internal/fileutil"
)

const prefix = "\n  hint: "

// IsInContainer reports whether the process runs inside a container.
// Docker drops /.dockerenv at the filesystem root; that file is the signal.
// Declared as a variable so tests can stub the detection.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ciEnvVars mark the CI systems worth recognizing for sandbox advice.
var ciEnvVars = []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"}

func inCI() bool {
	for _, v := range ciEnvVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests environment fixes when Chrome cannot be
// launched or reached. Containers and CI runners usually need the sandbox
// disabled; a custom binary can be pointed at via ROD_BROWSER_BIN.
func ForBrowserConnect() string {
	var parts []string

	if (inCI() || IsInContainer()) && os.Getenv("ROD_NO_SANDBOX") != "1" {
		parts = append(parts, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if os.Getenv("ROD_BROWSER_BIN") == "" {
		parts = append(parts, "set ROD_BROWSER_BIN to use custom Chrome")
	}

	if len(parts) == 0 {
		return ""
	}
	return prefix + strings.Join(parts, "; ")
}

// ForTimeout points at the --timeout flag when a conversion ran out of time.
func ForTimeout() string {
	return prefix + "for large documents, use --timeout flag"
}

// ForConfigNotFound suggests the --config flag and, when the searched paths
// include the user config directory, creating the file there.
func ForConfigNotFound(searchedPaths []string) string {
	h := prefix + "use --config /path/to/file.yaml"

	userDir := filepath.Join(".config", "mdpdf")
	for _, p := range searchedPaths {
		if strings.Contains(p, userDir) {
			return h + " or create " + p
		}
	}
	return h
}

// ForOutputDirectory covers failures creating or writing into the output
// location.
func ForOutputDirectory() string {
	return prefix + "check that the parent directory exists and is writable"
}

// ForStyleNotFound lists the bundled style names so the user can pick one
// that exists.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return prefix + "available: " + strings.Join(available, ", ")
}
