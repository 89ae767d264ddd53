// Package fileutil holds the path predicates and naming helpers shared by
// the config, assets, and pipeline packages.
package fileutil

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// TempHTMLPath returns the path of the transient HTML file for the given PDF
// destination. The file is colocated with the destination so that a file://
// navigation resolves relative references against the same directory, and the
// name is derived from the destination so concurrent conversions to different
// destinations never collide.
//
// Examples:
//   - "/out/report.pdf"  -> "/out/.report.pdf.mdpdf.html"
//   - "notes.pdf"        -> ".notes.pdf.mdpdf.html"
func TempHTMLPath(destPath string) string {
	dir := filepath.Dir(destPath)
	base := filepath.Base(destPath)
	return filepath.Join(dir, "."+base+".mdpdf.html")
}

// FileURL converts an absolute filesystem path to a file:// URL.
// Handles both Unix and Windows paths, and percent-escapes characters such
// as spaces that are not valid in URLs.
func FileURL(absPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(absPath),
	}
	return u.String()
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath reports whether s looks like a file path rather than a bare
// name. Any path separator qualifies: "./custom.css", "sub/dir", and
// `C:\styles\print.css` are paths, "github" and "my-style" are names.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, `/\`)
}

// IsCSS reports whether s looks like inline CSS content rather than a
// style name or file path. A declaration block brace is the tell.
func IsCSS(s string) bool {
	return strings.Contains(s, "{")
}

// IsURL reports whether s is an http or https URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
