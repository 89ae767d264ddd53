package main

import (
	flag "github.com/spf13/pflag"
)

// convertFlags holds all parsed convert flags, grouped by concern.
type convertFlags struct {
	outputDir string
	config    string
	workers   int

	style  styleFlags
	chrome chromeFlags
	page   pageFlags
	mode   modeFlags
}

// styleFlags controls which stylesheets the document carries.
type styleFlags struct {
	gh       bool     // --gh-style (on by default)
	noGh     bool     // --no-gh-style
	def      bool     // --default-style (on by default)
	noDef    bool     // --no-default-style
	noEmoji  bool     // --no-emoji
	extra    []string // --style, repeatable
	assetDir string   // --assets
}

// chromeFlags controls the running header and footer.
type chromeFlags struct {
	header       string // --header
	footer       string // --footer
	headerHeight string // --h-height
	footerHeight string // --f-height
}

// pageFlags controls page geometry.
type pageFlags struct {
	format       string // --format
	orientation  string // --orientation
	border       string // --border, all four edges
	borderTop    string // --border-top
	borderRight  string // --border-right
	borderBottom string // --border-bottom
	borderLeft   string // --border-left
}

// modeFlags controls output mode and verbosity.
type modeFlags struct {
	debugHTML string // --debug
	htmlOnly  bool   // --html-only
	timeout   string // --timeout
	quiet     bool   // --quiet
	verbose   bool   // --verbose
}

// addStyleFlags registers styling flags on the flag set.
func addStyleFlags(fs *flag.FlagSet, f *styleFlags) {
	fs.BoolVar(&f.gh, "gh-style", true, "include the bundled GitHub stylesheet")
	fs.BoolVar(&f.noGh, "no-gh-style", false, "disable the bundled GitHub stylesheet")
	fs.BoolVar(&f.def, "default-style", true, "include the bundled print typography stylesheet")
	fs.BoolVar(&f.noDef, "no-default-style", false, "disable the bundled print typography stylesheet")
	fs.BoolVar(&f.noEmoji, "no-emoji", false, "leave :shortcode: emoji as literal text")
	fs.StringArrayVarP(&f.extra, "style", "s", nil, "extra stylesheet: file path, bundled name, or inline CSS (repeatable)")
	fs.StringVar(&f.assetDir, "assets", "", "directory of custom styles and templates (falls back to bundled)")
}

// addChromeFlags registers header/footer flags on the flag set.
func addChromeFlags(fs *flag.FlagSet, f *chromeFlags) {
	fs.StringVar(&f.header, "header", "", "HTML fragment file for the running header")
	fs.StringVar(&f.footer, "footer", "", "HTML fragment file for the running footer")
	fs.StringVar(&f.headerHeight, "h-height", "", "header box height as a CSS length (e.g. 20mm)")
	fs.StringVar(&f.footerHeight, "f-height", "", "footer box height as a CSS length (e.g. 15mm)")
}

// addPageFlags registers page geometry flags on the flag set.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "page format: a3, a4, a5, letter, legal, tabloid, ledger")
	fs.StringVar(&f.orientation, "orientation", "", "page orientation: portrait, landscape")
	fs.StringVarP(&f.border, "border", "b", "", "margin on all four edges as a CSS length (e.g. 20mm)")
	fs.StringVar(&f.borderTop, "border-top", "", "top margin, overrides --border")
	fs.StringVar(&f.borderRight, "border-right", "", "right margin, overrides --border")
	fs.StringVar(&f.borderBottom, "border-bottom", "", "bottom margin, overrides --border")
	fs.StringVar(&f.borderLeft, "border-left", "", "left margin, overrides --border")
}

// addModeFlags registers output mode and verbosity flags on the flag set.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.StringVar(&f.debugHTML, "debug", "", "also write the composed body HTML to this path")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML next to the destination and skip the browser")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-conversion deadline as a Go duration (default 30s)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file timing and pool details")
}

// newConvertFlagSet builds the convert flag set. Shared between flag parsing
// and completion generation so both see the same surface.
func newConvertFlagSet() (*flag.FlagSet, *convertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.outputDir, "output-dir", "o", "", "output directory, or a .pdf path for a single input")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel conversions (0 = one per two CPU cores)")

	addStyleFlags(fs, &f.style)
	addChromeFlags(fs, &f.chrome)
	addPageFlags(fs, &f.page)
	addModeFlags(fs, &f.mode)

	return fs, f
}

// parseConvertFlags parses convert arguments. Returns the parsed flags, the
// positional inputs, and the flag set (callers consult Changed for booleans
// that can also come from config files).
func parseConvertFlags(args []string, env *Environment) (*convertFlags, []string, *flag.FlagSet, error) {
	fs, f := newConvertFlagSet()
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printConvertUsage(env.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	return f, fs.Args(), fs, nil
}
