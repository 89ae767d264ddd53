package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpdf [command] <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown files to PDF. Without a command, inputs are converted")
	fmt.Fprintln(w, "directly: mdpdf README.md")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert markdown files, directories, or globs to PDF")
	fmt.Fprintln(w, "  doctor      Check the environment for a working browser setup")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdpdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpdf convert <input>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown files to PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, directory (recursive), or glob like 'docs/**/*.md'")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output-dir <path>    Output directory, or a .pdf path for a single input")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path (searched in ., ~/.config/mdpdf)")
	fmt.Fprintln(w, "  -w, --workers <n>          Parallel conversions (0 = one per two CPU cores)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "  -s, --style <entry>        Extra stylesheet: path, bundled name, or inline CSS (repeatable)")
	fmt.Fprintln(w, "      --gh-style             Include the bundled GitHub stylesheet (default)")
	fmt.Fprintln(w, "      --no-gh-style          Disable the bundled GitHub stylesheet")
	fmt.Fprintln(w, "      --default-style        Include the bundled print typography stylesheet (default)")
	fmt.Fprintln(w, "      --no-default-style     Disable the bundled print typography stylesheet")
	fmt.Fprintln(w, "      --no-emoji             Leave :shortcode: emoji as literal text")
	fmt.Fprintln(w, "      --assets <dir>         Directory of custom styles and templates")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Header/Footer:")
	fmt.Fprintln(w, "      --header <path>        HTML fragment for the running header")
	fmt.Fprintln(w, "      --footer <path>        HTML fragment for the running footer")
	fmt.Fprintln(w, "      --h-height <size>      Header box height (CSS length, e.g. 20mm)")
	fmt.Fprintln(w, "      --f-height <size>      Footer box height (CSS length, e.g. 15mm)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "  -f, --format <name>        Page format: a3, a4, a5, letter, legal, tabloid, ledger")
	fmt.Fprintln(w, "      --orientation <s>      Orientation: portrait, landscape")
	fmt.Fprintln(w, "  -b, --border <size>        Margin on all edges (CSS length, default 20mm)")
	fmt.Fprintln(w, "      --border-top <size>    Top margin, overrides --border")
	fmt.Fprintln(w, "      --border-right <size>  Right margin, overrides --border")
	fmt.Fprintln(w, "      --border-bottom <size> Bottom margin, overrides --border")
	fmt.Fprintln(w, "      --border-left <size>   Left margin, overrides --border")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Mode:")
	fmt.Fprintln(w, "      --html-only            Write composed HTML instead of PDF, skip the browser")
	fmt.Fprintln(w, "      --debug <path>         Also write the composed body HTML to this path")
	fmt.Fprintln(w, "  -t, --timeout <dur>        Per-conversion deadline (Go duration, default 30s)")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show per-file timing and pool details")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPDF_CONFIG, MDPDF_STYLE, MDPDF_TIMEOUT, MDPDF_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDPDF_WORKERS, MDPDF_ASSETS override config file values; flags win.")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN selects the browser binary; ROD_NO_SANDBOX=1 disables")
	fmt.Fprintln(w, "  the sandbox for container and CI use.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: mdpdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check the environment: browser binary, sandbox settings, container/CI")
		fmt.Fprintln(env.Stdout, "detection, temp directory. --json emits machine-readable output.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdpdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdpdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
