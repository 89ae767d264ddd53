package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell identifies a completion target shell.
type Shell string

// Shells with a generator in completion_scripts.go.
const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// ErrUnsupportedShell reports a completion request for a shell no
// generator exists for.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType selects the completion strategy for a flag's argument.
type flagType int

const (
	flagString flagType = iota // free-form argument
	flagBool                   // no argument
	flagInt                    // numeric argument
	flagEnum                   // one of Values
	flagFile                   // path matching FileGlob
	flagDir                    // directory path
)

// flagDef is one flag as the shell generators see it.
type flagDef struct {
	Long     string // spelled --long
	Short    string // single letter, "" when absent
	Desc     string
	Type     flagType
	Values   []string // candidates when Type is flagEnum
	FileGlob string   // comma-separated patterns when Type is flagFile
	Repeat   bool     // the flag may be given more than once
}

// commandDef is one subcommand as the shell generators see it.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	TakesFiles  bool   // positional arguments complete as files
	FilePattern string // comma-separated globs for those positionals
}

// Completion hints, keyed by flag name. Everything else about a flag,
// the short form, usage text, and value kind, comes out of the convert
// FlagSet, so these maps never duplicate flag registration.
var (
	enumFlagValues = map[string][]string{
		"format":      {"a3", "a4", "a5", "letter", "legal", "tabloid", "ledger"},
		"orientation": {"portrait", "landscape"},
	}
	fileFlagGlobs = map[string]string{
		"config": "*.yaml,*.yml",
		"style":  "*.css",
		"header": "*.html",
		"footer": "*.html",
		"debug":  "*.html",
	}
	dirFlags = map[string]bool{
		"output-dir": true,
		"assets":     true,
	}
)

// baseFlagType maps a pflag value type to a completion strategy.
// Repeatable list flags complete like their element type.
func baseFlagType(valueType string) (t flagType, repeat bool) {
	switch valueType {
	case "bool":
		return flagBool, false
	case "stringArray", "stringSlice":
		return flagString, true
	}
	if strings.HasPrefix(valueType, "int") || strings.HasPrefix(valueType, "uint") {
		return flagInt, false
	}
	return flagString, false
}

// convertFlagDefs lists the convert command's flags for completion.
func convertFlagDefs() []flagDef {
	fs, _ := newConvertFlagSet()

	var defs []flagDef
	fs.VisitAll(func(f *flag.Flag) {
		t, repeat := baseFlagType(f.Value.Type())
		fd := flagDef{Long: f.Name, Short: f.Shorthand, Desc: f.Usage, Type: t, Repeat: repeat}

		switch {
		case enumFlagValues[f.Name] != nil:
			fd.Type = flagEnum
			fd.Values = enumFlagValues[f.Name]
		case fileFlagGlobs[f.Name] != "":
			fd.Type = flagFile
			fd.FileGlob = fileFlagGlobs[f.Name]
		case dirFlags[f.Name]:
			fd.Type = flagDir
		}

		defs = append(defs, fd)
	})
	return defs
}

// getCommands is the completion registry every shell generator consumes.
// Convert's flag list comes from the same FlagSet the CLI parses, so new
// flags show up in completions without further wiring.
func getCommands() []commandDef {
	return []commandDef{
		{
			Name:        "convert",
			Desc:        "Convert markdown files, directories, or globs to PDF",
			Flags:       convertFlagDefs(),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:  "doctor",
			Desc:  "Check the environment for a working browser setup",
			Flags: []flagDef{{Long: "json", Type: flagBool, Desc: "machine-readable output"}},
		},
		{Name: "completion", Desc: "Generate shell completion script"},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes the completion script for shell to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	case ShellPowerShell:
		return generatePowerShell(w)
	default:
		return fmt.Errorf("%w: %q (want one of bash, zsh, fish, powershell)", ErrUnsupportedShell, shell)
	}
}

// runCompletion prints a completion script, or install instructions when
// called without a shell.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints install instructions per shell.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpdf completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print a completion script for bash, zsh, fish, or powershell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash (~/.bashrc):")
	fmt.Fprintln(w, "    eval \"$(mdpdf completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh (~/.zshrc, before compinit):")
	fmt.Fprintln(w, "    eval \"$(mdpdf completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    mdpdf completion fish > ~/.config/fish/completions/mdpdf.fish")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  PowerShell ($PROFILE):")
	fmt.Fprintln(w, "    mdpdf completion powershell | Out-String | Invoke-Expression")
}
