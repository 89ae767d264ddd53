package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Align GOMAXPROCS with container CPU quotas. Error ignored: maxprocs.Set
	// only fails on an invalid GOMAXPROCS env value, in which case Go runtime
	// defaults apply and the program continues safely. The adjustment notice
	// is noise for normal runs, so it only prints under --verbose.
	if hasVerboseFlag(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// hasVerboseFlag scans raw arguments for the verbose flag, before real flag
// parsing happens. Scanning stops at "--" like the parser would.
func hasVerboseFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-v", "--verbose":
			return true
		}
	}
	return false
}

// runMain dispatches to a command and returns the process exit code.
// Anything that is not a known command is treated as input for convert, so
// `mdpdf README.md` works without naming the command.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	if !isCommand(args[1]) {
		return runConvert(args[1:], env)
	}

	switch args[1] {
	case "version":
		fmt.Fprintf(env.Stdout, "mdpdf %s\n", Version)
		return ExitSuccess
	case "help":
		runHelp(args[2:], env)
		return ExitSuccess
	case "doctor":
		return runDoctorCmd(args[2:], env)
	case "completion":
		if err := runCompletion(args[2:], env); err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	default: // convert
		return runConvert(args[2:], env)
	}
}

// isCommand reports whether the word names a known command.
func isCommand(word string) bool {
	switch word {
	case "convert", "doctor", "completion", "version", "help":
		return true
	}
	return false
}
