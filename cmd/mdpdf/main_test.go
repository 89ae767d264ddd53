package main

// Notes:
// - runMain: we test dispatch and exit codes for scenarios that need no
//   browser. Real conversions are covered by the integration tests.
// - isCommand / hasVerboseFlag: plain table tests over the word lists.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"bytes"
	"strings"
	"testing"
)

// testEnv returns an Environment with captured writers and an empty
// process environment, so tests never see the host's MDPDF_* variables.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Stdout:   &stdout,
		Stderr:   &stderr,
		Getenv:   func(string) string { return "" },
		Environ:  func() []string { return nil },
		LookPath: func() (string, bool) { return "", false },
	}
	return env, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestIsCommand - Command word recognition
// ---------------------------------------------------------------------------

func TestIsCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"convert", true},
		{"doctor", true},
		{"completion", true},
		{"version", true},
		{"help", true},
		{"batch", false},
		{"", false},
		{"notes.md", false},
		{"Doctor", false}, // commands are lowercase only
		{"HELP", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			got := isCommand(tt.input)
			if got != tt.want {
				t.Errorf("isCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Early verbose detection before flag parsing
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "no args", args: nil, want: false},
		{name: "short flag", args: []string{"doc.md", "-v"}, want: true},
		{name: "long flag", args: []string{"--verbose", "doc.md"}, want: true},
		{name: "other flags only", args: []string{"-q", "--format", "a4"}, want: false},
		{name: "after terminator", args: []string{"--", "-v"}, want: false},
		{name: "before terminator", args: []string{"-v", "--", "doc.md"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := hasVerboseFlag(tt.args)
			if got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain - Main entry point dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "bare invocation prints usage to stderr",
			args:         []string{"mdpdf"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: mdpdf"},
		},
		{
			name:         "version prints the binary name",
			args:         []string{"mdpdf", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"mdpdf"},
		},
		{
			name:         "help lists the commands",
			args:         []string{"mdpdf", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdpdf", "Commands:"},
		},
		{
			name:         "help with a topic prints that command's usage",
			args:         []string{"mdpdf", "help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdpdf convert"},
		},
		{
			name:         "bare markdown path is treated as convert input",
			args:         []string{"mdpdf", "definitely-missing.md"},
			wantCode:     ExitIO, // file does not exist
			wantInStderr: []string{"definitely-missing.md"},
		},
		{
			name:         "unknown word routes to convert and fails discovery",
			args:         []string{"mdpdf", "nonsense-word"},
			wantCode:     ExitIO,
			wantInStderr: []string{"nonsense-word"},
		},
		{
			name:         "completion without shell prints usage and exits 0",
			args:         []string{"mdpdf", "completion"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: mdpdf completion"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv()

			code := runMain(tt.args, env)

			if code != tt.wantCode {
				t.Errorf("runMain(%v) exit = %d, want %d (stderr: %s)", tt.args, code, tt.wantCode, stderr.String())
			}

			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout should contain %q, got %q", want, stdout.String())
				}
			}

			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr should contain %q, got %q", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_ExitCodes - Semantic exit codes without a browser
// ---------------------------------------------------------------------------

func TestRunMain_ExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		// success
		{
			name:     "version",
			args:     []string{"mdpdf", "version"},
			wantCode: ExitSuccess,
		},
		{
			name:     "help",
			args:     []string{"mdpdf", "help"},
			wantCode: ExitSuccess,
		},
		{
			name:     "completion bash",
			args:     []string{"mdpdf", "completion", "bash"},
			wantCode: ExitSuccess,
		},

		// usage errors
		{
			name:     "no arguments",
			args:     []string{"mdpdf"},
			wantCode: ExitUsage,
		},
		{
			name:     "unknown completion shell",
			args:     []string{"mdpdf", "completion", "badshell"},
			wantCode: ExitUsage,
		},
		{
			name:     "bad page format",
			args:     []string{"mdpdf", "convert", "--format", "b5", "doc.md"},
			wantCode: ExitUsage,
		},
		{
			name:     "bad timeout",
			args:     []string{"mdpdf", "convert", "--timeout", "soon", "doc.md"},
			wantCode: ExitUsage,
		},
		{
			name:     "workers out of range",
			args:     []string{"mdpdf", "convert", "--workers", "99", "doc.md"},
			wantCode: ExitUsage,
		},
		{
			name:     "convert without input",
			args:     []string{"mdpdf", "convert"},
			wantCode: ExitUsage,
		},

		// io errors
		{
			name:     "missing input file",
			args:     []string{"mdpdf", "convert", "nonexistent.md"},
			wantCode: ExitIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, _, stderr := testEnv()

			if code := runMain(tt.args, env); code != tt.wantCode {
				t.Errorf("runMain(%v) = %d, want %d\nstderr: %s", tt.args, code, tt.wantCode, stderr.String())
			}
		})
	}
}
