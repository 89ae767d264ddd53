package main

import (
	"io"
	"os"

	"github.com/go-rod/rod/lib/launcher"
)

// Environment is the command layer's view of the process. Commands write
// through Stdout/Stderr and read variables through Getenv/Environ, so tests
// can swap in buffers and fixed maps instead of touching the real process.
type Environment struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Getenv   func(string) string
	Environ  func() []string
	LookPath func() (string, bool) // browser executable detection
}

// DefaultEnv returns the production environment backed by the real process.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Getenv:   os.Getenv,
		Environ:  os.Environ,
		LookPath: launcher.LookPath,
	}
}
