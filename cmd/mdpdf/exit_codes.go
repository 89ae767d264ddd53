package main

import (
	"context"
	"errors"
	"os"

	mdpdf "github.com/nvell/mdpdf"
	"github.com/nvell/mdpdf/internal/config"
)

// Exit codes returned by the CLI. Scripts can branch on these to tell
// configuration mistakes from I/O problems from browser failures.
const (
	ExitSuccess = 0 // conversion completed
	ExitGeneral = 1 // unclassified failure
	ExitUsage   = 2 // bad flags, bad config, invalid request options
	ExitIO      = 3 // unreadable input or unwritable output
	ExitEngine  = 4 // browser launch, navigation, or print failure
)

// exitCodeFor maps an error to the exit code of its class.
// Checks run from most specific to least specific.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Engine failures: the browser could not do its part.
	switch {
	case errors.Is(err, mdpdf.ErrBrowserConnect),
		errors.Is(err, mdpdf.ErrPageCreate),
		errors.Is(err, mdpdf.ErrPageLoad),
		errors.Is(err, mdpdf.ErrPDFGeneration),
		errors.Is(err, context.DeadlineExceeded):
		return ExitEngine
	}

	// I/O failures: filesystem said no.
	switch {
	case errors.Is(err, mdpdf.ErrReadSource),
		errors.Is(err, mdpdf.ErrReadHeader),
		errors.Is(err, mdpdf.ErrReadFooter),
		errors.Is(err, mdpdf.ErrReadStylesheet),
		errors.Is(err, mdpdf.ErrWritePDF),
		errors.Is(err, mdpdf.ErrWriteTempHTML),
		errors.Is(err, mdpdf.ErrWriteDebugHTML),
		errors.Is(err, ErrCreateOutputDir),
		errors.Is(err, ErrWriteHTML),
		errors.Is(err, os.ErrNotExist),
		errors.Is(err, os.ErrPermission):
		return ExitIO
	}

	// Usage and configuration failures: the invocation itself is wrong.
	switch {
	case errors.Is(err, mdpdf.ErrMissingSource),
		errors.Is(err, mdpdf.ErrMissingDestination),
		errors.Is(err, mdpdf.ErrInvalidPageFormat),
		errors.Is(err, mdpdf.ErrInvalidOrientation),
		errors.Is(err, mdpdf.ErrInvalidMargin),
		errors.Is(err, mdpdf.ErrInvalidHeight),
		errors.Is(err, mdpdf.ErrRemoteStylesheet),
		errors.Is(err, mdpdf.ErrInvalidAssetPath),
		errors.Is(err, config.ErrConfigNotFound),
		errors.Is(err, config.ErrEmptyConfigName),
		errors.Is(err, config.ErrConfigParse),
		errors.Is(err, config.ErrFieldTooLong),
		errors.Is(err, ErrNoInput),
		errors.Is(err, ErrInvalidExtension),
		errors.Is(err, ErrInvalidWorkerCount),
		errors.Is(err, ErrInvalidTimeout),
		errors.Is(err, ErrBatchSingleOutput),
		errors.Is(err, ErrDebugSingleInput),
		errors.Is(err, ErrUnsupportedShell):
		return ExitUsage
	}

	return ExitGeneral
}
