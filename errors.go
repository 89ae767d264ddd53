package mdpdf

import "errors"

// Sentinel errors for library operations.
var (
	// Request validation errors. These fail before any I/O.
	ErrMissingSource      = errors.New("source path is required")
	ErrMissingDestination = errors.New("destination path is required")
	ErrInvalidPageFormat  = errors.New("invalid page format")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin size")
	ErrInvalidHeight      = errors.New("invalid header/footer height")

	// Input reading errors.
	ErrReadSource     = errors.New("failed to read source file")
	ErrReadHeader     = errors.New("failed to read header file")
	ErrReadFooter     = errors.New("failed to read footer file")
	ErrReadStylesheet = errors.New("failed to read stylesheet")

	// Stylesheet resolution errors.
	ErrRemoteStylesheet = errors.New("remote stylesheets are not supported")

	// Output writing errors.
	ErrWriteDebugHTML = errors.New("failed to write debug HTML file")
	ErrWriteTempHTML  = errors.New("failed to write temporary HTML file")
	ErrWritePDF       = errors.New("failed to write PDF file")

	// Browser engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Asset loading errors.
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Pool lifecycle errors.
	ErrPoolClosed = errors.New("converter pool is closed")
)
