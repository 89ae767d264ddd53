package mdpdf

import (
	"fmt"
	"strings"
	"time"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Defaults applied by DefaultRequest and DefaultPDFOptions.
const (
	DefaultFormat = "a4"
	DefaultBorder = "20mm"
)

// Margins holds per-edge page margins as CSS length strings ("20mm", "1in",
// "30px"). An empty edge falls back to DefaultBorder at print time.
type Margins struct {
	Top    string
	Right  string
	Bottom string
	Left   string
}

// PDFOptions configures page geometry and running header/footer sizing.
type PDFOptions struct {
	Format       string  // named page size: "a4", "letter", ... (default "a4")
	Orientation  string  // "portrait" or "landscape" (default "portrait")
	Border       Margins // per-edge margins
	HeaderHeight string  // CSS length for the header chrome box; empty = natural height
	FooterHeight string  // CSS length for the footer chrome box; empty = natural height
}

// DefaultPDFOptions returns PDF options matching the tool defaults:
// A4 portrait with 20mm borders on every edge.
func DefaultPDFOptions() PDFOptions {
	return PDFOptions{
		Format:      DefaultFormat,
		Orientation: OrientationPortrait,
		Border: Margins{
			Top:    DefaultBorder,
			Right:  DefaultBorder,
			Bottom: DefaultBorder,
			Left:   DefaultBorder,
		},
	}
}

// Validate checks that the PDF options are well-formed.
// Empty fields are valid and mean "use the default".
// Does not mutate - uses case-insensitive comparison.
func (p PDFOptions) Validate() error {
	if p.Format != "" && !isValidPageFormat(p.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidPageFormat, p.Format)
	}

	if p.Orientation != "" && !isValidOrientation(p.Orientation) {
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	edges := []struct {
		name  string
		value string
	}{
		{"top", p.Border.Top},
		{"right", p.Border.Right},
		{"bottom", p.Border.Bottom},
		{"left", p.Border.Left},
	}
	for _, edge := range edges {
		if edge.value == "" {
			continue
		}
		if _, err := parseCSSSize(edge.value); err != nil {
			return fmt.Errorf("%w: %s border %q", ErrInvalidMargin, edge.name, edge.value)
		}
	}

	if p.HeaderHeight != "" {
		if _, err := parseCSSSize(p.HeaderHeight); err != nil {
			return fmt.Errorf("%w: header %q", ErrInvalidHeight, p.HeaderHeight)
		}
	}
	if p.FooterHeight != "" {
		if _, err := parseCSSSize(p.FooterHeight); err != nil {
			return fmt.Errorf("%w: footer %q", ErrInvalidHeight, p.FooterHeight)
		}
	}

	return nil
}

// isValidOrientation checks if orientation is valid (case-insensitive).
func isValidOrientation(orientation string) bool {
	switch strings.ToLower(orientation) {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// Request describes one Markdown-to-PDF conversion.
type Request struct {
	Source      string // path to the Markdown source (required)
	Destination string // path of the PDF to write (required)

	Header string // path to an HTML fragment used as the running header (optional)
	Footer string // path to an HTML fragment used as the running footer (optional)

	// Stylesheets are applied after the bundled ones, in order, so later
	// entries override earlier rules. Each entry may be a file path, a
	// bundled style name, or inline CSS.
	Stylesheets []string

	GithubStyle  bool // include the bundled GitHub stylesheet
	DefaultStyle bool // include the bundled margins/typography stylesheet
	ConvertEmoji bool // render :shortcode: emoji as glyphs

	// DebugHTML, when set, receives a copy of the composed body HTML before
	// rendering. Rendering proceeds normally.
	DebugHTML string

	PDF PDFOptions
}

// DefaultRequest returns a Request for the given source and destination with
// the defaults the CLI applies: GitHub styling, default typography, emoji
// conversion, A4 portrait with 20mm borders.
func DefaultRequest(source, destination string) Request {
	return Request{
		Source:       source,
		Destination:  destination,
		GithubStyle:  true,
		DefaultStyle: true,
		ConvertEmoji: true,
		PDF:          DefaultPDFOptions(),
	}
}

// Validate checks that the request is complete and well-formed.
// It runs before any filesystem access.
func (r Request) Validate() error {
	if strings.TrimSpace(r.Source) == "" {
		return ErrMissingSource
	}
	if strings.TrimSpace(r.Destination) == "" {
		return ErrMissingDestination
	}
	return r.PDF.Validate()
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout   time.Duration
	assetPath string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the per-conversion rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdpdf: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithAssetDir points the converter at a directory of custom styles and
// layout templates. Assets missing from the directory fall back to the
// bundled ones.
func WithAssetDir(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
