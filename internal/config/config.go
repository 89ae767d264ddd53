package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nvell/mdpdf/internal/fileutil"
	"github.com/nvell/mdpdf/internal/yamlutil"
)

// Errors reported by config loading and validation.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name is empty")
	ErrConfigParse     = errors.New("invalid config")
	ErrFieldTooLong    = errors.New("config field too long")
)

// Field length limits so malformed config files fail early and obviously.
const (
	MaxPathLength        = 2048  // file and directory paths
	MaxFormatLength      = 10    // "a4", "letter", "legal"
	MaxOrientationLength = 10    // "portrait", "landscape"
	MaxSizeLength        = 20    // CSS lengths: "20mm", "0.5in"
	MaxStyleLength       = 10000 // stylesheet entries may be inline CSS
	MaxTimeoutLength     = 30    // Go duration strings: "30s", "2m30s"
)

// Config holds the file-based configuration tier for the CLI. Fields left
// out of the file keep the defaults seeded by DefaultConfig; flags and
// MDPDF_* environment variables override on top.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Styles  StylesConfig  `yaml:"styles"`
	Emoji   bool          `yaml:"emoji"`
	Header  ChromeConfig  `yaml:"header"`
	Footer  ChromeConfig  `yaml:"footer"`
	Assets  AssetsConfig  `yaml:"assets"`
	PDF     PDFConfig     `yaml:"pdf"`
	Convert ConvertConfig `yaml:"convert"`
}

// OutputConfig controls where generated PDFs land.
type OutputConfig struct {
	Dir string `yaml:"dir"` // default output directory (empty = next to each source)
}

// StylesConfig defines which stylesheets the composed document carries.
type StylesConfig struct {
	Github  bool     `yaml:"github"`  // bundled GitHub stylesheet
	Default bool     `yaml:"default"` // bundled print margins/typography stylesheet
	Extra   []string `yaml:"extra"`   // file paths, bundled style names, or inline CSS
}

// ChromeConfig defines a running header or footer.
type ChromeConfig struct {
	Path   string `yaml:"path"`   // HTML fragment file
	Height string `yaml:"height"` // CSS length for the chrome box (empty = natural height)
}

// AssetsConfig points at an overlay directory for custom styles and templates.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // overlay directory; empty = embedded assets only
}

// PDFConfig defines page geometry.
type PDFConfig struct {
	Format       string `yaml:"format"`      // named page size (empty = a4)
	Orientation  string `yaml:"orientation"` // "portrait" or "landscape" (empty = portrait)
	Border       string `yaml:"border"`      // shorthand for all four edges
	BorderTop    string `yaml:"borderTop"`
	BorderRight  string `yaml:"borderRight"`
	BorderBottom string `yaml:"borderBottom"`
	BorderLeft   string `yaml:"borderLeft"`
}

// ConvertConfig defines conversion runtime options.
type ConvertConfig struct {
	Timeout string `yaml:"timeout"` // per-conversion deadline, Go duration string (empty = 30s)
	Workers int    `yaml:"workers"` // parallel conversions (0 = one per two CPU cores)
}

// Validate checks field lengths and closed-set values. Called automatically
// by LoadConfig, but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	lengths := []struct {
		name  string
		value string
		max   int
	}{
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"header.path", c.Header.Path, MaxPathLength},
		{"header.height", c.Header.Height, MaxSizeLength},
		{"footer.path", c.Footer.Path, MaxPathLength},
		{"footer.height", c.Footer.Height, MaxSizeLength},
		{"assets.dir", c.Assets.Dir, MaxPathLength},
		{"pdf.format", c.PDF.Format, MaxFormatLength},
		{"pdf.orientation", c.PDF.Orientation, MaxOrientationLength},
		{"pdf.border", c.PDF.Border, MaxSizeLength},
		{"pdf.borderTop", c.PDF.BorderTop, MaxSizeLength},
		{"pdf.borderRight", c.PDF.BorderRight, MaxSizeLength},
		{"pdf.borderBottom", c.PDF.BorderBottom, MaxSizeLength},
		{"pdf.borderLeft", c.PDF.BorderLeft, MaxSizeLength},
		{"convert.timeout", c.Convert.Timeout, MaxTimeoutLength},
	}
	for _, f := range lengths {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}
	for i, entry := range c.Styles.Extra {
		if err := validateFieldLength(fmt.Sprintf("styles.extra[%d]", i), entry, MaxStyleLength); err != nil {
			return err
		}
	}

	if o := c.PDF.Orientation; o != "" {
		switch strings.ToLower(o) {
		case "portrait", "landscape":
		default:
			return fmt.Errorf("pdf.orientation: invalid value %q (must be portrait or landscape)", o)
		}
	}

	if t := c.Convert.Timeout; t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return fmt.Errorf("convert.timeout: invalid duration %q", t)
		}
		if d <= 0 {
			return fmt.Errorf("convert.timeout: must be positive, got %q", t)
		}
	}
	if c.Convert.Workers < 0 {
		return fmt.Errorf("convert.workers: must be >= 0, got %d", c.Convert.Workers)
	}

	return nil
}

// validateFieldLength rejects a value longer than its field's budget.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Timeout returns the parsed conversion deadline, or zero when unset.
// Call Validate first; malformed durations are reported there.
func (c *Config) Timeout() time.Duration {
	if c.Convert.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Convert.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// DefaultConfig returns the configuration matching the tool defaults:
// both bundled stylesheets on, emoji substitution on, everything else
// inherited from the library.
func DefaultConfig() *Config {
	return &Config{
		Styles: StylesConfig{Github: true, Default: true},
		Emoji:  true,
	}
}

// LoadConfig reads, decodes, and validates a configuration file. A
// nameOrPath containing a path separator is used as-is; a bare name is
// searched for in the standard locations (see resolveConfigPath). A named
// config that cannot be found is an error, never a silent fallback to
// defaults. Fields absent from the file keep their DefaultConfig values;
// unknown keys are rejected.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		resolved, err := resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath locates a named config file. Candidates are tried in
// order: each search directory (current directory, then the user config
// directory) with each extension (.yaml, then .yml). The error for a miss
// lists every candidate so the user can see where a file would be picked
// up.
func resolveConfigPath(name string) (string, error) {
	var tried []string
	for _, dir := range searchDirs() {
		for _, ext := range []string{".yaml", ".yml"} {
			candidate := filepath.Join(dir, name+ext)
			if fileutil.FileExists(candidate) {
				return candidate, nil
			}
			tried = append(tried, candidate)
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

// searchDirs returns the config search path. The user config directory is
// omitted when the platform cannot report one.
func searchDirs() []string {
	dirs := []string{"."}
	if ucd, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(ucd, "mdpdf"))
	}
	return dirs
}
