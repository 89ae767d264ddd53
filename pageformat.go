package mdpdf

import (
	"fmt"
	"strconv"
	"strings"
)

// pageFormats maps format names to portrait paper dimensions in inches.
// The set matches what the render engine accepts as named sizes.
var pageFormats = map[string][2]float64{
	"a3":      {11.69, 16.54},
	"a4":      {8.27, 11.69},
	"a5":      {5.83, 8.27},
	"letter":  {8.5, 11},
	"legal":   {8.5, 14},
	"tabloid": {11, 17},
	"ledger":  {17, 11},
}

// isValidPageFormat checks if format names a known page size (case-insensitive).
func isValidPageFormat(format string) bool {
	_, ok := pageFormats[strings.ToLower(format)]
	return ok
}

// formatSize returns paper width and height in inches for a named format and
// orientation. Empty values select the defaults. Landscape swaps the axes.
func formatSize(format, orientation string) (width, height float64, err error) {
	if format == "" {
		format = DefaultFormat
	}
	dims, ok := pageFormats[strings.ToLower(format)]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPageFormat, format)
	}
	width, height = dims[0], dims[1]
	if strings.EqualFold(orientation, OrientationLandscape) {
		width, height = height, width
	}
	return width, height, nil
}

// cssUnits lists the accepted absolute CSS length units with their factor to
// inches. Relative units (em, %) have no meaning for print geometry and are
// rejected.
var cssUnits = []struct {
	suffix string
	factor float64
}{
	{"px", 1.0 / 96},
	{"in", 1},
	{"cm", 1.0 / 2.54},
	{"mm", 1.0 / 25.4},
}

// parseCSSSize converts a CSS length string ("20mm", "1in", "30px", "2.5cm")
// to inches. A bare number is read as pixels, matching how the render engine
// treats unitless lengths. Negative values are rejected.
func parseCSSSize(s string) (float64, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}

	factor := 1.0 / 96
	for _, unit := range cssUnits {
		if strings.HasSuffix(s, unit.suffix) {
			factor = unit.factor
			s = strings.TrimSpace(strings.TrimSuffix(s, unit.suffix))
			break
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed size %q", s)
	}
	if value < 0 {
		return 0, fmt.Errorf("negative size")
	}
	return value * factor, nil
}
