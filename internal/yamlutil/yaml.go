// Package yamlutil is the single entry point for YAML decoding. Keeping the
// goccy/go-yaml calls here means the rest of the codebase deals in plain
// errors and never imports the library directly.
package yamlutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize caps YAML input at 1 MiB. Config files run a few hundred
// bytes; anything near the cap is a mistake, so decoding stops before the
// parser allocates for it.
const MaxInputSize = 1 << 20

var (
	// ErrEmptyInput means there were no bytes to decode.
	ErrEmptyInput = errors.New("yamlutil: empty input")

	// ErrNilDestination means the decode target pointer was nil.
	ErrNilDestination = errors.New("yamlutil: nil destination pointer")

	// ErrInputTooLarge means the input exceeded MaxInputSize.
	ErrInputTooLarge = errors.New("yamlutil: input exceeds maximum size")
)

// UnmarshalStrict decodes data into v and rejects unknown fields, so a typo
// in a config file surfaces as an error instead of a silently ignored key.
func UnmarshalStrict(data []byte, v any) error {
	switch {
	case len(data) == 0:
		return ErrEmptyInput
	case len(data) > MaxInputSize:
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	case v == nil:
		return ErrNilDestination
	}

	if err := yaml.UnmarshalWithOptions(data, v, yaml.Strict()); err != nil {
		return fmt.Errorf("yamlutil: %w", err)
	}
	return nil
}
