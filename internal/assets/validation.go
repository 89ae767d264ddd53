package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName gates every loader lookup. A valid name is a bare
// identifier: the loaders append the extension and directory themselves, so
// anything that could steer the resulting path is rejected here.
func ValidateAssetName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is empty", ErrInvalidAssetName)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidAssetName, name)
	case strings.Contains(name, "."):
		return fmt.Errorf("%w: %q contains a dot", ErrInvalidAssetName, name)
	}
	return nil
}
