package assets

import (
	"fmt"
	"strings"
)

// styleExtension is appended to style names to form file names.
const styleExtension = ".css"

// StyleLoader loads a stylesheet by name (without the .css extension).
// Returns ErrStyleNotFound if the style doesn't exist and
// ErrInvalidAssetName if the name is unsafe.
type StyleLoader interface {
	LoadStyle(name string) (string, error)
}

// ValidateAssetName checks that a style name is safe for use as a file name.
// Dots are rejected so callers cannot choose the extension.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}
