package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects empty names and names holding separators or
// dots, which would allow traversal or extension tricks.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.\x00") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// styleExtensions are tried in order for each lookup.
var styleExtensions = []string{".yaml", ".yml"}

// trimStyleExtension returns the sheet name for a file name, or "" when the
// file is not a style sheet.
func trimStyleExtension(file string) string {
	for _, ext := range styleExtensions {
		if name, ok := strings.CutSuffix(file, ext); ok && name != "" {
			return name
		}
	}
	return ""
}
