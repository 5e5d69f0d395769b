package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
)

//go:embed styles/*.yaml
var styles embed.FS

// EmbeddedLoader serves the built-in style sheets.
type EmbeddedLoader struct{}

func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{}
}

// LoadStyleSheet implements Loader.
func (e *EmbeddedLoader) LoadStyleSheet(name string) ([]byte, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	data, err := styles.ReadFile("styles/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return data, nil
}

// StyleSheetNames implements Loader.
func (e *EmbeddedLoader) StyleSheetNames() ([]string, error) {
	entries, err := fs.ReadDir(styles, "styles")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	var names []string
	for _, entry := range entries {
		if name := trimStyleExtension(entry.Name()); name != "" && !entry.IsDir() {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

var _ Loader = (*EmbeddedLoader)(nil)
