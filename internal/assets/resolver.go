package assets

import (
	"errors"
	"slices"
)

// AssetResolver looks in a custom directory first and falls back to the
// embedded sheets when a name is not found there. Validation and I/O errors
// from the custom loader are returned as is.
type AssetResolver struct {
	custom   Loader // nil without a custom path
	embedded Loader
}

// NewAssetResolver returns an embedded-only resolver when customBasePath is
// empty.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		r.custom = custom
	}
	return r, nil
}

// LoadStyleSheet implements Loader.
func (r *AssetResolver) LoadStyleSheet(name string) ([]byte, error) {
	if r.custom != nil {
		data, err := r.custom.LoadStyleSheet(name)
		if err == nil || !errors.Is(err, ErrStyleNotFound) {
			return data, err
		}
	}
	return r.embedded.LoadStyleSheet(name)
}

// StyleSheetNames implements Loader, merging both sources.
func (r *AssetResolver) StyleSheetNames() ([]string, error) {
	names, err := r.embedded.StyleSheetNames()
	if err != nil {
		return nil, err
	}
	if r.custom == nil {
		return names, nil
	}
	custom, err := r.custom.StyleSheetNames()
	if err != nil {
		return nil, err
	}
	for _, name := range custom {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names, nil
}

// HasCustomLoader reports whether a custom directory is configured.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

var _ Loader = (*AssetResolver)(nil)
