package assets

// Loader reads style sheet documents by name.
type Loader interface {
	// LoadStyleSheet returns the raw YAML of the named sheet, or
	// ErrStyleNotFound.
	LoadStyleSheet(name string) ([]byte, error)

	// StyleSheetNames lists the sheets this loader can serve, sorted.
	StyleSheetNames() ([]string, error)
}
