package assets

// DefaultStyleSheet is the sheet used when none is configured.
const DefaultStyleSheet = "default"

var defaultLoader = NewEmbeddedLoader()

// LoadStyleSheet reads a built-in sheet.
func LoadStyleSheet(name string) ([]byte, error) {
	return defaultLoader.LoadStyleSheet(name)
}

// StyleSheetNames lists the built-in sheets.
func StyleSheetNames() ([]string, error) {
	return defaultLoader.StyleSheetNames()
}
