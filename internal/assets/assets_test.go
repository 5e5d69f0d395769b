package assets

// Notes:
// - Embedded sheet contents are checked only for presence and their name
//   key; their parsed values are covered by the root package tests.

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ---------------------------------------------------------------------------
// TestValidateAssetName - Name validation
// ---------------------------------------------------------------------------

func TestValidateAssetName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "default", false},
		{"hyphenated", "my-style", false},
		{"underscore", "my_style", false},
		{"empty", "", true},
		{"forward slash", "a/b", true},
		{"backslash", "a\\b", true},
		{"traversal", "..", true},
		{"extension", "default.yaml", true},
		{"null byte", "a\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateAssetName(tt.input)
			if tt.wantErr && !errors.Is(err, ErrInvalidAssetName) {
				t.Errorf("ValidateAssetName(%q) = %v, want ErrInvalidAssetName", tt.input, err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ValidateAssetName(%q) = %v, want nil", tt.input, err)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestEmbeddedLoader - Built-in sheets
// ---------------------------------------------------------------------------

func TestEmbeddedLoader_StyleSheetNames(t *testing.T) {
	t.Parallel()

	names, err := StyleSheetNames()
	if err != nil {
		t.Fatalf("StyleSheetNames() error = %v", err)
	}
	want := []string{"classic", "compact", "default"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("StyleSheetNames() mismatch (-want +got):\n%s", diff)
	}
}

func TestEmbeddedLoader_LoadStyleSheet(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"default", "classic", "compact"} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			data, err := LoadStyleSheet(name)
			if err != nil {
				t.Fatalf("LoadStyleSheet(%q) error = %v", name, err)
			}
			if !strings.Contains(string(data), "name: "+name) {
				t.Errorf("sheet %q does not declare its name", name)
			}
		})
	}
}

func TestEmbeddedLoader_Errors(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadStyleSheet("missing"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("missing sheet: error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadStyleSheet("../default"); !errors.Is(err, ErrInvalidAssetName) {
		t.Errorf("traversal: error = %v, want ErrInvalidAssetName", err)
	}
}

func TestTrimStyleExtension(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"a.yaml":   "a",
		"a.yml":    "a",
		".yaml":    "",
		"a.css":    "",
		"noext":    "",
		"a.b.yaml": "a.b",
	}
	for in, want := range tests {
		if got := trimStyleExtension(in); got != want {
			t.Errorf("trimStyleExtension(%q) = %q, want %q", in, got, want)
		}
	}
}
