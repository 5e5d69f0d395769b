package textpdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alnah/go-textpdf/internal/markup"
)

// ---------------------------------------------------------------------------
// TestBuiltinStyleSheets - Embedded sheets parse and follow the house rules
// ---------------------------------------------------------------------------

func TestBuiltinStyleSheets(t *testing.T) {
	t.Parallel()

	names := BuiltinStyleSheetNames()
	if len(names) == 0 {
		t.Fatal("no built-in style sheets")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			sheet, err := BuiltinStyleSheet(name)
			if err != nil {
				t.Fatalf("BuiltinStyleSheet(%q) error = %v", name, err)
			}
			if sheet.Name != name {
				t.Errorf("Name = %q, want %q", sheet.Name, name)
			}

			sizes := []float64{sheet.Heading1.Size, sheet.Heading2.Size, sheet.Heading3.Size, sheet.Heading4.Size}
			for i := 1; i < len(sizes); i++ {
				if sizes[i] >= sizes[i-1] {
					t.Errorf("heading sizes not decreasing: %v", sizes)
				}
			}
			if sheet.BulletItem.Indent <= 0 || sheet.NumberedItem.Indent <= 0 {
				t.Error("list items need a left indent")
			}
		})
	}
}

func TestDefaultStyleSheet(t *testing.T) {
	t.Parallel()

	sheet, err := BuiltinStyleSheet("default")
	if err != nil {
		t.Fatal(err)
	}
	p := sheet.Paragraph
	if p.Font != FontHelvetica || p.Size != 11 || p.Align != AlignJustify {
		t.Errorf("paragraph = %+v, want Helvetica 11 justified", p)
	}
	accent := sheet.Heading1.Color
	if accent == p.Color {
		t.Error("headings should use an accent color distinct from body text")
	}
	for _, h := range []Style{sheet.Heading2, sheet.Heading3, sheet.Heading4} {
		if h.Color != accent {
			t.Errorf("heading color %q, want consistent accent %q", h.Color, accent)
		}
	}
	if sheet.BulletItem.Font != FontHelvetica || sheet.BulletItem.Size != 11 {
		t.Errorf("bullet item did not inherit font and size: %+v", sheet.BulletItem)
	}
}

// ---------------------------------------------------------------------------
// TestParseStyleSheet - Validation and inheritance
// ---------------------------------------------------------------------------

func TestParseStyleSheet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		yaml    string
		wantErr bool
		check   func(t *testing.T, s *StyleSheet)
	}{
		{
			name: "minimal sheet gets defaults",
			yaml: "name: tiny",
			check: func(t *testing.T, s *StyleSheet) {
				if s.Paragraph.Font != FontHelvetica || s.Paragraph.Size != 11 || s.Bullet != "•" {
					t.Errorf("defaults not applied: %+v", s.Paragraph)
				}
				if s.Heading1.Align != AlignLeft {
					t.Errorf("Heading1.Align = %q, want inherited left", s.Heading1.Align)
				}
			},
		},
		{
			name: "font aliases canonicalized",
			yaml: "paragraph:\n  font: arial\nheading_1:\n  font: serif",
			check: func(t *testing.T, s *StyleSheet) {
				if s.Paragraph.Font != FontHelvetica || s.Heading1.Font != FontTimes {
					t.Errorf("fonts = %q, %q", s.Paragraph.Font, s.Heading1.Font)
				}
				if s.Heading2.Font != FontHelvetica {
					t.Errorf("Heading2.Font = %q, want inherited Helvetica", s.Heading2.Font)
				}
			},
		},
		{name: "unknown key", yaml: "paragraph:\n  colour: red", wantErr: true},
		{name: "unknown font", yaml: "paragraph:\n  font: Comic Sans", wantErr: true},
		{name: "bad color", yaml: "paragraph:\n  color: red", wantErr: true},
		{name: "short color", yaml: "heading_1:\n  color: \"#FFF\"", wantErr: true},
		{name: "bad align", yaml: "paragraph:\n  align: middle", wantErr: true},
		{name: "negative size", yaml: "heading_2:\n  size: -3", wantErr: true},
		{name: "huge size", yaml: "heading_2:\n  size: 400", wantErr: true},
		{name: "negative indent", yaml: "bullet_item:\n  indent: -1", wantErr: true},
		{name: "long bullet", yaml: "bullet: \">>>>>\"", wantErr: true},
		{name: "not yaml", yaml: "paragraph: [", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, err := ParseStyleSheet([]byte(tt.yaml))
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidStyleSheet) {
					t.Fatalf("error = %v, want ErrInvalidStyleSheet", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, s)
		})
	}
}

// ---------------------------------------------------------------------------
// TestStyleSheet_Resolve - Kind to style mapping
// ---------------------------------------------------------------------------

func TestStyleSheet_Resolve(t *testing.T) {
	t.Parallel()

	sheet, err := BuiltinStyleSheet("default")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		kind markup.Kind
		want Style
	}{
		{markup.Heading1, sheet.Heading1},
		{markup.Heading4, sheet.Heading4},
		{markup.Paragraph, sheet.Paragraph},
		{markup.BulletItem, sheet.BulletItem},
		{markup.NumberedItem, sheet.NumberedItem},
		{markup.PageBreak, sheet.Paragraph},
		{markup.Kind(42), sheet.Paragraph},
	}
	for _, tt := range tests {
		if got := sheet.Resolve(tt.kind); got != tt.want {
			t.Errorf("Resolve(%v) = %+v, want %+v", tt.kind, got, tt.want)
		}
	}
}

func TestStyleSheet_Glyph(t *testing.T) {
	t.Parallel()

	sheet, err := BuiltinStyleSheet("default")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		block markup.Block
		want  string
	}{
		{markup.Block{Kind: markup.BulletItem}, "•"},
		{markup.Block{Kind: markup.NumberedItem, Number: 12}, "12."},
		{markup.Block{Kind: markup.Paragraph}, ""},
	}
	for _, tt := range tests {
		if got := sheet.Glyph(tt.block); got != tt.want {
			t.Errorf("Glyph(%v) = %q, want %q", tt.block.Kind, got, tt.want)
		}
	}
}

func TestStyle_RGB(t *testing.T) {
	t.Parallel()

	r, g, b := Style{Color: "#1F3A5F"}.RGB()
	if r != 0x1F || g != 0x3A || b != 0x5F {
		t.Errorf("RGB() = %d,%d,%d", r, g, b)
	}
}

// ---------------------------------------------------------------------------
// TestLoadStyleSheet - Name, path and asset directory lookup
// ---------------------------------------------------------------------------

func TestLoadStyleSheet_Sources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "mine.yaml")
	if err := os.WriteFile(file, []byte("name: mine\nparagraph:\n  font: Courier\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	assetDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assetDir, "styles"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assetDir, "styles", "letterhead.yaml"), []byte("name: letterhead\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		opts     []Option
		wantName string
		wantErr  error
	}{
		{name: "default", wantName: "default"},
		{name: "builtin by name", opts: []Option{WithStyleName("compact")}, wantName: "compact"},
		{name: "file path", opts: []Option{WithStyleName(file)}, wantName: "mine"},
		{name: "asset directory", opts: []Option{WithAssetPath(assetDir), WithStyleName("letterhead")}, wantName: "letterhead"},
		{name: "asset directory falls back", opts: []Option{WithAssetPath(assetDir), WithStyleName("classic")}, wantName: "classic"},
		{name: "explicit sheet", opts: []Option{WithStyleSheet(&StyleSheet{Name: "inline"})}, wantName: "inline"},
		{name: "missing name", opts: []Option{WithStyleName("nope")}, wantErr: ErrStyleNotFound},
		{name: "missing file", opts: []Option{WithStyleName(filepath.Join(dir, "none.yaml"))}, wantErr: ErrStyleNotFound},
		{name: "bad asset path", opts: []Option{WithAssetPath(filepath.Join(dir, "absent"))}, wantErr: ErrInvalidAssetPath},
		{name: "invalid name", opts: []Option{WithStyleName("bad.name")}, wantErr: ErrInvalidStyleSheet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r, err := NewRenderer(tt.opts...)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewRenderer() error = %v", err)
			}
			defer r.Close()
			if got := r.StyleSheet().Name; got != tt.wantName {
				t.Errorf("style sheet = %q, want %q", got, tt.wantName)
			}
		})
	}
}
