package textpdf

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-textpdf/internal/assets"
	"github.com/alnah/go-textpdf/internal/fileutil"
	"github.com/alnah/go-textpdf/internal/markup"
	"github.com/alnah/go-textpdf/internal/yamlutil"
)

// Align is the horizontal alignment of a block's lines.
type Align string

const (
	AlignLeft    Align = "left"
	AlignCenter  Align = "center"
	AlignRight   Align = "right"
	AlignJustify Align = "justify"
)

// Fonts accepted in style sheets. These are the PDF core fonts, so no font
// files are embedded.
const (
	FontHelvetica = "Helvetica"
	FontTimes     = "Times"
	FontCourier   = "Courier"
)

// DefaultStyleName is the built-in sheet used when none is selected.
const DefaultStyleName = assets.DefaultStyleSheet

// Style limits.
const (
	maxFontSize = 72.0
	maxSpacing  = 144.0 // space before/after, points
	maxIndent   = 144.0
	maxGlyphLen = 4
)

// Style is the visual profile bound to a block kind. Sizes are points.
type Style struct {
	Font        string  `yaml:"font"`
	Bold        bool    `yaml:"bold"`
	Italic      bool    `yaml:"italic"`
	Size        float64 `yaml:"size"`
	Color       string  `yaml:"color"` // #RRGGBB
	SpaceBefore float64 `yaml:"space_before"`
	SpaceAfter  float64 `yaml:"space_after"`
	Align       Align   `yaml:"align"`
	Indent      float64 `yaml:"indent"`
}

// RGB returns the color components. Call only on a validated style.
func (s Style) RGB() (r, g, b int) {
	v, _ := strconv.ParseUint(strings.TrimPrefix(s.Color, "#"), 16, 32)
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff)
}

// StyleSheet binds a Style to every block kind. Font, size, color and
// alignment left empty in a style are inherited from Paragraph.
type StyleSheet struct {
	Name         string `yaml:"name"`
	Bullet       string `yaml:"bullet"` // glyph before bullet items
	Paragraph    Style  `yaml:"paragraph"`
	Heading1     Style  `yaml:"heading_1"`
	Heading2     Style  `yaml:"heading_2"`
	Heading3     Style  `yaml:"heading_3"`
	Heading4     Style  `yaml:"heading_4"`
	BulletItem   Style  `yaml:"bullet_item"`
	NumberedItem Style  `yaml:"numbered_item"`
}

// ParseStyleSheet decodes a YAML sheet, fills inherited fields and
// validates the result. Unknown keys are rejected.
func ParseStyleSheet(data []byte) (*StyleSheet, error) {
	var sheet StyleSheet
	if err := yamlutil.UnmarshalStrict(data, &sheet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleSheet, err)
	}
	sheet.inherit()
	if err := sheet.Validate(); err != nil {
		return nil, err
	}
	return &sheet, nil
}

// BuiltinStyleSheet returns one of the embedded sheets.
func BuiltinStyleSheet(name string) (*StyleSheet, error) {
	return loadStyleSheet(assets.NewEmbeddedLoader(), name)
}

// BuiltinStyleSheetNames lists the embedded sheets.
func BuiltinStyleSheetNames() []string {
	names, _ := assets.StyleSheetNames()
	return names
}

// loadStyleSheet resolves nameOrPath through loader, or reads it from disk
// when it looks like a path.
func loadStyleSheet(loader assets.Loader, nameOrPath string) (*StyleSheet, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultStyleName
	}

	var data []byte
	var err error
	if fileutil.IsFilePath(nameOrPath) {
		data, err = os.ReadFile(nameOrPath) // #nosec G304 -- user-selected style file
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrStyleNotFound, nameOrPath)
		}
	} else {
		data, err = loader.LoadStyleSheet(nameOrPath)
		if errors.Is(err, assets.ErrStyleNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrStyleNotFound, nameOrPath)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidStyleSheet, err)
	}

	sheet, err := ParseStyleSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameOrPath, err)
	}
	return sheet, nil
}

func (s *StyleSheet) inherit() {
	if s.Bullet == "" {
		s.Bullet = "•"
	}
	p := &s.Paragraph
	if p.Font == "" {
		p.Font = FontHelvetica
	}
	if p.Size == 0 {
		p.Size = 11
	}
	if p.Color == "" {
		p.Color = "#000000"
	}
	if p.Align == "" {
		p.Align = AlignLeft
	}
	for _, st := range s.derived() {
		if st.Font == "" {
			st.Font = p.Font
		}
		if st.Size == 0 {
			st.Size = p.Size
		}
		if st.Color == "" {
			st.Color = p.Color
		}
		if st.Align == "" {
			st.Align = p.Align
		}
	}
}

func (s *StyleSheet) derived() []*Style {
	return []*Style{&s.Heading1, &s.Heading2, &s.Heading3, &s.Heading4, &s.BulletItem, &s.NumberedItem}
}

// Validate checks every style. Font names are canonicalized in place.
func (s *StyleSheet) Validate() error {
	if n := utf8.RuneCountInString(s.Bullet); n == 0 || n > maxGlyphLen {
		return fmt.Errorf("%w: bullet: must be 1 to %d characters, got %q", ErrInvalidStyleSheet, maxGlyphLen, s.Bullet)
	}

	named := []struct {
		key   string
		style *Style
	}{
		{"paragraph", &s.Paragraph},
		{"heading_1", &s.Heading1},
		{"heading_2", &s.Heading2},
		{"heading_3", &s.Heading3},
		{"heading_4", &s.Heading4},
		{"bullet_item", &s.BulletItem},
		{"numbered_item", &s.NumberedItem},
	}
	for _, n := range named {
		if err := n.style.validate(); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidStyleSheet, n.key, err)
		}
	}
	return nil
}

func (st *Style) validate() error {
	font, ok := canonicalFont(st.Font)
	if !ok {
		return fmt.Errorf("font %q not supported (use %s, %s or %s)", st.Font, FontHelvetica, FontTimes, FontCourier)
	}
	st.Font = font

	if st.Size <= 0 || st.Size > maxFontSize {
		return fmt.Errorf("size %g out of range (0, %g]", st.Size, maxFontSize)
	}
	if !validHexColor(st.Color) {
		return fmt.Errorf("color %q is not #RRGGBB", st.Color)
	}
	switch st.Align {
	case AlignLeft, AlignCenter, AlignRight, AlignJustify:
	default:
		return fmt.Errorf("align %q (use left, center, right or justify)", st.Align)
	}
	if st.SpaceBefore < 0 || st.SpaceBefore > maxSpacing || st.SpaceAfter < 0 || st.SpaceAfter > maxSpacing {
		return fmt.Errorf("spacing must be between 0 and %g", maxSpacing)
	}
	if st.Indent < 0 || st.Indent > maxIndent {
		return fmt.Errorf("indent %g out of range [0, %g]", st.Indent, maxIndent)
	}
	return nil
}

// canonicalFont maps accepted spellings to a core font family.
func canonicalFont(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "helvetica", "arial", "sans", "sans-serif":
		return FontHelvetica, true
	case "times", "times-roman", "times new roman", "serif":
		return FontTimes, true
	case "courier", "courier new", "monospace":
		return FontCourier, true
	}
	return "", false
}

func validHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := strconv.ParseUint(s[1:], 16, 32)
	return err == nil
}

// Resolve returns the style for kind. Kinds without a style of their own,
// page breaks included, get the paragraph style.
func (s *StyleSheet) Resolve(kind markup.Kind) Style {
	switch kind {
	case markup.Heading1:
		return s.Heading1
	case markup.Heading2:
		return s.Heading2
	case markup.Heading3:
		return s.Heading3
	case markup.Heading4:
		return s.Heading4
	case markup.BulletItem:
		return s.BulletItem
	case markup.NumberedItem:
		return s.NumberedItem
	default:
		return s.Paragraph
	}
}

// Glyph returns the marker drawn before a list item, or "".
func (s *StyleSheet) Glyph(b markup.Block) string {
	switch b.Kind {
	case markup.BulletItem:
		return s.Bullet
	case markup.NumberedItem:
		return strconv.Itoa(b.Number) + "."
	default:
		return ""
	}
}
