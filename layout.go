package textpdf

import (
	"math"

	"github.com/alnah/go-textpdf/internal/markup"
)

// US Letter, portrait, in points.
const (
	pageWidth     = 612.0
	pageHeight    = 792.0
	pointsPerInch = 72.0

	// contentPadding keeps text off the border stroke.
	contentPadding = 6.0

	// glyphGap separates a list glyph from the item text.
	glyphGap = 4.0
)

// pageLayout is the geometry shared by both engines. All values are points.
type pageLayout struct {
	margin      float64 // page edge to border
	borderWidth float64
	lineSpacing float64
}

func newPageLayout(in Input) pageLayout {
	return pageLayout{
		margin:      in.Margin * pointsPerInch,
		borderWidth: in.BorderWidth,
		lineSpacing: in.LineSpacing,
	}
}

// border returns the rectangle stroked on every page.
func (l pageLayout) border() (x, y, w, h float64) {
	return l.margin, l.margin, pageWidth - 2*l.margin, pageHeight - 2*l.margin
}

// inset is the distance from a page edge to the text area.
func (l pageLayout) inset() float64 {
	return l.margin + contentPadding
}

func (l pageLayout) contentWidth() float64 {
	return pageWidth - 2*l.inset()
}

// leading is the line height for a font size, in whole points.
func (l pageLayout) leading(size float64) float64 {
	return math.Round(size * l.lineSpacing)
}

// document is what an engine renders: normalized blocks plus everything
// needed to lay them out.
type document struct {
	blocks   []markup.Block
	layout   pageLayout
	sheet    *StyleSheet
	meta     Metadata
	compress bool
}
