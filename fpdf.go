package textpdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/alnah/go-textpdf/internal/markup"
)

// fpdfEngine draws with the PDF core fonts. It holds no state between
// renders and is safe for concurrent use.
type fpdfEngine struct{}

func (*fpdfEngine) render(ctx context.Context, doc *document) ([]byte, int, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		SizeStr:        "Letter",
	})
	pdf.SetCompression(doc.compress)

	inset := doc.layout.inset()
	pdf.SetMargins(inset, inset, inset)
	pdf.SetAutoPageBreak(true, inset)
	pdf.SetCellMargin(0)
	setPDFMetadata(pdf, doc.meta)

	w := &fpdfWriter{pdf: pdf, doc: doc}
	// Called by AddPage, including the implicit ones of auto page break.
	pdf.SetHeaderFunc(w.decoratePage)
	pdf.AddPage()

	for _, b := range doc.blocks {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		w.block(b)
		if pdf.Err() {
			break
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), pdf.PageNo(), nil
}

func (*fpdfEngine) Close() error { return nil }

func setPDFMetadata(pdf *fpdf.Fpdf, m Metadata) {
	if m.Title != "" {
		pdf.SetTitle(m.Title, true)
	}
	if m.Author != "" {
		pdf.SetAuthor(m.Author, true)
	}
	if m.Subject != "" {
		pdf.SetSubject(m.Subject, true)
	}
	if m.Creator != "" {
		pdf.SetCreator(m.Creator, true)
	}
}

// fpdfWriter flows blocks onto the pages of one document.
type fpdfWriter struct {
	pdf *fpdf.Fpdf
	doc *document

	// fresh is true until something is drawn on the current page.
	fresh bool
}

// decoratePage strokes the border. Line width and color are restored by
// fpdf after the header returns.
func (w *fpdfWriter) decoratePage() {
	x, y, bw, bh := w.doc.layout.border()
	w.pdf.SetLineWidth(w.doc.layout.borderWidth)
	w.pdf.SetDrawColor(0, 0, 0)
	w.pdf.Rect(x, y, bw, bh, "D")
	w.fresh = true
}

func (w *fpdfWriter) block(b markup.Block) {
	if b.Kind == markup.PageBreak {
		if !w.fresh {
			w.pdf.AddPage()
		}
		return
	}

	layout := w.doc.layout
	st := w.doc.sheet.Resolve(b.Kind)
	lead := layout.leading(st.Size)

	if !w.fresh && st.SpaceBefore > 0 {
		w.pdf.Ln(st.SpaceBefore)
	}

	measure := func(text string, face fontFace) float64 {
		w.setFont(st, face)
		return w.pdf.GetStringWidth(text)
	}

	left := layout.inset() + st.Indent
	avail := layout.contentWidth() - st.Indent

	glyph := toWinAnsi(w.doc.sheet.Glyph(b))
	var glyphX, glyphW float64
	if glyph != "" {
		glyphW = measure(glyph, fontFace{})
		glyphX = left - glyphGap - glyphW
		if floor := layout.inset(); glyphX < floor {
			shift := floor - glyphX
			glyphX = floor
			left += shift
			avail -= shift
		}
	}

	r, g, bl := st.RGB()
	w.pdf.SetTextColor(r, g, bl)

	for i, line := range breakLines(splitWords(b.Runs, measure), avail, measure) {
		if i == 0 && glyph != "" {
			w.setFont(st, fontFace{})
			w.cell(glyphX, glyphW, lead, glyph)
		}
		if len(line.words) == 0 {
			w.cell(left, 0, lead, "")
		}
		xs := placeLine(line, avail, st.Align)
		for j, wd := range line.words {
			x := left + xs[j]
			for _, f := range wd.frags {
				w.setFont(st, f.face)
				w.cell(x, f.width, lead, f.text)
				x += f.width
			}
		}
		w.pdf.Ln(lead)
	}

	if st.SpaceAfter > 0 {
		w.pdf.Ln(st.SpaceAfter)
	}
}

// cell draws text at x on the current line. fpdf breaks the page itself
// when the cell would cross the bottom margin, keeping x.
func (w *fpdfWriter) cell(x, width, height float64, text string) {
	w.pdf.SetX(x)
	w.pdf.CellFormat(width, height, text, "", 0, "L", false, 0, "")
	w.fresh = false
}

func (w *fpdfWriter) setFont(st Style, face fontFace) {
	style := ""
	if st.Bold || face.bold {
		style += "B"
	}
	if st.Italic || face.italic {
		style += "I"
	}
	w.pdf.SetFont(st.Font, style, st.Size)
}
