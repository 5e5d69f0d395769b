package textpdf

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-textpdf/internal/markup"
)

// buildHTML renders the document as a standalone HTML page for the chrome
// engine. The border is a fixed element, which Chrome repeats on every
// printed page; page margins are set in the print options.
func buildHTML(doc *document) (string, error) {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := element(atom.Html, "lang", "en")
	root.AppendChild(htmlEl)

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, "charset", "utf-8"))
	title := element(atom.Title)
	title.AppendChild(text(doc.meta.Title))
	head.AppendChild(title)
	for _, m := range [][2]string{
		{"author", doc.meta.Author},
		{"subject", doc.meta.Subject},
		{"generator", doc.meta.Creator},
	} {
		if m[1] != "" {
			head.AppendChild(element(atom.Meta, "name", m[0], "content", m[1]))
		}
	}
	style := element(atom.Style)
	style.AppendChild(text(buildCSS(doc)))
	head.AppendChild(style)
	htmlEl.AppendChild(head)

	body := element(atom.Body)
	body.AppendChild(element(atom.Div, "class", "frame"))
	for _, b := range doc.blocks {
		body.AppendChild(blockNode(doc.sheet, b))
	}
	htmlEl.AppendChild(body)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("%w: rendering HTML: %v", ErrPDFGeneration, err)
	}
	return buf.String(), nil
}

func blockNode(sheet *StyleSheet, b markup.Block) *html.Node {
	var n *html.Node
	switch {
	case b.Kind == markup.PageBreak:
		return element(atom.Div, "class", "page-break")
	case b.Kind.IsHeading():
		n = element([...]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4}[b.Kind.HeadingLevel()-1])
	case b.Kind.IsListItem():
		n = element(atom.P, "class", "item "+cssClass(b.Kind))
		glyph := element(atom.Span, "class", "glyph")
		glyph.AppendChild(text(sheet.Glyph(b)))
		n.AppendChild(glyph)
	default:
		n = element(atom.P)
	}
	appendRuns(n, b.Runs)
	return n
}

// appendRuns adds runs as text wrapped in <strong>/<em>, with <br> for
// soft breaks.
func appendRuns(parent *html.Node, runs []markup.Run) {
	for _, r := range runs {
		target := parent
		if r.Bold {
			strong := element(atom.Strong)
			target.AppendChild(strong)
			target = strong
		}
		if r.Italic {
			em := element(atom.Em)
			target.AppendChild(em)
			target = em
		}
		for i, part := range strings.Split(r.Text, "\n") {
			if i > 0 {
				target.AppendChild(element(atom.Br))
			}
			if part != "" {
				target.AppendChild(text(part))
			}
		}
	}
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

func cssClass(k markup.Kind) string {
	if k == markup.NumberedItem {
		return "numbered"
	}
	return "bullet"
}

// cssFamilies maps core fonts to installed equivalents.
var cssFamilies = map[string]string{
	FontHelvetica: `Helvetica, Arial, "Liberation Sans", sans-serif`,
	FontTimes:     `"Times New Roman", Times, "Liberation Serif", serif`,
	FontCourier:   `"Courier New", Courier, "Liberation Mono", monospace`,
}

func buildCSS(doc *document) string {
	l := doc.layout
	offset := contentPadding + l.borderWidth/2

	var sb strings.Builder
	sb.WriteString("html, body { margin: 0; padding: 0; }\n")
	fmt.Fprintf(&sb, ".frame { position: fixed; top: -%.2fpt; left: -%.2fpt; right: -%.2fpt; bottom: -%.2fpt; "+
		"border: %.2fpt solid #000; }\n", offset, offset, offset, offset, l.borderWidth)
	sb.WriteString(".page-break { break-after: page; height: 0; }\n")
	sb.WriteString("p, h1, h2, h3, h4 { margin: 0; }\n")
	sb.WriteString(".item { position: relative; }\n")
	sb.WriteString(".glyph { position: absolute; transform: translateX(-100%); " +
		"font-weight: normal; font-style: normal; }\n")

	rules := []struct {
		selector string
		style    Style
	}{
		{"p", doc.sheet.Paragraph},
		{"h1", doc.sheet.Heading1},
		{"h2", doc.sheet.Heading2},
		{"h3", doc.sheet.Heading3},
		{"h4", doc.sheet.Heading4},
		{"p.bullet", doc.sheet.BulletItem},
		{"p.numbered", doc.sheet.NumberedItem},
	}
	for _, r := range rules {
		writeStyleRule(&sb, r.selector, r.style, l.leading(r.style.Size))
	}
	// The glyph's right edge sits glyphGap before the item text.
	for _, r := range rules[5:] {
		fmt.Fprintf(&sb, "%s .glyph { left: %.2fpt; }\n", r.selector, max(r.style.Indent-glyphGap, 0))
	}
	return sb.String()
}

func writeStyleRule(sb *strings.Builder, selector string, st Style, leading float64) {
	weight, fontStyle := "normal", "normal"
	if st.Bold {
		weight = "bold"
	}
	if st.Italic {
		fontStyle = "italic"
	}
	fmt.Fprintf(sb, "%s { font-family: %s; font-size: %.2fpt; font-weight: %s; font-style: %s; "+
		"color: %s; line-height: %.0fpt; text-align: %s; padding-top: %.2fpt; padding-bottom: %.2fpt; "+
		"padding-left: %.2fpt; }\n",
		selector, cssFamilies[st.Font], st.Size, weight, fontStyle,
		st.Color, leading, st.Align, st.SpaceBefore, st.SpaceAfter, st.Indent)
}
