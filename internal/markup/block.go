package markup

import "strings"

// Kind identifies the role of a Block in the document.
type Kind int

// Block kinds, in no particular order of precedence.
const (
	Paragraph Kind = iota
	Heading1
	Heading2
	Heading3
	Heading4
	BulletItem
	NumberedItem
	PageBreak
)

// MaxHeadingLevel is the deepest heading the normalizer recognizes.
const MaxHeadingLevel = 4

var kindNames = [...]string{
	Paragraph:    "paragraph",
	Heading1:     "heading-1",
	Heading2:     "heading-2",
	Heading3:     "heading-3",
	Heading4:     "heading-4",
	BulletItem:   "list-item-bullet",
	NumberedItem: "list-item-numbered",
	PageBreak:    "page-break",
}

// String returns the kind name, e.g. "heading-2".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsHeading reports whether k is one of Heading1..Heading4.
func (k Kind) IsHeading() bool {
	return k >= Heading1 && k <= Heading4
}

// IsListItem reports whether k is a bullet or numbered list item.
func (k Kind) IsListItem() bool {
	return k == BulletItem || k == NumberedItem
}

// HeadingLevel returns 1-4 for heading kinds and 0 otherwise.
func (k Kind) HeadingLevel() int {
	if !k.IsHeading() {
		return 0
	}
	return int(k-Heading1) + 1
}

// HeadingKind maps a level (1-4) to its heading kind.
// Out-of-range levels map to Paragraph.
func HeadingKind(level int) Kind {
	if level < 1 || level > MaxHeadingLevel {
		return Paragraph
	}
	return Heading1 + Kind(level-1)
}

// Run is a span of text sharing one inline style.
// A "\n" inside Text is a soft line break within the same block.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
}

// Block is one discrete content unit in document order.
type Block struct {
	Kind Kind
	Runs []Run

	// Number is the ordinal shown before a NumberedItem; zero otherwise.
	Number int
}

// Text returns the block content with all styling removed.
func (b Block) Text() string {
	var sb strings.Builder
	for _, r := range b.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// CountContent returns the number of blocks that carry content,
// i.e. everything except page breaks.
func CountContent(blocks []Block) int {
	n := 0
	for _, b := range blocks {
		if b.Kind != PageBreak {
			n++
		}
	}
	return n
}

// FirstHeading returns the plain text of the first heading, or "".
func FirstHeading(blocks []Block) string {
	for _, b := range blocks {
		if b.Kind.IsHeading() {
			return b.Text()
		}
	}
	return ""
}
