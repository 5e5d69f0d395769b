package markup

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// PageBreakChar is the form feed that separates pages in the source text.
const PageBreakChar = '\f'

// maxOrdinalDigits bounds numbered-list markers ("123456789." at most).
const maxOrdinalDigits = 9

// bulletMarkers are the characters that open a bullet list item.
const bulletMarkers = "-*+•"

// listKind is the kind of list run the scanner is currently inside.
type listKind int

const (
	noList listKind = iota
	bulletList
	numberedList
)

// Normalize converts text into blocks in source order.
//
// Segments separated by form feeds are scanned independently and joined by
// PageBreak blocks. Segments that produce no blocks are dropped, so the
// result never starts or ends with a PageBreak and never holds two in a row.
// The empty string yields an empty slice.
func Normalize(text string) []Block {
	if text == "" {
		return nil
	}

	text = NormalizeLineEndings(text)

	var blocks []Block
	for _, segment := range strings.Split(text, string(PageBreakChar)) {
		segBlocks := scanSegment(segment)
		if len(segBlocks) == 0 {
			continue
		}
		if len(blocks) > 0 {
			blocks = append(blocks, Block{Kind: PageBreak})
		}
		blocks = append(blocks, segBlocks...)
	}
	return blocks
}

// NormalizeLineEndings converts \r\n and lone \r to \n.
func NormalizeLineEndings(text string) string {
	if !strings.ContainsRune(text, '\r') {
		return text
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// scanner walks the lines of one page segment and emits blocks.
// It keeps the open paragraph and the open list run as explicit state.
type scanner struct {
	blocks []Block
	para   []string
	list   listKind
	next   int // ordinal for the next item of a numbered run
}

func scanSegment(segment string) []Block {
	s := &scanner{}
	for _, line := range strings.Split(segment, "\n") {
		s.scanLine(line)
	}
	s.flushParagraph()
	return s.blocks
}

func (s *scanner) scanLine(line string) {
	body := strings.TrimSpace(line)
	if body == "" {
		s.flushParagraph()
		s.closeList()
		return
	}

	if level, content, ok := parseHeading(body); ok {
		s.flushParagraph()
		s.closeList()
		if runs := ParseInline(content); len(runs) > 0 {
			s.blocks = append(s.blocks, Block{Kind: HeadingKind(level), Runs: runs})
		}
		return
	}

	if kind, ordinal, content, ok := parseListItem(body); ok {
		s.flushParagraph()
		s.addItem(kind, ordinal, content)
		return
	}

	// Ordinary text closes any open list before it starts or extends a paragraph.
	s.closeList()
	s.para = append(s.para, body)
}

func (s *scanner) addItem(kind listKind, ordinal int, content string) {
	if kind != s.list {
		s.list = kind
		s.next = ordinal
	}

	b := Block{Kind: BulletItem, Runs: ParseInline(content)}
	if kind == numberedList {
		b.Kind = NumberedItem
		b.Number = s.next
		s.next++
	}
	s.blocks = append(s.blocks, b)
}

func (s *scanner) closeList() {
	s.list = noList
	s.next = 0
}

func (s *scanner) flushParagraph() {
	if len(s.para) == 0 {
		return
	}
	runs := ParseInline(strings.Join(s.para, "\n"))
	s.para = s.para[:0]
	if len(runs) > 0 {
		s.blocks = append(s.blocks, Block{Kind: Paragraph, Runs: runs})
	}
}

// parseHeading recognizes "#".."####" followed by a space or tab.
func parseHeading(line string) (level int, content string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > MaxHeadingLevel || level == len(line) {
		return 0, "", false
	}
	if !isBlank(line[level]) {
		return 0, "", false
	}
	return level, strings.TrimSpace(line[level:]), true
}

// parseListItem recognizes bullet ("- x") and numbered ("3. x") items.
// For bullets the returned ordinal is zero.
func parseListItem(line string) (kind listKind, ordinal int, content string, ok bool) {
	r, size := utf8.DecodeRuneInString(line)
	if strings.ContainsRune(bulletMarkers, r) {
		if size < len(line) && isBlank(line[size]) {
			return bulletList, 0, strings.TrimSpace(line[size:]), true
		}
		return noList, 0, "", false
	}

	digits := 0
	for digits < len(line) && line[digits] >= '0' && line[digits] <= '9' {
		digits++
	}
	if digits == 0 || digits > maxOrdinalDigits {
		return noList, 0, "", false
	}
	if digits+1 >= len(line) || line[digits] != '.' || !isBlank(line[digits+1]) {
		return noList, 0, "", false
	}
	n, err := strconv.Atoi(line[:digits])
	if err != nil {
		return noList, 0, "", false
	}
	return numberedList, n, strings.TrimSpace(line[digits+1:]), true
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
