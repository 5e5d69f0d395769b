package markup

import "strings"

const emphasisMarker = '*'

// ParseInline splits text into runs of plain, bold and italic text.
//
// The scan is a single left-to-right pass. At every marker, strong emphasis
// ("**") is tried before emphasis ("*"), which makes "***x***" bold text
// wrapping italic text. An opening marker must be followed by a non-blank
// character and a closing marker preceded by one, so "2 * 3 * 4" stays
// literal. Markers that cannot be closed are kept as literal text.
func ParseInline(text string) []Run {
	var p inlineParser
	p.parse(text, false, false)
	return p.runs
}

type inlineParser struct {
	runs []Run
}

func (p *inlineParser) parse(text string, bold, italic bool) {
	var plain strings.Builder
	flush := func() {
		if plain.Len() > 0 {
			p.emit(plain.String(), bold, italic)
			plain.Reset()
		}
	}

	for i := 0; i < len(text); {
		if text[i] != emphasisMarker {
			plain.WriteByte(text[i])
			i++
			continue
		}

		if i+1 < len(text) && text[i+1] == emphasisMarker {
			if end := closingStrong(text, i+2); end >= 0 {
				flush()
				p.parse(text[i+2:end], true, italic)
				i = end + 2
				continue
			}
			plain.WriteString("**")
			i += 2
			continue
		}

		if end := closingEmphasis(text, i+1); end >= 0 {
			flush()
			p.parse(text[i+1:end], bold, true)
			i = end + 1
			continue
		}
		plain.WriteByte(emphasisMarker)
		i++
	}
	flush()
}

// emit appends a run, merging it into the previous one when styles match.
func (p *inlineParser) emit(text string, bold, italic bool) {
	if n := len(p.runs); n > 0 && p.runs[n-1].Bold == bold && p.runs[n-1].Italic == italic {
		p.runs[n-1].Text += text
		return
	}
	p.runs = append(p.runs, Run{Text: text, Bold: bold, Italic: italic})
}

// closingStrong returns the index of the "**" that closes a strong span
// whose content starts at from, or -1. Inside a run of three or more stars
// the closer binds to the last two, leaving the others to the content.
func closingStrong(text string, from int) int {
	if from >= len(text) || isSpaceByte(text[from]) {
		return -1
	}
	for j := from; j < len(text); {
		if text[j] != emphasisMarker {
			j++
			continue
		}
		n := markerRun(text, j)
		if n >= 2 && j > from && !isSpaceByte(text[j-1]) {
			return j + n - 2
		}
		j += n
	}
	return -1
}

// closingEmphasis returns the index of the single "*" that closes an
// emphasis span whose content starts at from, or -1. Double markers met on
// the way belong to nested strong spans and are skipped.
func closingEmphasis(text string, from int) int {
	if from >= len(text) || isSpaceByte(text[from]) {
		return -1
	}
	for j := from; j < len(text); {
		if text[j] != emphasisMarker {
			j++
			continue
		}
		n := markerRun(text, j)
		if n == 1 && j > from && !isSpaceByte(text[j-1]) {
			return j
		}
		j += n
	}
	return -1
}

// markerRun counts consecutive markers starting at i.
func markerRun(text string, i int) int {
	n := 0
	for i+n < len(text) && text[i+n] == emphasisMarker {
		n++
	}
	return n
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}
