package textpdf

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// toWinAnsi converts UTF-8 text to the Windows-1252 bytes the PDF core
// fonts expect. Text is NFC-composed first so "e" + combining acute maps to
// a single byte. Runes outside the code page become '?', tabs become spaces.
func toWinAnsi(s string) string {
	s = norm.NFC.String(s)

	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r == '\t' {
			sb.WriteByte(' ')
			continue
		}
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		sb.WriteByte(b)
	}
	return sb.String()
}
