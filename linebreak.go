package textpdf

import "github.com/alnah/go-textpdf/internal/markup"

// widthEpsilon absorbs float error when a line fills the width exactly.
const widthEpsilon = 1e-6

type fontFace struct {
	bold, italic bool
}

// measureFunc returns the width of already encoded text in a face, at the
// size of the block being laid out.
type measureFunc func(text string, face fontFace) float64

// fragment is a span of one face inside a word.
type fragment struct {
	text  string
	face  fontFace
	width float64
}

// word is a run of non-space bytes, possibly mixing faces ("**bold**,").
type word struct {
	frags []fragment
	width float64
	space float64 // width of the space after the word
}

// textLine is one output line of a block.
type textLine struct {
	words []word
	width float64 // words plus the spaces between them

	// last marks the end of a hard line (soft break or end of block).
	// Such lines are never stretched when justifying.
	last bool
}

// splitWords encodes the runs and cuts them into hard lines of words.
// Soft breaks end a hard line; runs of spaces collapse to one.
func splitWords(runs []markup.Run, measure measureFunc) [][]word {
	var (
		lines [][]word
		line  []word
		cur   word
		frag  fragment
	)

	endFrag := func() {
		if frag.text != "" {
			frag.width = measure(frag.text, frag.face)
			cur.frags = append(cur.frags, frag)
			cur.width += frag.width
		}
		frag = fragment{face: frag.face}
	}
	endWord := func() {
		endFrag()
		if len(cur.frags) > 0 {
			last := cur.frags[len(cur.frags)-1].face
			cur.space = measure(" ", last)
			line = append(line, cur)
		}
		cur = word{}
	}

	for _, run := range runs {
		face := fontFace{bold: run.Bold, italic: run.Italic}
		if face != frag.face {
			endFrag()
			frag.face = face
		}
		text := toWinAnsi(run.Text)
		for i := 0; i < len(text); {
			switch text[i] {
			case ' ':
				endWord()
				i++
			case '\n':
				endWord()
				lines = append(lines, line)
				line = nil
				i++
			default:
				j := i
				for j < len(text) && text[j] != ' ' && text[j] != '\n' {
					j++
				}
				frag.text += text[i:j]
				i = j
			}
		}
	}
	endWord()
	return append(lines, line)
}

// breakLines fills lines greedily up to avail. A word wider than avail is
// cut at byte boundaries, which are character boundaries once encoded.
func breakLines(hard [][]word, avail float64, measure measureFunc) []textLine {
	var out []textLine
	for _, words := range hard {
		var cur textLine
		for _, w := range words {
			for _, piece := range splitLongWord(w, avail, measure) {
				n := len(cur.words)
				if n > 0 && cur.width+cur.words[n-1].space+piece.width > avail+widthEpsilon {
					out = append(out, cur)
					cur = textLine{}
					n = 0
				}
				if n > 0 {
					cur.width += cur.words[n-1].space
				}
				cur.words = append(cur.words, piece)
				cur.width += piece.width
			}
		}
		cur.last = true
		out = append(out, cur)
	}
	return out
}

func splitLongWord(w word, avail float64, measure measureFunc) []word {
	if w.width <= avail+widthEpsilon {
		return []word{w}
	}

	var (
		pieces []word
		cur    word
	)
	for _, f := range w.frags {
		for i := 0; i < len(f.text); i++ {
			ch := f.text[i : i+1]
			cw := measure(ch, f.face)
			if cur.width > 0 && cur.width+cw > avail+widthEpsilon {
				pieces = append(pieces, cur)
				cur = word{}
			}
			if n := len(cur.frags); n > 0 && cur.frags[n-1].face == f.face {
				cur.frags[n-1].text += ch
				cur.frags[n-1].width += cw
			} else {
				cur.frags = append(cur.frags, fragment{text: ch, face: f.face, width: cw})
			}
			cur.width += cw
		}
	}
	cur.space = w.space
	return append(pieces, cur)
}

// placeLine returns the x offset of every word relative to the start of
// the text area, for a line of the given alignment.
func placeLine(line textLine, avail float64, align Align) []float64 {
	n := len(line.words)
	xs := make([]float64, n)
	if n == 0 {
		return xs
	}

	slack := avail - line.width
	if slack < 0 {
		slack = 0
	}

	var start, extra float64
	switch align {
	case AlignCenter:
		start = slack / 2
	case AlignRight:
		start = slack
	case AlignJustify:
		if !line.last && n > 1 {
			extra = slack / float64(n-1)
		}
	}

	x := start
	for i, w := range line.words {
		xs[i] = x
		x += w.width + w.space + extra
	}
	return xs
}
