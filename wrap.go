package shapeframe

import "strings"

// MeasureFunc returns the rendered width of s. It must return the same
// width for the same string on every call.
type MeasureFunc func(s string) float64

// Line is a wrapped line and the baseline it is drawn at.
type Line struct {
	Text string
	Y    float64
}

// WrapText breaks text into lines no wider than maxWidth using a greedy
// single pass.
//
// Words are separated by single spaces; runs of spaces produce empty words.
// Each word is appended together with a trailing space, so every line ends
// in a space. When appending a word would make the line wider than
// maxWidth, the line built so far is committed and the word starts the
// next line. The remainder is committed at the end.
//
// A word wider than maxWidth is not truncated: it ends up alone on its
// line and overflows. If it is the first word, the line committed before
// it is empty.
func WrapText(text string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Split(text, " ")
	lines := make([]string, 0, 4)

	var line string
	for _, word := range words {
		test := line + word + " "
		if measure(test) > maxWidth {
			lines = append(lines, line)
			line = word + " "
			continue
		}
		line = test
	}
	return append(lines, line)
}

// LayoutText wraps text and assigns baselines: the first line sits at
// startY and each following line lineHeight below the previous one.
func LayoutText(text string, maxWidth, lineHeight, startY float64, measure MeasureFunc) []Line {
	wrapped := WrapText(text, maxWidth, measure)
	out := make([]Line, len(wrapped))
	for i, s := range wrapped {
		out[i] = Line{Text: s, Y: startY + float64(i)*lineHeight}
	}
	return out
}
