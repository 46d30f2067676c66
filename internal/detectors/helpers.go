package detectors

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Lines resolves offsets in a text to 1-based line and column numbers.
// Columns count characters, not bytes.
type Lines struct {
	text string
	nl   []int // byte offsets of '\n'
}

// NewLines indexes the newlines of text.
func NewLines(text string) *Lines {
	var nl []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			nl = append(nl, i)
		}
	}
	return &Lines{text: text, nl: nl}
}

// Position returns the line and column of the byte offset off.
func (l *Lines) Position(off int) (line, col int) {
	// newlines strictly before off
	n := sort.SearchInts(l.nl, off)
	start := 0
	if n > 0 {
		start = l.nl[n-1] + 1
	}
	return n + 1, utf8.RuneCountInString(l.text[start:off]) + 1
}

// LineAt returns the full line containing off, without its terminator.
func (l *Lines) LineAt(off int) string {
	n := sort.SearchInts(l.nl, off)
	start := 0
	if n > 0 {
		start = l.nl[n-1] + 1
	}
	end := len(l.text)
	if n < len(l.nl) {
		end = l.nl[n]
	}
	return strings.TrimSuffix(l.text[start:end], "\r")
}

// Position is a convenience wrapper for a single lookup.
func Position(text string, off int) (line, col int) {
	return NewLines(text).Position(off)
}
