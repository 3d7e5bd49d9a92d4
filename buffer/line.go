package buffer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabWidth is the number of spaces a tab expands to when rendered.
const TabWidth = 4

var tab = strings.Repeat(" ", TabWidth)

// Line is one row of text indexed by grapheme cluster.
type Line struct {
	text   string
	length int
}

// NewLine creates a line holding text. text must not contain a newline.
func NewLine(text string) *Line {
	l := &Line{text: text}
	l.recount()
	return l
}

func (l *Line) recount() {
	l.length = uniseg.GraphemeClusterCount(l.text)
}

// String returns the stored text, tabs unexpanded.
func (l *Line) String() string {
	return l.text
}

// Len returns the number of graphemes in the line.
func (l *Line) Len() int {
	return l.length
}

// offset returns the byte offset of the grapheme at column, or len(text) when
// column is at or past the end.
func (l *Line) offset(column int) int {
	if column <= 0 {
		return 0
	}
	if column >= l.length {
		return len(l.text)
	}

	g := uniseg.NewGraphemes(l.text)
	for i := 0; g.Next(); i++ {
		if i == column {
			from, _ := g.Positions()
			return from
		}
	}
	return len(l.text)
}

// Render returns graphemes [start, end) with tabs expanded. end is clamped to
// the length, start is clamped to end.
func (l *Line) Render(start, end int) string {
	end = max(min(end, l.length), 0)
	start = max(min(start, end), 0)
	if start == end {
		return ""
	}

	slice := l.text[l.offset(start):l.offset(end)]
	return strings.ReplaceAll(slice, "\t", tab)
}

// Insert puts c before the grapheme at column, or at the end when column is
// past it.
func (l *Line) Insert(column int, c rune) {
	at := l.offset(column)
	l.text = l.text[:at] + string(c) + l.text[at:]
	l.recount()
}

// Delete removes the grapheme at column. Columns at or past the end are ignored.
func (l *Line) Delete(column int) {
	if column < 0 || column >= l.length {
		return
	}
	l.text = l.text[:l.offset(column)] + l.text[l.offset(column+1):]
	l.recount()
}

// Append concatenates other onto the end of l. other is left untouched; the
// caller drops it.
func (l *Line) Append(other *Line) {
	l.text += other.text
	l.recount()
}

// Split truncates l at column and returns the remainder as a new line.
func (l *Line) Split(column int) *Line {
	at := l.offset(column)
	tail := NewLine(l.text[at:])
	l.text = l.text[:at]
	l.recount()
	return tail
}
