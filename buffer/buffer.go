// Package buffer holds the editable text: an ordered list of grapheme-indexed
// lines plus the path it was loaded from.
package buffer

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/teichholz/texte/files"
)

// ErrNoPath is returned when saving a buffer that was never given a path.
var ErrNoPath = errors.New("buffer has no file path")

// Buffer is an ordered sequence of lines. The position one past the last line
// is always a valid place to insert.
type Buffer struct {
	lines []*Line
	path  string
	dirty bool
}

// New creates a buffer from lines of text.
func New(lines ...string) *Buffer {
	b := &Buffer{lines: make([]*Line, 0, len(lines))}
	for _, text := range lines {
		b.lines = append(b.lines, NewLine(text))
	}
	return b
}

// Load reads the file at path. The returned buffer is never nil: when reading
// fails it holds a single empty line and the error is returned alongside it.
func Load(path string) (*Buffer, error) {
	lines, err := files.Read(path)
	if err != nil {
		b := New("")
		b.path = path
		return b, fmt.Errorf("load %s: %w", path, err)
	}

	b := New(lines...)
	b.path = path
	return b, nil
}

// Path returns the file the buffer is bound to, or "".
func (b *Buffer) Path() string {
	return b.path
}

// Dirty reports whether the buffer changed since it was loaded or saved.
func (b *Buffer) Dirty() bool {
	return b.dirty
}

// Line returns the line at index, or nil when index is out of range.
func (b *Buffer) Line(index int) *Line {
	if index < 0 || index >= len(b.lines) {
		return nil
	}
	return b.lines[index]
}

// LineLen returns the length of the line at index; 0 when there is no line.
func (b *Buffer) LineLen(index int) int {
	if l := b.Line(index); l != nil {
		return l.Len()
	}
	return 0
}

func (b *Buffer) LineCount() int {
	return len(b.lines)
}

func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 0
}

// InsertChar inserts c at the given position. Inserting on the line one past
// the end appends a new line; anything further down is ignored.
func (b *Buffer) InsertChar(at Position, c rune) {
	at = at.normalize()
	switch {
	case at.Line == len(b.lines):
		l := NewLine("")
		l.Insert(0, c)
		b.lines = append(b.lines, l)
	case at.Line < len(b.lines):
		b.lines[at.Line].Insert(at.Column, c)
	default:
		return
	}
	b.dirty = true
}

// InsertNewline splits the line at the given position, moving the text after
// the column onto a new line below. On the line one past the end it appends an
// empty line.
func (b *Buffer) InsertNewline(at Position) {
	at = at.normalize()
	switch {
	case at.Line == len(b.lines):
		b.lines = append(b.lines, NewLine(""))
	case at.Line < len(b.lines):
		tail := b.lines[at.Line].Split(at.Column)
		b.lines = slices.Insert(b.lines, at.Line+1, tail)
	default:
		return
	}
	b.dirty = true
}

// DeleteAt removes the grapheme at the given position. At the end of a line
// that has a successor, the next line is joined onto it instead.
func (b *Buffer) DeleteAt(at Position) {
	at = at.normalize()
	if at.Line >= len(b.lines) {
		return
	}

	line := b.lines[at.Line]
	if at.Column == line.Len() && at.Line+1 < len(b.lines) {
		line.Append(b.lines[at.Line+1])
		b.lines = slices.Delete(b.lines, at.Line+1, at.Line+2)
		b.dirty = true
		return
	}

	if at.Column < line.Len() {
		line.Delete(at.Column)
		b.dirty = true
	}
}

// String joins all lines with '\n', terminating the last one.
func (b *Buffer) String() string {
	var sb strings.Builder
	for _, l := range b.lines {
		sb.WriteString(l.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Save writes the buffer to its path and returns the number of bytes written.
func (b *Buffer) Save() (int64, error) {
	if b.path == "" {
		return 0, ErrNoPath
	}

	n, err := files.Write(b.path, strings.NewReader(b.String()))
	if err != nil {
		return n, fmt.Errorf("save %s: %w", b.path, err)
	}
	b.dirty = false
	return n, nil
}
