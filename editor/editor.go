// Package editor keeps the cursor, the buffer and the visible viewport
// consistent with each other.
//
// Every intent runs in two phases: the edit or movement computes a new cursor
// position clamped to the shape of the buffer, then the scroll step moves the
// viewport offset just far enough for the cursor to be visible.
package editor

import (
	"github.com/rivo/uniseg"

	"github.com/teichholz/texte/buffer"
)

type Editor struct {
	buf    *buffer.Buffer
	size   SizeProvider
	cursor buffer.Position
	offset buffer.Position
}

// New creates an editor on buf with the cursor at the origin.
func New(buf *buffer.Buffer, size SizeProvider) *Editor {
	return &Editor{buf: buf, size: size}
}

func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// SetBuffer replaces the buffer wholesale and resets cursor and offset.
func (e *Editor) SetBuffer(buf *buffer.Buffer) {
	e.buf = buf
	e.cursor = buffer.Position{}
	e.offset = buffer.Position{}
}

// Cursor returns the cursor in buffer coordinates.
func (e *Editor) Cursor() buffer.Position {
	return e.cursor
}

// Offset returns the buffer coordinate shown in the top-left cell.
func (e *Editor) Offset() buffer.Position {
	return e.offset
}

// ScreenCursor returns the cursor relative to the viewport, in cells.
func (e *Editor) ScreenCursor() (x, y int) {
	y = e.cursor.Line - e.offset.Line
	if l := e.buf.Line(e.cursor.Line); l != nil {
		x = uniseg.GraphemeClusterCount(l.Render(e.offset.Column, e.cursor.Column))
	}
	return x, y
}

// Apply runs one intent followed by the scroll step.
func (e *Editor) Apply(in Intent) {
	switch {
	case in.Action.IsMovement():
		e.move(in.Action)
	case in.Action == InsertChar:
		e.insert(in.Char)
	case in.Action == Newline:
		e.newline()
	case in.Action == Delete:
		e.erase(Forward)
	case in.Action == Backspace:
		e.erase(Backward)
	}
	e.scroll()
}

// Erase deletes next to the cursor. Forward removes the grapheme under the
// cursor, or joins the next line at the end of a line. Backward removes the
// grapheme before the cursor, or joins the current line onto the previous one
// at column 0. Erasing backward at the origin does nothing.
func (e *Editor) Erase(dir Direction) {
	e.erase(dir)
	e.scroll()
}

func (e *Editor) erase(dir Direction) {
	if dir == Backward {
		if e.cursor.Column == 0 && e.cursor.Line == 0 {
			return
		}
		e.move(Left)
	}
	e.buf.DeleteAt(e.cursor)
}

func (e *Editor) insert(c rune) {
	before := e.buf.LineLen(e.cursor.Line)
	e.buf.InsertChar(e.cursor, c)
	// a combining mark joins the grapheme before the cursor
	if e.buf.LineLen(e.cursor.Line) > before {
		e.move(Right)
	}
}

func (e *Editor) newline() {
	if e.cursor.Line > e.buf.LineCount() {
		return
	}
	e.buf.InsertNewline(e.cursor)
	e.cursor = buffer.Pos(0, e.cursor.Line+1)
}

func (e *Editor) move(a Action) {
	col, line := e.cursor.Column, e.cursor.Line
	count := e.buf.LineCount()

	switch a {
	case Up:
		line = max(line-1, 0)
	case Down:
		line = min(line+1, count)
	case Left:
		if col > 0 {
			col--
		} else if line > 0 {
			line--
			col = e.buf.LineLen(line)
		}
	case Right:
		if col < e.buf.LineLen(line) {
			col++
		} else if line < count {
			line++
			col = 0
		}
	case PageUp:
		line = max(line-e.pageHeight(), 0)
	case PageDown:
		line = min(line+e.pageHeight(), count)
	case Home:
		col = 0
	case End:
		col = e.buf.LineLen(line)
	}

	// the destination line may be shorter than the one we came from
	col = min(col, e.buf.LineLen(line))
	e.cursor = buffer.Pos(col, line)
}

func (e *Editor) pageHeight() int {
	return max(e.size.ViewportSize().Height, 1)
}

// scroll moves the offset the least distance that keeps the cursor on a drawn
// cell: once the cursor reaches row off+H (or column off+W) the offset snaps so
// the cursor sits on the last visible row (or column).
func (e *Editor) scroll() {
	size := e.size.ViewportSize()
	width, height := max(size.Width, 1), max(size.Height, 1)
	col, row := e.cursor.Column, e.cursor.Line

	if row < e.offset.Line {
		e.offset.Line = row
	} else if row >= e.offset.Line+height {
		e.offset.Line = max(row-height+1, 0)
	}

	if col < e.offset.Column {
		e.offset.Column = col
	} else if col >= e.offset.Column+width {
		e.offset.Column = max(col-width+1, 0)
	}
}
