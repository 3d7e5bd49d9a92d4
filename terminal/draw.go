package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// ClearScreen blanks every cell.
func ClearScreen(s tcell.Screen) {
	s.Clear()
}

// MoveCursor shows the cursor at (x, y).
func MoveCursor(s tcell.Screen, x, y int) {
	s.ShowCursor(x, y)
}

// HideCursor removes the cursor from the screen.
func HideCursor(s tcell.Screen) {
	s.HideCursor()
}

// DrawText writes text on row y starting at column x, one cell per grapheme,
// and stops after width cells.
func DrawText(s tcell.Screen, x, y, width int, style tcell.Style, text string) {
	end := x + width
	g := uniseg.NewGraphemes(text)
	for x < end && g.Next() {
		runes := g.Runes()
		s.SetContent(x, y, runes[0], runes[1:], style)
		x++
	}
}

// FillRow paints width cells of row y with style, starting at column x.
func FillRow(s tcell.Screen, x, y, width int, style tcell.Style) {
	for i := x; i < x+width; i++ {
		s.SetContent(i, y, ' ', nil, style)
	}
}
