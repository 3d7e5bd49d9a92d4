package application

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/teichholz/texte/layout"
	"github.com/teichholz/texte/status"
	"github.com/teichholz/texte/terminal"
)

func (app *Application) render() {
	s := app.term.Screen()
	terminal.HideCursor(s)
	terminal.ClearScreen(s)

	app.layout.StartLayouting(app.term.Size())

	x, y := app.editor.ScreenCursor()
	if x < app.textArea.Width && y < app.textArea.Height {
		terminal.MoveCursor(s, app.textArea.Origin.X+x, app.textArea.Origin.Y+y)
	}
	app.term.Show()
}

func (app *Application) bufferBox(dims layout.Dimensions) {
	app.textArea = dims
	s := app.term.Screen()
	buf := app.editor.Buffer()
	off := app.editor.Offset()

	for row := 0; row < dims.Height; row++ {
		y := dims.Origin.Y + row
		if line := buf.Line(off.Line + row); line != nil {
			text := line.Render(off.Column, off.Column+dims.Width)
			terminal.DrawText(s, dims.Origin.X, y, dims.Width, terminal.DefaultStyle, text)
		} else if buf.IsEmpty() && app.settings.ShowWelcome && row == dims.Height/3 {
			app.drawWelcome(dims, y)
		} else {
			terminal.DrawText(s, dims.Origin.X, y, dims.Width, terminal.PlaceholderStyle, app.settings.Placeholder)
		}
	}
}

func (app *Application) drawWelcome(dims layout.Dimensions, y int) {
	msg := fmt.Sprintf("texte -- v%s", app.version)
	pad := max(dims.Width-runewidth.StringWidth(msg), 0) / 2
	s := app.term.Screen()
	terminal.DrawText(s, dims.Origin.X, y, dims.Width, terminal.PlaceholderStyle, app.settings.Placeholder)
	terminal.DrawText(s, dims.Origin.X+pad, y, dims.Width-pad, terminal.DefaultStyle, msg)
}

func (app *Application) statusLineBox(dims layout.Dimensions) {
	if dims.Height == 0 {
		return
	}
	s := app.term.Screen()
	buf := app.editor.Buffer()
	bar := status.Bar(status.Info{
		Path:  buf.Path(),
		Lines: buf.LineCount(),
		Line:  app.editor.Cursor().Line,
		Dirty: buf.Dirty(),
	}, dims.Width)

	terminal.FillRow(s, dims.Origin.X, dims.Origin.Y, dims.Width, terminal.StatusStyle)
	terminal.DrawText(s, dims.Origin.X, dims.Origin.Y, dims.Width, terminal.StatusStyle, bar)
}

func (app *Application) messageBox(dims layout.Dimensions) {
	if dims.Height == 0 || !app.message.Fresh(time.Now(), app.settings.StatusTimeout) {
		return
	}
	terminal.DrawText(app.term.Screen(), dims.Origin.X, dims.Origin.Y, dims.Width, terminal.DefaultStyle, app.message.Clip(dims.Width))
}
