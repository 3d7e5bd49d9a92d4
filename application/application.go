// Package application runs one editing session: it reads events from the
// terminal, feeds them to the editor and repaints the screen.
package application

import (
	"errors"
	"log"

	"github.com/teichholz/texte/buffer"
	"github.com/teichholz/texte/commands"
	"github.com/teichholz/texte/config"
	"github.com/teichholz/texte/editor"
	"github.com/teichholz/texte/layout"
	"github.com/teichholz/texte/status"
	"github.com/teichholz/texte/terminal"
)

const welcome = "Welcome! Press Ctrl-Q to quit."

type Options struct {
	Path    string // file to open, empty for a new buffer
	Version string
}

type Application struct {
	term     *terminal.Terminal
	editor   *editor.Editor
	config   *config.Config
	settings config.EditorConfig
	commands *commands.Commands
	layout   *layout.Flex
	message  status.Message
	version  string
	quit     bool

	// areas resolved for the frame being drawn
	textArea layout.Dimensions

	log *log.Logger
}

func New(term *terminal.Terminal, cfg *config.Config, log *log.Logger, opts Options) *Application {
	app := &Application{
		term:     term,
		config:   cfg,
		settings: cfg.Editor(),
		commands: commands.NewCommands(log),
		version:  opts.Version,
		log:      log,
	}

	app.layout = layout.Column(
		layout.FlexItemBox(app.bufferBox, layout.Max(layout.Rel(1)), nil),
		layout.FlexItemBox(app.statusLineBox, layout.Exact(layout.Abs(1)), nil),
		layout.FlexItemBox(app.messageBox, layout.Exact(layout.Abs(1)), nil),
	)
	app.editor = editor.New(app.openBuffer(opts.Path), editor.SizeFunc(app.viewportSize))

	app.commands.Register("save", app.save)
	app.commands.Register("quit", app.exit)
	app.commands.Register("redraw", app.redraw)
	app.bindKeys()

	return app
}

func (app *Application) openBuffer(path string) *buffer.Buffer {
	if path == "" {
		app.log.Print("Started program without any files. Created new buffer.")
		app.message = status.NewMessage(welcome)
		return buffer.New()
	}

	buf, err := buffer.Load(path)
	if err != nil {
		app.log.Printf("Could not open %v: %v", path, err)
		app.message = status.NewMessage("error: could not open file: %s", path)
		return buf
	}
	app.log.Printf("Read %v lines from file %v", buf.LineCount(), path)
	app.message = status.NewMessage("opened %s", path)
	return buf
}

func (app *Application) bindKeys() {
	bindings := make(map[string]string, len(app.settings.Keys))
	for chord, name := range app.settings.Keys {
		bindings[terminal.NormalizeChord(chord)] = name
	}
	app.commands.Bind(bindings)
}

// Editor exposes the session's editor.
func (app *Application) Editor() *editor.Editor {
	return app.editor
}

// Run paints and processes events until the quit command runs.
func (app *Application) Run() {
	for !app.quit {
		app.render()
		app.handleInput(app.term.PollEvent())
	}
	app.log.Print("Session ended")
}

func (app *Application) handleInput(ev terminal.Event) {
	switch ev.Kind {
	case terminal.KindIntent:
		app.editor.Apply(ev.Intent)
	case terminal.KindChord:
		err := app.commands.ExecChord(ev.Chord)
		if errors.Is(err, commands.ErrUnbound) {
			app.log.Printf("Ignoring key %v", ev.Chord)
		} else if err != nil {
			app.message = status.NewMessage("error: %v", err)
		}
	case terminal.KindResize:
		app.term.Sync()
		// the viewport may have shrunk around the cursor
		app.editor.Apply(editor.Move(editor.None))
	case terminal.KindInterrupt:
		app.settings = app.config.Editor()
		app.bindKeys()
	}
}

func (app *Application) viewportSize() editor.Size {
	width, height := app.term.Size()
	dims := app.layout.Resolve(layout.Dimensions{Width: width, Height: height})
	return editor.Size{Width: dims[0].Width, Height: dims[0].Height}
}

func (app *Application) save() error {
	buf := app.editor.Buffer()
	n, err := buf.Save()
	if err != nil {
		return err
	}
	app.log.Printf("Wrote %v bytes to %v", n, buf.Path())
	app.message = status.NewMessage("wrote %d bytes to %s", n, buf.Path())
	return nil
}

func (app *Application) exit() error {
	app.quit = true
	return nil
}

func (app *Application) redraw() error {
	app.term.Sync()
	return nil
}
