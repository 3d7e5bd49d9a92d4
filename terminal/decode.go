package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/teichholz/texte/editor"
)

// Kind tells what a decoded Event carries.
type Kind int

const (
	KindNone Kind = iota
	KindIntent
	KindChord
	KindResize
	KindInterrupt
)

// Event is a decoded tcell event. Keys that map onto an editor intent carry
// it; every other key is reported by its normalized chord name.
type Event struct {
	Kind   Kind
	Intent editor.Intent
	Chord  string
}

var keyIntents = map[tcell.Key]editor.Intent{
	tcell.KeyUp:         editor.Move(editor.Up),
	tcell.KeyDown:       editor.Move(editor.Down),
	tcell.KeyLeft:       editor.Move(editor.Left),
	tcell.KeyRight:      editor.Move(editor.Right),
	tcell.KeyPgUp:       editor.Move(editor.PageUp),
	tcell.KeyPgDn:       editor.Move(editor.PageDown),
	tcell.KeyHome:       editor.Move(editor.Home),
	tcell.KeyEnd:        editor.Move(editor.End),
	tcell.KeyEnter:      editor.Move(editor.Newline),
	tcell.KeyDelete:     editor.Move(editor.Delete),
	tcell.KeyBackspace:  editor.Move(editor.Backspace),
	tcell.KeyBackspace2: editor.Move(editor.Backspace),
	tcell.KeyTab:        editor.Insert('\t'),
}

// Decode translates a tcell event. Unknown events decode to KindNone.
func Decode(ev tcell.Event) Event {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Event{Kind: KindResize}
	case *tcell.EventInterrupt:
		return Event{Kind: KindInterrupt}
	case *tcell.EventKey:
		return decodeKey(ev)
	}
	return Event{}
}

func decodeKey(ev *tcell.EventKey) Event {
	modified := ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0

	if ev.Key() == tcell.KeyRune && !modified {
		return Event{Kind: KindIntent, Intent: editor.Insert(ev.Rune())}
	}
	if in, ok := keyIntents[ev.Key()]; ok && !modified {
		return Event{Kind: KindIntent, Intent: in}
	}
	return Event{Kind: KindChord, Chord: NormalizeChord(ev.Name())}
}

// NormalizeChord lower-cases a key name and joins modifiers with '+', so
// "Ctrl-Q", "Ctrl+Q" and "ctrl+q" name the same chord.
func NormalizeChord(name string) string {
	chord := strings.ToLower(strings.ReplaceAll(name, "-", "+"))
	return strings.ReplaceAll(chord, "ctrl+ctrl+", "ctrl+")
}
