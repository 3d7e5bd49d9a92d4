// Package terminal owns the tcell screen: acquiring and restoring raw mode,
// drawing text and decoding key events into editor intents.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

var (
	DefaultStyle     = tcell.StyleDefault
	StatusStyle      = DefaultStyle.Reverse(true)
	PlaceholderStyle = DefaultStyle.Dim(true)
)

// Terminal holds the screen for one editing session. Close must run on every
// exit path; it restores the terminal before a panic is reported.
type Terminal struct {
	screen tcell.Screen
	closed bool
}

// Open puts the controlling terminal into raw mode.
func Open() (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	return NewWithScreen(s)
}

// NewWithScreen initializes s and wraps it. Tests pass a simulation screen.
func NewWithScreen(s tcell.Screen) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	s.SetStyle(DefaultStyle)
	s.EnablePaste()
	s.Clear()
	return &Terminal{screen: s}, nil
}

// Close restores the terminal. Use it directly in a defer: a panic in flight
// is recovered, the screen is finalized and the panic is raised again.
func (t *Terminal) Close() {
	maybePanic := recover()
	if !t.closed {
		t.closed = true
		t.screen.Fini()
	}
	if maybePanic != nil {
		panic(maybePanic)
	}
}

// Screen exposes the underlying tcell screen for the draw helpers.
func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}

// Size returns the current terminal size in cells.
func (t *Terminal) Size() (width, height int) {
	return t.screen.Size()
}

// Show flushes pending changes to the terminal.
func (t *Terminal) Show() {
	t.screen.Show()
}

// Sync repaints the whole terminal, used after a resize or on request.
func (t *Terminal) Sync() {
	t.screen.Sync()
}

// Interrupt wakes up a pending PollEvent. Safe to call from any goroutine.
func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// PollEvent blocks for the next input event and decodes it.
func (t *Terminal) PollEvent() Event {
	return Decode(t.screen.PollEvent())
}
