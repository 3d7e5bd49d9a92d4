// Package status formats the status bar and keeps the transient message shown
// below it.
package status

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// MaxNameWidth is how many cells of the file name the status bar shows.
const MaxNameWidth = 30

const noName = "[No Name]"

// Info is what the status bar reports about the session.
type Info struct {
	Path  string
	Lines int
	Line  int // zero-based cursor line
	Dirty bool
}

// Bar renders info into exactly width cells: name and line count on the
// left, cursor line on the right.
func Bar(info Info, width int) string {
	if width <= 0 {
		return ""
	}

	name := info.Path
	if name == "" {
		name = noName
	}
	name = runewidth.Truncate(name, MaxNameWidth, "")

	left := fmt.Sprintf("%s - %d lines", name, info.Lines)
	if info.Dirty {
		left = fmt.Sprintf("%s (modified) - %d lines", name, info.Lines)
	}
	right := fmt.Sprintf("%d / %d", info.Line+1, info.Lines)

	pad := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if pad < 0 {
		return runewidth.Truncate(left, width, "")
	}
	return runewidth.FillRight(left, width-runewidth.StringWidth(right)) + right
}

// Message is a status line that expires.
type Message struct {
	Text string
	Time time.Time
}

// NewMessage stamps text with the current time.
func NewMessage(format string, args ...any) Message {
	return Message{Text: fmt.Sprintf(format, args...), Time: time.Now()}
}

// Fresh reports whether m is younger than timeout at now.
func (m Message) Fresh(now time.Time, timeout time.Duration) bool {
	return m.Text != "" && now.Sub(m.Time) < timeout
}

// Clip shortens the message to width cells.
func (m Message) Clip(width int) string {
	return runewidth.Truncate(m.Text, max(width, 0), "")
}
