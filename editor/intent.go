package editor

import "fmt"

// Action is one of the closed set of things a keystroke can ask for.
type Action int

const (
	None Action = iota
	Up
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
	InsertChar
	Newline
	Delete
	Backspace
)

var actionNames = [...]string{
	None:       "none",
	Up:         "up",
	Down:       "down",
	Left:       "left",
	Right:      "right",
	PageUp:     "page-up",
	PageDown:   "page-down",
	Home:       "home",
	End:        "end",
	InsertChar: "insert-char",
	Newline:    "newline",
	Delete:     "delete",
	Backspace:  "backspace",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// IsMovement reports whether a only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= Up && a <= End
}

// Intent is a decoded keystroke. Char is only meaningful for InsertChar.
type Intent struct {
	Action Action
	Char   rune
}

// Move returns a movement intent.
func Move(a Action) Intent {
	return Intent{Action: a}
}

// Insert returns an intent inserting c.
func Insert(c rune) Intent {
	return Intent{Action: InsertChar, Char: c}
}

func (in Intent) String() string {
	if in.Action == InsertChar {
		return fmt.Sprintf("%v(%q)", in.Action, in.Char)
	}
	return in.Action.String()
}

// Direction selects which side of the cursor Erase removes.
type Direction int

const (
	Forward Direction = iota
	Backward
)
