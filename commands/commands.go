// Package commands maps command names, and the key chords bound to them, to
// editor actions.
package commands

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrAmbiguous      = errors.New("ambiguous command")
	ErrUnbound        = errors.New("key not bound")
)

type Command func() error

type Commands struct {
	log      *log.Logger
	commands map[string]Command
	bindings map[string]string // chord -> command name
}

func NewCommands(log *log.Logger) *Commands {
	return &Commands{
		log:      log,
		commands: make(map[string]Command),
		bindings: make(map[string]string),
	}
}

func (c *Commands) Register(name string, command Command) {
	c.commands[name] = command
}

// Names lists the registered commands in sorted order.
func (c *Commands) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exec runs the command called name. A unique prefix of a name also works.
func (c *Commands) Exec(name string) error {
	cmd, err := c.find(name)
	if err != nil {
		c.log.Printf("Command %q: %v", name, err)
		return err
	}
	return cmd()
}

func (c *Commands) find(prefix string) (Command, error) {
	if cmd, ok := c.commands[prefix]; ok {
		return cmd, nil
	}

	var matches []string
	for name := range c.commands {
		if prefix != "" && strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s (known: %s)", ErrUnknownCommand, prefix, strings.Join(c.Names(), ", "))
	case 1:
		return c.commands[matches[0]], nil
	default:
		sort.Strings(matches)
		return nil, fmt.Errorf("%w: %s matches %s", ErrAmbiguous, prefix, strings.Join(matches, ", "))
	}
}

// Bind replaces all key bindings with chord -> command name pairs.
func (c *Commands) Bind(bindings map[string]string) {
	c.bindings = make(map[string]string, len(bindings))
	for chord, name := range bindings {
		c.bindings[chord] = name
	}
}

// ExecChord runs the command bound to chord.
func (c *Commands) ExecChord(chord string) error {
	name, ok := c.bindings[chord]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnbound, chord)
	}
	c.log.Printf("Key %s runs %s", chord, name)
	return c.Exec(name)
}
