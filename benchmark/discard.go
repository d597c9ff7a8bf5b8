// Package benchmark compares colored console output of nlogcolor with the
// console writers of other Go logging libraries.
package benchmark

import (
	"github.com/philipp01105/nlogcolor/console"
)

// discardConsole is an interactive console that drops all output, so every
// library pays for coloring but not for the terminal.
type discardConsole struct{}

func (discardConsole) Write(p []byte) (int, error)               { return len(p), nil }
func (discardConsole) Valid() bool                               { return true }
func (discardConsole) IsConsole() bool                           { return true }
func (discardConsole) TextAttribute() (console.Attribute, error) { return console.Plain, nil }
func (discardConsole) SetTextAttribute(console.Attribute) error  { return nil }

// ansiDiscard receives the escape-coded output of the other libraries.
type ansiDiscard struct{}

func (ansiDiscard) Write(p []byte) (int, error) { return len(p), nil }
