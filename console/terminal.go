package console

import (
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Terminal is a Device backed by an *os.File. Text attributes are rendered
// as ANSI SGR escape sequences; the terminal's current attribute is
// tracked in memory because a terminal cannot be asked for it.
type Terminal struct {
	f *os.File

	// out serializes handlers writing to this terminal; see Locker.
	out sync.Mutex

	mu   sync.Mutex
	attr Attribute
}

// NewTerminal wraps f. A nil f yields an invalid device.
func NewTerminal(f *os.File) *Terminal {
	return &Terminal{f: f, attr: Plain}
}

var (
	stdout = sync.OnceValue(func() *Terminal { return NewTerminal(os.Stdout) })
	stderr = sync.OnceValue(func() *Terminal { return NewTerminal(os.Stderr) })
)

// Stdout returns the process-wide Terminal for standard output. All
// callers share one instance so the tracked attribute state matches the
// physical stream.
func Stdout() *Terminal { return stdout() }

// Stderr returns the process-wide Terminal for standard error.
func Stderr() *Terminal { return stderr() }

// Valid reports whether the underlying file is open.
func (t *Terminal) Valid() bool {
	return t != nil && t.f != nil && t.f.Fd() != ^uintptr(0)
}

// IsConsole probes the file descriptor. Cygwin/MSYS pseudo terminals
// count as consoles.
func (t *Terminal) IsConsole() bool {
	if !t.Valid() {
		return false
	}
	fd := t.f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Locker returns the lock shared by every handler writing to t.
func (t *Terminal) Locker() sync.Locker {
	return &t.out
}

// Write writes p to the file unchanged.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// TextAttribute returns the attribute most recently set on this terminal.
func (t *Terminal) TextAttribute() (Attribute, error) {
	if !t.IsConsole() {
		return Plain, ErrNotConsole
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.attr, nil
}

// SetTextAttribute emits the escape sequence for a. Nothing is written
// when a is already the current attribute.
func (t *Terminal) SetTextAttribute(a Attribute) error {
	if !t.IsConsole() {
		return ErrNotConsole
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if a == t.attr {
		return nil
	}
	if _, err := t.f.WriteString(SGR(a)); err != nil {
		return err
	}
	t.attr = a
	return nil
}

// SGR returns the ANSI select-graphic-rendition sequence that renders a.
// Plain white maps to the terminal's default foreground and a black
// background to its default background, so restoring Plain always
// returns the terminal to its own colors.
func SGR(a Attribute) string {
	params := []string{termenv.ResetSeq}
	if fg := a.Foreground(); fg != Plain {
		params = append(params, ansiColor(fg).Sequence(false))
	}
	if bg := a.Background(); bg != 0 {
		params = append(params, ansiColor(bg).Sequence(true))
	}
	if a&Underscore != 0 {
		params = append(params, termenv.UnderlineSeq)
	}
	if a&ReverseVideo != 0 {
		params = append(params, termenv.ReverseSeq)
	}
	return termenv.CSI + strings.Join(params, ";") + "m"
}

// ansiColor converts a 4-bit console color (blue in bit 0, red in bit 2)
// to the ANSI palette index (red in bit 0, blue in bit 2).
func ansiColor(c Attribute) termenv.ANSIColor {
	idx := 0
	if c&FgRed != 0 {
		idx |= 1
	}
	if c&FgGreen != 0 {
		idx |= 2
	}
	if c&FgBlue != 0 {
		idx |= 4
	}
	if c&FgIntensity != 0 {
		idx += 8
	}
	return termenv.ANSIColor(idx)
}
