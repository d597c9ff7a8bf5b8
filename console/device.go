package console

import (
	"errors"
	"io"
	"sync"
)

// ErrNotConsole is returned by attribute queries on a device that is not
// an interactive console.
var ErrNotConsole = errors.New("device is not a console")

// Device is the output target of a color console handler. The handler
// borrows a Device and never closes it.
type Device interface {
	io.Writer

	// Valid reports whether the device can be written to at all.
	Valid() bool

	// IsConsole reports whether the device currently refers to an
	// interactive console.
	IsConsole() bool

	// TextAttribute returns the current text attribute of the console.
	TextAttribute() (Attribute, error)

	// SetTextAttribute changes the text attribute used for subsequent writes.
	SetTextAttribute(a Attribute) error
}

// Usable reports whether dev is non-nil and valid.
func Usable(dev Device) bool {
	return dev != nil && dev.Valid()
}

// writerDevice adapts an io.Writer that is never a console.
type writerDevice struct {
	w  io.Writer
	mu sync.Mutex
}

// Writer returns a Device that writes to w and never reports itself as a
// console, so handlers always emit plain text to it. A nil w yields an
// invalid device.
func Writer(w io.Writer) Device {
	return &writerDevice{w: w}
}

func (d *writerDevice) Write(p []byte) (int, error) {
	return d.w.Write(p)
}

func (d *writerDevice) Locker() sync.Locker {
	return &d.mu
}

func (d *writerDevice) Valid() bool {
	return d != nil && d.w != nil
}

func (d *writerDevice) IsConsole() bool {
	return false
}

func (d *writerDevice) TextAttribute() (Attribute, error) {
	return Plain, ErrNotConsole
}

func (d *writerDevice) SetTextAttribute(Attribute) error {
	return ErrNotConsole
}
