// Package consoletest provides a recording console.Device for tests.
package consoletest

import (
	"bytes"
	"errors"
	"sync"

	"github.com/philipp01105/nlogcolor/console"
)

// ErrQueryFailed is returned by TextAttribute when FailQuery is set.
var ErrQueryFailed = errors.New("consoletest: attribute query failed")

// EventKind distinguishes recorded device calls.
type EventKind int

const (
	// WriteEvent is a Write call.
	WriteEvent EventKind = iota
	// SetEvent is a SetTextAttribute call.
	SetEvent
)

// Event is a single recorded call.
type Event struct {
	Kind EventKind
	Data string
	Attr console.Attribute
	// Colored is the attribute in effect when a write happened.
	Colored console.Attribute
}

// Recorder is a console.Device that records every call. The zero value
// is an invalid device; use New.
type Recorder struct {
	mu       sync.Mutex
	valid    bool
	console  bool
	attr     console.Attribute
	failQ    bool
	failW    bool
	queries  int
	events   []Event
	out      bytes.Buffer
	setCount int
	onWrite  func(data string)

	// shared by handlers without an explicit lock
	lock sync.Mutex
}

// New returns a valid Recorder. isConsole controls what IsConsole reports.
func New(isConsole bool) *Recorder {
	return &Recorder{valid: true, console: isConsole, attr: console.Plain}
}

// FailQuery makes TextAttribute fail from now on.
func (r *Recorder) FailQuery() {
	r.mu.Lock()
	r.failQ = true
	r.mu.Unlock()
}

// FailWrites makes Write return an error from now on. Bytes are still
// not recorded.
func (r *Recorder) FailWrites() {
	r.mu.Lock()
	r.failW = true
	r.mu.Unlock()
}

// SetConsole changes what IsConsole reports.
func (r *Recorder) SetConsole(isConsole bool) {
	r.mu.Lock()
	r.console = isConsole
	r.mu.Unlock()
}

// SetAttribute sets the ambient attribute without recording an event.
func (r *Recorder) SetAttribute(a console.Attribute) {
	r.mu.Lock()
	r.attr = a
	r.mu.Unlock()
}

// OnWrite registers fn to run after every recorded Write, outside the
// recorder's own lock.
func (r *Recorder) OnWrite(fn func(data string)) {
	r.mu.Lock()
	r.onWrite = fn
	r.mu.Unlock()
}

// Locker implements console.Lockable.
func (r *Recorder) Locker() sync.Locker {
	return &r.lock
}

// Write implements console.Device.
func (r *Recorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	if r.failW {
		r.mu.Unlock()
		return 0, errors.New("consoletest: write refused")
	}
	r.out.Write(p)
	r.events = append(r.events, Event{Kind: WriteEvent, Data: string(p), Colored: r.attr})
	fn := r.onWrite
	r.mu.Unlock()

	if fn != nil {
		fn(string(p))
	}
	return len(p), nil
}

// Valid implements console.Device.
func (r *Recorder) Valid() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.valid
}

// IsConsole implements console.Device.
func (r *Recorder) IsConsole() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.console
}

// TextAttribute implements console.Device.
func (r *Recorder) TextAttribute() (console.Attribute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries++
	if r.failQ {
		return 0, ErrQueryFailed
	}
	return r.attr, nil
}

// SetTextAttribute implements console.Device.
func (r *Recorder) SetTextAttribute(a console.Attribute) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attr = a
	r.setCount++
	r.events = append(r.events, Event{Kind: SetEvent, Attr: a})
	return nil
}

// Output returns every byte written so far.
func (r *Recorder) Output() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.out.String()
}

// Events returns a copy of the recorded calls.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Writes returns the data of every Write call, in order.
func (r *Recorder) Writes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, e := range r.events {
		if e.Kind == WriteEvent {
			out = append(out, e.Data)
		}
	}
	return out
}

// SetCalls returns how many times SetTextAttribute was called.
func (r *Recorder) SetCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.setCount
}

// Queries returns how many times TextAttribute was called.
func (r *Recorder) Queries() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.queries
}

// Attribute returns the current attribute.
func (r *Recorder) Attribute() console.Attribute {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.attr
}

// Reset forgets recorded events and output.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	r.out.Reset()
	r.setCount = 0
	r.queries = 0
}

// Invalid returns a Recorder whose Valid reports false.
func Invalid() *Recorder {
	return &Recorder{attr: console.Plain}
}
