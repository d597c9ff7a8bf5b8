package consolehandler

import (
	"bytes"
	"sync"
	"time"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
	"github.com/philipp01105/nlogcolor/handler"
)

// maxRetainedBuffer caps the format buffer kept between records.
const maxRetainedBuffer = 64 * 1024

var defaultColors = map[core.Level]console.Attribute{
	core.TraceLevel:    console.FgRed | console.FgGreen | console.FgBlue,                                       // white
	core.DebugLevel:    console.FgGreen | console.FgBlue,                                                       // cyan
	core.InfoLevel:     console.FgGreen,                                                                        // green
	core.WarnLevel:     console.FgRed | console.FgGreen | console.FgIntensity,                                  // intense yellow
	core.ErrorLevel:    console.FgRed | console.FgIntensity,                                                    // intense red
	core.CriticalLevel: console.BgRed | console.FgRed | console.FgGreen | console.FgBlue | console.FgIntensity, // intense white on red
	core.OffLevel:      0,
}

// DefaultColors returns a copy of the default level color table.
func DefaultColors() map[core.Level]console.Attribute {
	colors := make(map[core.Level]console.Attribute, len(defaultColors))
	for level, attr := range defaultColors {
		colors[level] = attr
	}
	return colors
}

// ColorConfig holds configuration for a color console handler
type ColorConfig struct {
	// Device to write to. A nil or invalid device is accepted; the
	// handler then drops every record without error.
	Device console.Device
	// Mode decides whether colors are used (default: console.Automatic)
	Mode console.ColorMode
	// Formatter to use (default: PatternFormatter with formatter.DefaultPattern)
	Formatter formatter.Formatter
	// Lock serializes all output and configuration changes. Handlers
	// writing to the same device must share one Lock so their records
	// never interleave (default: the device's own lock when it is
	// console.Lockable, otherwise a new sync.Mutex).
	Lock sync.Locker
	// Colors overrides entries of the default color table
	Colors map[core.Level]console.Attribute
}

// ColorConsoleHandler writes formatted entries to a console device and
// renders the formatter's highlight ranges in the entry level's color.
// It falls back to plain output for non-console devices, when colors are
// disabled, or when the range annotation is inconsistent. Writes are
// synchronous; the device is borrowed and never closed.
type ColorConsoleHandler struct {
	device console.Device
	mu     sync.Locker

	// guarded by mu
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	colors          map[core.Level]console.Attribute
	mode            console.ColorMode
	inConsole       bool
	shouldDoColors  bool
	buf             bytes.Buffer
	scratch         core.Entry

	stats *handler.Stats
}

// NewColorConsoleHandler creates a color console handler for cfg.Device.
func NewColorConsoleHandler(cfg ColorConfig) *ColorConsoleHandler {
	if cfg.Lock == nil {
		cfg.Lock = console.LockerFor(cfg.Device)
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPatternFormatter(formatter.DefaultPattern)
	}

	h := &ColorConsoleHandler{
		device: cfg.Device,
		mu:     cfg.Lock,
		colors: DefaultColors(),
		stats:  handler.NewStats(),
	}
	for level, attr := range cfg.Colors {
		h.colors[level] = attr
	}
	h.setFormatter(cfg.Formatter)
	h.setColorMode(cfg.Mode)
	h.buf.Grow(256)
	h.scratch.Fields = make([]core.Field, 0, 16)
	return h
}

// NewStdoutHandler creates a color console handler writing to standard output.
func NewStdoutHandler(cfg ColorConfig) *ColorConsoleHandler {
	cfg.Device = console.Stdout()
	return NewColorConsoleHandler(cfg)
}

// NewStderrHandler creates a color console handler writing to standard error.
func NewStderrHandler(cfg ColorConfig) *ColorConsoleHandler {
	cfg.Device = console.Stderr()
	return NewColorConsoleHandler(cfg)
}

// Handle formats entry and writes it to the device. It never returns an
// error: device and formatter failures degrade to plain output or to
// dropping the record. The entry's color ranges are reset before
// formatting.
func (h *ColorConsoleHandler) Handle(entry *core.Entry) error {
	if !console.Usable(h.device) {
		h.stats.IncrementDropped()
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.emit(entry)
	return nil
}

// HandleLog implements handler.FastHandler using a handler-owned entry.
func (h *ColorConsoleHandler) HandleLog(t time.Time, level core.Level, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	if !console.Usable(h.device) {
		h.stats.IncrementDropped()
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	e := &h.scratch
	e.Time = t
	e.Level = level
	e.Message = msg
	e.Caller = caller
	e.Fields = e.Fields[:0]
	if len(loggerFields) > 0 {
		e.Fields = append(e.Fields, loggerFields...)
	}
	if len(callFields) > 0 {
		e.Fields = append(e.Fields, callFields...)
	}
	h.emit(e)

	// Drop references held by the scratch entry
	clear(e.Fields)
	e.Fields = e.Fields[:0]
	return nil
}

// emit runs the colorize algorithm. mu must be held.
func (h *ColorConsoleHandler) emit(entry *core.Entry) {
	entry.ResetColorRanges()
	formatted, ok := h.format(entry)
	if !ok {
		h.stats.IncrementDropped()
		return
	}
	defer h.trimBuffer()

	if !h.inConsole || !h.shouldDoColors || !entry.ColorRangesValid() {
		h.printRange(formatted, 0, len(formatted))
		h.stats.IncrementPlain()
		return
	}

	color := h.colors[entry.Level]
	if len(entry.ColorStart) == 0 {
		h.printColored(formatted, 0, len(formatted), color)
		h.stats.IncrementColored()
		return
	}

	// Ranges are clamped so the cursor only moves forward: output bytes
	// always equal the formatted bytes, whatever the formatter annotated.
	cursor := 0
	for i, start := range entry.ColorStart {
		start = min(max(start, cursor), len(formatted))
		end := min(entry.ColorEnd[i], len(formatted))

		h.printRange(formatted, cursor, start)
		cursor = start
		if end > start {
			h.printColored(formatted, start, end, color)
			cursor = end
		}
	}
	h.printRange(formatted, cursor, len(formatted))
	h.stats.IncrementColored()
}

func (h *ColorConsoleHandler) format(entry *core.Entry) ([]byte, bool) {
	if h.bufferFormatter != nil {
		h.buf.Reset()
		h.bufferFormatter.FormatEntry(entry, &h.buf)
		return h.buf.Bytes(), true
	}
	data, err := h.formatter.Format(entry)
	if err != nil {
		return nil, false
	}
	return data, true
}

// trimBuffer releases the format buffer after an unusually large record.
func (h *ColorConsoleHandler) trimBuffer() {
	if h.buf.Cap() > maxRetainedBuffer {
		h.buf = bytes.Buffer{}
	}
}

// printColored writes formatted[start:end] in color and restores the
// attribute that was current before.
func (h *ColorConsoleHandler) printColored(formatted []byte, start, end int, color console.Attribute) {
	orig := h.setForegroundColor(color)
	h.printRange(formatted, start, end)
	_ = h.device.SetTextAttribute(orig)
}

// setForegroundColor applies color over the current attribute and returns
// the attribute to restore. If the current attribute cannot be read the
// color is left alone and console.Plain is returned.
func (h *ColorConsoleHandler) setForegroundColor(color console.Attribute) console.Attribute {
	orig, err := h.device.TextAttribute()
	if err != nil {
		return console.Plain
	}
	_ = h.device.SetTextAttribute(orig.WithForeground(color))
	return orig
}

// printRange writes formatted[start:end]; empty ranges write nothing.
func (h *ColorConsoleHandler) printRange(formatted []byte, start, end int) {
	if end > start {
		_, _ = h.device.Write(formatted[start:end])
	}
}

// Flush is a no-op: devices are written synchronously and hold no
// buffered output at this layer.
func (h *ColorConsoleHandler) Flush() error {
	return nil
}

// Close flushes the handler. The device is not closed; it belongs to the caller.
func (h *ColorConsoleHandler) Close() error {
	return h.Flush()
}

// CanRecycleEntry returns true because entries are processed immediately.
func (h *ColorConsoleHandler) CanRecycleEntry() bool {
	return true
}

// SetPattern replaces the formatter with a PatternFormatter for pattern.
func (h *ColorConsoleHandler) SetPattern(pattern string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setFormatter(formatter.NewPatternFormatter(pattern))
}

// SetFormatter replaces the formatter. A nil formatter restores the
// default pattern formatter.
func (h *ColorConsoleHandler) SetFormatter(f formatter.Formatter) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if f == nil {
		f = formatter.NewPatternFormatter(formatter.DefaultPattern)
	}
	h.setFormatter(f)
}

func (h *ColorConsoleHandler) setFormatter(f formatter.Formatter) {
	h.formatter = f
	// Cache BufferFormatter for the handler-owned buffer path
	h.bufferFormatter, _ = f.(formatter.BufferFormatter)
}

// SetColor sets the attribute used for level. The value is stored as is.
func (h *ColorConsoleHandler) SetColor(level core.Level, attr console.Attribute) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.colors[level] = attr
}

// SetColorMode changes the color mode and probes the device again.
func (h *ColorConsoleHandler) SetColorMode(mode console.ColorMode) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.setColorMode(mode)
}

// Reconfigure replaces the formatter, the color mode and the whole color
// table in one step, so no record is rendered with a mix of old and new
// settings. colors overrides entries of the default table; a nil f
// restores the default pattern formatter.
func (h *ColorConsoleHandler) Reconfigure(f formatter.Formatter, mode console.ColorMode, colors map[core.Level]console.Attribute) {
	table := DefaultColors()
	for level, attr := range colors {
		table[level] = attr
	}
	if f == nil {
		f = formatter.NewPatternFormatter(formatter.DefaultPattern)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.setFormatter(f)
	h.setColorMode(mode)
	h.colors = table
}

// setColorMode resolves mode against the device as it is right now.
func (h *ColorConsoleHandler) setColorMode(mode console.ColorMode) {
	h.mode = mode
	h.inConsole = console.Usable(h.device) && h.device.IsConsole()
	h.shouldDoColors = mode.ShouldColor(h.device)
}

// Color returns the attribute used for level.
func (h *ColorConsoleHandler) Color(level core.Level) console.Attribute {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.colors[level]
}

// ColorMode returns the configured color mode.
func (h *ColorConsoleHandler) ColorMode() console.ColorMode {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.mode
}

// ShouldColor reports whether records will be colorized, combining the
// resolved mode with the console probe.
func (h *ColorConsoleHandler) ShouldColor() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.inConsole && h.shouldDoColors
}

// Stats returns a snapshot of the current statistics
func (h *ColorConsoleHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}
