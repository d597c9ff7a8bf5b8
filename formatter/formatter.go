package formatter

import (
	"bytes"
	"sync"

	"github.com/philipp01105/nlogcolor/core"
)

// Formatter defines the interface for log formatters. Formatters that
// support colors annotate the entry's highlight ranges (MarkColorStart /
// MarkColorEnd) with offsets relative to the start of the returned bytes.
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead. Range offsets stay relative to the length the
// buffer had when FormatEntry was called.
type BufferFormatter interface {
	// FormatEntry formats a log entry into the given buffer.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time format (empty for RFC3339)
	TimestampFormat string
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// formatBytes runs fn against a pooled buffer and returns a copy of the result.
func formatBytes(entry *core.Entry, fn func(*core.Entry, *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// levelLower holds the lower case level names used by %l.
var levelLower = [...]string{
	core.TraceLevel:    "trace",
	core.DebugLevel:    "debug",
	core.InfoLevel:     "info",
	core.WarnLevel:     "warn",
	core.ErrorLevel:    "error",
	core.CriticalLevel: "critical",
	core.OffLevel:      "off",
}

func lowerLevel(l core.Level) string {
	if l < 0 || int(l) >= len(levelLower) {
		return "unknown"
	}
	return levelLower[l]
}
