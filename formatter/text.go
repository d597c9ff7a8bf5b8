package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/nlogcolor/core"
)

// TextFormatter formats log entries as human-readable text. The level
// name is annotated as the entry's single highlight range.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatBytes(entry, f.FormatEntry), nil
}

// FormatEntry formats an entry as text into the given buffer (implements BufferFormatter).
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	base := buf.Len()

	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))

	buf.WriteString(" [")
	entry.MarkColorStart(buf.Len() - base)
	buf.WriteString(entry.Level.String())
	entry.MarkColorEnd(buf.Len() - base)
	buf.WriteString("] ")

	if entry.LoggerName != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.LoggerName)
		buf.WriteString("] ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)
	appendFields(buf, entry.Fields)
	buf.WriteByte('\n')
}

// appendFields writes " key=value" for every field.
func appendFields(buf *bytes.Buffer, fields []core.Field) {
	for _, field := range fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}
}
