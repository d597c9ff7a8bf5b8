// Package formatter defines how log entries are serialized into bytes.
//
// Formatter returns a []byte; BufferFormatter formats straight into a
// caller-owned bytes.Buffer, which handlers prefer because it avoids the
// pool round trip and the result copy.
//
// Formatters that support colors annotate the entry they format with
// highlight ranges (core.Entry.MarkColorStart / MarkColorEnd). Offsets are
// relative to the first byte of the formatted record, even when
// FormatEntry appends to a buffer that already holds data.
//
// Three formatters ship with the package:
//
//   - PatternFormatter renders a pattern string such as
//     "[%H:%M:%S] [%^%l%$] %v"; %^ and %$ delimit color ranges.
//   - TextFormatter renders "time [LEVEL] message key=value" with the level
//     name as the color range.
//   - JSONFormatter renders one JSON object per line with the level value
//     as the color range.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
