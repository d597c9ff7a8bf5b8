package formatter

import (
	"bytes"
	"strconv"

	"github.com/philipp01105/nlogcolor/core"
)

// DefaultPattern is used when a PatternFormatter is built from an empty
// pattern. It matches the %+ flag.
const DefaultPattern = "%+"

// itemKind identifies a compiled pattern element.
type itemKind uint8

const (
	itemLiteral itemKind = iota
	itemYear
	itemMonth
	itemDay
	itemHour
	itemMinute
	itemSecond
	itemMillis
	itemMicros
	itemLevel
	itemLevelShort
	itemLoggerName
	itemMessage
	itemFile
	itemLine
	itemFunction
	itemColorStart
	itemColorEnd
	itemFull
)

type patternItem struct {
	kind itemKind
	text string
}

var flagKinds = map[byte]itemKind{
	'Y': itemYear,
	'm': itemMonth,
	'd': itemDay,
	'H': itemHour,
	'M': itemMinute,
	'S': itemSecond,
	'e': itemMillis,
	'f': itemMicros,
	'l': itemLevel,
	'L': itemLevelShort,
	'n': itemLoggerName,
	'v': itemMessage,
	's': itemFile,
	'#': itemLine,
	'!': itemFunction,
	'^': itemColorStart,
	'$': itemColorEnd,
	'+': itemFull,
}

// PatternFormatter renders entries according to a pattern string.
//
// Supported flags:
//
//	%Y %m %d  year, month, day        %H %M %S  hour, minute, second
//	%e        milliseconds (3 digits) %f        microseconds (6 digits)
//	%l        level ("info")          %L        short level ("I")
//	%n        logger name             %v        message and fields
//	%s        caller file             %#        caller line
//	%!        caller function         %%        literal percent
//	%^        start of color range    %$        end of color range
//	%+        "[%Y-%m-%d %H:%M:%S.%e] [%n] [%^%l%$] %v", without the
//	          logger name block for unnamed loggers
//
// Unknown flags are copied to the output verbatim. Every record ends
// with a newline. A %^ without a matching %$ leaves the entry with an
// unterminated range, which handlers treat as "no valid color spans".
type PatternFormatter struct {
	pattern string
	items   []patternItem
}

// NewPatternFormatter compiles pattern. An empty pattern means DefaultPattern.
func NewPatternFormatter(pattern string) *PatternFormatter {
	if pattern == "" {
		pattern = DefaultPattern
	}
	return &PatternFormatter{pattern: pattern, items: compilePattern(pattern)}
}

// Pattern returns the pattern the formatter was built from.
func (f *PatternFormatter) Pattern() string {
	return f.pattern
}

// Format formats an entry according to the pattern
func (f *PatternFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatBytes(entry, f.FormatEntry), nil
}

// FormatEntry formats an entry into the given buffer (implements BufferFormatter).
func (f *PatternFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	base := buf.Len()
	appendItems(f.items, entry, buf, base)
	buf.WriteByte('\n')
}

// fullItems is the expansion of %+; unnamed loggers use fullItemsAnon.
var (
	fullItems     = compilePattern("[%Y-%m-%d %H:%M:%S.%e] [%n] [%^%l%$] %v")
	fullItemsAnon = compilePattern("[%Y-%m-%d %H:%M:%S.%e] [%^%l%$] %v")
)

func compilePattern(pattern string) []patternItem {
	var items []patternItem
	literal := make([]byte, 0, len(pattern))
	flush := func() {
		if len(literal) > 0 {
			items = append(items, patternItem{kind: itemLiteral, text: string(literal)})
			literal = literal[:0]
		}
	}

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 == len(pattern) {
			literal = append(literal, c)
			continue
		}
		i++
		flag := pattern[i]
		if flag == '%' {
			literal = append(literal, '%')
			continue
		}
		kind, ok := flagKinds[flag]
		if !ok {
			literal = append(literal, '%', flag)
			continue
		}
		flush()
		items = append(items, patternItem{kind: kind})
	}
	flush()
	return items
}

func appendItems(items []patternItem, entry *core.Entry, buf *bytes.Buffer, base int) {
	for _, it := range items {
		switch it.kind {
		case itemLiteral:
			buf.WriteString(it.text)
		case itemYear:
			appendPadded(buf, entry.Time.Year(), 4)
		case itemMonth:
			appendPadded(buf, int(entry.Time.Month()), 2)
		case itemDay:
			appendPadded(buf, entry.Time.Day(), 2)
		case itemHour:
			appendPadded(buf, entry.Time.Hour(), 2)
		case itemMinute:
			appendPadded(buf, entry.Time.Minute(), 2)
		case itemSecond:
			appendPadded(buf, entry.Time.Second(), 2)
		case itemMillis:
			appendPadded(buf, entry.Time.Nanosecond()/1e6, 3)
		case itemMicros:
			appendPadded(buf, entry.Time.Nanosecond()/1e3, 6)
		case itemLevel:
			buf.WriteString(lowerLevel(entry.Level))
		case itemLevelShort:
			buf.WriteString(entry.Level.ShortString())
		case itemLoggerName:
			buf.WriteString(entry.LoggerName)
		case itemMessage:
			buf.WriteString(entry.Message)
			appendFields(buf, entry.Fields)
		case itemFile:
			if entry.Caller.Defined {
				buf.WriteString(entry.Caller.ShortFile)
			}
		case itemLine:
			if entry.Caller.Defined {
				buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Caller.Line), 10))
			}
		case itemFunction:
			if entry.Caller.Defined {
				buf.WriteString(entry.Caller.Function)
			}
		case itemColorStart:
			entry.MarkColorStart(buf.Len() - base)
		case itemColorEnd:
			entry.MarkColorEnd(buf.Len() - base)
		case itemFull:
			if entry.LoggerName == "" {
				appendItems(fullItemsAnon, entry, buf, base)
			} else {
				appendItems(fullItems, entry, buf, base)
			}
		}
	}
}

// appendPadded writes v zero-padded to width digits.
func appendPadded(buf *bytes.Buffer, v, width int) {
	var scratch [20]byte
	digits := strconv.AppendInt(scratch[:0], int64(v), 10)
	for i := len(digits); i < width; i++ {
		buf.WriteByte('0')
	}
	buf.Write(digits)
}
