package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown log level")

// Level represents the severity level of a log entry
type Level int8

const (
	// TraceLevel for very fine grained diagnostics
	TraceLevel Level = iota
	// DebugLevel for detailed debugging information
	DebugLevel
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// CriticalLevel for failures the application may not survive
	CriticalLevel
	// OffLevel is never emitted; a logger at OffLevel drops everything
	OffLevel
)

// Levels lists every level that can appear on an entry, in order.
var Levels = [...]Level{TraceLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel, CriticalLevel}

var levelNames = [...]string{
	TraceLevel:    "TRACE",
	DebugLevel:    "DEBUG",
	InfoLevel:     "INFO",
	WarnLevel:     "WARN",
	ErrorLevel:    "ERROR",
	CriticalLevel: "CRITICAL",
	OffLevel:      "OFF",
}

var levelShortNames = [...]string{
	TraceLevel:    "T",
	DebugLevel:    "D",
	InfoLevel:     "I",
	WarnLevel:     "W",
	ErrorLevel:    "E",
	CriticalLevel: "C",
	OffLevel:      "O",
}

// String returns the string representation of the level
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ShortString returns the one letter form used by the %L pattern flag.
func (l Level) ShortString() string {
	if l < 0 || int(l) >= len(levelShortNames) {
		return "?"
	}
	return levelShortNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// ParseLevel converts a level name (case insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return TraceLevel, nil
	case "DEBUG":
		return DebugLevel, nil
	case "INFO":
		return InfoLevel, nil
	case "WARN", "WARNING":
		return WarnLevel, nil
	case "ERROR", "ERR":
		return ErrorLevel, nil
	case "CRITICAL", "FATAL":
		return CriticalLevel, nil
	case "OFF":
		return OffLevel, nil
	default:
		return InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// AllLevelStrings returns the lowercase names ParseLevel accepts
// canonically, including "off".
func AllLevelStrings() []string {
	names := make([]string, 0, len(levelNames))
	for _, name := range levelNames {
		names = append(names, strings.ToLower(name))
	}
	return names
}
