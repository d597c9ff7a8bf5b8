package handler

import (
	"context"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/philipp01105/nlogcolor/core"
)

// SlogLevelCritical is the slog level that maps to core.CriticalLevel.
const SlogLevelCritical = slog.LevelError + 4

// SlogLevelTrace is the slog level that maps to core.TraceLevel.
const SlogLevelTrace = slog.LevelDebug - 4

// SlogHandler is an adapter that implements slog.Handler using a Handler,
// so log/slog can front a color console handler. Groups are flattened
// into dotted keys.
type SlogHandler struct {
	handler Handler
	level   core.Level
	attrs   []core.Field
	group   string
	recycle bool
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	s := &SlogHandler{handler: h, level: level}
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		s.recycle = rc.CanRecycleEntry()
	}
	return s
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.level != core.OffLevel && slogLevelToCore(level) >= s.level
}

// Handle converts record to an entry and passes it to the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	entry.Time = record.Time
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message
	if record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		entry.Caller = core.CallerInfo{
			File:      frame.File,
			ShortFile: filepath.Base(frame.File),
			Line:      frame.Line,
			Function:  frame.Function,
			Defined:   true,
		}
	}

	entry.Fields = append(entry.Fields, s.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		entry.Fields = appendSlogAttr(entry.Fields, s.group, a)
		return true
	})

	err := s.handler.Handle(entry)
	if s.recycle {
		core.PutEntry(entry)
	}
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	child := *s
	child.attrs = make([]core.Field, len(s.attrs), len(s.attrs)+len(attrs))
	copy(child.attrs, s.attrs)
	for _, a := range attrs {
		child.attrs = appendSlogAttr(child.attrs, s.group, a)
	}
	return &child
}

// WithGroup returns a new SlogHandler that prefixes later keys with name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	child := *s
	child.group = joinKey(s.group, name)
	return &child
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= SlogLevelCritical:
		return core.CriticalLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level > SlogLevelTrace:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// appendSlogAttr appends a as one field, or one field per member for a
// group. Empty attrs and empty groups are dropped.
func appendSlogAttr(dst []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return dst
	}
	key := joinKey(group, a.Key)

	switch a.Value.Kind() {
	case slog.KindString:
		return append(dst, core.Field{Key: key, Type: core.StringType, Str: a.Value.String()})
	case slog.KindInt64:
		return append(dst, core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()})
	case slog.KindUint64:
		return append(dst, core.FieldOf(key, a.Value.Uint64()))
	case slog.KindFloat64:
		return append(dst, core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()})
	case slog.KindBool:
		return append(dst, core.FieldOf(key, a.Value.Bool()))
	case slog.KindTime:
		return append(dst, core.Field{Key: key, Type: core.TimeType, Int64: a.Value.Time().UnixNano()})
	case slog.KindDuration:
		return append(dst, core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())})
	case slog.KindGroup:
		// An inline group (empty key) adds its members at the current level.
		if a.Key == "" {
			key = group
		}
		for _, member := range a.Value.Group() {
			dst = appendSlogAttr(dst, key, member)
		}
		return dst
	default:
		return append(dst, core.FieldOf(key, a.Value.Any()))
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	if key == "" {
		return group
	}
	return group + "." + key
}
