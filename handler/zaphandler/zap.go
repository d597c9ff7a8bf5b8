package zaphandler

import (
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/handler"
)

// Core is a zapcore.Core that delivers zap entries to a Handler.
type Core struct {
	zapcore.LevelEnabler
	handler handler.Handler
	fields  []core.Field
	recycle bool
}

var _ zapcore.Core = (*Core)(nil)

// New creates a Core writing to h for every level enab accepts.
func New(h handler.Handler, enab zapcore.LevelEnabler) *Core {
	c := &Core{LevelEnabler: enab, handler: h}
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		c.recycle = rc.CanRecycleEntry()
	}
	return c
}

// With returns a child Core carrying fields on every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = appendFields(c.fields[:len(c.fields):len(c.fields)], fields)
	return &clone
}

// Check adds c to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write converts ent into an entry and hands it to the handler.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	entry := core.GetEntry()
	entry.Time = ent.Time
	entry.Level = LevelOf(ent.Level)
	entry.LoggerName = ent.LoggerName
	entry.Message = ent.Message
	if ent.Caller.Defined {
		entry.Caller = core.CallerInfo{
			File:      ent.Caller.File,
			ShortFile: filepath.Base(ent.Caller.File),
			Line:      ent.Caller.Line,
			Function:  ent.Caller.Function,
			Defined:   true,
		}
	}
	entry.Fields = append(entry.Fields, c.fields...)
	entry.Fields = appendFields(entry.Fields, fields)
	if ent.Stack != "" {
		entry.Fields = append(entry.Fields, core.Field{Key: "stacktrace", Type: core.StringType, Str: ent.Stack})
	}

	err := c.handler.Handle(entry)
	if c.recycle {
		core.PutEntry(entry)
	}
	return err
}

// Sync flushes the handler when it supports flushing.
func (c *Core) Sync() error {
	return handler.Flush(c.handler)
}

// LevelOf maps a zap level onto the nearest core level. Levels that
// terminate or panic the process all map to Critical.
func LevelOf(l zapcore.Level) core.Level {
	switch {
	case l < zapcore.DebugLevel:
		return core.TraceLevel
	case l == zapcore.DebugLevel:
		return core.DebugLevel
	case l == zapcore.InfoLevel:
		return core.InfoLevel
	case l == zapcore.WarnLevel:
		return core.WarnLevel
	case l == zapcore.ErrorLevel:
		return core.ErrorLevel
	default:
		return core.CriticalLevel
	}
}

// EnablerOf returns the zap level enabler matching a core minimum level.
func EnablerOf(min core.Level) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return min != core.OffLevel && LevelOf(l) >= min
	})
}

// appendFields encodes each zap field on its own so field order survives
// the map-based encoder.
func appendFields(dst []core.Field, fields []zapcore.Field) []core.Field {
	for _, f := range fields {
		enc := zapcore.NewMapObjectEncoder()
		f.AddTo(enc)
		if len(enc.Fields) == 1 {
			for k, v := range enc.Fields {
				dst = append(dst, core.FieldOf(k, v))
			}
			continue
		}
		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			dst = append(dst, core.FieldOf(k, enc.Fields[k]))
		}
	}
	return dst
}
