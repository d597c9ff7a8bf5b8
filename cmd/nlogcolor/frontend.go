package main

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogcolor/config"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/handler"
	"github.com/philipp01105/nlogcolor/handler/zaphandler"
	"github.com/philipp01105/nlogcolor/logger"
)

// samples holds one demo message per level.
var samples = [...]struct {
	level core.Level
	msg   string
}{
	{core.TraceLevel, "probing cache shards"},
	{core.DebugLevel, "cache warm"},
	{core.InfoLevel, "server listening"},
	{core.WarnLevel, "disk usage high"},
	{core.ErrorLevel, "upstream timed out"},
	{core.CriticalLevel, "data directory unwritable"},
}

// frontend logs through one of the supported logging APIs. All of them
// end in the same handler.
type frontend struct {
	log   func(level core.Level, msg string, round int)
	flush func() error
	diag  *logger.Logger
}

func newFrontend(kind, name string, h handler.Handler, cfg config.Config) (*frontend, error) {
	fe := &frontend{
		diag: logger.NewBuilder().WithHandler(h).WithName("config").Build(),
	}

	switch kind {
	case frontendNlog:
		l := logger.NewBuilder().
			WithHandler(h).
			WithLevel(cfg.Level).
			WithName(name).
			WithCaller(cfg.Caller).
			Build()
		fe.log = func(level core.Level, msg string, round int) {
			l.Log(level, msg, logger.Int("round", round))
		}
		fe.flush = l.Flush
	case frontendSlog:
		l := slog.New(handler.NewSlogHandler(h, cfg.Level))
		fe.log = func(level core.Level, msg string, round int) {
			l.Log(context.Background(), slogLevel(level), msg, "round", round)
		}
		fe.flush = func() error { return handler.Flush(h) }
	case frontendZap:
		opts := []zap.Option{}
		if cfg.Caller {
			opts = append(opts, zap.AddCaller())
		}
		l := zap.New(zaphandler.New(h, zaphandler.EnablerOf(cfg.Level)), opts...).Named(name)
		fe.log = func(level core.Level, msg string, round int) {
			if ce := l.Check(zapLevel(level), msg); ce != nil {
				ce.Write(zap.Int("round", round))
			}
		}
		fe.flush = l.Sync
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrontend, kind)
	}
	return fe, nil
}

func (fe *frontend) emitAll(round int) {
	for _, s := range samples {
		fe.log(s.level, s.msg, round)
	}
}

func (fe *frontend) sync() {
	if err := fe.flush(); err != nil {
		fe.diag.Warn("flush failed", logger.Err(err))
	}
}

func (fe *frontend) diagnostics() *logger.Logger {
	return fe.diag
}

func slogLevel(level core.Level) slog.Level {
	switch level {
	case core.TraceLevel:
		return handler.SlogLevelTrace
	case core.DebugLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	default:
		return handler.SlogLevelCritical
	}
}

// zapLevel maps Critical to DPanic, which only panics in development loggers.
func zapLevel(level core.Level) zapcore.Level {
	switch level {
	case core.TraceLevel:
		return zapcore.DebugLevel - 1
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}
