package benchmark

import (
	"log/slog"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
	"github.com/philipp01105/nlogcolor/handler/consolehandler"
	"github.com/philipp01105/nlogcolor/handler/zaphandler"
	"github.com/philipp01105/nlogcolor/logger"
)

// ---------------------------------------------------------------------------
// Helpers: every logger writes colored text to a discarding console
// ---------------------------------------------------------------------------

const pattern = "%H:%M:%S.%e [%^%l%$] %v"

func newColorHandler(mode console.ColorMode) *consolehandler.ColorConsoleHandler {
	return consolehandler.NewColorConsoleHandler(consolehandler.ColorConfig{
		Device:    discardConsole{},
		Mode:      mode,
		Formatter: formatter.NewPatternFormatter(pattern),
	})
}

// newNlogLogger returns an nlog logger coloring the level.
func newNlogLogger() *logger.Logger {
	return logger.NewBuilder().
		WithHandler(newColorHandler(console.Always)).
		WithLevel(core.DebugLevel).
		Build()
}

// newZapLogger returns a zap.Logger using zap's own colored level encoder.
func newZapLogger() *zap.Logger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	c := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(ansiDiscard{}), zap.DebugLevel)
	return zap.New(c)
}

// newZapThroughNlog returns a zap.Logger writing through the color handler.
func newZapThroughNlog() *zap.Logger {
	return zap.New(zaphandler.New(newColorHandler(console.Always), zapcore.DebugLevel))
}

// newSlogLogger returns an slog.Logger with the stdlib text handler (no colors).
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(ansiDiscard{}, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger forcing colored text.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(ansiDiscard{})
	l.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger behind a colored ConsoleWriter.
func newZerologLogger() zerolog.Logger {
	w := zerolog.ConsoleWriter{Out: ansiDiscard{}, NoColor: false, TimeFormat: "15:04:05.000"}
	return zerolog.New(w).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1: Warn message, no fields
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_WarnNoFields(b *testing.B) {
	b.Run("nlog", func(b *testing.B) {
		l := newNlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn("disk usage high")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn("disk usage high")
		}
	})

	b.Run("zap-nlog", func(b *testing.B) {
		l := newZapThroughNlog()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn("disk usage high")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn("disk usage high")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn("disk usage high")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Warn().Msg("disk usage high")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2: Structured logging with common fields
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoWithFields(b *testing.B) {
	b.Run("nlog", func(b *testing.B) {
		l := newNlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				logger.String("method", "GET"),
				logger.String("path", "/api/users"),
				logger.Int("status", 200),
				logger.Duration("latency", 150*time.Millisecond),
			)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				zap.String("method", "GET"),
				zap.String("path", "/api/users"),
				zap.Int("status", 200),
				zap.Duration("latency", 150*time.Millisecond),
			)
		}
	})

	b.Run("zap-nlog", func(b *testing.B) {
		l := newZapThroughNlog()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				zap.String("method", "GET"),
				zap.String("path", "/api/users"),
				zap.Int("status", 200),
				zap.Duration("latency", 150*time.Millisecond),
			)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				slog.String("method", "GET"),
				slog.String("path", "/api/users"),
				slog.Int("status", 200),
				slog.Duration("latency", 150*time.Millisecond),
			)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.WithFields(logrus.Fields{
				"method":  "GET",
				"path":    "/api/users",
				"status":  200,
				"latency": 150 * time.Millisecond,
			}).Info("request handled")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			l.Info().
				Str("method", "GET").
				Str("path", "/api/users").
				Int("status", 200).
				Dur("latency", 150*time.Millisecond).
				Msg("request handled")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3: Parallel logging to one console
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Parallel(b *testing.B) {
	b.Run("nlog", func(b *testing.B) {
		l := newNlogLogger()
		defer l.Close()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Error("upstream timed out", logger.Int("attempt", 3))
			}
		})
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Error("upstream timed out", zap.Int("attempt", 3))
			}
		})
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.WithField("attempt", 3).Error("upstream timed out")
			}
		})
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ResetTimer()
		b.ReportAllocs()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Error().Int("attempt", 3).Msg("upstream timed out")
			}
		})
	})
}

// ---------------------------------------------------------------------------
// Scenario 4: Cost of coloring in nlog
// ---------------------------------------------------------------------------

func BenchmarkColorModes(b *testing.B) {
	modes := map[string]console.ColorMode{
		"always": console.Always,
		"never":  console.Never,
	}
	for name, mode := range modes {
		b.Run(name, func(b *testing.B) {
			h := newColorHandler(mode)
			entry := &core.Entry{Time: time.Now(), Level: core.WarnLevel, Message: "disk usage high"}
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				h.Handle(entry)
			}
		})
	}
}
