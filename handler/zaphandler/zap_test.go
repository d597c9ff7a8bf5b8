package zaphandler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/console/consoletest"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
	"github.com/philipp01105/nlogcolor/handler/consolehandler"
)

func newConsole(pattern string) (*consoletest.Recorder, *consolehandler.ColorConsoleHandler) {
	dev := consoletest.New(true)
	h := consolehandler.NewColorConsoleHandler(consolehandler.ColorConfig{
		Device:    dev,
		Formatter: formatter.NewPatternFormatter(pattern),
	})
	return dev, h
}

func TestCore_Write(t *testing.T) {
	dev, h := newConsole("[%n] [%^%l%$] %v")
	log := zap.New(New(h, zapcore.DebugLevel)).Named("db")

	log.Warn("slow query", zap.String("table", "users"), zap.Int("rows", 12))

	assert.Equal(t, "[db] [warn] slow query table=users rows=12\n", dev.Output())
	assert.Equal(t, []string{"[db] [", "warn", "] slow query table=users rows=12\n"}, dev.Writes())
	assert.Equal(t, uint64(1), h.Stats().ColoredTotal)
}

func TestCore_With(t *testing.T) {
	dev, h := newConsole("%v")
	base := zap.New(New(h, zapcore.DebugLevel))
	child := base.With(zap.String("request_id", "r-1"))

	child.Info("first", zap.Bool("ok", true))
	base.Info("second")

	assert.Equal(t, "first request_id=r-1 ok=true\nsecond\n", dev.Output())
}

func TestCore_Error(t *testing.T) {
	dev, h := newConsole("%v")
	log := zap.New(New(h, zapcore.DebugLevel))

	log.Error("request failed", zap.Error(errors.New("timeout")))

	assert.Equal(t, "request failed error=timeout\n", dev.Output())
}

func TestCore_Caller(t *testing.T) {
	dev, h := newConsole("%s %v")
	log := zap.New(New(h, zapcore.DebugLevel), zap.AddCaller())

	log.Info("here")

	assert.Equal(t, "zap_test.go here\n", dev.Output())
}

func TestCore_LevelEnabler(t *testing.T) {
	dev, h := newConsole("%v")
	log := zap.New(New(h, zapcore.WarnLevel))

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	assert.Equal(t, "shown\n", dev.Output())
}

func TestCore_Sync(t *testing.T) {
	_, h := newConsole("%v")
	log := zap.New(New(h, zapcore.DebugLevel))
	require.NoError(t, log.Sync())
}

func TestCore_DPanicColorsCritical(t *testing.T) {
	dev, h := newConsole("%^%v%$")
	log := zap.New(New(h, zapcore.DebugLevel))

	log.DPanic("invariant broken")

	require.Len(t, dev.Events(), 4)
	assert.Equal(t, console.BgRed|console.FgRed|console.FgGreen|console.FgBlue|console.FgIntensity, dev.Events()[0].Attr)
}

func TestLevelOf(t *testing.T) {
	tests := map[zapcore.Level]core.Level{
		zapcore.DebugLevel - 1: core.TraceLevel,
		zapcore.DebugLevel:     core.DebugLevel,
		zapcore.InfoLevel:      core.InfoLevel,
		zapcore.WarnLevel:      core.WarnLevel,
		zapcore.ErrorLevel:     core.ErrorLevel,
		zapcore.DPanicLevel:    core.CriticalLevel,
		zapcore.PanicLevel:     core.CriticalLevel,
		zapcore.FatalLevel:     core.CriticalLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, LevelOf(in), "LevelOf(%v)", in)
	}
}

func TestEnablerOf(t *testing.T) {
	enab := EnablerOf(core.WarnLevel)
	assert.False(t, enab.Enabled(zapcore.InfoLevel))
	assert.True(t, enab.Enabled(zapcore.WarnLevel))
	assert.True(t, enab.Enabled(zapcore.FatalLevel))

	off := EnablerOf(core.OffLevel)
	assert.False(t, off.Enabled(zapcore.FatalLevel))
}
