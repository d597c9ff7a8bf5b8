package consolehandler

import (
	"testing"

	"github.com/philipp01105/nlogcolor/console"
	"github.com/philipp01105/nlogcolor/console/consoletest"
	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
)

func benchEntry() *core.Entry {
	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "benchmark message"
	entry.Fields = []core.Field{
		{Key: "key1", Type: core.StringType, Str: "value1"},
		{Key: "key2", Type: core.Int64Type, Int64: 42},
	}
	return entry
}

// BenchmarkColorConsoleHandler_Colored measures the range-walking path.
func BenchmarkColorConsoleHandler_Colored(b *testing.B) {
	rec := consoletest.New(true)
	h := NewColorConsoleHandler(ColorConfig{
		Device:    rec,
		Formatter: formatter.NewPatternFormatter("[%^%l%$] %v"),
	})
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(entry)
		if i%1024 == 0 {
			rec.Reset()
		}
	}
}

// BenchmarkColorConsoleHandler_Plain measures the non-console fallback.
func BenchmarkColorConsoleHandler_Plain(b *testing.B) {
	h := NewColorConsoleHandler(ColorConfig{
		Device:    console.Writer(discard{}),
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	})
	entry := benchEntry()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = h.Handle(entry)
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
