package formatter_test

import (
	"fmt"
	"strings"
	"time"

	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
)

func ExampleNewTextFormatter() {
	f := formatter.NewTextFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "hello world",
	}

	out, _ := f.Format(entry)
	// Timestamp prefix followed by level and message.
	fmt.Println(strings.Contains(string(out), "[INFO]"))
	fmt.Println(strings.Contains(string(out), "hello world"))
	// Output:
	// true
	// true
}

func ExampleNewJSONFormatter() {
	f := formatter.NewJSONFormatter(formatter.Config{})

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
		Level:   core.InfoLevel,
		Message: "request handled",
		Fields: []core.Field{
			{Key: "status", Int64: 200, Type: core.Int64Type},
		},
	}

	out, _ := f.Format(entry)
	fmt.Println(strings.Contains(string(out), `"level":"info"`))
	fmt.Println(strings.Contains(string(out), `"message":"request handled"`))
	// Output:
	// true
	// true
}

func ExampleNewPatternFormatter() {
	f := formatter.NewPatternFormatter("%H:%M:%S [%^%L%$] %v")

	entry := &core.Entry{
		Time:    time.Date(2026, 1, 15, 12, 30, 5, 0, time.UTC),
		Level:   core.ErrorLevel,
		Message: "connection lost",
		Fields: []core.Field{
			{Key: "peer", Str: "10.0.0.7", Type: core.StringType},
		},
	}

	out, _ := f.Format(entry)
	fmt.Print(string(out))
	r := entry.ColorRanges()[0]
	fmt.Println(string(out[r.Start:r.End]))
	// Output:
	// 12:30:05 [E] connection lost peer=10.0.0.7
	// E
}
