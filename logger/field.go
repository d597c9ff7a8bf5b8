package logger

import (
	"fmt"
	"time"

	"github.com/philipp01105/nlogcolor/core"
)

// Field helper functions for convenience

// String creates a string field
func String(key, val string) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: val}
}

// Stringer creates a string field from val.String(), evaluated immediately
func Stringer(key string, val fmt.Stringer) core.Field {
	if val == nil {
		return String(key, "<nil>")
	}
	return String(key, val.String())
}

// Int creates an int field
func Int(key string, val int) core.Field {
	return core.Field{Key: key, Type: core.IntType, Int64: int64(val)}
}

// Int64 creates an int64 field
func Int64(key string, val int64) core.Field {
	return core.Field{Key: key, Type: core.Int64Type, Int64: val}
}

// Float64 creates a float64 field
func Float64(key string, val float64) core.Field {
	return core.Field{Key: key, Type: core.Float64Type, Float64: val}
}

// Bool creates a bool field
func Bool(key string, val bool) core.Field {
	return core.FieldOf(key, val)
}

// Time creates a time field
func Time(key string, val time.Time) core.Field {
	return core.Field{Key: key, Type: core.TimeType, Int64: val.UnixNano()}
}

// Duration creates a duration field
func Duration(key string, val time.Duration) core.Field {
	return core.Field{Key: key, Type: core.DurationType, Int64: int64(val)}
}

// Err creates an error field under the "error" key
func Err(err error) core.Field {
	return NamedErr("error", err)
}

// NamedErr creates an error field under key. A nil error renders empty.
func NamedErr(key string, err error) core.Field {
	if err == nil {
		return core.Field{Key: key, Type: core.ErrorType}
	}
	return core.Field{Key: key, Type: core.ErrorType, Str: err.Error()}
}

// LevelField creates a field holding a level name
func LevelField(key string, level core.Level) core.Field {
	return core.Field{Key: key, Type: core.StringType, Str: level.String()}
}

// Any creates a field from val, picking the typed representation for
// strings, numbers, bools, times, durations and errors.
func Any(key string, val interface{}) core.Field {
	return core.FieldOf(key, val)
}
