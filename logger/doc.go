// Package logger is the public API of NLog. Most users only need to
// import this package.
//
// A Logger is immutable after construction: all fields, the name, the
// level and the handler are set once via the Builder and never modified.
// This makes Logger safe for concurrent use without any locking on the
// read path.
//
// The package initializes a default Logger (InfoLevel, colored pattern
// output to stdout when stdout is a terminal) in init(). The
// package-level functions Info, Error, Debugf, etc. delegate to this
// default instance, so simple programs can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithName("api").
//	    WithCaller(true).
//	    Build()
//
// Child loggers are created via With and Named, which return a new
// Logger that shares the same handler but carries additional default
// fields or a different name:
//
//	reqLog := log.With(logger.String("request_id", id))
//	dbLog := log.Named("db")
//
// Level checks happen before any allocation, so filtered-out
// messages cost only a single integer comparison. Critical is the
// highest level; it never exits or panics.
package logger
