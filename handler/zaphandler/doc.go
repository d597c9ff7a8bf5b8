// Package zaphandler lets go.uber.org/zap loggers write through a
// handler.Handler, so zap output gets the same level coloring as the
// native logger.
//
//	h := consolehandler.NewStderrHandler(consolehandler.ColorConfig{})
//	log := zap.New(zaphandler.New(h, zapcore.InfoLevel), zap.AddCaller())
//	log.Named("db").Warn("slow query", zap.Duration("took", d))
//
// Zap's DPanic, Panic and Fatal levels map to core.CriticalLevel. zap
// still panics or exits after the record is written.
package zaphandler
