// Package handler provides the Handler interface and the adapters built
// around it.
//
// A Handler consumes entries synchronously. Handlers may additionally
// implement FastHandler, which skips the pooled Entry on the logger's hot
// path, Flusher, and StatsProvider.
//
// Built-in pieces:
//
//   - consolehandler.ColorConsoleHandler writes to a console device and
//     colorizes the formatter's highlight ranges.
//   - zaphandler.Core lets go.uber.org/zap loggers write through any Handler.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts the Handler interface to log/slog.Handler.
//
// Stats counts processed, colored, plain and dropped records with atomic
// counters that can be read at any time.
package handler
