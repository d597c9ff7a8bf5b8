package handler

import (
	"time"

	"github.com/philipp01105/nlogcolor/core"
)

// MultiHandler sends log entries to multiple handlers, typically a color
// console handler plus a plain one writing to a file. Children that write
// to the same device should share a lock (consolehandler.ColorConfig.Lock)
// so one record is never split by another goroutine's output.
type MultiHandler struct {
	handlers     []Handler
	fastHandlers []FastHandler // cached FastHandler interfaces (nil when handler doesn't implement it)
	allFast      bool          // true when every child implements FastHandler
	recycleEntry bool          // true when every child supports entry recycling
}

// NewMultiHandler creates a handler that fans out to handlers in order
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		fastHandlers: make([]FastHandler, len(handlers)),
		allFast:      true,
		recycleEntry: true,
	}
	for i, h := range handlers {
		if fh, ok := h.(FastHandler); ok {
			m.fastHandlers[i] = fh
		} else {
			m.allFast = false
		}
		if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
			if !rc.CanRecycleEntry() {
				m.recycleEntry = false
			}
		} else {
			m.recycleEntry = false
		}
	}
	return m
}

// HandleLog processes log data directly without requiring a pooled Entry.
// When all children implement FastHandler, this avoids Entry allocation entirely.
func (h *MultiHandler) HandleLog(t time.Time, level core.Level, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	if h.allFast {
		var lastErr error
		for _, fh := range h.fastHandlers {
			if err := fh.HandleLog(t, level, msg, loggerFields, callFields, caller); err != nil {
				lastErr = err
			}
		}
		return lastErr
	}

	// Mixed path: build a pooled entry for non-fast handlers
	entry := core.GetEntry()
	entry.Time = t
	entry.Level = level
	entry.Message = msg
	entry.Caller = caller
	if len(loggerFields) > 0 {
		entry.Fields = append(entry.Fields, loggerFields...)
	}
	if len(callFields) > 0 {
		entry.Fields = append(entry.Fields, callFields...)
	}
	var lastErr error
	for i, handler := range h.handlers {
		if fh := h.fastHandlers[i]; fh != nil {
			if err := fh.HandleLog(t, level, msg, loggerFields, callFields, caller); err != nil {
				lastErr = err
			}
		} else if err := handler.Handle(entry); err != nil {
			lastErr = err
		}
	}
	if h.recycleEntry {
		core.PutEntry(entry)
	}
	return lastErr
}

// Handle processes a log entry by sending it to all handlers
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Handle(entry); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// CanRecycleEntry returns true if the caller can recycle the entry after Handle returns.
// This is safe when all child handlers process entries synchronously.
func (h *MultiHandler) CanRecycleEntry() bool {
	return h.recycleEntry
}

// Flush flushes every child that implements Flusher.
func (h *MultiHandler) Flush() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := Flush(handler); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, handler := range h.handlers {
		if err := handler.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// Stats sums the snapshots of every child that implements StatsProvider.
func (h *MultiHandler) Stats() Snapshot {
	var total Snapshot
	for _, handler := range h.handlers {
		sp, ok := handler.(StatsProvider)
		if !ok {
			continue
		}
		s := sp.Stats()
		total.ProcessedTotal += s.ProcessedTotal
		total.ColoredTotal += s.ColoredTotal
		total.PlainTotal += s.PlainTotal
		total.DroppedTotal += s.DroppedTotal
	}
	return total
}
