package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry represents a log entry with all its metadata
type Entry struct {
	Time       time.Time
	Level      Level
	LoggerName string
	Message    string
	Fields     []Field
	Caller     CallerInfo

	// ColorStart and ColorEnd hold the byte offsets of the highlight
	// ranges a formatter annotated while formatting this entry. Offsets
	// are relative to the first byte of the formatted record. The two
	// slices are only meaningful when they have the same length.
	ColorStart []int
	ColorEnd   []int
}

// ColorRange is a half-open byte interval [Start, End) of a formatted record.
type ColorRange struct {
	Start int
	End   int
}

// CallerInfo contains information about the caller
type CallerInfo struct {
	File      string
	ShortFile string
	Line      int
	Function  string
	Defined   bool
}

// ResetColorRanges drops any highlight ranges left over from a previous format.
func (e *Entry) ResetColorRanges() {
	e.ColorStart = e.ColorStart[:0]
	e.ColorEnd = e.ColorEnd[:0]
}

// MarkColorStart records the start offset of a highlight range.
func (e *Entry) MarkColorStart(offset int) {
	e.ColorStart = append(e.ColorStart, offset)
}

// MarkColorEnd records the end offset of a highlight range.
func (e *Entry) MarkColorEnd(offset int) {
	e.ColorEnd = append(e.ColorEnd, offset)
}

// ColorRangesValid reports whether every range start has a matching end.
func (e *Entry) ColorRangesValid() bool {
	return len(e.ColorStart) == len(e.ColorEnd)
}

// ColorRanges pairs up the annotated offsets. It returns nil when the
// annotation is inconsistent.
func (e *Entry) ColorRanges() []ColorRange {
	if !e.ColorRangesValid() || len(e.ColorStart) == 0 {
		return nil
	}
	ranges := make([]ColorRange, len(e.ColorStart))
	for i := range e.ColorStart {
		ranges[i] = ColorRange{Start: e.ColorStart[i], End: e.ColorEnd[i]}
	}
	return ranges
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields:     make([]Field, 0, 8), // Pre-allocate for 8 fields
			ColorStart: make([]int, 0, 2),
			ColorEnd:   make([]int, 0, 2),
		}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	e.ResetColorRanges()
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.LoggerName = ""
	e.Caller = CallerInfo{}
	e.ResetColorRanges()
	entryPool.Put(e)
}

// GetCaller retrieves caller information
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	var funcName string
	if fn != nil {
		funcName = fn.Name()
	}

	return CallerInfo{
		File:      file,
		ShortFile: filepath.Base(file),
		Line:      line,
		Function:  funcName,
		Defined:   true,
	}
}
