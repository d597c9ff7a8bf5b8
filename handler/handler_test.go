package handler

import (
	"bytes"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogcolor/core"
	"github.com/philipp01105/nlogcolor/formatter"
)

// captureHandler formats entries into a buffer.
type captureHandler struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	f       formatter.Formatter
	entries []core.Entry
	err     error
	flushed int
	closed  bool
}

func newCaptureHandler() *captureHandler {
	return &captureHandler{f: formatter.NewPatternFormatter("[%l] %v")}
}

func (c *captureHandler) Handle(entry *core.Entry) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, _ := c.f.Format(entry)
	c.buf.Write(data)
	c.entries = append(c.entries, *entry)
	return c.err
}

func (c *captureHandler) Flush() error {
	c.flushed++
	return c.err
}

func (c *captureHandler) Close() error {
	c.closed = true
	return c.err
}

func (c *captureHandler) CanRecycleEntry() bool { return true }

func (c *captureHandler) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// closeOnly implements Handler but not Flusher.
type closeOnly struct{}

func (closeOnly) Handle(*core.Entry) error { return nil }
func (closeOnly) Close() error             { return nil }

func TestFlush(t *testing.T) {
	c := newCaptureHandler()
	require.NoError(t, Flush(c))
	assert.Equal(t, 1, c.flushed)

	require.NoError(t, Flush(closeOnly{}))
}

func TestStats(t *testing.T) {
	s := NewStats()
	s.IncrementColored()
	s.IncrementColored()
	s.IncrementPlain()
	s.IncrementDropped()

	assert.Equal(t, Snapshot{ProcessedTotal: 3, ColoredTotal: 2, PlainTotal: 1, DroppedTotal: 1}, s.GetSnapshot())

	s.Reset()
	assert.Equal(t, Snapshot{}, s.GetSnapshot())
}

func TestStats_Concurrent(t *testing.T) {
	s := NewStats()
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.IncrementPlain()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(1000), s.GetSnapshot().ProcessedTotal)
}

func TestMultiHandler(t *testing.T) {
	h1, h2 := newCaptureHandler(), newCaptureHandler()
	multi := NewMultiHandler(h1, h2)

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "multi test"

	require.NoError(t, multi.Handle(entry))
	assert.Equal(t, "[info] multi test\n", h1.String())
	assert.Equal(t, "[info] multi test\n", h2.String())
	assert.True(t, multi.CanRecycleEntry())

	require.NoError(t, multi.Flush())
	assert.Equal(t, 1, h1.flushed)
	assert.Equal(t, 1, h2.flushed)

	require.NoError(t, multi.Close())
	assert.True(t, h1.closed)
	assert.True(t, h2.closed)
}

func TestMultiHandler_ReportsLastError(t *testing.T) {
	failing := newCaptureHandler()
	failing.err = errors.New("device gone")
	ok := newCaptureHandler()
	multi := NewMultiHandler(failing, ok)

	entry := &core.Entry{Level: core.WarnLevel, Message: "still delivered"}
	require.ErrorContains(t, multi.Handle(entry), "device gone")
	assert.Contains(t, ok.String(), "still delivered")
}

func TestMultiHandler_NonRecyclingChild(t *testing.T) {
	multi := NewMultiHandler(newCaptureHandler(), closeOnly{})
	assert.False(t, multi.CanRecycleEntry())
}
