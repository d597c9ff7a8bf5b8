package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts records written to the device
	ProcessedTotal atomic.Uint64
	// ColoredTotal counts processed records written with at least one colored span
	ColoredTotal atomic.Uint64
	// PlainTotal counts processed records written without colors
	PlainTotal atomic.Uint64
	// DroppedTotal counts records discarded because the device was
	// unusable or the formatter failed
	DroppedTotal atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementColored records a processed record that carried colors.
func (s *Stats) IncrementColored() {
	s.ColoredTotal.Add(1)
	s.ProcessedTotal.Add(1)
}

// IncrementPlain records a processed record written without colors.
func (s *Stats) IncrementPlain() {
	s.PlainTotal.Add(1)
	s.ProcessedTotal.Add(1)
}

// IncrementDropped records a discarded record.
func (s *Stats) IncrementDropped() {
	s.DroppedTotal.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.ProcessedTotal.Store(0)
	s.ColoredTotal.Store(0)
	s.PlainTotal.Store(0)
	s.DroppedTotal.Store(0)
}

// Snapshot is a point-in-time copy of Stats.
type Snapshot struct {
	ProcessedTotal uint64
	ColoredTotal   uint64
	PlainTotal     uint64
	DroppedTotal   uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.ProcessedTotal.Load(),
		ColoredTotal:   s.ColoredTotal.Load(),
		PlainTotal:     s.PlainTotal.Load(),
		DroppedTotal:   s.DroppedTotal.Load(),
	}
}

// StatsProvider is implemented by handlers that expose Stats.
type StatsProvider interface {
	Stats() Snapshot
}
