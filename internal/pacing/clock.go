package pacing

import (
	"sync"
	"time"
)

// Clock is the time source a Scheduler reads and sleeps on.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock reads the monotonic wall clock and really sleeps.
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}

// ManualClock is a controllable time source for tests and virtual-time runs.
// Sleep advances the clock instead of blocking.
type ManualClock struct {
	mu     sync.RWMutex
	now    time.Time
	sleeps []time.Duration
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d, simulating work.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// Sleep records d and advances the clock by it.
func (m *ManualClock) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sleeps = append(m.sleeps, d)
	m.now = m.now.Add(d)
}

// Sleeps returns every duration passed to Sleep, in order.
func (m *ManualClock) Sleeps() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.sleeps...)
}
