// Package pacing keeps a loop running at a fixed tick rate independent of
// how fast the display refreshes.
//
// A Scheduler tracks a virtual deadline that advances by exactly one interval
// per iteration, whatever the iteration cost. After each iteration the loop
// sleeps until the deadline. When it falls behind there is no frame skipping
// and no sleeping: iterations run back to back until the deadline is in the
// future again.
package pacing

import "time"

// Scheduler paces a single loop. It is not safe for concurrent use.
type Scheduler struct {
	clock    Clock
	interval time.Duration
	deadline time.Time
	started  bool
	ticks    uint64
	late     uint64
}

// New creates a scheduler. A nil clock means SystemClock.
func New(interval time.Duration, clock Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{
		clock:    clock,
		interval: interval,
	}
}

// Start pins the deadline to the current clock reading.
func (s *Scheduler) Start() {
	s.deadline = s.clock.Now()
	s.started = true
}

// Next closes the current iteration: it advances the deadline by one interval
// and returns how long to sleep before the next one, zero when running late.
// The first call starts the scheduler if Start was not called.
func (s *Scheduler) Next() time.Duration {
	if !s.started {
		s.Start()
	}
	s.deadline = s.deadline.Add(s.interval)
	s.ticks++

	d := s.deadline.Sub(s.clock.Now())
	if d <= 0 {
		s.late++
		return 0
	}
	return d
}

// Wait closes the current iteration and sleeps on the clock until the deadline.
func (s *Scheduler) Wait() {
	if d := s.Next(); d > 0 {
		s.clock.Sleep(d)
	}
}

// Run calls iter once per interval until it returns false.
func (s *Scheduler) Run(iter func() bool) {
	s.Start()
	for iter() {
		s.Wait()
	}
}

// Interval returns the fixed tick length.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Deadline returns the current virtual deadline.
func (s *Scheduler) Deadline() time.Time {
	return s.deadline
}

// Ticks returns the number of completed iterations.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// Late returns how many iterations finished at or past their deadline.
func (s *Scheduler) Late() uint64 {
	return s.late
}
