package tui

import (
	"time"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
)

// KeyTracker synthesizes held-key state from terminal key presses.
// Terminals report key-down events (and auto-repeats) but never key-up, so a
// press holds its action for a while and auto-repeats keep extending it.
type KeyTracker struct {
	cfg       config.TerminalConfig
	heldUntil map[core.Action]time.Time
	lastPress map[core.Action]time.Time
	repeating map[core.Action]bool // inside an auto-repeat run
	presses   []core.Press
	quit      bool
}

// NewKeyTracker creates a tracker with the given hold timings.
func NewKeyTracker(cfg config.TerminalConfig) *KeyTracker {
	return &KeyTracker{
		cfg:       cfg,
		heldUntil: make(map[core.Action]time.Time),
		lastPress: make(map[core.Action]time.Time),
		repeating: make(map[core.Action]bool),
	}
}

// Press records a key-down for an action at now.
// Terminal auto-repeat sends the first repeat after the keyboard's repeat
// delay and the rest at the much shorter repeat rate. A press within
// RepeatDelay of a fresh press starts a repeat run; inside a run, presses
// closer than RepeatWindow continue it and a longer gap is a fresh press.
// Pressing one side of an axis releases the other.
func (t *KeyTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	if a == core.ActionQuit {
		t.quit = true
		return
	}

	last, seen := t.lastPress[a]
	gap := now.Sub(last)
	var repeat bool
	switch {
	case !seen:
	case t.repeating[a]:
		repeat = gap < t.cfg.RepeatWindow
	default:
		repeat = gap < t.cfg.RepeatDelay
	}
	t.lastPress[a] = now
	t.repeating[a] = repeat
	t.presses = append(t.presses, core.Press{Action: a, Repeat: repeat})

	// A fresh press holds until the first repeat is due; each repeat
	// holds only until the next one.
	if repeat {
		t.heldUntil[a] = now.Add(t.cfg.RepeatHold)
	} else {
		t.heldUntil[a] = now.Add(t.cfg.RepeatDelay)
	}

	if opp := a.Opposite(); opp != core.ActionNone {
		delete(t.heldUntil, opp)
		delete(t.repeating, opp)
	}
}

// Frame drains the presses recorded since the last call and returns them with
// a snapshot of the actions still held at now.
func (t *KeyTracker) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range t.heldUntil {
		if now.Before(until) {
			frame.Hold(a)
		} else {
			delete(t.heldUntil, a)
		}
	}
	if len(t.presses) > 0 {
		frame.Presses = append(frame.Presses, t.presses...)
		t.presses = t.presses[:0]
	}
	frame.Quit = t.quit
	return frame
}

// Reset forgets every held key and pending press.
func (t *KeyTracker) Reset() {
	clear(t.heldUntil)
	clear(t.lastPress)
	clear(t.repeating)
	t.presses = t.presses[:0]
	t.quit = false
}
