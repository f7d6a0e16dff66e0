package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func newTracker() *KeyTracker {
	return NewKeyTracker(config.DefaultConfig().Terminal)
}

func TestTrackerHoldExpires(t *testing.T) {
	kt := newTracker()
	kt.Press(core.ActionLeft, t0)

	if f := kt.Frame(t0.Add(ms(10))); !f.Holding(core.ActionLeft) {
		t.Error("left should be held right after the press")
	}
	if f := kt.Frame(t0.Add(ms(699))); !f.Holding(core.ActionLeft) {
		t.Error("left should be held until the first repeat is due")
	}
	if f := kt.Frame(t0.Add(ms(700))); f.Holding(core.ActionLeft) {
		t.Error("left should be released when no repeat arrives")
	}
}

func TestTrackerRepeatsExtendHold(t *testing.T) {
	kt := newTracker()
	kt.Press(core.ActionRight, t0)

	// Auto-repeat every 30ms starting at 250ms
	at := t0.Add(ms(250))
	kt.Press(core.ActionRight, at)
	for i := 1; i <= 10; i++ {
		at = at.Add(ms(30))
		kt.Press(core.ActionRight, at)
	}

	// Last repeat at 550ms, held until 650ms
	if f := kt.Frame(t0.Add(ms(600))); !f.Holding(core.ActionRight) {
		t.Error("auto-repeats should keep the key held")
	}
	if f := kt.Frame(t0.Add(ms(650))); f.Holding(core.ActionRight) {
		t.Error("key should be released once repeats stop")
	}
}

func TestTrackerKeyboardRepeat(t *testing.T) {
	tests := []struct {
		name   string
		delay  int // ms before the first auto-repeat
		rate   int // ms between later repeats
		holdMs int
	}{
		{"x11 defaults", 660, 40, 1500},
		{"fast delay", 250, 33, 1000},
		{"windows defaults", 500, 33, 1200},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kt := newTracker()

			// Key-down events the terminal delivers while fire and left are held
			var events []int
			for at := 0; at <= tc.holdMs; {
				events = append(events, at)
				if at == 0 {
					at = tc.delay
				} else {
					at += tc.rate
				}
			}

			fresh := 0
			next := 0
			for tick := 0; tick <= tc.holdMs; tick += 16 {
				for next < len(events) && events[next] <= tick {
					kt.Press(core.ActionFire, t0.Add(ms(events[next])))
					kt.Press(core.ActionLeft, t0.Add(ms(events[next])))
					next++
				}
				f := kt.Frame(t0.Add(ms(tick)))
				fresh += f.FreshPresses(core.ActionFire)
				if !f.Holding(core.ActionLeft) {
					t.Fatalf("left not held at %dms", tick)
				}
			}
			if fresh != 1 {
				t.Errorf("fresh fire presses = %d, expected 1 for one held key", fresh)
			}
		})
	}
}

func TestTrackerRepeatFlag(t *testing.T) {
	kt := newTracker()
	kt.Press(core.ActionFire, t0)
	kt.Press(core.ActionFire, t0.Add(ms(30)))  // Auto-repeat
	kt.Press(core.ActionFire, t0.Add(ms(200))) // Fresh tap

	f := kt.Frame(t0.Add(ms(210)))
	if len(f.Presses) != 3 {
		t.Fatalf("presses = %v, expected 3", f.Presses)
	}
	want := []bool{false, true, false}
	for i, p := range f.Presses {
		if p.Repeat != want[i] {
			t.Errorf("press %d repeat = %v, expected %v", i, p.Repeat, want[i])
		}
	}
	if f.FreshPresses(core.ActionFire) != 2 {
		t.Errorf("FreshPresses = %d, expected 2", f.FreshPresses(core.ActionFire))
	}

	// Presses are drained
	if f := kt.Frame(t0.Add(ms(220))); len(f.Presses) != 0 {
		t.Errorf("second frame presses = %v, expected none", f.Presses)
	}
}

func TestTrackerOppositeReleases(t *testing.T) {
	kt := newTracker()
	kt.Press(core.ActionLeft, t0)
	kt.Press(core.ActionUp, t0)
	kt.Press(core.ActionRight, t0.Add(ms(50)))

	f := kt.Frame(t0.Add(ms(60)))
	if f.Holding(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.Holding(core.ActionRight) || !f.Holding(core.ActionUp) {
		t.Errorf("held = %v, expected right and up", f.Held)
	}
}

func TestTrackerQuit(t *testing.T) {
	kt := newTracker()
	kt.Press(core.ActionQuit, t0)
	if f := kt.Frame(t0); !f.Quit {
		t.Error("quit press should set Quit")
	}

	kt.Reset()
	if f := kt.Frame(t0); f.Quit || len(f.Held) != 0 {
		t.Errorf("Reset should clear state, got %+v", f)
	}
}
