// Package headless runs the game loop without a display, driven by a pilot.
// It uses the same fixed-tick scheduler as the interactive frontends, on
// either the wall clock or a virtual one.
package headless

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/pacing"
	"github.com/vovakirdan/debris-shooter/internal/registry"
)

// Options controls a headless run.
type Options struct {
	MaxTicks int           // Stop after this many ticks; 0 runs until game over or quit
	Interval time.Duration // Fixed tick length
	Clock    pacing.Clock  // nil means a virtual clock starting now
	Logger   *log.Logger   // nil discards
}

// Result summarizes a finished run.
type Result struct {
	Ticks    uint64          `yaml:"ticks"`
	Frames   int             `yaml:"frames"`
	Late     uint64          `yaml:"late_frames"`
	Elapsed  time.Duration   `yaml:"elapsed"`
	Quit     bool            `yaml:"quit"`
	Pilot    string          `yaml:"pilot"`
	Snapshot debris.Snapshot `yaml:"final"`
}

// Runner owns one game and one pilot for the duration of a run.
type Runner struct {
	game   *debris.Game
	pilot  registry.Pilot
	opts   Options
	clock  pacing.Clock
	sched  *pacing.Scheduler
	canvas *countingCanvas
	logger *log.Logger
}

// New creates a runner.
func New(game *debris.Game, pilot registry.Pilot, opts Options) *Runner {
	clock := opts.Clock
	if clock == nil {
		clock = pacing.NewManualClock(time.Now())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:   game,
		pilot:  pilot,
		opts:   opts,
		clock:  clock,
		sched:  pacing.New(opts.Interval, clock),
		canvas: &countingCanvas{},
		logger: logger,
	}
}

// Run loops until the tick limit, game over, or the pilot quits.
// A pilot error stops the run and is returned with the partial result.
func (r *Runner) Run() (Result, error) {
	res := Result{Pilot: r.pilot.ID()}
	start := r.clock.Now()
	var runErr error

	r.sched.Run(func() bool {
		in, err := r.pilot.Poll(r.game.Snapshot())
		if err != nil {
			runErr = fmt.Errorf("headless: tick %d: %w", r.game.Tick(), err)
			return false
		}
		if in.Quit {
			r.logger.Debug("pilot quit", "tick", r.game.Tick())
			res.Quit = true
			return false
		}

		step := r.game.Step(in)
		if step.Hits > 0 {
			r.logger.Debug("debris destroyed", "tick", r.game.Tick(), "hits", step.Hits, "score", step.State.Score)
		}

		r.game.Draw(r.canvas)
		res.Frames++

		if step.State.GameOver {
			r.logger.Info("ship destroyed", "tick", r.game.Tick(), "score", step.State.Score)
			return false
		}
		return r.opts.MaxTicks == 0 || int(r.game.Tick()) < r.opts.MaxTicks
	})

	res.Ticks = r.game.Tick()
	res.Late = r.sched.Late()
	res.Elapsed = r.clock.Now().Sub(start)
	res.Snapshot = r.game.Snapshot()
	return res, runErr
}

// Sprites returns how many sprites were drawn over the run.
func (r *Runner) Sprites() int {
	return r.canvas.sprites
}

// countingCanvas discards draw calls and counts sprites.
type countingCanvas struct {
	sprites int
}

func (c *countingCanvas) DrawBackground()                        {}
func (c *countingCanvas) DrawSprite(core.Sprite, core.Rect)      { c.sprites++ }
func (c *countingCanvas) FillRect(core.Rect, core.Color)         {}
func (c *countingCanvas) DrawText(string, core.Rect, core.Color) {}
