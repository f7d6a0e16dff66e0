// Package window provides the Ebitengine desktop frontend: textured sprites,
// a TTF font for the overlay, and keyboard state polled every tick.
package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/pacing"
)

// Game adapts a debris round to ebiten.Game.
// Ebitengine calls Update and Draw once per frame with vsync off; Update ends
// by waiting on the scheduler, so frames follow the fixed tick interval.
type Game struct {
	game     *debris.Game
	bindings Bindings
	keys     keyState
	canvas   *imageCanvas
	sched    *pacing.Scheduler
	closing  func() bool
	width    int
	height   int
	logger   *log.Logger
}

// NewGame wires a round to loaded assets and key bindings.
func NewGame(g *debris.Game, cfg config.Config, assets *Assets, bindings Bindings, logger *log.Logger) *Game {
	return &Game{
		game:     g,
		bindings: bindings,
		keys:     ebitenKeys{},
		canvas:   &imageCanvas{assets: assets},
		sched:    pacing.New(cfg.Timing.TickInterval, pacing.SystemClock{}),
		closing:  ebiten.IsWindowBeingClosed,
		width:    cfg.Playfield.Width,
		height:   cfg.Playfield.Height,
		logger:   logger,
	}
}

// Update polls input, advances the simulation by one tick and sleeps until
// the next tick is due.
func (w *Game) Update() error {
	frame := w.bindings.Poll(w.keys)
	if frame.Quit || w.closing() {
		w.logger.Info("quit", "tick", w.game.Tick(), "score", w.game.Score())
		return ebiten.Termination
	}

	wasOver := w.game.GameOver()
	res := w.game.Step(frame)
	if res.Hits > 0 {
		w.logger.Debug("debris destroyed", "tick", w.game.Tick(), "hits", res.Hits, "score", res.State.Score)
	}
	if res.State.GameOver && !wasOver {
		w.logger.Info("ship destroyed", "tick", w.game.Tick(), "score", res.State.Score)
	}

	w.sched.Wait()
	return nil
}

// Draw renders the current state.
func (w *Game) Draw(screen *ebiten.Image) {
	w.canvas.dst = screen
	w.game.Draw(w.canvas)
}

// Layout keeps a playfield-sized logical screen; Ebitengine scales it to the window.
func (w *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}

// Run opens the window and blocks until it is closed or a quit key is pressed.
func Run(g *debris.Game, cfg config.Config, logger *log.Logger) error {
	assets, missing := LoadAssets(cfg.Assets, logger)
	if len(missing) > 0 {
		logger.Warn("running with placeholders", "missing", len(missing))
	}

	bindings, skipped := NewBindings(cfg.Controls)
	for _, err := range skipped {
		logger.Warn("key binding ignored", "error", err)
	}

	ebiten.SetWindowSize(cfg.Playfield.Width, cfg.Playfield.Height)
	ebiten.SetWindowTitle(debris.Title)
	ebiten.SetWindowClosingHandled(true)
	// One Update per frame, paced by the scheduler instead of Ebitengine's clock
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)
	logger.Debug("window starting", "width", cfg.Playfield.Width, "height", cfg.Playfield.Height,
		"interval", cfg.Timing.TickInterval, "tps", cfg.Timing.TicksPerSecond())

	if err := ebiten.RunGame(NewGame(g, cfg, assets, bindings, logger)); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
