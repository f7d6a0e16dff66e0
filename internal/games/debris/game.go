// Package debris implements the debris shooter simulation: a ship at the
// bottom of the playfield fires bullets at debris falling from the top.
// The package is pure game logic; frontends feed it input frames and hand
// it a canvas to draw on.
package debris

import (
	"math/rand"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
)

// Window title and overlay text
const (
	Title        = "Space Debris Shooter"
	GameOverText = "GAME OVER"
)

// Game holds all mutable state of one round.
// It is owned by a single loop and is not safe for concurrent use.
type Game struct {
	cfg config.Config
	rng *rand.Rand

	ship   core.Rect
	vx, vy int

	bullets *BulletPool
	debris  *DebrisPool

	score    int
	gameOver bool
	tick     uint64
}

// New creates a game from a validated configuration.
// The same seed and the same inputs always produce the same round.
func New(cfg config.Config, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	pf := cfg.Playfield

	g := &Game{
		cfg: cfg,
		rng: rng,
		ship: core.NewRect(
			(pf.Width-cfg.Ship.Width)/2,
			pf.Height-cfg.Ship.Height-cfg.Ship.BottomMargin,
			cfg.Ship.Width,
			cfg.Ship.Height,
		),
		bullets: NewBulletPool(cfg.Bullets.Capacity, cfg.Bullets.Width, cfg.Bullets.Height),
	}
	g.debris = NewDebrisPool(cfg.Debris.Capacity, cfg.Debris.MinSize, cfg.Debris.MaxSize,
		pf.Width, pf.Height, rng)
	return g
}

// Step applies one input frame and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.applyInput(in)
	hits := g.update()
	return core.StepResult{
		State: g.State(),
		Hits:  hits,
	}
}

// State returns the current score and round status.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Score returns the number of debris destroyed.
func (g *Game) Score() int { return g.score }

// GameOver reports whether the ship has been hit.
func (g *Game) GameOver() bool { return g.gameOver }

// Tick returns the number of simulated ticks.
func (g *Game) Tick() uint64 { return g.tick }

// Ship returns the ship bounding box.
func (g *Game) Ship() core.Rect { return g.ship }

// Velocity returns the ship velocity set by the last input frame.
func (g *Game) Velocity() (int, int) { return g.vx, g.vy }

// Bullets returns the bullet pool. Callers must not mutate it.
func (g *Game) Bullets() *BulletPool { return g.bullets }

// Debris returns the debris pool. Callers must not mutate it.
func (g *Game) Debris() *DebrisPool { return g.debris }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }
