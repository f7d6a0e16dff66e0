package debris

import "github.com/vovakirdan/debris-shooter/internal/core"

// Status values reported in snapshots.
const (
	StatusPlaying  = "playing"
	StatusGameOver = "game_over"
)

// Snapshot captures the complete game state for determinism testing,
// pilots and the headless report. Slices are copies.
type Snapshot struct {
	Tick    uint64      `yaml:"tick"`
	Status  string      `yaml:"status"`
	Score   int         `yaml:"score"`
	Ship    core.Rect   `yaml:"ship"`
	VX      int         `yaml:"vx"`
	VY      int         `yaml:"vy"`
	Cursor  int         `yaml:"cursor"`
	Bullets []core.Rect `yaml:"bullets"`
	Debris  []core.Rect `yaml:"debris"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	status := StatusPlaying
	if g.gameOver {
		status = StatusGameOver
	}
	return Snapshot{
		Tick:    g.tick,
		Status:  status,
		Score:   g.score,
		Ship:    g.ship,
		VX:      g.vx,
		VY:      g.vy,
		Cursor:  g.bullets.Cursor(),
		Bullets: g.bullets.Rects(),
		Debris:  g.debris.Rects(),
	}
}

// ActiveBullets returns only the bullets in flight.
func (s Snapshot) ActiveBullets() []core.Rect {
	var out []core.Rect
	for _, b := range s.Bullets {
		if b.Y >= 0 {
			out = append(out, b)
		}
	}
	return out
}
