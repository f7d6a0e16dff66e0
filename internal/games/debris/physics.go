package debris

import "github.com/vovakirdan/debris-shooter/internal/core"

// update advances every entity by one tick and returns the hits scored.
// Nothing changes once the round is over.
func (g *Game) update() int {
	if g.gameOver {
		return 0
	}
	g.tick++

	g.moveShip()
	g.bullets.Advance(g.cfg.Bullets.Speed)
	return g.updateDebris()
}

// moveShip applies velocity and keeps the ship inside the playfield.
func (g *Game) moveShip() {
	field := core.NewRect(0, 0, g.cfg.Playfield.Width, g.cfg.Playfield.Height)
	g.ship = g.ship.Translate(g.vx, g.vy).ClampInto(field)
}

// updateDebris moves each debris slot, resolves bullet hits against it, then
// checks the ship. A slot hit by several bullets scores once per bullet; bullets
// after the first are tested against the respawned box. Bullets survive hits.
// Debris that has fallen below the bottom edge is recycled without scoring.
func (g *Game) updateDebris() int {
	hits := 0
	fieldH := g.cfg.Playfield.Height

	for i := 0; i < g.debris.Len(); i++ {
		if g.debris.At(i).Y > fieldH {
			g.debris.Respawn(i)
			continue
		}

		g.debris.Fall(i, g.cfg.Debris.Speed)

		for j := 0; j < g.bullets.Len(); j++ {
			if !g.bullets.Active(j) {
				continue
			}
			if g.bullets.At(j).Intersects(g.debris.At(i)) {
				g.debris.Respawn(i)
				g.score++
				hits++
			}
		}

		if g.ship.Intersects(g.debris.At(i)) {
			g.gameOver = true
		}
	}
	return hits
}
