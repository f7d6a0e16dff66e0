package debris

import "github.com/vovakirdan/debris-shooter/internal/core"

// applyInput turns an input frame into ship velocity and bullet spawns.
// Velocity is rebuilt from the held snapshot every frame; when both sides of
// an axis are held, right and down win.
func (g *Game) applyInput(in core.InputFrame) {
	speed := g.cfg.Ship.Speed

	g.vx = 0
	if in.Holding(core.ActionLeft) {
		g.vx = -speed
	}
	if in.Holding(core.ActionRight) {
		g.vx = speed
	}

	g.vy = 0
	if in.Holding(core.ActionUp) {
		g.vy = -speed
	}
	if in.Holding(core.ActionDown) {
		g.vy = speed
	}

	if g.gameOver {
		return
	}
	for range in.FreshPresses(core.ActionFire) {
		g.fire()
	}
}

// fire spawns a bullet centered above the ship.
func (g *Game) fire() {
	b := g.cfg.Bullets
	x := g.ship.X + (g.ship.W-b.Width)/2
	y := g.ship.Y - b.Height
	g.bullets.Spawn(x, y)
}
