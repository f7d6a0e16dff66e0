package debris

import (
	"fmt"

	"github.com/vovakirdan/debris-shooter/internal/core"
)

// Overlay layout in playfield pixels, anchored to the right and middle edges.
const (
	scoreBoxW    = 100
	scoreBoxH    = 30
	scoreInsetX  = 120
	scoreInsetY  = 20
	bannerH      = 60
	bannerOffset = 50
	gameOverW    = 200
	gameOverH    = 60
	gameOverLift = 55
)

// Draw issues the frame's draw calls: background, ship, bullets in flight,
// debris, score, and the game over banner once the round has ended.
func (g *Game) Draw(c core.Canvas) {
	c.DrawBackground()
	c.DrawSprite(core.SpriteShip, g.ship)

	for i := 0; i < g.bullets.Len(); i++ {
		if g.bullets.Active(i) {
			c.DrawSprite(core.SpriteBullet, g.bullets.At(i))
		}
	}
	for i := 0; i < g.debris.Len(); i++ {
		c.DrawSprite(core.SpriteDebris, g.debris.At(i))
	}

	c.DrawText(fmt.Sprintf("SCORE: %d", g.score), ScoreRect(g.cfg.Playfield.Width), core.ColorWhite)

	if g.gameOver {
		band, text := GameOverRects(g.cfg.Playfield.Width, g.cfg.Playfield.Height)
		c.FillRect(band, core.ColorWhite)
		c.DrawText(GameOverText, text, core.ColorRed)
	}
}

// ScoreRect returns the score slot in the top-right corner.
func ScoreRect(fieldW int) core.Rect {
	return core.NewRect(fieldW-scoreInsetX, scoreInsetY, scoreBoxW, scoreBoxH)
}

// GameOverRects returns the white band across the middle of the playfield
// and the slot of the text drawn over it.
func GameOverRects(fieldW, fieldH int) (band, text core.Rect) {
	band = core.NewRect(0, fieldH/2-bannerOffset, fieldW, bannerH)
	text = core.NewRect((fieldW-gameOverW)/2, fieldH/2-gameOverLift, gameOverW, gameOverH)
	return band, text
}
