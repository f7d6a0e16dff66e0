package tui

import (
	"github.com/vovakirdan/debris-shooter/internal/core"
)

// Visual characters for rendering
const (
	ShipChar   = '█'
	ShipNose   = '▲'
	BulletChar = '┃'
	DebrisChar = '▓'
	StarChar   = '·'
)

// sprite glyphs and colors by kind
var spriteCells = map[core.Sprite]core.Cell{
	core.SpriteShip:   {Rune: ShipChar, Fg: core.ColorBrightCyan},
	core.SpriteBullet: {Rune: BulletChar, Fg: core.ColorBrightYellow},
	core.SpriteDebris: {Rune: DebrisChar, Fg: core.ColorOrange},
}

// ScreenCanvas draws playfield coordinates onto a terminal cell buffer,
// stretching the playfield over the given area.
type ScreenCanvas struct {
	screen *core.Screen
	area   core.Rect // Target cells
	fieldW int
	fieldH int
}

// NewScreenCanvas creates a canvas mapping a fieldW×fieldH playfield onto area.
func NewScreenCanvas(screen *core.Screen, area core.Rect, fieldW, fieldH int) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		area:   area,
		fieldW: fieldW,
		fieldH: fieldH,
	}
}

// SetArea changes the target cells, e.g. after a terminal resize.
func (c *ScreenCanvas) SetArea(area core.Rect) {
	c.area = area
}

// Cells converts a playfield rectangle to the cells it covers.
// Anything with area covers at least one cell.
func (c *ScreenCanvas) Cells(r core.Rect) core.Rect {
	if r.Empty() || c.area.Empty() {
		return core.Rect{}
	}
	x0 := floorDiv(r.X*c.area.W, c.fieldW)
	y0 := floorDiv(r.Y*c.area.H, c.fieldH)
	x1 := max(ceilDiv(r.Right()*c.area.W, c.fieldW), x0+1)
	y1 := max(ceilDiv(r.Bottom()*c.area.H, c.fieldH), y0+1)
	return core.NewRect(c.area.X+x0, c.area.Y+y0, x1-x0, y1-y0)
}

// DrawBackground clears the area to a sparse star field.
func (c *ScreenCanvas) DrawBackground() {
	for y := c.area.Y; y < c.area.Bottom(); y++ {
		for x := c.area.X; x < c.area.Right(); x++ {
			cell := core.Cell{Rune: ' '}
			if (x*7+y*13)%37 == 0 {
				cell = core.Cell{Rune: StarChar, Fg: core.ColorGray}
			}
			c.screen.SetCell(x, y, cell)
		}
	}
}

// DrawSprite fills the covered cells with the sprite glyph.
func (c *ScreenCanvas) DrawSprite(kind core.Sprite, r core.Rect) {
	cells := c.clip(c.Cells(r))
	cell, ok := spriteCells[kind]
	if !ok {
		cell = core.Cell{Rune: '?'}
	}
	c.screen.FillRect(cells, cell)

	if kind == core.SpriteShip && cells.W > 0 && cells.H > 1 {
		cx, _ := cells.Center()
		c.screen.SetCell(cx, cells.Y, core.Cell{Rune: ShipNose, Fg: cell.Fg})
	}
}

// FillRect paints the covered cells with a background color.
func (c *ScreenCanvas) FillRect(r core.Rect, col core.Color) {
	c.screen.FillRect(c.clip(c.Cells(r)), core.Cell{Rune: ' ', Bg: col})
}

// DrawText centers text on the middle row of the covered cells,
// keeping whatever background is already there.
func (c *ScreenCanvas) DrawText(text string, r core.Rect, col core.Color) {
	cells := c.Cells(r)
	if cells.Empty() {
		return
	}
	runes := []rune(text)
	_, y := cells.Center()
	x := cells.X + (cells.W-len(runes))/2
	// Keep text on screen when the slot is narrower than the text
	x = core.Clamp(x, c.area.X, max(c.area.X, c.area.Right()-len(runes)))

	for i, ch := range runes {
		bg := c.screen.GetCell(x+i, y).Bg
		c.screen.SetCell(x+i, y, core.Cell{Rune: ch, Fg: col, Bg: bg})
	}
}

// clip limits r to the canvas area.
func (c *ScreenCanvas) clip(r core.Rect) core.Rect {
	return r.Intersect(c.area)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func ceilDiv(a, b int) int {
	return -floorDiv(-a, b)
}

var _ core.Canvas = (*ScreenCanvas)(nil)
