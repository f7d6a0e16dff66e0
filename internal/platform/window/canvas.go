package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/debris-shooter/internal/core"
)

// Debug font glyph size, used to center fallback text
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {255, 255, 255, 255},
	core.ColorBlack:        {0, 0, 0, 255},
	core.ColorWhite:        {255, 255, 255, 255},
	core.ColorRed:          {255, 0, 0, 255},
	core.ColorGray:         {128, 128, 128, 255},
	core.ColorCyan:         {0, 200, 200, 255},
	core.ColorBrightCyan:   {90, 255, 255, 255},
	core.ColorBrightYellow: {255, 255, 90, 255},
	core.ColorOrange:       {255, 140, 0, 255},
}

// placeholderColors stand in for missing sprite textures.
var placeholderColors = map[core.Sprite]core.Color{
	core.SpriteShip:   core.ColorBrightCyan,
	core.SpriteBullet: core.ColorBrightYellow,
	core.SpriteDebris: core.ColorOrange,
}

// RGBA returns the window color for c.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// imageCanvas draws onto an Ebitengine image the size of the playfield.
type imageCanvas struct {
	dst    *ebiten.Image
	assets *Assets
}

func (c *imageCanvas) DrawBackground() {
	if c.assets.Background == nil {
		c.dst.Fill(RGBA(core.ColorBlack))
		return
	}
	b := c.dst.Bounds()
	c.drawStretched(c.assets.Background, core.NewRect(0, 0, b.Dx(), b.Dy()))
}

func (c *imageCanvas) DrawSprite(kind core.Sprite, r core.Rect) {
	if img := c.assets.Sprites[kind]; img != nil {
		c.drawStretched(img, r)
		return
	}
	c.FillRect(r, placeholderColors[kind])
}

func (c *imageCanvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(col), false)
}

// DrawText stretches text rendered at the configured font size to fill r.
// Without a font it falls back to the debug font, centered in r and always white.
func (c *imageCanvas) DrawText(s string, r core.Rect, col core.Color) {
	if c.assets.Font == nil {
		cx, cy := r.Center()
		w := len([]rune(s)) * debugGlyphW
		ebitenutil.DebugPrintAt(c.dst, s, cx-w/2, cy-debugGlyphH/2)
		return
	}

	face := &text.GoTextFace{Source: c.assets.Font, Size: c.assets.FontSize}
	w, h := text.Measure(s, face, face.Size)
	sx, sy := fitScale(w, h, r)
	op := &text.DrawOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	op.ColorScale.ScaleWithColor(RGBA(col))
	text.Draw(c.dst, s, face, op)
}

// fitScale returns the factors that stretch a w×h box onto r.
func fitScale(w, h float64, r core.Rect) (float64, float64) {
	if w <= 0 || h <= 0 || r.Empty() {
		return 1, 1
	}
	return float64(r.W) / w, float64(r.H) / h
}

// drawStretched scales img to cover r.
func (c *imageCanvas) drawStretched(img *ebiten.Image, r core.Rect) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	c.dst.DrawImage(img, op)
}

var _ core.Canvas = (*imageCanvas)(nil)
