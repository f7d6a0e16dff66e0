package core

// Sprite identifies which texture a frontend should draw for an entity.
type Sprite int

const (
	SpriteShip Sprite = iota
	SpriteBullet
	SpriteDebris
)

// String returns the sprite name used in logs and asset tables.
func (s Sprite) String() string {
	switch s {
	case SpriteShip:
		return "ship"
	case SpriteBullet:
		return "bullet"
	case SpriteDebris:
		return "debris"
	default:
		return "unknown"
	}
}

// Canvas receives draw calls in playfield coordinates.
// Each frontend implements it over its own surface and decides how to scale.
type Canvas interface {
	// DrawBackground covers the whole playfield.
	DrawBackground()

	// DrawSprite draws an entity texture stretched to r.
	DrawSprite(kind Sprite, r Rect)

	// FillRect paints a solid rectangle.
	FillRect(r Rect, c Color)

	// DrawText renders text fitted into r.
	DrawText(text string, r Rect, c Color)
}
