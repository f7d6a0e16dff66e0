package core

// Color is a palette entry understood by every frontend.
// The terminal maps it to ANSI 256-color codes, the window to RGBA.
type Color uint8

// Palette used by the playfield, the sprites and the overlay.
const (
	ColorDefault Color = iota // terminal default; white in the window
	ColorBlack
	ColorWhite
	ColorRed
	ColorGray
	ColorCyan
	ColorBrightCyan
	ColorBrightYellow
	ColorOrange
)
