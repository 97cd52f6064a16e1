package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal style.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault     Color = iota
	ColorGreen             // Brick fill
	ColorWhite             // Brick outline
	ColorBrightWhite       // Paddle, ball, and end-of-game message
	ColorGray              // Secondary hints
)
