// Package config provides YAML-based game configuration loading and
// validation for Brick Breaker.
package config

// GameConfig contains all configuration for a Brick Breaker game.
// Values are fixed once a game is constructed.
type GameConfig struct {
	Playfield Playfield `yaml:"playfield"`
	Paddle    Paddle    `yaml:"paddle"`
	Ball      Ball      `yaml:"ball"`
	Bricks    Bricks    `yaml:"bricks"`
}

// Playfield defines the size of the play area in playfield units.
type Playfield struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Paddle defines paddle size, placement, and movement step.
type Paddle struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	Speed        int `yaml:"speed"`
	BottomMargin int `yaml:"bottom_margin"`
}

// Ball defines ball size and initial per-axis speed.
type Ball struct {
	Diameter int `yaml:"diameter"`
	Speed    int `yaml:"speed"`
}

// Bricks defines the brick grid layout.
type Bricks struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
	Gap     int `yaml:"gap"`
}

// GridHeight returns the vertical extent of the brick grid.
func (b Bricks) GridHeight() int {
	if b.Rows <= 0 {
		return 0
	}
	return b.Rows*(b.Height+b.Gap) - b.Gap
}
