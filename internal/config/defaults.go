package config

import (
	_ "embed"
)

//go:embed defaults/brickbreaker.yaml
var defaultYAML []byte

// DefaultConfig returns the default Brick Breaker configuration.
// It matches defaults/brickbreaker.yaml and is used when the embedded
// file cannot be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Paddle: Paddle{
			Width:        100,
			Height:       20,
			Speed:        10,
			BottomMargin: 20,
		},
		Ball: Ball{
			Diameter: 20,
			Speed:    3,
		},
		Bricks: Bricks{
			Rows:    5,
			Columns: 10,
			Width:   75,
			Height:  30,
			Gap:     10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
