package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name looked up in the search paths.
const FileName = "brickbreaker.yaml"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Load loads Brick Breaker configuration.
// Search order: customPath -> ~/.brickbreaker/configs/brickbreaker.yaml ->
// ./configs/brickbreaker.yaml -> embedded default.
//
// Fields missing from a file keep their default values. A custom path that
// cannot be read or parsed is an error; the implicit search paths are skipped
// silently when absent or malformed.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return GameConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return GameConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates the
// result.
func Parse(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes cfg as YAML.
func Marshal(cfg GameConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// searchPaths returns the implicit config locations in priority order.
func searchPaths() []string {
	paths := make([]string, 0, 2)
	if p := userConfigPath(FileName); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", FileName))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickbreaker", "configs", filename)
}

// Validate checks that every dimension is usable and that the layout fits
// inside the playfield. All problems are reported together.
func (c GameConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidConfig, name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("paddle.speed", c.Paddle.Speed)
	nonNegative("paddle.bottom_margin", c.Paddle.BottomMargin)
	positive("ball.diameter", c.Ball.Diameter)
	positive("ball.speed", c.Ball.Speed)
	positive("bricks.rows", c.Bricks.Rows)
	positive("bricks.columns", c.Bricks.Columns)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	nonNegative("bricks.gap", c.Bricks.Gap)

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.Paddle.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("%w: paddle.width %d exceeds playfield width %d",
			ErrInvalidConfig, c.Paddle.Width, c.Playfield.Width))
	}
	if c.Ball.Diameter >= c.Playfield.Width || c.Ball.Diameter >= c.Playfield.Height {
		errs = append(errs, fmt.Errorf("%w: ball.diameter %d does not fit the %dx%d playfield",
			ErrInvalidConfig, c.Ball.Diameter, c.Playfield.Width, c.Playfield.Height))
	}
	// The last column may overhang the right edge, but it has to start
	// inside the playfield so the ball can still reach it.
	if lastX := (c.Bricks.Columns - 1) * (c.Bricks.Width + c.Bricks.Gap); lastX >= c.Playfield.Width {
		errs = append(errs, fmt.Errorf("%w: brick column %d starts at %d, outside playfield width %d",
			ErrInvalidConfig, c.Bricks.Columns-1, lastX, c.Playfield.Width))
	}
	paddleTop := c.Playfield.Height - c.Paddle.Height - c.Paddle.BottomMargin
	if paddleTop < 0 {
		errs = append(errs, fmt.Errorf("%w: paddle does not fit above the bottom margin", ErrInvalidConfig))
	} else if gh := c.Bricks.GridHeight(); gh >= paddleTop {
		errs = append(errs, fmt.Errorf("%w: brick grid height %d reaches the paddle at %d",
			ErrInvalidConfig, gh, paddleTop))
	}

	return errors.Join(errs...)
}
