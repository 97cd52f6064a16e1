package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ball:\n  speed: 5\nbricks:\n  rows: 2\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Ball.Speed != 5 {
		t.Errorf("Ball.Speed = %d, expected 5", cfg.Ball.Speed)
	}
	if cfg.Bricks.Rows != 2 {
		t.Errorf("Bricks.Rows = %d, expected 2", cfg.Bricks.Rows)
	}
	// Unset fields keep defaults
	if cfg.Playfield.Width != 800 || cfg.Bricks.Columns != 10 {
		t.Errorf("missing fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ball: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("paddle:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := Load(invalid)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".brickbreaker", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("paddle:\n  speed: 25\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Paddle.Speed != 25 {
		t.Errorf("Paddle.Speed = %d, expected 25 from user config", cfg.Paddle.Speed)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*GameConfig)
		wantMsg string
	}{
		{"zero width", func(c *GameConfig) { c.Playfield.Width = 0 }, "playfield.width"},
		{"negative gap", func(c *GameConfig) { c.Bricks.Gap = -1 }, "bricks.gap"},
		{"zero ball speed", func(c *GameConfig) { c.Ball.Speed = 0 }, "ball.speed"},
		{"wide paddle", func(c *GameConfig) { c.Paddle.Width = 900 }, "paddle.width"},
		{"huge ball", func(c *GameConfig) { c.Ball.Diameter = 600 }, "ball.diameter"},
		{"too many columns", func(c *GameConfig) { c.Bricks.Columns = 20 }, "brick column"},
		{"grid reaches paddle", func(c *GameConfig) { c.Bricks.Rows = 20 }, "reaches the paddle"},
		{"margin too big", func(c *GameConfig) { c.Paddle.BottomMargin = 700 }, "bottom margin"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, expected ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Errorf("Validate() = %q, expected mention of %q", err.Error(), tc.wantMsg)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Paddle.Width = 0
	cfg.Ball.Diameter = -2

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	for _, want := range []string{"paddle.width", "ball.diameter"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() = %q, expected mention of %q", err.Error(), want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Ball.Speed = 4

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "bottom_margin: 20") {
		t.Errorf("Marshal() should use yaml field names, got:\n%s", data)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got != cfg {
		t.Errorf("Parse(Marshal(cfg)) = %+v, expected %+v", got, cfg)
	}
}
