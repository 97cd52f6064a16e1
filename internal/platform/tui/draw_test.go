package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/brick-breaker/internal/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
)

func defaultSnapshot() brickbreaker.Snapshot {
	return brickbreaker.New(config.DefaultConfig()).Snapshot()
}

func TestDrawPlaying(t *testing.T) {
	s := core.NewScreen(80, 24)
	Draw(s, defaultSnapshot())

	// Paddle 350..450 x 560..580 maps to columns 35..44 on row 22
	for x := 35; x < 45; x++ {
		if s.Get(x, 22) != PaddleChar {
			t.Errorf("expected paddle at (%d, 22), got %q", x, s.Get(x, 22))
		}
	}
	if s.Get(34, 22) == PaddleChar || s.Get(45, 22) == PaddleChar {
		t.Error("paddle drawn wider than its bounds")
	}

	// Ball 390..410 x 290..310 maps to columns 39..40 on row 11
	if s.Get(39, 11) != BallChar || s.Get(40, 11) != BallChar {
		t.Errorf("expected ball at row 11, got %q", s.Row(11))
	}

	// First brick spans columns 0..6 on row 0
	if got := string([]rune(s.Row(0))[:7]); got != "[█████]" {
		t.Errorf("first brick = %q, expected %q", got, "[█████]")
	}
	if c := s.GetCell(3, 0); c.Color != core.ColorGreen {
		t.Errorf("brick fill color = %d, expected green", c.Color)
	}
	if c := s.GetCell(0, 0); c.Color != core.ColorWhite {
		t.Errorf("brick outline color = %d, expected white", c.Color)
	}
}

func TestDrawDestroyedBrickIsBlank(t *testing.T) {
	snap := defaultSnapshot()
	snap.Bricks = snap.Bricks[1:] // drop brick (0,0)

	s := core.NewScreen(80, 24)
	Draw(s, snap)

	if got := string([]rune(s.Row(0))[:7]); strings.TrimSpace(got) != "" {
		t.Errorf("destroyed brick should not be drawn, got %q", got)
	}
}

func TestDrawBoxedBricksOnLargeScreen(t *testing.T) {
	s := core.NewScreen(200, 80)
	Draw(s, defaultSnapshot())

	// Brick (0,0) becomes 18x4 cells
	if s.Get(0, 0) != '┌' || s.Get(17, 3) != '┘' {
		t.Errorf("expected boxed brick, got corners %q and %q", s.Get(0, 0), s.Get(17, 3))
	}
	if s.Get(5, 1) != BrickChar {
		t.Errorf("expected brick fill inside box, got %q", s.Get(5, 1))
	}
}

func TestDrawTerminalMessage(t *testing.T) {
	tests := []struct {
		phase   brickbreaker.Phase
		message string
	}{
		{brickbreaker.PhaseLost, brickbreaker.MessageLost},
		{brickbreaker.PhaseWon, brickbreaker.MessageWon},
	}

	for _, tc := range tests {
		t.Run(tc.phase.String(), func(t *testing.T) {
			snap := defaultSnapshot()
			snap.Phase = tc.phase
			snap.Message = tc.message

			s := core.NewScreen(80, 24)
			Draw(s, snap)

			row := s.Row(12)
			if strings.TrimSpace(row) != tc.message {
				t.Errorf("row 12 = %q, expected centered %q", row, tc.message)
			}
			x := (80 - len(tc.message)) / 2
			if s.Get(x, 12) != []rune(tc.message)[0] {
				t.Errorf("message should start at column %d", x)
			}
			if strings.ContainsRune(s.String(), PaddleChar) {
				t.Error("entities should not be drawn once the game ended")
			}
		})
	}
}

func TestDrawWindowTooSmall(t *testing.T) {
	s := core.NewScreen(19, 8)
	Draw(s, defaultSnapshot())

	if !strings.Contains(s.Row(4), "Window too small") {
		t.Errorf("expected size warning, got %q", s.Row(4))
	}
	if strings.ContainsRune(s.String(), BallChar) {
		t.Error("ball should not be drawn on a too-small screen")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawText(0, 0, "You Win!", core.ColorBrightWhite)
	s.DrawText(0, 1, "[██]", core.ColorGreen)

	out := RenderScreen(s)
	if !strings.Contains(out, "You Win!") {
		t.Errorf("RenderScreen() lost text: %q", out)
	}
	if !strings.Contains(out, "[██]") {
		t.Errorf("RenderScreen() lost brick: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have one newline, got %q", out)
	}
}
