package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brick-breaker/internal/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/config"
	"github.com/vovakirdan/brick-breaker/internal/core"
	"github.com/vovakirdan/brick-breaker/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Brick Breaker.

Controls:
  Left/H/A    - Move paddle left
  Right/L/D   - Move paddle right
  Q/Ctrl+C    - Quit

Logs are discarded unless --log-file is given, since the game owns the terminal.

Examples:
  brickbreaker play
  brickbreaker play --fps 30
  brickbreaker play --autopilot --log-file game.log -v
  brickbreaker play --config ./my-bricks.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addAutopilotFlag(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Debug("config loaded",
		"playfield", fmt.Sprintf("%dx%d", gameCfg.Playfield.Width, gameCfg.Playfield.Height),
		"bricks", gameCfg.Bricks.Rows*gameCfg.Bricks.Columns,
	)

	rt := runtimeConfig(int(os.Stdout.Fd()), flagFPS)

	game := brickbreaker.New(gameCfg)
	if err := tui.Run(game, rt, tui.Options{Autopilot: flagAutopilot, Logger: logger}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// runtimeConfig returns the defaults with the tick rate set to fps and the
// screen sized to the terminal on fd, when fd is a terminal. Later size
// changes arrive as resize messages.
func runtimeConfig(fd, fps int) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = fps
	if w, h, err := term.GetSize(fd); err == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	return rt
}
