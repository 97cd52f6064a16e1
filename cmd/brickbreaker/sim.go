package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/brickbreaker"
	"github.com/vovakirdan/brick-breaker/internal/config"
)

var flagTicks int

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and report the outcome",
	Long: `Step the simulation without a terminal UI until the game ends or the
tick limit is reached, then print the outcome.

Without --autopilot the paddle never moves, so the run shows where the ball
first gets past it.

Examples:
  brickbreaker sim
  brickbreaker sim --autopilot --ticks 100000 -v`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{logTarget: "stderr"},
	RunE:        runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum number of ticks to simulate")
	addAutopilotFlag(simCmd)
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger := loggerFromContext(cmd.Context())

	if flagTicks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", flagTicks)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	var pilot *brickbreaker.Autopilot
	if flagAutopilot {
		pilot = brickbreaker.NewAutopilot(gameCfg.Paddle.Speed)
	}

	prog := newProgress(logger)
	snap := simulate(brickbreaker.New(gameCfg), flagTicks, pilot)
	prog.done("simulation finished",
		"phase", snap.Phase,
		"ticks", snap.Tick,
		"bricks_left", snap.BricksAlive(),
	)

	gameTime := float64(snap.Tick) / float64(flagFPS)
	fmt.Fprintf(cmd.OutOrStdout(), "%s after %d ticks (%.1fs at %d fps), %d/%d bricks left\n",
		snap.Phase, snap.Tick, gameTime, flagFPS, snap.BricksAlive(), snap.BricksTotal)
	return nil
}

// simulate steps game until it ends or maxTicks steps have run, consulting
// pilot (if any) before every step.
func simulate(game *brickbreaker.Game, maxTicks int, pilot *brickbreaker.Autopilot) brickbreaker.Snapshot {
	for range maxTicks {
		if pilot != nil {
			game.HandleAction(pilot.Action(game.Snapshot()))
		}
		if res := game.Step(); res.Phase.Terminal() {
			break
		}
	}
	return game.Snapshot()
}
