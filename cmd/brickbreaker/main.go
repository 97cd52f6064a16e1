// brickbreaker is a terminal brick-breaking game.
//
// Usage:
//
//	brickbreaker                - Play the game
//	brickbreaker play           - Play the game
//	brickbreaker sim            - Run the simulation headless and report the outcome
//	brickbreaker config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Load game configuration from a YAML file
//	--verbose, -v       - Enable debug logging
//	--log-file <path>   - Write logs to a file
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagVerbose bool
	flagLogFile string

	// Shared by every command that runs a game
	flagAutopilot bool
)

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickbreaker",
	Short: "Brick Breaker - break every brick without dropping the ball",
	Long: `Brick Breaker is a terminal arcade game: bounce the ball off your
paddle and clear the brick wall before the ball gets past you.

Available commands:
  play     - Play the game (default)
  sim      - Run the game headless and report the outcome
  config   - Print the default configuration

Examples:
  brickbreaker
  brickbreaker play --autopilot
  brickbreaker sim --ticks 10000 --autopilot
  brickbreaker config > ~/.brickbreaker/configs/brickbreaker.yaml`,
	Args:               cobra.NoArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: teardownLogging,
	RunE:               runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	addAutopilotFlag(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// addAutopilotFlag registers --autopilot on cmd. Commands that run a game call
// it so the flag means the same thing everywhere.
func addAutopilotFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the computer steer the paddle")
}
