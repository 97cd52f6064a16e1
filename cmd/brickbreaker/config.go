package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML.

With --effective, print the configuration that would actually be used after
applying --config or the files in the search path:
  ~/.brickbreaker/configs/brickbreaker.yaml
  ./configs/brickbreaker.yaml

Examples:
  brickbreaker config > ~/.brickbreaker/configs/brickbreaker.yaml
  brickbreaker config --effective --config ./my-bricks.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
