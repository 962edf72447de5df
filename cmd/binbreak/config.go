package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binbreak/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration binbreak would run with, after the config
file search and the command line flags, as YAML. The output is a valid
config file.

Examples:
  binbreak config > ~/.binbreak/config.yaml
  binbreak config --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
