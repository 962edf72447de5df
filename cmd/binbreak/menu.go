package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start binbreak on the title menu",
	Long: `Start binbreak in interactive menu mode. This is also what running
binbreak without a command does.

Controls:
  Up/Down/j/k   - Pick a mode
  Left/Right    - Toggle unsigned/signed
  Enter         - Play
  a             - Pause/resume the title animation
  Esc/q         - Quit
  Ctrl+S        - Screenshot to ~/.binbreak/screenshots

Examples:
  binbreak menu
  binbreak menu --fps 60
  binbreak menu --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runInteractive(nil)
}
