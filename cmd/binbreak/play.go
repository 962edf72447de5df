package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode directly",
	Long: `Start a game in the given mode, skipping the title menu.
Run 'binbreak list' to see the mode identifiers.

Controls:
  Left/Right/h/l  - Move between candidates
  Enter           - Confirm guess, next puzzle, restart after game over
  s               - Skip the puzzle (counts as a miss)
  Esc/q           - Quit
  Ctrl+S          - Screenshot

Examples:
  binbreak play byte
  binbreak play nibble-signed
  binbreak play word --difficulty easy --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	mode, err := bitmode.ByID(args[0])
	if err != nil {
		return fmt.Errorf("%w\nRun 'binbreak list' to see available modes", err)
	}

	return runInteractive(func(opts *tui.Options) {
		opts.StartMode = &mode
	})
}
