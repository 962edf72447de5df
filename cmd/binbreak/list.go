package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/highscore"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modes",
	Long:  `Shows every mode with its bit width, candidate count, time budget and high score.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := log.New(io.Discard)
	st, err := openStores(cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	printModes(cmd.OutOrStdout(), highscore.Open(st.scores, logger).Snapshot())
	return nil
}

// printModes writes the mode table. Color is dropped automatically when
// the output is not a terminal.
func printModes(w io.Writer, best highscore.Scores) {
	header := color.New(color.Bold)
	id := color.New(color.FgCyan)
	score := color.New(color.FgYellow)

	modes := bitmode.All()
	idW := len("ID")
	for _, m := range modes {
		idW = max(idW, len(m.ID))
	}

	header.Fprintln(w, "Available modes:")
	fmt.Fprintln(w)
	header.Fprintf(w, "  %-*s  %-26s  %5s  %6s  %5s\n", idW, "ID", "Mode", "Picks", "Time", "Best")
	for _, m := range modes {
		fmt.Fprint(w, "  ")
		id.Fprintf(w, "%-*s", idW, m.ID)
		fmt.Fprintf(w, "  %-26s  %5d  %5.0fs  ", m.Label, m.SuggestionCount, m.BaseTime)
		score.Fprintf(w, "%5d\n", best[m.HighScoreKey])
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'binbreak play <id>' to play a mode.")
}
