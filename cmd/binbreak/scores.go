package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/binbreak/internal/bitmode"
	"github.com/vovakirdan/binbreak/internal/highscore"
	"github.com/vovakirdan/binbreak/internal/platform/tui"
	"github.com/vovakirdan/binbreak/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show finished games per mode",
	Long: `Browse the best finished games of each mode.

On a terminal this opens an interactive table; use Left/Right to switch
modes. With --plain (or when output is piped) the top games of one mode
are printed instead.

Examples:
  binbreak scores
  binbreak scores word
  binbreak scores byte --plain --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Games to print with --plain")
}

func runScores(cmd *cobra.Command, args []string) error {
	mode := bitmode.Eight
	if len(args) == 1 {
		m, err := bitmode.ByID(args[0])
		if err != nil {
			return fmt.Errorf("%w\nRun 'binbreak list' to see available modes", err)
		}
		mode = m
	}

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
	if st.db == nil {
		return errors.New("game history database is unavailable")
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		w, h := terminalSize()
		return tui.RunScoreboard(st.db, mode, w, h)
	}

	best := highscore.Open(st.scores, logger).Get(mode.HighScoreKey)
	return printScores(cmd.OutOrStdout(), st.db, mode, best, flagLimit)
}

func printScores(w io.Writer, db *storage.Store, mode bitmode.Mode, best uint32, limit int) error {
	games, err := db.TopGames(mode.HighScoreKey, limit)
	if err != nil {
		return fmt.Errorf("retrieving games: %w", err)
	}

	header := color.New(color.Bold)
	gold := color.New(color.FgYellow, color.Bold)

	header.Fprintf(w, "High Scores - %s\n", mode.Label)
	fmt.Fprintln(w)

	if len(games) == 0 {
		fmt.Fprintln(w, "No games recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'binbreak play %s' to set the first score!\n", mode.ID)
		return nil
	}

	header.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Rounds", "Streak", "Date")
	for i, g := range games {
		line := fmt.Sprintf("  %-4d  %-8d  %-6d  %-6d  %s\n",
			i+1, g.Score, g.Rounds, g.MaxStreak, g.CreatedAt.Local().Format("2006-01-02 15:04"))
		if i == 0 {
			gold.Fprint(w, line)
		} else {
			fmt.Fprint(w, line)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", best)
	return nil
}
