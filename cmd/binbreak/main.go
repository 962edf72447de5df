// binbreak is a terminal quiz game: read a binary number, pick its
// decimal value before the timer runs out.
//
// Usage:
//
//	binbreak                 - Start the title menu
//	binbreak play <mode>     - Play a mode directly
//	binbreak list            - List modes and their high scores
//	binbreak scores [mode]   - Show finished games per mode
//	binbreak serve           - Start SSH server for remote play
//	binbreak config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - Config file (YAML, or TOML by extension)
//	--fps <rate>         - Frame rate while a timer or animation runs
//	--seed <value>       - RNG seed for reproducible puzzles
//	--difficulty <name>  - easy, normal or hard
//	--db <path>          - Game history database
//	--scores <path>      - High-score file
//	--backend <name>     - High-score backend: file or sqlite
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagFPS        int
	flagSeed       int64
	flagDifficulty string
	flagDBPath     string
	flagScoresPath string
	flagBackend    string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "binbreak",
	Short: "binbreak - guess the value of binary numbers",
	Long: `binbreak shows a binary number and a handful of decimal candidates.
Pick the right one before the timer runs out. Correct answers build a
streak worth bonus points; every miss costs a life.

Available commands:
  menu     - Title menu (default)
  play     - Play a specific mode directly
  list     - Show all modes and their high scores
  scores   - Browse finished games
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  binbreak
  binbreak play byte
  binbreak play nibble-signed --difficulty hard
  binbreak serve --ssh :2222
  binbreak scores word`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to config file (YAML or .toml)")
	flags.IntVar(&flagFPS, "fps", 0, "Frame rate while animating (0 = from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagDBPath, "db", "", "Path to game history database (default from config)")
	flags.StringVar(&flagScoresPath, "scores", "", "Path to high-score file (default from config)")
	flags.StringVar(&flagBackend, "backend", "", "High-score backend: file or sqlite (default from config)")
	flags.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.binbreak/binbreak.log)")
	flags.BoolVar(&flagDebug, "debug", false, "Log every round")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
