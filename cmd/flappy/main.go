// flappy is a Flappy Bird clone for the terminal.
//
// Usage:
//
//	flappy play              - Play locally
//	flappy sim               - Run a headless simulation
//	flappy scores            - Show the best score and run history
//	flappy serve             - Start SSH server for remote play
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set render rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--store <kind>      - Best-score store: sqlite, file or none
//	--config <path>     - Path to custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagStore      string
	flagScoresFile string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
	flagSprites    string
	flagNoSprites  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - keep the bird in the air",
	Long: `Flappy is a terminal version of the one-button arcade game.
Flap to stay airborne and fly through the gaps between pipes.

Available commands:
  play     - Play in this terminal
  sim      - Run a headless simulation
  scores   - View the best score and run history
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --difficulty hard
  flappy sim --ticks 3600 --flap-every 20 --seed 7
  flappy serve --ssh :2222
  flappy scores --tui`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Render rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagStore, "store", storeSQLite, "Best-score store: sqlite, file, none")
	pf.StringVar(&flagScoresFile, "scores-file", "~/.arcade/flappy_scores.json", "Path to the JSON score file (--store file)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagSprites, "sprites", "", "Path to a glyph sheet YAML (default: built-in)")
	pf.BoolVar(&flagNoSprites, "no-sprites", false, "Draw flat shapes instead of glyphs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
