package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/scoring"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagScoresUser  string
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and run history",
	Long: `Display the best score and the top runs recorded in the scores database.

Examples:
  flappy scores
  flappy scores --user ada        # Runs played over SSH by ada
  flappy scores --limit 25
  flappy scores --tui             # Interactive scoreboard`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresUser, "user", "", "SSH user whose record to show")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (the best score is kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)
	}

	key := scoring.StorageKey
	if flagScoresUser != "" {
		key = tui.UserKey(flagScoresUser)
	}

	if flagScoresClear {
		if err := store.ClearRuns(key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared run history for %s\n", key)
		return nil
	}

	stats, err := store.Stats(key)
	if err != nil {
		return err
	}
	runs, err := store.TopRuns(key, flagScoresLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "High Scores - %s\n\n", key)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
		if stats.Best > 0 {
			fmt.Fprintf(out, "\nBest: %d\n", stats.Best)
		}
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
	fmt.Fprintf(out, "  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10d  %-16s  %s\n", i+1, r.Score, r.CreatedAt.Format("2006-01-02 15:04"), r.ID)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d   Runs: %d   Average: %.1f\n", stats.Best, stats.RunsCount, stats.AvgScore)
	return nil
}
