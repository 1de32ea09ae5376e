package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Space/Up/Click - Start, then flap
  P/Esc          - Pause
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --store file --scores-file ./scores.json
  flappy play --config ./my-flappy.yaml --log-file /tmp/flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The TUI owns stdout; logs only go to --log-file.
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	tracker, closeStore, err := openTracker(logger)
	if err != nil {
		return err
	}
	defer closeStore()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}
	rc.TickRate = flagFPS
	rc.Seed = flagSeed

	logger.Info("starting game", "best", tracker.Best(), "store", flagStore)
	return tui.Run(cfg, tracker, loadSheet(logger), rc, logger)
}
