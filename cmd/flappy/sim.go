package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/scoring"
)

var (
	flagSimTicks   int
	flagFlapEvery  int
	flagSimPersist bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the game without a terminal UI. The bird flaps on a fixed
schedule until it crashes or the tick budget runs out.

Examples:
  flappy sim
  flappy sim --ticks 3600 --flap-every 20 --seed 7
  flappy sim --persist --store none`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum number of simulation ticks")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 20, "Flap once every N ticks (0 = never)")
	simCmd.Flags().BoolVar(&flagSimPersist, "persist", false, "Write the best score to the selected store")
}

// simResult is the outcome of a headless run.
type simResult struct {
	Ticks   int
	Elapsed time.Duration
	Phase   flappy.Phase
	Score   int
	Best    int
}

// simulate starts a run and steps it with a fixed clock.
func simulate(cfg config.FlappyConfig, tracker *scoring.Tracker, seed int64, ticks, flapEvery int) simResult {
	game := flappy.New(cfg, tracker, seed)
	clock := core.NewFixedStep(cfg.Physics.StepHz)

	game.Activate()
	clock.Tick(game.Update)

	n := 0
	for n < ticks && game.Phase() == flappy.PhaseRunning {
		if flapEvery > 0 && n%flapEvery == 0 {
			game.Activate()
		}
		clock.Tick(game.Update)
		n++
	}

	return simResult{
		Ticks:   n,
		Elapsed: time.Duration(n) * clock.Step(),
		Phase:   game.Phase(),
		Score:   game.Score(),
		Best:    game.Best(),
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	tracker := scoring.NewTracker(nil, logger)
	if flagSimPersist {
		var closeStore func()
		tracker, closeStore, err = openTracker(logger)
		if err != nil {
			return err
		}
		defer closeStore()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	res := simulate(cfg, tracker, seed, flagSimTicks, flagFlapEvery)
	logger.Debug("simulation finished", "seed", seed, "ticks", res.Ticks)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "seed:    %d\n", seed)
	fmt.Fprintf(out, "ticks:   %d (%s simulated)\n", res.Ticks, res.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(out, "state:   %s\n", res.Phase)
	fmt.Fprintf(out, "score:   %d\n", res.Score)
	fmt.Fprintf(out, "best:    %d\n", res.Best)
	return nil
}
