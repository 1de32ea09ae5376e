package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/scoring"
)

func TestSimulateWithoutFlapsHitsTheGround(t *testing.T) {
	res := simulate(config.DefaultFlappyConfig(), scoring.NewTracker(nil, nil), 1, 3600, 0)

	assert.Equal(t, flappy.PhaseEnded, res.Phase)
	assert.Equal(t, 0, res.Score)
	assert.Less(t, res.Ticks, 60, "a free fall from the start height takes under a second")
}

func TestSimulateStopsAtTickBudget(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0

	res := simulate(cfg, scoring.NewTracker(nil, nil), 1, 30, 0)

	assert.Equal(t, flappy.PhaseRunning, res.Phase)
	assert.Equal(t, 30, res.Ticks)
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	a := simulate(cfg, scoring.NewTracker(nil, nil), 42, 5000, 19)
	b := simulate(cfg, scoring.NewTracker(nil, nil), 42, 5000, 19)

	assert.Equal(t, a, b)
}

func TestSimulatePersistsBest(t *testing.T) {
	store := &scoring.MemoryStore{Best: 4}

	res := simulate(config.DefaultFlappyConfig(), scoring.NewTracker(store, nil), 3, 3600, 19)

	assert.GreaterOrEqual(t, res.Best, 4)
	assert.Equal(t, res.Best, store.Best)
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flappy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics:\n  gravity: 0.7\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagConfig = ""
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "gravity: 0.7")
	assert.Contains(t, out.String(), "gap_height: 150")
}

func TestOpenTrackerRejectsUnknownStore(t *testing.T) {
	flagStore = "cloud"
	t.Cleanup(func() { flagStore = storeSQLite })

	_, _, err := openTracker(nil)
	assert.Error(t, err)
}
