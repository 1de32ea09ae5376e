// Package flappy implements the Flappy Bird game loop.
// The player keeps a falling bird airborne with discrete flaps and scores
// a point for every pipe pair it flies through.
package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/scoring"
)

// Phase is the state of the game state machine.
type Phase int

const (
	PhaseIdle    Phase = iota // Waiting for the first start
	PhaseRunning              // Physics advancing
	PhaseEnded                // Run over, waiting for a restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Game owns the complete simulation state. It is driven by one Update call
// per fixed tick and never blocks.
type Game struct {
	cfg        config.FlappyConfig
	difficulty *config.DifficultyManager
	tracker    *scoring.Tracker
	spawner    *Spawner

	phase     Phase
	avatar    Avatar
	obstacles []Obstacle
	activate  core.Signal
	now       time.Duration
	ticks     int
}

// New creates a game in the idle phase. The configuration must have passed
// Validate; tracker supplies the score counters and their persistence.
func New(cfg config.FlappyConfig, tracker *scoring.Tracker, seed int64) *Game {
	if tracker == nil {
		tracker = scoring.NewTracker(nil, nil)
	}
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		tracker:    tracker,
		spawner:    NewSpawner(cfg, seed),
		obstacles:  make([]Obstacle, 0, 8),
	}
	g.placeAvatar()
	return g
}

// Activate latches the single input signal. It is consumed by the next
// Update: idle or ended games restart, running games flap.
func (g *Game) Activate() {
	g.activate.Raise()
}

// Update advances the game by one tick at simulation time now.
func (g *Game) Update(now time.Duration) {
	dt := now - g.now
	g.now = now
	activated := g.activate.Take()

	if g.phase != PhaseRunning {
		if activated {
			g.start(now)
		}
		return
	}

	g.ticks++
	g.stepAvatar(activated, dt)

	if o, ok := g.spawner.Update(now); ok {
		g.obstacles = append(g.obstacles, o)
	}
	g.advanceObstacles()

	g.checkBounds()
	if g.hitsObstacle() {
		g.end()
	}
}

// start performs the full reset and enters the running phase.
func (g *Game) start(now time.Duration) {
	g.placeAvatar()
	g.obstacles = g.obstacles[:0]
	g.tracker.Reset()
	g.spawner.Reset(now)
	g.ticks = 0
	g.phase = PhaseRunning
}

// end enters the ended phase once per run.
func (g *Game) end() {
	if g.phase != PhaseRunning {
		return
	}
	g.phase = PhaseEnded
	g.tracker.Finish()
}

func (g *Game) placeAvatar() {
	g.avatar = Avatar{X: g.cfg.Avatar.X, Y: g.cfg.Avatar.StartY}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the score of the current run.
func (g *Game) Score() int {
	return g.tracker.Score()
}

// Best returns the best score since load.
func (g *Game) Best() int {
	return g.tracker.Best()
}

// Ticks returns the number of running ticks in the current run.
func (g *Game) Ticks() int {
	return g.ticks
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}
