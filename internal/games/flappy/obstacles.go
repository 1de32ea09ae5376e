package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a pipe pair with a gap the avatar must fly through.
type Obstacle struct {
	X      float64 // Horizontal position (left edge)
	GapY   float64 // Vertical offset of the gap (top edge of the clear region)
	Passed bool    // Set once when the avatar clears the obstacle
}

// TopRect returns the solid region above the gap.
func (o Obstacle) TopRect(cfg config.ObstacleConfig) core.Rect {
	return core.NewRect(o.X, o.GapY-cfg.SolidHeight, cfg.Width, cfg.SolidHeight)
}

// BottomRect returns the solid region below the gap.
func (o Obstacle) BottomRect(cfg config.ObstacleConfig) core.Rect {
	return core.NewRect(o.X, o.GapY+cfg.GapHeight, cfg.Width, cfg.SolidHeight)
}

// TrailingEdge returns the x-coordinate of the obstacle's right edge.
func (o Obstacle) TrailingEdge(cfg config.ObstacleConfig) float64 {
	return o.X + cfg.Width
}

// Spawner creates obstacles at a fixed time interval.
type Spawner struct {
	rng       *rand.Rand
	interval  time.Duration
	spawnX    float64
	minOffset float64
	maxOffset float64
	lastSpawn time.Duration
}

// NewSpawner creates a spawner with the given RNG seed.
func NewSpawner(cfg config.FlappyConfig, seed int64) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		interval:  time.Duration(cfg.Obstacles.SpawnIntervalMs) * time.Millisecond,
		spawnX:    cfg.Field.Width,
		minOffset: cfg.Obstacles.MinOffset,
		maxOffset: cfg.MaxGapOffset(),
	}
}

// Reset restarts the spawn timer at now.
func (s *Spawner) Reset(now time.Duration) {
	s.lastSpawn = now
}

// Update returns a new obstacle when more than one interval has elapsed
// since the last spawn.
func (s *Spawner) Update(now time.Duration) (Obstacle, bool) {
	if now-s.lastSpawn <= s.interval {
		return Obstacle{}, false
	}
	s.lastSpawn = now

	return Obstacle{
		X:    s.spawnX,
		GapY: s.minOffset + s.rng.Float64()*(s.maxOffset-s.minOffset),
	}, true
}

// advanceObstacles moves every obstacle left, scores the ones the avatar has
// cleared and drops the ones that left the field.
func (g *Game) advanceObstacles() {
	oc := g.cfg.Obstacles
	speed := g.difficulty.Speed(g.cfg.Physics.ObstacleSpeed, g.tracker.Score(), g.ticks)

	for i := range g.obstacles {
		o := &g.obstacles[i]
		o.X -= speed

		if !o.Passed && o.TrailingEdge(oc) < g.avatar.X {
			o.Passed = true
			g.tracker.Increment()
		}
	}

	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		if o.TrailingEdge(oc) > -oc.DespawnMargin {
			kept = append(kept, o)
		}
	}
	g.obstacles = kept
}

// hitsObstacle tests the avatar hitbox against both solid regions of every obstacle.
func (g *Game) hitsObstacle() bool {
	box := g.avatarRect()
	oc := g.cfg.Obstacles
	for _, o := range g.obstacles {
		if box.Intersects(o.TopRect(oc)) || box.Intersects(o.BottomRect(oc)) {
			return true
		}
	}
	return false
}
