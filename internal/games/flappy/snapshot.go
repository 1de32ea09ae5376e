package flappy

import "time"

// Snapshot is a read-only copy of the state a renderer needs for one frame.
type Snapshot struct {
	Phase     Phase
	Avatar    Avatar
	Obstacles []Obstacle
	Score     int
	Best      int
	Now       time.Duration
}

// Snapshot copies the current state. The obstacle slice is not shared with the game.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]Obstacle, len(g.obstacles))
	copy(obstacles, g.obstacles)

	return Snapshot{
		Phase:     g.phase,
		Avatar:    g.avatar,
		Obstacles: obstacles,
		Score:     g.tracker.Score(),
		Best:      g.tracker.Best(),
		Now:       g.now,
	}
}
